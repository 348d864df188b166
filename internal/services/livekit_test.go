package services

import (
	"strings"
	"testing"
)

func TestGenerateRoomName(t *testing.T) {
	name, err := generateRoomName(6)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.HasPrefix(name, "room-") {
		t.Errorf("Expected room- prefix, got %q", name)
	}
	suffix := strings.TrimPrefix(name, "room-")
	if len(suffix) != 6 {
		t.Errorf("Expected 6-character suffix, got %q", suffix)
	}
	for _, ch := range suffix {
		if !strings.ContainsRune(roomNameCharset, ch) {
			t.Errorf("Unexpected character %q in room name %q", ch, name)
		}
	}
}

func TestCreateJoinToken(t *testing.T) {
	svc := NewLiveKitService("devkey", "devsecret-at-least-32-characters-long")

	token, roomName, err := svc.CreateJoinToken("user-123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if token == "" {
		t.Error("Expected a signed token")
	}
	if !strings.HasPrefix(roomName, "room-") {
		t.Errorf("Expected generated room name, got %q", roomName)
	}

	_, otherRoom, err := svc.CreateJoinToken("user-123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if otherRoom == roomName {
		t.Error("Expected a fresh room per token")
	}
}
