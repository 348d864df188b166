package services

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/livekit/protocol/auth"
)

const roomNameCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// LiveKitService mints short-lived video-room join tokens.
type LiveKitService struct {
	apiKey    string
	apiSecret string
}

func NewLiveKitService(apiKey, apiSecret string) *LiveKitService {
	return &LiveKitService{apiKey: apiKey, apiSecret: apiSecret}
}

// CreateJoinToken issues a 10-minute token for a freshly named room, with the
// caller's user id as participant identity.
func (s *LiveKitService) CreateJoinToken(identity string) (token, roomName string, err error) {
	roomName, err = generateRoomName(6)
	if err != nil {
		return "", "", err
	}

	grant := &auth.VideoGrant{
		RoomJoin: true,
		Room:     roomName,
	}

	at := auth.NewAccessToken(s.apiKey, s.apiSecret).
		SetVideoGrant(grant).
		SetIdentity(identity).
		SetValidFor(10 * time.Minute)

	token, err = at.ToJWT()
	if err != nil {
		return "", "", fmt.Errorf("failed to sign LiveKit token: %w", err)
	}
	return token, roomName, nil
}

func generateRoomName(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate room name: %w", err)
	}
	for i := range b {
		b[i] = roomNameCharset[int(b[i])%len(roomNameCharset)]
	}
	return "room-" + string(b), nil
}
