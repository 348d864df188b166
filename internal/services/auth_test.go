package services

import (
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		wantErr bool
	}{
		{"valid", "password1", false},
		{"too short", "pass1", true},
		{"no digit", "passwordlong", true},
		{"exactly eight with digit", "abcdefg1", false},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.pw)
			if (err != nil) != tc.wantErr {
				t.Errorf("validatePassword(%q) error = %v, wantErr %v", tc.pw, err, tc.wantErr)
			}
		})
	}
}

func TestEmailRegex(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if !emailRegex.MatchString(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{"", "no-at-sign", "user@", "@example.com", "user@nodot"}
	for _, email := range invalid {
		if emailRegex.MatchString(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

func TestGenerateToken(t *testing.T) {
	tok, err := generateToken(64)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tok) != 128 {
		t.Errorf("Expected 128 hex characters, got %d", len(tok))
	}

	other, _ := generateToken(64)
	if tok == other {
		t.Error("Expected distinct tokens")
	}
}
