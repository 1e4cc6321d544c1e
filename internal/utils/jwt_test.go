package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	username := "john"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, username, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, token.Claims.UserID)
	}
	if token.Claims.Username != username {
		t.Errorf("expected username %s, got %s", username, token.Claims.Username)
	}
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, "john", tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, userID, "john", 5*time.Minute, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Claims.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.Claims.UserID)
	}
	if parsedToken.Claims.Username != "john" {
		t.Errorf("expected username john, got %s", parsedToken.Claims.Username)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 1, "john", time.Hour, "right-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "iss"); err == nil {
		t.Error("expected error for a token signed with a different key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, err := GenerateJWTToken("issuer-a", 1, "john", time.Hour, "key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "issuer-b"); err == nil {
		t.Error("expected error for an issuer mismatch")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 1, "john", -time.Minute, "key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss"); err == nil {
		t.Error("expected error for an expired token")
	}
}

func TestValidateAndParseJWTToken_MissingIdentity(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 0, "john", time.Hour, "key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss"); err == nil {
		t.Error("expected error for a token without a user id")
	}
}
