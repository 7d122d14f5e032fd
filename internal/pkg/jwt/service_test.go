package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "u@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateAccessToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch")
	}
	if claims.Email != "u@example.com" {
		t.Fatalf("email mismatch: %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected token type %q", claims.TokenType)
	}
}

func TestTokenTypeEnforced(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	refresh, err := svc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateAccessToken(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for refresh token on access path, got %v", err)
	}
	if _, err := svc.ValidateRefreshToken(refresh); err != nil {
		t.Fatalf("refresh token must validate on refresh path: %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestService()
	tok, err := svc.GenerateAccessToken(uuid.New(), "u@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewHMACService("other-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	if _, err := other.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "u@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestNilUserRejected(t *testing.T) {
	svc := newTestService()
	tok, err := svc.GenerateAccessToken(uuid.Nil, "u@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for nil user id, got %v", err)
	}
}
