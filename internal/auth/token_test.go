package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret")

	tok, err := codec.Issue("user-123", "ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.ID != "user-123" {
		t.Fatalf("id mismatch: got %q want %q", claims.ID, "user-123")
	}
	if claims.Email != "ana@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
	if claims.Name != "Ana" {
		t.Fatalf("name mismatch: got %q", claims.Name)
	}
}

func TestIssue_ExpiresInSevenDays(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret")

	tok, err := codec.Issue("u1", "u1@example.com", "U1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	want := time.Now().Add(TokenDuration)
	got := claims.ExpiresAt.Time
	if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Fatalf("expiration not ~7 days out: got %v", got)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		ID: "u1",
	})
	tok, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	_, err = NewTokenCodec(secret).Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec("right-secret").Issue("u2", "u2@example.com", "U2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenCodec("wrong-secret").Verify(tok)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenCodec("k").Verify("not.a.jwt")
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
