package auth

import (
	"testing"
	"time"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Sign(Claims{UserID: "u-1", Email: "a@b.test", Name: "Ada"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.UserID != "u-1" || got.Email != "a@b.test" || got.Name != "Ada" {
		t.Fatalf("unexpected claims: %+v", got)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Sign(Claims{UserID: "u-1"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := (&Manager{Secret: []byte("s"), TTL: -time.Minute}).Sign(Claims{UserID: "u-1"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewManager("s", time.Hour).Verify(token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := NewManager("s", time.Hour).Verify("not-a-token"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestSignRequiresUserID(t *testing.T) {
	if _, err := NewManager("s", time.Hour).Sign(Claims{}); err == nil {
		t.Fatal("expected missing user id to fail")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("expected mismatched password to fail")
	}
}
