package auth

import (
	"testing"
	"time"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

func testIdentity() domain.Identity {
	return domain.Identity{
		GitHubID:    1234,
		Login:       "rejzi",
		Name:        "Rejzi",
		AvatarURL:   "https://example.com/avatar.png",
		AccessToken: "gho_testtoken",
	}
}

func TestSessionRoundTrip(t *testing.T) {
	codec := NewSessionCodec("test-secret")

	token, err := codec.Encode(testIdentity())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	identity, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := testIdentity()
	if *identity != want {
		t.Errorf("Decode() = %+v, want %+v", *identity, want)
	}
}

func TestSessionWrongSecret(t *testing.T) {
	token, err := NewSessionCodec("secret-a").Encode(testIdentity())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if _, err := NewSessionCodec("secret-b").Decode(token); err == nil {
		t.Error("Decode() with wrong secret succeeded, want error")
	}
}

func TestSessionExpired(t *testing.T) {
	codec := NewSessionCodec("test-secret")
	codec.ttl = -time.Minute

	token, err := codec.Encode(testIdentity())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if _, err := codec.Decode(token); err == nil {
		t.Error("Decode() of expired token succeeded, want error")
	}
}

func TestSessionGarbageToken(t *testing.T) {
	codec := NewSessionCodec("test-secret")

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := codec.Decode(token); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", token)
		}
	}
}
