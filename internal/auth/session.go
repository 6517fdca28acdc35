package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Rejzi-dich/RytonStore/internal/domain"
)

// SessionTTL bounds the lifetime of an issued session token.
// There is no refresh flow; an expired session means logging in again.
const SessionTTL = 24 * time.Hour

// CookieName is the HTTP cookie the session token travels in
const CookieName = "session"

// sessionClaims are the JWT claims carried by a session token
type sessionClaims struct {
	GitHubID    int64  `json:"github_id"`
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	AccessToken string `json:"access_token"`
	jwt.RegisteredClaims
}

// SessionCodec encodes and decodes signed session tokens
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionCodec creates a codec signing with the given secret
func NewSessionCodec(secret string) *SessionCodec {
	return &SessionCodec{
		secret: []byte(secret),
		ttl:    SessionTTL,
	}
}

// Encode signs an identity into an expiring session token
func (c *SessionCodec) Encode(identity domain.Identity) (string, error) {
	claims := sessionClaims{
		GitHubID:    identity.GitHubID,
		Login:       identity.Login,
		Name:        identity.Name,
		AvatarURL:   identity.AvatarURL,
		AccessToken: identity.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies a session token and returns the identity it carries.
// Callers treat any error as "no session" rather than a hard failure.
func (c *SessionCodec) Decode(token string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid session claims")
	}

	return &domain.Identity{
		GitHubID:    claims.GitHubID,
		Login:       claims.Login,
		Name:        claims.Name,
		AvatarURL:   claims.AvatarURL,
		AccessToken: claims.AccessToken,
	}, nil
}
