// Package auth supplies the bearer token attached to remote calls. Tokens
// are issued by an external identity provider; this client only carries
// them and inspects their expiry.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource yields the current bearer token. An empty token means the
// user has no remote account wired up and every remote call degrades to a
// local-only no-op.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource holds a token loaded from config. SetToken replaces it
// at runtime (the CLI login command); every holder of the source sees the
// new token on its next call.
type StaticTokenSource struct {
	mu    sync.RWMutex
	token string
}

func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *StaticTokenSource) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Expired reports whether token carries an exp claim in the past. The
// signature is not verified: the server remains the authority, this check
// only lets the client skip calls that are certain to come back 401.
// Tokens that fail to parse or carry no exp claim are treated as live and
// left for the server to judge.
func Expired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
