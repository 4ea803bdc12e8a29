package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"

	"back2me/internal/model"
)

// tokenBytes yields a 43-character URL-safe token once encoded.
const tokenBytes = 32

// Registry maps opaque bearer tokens to the sessions they were issued for.
// Entries are never evicted; a token stays valid until process restart.
type Registry struct {
	mu      sync.RWMutex
	byToken map[string]model.Session
}

func NewRegistry() *Registry {
	return &Registry{byToken: make(map[string]model.Session)}
}

// Issue generates an unguessable token and records a session for the given
// identity. Multiple concurrent sessions per user are allowed.
func (r *Registry) Issue(userID int64, username, email string, now int64) (model.Session, error) {
	token, err := generateToken()
	if err != nil {
		return model.Session{}, err
	}

	sess := model.Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		Email:     email,
		CreatedAt: now,
	}

	r.mu.Lock()
	r.byToken[token] = sess
	r.mu.Unlock()
	return sess, nil
}

// Resolve looks up the session for token. There is no expiry check.
func (r *Registry) Resolve(token string) (model.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.byToken[token]
	return sess, ok
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
