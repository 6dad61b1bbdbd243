package service

import (
	"sync"
	"time"
)

// TokenRegistry tracks which issued token ids are still valid. It lives
// in process memory only, so every session dies with the process —
// logging in again after a restart is expected. Logout removes entries,
// which revokes tokens before their JWT expiry.
type TokenRegistry struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token id -> expiry
}

func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{
		tokens: make(map[string]time.Time),
	}
}

// Register marks a token id as valid until its expiry.
func (r *TokenRegistry) Register(tokenID string, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[tokenID] = time.Now().Add(ttl)
}

// IsValid reports whether the token id is registered and unexpired.
// Expired entries are pruned lazily on lookup.
func (r *TokenRegistry) IsValid(tokenID string) bool {
	r.mu.RLock()
	expiry, ok := r.tokens[tokenID]
	r.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		r.Revoke(tokenID)
		return false
	}
	return true
}

// Revoke removes a token id. Revoking an unknown id is a no-op.
func (r *TokenRegistry) Revoke(tokenID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenID)
}
