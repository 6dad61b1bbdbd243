package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRegistryRegisterAndRevoke(t *testing.T) {
	registry := NewTokenRegistry()

	registry.Register("tok-1", time.Minute)
	assert.True(t, registry.IsValid("tok-1"))

	registry.Revoke("tok-1")
	assert.False(t, registry.IsValid("tok-1"))
}

func TestTokenRegistryUnknownToken(t *testing.T) {
	registry := NewTokenRegistry()
	assert.False(t, registry.IsValid("never-issued"))
}

func TestTokenRegistryExpiry(t *testing.T) {
	registry := NewTokenRegistry()

	registry.Register("tok-1", -time.Second)
	assert.False(t, registry.IsValid("tok-1"))
}

func TestTokenRegistryRevokeUnknownIsNoop(t *testing.T) {
	registry := NewTokenRegistry()
	registry.Revoke("never-issued")
	assert.False(t, registry.IsValid("never-issued"))
}
