package utils

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// blacklistEntry keeps expiration metadata for a revoked JWT.
type blacklistEntry struct {
	expiresAt time.Time
}

var (
	blacklist       = map[string]blacklistEntry{}
	blacklistMu     sync.RWMutex
	blacklistClient *redis.Client
)

// SetBlacklistClient wires a Redis client for durable token revocation.
// With no client set, revocation is tracked in memory only.
func SetBlacklistClient(rc *redis.Client) {
	blacklistClient = rc
}

// BlacklistToken records a token as revoked until its natural expiration,
// supporting logout semantics.
func BlacklistToken(token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if blacklistClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := blacklistClient.Set(ctx, "jwt:blacklist:"+token, "1", ttl).Err(); err == nil {
			return
		}
		// fall through to memory on redis failure
	}
	blacklistMu.Lock()
	blacklist[token] = blacklistEntry{expiresAt: expiresAt}
	blacklistMu.Unlock()
}

// IsTokenBlacklisted reports whether a token was revoked before natural
// expiration. Redis errors fail open to avoid locking every user out when
// redis is down.
func IsTokenBlacklisted(token string) bool {
	if blacklistClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if n, err := blacklistClient.Exists(ctx, "jwt:blacklist:"+token).Result(); err == nil && n > 0 {
			return true
		}
	}
	blacklistMu.RLock()
	entry, ok := blacklist[token]
	blacklistMu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(entry.expiresAt) {
		blacklistMu.Lock()
		delete(blacklist, token)
		blacklistMu.Unlock()
		return false
	}
	return true
}
