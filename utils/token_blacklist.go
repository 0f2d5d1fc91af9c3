package utils

import (
	"context"
	"sync"
	"time"
)

// Logout revokes a JWT before its natural expiry by recording it here. The
// auth middleware checks the list on every request. Entries carry the
// token's own expiry, so nothing outlives the token it blocks.

const blacklistKeyPrefix = "jwt:blacklist:"

var (
	localRevoked   = map[string]time.Time{}
	localRevokedMu sync.RWMutex
)

// BlacklistToken revokes token until expiresAt.
func BlacklistToken(token string, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err(); err == nil {
			return
		}
	}
	localRevokedMu.Lock()
	localRevoked[token] = expiresAt
	localRevokedMu.Unlock()
}

// IsTokenBlacklisted reports whether token was revoked. A Redis error counts
// as not revoked; failing closed would lock out every session on an outage.
func IsTokenBlacklisted(token string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if n, err := rc.Exists(ctx, blacklistKeyPrefix+token).Result(); err == nil {
			return n > 0
		}
	}

	localRevokedMu.RLock()
	expiresAt, ok := localRevoked[token]
	localRevokedMu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		localRevokedMu.Lock()
		delete(localRevoked, token)
		localRevokedMu.Unlock()
		return false
	}
	return true
}
