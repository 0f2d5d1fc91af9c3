package utils

import (
	"context"
	"sync"
	"time"
)

// OAuth state tokens are single use with a short TTL. Redis backs them so
// the callback can land on any instance; without Redis a process-local map
// covers single-instance deployments.

const stateKeyPrefix = "oauth:state:"

var (
	localStates   = map[string]time.Time{}
	localStatesMu sync.Mutex
)

// SaveState records an OAuth state token for later single-use consumption.
func SaveState(state string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Set(ctx, stateKeyPrefix+state, "1", ttl).Err(); err == nil {
			return
		}
	}
	localStatesMu.Lock()
	localStates[state] = time.Now().Add(ttl)
	localStatesMu.Unlock()
}

// ConsumeState removes the token and reports whether it was live. A second
// consume of the same token always fails.
func ConsumeState(state string) bool {
	if rc := GetRedis(); rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if v, err := rc.GetDel(ctx, stateKeyPrefix+state).Result(); err == nil {
			return v != ""
		}
	}
	localStatesMu.Lock()
	expiry, ok := localStates[state]
	if ok {
		delete(localStates, state)
	}
	localStatesMu.Unlock()
	return ok && time.Now().Before(expiry)
}
