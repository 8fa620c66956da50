package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotHeld is returned by Unlock when the key expired or belongs to
// another holder.
var ErrLockNotHeld = errors.New("lock not held")

var unlockScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// Locker implements port.Locker with SET NX and a compare-and-delete
// release, so a holder whose lock expired cannot release a newer one.
type Locker struct {
	client redis.Cmdable
}

// NewLocker returns a locker backed by client.
func NewLocker(client redis.Cmdable) *Locker {
	return &Locker{client: client}
}

// TryLock takes key for ttl without blocking.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Unlock releases key if it is still held with token.
func (l *Locker) Unlock(ctx context.Context, key, token string) error {
	n, err := unlockScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("release lock %s: %w", key, err)
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// NopLocker always grants the lock. It is used when Redis is disabled.
type NopLocker struct{}

func (NopLocker) TryLock(context.Context, string, time.Duration) (string, bool, error) {
	return "", true, nil
}

func (NopLocker) Unlock(context.Context, string, string) error { return nil }
