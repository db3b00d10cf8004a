package lock

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	redisclient "github.com/cisretail/receiving/cmd/redis"
	"github.com/cisretail/receiving/model"
	"github.com/redis/go-redis/v9"
)

// errNoClient fails every lease operation closed when the Redis client
// was never initialized. A lease must never be granted by default.
var errNoClient = errors.New("redis client not initialized")

// LockRepository manages the advisory edit-session lease on a shipment.
// The lease stops a second person from opening the same document for
// counting; it does not serialize commits, the row lock does that.
type LockRepository interface {
	TryAcquire(ctx context.Context, l *model.AdvisoryLock, ttl time.Duration) (bool, error)
	Get(ctx context.Context, shipmentID uint64) (*model.AdvisoryLock, error)
	Extend(ctx context.Context, shipmentID, staffID uint64, sessionID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, shipmentID, staffID uint64, sessionID string) error
	TTL(ctx context.Context, shipmentID uint64) (time.Duration, error)
}

type redisLock struct{}

// NewLockRepository returns a Redis-backed LockRepository.
func NewLockRepository() LockRepository {
	return &redisLock{}
}

func lockKey(shipmentID uint64) string {
	return "shipment_edit_lock:" + strconv.FormatUint(shipmentID, 10)
}

func (r *redisLock) TryAcquire(ctx context.Context, l *model.AdvisoryLock, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, errNoClient
	}
	body, err := json.Marshal(l)
	if err != nil {
		return false, err
	}
	return client.SetNX(ctx, lockKey(l.ShipmentID), body, ttl).Result()
}

func (r *redisLock) Get(ctx context.Context, shipmentID uint64) (*model.AdvisoryLock, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, errNoClient
	}
	val, err := client.Get(ctx, lockKey(shipmentID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var l model.AdvisoryLock
	if err := json.Unmarshal([]byte(val), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Extend refreshes the lease TTL, but only for its current holder.
func (r *redisLock) Extend(ctx context.Context, shipmentID, staffID uint64, sessionID string, ttl time.Duration) (bool, error) {
	current, err := r.Get(ctx, shipmentID)
	if err != nil {
		return false, err
	}
	if current == nil || current.StaffID != staffID || current.SessionID != sessionID {
		return false, nil
	}
	client := redisclient.Get()
	if client == nil {
		return false, errNoClient
	}
	return client.Expire(ctx, lockKey(shipmentID), ttl).Result()
}

// Release drops the lease if held by the given staff session. Releasing
// a lease someone else holds is a no-op.
func (r *redisLock) Release(ctx context.Context, shipmentID, staffID uint64, sessionID string) error {
	current, err := r.Get(ctx, shipmentID)
	if err != nil {
		return err
	}
	if current == nil || current.StaffID != staffID || current.SessionID != sessionID {
		return nil
	}
	client := redisclient.Get()
	if client == nil {
		return errNoClient
	}
	return client.Del(ctx, lockKey(shipmentID)).Err()
}

func (r *redisLock) TTL(ctx context.Context, shipmentID uint64) (time.Duration, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, errNoClient
	}
	return client.TTL(ctx, lockKey(shipmentID)).Result()
}
