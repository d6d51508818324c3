package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DeliveryTTL is how long a processed webhook delivery id is remembered.
const DeliveryTTL = 24 * time.Hour

// DeliveryKey returns the Redis key for a webhook delivery id.
func DeliveryKey(id string) string {
	return "webhook:delivery:" + id
}

// DeliveryLedger remembers processed webhook deliveries so redelivered events are acknowledged
// without being applied twice. A ledger without a client remembers nothing.
type DeliveryLedger struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeliveryLedger returns a ledger backed by c. c may be nil.
func NewDeliveryLedger(c *redis.Client) *DeliveryLedger {
	return &DeliveryLedger{client: c, ttl: DeliveryTTL}
}

// Enabled reports whether the ledger has a Redis connection.
func (l *DeliveryLedger) Enabled() bool {
	return l != nil && l.client != nil
}

// Seen reports whether id was already recorded.
func (l *DeliveryLedger) Seen(ctx context.Context, id string) (bool, error) {
	if !l.Enabled() || id == "" {
		return false, nil
	}
	err := l.client.Get(ctx, DeliveryKey(id)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Record marks id as processed.
func (l *DeliveryLedger) Record(ctx context.Context, id string) error {
	if !l.Enabled() || id == "" {
		return nil
	}
	return l.client.Set(ctx, DeliveryKey(id), time.Now().UTC().Format(time.RFC3339), l.ttl).Err()
}
