package eventing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/vendorpayments-backend/pkg/redis"
)

const processedScope = "evt:processed"

var (
	errGuardStore    = errors.New("idempotency store is required")
	errGuardConsumer = errors.New("consumer name is required")
	errGuardEventID  = errors.New("event id is required")
)

// DeliveryGuard suppresses Pub/Sub redeliveries for one consumer. An event id
// is claimed with SETNX under
// vp:idempotency:evt:processed:<consumer>:<event_id> for the TTL; a zero TTL
// keeps the claim until it is released.
type DeliveryGuard struct {
	store    redis.IdempotencyStore
	consumer string
	ttl      time.Duration
	now      func() time.Time
}

func NewDeliveryGuard(store redis.IdempotencyStore, consumer string, ttl time.Duration) (*DeliveryGuard, error) {
	if store == nil {
		return nil, errGuardStore
	}
	consumer = strings.TrimSpace(consumer)
	if consumer == "" {
		return nil, errGuardConsumer
	}
	if ttl < 0 {
		return nil, errors.New("ttl must be non-negative")
	}
	return &DeliveryGuard{store: store, consumer: consumer, ttl: ttl, now: time.Now}, nil
}

// Claim reports whether this delivery is the first for eventID. A false
// result means an earlier delivery already claimed it.
func (g *DeliveryGuard) Claim(ctx context.Context, eventID uuid.UUID) (bool, error) {
	key, err := g.key(eventID)
	if err != nil {
		return false, err
	}
	return g.store.SetNX(ctx, key, g.now().UTC().Format(time.RFC3339Nano), g.ttl)
}

// Release drops the claim so the next delivery of eventID is handled again.
func (g *DeliveryGuard) Release(ctx context.Context, eventID uuid.UUID) error {
	key, err := g.key(eventID)
	if err != nil {
		return err
	}
	return g.store.Del(ctx, key)
}

func (g *DeliveryGuard) key(eventID uuid.UUID) (string, error) {
	if eventID == uuid.Nil {
		return "", errGuardEventID
	}
	return g.store.IdempotencyKey(processedScope+":"+g.consumer, eventID.String()), nil
}
