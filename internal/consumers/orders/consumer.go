// Package orders consumes order completion events from Pub/Sub and replays them
// through the hook registry.
package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	"github.com/angelmondragon/vendorpayments-backend/pkg/eventing"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
)

// Name labels this consumer in metrics and redelivery guard keys.
const Name = "orders"

// EventTypeAttribute is the message attribute naming the event.
const EventTypeAttribute = "event_type"

type deliveryGuard interface {
	Claim(ctx context.Context, eventID uuid.UUID) (bool, error)
	Release(ctx context.Context, eventID uuid.UUID) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, event hooks.Event) error
}

// Message is the transport-neutral view of a Pub/Sub message.
type Message struct {
	ID         string
	Attributes map[string]string
	Data       []byte
}

// Result tells the receive loop whether to nack the message.
type Result struct {
	Nack    bool
	Outcome string
}

// Consumer turns order.thankyou messages into hook dispatches. Each envelope
// event id is dispatched at most once per idempotency TTL.
type Consumer struct {
	subscription *gcppubsub.Subscriber
	registry     dispatcher
	guard        deliveryGuard
	metrics      *metrics.ConsumerMetrics
	logg         *logger.Logger
}

// NewConsumer builds the orders consumer. The subscription may be nil when only
// Process is used.
func NewConsumer(subscription *gcppubsub.Subscriber, registry dispatcher, guard deliveryGuard, m *metrics.ConsumerMetrics, logg *logger.Logger) (*Consumer, error) {
	if registry == nil {
		return nil, errors.New("hook registry is required")
	}
	if guard == nil {
		return nil, errors.New("delivery guard is required")
	}
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &Consumer{
		subscription: subscription,
		registry:     registry,
		guard:        guard,
		metrics:      m,
		logg:         logg,
	}, nil
}

// Run receives messages until ctx is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	if c.subscription == nil {
		return errors.New("orders subscription is required")
	}
	return c.subscription.Receive(ctx, func(innerCtx context.Context, msg *gcppubsub.Message) {
		result := c.Process(innerCtx, Message{ID: msg.ID, Attributes: msg.Attributes, Data: msg.Data})
		if result.Nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

// Process handles one message. Malformed or foreign messages are acked and
// dropped; idempotency and dispatch failures are nacked for redelivery.
func (c *Consumer) Process(ctx context.Context, msg Message) Result {
	fields := map[string]any{"message_id": msg.ID}

	eventType := strings.TrimSpace(msg.Attributes[EventTypeAttribute])
	if eventType != enums.HookOrderThankYou.String() {
		fields["event_type"] = eventType
		c.logg.Debug(c.logg.WithFields(ctx, fields), "event not handled by orders consumer")
		return c.finish(Result{Outcome: metrics.ResultIgnored})
	}

	envelope, eventID, err := eventing.DecodeEnvelope(msg.Data)
	if err != nil {
		fields["error"] = err.Error()
		c.logg.Warn(c.logg.WithFields(ctx, fields), "invalid orders envelope")
		return c.finish(Result{Outcome: metrics.ResultInvalid})
	}
	fields["occurred_at"] = envelope.OccurredAt.Format(time.RFC3339Nano)

	payload, err := eventing.DecodeOrderThankYou(envelope)
	if err != nil {
		fields["error"] = err.Error()
		c.logg.Warn(c.logg.WithFields(ctx, fields), "invalid order thank-you payload")
		return c.finish(Result{Outcome: metrics.ResultInvalid})
	}
	logCtx := c.logg.WithFields(ctx, fields)
	logCtx = c.logg.WithOrderID(c.logg.WithEventID(logCtx, eventID.String()), payload.OrderID)

	claimed, err := c.guard.Claim(logCtx, eventID)
	if err != nil {
		c.logg.Error(logCtx, "delivery claim failed", err)
		return c.finish(Result{Nack: true, Outcome: metrics.ResultRetry})
	}
	if !claimed {
		c.logg.Info(logCtx, "event already processed")
		return c.finish(Result{Outcome: metrics.ResultDuplicate})
	}

	err = c.registry.Dispatch(logCtx, hooks.Event{Name: enums.HookOrderThankYou, EntityID: payload.OrderID})
	if err != nil {
		c.logg.Error(logCtx, "order thank-you dispatch failed", err)
		if relErr := c.guard.Release(logCtx, eventID); relErr != nil {
			c.logg.Error(logCtx, "delivery claim release failed", relErr)
		}
		return c.finish(Result{Nack: true, Outcome: metrics.ResultRetry})
	}

	c.logg.Info(logCtx, "order thank-you event handled")
	return c.finish(Result{Outcome: metrics.ResultHandled})
}

func (c *Consumer) finish(result Result) Result {
	c.metrics.IncMessage(Name, result.Outcome)
	return result
}
