package eventing

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

// CurrentVersion is the envelope version produced and accepted by this service.
const CurrentVersion = 1

// ActorRef identifies who produced the event.
type ActorRef struct {
	StaffID string `json:"staffId,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Envelope is the stable payload structure carried in Pub/Sub message data.
type Envelope struct {
	Version    int             `json:"version"`
	EventID    string          `json:"eventId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Actor      *ActorRef       `json:"actor,omitempty"`
	Data       json.RawMessage `json:"data"`
}

// OrderThankYou is the data block of an order.thankyou event.
type OrderThankYou struct {
	OrderID int64 `json:"orderId"`
}

var (
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	ErrMissingEventID     = errors.New("event id missing")
)

// NewEnvelope wraps data in a versioned envelope with a fresh event id.
func NewEnvelope(data any, actor *ActorRef, now time.Time) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode event data: %w", err)
	}
	return Envelope{
		Version:    CurrentVersion,
		EventID:    uuid.NewString(),
		OccurredAt: now.UTC(),
		Actor:      actor,
		Data:       raw,
	}, nil
}

// DecodeEnvelope parses message data and checks the version and event id.
func DecodeEnvelope(payload []byte) (Envelope, uuid.UUID, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Envelope{}, uuid.Nil, fmt.Errorf("decode payload envelope: %w", err)
	}
	if env.Version != CurrentVersion {
		return env, uuid.Nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	if strings.TrimSpace(env.EventID) == "" {
		return env, uuid.Nil, ErrMissingEventID
	}
	eventID, err := uuid.Parse(strings.TrimSpace(env.EventID))
	if err != nil {
		return env, uuid.Nil, fmt.Errorf("parse event id: %w", err)
	}
	return env, eventID, nil
}

// DecodeOrderThankYou extracts the order id of an order.thankyou envelope.
func DecodeOrderThankYou(env Envelope) (OrderThankYou, error) {
	var data OrderThankYou
	if len(env.Data) == 0 {
		return data, fmt.Errorf("%s: data missing", enums.HookOrderThankYou)
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return data, fmt.Errorf("%s: decode data: %w", enums.HookOrderThankYou, err)
	}
	if data.OrderID <= 0 {
		return data, fmt.Errorf("%s: orderId must be positive", enums.HookOrderThankYou)
	}
	return data, nil
}
