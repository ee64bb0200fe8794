package eventing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeAndDecode(t *testing.T) {
	now := time.Date(2025, 1, 14, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	env, err := NewEnvelope(OrderThankYou{OrderID: 4411}, &ActorRef{Role: "storefront"}, now)
	require.NoError(t, err)
	require.Equal(t, CurrentVersion, env.Version)
	require.Equal(t, time.UTC, env.OccurredAt.Location())

	payload, err := json.Marshal(env)
	require.NoError(t, err)

	decoded, eventID, err := DecodeEnvelope(payload)
	require.NoError(t, err)
	require.Equal(t, env.EventID, eventID.String())

	data, err := DecodeOrderThankYou(decoded)
	require.NoError(t, err)
	require.EqualValues(t, 4411, data.OrderID)
}

func TestDecodeEnvelopeRejects(t *testing.T) {
	cases := map[string]string{
		"malformed":    `{not json`,
		"version":      `{"version":2,"eventId":"` + uuid.NewString() + `","data":{"orderId":1}}`,
		"missing id":   `{"version":1,"data":{"orderId":1}}`,
		"malformed id": `{"version":1,"eventId":"evt-1","data":{"orderId":1}}`,
	}
	for name, payload := range cases {
		_, _, err := DecodeEnvelope([]byte(payload))
		require.Error(t, err, name)
	}

	_, _, err := DecodeEnvelope([]byte(`{"version":7,"eventId":"x"}`))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeOrderThankYouRejects(t *testing.T) {
	for _, data := range []string{``, `{"orderId":"abc"}`, `{"orderId":0}`, `{}`} {
		_, err := DecodeOrderThankYou(Envelope{Version: 1, Data: json.RawMessage(data)})
		require.Error(t, err, data)
	}
}
