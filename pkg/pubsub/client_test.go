package pubsub

import (
	"context"
	"testing"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
)

func TestSubscriptionResourceName(t *testing.T) {
	require.Equal(t, "projects/p1/subscriptions/vp-orders", subscriptionResourceName("p1", " vp-orders "))
	require.Equal(t, "projects/other/subscriptions/s", subscriptionResourceName("p1", "projects/other/subscriptions/s"))
	require.Equal(t, "", subscriptionResourceName("", "vp-orders"))
	require.Equal(t, "", subscriptionResourceName("p1", "  "))
}

func TestSubscriptionNamesSkipsBlank(t *testing.T) {
	require.Empty(t, subscriptionNames(config.PubSubConfig{}))
	require.Equal(t, []string{"vp-orders"}, subscriptionNames(config.PubSubConfig{OrdersSubscription: " vp-orders "}))
}

func TestNewClientRequiresProject(t *testing.T) {
	_, err := NewClient(context.Background(), config.GCPConfig{}, config.PubSubConfig{OrdersSubscription: "s"}, nil)
	require.ErrorIs(t, err, errProjectIDRequired)
}

func TestNilClientHandles(t *testing.T) {
	var c *Client
	require.Nil(t, c.OrdersSubscription())
	require.Nil(t, c.Subscription("s"))
	require.Error(t, c.Ping(context.Background()))
	require.NoError(t, c.Close())
}

func TestReceiveSettingsOverlay(t *testing.T) {
	base := pubsub.ReceiveSettings{MaxOutstandingMessages: 1000, NumGoroutines: 4, MaxExtension: time.Hour}

	got := receiveSettings(config.PubSubConfig{MaxOutstandingMessages: 25, MaxExtension: 5 * time.Minute}, base)
	require.Equal(t, 25, got.MaxOutstandingMessages)
	require.Equal(t, 4, got.NumGoroutines)
	require.Equal(t, 5*time.Minute, got.MaxExtension)

	require.Equal(t, base, receiveSettings(config.PubSubConfig{}, base))
}
