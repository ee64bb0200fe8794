package metrics

import "github.com/prometheus/client_golang/prometheus"

// Consumer message results.
const (
	ResultHandled   = "handled"
	ResultDuplicate = "duplicate"
	ResultInvalid   = "invalid"
	ResultIgnored   = "ignored"
	ResultRetry     = "retry"
)

// ConsumerMetrics counts Pub/Sub messages by consumer and result.
type ConsumerMetrics struct {
	messages *prometheus.CounterVec
}

// NewConsumerMetrics registers the consumer counters on the provided registerer.
func NewConsumerMetrics(reg prometheus.Registerer) *ConsumerMetrics {
	if reg == nil {
		return &ConsumerMetrics{}
	}
	messages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vendor_payments_consumer_messages_total",
		Help: "Pub/Sub messages processed partitioned by consumer and result.",
	}, []string{"consumer", "result"})
	reg.MustRegister(messages)
	return &ConsumerMetrics{messages: messages}
}

// IncMessage records one processed message.
func (c *ConsumerMetrics) IncMessage(consumer, result string) {
	if c == nil || c.messages == nil {
		return
	}
	c.messages.WithLabelValues(normalizeLabel(consumer), normalizeLabel(result)).Inc()
}
