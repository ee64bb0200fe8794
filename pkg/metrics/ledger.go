package metrics

import "github.com/prometheus/client_golang/prometheus"

// LedgerMetrics counts vendor payment ledger writes.
type LedgerMetrics struct {
	inserted      prometheus.Counter
	failed        prometheus.Counter
	ordersMissing prometheus.Counter
}

// NewLedgerMetrics registers the ledger counters on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	inserted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vendor_payments_ledger_rows_inserted_total",
		Help: "Vendor payment ledger rows written.",
	})
	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vendor_payments_ledger_insert_failures_total",
		Help: "Vendor payment ledger rows that failed to insert.",
	})
	missing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vendor_payments_ledger_orders_missing_total",
		Help: "Completion signals received for orders that could not be found.",
	})
	reg.MustRegister(inserted, failed, missing)
	return &LedgerMetrics{inserted: inserted, failed: failed, ordersMissing: missing}
}

func (l *LedgerMetrics) IncInserted() {
	if l == nil || l.inserted == nil {
		return
	}
	l.inserted.Inc()
}

func (l *LedgerMetrics) IncFailed() {
	if l == nil || l.failed == nil {
		return
	}
	l.failed.Inc()
}

func (l *LedgerMetrics) IncOrderMissing() {
	if l == nil || l.ordersMissing == nil {
		return
	}
	l.ordersMissing.Inc()
}
