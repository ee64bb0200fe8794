package metrics

import "github.com/prometheus/client_golang/prometheus"

// EditorMetrics counts admin form saves by editor and outcome.
type EditorMetrics struct {
	saves *prometheus.CounterVec
}

// NewEditorMetrics registers the editor counters on the provided registerer.
func NewEditorMetrics(reg prometheus.Registerer) *EditorMetrics {
	if reg == nil {
		return &EditorMetrics{}
	}
	saves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vendor_payments_editor_saves_total",
		Help: "Admin editor saves partitioned by editor and outcome.",
	}, []string{"editor", "outcome"})
	reg.MustRegister(saves)
	return &EditorMetrics{saves: saves}
}

// IncSave records one save attempt for editor with the given outcome.
func (e *EditorMetrics) IncSave(editor, outcome string) {
	if e == nil || e.saves == nil {
		return
	}
	e.saves.WithLabelValues(normalizeLabel(editor), normalizeLabel(outcome)).Inc()
}
