// Package paymentstatus manages the staff-maintained payment status of an order.
package paymentstatus

import (
	"context"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/orders"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
	"github.com/angelmondragon/vendorpayments-backend/pkg/sanitize"
)

const editorName = "payment_status"

// ReadOnlyNote is shown in place of the control when the order is not eligible.
const ReadOnlyNote = "Payment status can only be updated for orders with Processing, Completed, or Refunded status."

// Outcome describes what a save did. It is reported to logs and metrics only.
type Outcome string

const (
	OutcomeSaved      Outcome = "saved"
	OutcomeIneligible Outcome = "ineligible"
	OutcomeEmpty      Outcome = "empty"
	OutcomeRejected   Outcome = "rejected"
)

// Option is one entry of the status dropdown.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// View is the payment status control rendered on the order screen.
type View struct {
	OrderID     int64    `json:"order_id"`
	OrderStatus string   `json:"order_status"`
	Label       string   `json:"label"`
	Editable    bool     `json:"editable"`
	Value       string   `json:"value"`
	Options     []Option `json:"options,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// Service reads and writes the order payment_status attribute.
type Service interface {
	View(ctx context.Context, orderID int64) (*View, error)
	Save(ctx context.Context, orderID int64, submitted string) (Outcome, error)
}

type service struct {
	orders  orders.Lookup
	attrs   attributes.Store
	metrics *metrics.EditorMetrics
	logg    *logger.Logger
}

// NewService wires the status editor.
func NewService(lookup orders.Lookup, attrs attributes.Store, m *metrics.EditorMetrics, logg *logger.Logger) (Service, error) {
	if lookup == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders lookup required")
	}
	if attrs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "attribute store required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{orders: lookup, attrs: attrs, metrics: m, logg: logg}, nil
}

func (s *service) View(ctx context.Context, orderID int64) (*View, error) {
	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	current, err := s.attrs.Get(ctx, enums.EntityTypeOrder, orderID, attributes.KeyPaymentStatus)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read payment status")
	}

	view := &View{
		OrderID:     order.ID,
		OrderStatus: order.Status.String(),
		Label:       "Payment Status",
		Value:       current,
	}
	if !order.Status.AllowsPaymentStatusEdit() {
		view.Note = ReadOnlyNote
		return view, nil
	}

	view.Editable = true
	view.Options = []Option{{Value: "", Label: "Select a status"}}
	for _, status := range enums.PaymentStatuses() {
		view.Options = append(view.Options, Option{
			Value:    status.String(),
			Label:    status.Label(),
			Selected: status.String() == current,
		})
	}
	return view, nil
}

// Save stores submitted when the order is eligible and the sanitized value is
// an allowed status. Every other case leaves the attribute unchanged without
// an error; only lookup and storage failures are returned.
func (s *service) Save(ctx context.Context, orderID int64, submitted string) (Outcome, error) {
	ctx = s.logg.WithOrderID(ctx, orderID)

	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	outcome, value := evaluate(order.Status, submitted)
	if outcome == OutcomeSaved {
		if err := s.attrs.Set(ctx, enums.EntityTypeOrder, orderID, attributes.KeyPaymentStatus, value.String()); err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save payment status")
		}
	}

	s.metrics.IncSave(editorName, string(outcome))
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"order_status": order.Status,
		"outcome":      outcome,
	}), "payment status submission handled")
	return outcome, nil
}

// evaluate applies the eligibility gate and the allowed-value check.
func evaluate(status enums.OrderStatus, submitted string) (Outcome, enums.PaymentStatus) {
	if !status.AllowsPaymentStatusEdit() {
		return OutcomeIneligible, ""
	}
	if submitted == "" || submitted == "0" {
		return OutcomeEmpty, ""
	}
	value, err := enums.ParsePaymentStatus(sanitize.TextField(submitted))
	if err != nil {
		return OutcomeRejected, ""
	}
	return OutcomeSaved, value
}
