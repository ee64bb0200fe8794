// Package productmeta edits the vendor attributes shown on the product form.
package productmeta

import (
	"context"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
	"github.com/angelmondragon/vendorpayments-backend/pkg/sanitize"
)

const editorName = "product_meta"

// Save outcomes per field.
const (
	OutcomeSaved = "saved"
	OutcomeEmpty = "empty"
)

// SaveResult lists which attributes a save wrote and which it left alone.
type SaveResult struct {
	Saved   []string `json:"saved"`
	Skipped []string `json:"skipped"`
}

// Service reads and writes the product vendor attributes.
type Service interface {
	Fields(ctx context.Context, productID int64) (*Fields, error)
	Save(ctx context.Context, productID int64, submission Submission) (SaveResult, error)
}

type service struct {
	attrs   attributes.Store
	metrics *metrics.EditorMetrics
	logg    *logger.Logger
}

// NewService wires the product metadata editor.
func NewService(attrs attributes.Store, m *metrics.EditorMetrics, logg *logger.Logger) (Service, error) {
	if attrs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "attribute store required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{attrs: attrs, metrics: m, logg: logg}, nil
}

func (s *service) Fields(ctx context.Context, productID int64) (*Fields, error) {
	if productID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive")
	}

	values := make(map[string]string, 3)
	for _, key := range []string{attributes.KeyVendorName, attributes.KeyPurchaseCost, attributes.KeyPaymentTerm} {
		value, err := s.attrs.Get(ctx, enums.EntityTypeProduct, productID, key)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read product attributes")
		}
		values[key] = value
	}

	return buildFields(productID,
		values[attributes.KeyVendorName],
		values[attributes.KeyPurchaseCost],
		values[attributes.KeyPaymentTerm],
	), nil
}

// Save persists each non-empty submitted value after sanitizing it as plain
// text. Empty values, including "0", leave the stored attribute untouched.
// Values are not checked against the option lists.
func (s *service) Save(ctx context.Context, productID int64, submission Submission) (SaveResult, error) {
	result := SaveResult{Saved: []string{}, Skipped: []string{}}
	if productID <= 0 {
		return result, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive")
	}
	ctx = s.logg.WithProductID(ctx, productID)

	fields := []struct {
		key   string
		value string
	}{
		{attributes.KeyVendorName, submission.VendorName},
		{attributes.KeyPurchaseCost, submission.PurchaseCost},
		{attributes.KeyPaymentTerm, submission.PaymentTerm},
	}

	for _, field := range fields {
		if isEmpty(field.value) {
			result.Skipped = append(result.Skipped, field.key)
			s.metrics.IncSave(editorName, OutcomeEmpty)
			continue
		}
		if err := s.attrs.Set(ctx, enums.EntityTypeProduct, productID, field.key, sanitize.TextField(field.value)); err != nil {
			return result, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save product attribute")
		}
		result.Saved = append(result.Saved, field.key)
		s.metrics.IncSave(editorName, OutcomeSaved)
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"saved":   result.Saved,
		"skipped": result.Skipped,
	}), "product vendor fields saved")
	return result, nil
}

// isEmpty follows the host form convention where "0" counts as no value.
func isEmpty(value string) bool {
	return value == "" || value == "0"
}
