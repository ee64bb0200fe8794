package vendorpayments

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/vendorpayments-backend/pkg/errors"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
)

// Service writes ledger rows for completed orders.
type Service interface {
	// RecordOrder inserts one row per line item of the order and returns how
	// many were written. Missing orders are a no-op. Rows are inserted one at
	// a time without a transaction; failures are combined into the error and
	// do not stop the remaining inserts.
	RecordOrder(ctx context.Context, orderID int64) (int, error)
}

// ServiceParams groups the Service dependencies.
type ServiceParams struct {
	Repo       Repository
	Orders     orders.Lookup
	Attributes attributes.Reader
	Metrics    *metrics.LedgerMetrics
	Logger     *logger.Logger
}

type service struct {
	repo    Repository
	orders  orders.Lookup
	attrs   attributes.Reader
	metrics *metrics.LedgerMetrics
	logg    *logger.Logger
}

// NewService wires a ledger service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "vendor payments repository required")
	}
	if params.Orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders lookup required")
	}
	if params.Attributes == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "attribute reader required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		repo:    params.Repo,
		orders:  params.Orders,
		attrs:   params.Attributes,
		metrics: params.Metrics,
		logg:    logg,
	}, nil
}

func (s *service) RecordOrder(ctx context.Context, orderID int64) (int, error) {
	ctx = s.logg.WithOrderID(ctx, orderID)

	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		if orders.IsNotFound(err) {
			s.metrics.IncOrderMissing()
			s.logg.Info(ctx, "order not found; no ledger rows written")
			return 0, nil
		}
		return 0, err
	}

	rows, errs := PlanRows(ctx, *order, s.attrs)
	if errs != nil {
		for range multierr.Errors(errs) {
			s.metrics.IncFailed()
		}
		s.logg.Error(ctx, "ledger rows skipped", errs)
	}

	inserted := 0
	for i := range rows {
		row := &rows[i]
		if err := s.repo.Create(ctx, row); err != nil {
			s.metrics.IncFailed()
			dump := pkgerrors.Dump(err)
			s.logg.Error(s.logg.WithFields(s.logg.WithProductID(ctx, row.ProductID), map[string]any{
				"db_code":       dump.DBCode,
				"db_constraint": dump.DBConstraint,
			}), "ledger row insert failed", err)
			errs = multierr.Append(errs, fmt.Errorf("insert product %d: %w", row.ProductID, err))
			continue
		}
		s.metrics.IncInserted()
		inserted++
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"order_status": order.Status,
		"line_items":   len(order.Items),
		"rows_written": inserted,
	}), "vendor payment rows recorded")
	return inserted, errs
}
