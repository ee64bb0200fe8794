package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type runner interface {
	Run(ctx context.Context) error
}

// Dependency is a client probed before the worker starts consuming.
type Dependency struct {
	Name   string
	Pinger pinger
}

type ServiceParams struct {
	Logger       *logger.Logger
	Consumer     runner
	Dependencies []Dependency
	// MetricsAddr serves /metrics when set.
	MetricsAddr    string
	MetricsHandler http.Handler
}

type Service struct {
	logg           *logger.Logger
	consumer       runner
	deps           []Dependency
	metricsAddr    string
	metricsHandler http.Handler
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if params.Consumer == nil {
		return nil, errors.New("orders consumer is required")
	}
	for _, dep := range params.Dependencies {
		if dep.Pinger == nil {
			return nil, fmt.Errorf("%s client is required", dep.Name)
		}
	}
	return &Service{
		logg:           params.Logger,
		consumer:       params.Consumer,
		deps:           params.Dependencies,
		metricsAddr:    params.MetricsAddr,
		metricsHandler: params.MetricsHandler,
	}, nil
}

func (s *Service) ensureReadiness(ctx context.Context) error {
	for _, dep := range s.deps {
		if err := pingDependency(ctx, s.logg, dep.Name, dep.Pinger.Ping); err != nil {
			return err
		}
	}
	s.logg.Info(ctx, "all worker dependencies are ready")
	return nil
}

func pingDependency(ctx context.Context, logg *logger.Logger, name string, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		logg.Error(ctx, fmt.Sprintf("%s ping failed", name), err)
		return fmt.Errorf("%s ping failed: %w", name, err)
	}
	return nil
}

// Run blocks until ctx is canceled or the consumer stops.
func (s *Service) Run(ctx context.Context) error {
	if err := s.ensureReadiness(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 2)
	var server *http.Server
	if s.metricsAddr != "" && s.metricsHandler != nil {
		r := chi.NewRouter()
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
		server = &http.Server{Addr: s.metricsAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	go func() {
		errCh <- s.consumer.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		s.logg.Info(ctx, "worker context canceled")
		return ctx.Err()
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			s.logg.Error(ctx, "consumer stopped unexpectedly", err)
		}
		return err
	}
}
