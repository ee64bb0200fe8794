package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeRunner struct {
	err   error
	block bool
}

func (f fakeRunner) Run(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "worker-test", Output: io.Discard})
}

func TestNewServiceValidation(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)

	_, err = NewService(ServiceParams{
		Logger:       testLogger(),
		Consumer:     fakeRunner{},
		Dependencies: []Dependency{{Name: "redis"}},
	})
	require.EqualError(t, err, "redis client is required")
}

func TestRunStopsOnFailedDependency(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Logger:       testLogger(),
		Consumer:     fakeRunner{block: true},
		Dependencies: []Dependency{{Name: "database", Pinger: fakePinger{err: errors.New("refused")}}},
	})
	require.NoError(t, err)

	err = svc.Run(context.Background())
	require.ErrorContains(t, err, "database ping failed")
}

func TestRunReturnsConsumerError(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Logger:       testLogger(),
		Consumer:     fakeRunner{err: errors.New("subscription gone")},
		Dependencies: []Dependency{{Name: "redis", Pinger: fakePinger{}}},
	})
	require.NoError(t, err)

	require.EqualError(t, svc.Run(context.Background()), "subscription gone")
}

func TestRunHonorsCancellation(t *testing.T) {
	svc, err := NewService(ServiceParams{Logger: testLogger(), Consumer: fakeRunner{block: true}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, svc.Run(ctx), context.DeadlineExceeded)
}
