package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/circulation-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	successfulService := func() error { return nil }
	errService := errors.New("service error")
	failingService := func() error { return errService }

	tests := []struct {
		name             string
		recordLength     int
		timeout          time.Duration
		percentile       float64
		recoveryRequests int
		run              func(t *testing.T, cb circuit_breaker.CircuitBreaker)
	}{
		{
			name:             "stays closed on success",
			recordLength:     10,
			timeout:          time.Second,
			percentile:       0.3,
			recoveryRequests: 2,
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 50; i++ {
					require.NoError(t, cb.Call(successfulService))
				}
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name:             "opens after failure share reached",
			recordLength:     10,
			timeout:          time.Hour,
			percentile:       0.3,
			recoveryRequests: 2,
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				for i := 0; i < 3; i++ {
					require.ErrorIs(t, cb.Call(failingService), errService)
				}
				require.Equal(t, circuit_breaker.Open, cb.State())
				called := false
				err := cb.Call(func() error { called = true; return nil })
				require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
				require.False(t, called)
			},
		},
		{
			name:             "half-open recovers",
			recordLength:     4,
			timeout:          10 * time.Millisecond,
			percentile:       0.5,
			recoveryRequests: 2,
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				_ = cb.Call(failingService)
				_ = cb.Call(failingService)
				require.Equal(t, circuit_breaker.Open, cb.State())

				time.Sleep(20 * time.Millisecond)
				require.NoError(t, cb.Call(successfulService))
				require.Equal(t, circuit_breaker.HalfOpen, cb.State())
				require.NoError(t, cb.Call(successfulService))
				require.Equal(t, circuit_breaker.Closed, cb.State())
			},
		},
		{
			name:             "half-open failure reopens",
			recordLength:     4,
			timeout:          10 * time.Millisecond,
			percentile:       0.5,
			recoveryRequests: 2,
			run: func(t *testing.T, cb circuit_breaker.CircuitBreaker) {
				_ = cb.Call(failingService)
				_ = cb.Call(failingService)
				time.Sleep(20 * time.Millisecond)
				require.ErrorIs(t, cb.Call(failingService), errService)
				require.Equal(t, circuit_breaker.Open, cb.State())
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(tt.recordLength, tt.timeout, tt.percentile, tt.recoveryRequests)
			tt.run(t, cb)
		})
	}
}
