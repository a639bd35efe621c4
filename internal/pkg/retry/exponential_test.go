package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestRetrier_Execute(t *testing.T) {
	tests := []struct {
		name          string
		failures      int
		errToReturn   error
		retryable     func(error) bool
		expectedCalls int
		expectErr     bool
	}{
		{name: "success first try", failures: 0, expectedCalls: 1},
		{name: "success after two failures", failures: 2, errToReturn: errors.New("boom"), expectedCalls: 3},
		{name: "exhausted", failures: 10, errToReturn: errors.New("boom"), expectedCalls: 4, expectErr: true},
		{name: "permanent stops immediately", failures: 10, errToReturn: Permanent(errors.New("bad")), expectedCalls: 1, expectErr: true},
		{
			name:          "retryable func rejects",
			failures:      10,
			errToReturn:   errors.New("bad request"),
			retryable:     func(error) bool { return false },
			expectedCalls: 1,
			expectErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fastConfig()
			cfg.RetryableFunc = tt.retryable
			r := New(cfg, logger.NewNopLogger())

			calls := 0
			err := r.Execute(context.Background(), func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.errToReturn
				}
				return nil
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_PermanentUnwraps(t *testing.T) {
	sentinel := errors.New("sentinel")
	r := New(fastConfig(), logger.NewNopLogger())

	err := r.Execute(context.Background(), func(context.Context) error {
		return Permanent(sentinel)
	})

	assert.Equal(t, sentinel, err)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.BaseDelay = time.Second
	cfg.MaxDelay = time.Second
	r := New(cfg, logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Execute(ctx, func(context.Context) error { return errors.New("boom") })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCalculateDelay_Capped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, logger.NewNopLogger())

	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 3*time.Second, r.calculateDelay(5))
}
