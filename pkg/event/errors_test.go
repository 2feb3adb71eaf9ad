package event

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsSupportErrorsIs(t *testing.T) {
	wrapped := Wrap(ErrWorkloadDontExists, fmt.Errorf("workload wl-1 not found"))
	assert.ErrorIs(t, wrapped, ErrWorkloadDontExists)
	assert.NotErrorIs(t, wrapped, ErrCannotDoubleReplicas)
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	underlying := fmt.Errorf("boom")
	wrapped := Wrap(ErrClientDisconnected, underlying)
	assert.True(t, errors.Is(wrapped, underlying))
}

func TestWrapWithNonSchedulerErrorKindReturnsUnderlying(t *testing.T) {
	underlying := fmt.Errorf("boom")
	got := Wrap(underlying, underlying)
	assert.Equal(t, underlying, got)
}
