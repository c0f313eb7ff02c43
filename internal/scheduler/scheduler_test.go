package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mastra10/App-Distinta/internal/model"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) Refresh(ctx context.Context) (*model.RosterTable, error) {
	r.calls.Add(1)
	return nil, nil
}

func TestAddIntervalJob_Validation(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.Start()
	t.Cleanup(func() { _ = s.Stop() })

	_, err = s.AddIntervalJob(" ", time.Second, false, func() {})
	assert.ErrorIs(t, err, ErrEmptyJobName)

	_, err = s.AddIntervalJob("job", 0, false, func() {})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestRosterPrewarm_RunsImmediately(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	r := &countingRefresher{}
	require.NoError(t, RegisterRosterPrewarm(s, r, time.Hour, time.Second))
	s.Start()
	t.Cleanup(func() { _ = s.Stop() })

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestStop_Idempotent(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.Start()

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop())
}
