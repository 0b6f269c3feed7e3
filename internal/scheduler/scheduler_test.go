package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidSpec(t *testing.T) {
	s, err := New("not a cron spec", func() error { return nil })
	require.Error(t, err)
	assert.Nil(t, s)
}

func TestNew_DefaultSpec(t *testing.T) {
	s, err := New("", func() error { return nil })
	require.NoError(t, err)
	require.NotNil(t, s)

	s.Start()
	s.Stop()
}

func TestRun_SwallowsJobError(t *testing.T) {
	calls := 0

	s, err := New(DefaultCronSpec, func() error {
		calls++
		return errors.New("send failed")
	})
	require.NoError(t, err)

	// run never panics and never propagates the job error
	s.run()
	s.run()

	assert.Equal(t, 2, calls)
}
