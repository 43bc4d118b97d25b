package hand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(&ManagerConfig{Logger: zap.NewNop()})

	session, err := m.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID())
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, got)

	m.Remove(session.ID())
	assert.Equal(t, 0, m.Count())

	_, err = m.Get(session.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerSessionLimit(t *testing.T) {
	m := NewManager(&ManagerConfig{Logger: zap.NewNop(), MaxSessions: 2})

	_, err := m.Create()
	require.NoError(t, err)
	_, err = m.Create()
	require.NoError(t, err)

	_, err = m.Create()
	assert.ErrorIs(t, err, ErrSessionLimit)
}

func TestManagerSweep(t *testing.T) {
	m := NewManager(&ManagerConfig{
		Logger:      zap.NewNop(),
		IdleTimeout: 10 * time.Millisecond,
	})

	session, err := m.Create()
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	m.sweep()

	_, err = m.Get(session.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.Count())
}
