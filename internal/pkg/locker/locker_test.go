package locker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockerLocal(t *testing.T) {
	ctx := context.Background()
	l := NewLockerLocal()

	release, err := l.TryLock(ctx, "claim:c1:alice")
	require.NoError(t, err)

	_, err = l.TryLock(ctx, "claim:c1:alice")
	assert.ErrorIs(t, err, ErrLocked)

	other, err := l.TryLock(ctx, "claim:c1:bob")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := l.TryLock(ctx, "claim:c1:alice")
	require.NoError(t, err)
	again()
}
