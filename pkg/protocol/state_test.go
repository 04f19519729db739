package protocol

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/protocol/pkg/log"
)

const testKeyfileJSON = `{
	"btc_private_key": "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291",
	"eth_private_key": "4c0883a69102937d6231471b5dbb6204fe512961708279feb1be6ae5538da033",
	"neo_private_key": "7d3b7e2f12ab34cd56ef78ab90cd12ef34ab56cd78ef90ab12cd34ef56ab78cd"
}`

// newTestState builds session state from a throwaway keyfile on disk.
func newTestState(t *testing.T) *State {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyfile.json")
	require.NoError(t, os.WriteFile(path, []byte(testKeyfileJSON), 0o600))

	state, err := NewState(path, log.NewNoopLogger())
	require.NoError(t, err)
	return state
}

func TestNewState(t *testing.T) {
	t.Run("with keyfile", func(t *testing.T) {
		state := newTestState(t)

		signer, release, err := state.Signer(context.Background())
		require.NoError(t, err)
		defer release()
		assert.NotNil(t, signer)
	})

	t.Run("without keyfile has no signer", func(t *testing.T) {
		state, err := NewState("", log.NewNoopLogger())
		require.NoError(t, err)

		_, _, err = state.Signer(context.Background())
		require.ErrorIs(t, err, ErrNoSigner)
	})

	t.Run("with unreadable keyfile fails", func(t *testing.T) {
		_, err := NewState(filepath.Join(t.TempDir(), "missing.json"), log.NewNoopLogger())
		assert.Error(t, err)
	})
}

func TestStateLock(t *testing.T) {
	t.Run("release makes the signer available again", func(t *testing.T) {
		state := newTestState(t)

		_, release, err := state.Signer(context.Background())
		require.NoError(t, err)
		release()

		_, release, err = state.Signer(context.Background())
		require.NoError(t, err)
		release()
	})

	t.Run("acquisition respects context cancellation", func(t *testing.T) {
		state := newTestState(t)

		_, release, err := state.Signer(context.Background())
		require.NoError(t, err)
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, _, err = state.Signer(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "state lock unavailable")
	})

	t.Run("missing signer releases the lock", func(t *testing.T) {
		state, err := NewState("", log.NewNoopLogger())
		require.NoError(t, err)

		// Two consecutive failures prove the failed accessor did not leak
		// the lock.
		_, _, err = state.Signer(context.Background())
		require.ErrorIs(t, err, ErrNoSigner)
		_, _, err = state.Signer(context.Background())
		require.ErrorIs(t, err, ErrNoSigner)
	})
}
