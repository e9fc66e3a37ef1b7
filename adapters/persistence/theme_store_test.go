package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sameer-B786/portfolio/pkg/logger"
)

func TestThemeStoreDefaultsAndPersists(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	themes := NewThemeStore(backend, logger.NewNop())
	ctx := context.Background()

	assert.Equal(t, "dark", themes.Get(ctx))

	require.NoError(t, themes.Set(ctx, "light"))
	assert.Equal(t, "light", themes.Get(ctx))
}

func TestThemeStoreCorruptDocumentFallsBack(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	themes := NewThemeStore(backend, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, backend.Write(ctx, KeyTheme, []byte("broken")))
	assert.Equal(t, "dark", themes.Get(ctx))
}

func TestSessionStoreLifecycle(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	sessions := NewSessionStore(backend, logger.NewNop())
	ctx := context.Background()

	assert.Nil(t, sessions.Get(ctx))

	marker := SessionMarker{
		TokenID:   "abc",
		IssuedAt:  time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, sessions.Put(ctx, marker))

	got := sessions.Get(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.TokenID)

	require.NoError(t, sessions.Clear(ctx))
	assert.Nil(t, sessions.Get(ctx))
}
