package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_MissingKeyIsNil(t *testing.T) {
	store := setupStore(t)

	v, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLiteStore_SetManyAndOverwrite(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		keyToken:   []byte("t1"),
		keyProfile: []byte(`{"id":"u1"}`),
	}))

	v, err := store.Get(ctx, keyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("t1"), v)

	require.NoError(t, store.SetMany(ctx, map[string][]byte{keyToken: []byte("t2")}))
	v, err = store.Get(ctx, keyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("t2"), v)
}

func TestSQLiteStore_DeleteMany(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		keyToken:           []byte("t1"),
		keyProfile:         []byte("p1"),
		keyAdminLastLogout: []byte("2026-01-01T00:00:00Z"),
	}))

	require.NoError(t, store.DeleteMany(ctx, keyToken, keyProfile))

	v, err := store.Get(ctx, keyToken)
	require.NoError(t, err)
	require.Nil(t, v)

	// Unrelated keys survive.
	v, err = store.Get(ctx, keyAdminLastLogout)
	require.NoError(t, err)
	require.Equal(t, []byte("2026-01-01T00:00:00Z"), v)
}
