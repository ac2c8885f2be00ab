// Package testsuite holds the behaviour every highscore.Store backend has to
// share. Backend tests call Suite with a freshly connected store.
package testsuite

import (
	"context"
	"testing"

	"github.com/battlesnakeio/arcade/highscore"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func testStoreMissingKey(t *testing.T, s highscore.Store) {
	_, err := s.Get(context.Background(), uuid.NewV4().String())
	require.Equal(t, highscore.ErrNotFound, err)
}

func testStoreSetGet(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, key, 120))
	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, int64(120), v)

	// Overwrite, the store itself doesn't enforce max.
	require.NoError(t, s.Set(ctx, key, 30))
	v, err = s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, int64(30), v)

	// Zero is a value, not a missing key.
	require.NoError(t, s.Set(ctx, key, 0))
	v, err = s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, int64(0), v)
}

func testStoreKeysAreIndependent(t *testing.T, s highscore.Store) {
	a, b := uuid.NewV4().String(), uuid.NewV4().String()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, a, 10))
	require.NoError(t, s.Set(ctx, b, 20))

	v, err := s.Get(ctx, a)
	require.NoError(t, err)
	require.Equal(t, int64(10), v)
	v, err = s.Get(ctx, b)
	require.NoError(t, err)
	require.Equal(t, int64(20), v)
}

func testStoreRejectsNegative(t *testing.T, s highscore.Store) {
	err := s.Set(context.Background(), uuid.NewV4().String(), -10)
	require.Error(t, err)
}

func testTrackerRoundTrip(t *testing.T, s highscore.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	tr := highscore.NewTracker(ctx, s, key)
	require.Equal(t, int64(0), tr.HighScore())

	updated, err := tr.Observe(ctx, 40)
	require.NoError(t, err)
	require.True(t, updated)

	// A new tracker on the same store picks the value back up.
	tr = highscore.NewTracker(ctx, s, key)
	require.Equal(t, int64(40), tr.HighScore())

	updated, err = tr.Observe(ctx, 30)
	require.NoError(t, err)
	require.False(t, updated)
	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, int64(40), v)
}

// Suite runs the store tests against s, calling reset between each test.
func Suite(t *testing.T, s highscore.Store, reset func()) {
	tests := []struct {
		name string
		fn   func(*testing.T, highscore.Store)
	}{
		{"MissingKey", testStoreMissingKey},
		{"SetGet", testStoreSetGet},
		{"KeysAreIndependent", testStoreKeysAreIndependent},
		{"RejectsNegative", testStoreRejectsNegative},
		{"TrackerRoundTrip", testTrackerRoundTrip},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if reset != nil {
				reset()
			}
			test.fn(t, s)
		})
	}
}
