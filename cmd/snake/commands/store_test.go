package commands

import (
	"context"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/dlsteuer/miniredis"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, s highscore.Store) {
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", 30))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, int64(30), v)
}

func closeIfCloser(t *testing.T, s highscore.Store) {
	if c, ok := s.(io.Closer); ok {
		require.NoError(t, c.Close())
	}
}

func TestOpenStoreBackends(t *testing.T) {
	dir, err := ioutil.TempDir("", "snake-store")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	tests := []struct {
		name string
		args string
	}{
		{"inmem", ""},
		{"file", dir},
		{"sqlite", filepath.Join(dir, "scores.db")},
		{"redis", "redis://" + server.Addr()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := openStore(test.name, test.args)
			require.NoError(t, err)
			defer closeIfCloser(t, s)
			roundTrip(t, s)
		})
	}
}

func TestOpenStoreInvalid(t *testing.T) {
	s, err := openStore("floppy", "")
	require.Error(t, err)
	require.Nil(t, s)
	require.Contains(t, err.Error(), "floppy")
}

func TestOpenStoreBadRedisURL(t *testing.T) {
	s, err := openStore("redis", "not a url")
	require.Error(t, err)
	require.Nil(t, s)
}
