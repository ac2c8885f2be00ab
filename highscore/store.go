// Package highscore keeps the best score ever reached. The value lives behind
// a Store so it can outlive the process: a file, redis or an SQL database.
package highscore

import (
	"context"
	"errors"
	"sync"
)

// DefaultKey is the slot the high score is stored under.
const DefaultKey = "snakeHighScore"

var (
	// ErrNotFound is returned when no value has been stored for a key.
	ErrNotFound = errors.New("highscore: key not found")
	// ErrNegative is returned when a negative value is written.
	ErrNegative = errors.New("highscore: value must not be negative")
)

// Store is the interface to the backend store.
type Store interface {
	Get(ctx context.Context, key string) (int64, error)
	Set(ctx context.Context, key string, value int64) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		values: map[string]int64{},
	}
}

type inmem struct {
	values map[string]int64
	lock   sync.Mutex
}

func (in *inmem) Get(ctx context.Context, key string) (int64, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if v, ok := in.values[key]; ok {
		return v, nil
	}
	return 0, ErrNotFound
}

func (in *inmem) Set(ctx context.Context, key string, value int64) error {
	if value < 0 {
		return ErrNegative
	}
	in.lock.Lock()
	defer in.lock.Unlock()

	in.values[key] = value
	return nil
}
