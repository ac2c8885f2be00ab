package redisstore

import (
	"context"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// keyPrefix namespaces every slot so the store can share a redis database.
const keyPrefix = "snake:highscore:"

// Store is a redis backed high score store.
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect ")
	}

	return &Store{client: client}, nil
}

// Get reads the value stored under key.
func (rs *Store) Get(ctx context.Context, key string) (int64, error) {
	v, err := rs.client.Get(keyPrefix + key).Int64()
	if err == redis.Nil {
		return 0, highscore.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to get high score")
	}
	return v, nil
}

// Set overwrites the value stored under key.
func (rs *Store) Set(ctx context.Context, key string, value int64) error {
	if value < 0 {
		return highscore.ErrNegative
	}
	err := rs.client.Set(keyPrefix+key, value, 0).Err()
	return errors.Wrap(err, "unable to set high score")
}

// Close closes the underlying redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}
