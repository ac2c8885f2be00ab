package highscore

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Tracker keeps the high score in memory and writes every improvement
// through to a Store.
type Tracker struct {
	store Store
	key   string

	mu   sync.Mutex
	high int64
}

// NewTracker reads the current high score from the store. A missing value
// starts the tracker at zero. When the store can't be read the failure is
// logged and the tracker also starts at zero, play carries on without the
// stored value.
func NewTracker(ctx context.Context, store Store, key string) *Tracker {
	if key == "" {
		key = DefaultKey
	}
	t := &Tracker{store: store, key: key}

	v, err := store.Get(ctx, key)
	switch {
	case err == ErrNotFound:
	case err != nil:
		log.WithError(err).
			WithField("key", key).
			Warn("unable to read high score, starting from 0")
	case v > 0:
		t.high = v
	}
	return t
}

// HighScore returns the best score seen so far.
func (t *Tracker) HighScore() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.high
}

// Observe records score. It returns true when score beat the high score. The
// in-memory value is raised even when persisting it fails, in that case the
// store error is returned as well.
func (t *Tracker) Observe(ctx context.Context, score int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if score <= t.high {
		return false, nil
	}
	t.high = score
	return true, t.store.Set(ctx, t.key, score)
}

// Reset clears the stored high score.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.high = 0
	return t.store.Set(ctx, t.key, 0)
}
