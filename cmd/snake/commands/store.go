package commands

import (
	"io"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/highscore/filestore"
	"github.com/battlesnakeio/arcade/highscore/redisstore"
	"github.com/battlesnakeio/arcade/highscore/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultSQLiteFile = "snake.db"

// openStore creates the high score backend called name.
func openStore(name, args string) (highscore.Store, error) {
	switch name {
	case "inmem":
		return highscore.InMemStore(), nil
	case "file":
		return filestore.NewFileStore(args), nil
	case "redis":
		s, err := redisstore.NewStore(args)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := sqlstore.NewSQLStore(args)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		if args == "" {
			args = defaultSQLiteFile
		}
		s, err := sqlstore.NewSQLiteStore(args)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, errors.Errorf("invalid backend %q", name)
}

// mustOpenStore opens the backend selected on the command line, wrapped with
// metrics. The returned func closes it.
func mustOpenStore() (highscore.Store, func()) {
	store, err := openStore(backend, backendArgs)
	if err != nil {
		log.WithError(err).
			WithField("backend", backend).
			Fatal("unable to start up backend store")
	}

	closeStore := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}
	return highscore.InstrumentStore(store), closeStore
}
