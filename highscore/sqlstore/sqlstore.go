package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/lib/pq"           // Import pq driver.
	_ "github.com/mattn/go-sqlite3" // Import sqlite3 driver.

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/highscore"
	"github.com/pkg/errors"
)

const migrations = `
CREATE TABLE IF NOT EXISTS high_scores (
	key VARCHAR(255) PRIMARY KEY,
	value BIGINT NOT NULL,
	updated TIMESTAMP NOT NULL
);
`

// dialect holds the statements that differ between drivers.
type dialect struct {
	driver string
	get    string
	set    string
}

var (
	postgres = dialect{
		driver: "postgres",
		get:    `SELECT value FROM high_scores WHERE key=$1`,
		set: `
		INSERT INTO high_scores (key, value, updated) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value=excluded.value, updated=excluded.updated`,
	}
	sqlite = dialect{
		driver: "sqlite3",
		get:    `SELECT value FROM high_scores WHERE key=?`,
		set: `
		INSERT INTO high_scores (key, value, updated) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value=excluded.value, updated=excluded.updated`,
	}
)

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	return open(postgres, url)
}

// NewSQLiteStore returns a new store using a sqlite database file.
func NewSQLiteStore(path string) (*Store, error) {
	return open(sqlite, path)
}

// New picks the driver from the url: postgres:// urls go to postgres,
// anything else is treated as a sqlite file path.
func New(url string) (*Store, error) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return NewSQLStore(url)
	}
	return NewSQLiteStore(url)
}

func open(d dialect, url string) (*Store, error) {
	db, err := sql.Open(d.driver, url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if d.driver == sqlite.driver {
		// sqlite only allows a single writer.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(config.MaxOpenConns)
		db.SetMaxIdleConns(config.MaxIdleConns)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to connect")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to migrate")
	}
	return &Store{db: db, dialect: d}, nil
}

// Store represents an SQL store.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (int64, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, highscore.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to get high score")
	}
	return v, nil
}

// Set overwrites the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value int64) error {
	if value < 0 {
		return highscore.ErrNegative
	}
	_, err := s.db.ExecContext(ctx, s.dialect.set, key, value, time.Now().UTC())
	return errors.Wrap(err, "unable to set high score")
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
