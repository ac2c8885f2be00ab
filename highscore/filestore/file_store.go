package filestore

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path"
	"sync"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/pkg/errors"
)

const fileName = "highscores.json"

func defaultDir() string {
	return path.Join(homeDir(), ".snake")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a store that keeps every key in a single JSON file
// inside directory. An empty directory means ~/.snake.
func NewFileStore(directory string) highscore.Store {
	if directory == "" {
		directory = defaultDir()
	}
	return &fileStore{directory: directory}
}

type fileStore struct {
	lock      sync.Mutex
	directory string
}

func (fs *fileStore) path() string {
	return path.Join(fs.directory, fileName)
}

func (fs *fileStore) read() (map[string]int64, error) {
	values := map[string]int64{}
	data, err := ioutil.ReadFile(fs.path())
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read high score file")
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "corrupt high score file")
	}
	return values, nil
}

// write replaces the file through a rename so a crash never leaves half a
// file behind.
func (fs *fileStore) write(values map[string]int64) error {
	if err := os.MkdirAll(fs.directory, 0775); err != nil {
		return errors.Wrap(err, "unable to create high score directory")
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := ioutil.TempFile(fs.directory, fileName+".*")
	if err != nil {
		return errors.Wrap(err, "unable to create temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "unable to write high score file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return errors.Wrap(os.Rename(tmp.Name(), fs.path()), "unable to replace high score file")
}

func (fs *fileStore) Get(ctx context.Context, key string) (int64, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, err := fs.read()
	if err != nil {
		return 0, err
	}
	v, ok := values[key]
	if !ok {
		return 0, highscore.ErrNotFound
	}
	return v, nil
}

func (fs *fileStore) Set(ctx context.Context, key string, value int64) error {
	if value < 0 {
		return highscore.ErrNegative
	}
	fs.lock.Lock()
	defer fs.lock.Unlock()

	values, err := fs.read()
	if err != nil {
		return err
	}
	values[key] = value
	return fs.write(values)
}
