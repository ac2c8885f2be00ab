package e2e

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/highscore/filestore"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverURL = "http://127.0.0.1:3456"

func newClient(url string) *client {
	return &client{
		baseURL: url,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestMain(m *testing.M) {
	enableE2e := flag.Bool("enable-e2e", false, "enable e2e tests")
	flag.Parse()

	if !*enableE2e {
		os.Exit(0)
		return
	}

	proc := exec.Command("snake", "serve", "--prometheus=false")
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr

	if err := proc.Start(); err != nil {
		panic(err)
	}

	code := m.Run()

	err := proc.Process.Kill()
	if err != nil {
		fmt.Printf("error while killing process: %v\n", err)
	}
	os.Exit(code)
}

func TestServesClient(t *testing.T) {
	c := newClient(serverURL)

	for i := 0; i < 10; i++ {
		if _, _, getErr := c.fetch("/"); getErr == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}

	pages := map[string]string{
		"/":          "gameCanvas",
		"/game.js":   "snakeHighScore",
		"/style.css": "canvas",
	}
	for path, want := range pages {
		code, body, err := c.fetch(path)
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, code, path)
		assert.Contains(t, body, want, path)
	}

	code, _, err := c.fetch("/missing.js")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPlaysToGameOver(t *testing.T) {
	const multiplier = 5

	dir, err := ioutil.TempDir("", "snake-e2e")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	store := filestore.NewFileStore(dir)

	var best int64
	for i := 0; i < multiplier; i++ {
		t.Run(fmt.Sprintf("game#%d", i), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			frames := make(frameQueue, 4096)
			recording := &bytes.Buffer{}
			rec := session.NewRecorder(recording)
			s := session.New(session.Options{
				Tracker: highscore.NewTracker(ctx, store, highscore.DefaultKey),
				Sinks:   []session.Sink{frames, rec},
				Rand:    rand.New(rand.NewSource(int64(i))),
			})

			runCtx, stop := context.WithCancel(ctx)
			errc := make(chan error, 1)
			go func() { errc <- s.Run(runCtx) }()

			last, err := playToEnd(ctx, s, frames, rand.New(rand.NewSource(int64(i))))
			stop()
			<-errc
			require.NoError(t, err)
			require.NoError(t, rec.Err())

			assert.True(t, last.Outcome.Ended())
			t.Logf("game finished id=%s turns=%d score=%d outcome=%s", last.Game.ID, last.Game.Turn, last.Game.Score, last.Outcome)

			recorded, err := session.ReadFrames(recording)
			require.NoError(t, err)
			var turn int64
			for _, f := range recorded {
				if f.Game.Turn != turn && f.Game.Turn != turn+1 {
					spew.Dump(recorded)
					t.Fatalf("turn jumped from %d to %d", turn, f.Game.Turn)
				}
				turn = f.Game.Turn
				assert.Equal(t, last.Game.ID, f.Game.ID)
			}
			assert.Equal(t, rules.PhaseOver, recorded[len(recorded)-1].Game.Phase)

			if int64(last.Game.Score) > best {
				best = int64(last.Game.Score)
			}
			v, err := store.Get(context.Background(), highscore.DefaultKey)
			if best == 0 {
				assert.Equal(t, highscore.ErrNotFound, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, best, v)
		})
	}
}
