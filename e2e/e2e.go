package e2e

import (
	"context"
	"io/ioutil"
	"math/rand"
	"net/http"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/session"
)

type client struct {
	baseURL string
	client  *http.Client
}

func (c *client) fetch(path string) (int, string, error) {
	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		return 0, "", err
	}
	data, err := ioutil.ReadAll(resp.Body)
	if cErr := resp.Body.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(data), nil
}

// frameQueue hands frames from the session goroutine to the player. It is
// buffered so rendering never waits on the player.
type frameQueue chan session.Frame

func (q frameQueue) Render(f session.Frame) {
	select {
	case q <- f:
	default:
	}
}

var directions = []rules.Direction{
	rules.DirectionUp,
	rules.DirectionDown,
	rules.DirectionLeft,
	rules.DirectionRight,
}

// playToEnd starts the session and steers randomly until the game is over.
// It returns the final frame.
func playToEnd(ctx context.Context, s *session.Session, frames frameQueue, rng *rand.Rand) (session.Frame, error) {
	if err := s.Start(); err != nil {
		return session.Frame{}, err
	}
	for {
		select {
		case <-ctx.Done():
			return session.Frame{}, ctx.Err()
		case f := <-frames:
			if f.Game.Phase == rules.PhaseOver {
				return f, nil
			}
			if rng.Intn(4) == 0 {
				if _, err := s.SetDirection(directions[rng.Intn(len(directions))]); err != nil {
					return session.Frame{}, err
				}
			}
		}
	}
}
