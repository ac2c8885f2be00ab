// Package session runs a single game of snake in real time. It owns the game,
// drives it with a timer that follows the game speed, applies player input
// between ticks and publishes every change to render sinks.
package session

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/rules"
	log "github.com/sirupsen/logrus"
)

// ErrStopped is returned by calls made after Run has returned.
var ErrStopped = errors.New("session: stopped")

// Frame is what sinks receive after every change to the game.
type Frame struct {
	Game      rules.Snapshot `json:"game"`
	Outcome   rules.Outcome  `json:"outcome"`
	HighScore int64          `json:"highScore"`
}

// Sink receives frames. Render is called from the session goroutine and
// must not call back into the session.
type Sink interface {
	Render(Frame)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Frame)

// Render calls f.
func (f SinkFunc) Render(fr Frame) { f(fr) }

// Options configure a Session. Every field is optional.
type Options struct {
	Tracker *highscore.Tracker
	Sinks   []Sink
	Clock   Clock
	Rand    rules.Rand
	// GameOptions are passed to rules.NewGame on every reset.
	GameOptions []rules.Option
}

// Session is a running game. All methods are safe to call from any
// goroutine, they are queued and executed between ticks by Run.
type Session struct {
	tracker *highscore.Tracker
	sinks   []Sink
	clock   Clock
	rng     rules.Rand
	gameOps []rules.Option

	cmds    chan command
	done    chan struct{}
	game    *rules.Game
	outcome rules.Outcome
	timer   Timer
}

type command struct {
	fn   func(s *Session)
	done chan struct{}
}

// New creates a session holding a fresh idle game. Nothing happens until Run
// is called.
func New(opts Options) *Session {
	s := &Session{
		tracker: opts.Tracker,
		sinks:   opts.Sinks,
		clock:   opts.Clock,
		rng:     opts.Rand,
		gameOps: opts.GameOptions,
		cmds:    make(chan command),
		done:    make(chan struct{}),
		outcome: rules.OutcomeNone,
	}
	if s.clock == nil {
		s.clock = RealClock
	}
	if s.tracker == nil {
		s.tracker = highscore.NewTracker(context.Background(), highscore.InMemStore(), highscore.DefaultKey)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.game = s.newGame()
	return s
}

func (s *Session) newGame() *rules.Game {
	opts := append([]rules.Option{rules.WithRand(s.rng)}, s.gameOps...)
	g := rules.NewGame(opts...)
	gamesCreated.Inc()
	log.WithField("game", g.ID()).Debug("new game")
	return g
}

// Run processes commands and ticks until ctx is done. It must only be called
// once.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	defer s.stopTimer()

	s.render()
	for {
		var fire <-chan time.Time
		if s.timer != nil {
			fire = s.timer.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-s.cmds:
			c.fn(s)
			close(c.done)
		case <-fire:
			s.tick()
		}
	}
}

// do runs fn on the session goroutine and waits for it to finish.
func (s *Session) do(fn func(s *Session)) error {
	c := command{fn: fn, done: make(chan struct{})}
	select {
	case s.cmds <- c:
	case <-s.done:
		return ErrStopped
	}
	<-c.done
	return nil
}

// Start begins an idle game.
func (s *Session) Start() error {
	return s.do(func(s *Session) {
		if s.game.Phase() != rules.PhaseIdle {
			return
		}
		s.game.Start()
		s.armTimer()
		log.WithField("game", s.game.ID()).Info("game started")
		s.render()
	})
}

// Pause freezes a running game and stops its timer.
func (s *Session) Pause() error {
	return s.do(func(s *Session) { s.pause() })
}

// Resume continues a paused game.
func (s *Session) Resume() error {
	return s.do(func(s *Session) { s.resume() })
}

// TogglePause pauses a running game or resumes a paused one.
func (s *Session) TogglePause() error {
	return s.do(func(s *Session) {
		switch s.game.Phase() {
		case rules.PhaseRunning:
			s.pause()
		case rules.PhasePaused:
			s.resume()
		}
	})
}

// Reset throws the current game away and replaces it with a fresh idle one.
// Any pending tick is cancelled first.
func (s *Session) Reset() error {
	return s.do(func(s *Session) {
		s.reset()
		s.render()
	})
}

// Restart resets and immediately starts the new game, the "play again"
// action after a game is over.
func (s *Session) Restart() error {
	return s.do(func(s *Session) {
		s.reset()
		s.game.Start()
		s.armTimer()
		log.WithField("game", s.game.ID()).Info("game restarted")
		s.render()
	})
}

// SetDirection buffers a direction for the next tick. It reports whether the
// engine accepted it.
func (s *Session) SetDirection(d rules.Direction) (bool, error) {
	var accepted bool
	err := s.do(func(s *Session) {
		accepted = s.game.SetDirection(d)
	})
	return accepted, err
}

// Frame returns the current state.
func (s *Session) Frame() (Frame, error) {
	var f Frame
	err := s.do(func(s *Session) {
		f = s.frame()
	})
	return f, err
}

func (s *Session) pause() {
	if s.game.Phase() != rules.PhaseRunning {
		return
	}
	s.stopTimer()
	s.game.Pause()
	s.render()
}

func (s *Session) resume() {
	if s.game.Phase() != rules.PhasePaused {
		return
	}
	s.game.Resume()
	s.armTimer()
	s.render()
}

func (s *Session) reset() {
	s.stopTimer()
	s.game = s.newGame()
	s.outcome = rules.OutcomeNone
}

func (s *Session) tick() {
	s.timer = nil

	start := time.Now()
	outcome := s.game.Tick()
	tickDuration.Observe(time.Since(start).Seconds())
	ticks.WithLabelValues(string(outcome)).Inc()
	s.outcome = outcome

	if outcome == rules.OutcomeAteFood || outcome == rules.OutcomeBoardFull {
		s.observeScore()
	}

	fields := log.Fields{
		"game":  s.game.ID(),
		"turn":  s.game.Turn(),
		"score": s.game.Score(),
	}
	if outcome.Ended() {
		log.WithFields(fields).WithField("outcome", outcome).Info("game over")
	} else {
		log.WithFields(fields).WithField("outcome", outcome).Debug("tick")
		s.armTimer()
	}
	speed.Set(float64(s.game.Speed()))
	s.render()
}

func (s *Session) observeScore() {
	updated, err := s.tracker.Observe(context.Background(), int64(s.game.Score()))
	if err != nil {
		log.WithError(err).
			WithField("game", s.game.ID()).
			Warn("unable to persist high score")
	}
	if updated {
		log.WithField("game", s.game.ID()).
			WithField("highScore", s.game.Score()).
			Debug("new high score")
	}
}

// armTimer schedules the next tick using the current speed, so a speed
// change only applies from the following tick.
func (s *Session) armTimer() {
	s.stopTimer()
	if s.game.Phase() != rules.PhaseRunning {
		return
	}
	s.timer = s.clock.NewTimer(s.game.Interval())
}

func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) frame() Frame {
	return Frame{
		Game:      s.game.Snapshot(),
		Outcome:   s.outcome,
		HighScore: s.tracker.HighScore(),
	}
}

func (s *Session) render() {
	if len(s.sinks) == 0 {
		return
	}
	f := s.frame()
	for _, sink := range s.sinks {
		sink.Render(f)
	}
}
