package commands

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/arcade/highscore"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/session"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	recordPath string
	logFile    string
)

func init() {
	playCmd.Flags().StringVarP(&recordPath, "record", "r", "", "write every frame to this file for replay")
	playCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	Run: func(*cobra.Command, []string) {
		if err := play(); err != nil {
			log.WithError(err).Fatal("game failed")
		}
	},
}

// The screen belongs to termbox while playing, so logs go to a file or
// nowhere. The returned func restores stderr.
func redirectLogs() (func(), error) {
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func play() error {
	store, closeStore := mustOpenStore()
	defer closeStore()

	restoreLogs, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restoreLogs()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := newFrameHolder(1)
	sinks := []session.Sink{frames}
	if recordPath != "" {
		f, err := os.Create(recordPath)
		if err != nil {
			return errors.Wrap(err, "unable to create recording")
		}
		rec := session.NewRecorder(f)
		defer func() {
			if err := rec.Err(); err != nil {
				log.WithError(err).WithField("file", recordPath).Error("recording incomplete")
			}
			if err := f.Close(); err != nil {
				log.WithError(err).WithField("file", recordPath).Error("unable to close recording")
			}
		}()
		sinks = append(sinks, rec)
	}

	s := session.New(session.Options{
		Tracker: highscore.NewTracker(ctx, store, highScoreKey),
		Sinks:   sinks,
	})

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()

	eventQueue := setupEventQueue()
	for {
		select {
		case <-frames.updates():
			if f, ok := frames.latest(); ok {
				if err = render(f); err != nil {
					return err
				}
			}
		case ev := <-eventQueue:
			if ev.Type == termbox.EventResize {
				if f, ok := frames.latest(); ok {
					if err = render(f); err != nil {
						return err
					}
				}
				continue
			}
			quit, err := handleKey(s, frames, ev)
			if err != nil {
				return err
			}
			if quit {
				cancel()
				<-errc
				return nil
			}
		case err = <-errc:
			return err
		}
	}
}

// handleKey applies a key press to the session and reports whether the
// player asked to quit.
func handleKey(s *session.Session, frames *frameHolder, ev termbox.Event) (bool, error) {
	in, d := intentForKey(ev)
	switch in {
	case intentDirection:
		_, err := s.SetDirection(d)
		return false, err
	case intentPause:
		return false, s.TogglePause()
	case intentStart:
		if f, ok := frames.latest(); ok && f.Game.Phase == rules.PhaseOver {
			return false, s.Restart()
		}
		return false, s.Start()
	case intentReset:
		return false, s.Reset()
	case intentQuit:
		return true, nil
	}
	return false, nil
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
