package commands

import (
	"os"
	"time"

	"github.com/battlesnakeio/arcade/session"
	"github.com/davecgh/go-spew/spew"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dumpFrames     bool
	replayInterval = 200 * time.Millisecond
)

func init() {
	replayCmd.Flags().BoolVar(&dumpFrames, "dump", false, "print the recorded frames instead of playing them")
	replayCmd.Flags().DurationVar(&replayInterval, "interval", replayInterval, "time between frames")
}

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "replays a game recorded with play --record",
	Args: func(c *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("a recording file is required")
		}
		return nil
	},
	Run: func(c *cobra.Command, args []string) {
		frames, err := loadFrames(args[0])
		if err != nil {
			log.WithError(err).WithField("file", args[0]).Fatal("unable to load recording")
		}
		if dumpFrames {
			spew.Dump(frames)
			return
		}
		if err := replayGame(frames); err != nil {
			log.WithError(err).Fatal("replay failed")
		}
	},
}

func loadFrames(path string) (*frameHolder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open recording")
	}
	defer f.Close()

	recorded, err := session.ReadFrames(f)
	if err != nil {
		return nil, err
	}
	if len(recorded) == 0 {
		return nil, errors.New("recording has no frames")
	}

	frames := newFrameHolder(0)
	for _, fr := range recorded {
		frames.append(fr)
	}
	return frames, nil
}

func moveFrameForwards(frameIndex int, frames *frameHolder) (int, session.Frame, bool) {
	frameIndex++
	if frameIndex >= frames.count() {
		frameIndex = frames.count() - 1
		f, _ := frames.get(frameIndex)
		return frameIndex, f, true
	}
	f, _ := frames.get(frameIndex)
	return frameIndex, f, false
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) (int, session.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	f, _ := frames.get(frameIndex)
	return frameIndex, f
}

func replayGame(frames *frameHolder) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	currentFrame, _ := frames.get(0)
	if err := render(currentFrame); err != nil {
		return err
	}

	cycle := time.NewTicker(replayInterval)
	defer func() { cycle.Stop() }()
	frameIndex := 0
	paused := false
	done := false

	for !done {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil
			case termbox.KeySpace:
				paused = !paused
				if paused {
					cycle.Stop()
				} else {
					cycle.Stop()
					cycle = time.NewTicker(replayInterval)
				}
			case termbox.KeyArrowLeft:
				paused = true
				frameIndex, currentFrame = moveFrameBackwards(frameIndex, frames)
				if err := render(currentFrame); err != nil {
					return err
				}
			case termbox.KeyArrowRight:
				paused = true
				frameIndex, currentFrame, _ = moveFrameForwards(frameIndex, frames)
				if err := render(currentFrame); err != nil {
					return err
				}
			}
		case <-cycle.C:
			if paused {
				continue
			}
			frameIndex, currentFrame, done = moveFrameForwards(frameIndex, frames)
			if err := render(currentFrame); err != nil {
				return err
			}
		}
	}

	tbprint(0, 0, defaultColor, defaultColor, "Press any key to exit...")
	if err := termbox.Flush(); err != nil {
		return err
	}
	<-eventQueue
	return nil
}
