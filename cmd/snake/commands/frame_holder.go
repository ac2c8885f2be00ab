package commands

import (
	"sync"

	"github.com/battlesnakeio/arcade/session"
)

// frameHolder collects frames from a session and wakes the terminal loop
// when a new one arrives. With max > 0 only the newest max frames are kept.
type frameHolder struct {
	sync.RWMutex
	frames  []session.Frame
	max     int
	changed chan struct{}
}

func newFrameHolder(max int) *frameHolder {
	return &frameHolder{max: max, changed: make(chan struct{}, 1)}
}

// Render implements session.Sink. It never blocks the session.
func (fh *frameHolder) Render(frame session.Frame) {
	fh.append(frame)
	select {
	case fh.changed <- struct{}{}:
	default:
	}
}

func (fh *frameHolder) append(frame session.Frame) {
	fh.Lock()
	defer fh.Unlock()

	fh.frames = append(fh.frames, frame)
	if fh.max > 0 && len(fh.frames) > fh.max {
		fh.frames = append(fh.frames[:0], fh.frames[len(fh.frames)-fh.max:]...)
	}
}

func (fh *frameHolder) get(index int) (session.Frame, bool) {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return session.Frame{}, false
	}
	return fh.frames[index], true
}

func (fh *frameHolder) latest() (session.Frame, bool) {
	fh.RLock()
	defer fh.RUnlock()

	if len(fh.frames) == 0 {
		return session.Frame{}, false
	}
	return fh.frames[len(fh.frames)-1], true
}

func (fh *frameHolder) updates() <-chan struct{} {
	return fh.changed
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}
