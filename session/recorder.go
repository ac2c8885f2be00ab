package session

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Recorder is a Sink that writes every frame as a line of JSON.
type Recorder struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewRecorder writes frames to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Render writes f. After the first write error every further frame is
// dropped, the error is available from Err.
func (r *Recorder) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return
	}
	if r.err = writeLine(r.w, f); r.err != nil {
		log.WithError(r.err).Error("unable to record frame")
	}
}

// Err returns the first write error.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func writeLine(w io.Writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.Write(append(j, '\n'))
	return err
}

// ReadFrames reads a recording written by a Recorder.
func ReadFrames(r io.Reader) ([]Frame, error) {
	frames := []Frame{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		f := Frame{}
		if err := json.Unmarshal(line, &f); err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, sc.Err()
}
