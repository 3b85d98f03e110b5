// Package term holds the terminal presentation pieces: the in-flight
// spinner, the typing renderer, and the URL opener capability.
package term

import (
	"fmt"
	"io"
	"os"
	"time"
)

var spinnerGlyphs = [4]string{"|", "/", "-", "\\"}

// Spinner overwrites the current terminal line with a rotating glyph while
// a request is in flight. Coordination is a stop channel: Stop closes it and
// waits for the goroutine to clear the line, so the caller can print the
// moment Stop returns.
type Spinner struct {
	W        io.Writer
	Interval time.Duration

	stop chan struct{}
	done chan struct{}
}

// NewSpinner returns a spinner writing to stdout on a 100ms rotation.
func NewSpinner() *Spinner {
	return &Spinner{W: os.Stdout, Interval: 100 * time.Millisecond}
}

// Start begins the rotation. It must be paired with Stop.
func (s *Spinner) Start() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		i := 0
		fmt.Fprintf(s.W, "\r%s", spinnerGlyphs[i])
		for {
			select {
			case <-s.stop:
				fmt.Fprint(s.W, "\r \r")
				return
			case <-ticker.C:
				i = (i + 1) % len(spinnerGlyphs)
				fmt.Fprintf(s.W, "\r%s", spinnerGlyphs[i])
			}
		}
	}()
}

// Stop ends the rotation and blocks until the line has been cleared.
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.done
}
