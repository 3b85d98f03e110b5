package term

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerWritesAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := &Spinner{W: &buf, Interval: time.Millisecond}

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	// Stop joins the goroutine, so the buffer is quiescent here.
	out := buf.String()
	assert.Contains(t, out, "\r|")
	assert.Contains(t, out, "\r/")
	assert.True(t, strings.HasSuffix(out, "\r \r"), "line must end cleared, got %q", out)
}

func TestSpinnerStopIsImmediateAfterClear(t *testing.T) {
	var buf bytes.Buffer
	s := &Spinner{W: &buf, Interval: time.Hour} // never ticks past the first glyph

	s.Start()
	s.Stop()

	assert.True(t, strings.HasSuffix(buf.String(), "\r \r"))
}

func TestTypeRendersWholeString(t *testing.T) {
	old := TypeDelay
	TypeDelay = 0
	defer func() { TypeDelay = old }()

	var buf bytes.Buffer
	Type(&buf, "héllo")
	assert.Equal(t, "héllo\n", buf.String())
}

func TestNoopOpener(t *testing.T) {
	assert.NoError(t, NoopOpener{}.Open("http://example.com"))
}
