package engine

import (
	"fmt"
	"io"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// WriterSink prints each presented frame as plain text followed by a
// blank line. Used by headless runs; colors are dropped.
type WriterSink struct {
	w      io.Writer
	frames int
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Present implements Sink.
func (s *WriterSink) Present(screen *core.Screen) error {
	if _, err := fmt.Fprintf(s.w, "%s\n\n", screen.String()); err != nil {
		return err
	}
	s.frames++
	return nil
}

// Frames returns how many frames were written.
func (s *WriterSink) Frames() int {
	return s.frames
}
