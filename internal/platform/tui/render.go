package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Palette maps cell colors to lipgloss styles. Each renderer (local
// terminal or SSH session) gets its own so color profiles don't leak.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds styles against r. A nil renderer uses lipgloss's
// default (stdout) renderer.
func NewPalette(r *lipgloss.Renderer) *Palette {
	newStyle := lipgloss.NewStyle
	if r != nil {
		newStyle = r.NewStyle
	}
	p := &Palette{
		styles: make(map[core.Color]lipgloss.Style),
		plain:  newStyle(),
	}
	for _, c := range core.Colors() {
		p.styles[c] = newStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

var defaultPalette = NewPalette(nil)

// RenderScreen converts a Screen buffer to a styled string for display
// using the default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string. Runs of cells with
// the same color share one escape sequence.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// StyledSink presents frames with colors, one frame per write. Headless
// runs use it when the output is a terminal.
type StyledSink struct {
	w       io.Writer
	palette *Palette
}

// NewStyledSink creates a sink writing colored frames to w.
func NewStyledSink(w io.Writer) *StyledSink {
	return &StyledSink{w: w, palette: NewPalette(lipgloss.NewRenderer(w))}
}

// Present implements engine.Sink.
func (s *StyledSink) Present(screen *core.Screen) error {
	_, err := fmt.Fprintf(s.w, "%s\n\n", s.palette.Render(screen))
	return err
}
