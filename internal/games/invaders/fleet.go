package invaders

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

var alienColors = []core.Color{core.ColorBrightCyan, core.ColorBrightMagenta, core.ColorBrightRed}

// Alien is one member of the fleet. Row picks its points and color.
type Alien struct {
	X, Y float64 // Top-left corner
	Row  int
}

// Bullet is a player shot travelling up.
type Bullet struct {
	X, Y float64 // Top-left corner
}

// Fleet is the alien formation. It marches sideways in steps and drops
// one row whenever an alien touches a side wall.
type Fleet struct {
	cfg     config.InvadersFleet
	aliens  []Alien
	dir     float64 // +1 right, -1 left
	counter int     // Ticks since the last step
}

// NewFleet lines up Rows x Cols aliens.
func NewFleet(cfg config.InvadersFleet) *Fleet {
	f := &Fleet{cfg: cfg, dir: 1}
	f.aliens = make([]Alien, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			f.aliens = append(f.aliens, Alien{
				X:   cfg.Left + float64(col)*cfg.SpacingX,
				Y:   cfg.Top + float64(row)*cfg.SpacingY,
				Row: row,
			})
		}
	}
	return f
}

// Interval returns the ticks between steps at the given score.
func (f *Fleet) Interval(score int) int {
	if f.cfg.ScorePerSpeedUp <= 0 {
		return max(f.cfg.MoveEvery, 1)
	}
	return max(f.cfg.MoveEvery-score/f.cfg.ScorePerSpeedUp, f.cfg.MinMoveEvery, 1)
}

// Update advances the step timer and marches when it fires. It reports
// whether the fleet moved.
func (f *Fleet) Update(score int, worldW float64) bool {
	f.counter++
	if f.counter < f.Interval(score) {
		return false
	}
	f.counter = 0

	edge := false
	for i := range f.aliens {
		a := &f.aliens[i]
		a.X += f.cfg.Step * f.dir
		if a.X <= 0 || a.X+f.cfg.AlienWidth >= worldW {
			edge = true
		}
	}
	if edge {
		f.dir = -f.dir
		for i := range f.aliens {
			f.aliens[i].Y += f.cfg.Drop
		}
	}
	return true
}

// Lowest returns the bottom edge of the lowest alien, or 0 with no aliens.
func (f *Fleet) Lowest() float64 {
	low := 0.0
	for _, a := range f.aliens {
		low = max(low, a.Y+f.cfg.AlienHeight)
	}
	return low
}

// Hit removes the first alien overlapping box and returns its points.
func (f *Fleet) Hit(box config.Box) (points int, ok bool) {
	for i, a := range f.aliens {
		if overlaps(box, f.box(a)) {
			f.aliens = append(f.aliens[:i], f.aliens[i+1:]...)
			return f.points(a.Row), true
		}
	}
	return 0, false
}

// Touches reports whether any alien overlaps box.
func (f *Fleet) Touches(box config.Box) bool {
	for _, a := range f.aliens {
		if overlaps(box, f.box(a)) {
			return true
		}
	}
	return false
}

func (f *Fleet) points(row int) int {
	if len(f.cfg.Points) == 0 {
		return 0
	}
	return f.cfg.Points[row%len(f.cfg.Points)]
}

func (f *Fleet) box(a Alien) config.Box {
	return config.Box{X: a.X, Y: a.Y, W: f.cfg.AlienWidth, H: f.cfg.AlienHeight}
}

// Aliens returns the surviving aliens.
func (f *Fleet) Aliens() []Alien {
	return f.aliens
}

// Len returns the number of surviving aliens.
func (f *Fleet) Len() int {
	return len(f.aliens)
}

func overlaps(a, b config.Box) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
