package config

import "math"

// Floors that keep a fully ramped obstacle course passable.
const (
	minGap     = 4
	minSpacing = 15
)

// DifficultyManager maps the progress of a round (score or elapsed ticks)
// to a level between InitialLevel and 1 and derives tuning values from it.
// A disabled config pins the level at InitialLevel.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled turns progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// Progressive reports whether the level moves during a round.
func (d *DifficultyManager) Progressive() bool {
	switch d.cfg.Progression.Type {
	case "score", "time":
		return d.cfg.Enabled
	}
	return false
}

// Level returns the difficulty level for the given progress.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.Progressive() {
		return d.cfg.InitialLevel
	}

	progress := float64(score)
	if d.cfg.Progression.Type == "time" {
		progress = float64(ticks)
	}
	progress = clampF(progress/math.Max(float64(d.cfg.Progression.MaxAt), 1), 0, 1)

	return d.cfg.InitialLevel + progress*(1-d.cfg.InitialLevel)
}

// Speed scales base from 1x at level 0 to (1+SpeedMultiplier)x at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shortens a tick interval by the same factor Speed grows,
// never below min or 1.
func (d *DifficultyManager) Interval(base, min, score, ticks int) int {
	factor := d.Speed(1, score, ticks)
	if factor <= 0 {
		return base
	}
	return max(int(math.Round(float64(base)/factor)), min, 1)
}

// GapSize narrows an obstacle gap by up to GapReduction cells.
func (d *DifficultyManager) GapSize(base, score, ticks int) int {
	return d.reduce(base, d.cfg.Scaling.GapReduction, minGap, score, ticks)
}

// Spacing tightens obstacle spacing by up to SpacingReduction cells.
func (d *DifficultyManager) Spacing(base, score, ticks int) int {
	return d.reduce(base, d.cfg.Scaling.SpacingReduction, minSpacing, score, ticks)
}

func (d *DifficultyManager) reduce(base, by, floor, score, ticks int) int {
	return max(base-int(d.Level(score, ticks)*float64(by)), floor)
}

func clampF(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
