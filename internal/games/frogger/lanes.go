package frogger

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

var carColors = []core.Color{core.ColorRed, core.ColorYellow, core.ColorBrightBlue}

// Mover is a car or a log sliding along its lane.
type Mover struct {
	X     float64 // Left edge
	Width float64
	Speed float64 // World units per tick, negative moves left
	Row   int
	Color core.Color
}

// spawnLanes fills every lane of a block with PerLane movers at random
// positions. All movers of one lane share a speed.
func spawnLanes(rng *rand.Rand, lanes config.FroggerLanes, width float64, colors []core.Color) []Mover {
	var movers []Mover
	for row := lanes.FirstRow; row <= lanes.LastRow; row++ {
		speed := 1.0
		if len(lanes.Speeds) > 0 {
			speed = lanes.Speeds[rng.Intn(len(lanes.Speeds))]
		}
		for range lanes.PerLane {
			w := lanes.MinWidth
			if span := int(lanes.MaxWidth - lanes.MinWidth); span > 0 {
				w += float64(rng.Intn(span + 1))
			}
			m := Mover{
				X:     float64(rng.Intn(int(width) + 1)),
				Width: w,
				Speed: speed,
				Row:   row,
				Color: core.ColorOrange,
			}
			if len(colors) > 0 {
				m.Color = colors[rng.Intn(len(colors))]
			}
			movers = append(movers, m)
		}
	}
	return movers
}

// advance moves every mover by its speed times scale. A mover that has
// fully left the field by more than margin re-enters from the other side.
func advance(movers []Mover, width, margin, scale float64) {
	for i := range movers {
		m := &movers[i]
		m.X += m.Speed * scale
		switch {
		case m.X > width+margin:
			m.X = -m.Width
		case m.X < -m.Width-margin:
			m.X = width
		}
	}
}
