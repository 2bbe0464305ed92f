package whack

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
)

// The holes form a Size x Size block, numbered row-major from the top left.
const (
	Size  = 3
	Holes = Size * Size
)

// Mole is a mole out of its hole. It ducks back when Life reaches zero.
type Mole struct {
	Hole int
	Life int // Ticks left above ground
}

// MoleManager pops moles up on a spawn timer and ducks them when their
// time is up.
type MoleManager struct {
	moles []Mole
	rng   *rand.Rand
	timer int // Ticks since the last spawn
	cfg   config.WhackMoles
	diff  *config.DifficultyManager
}

// NewMoleManager creates a mole manager drawing holes and lifetimes from rng.
func NewMoleManager(rng *rand.Rand, cfg config.WhackMoles, diff *config.DifficultyManager) *MoleManager {
	return &MoleManager{
		moles: make([]Mole, 0, Holes),
		rng:   rng,
		cfg:   cfg,
		diff:  diff,
	}
}

// Update ages every mole, then spawns one into a free hole when the
// interval has elapsed. It returns how many moles ducked unwhacked.
func (mm *MoleManager) Update(score, ticks int) (escaped int) {
	kept := mm.moles[:0]
	for _, m := range mm.moles {
		m.Life--
		if m.Life <= 0 {
			escaped++
			continue
		}
		kept = append(kept, m)
	}
	mm.moles = kept

	mm.timer++
	if mm.timer >= mm.diff.Interval(mm.cfg.SpawnInterval, mm.cfg.MinSpawnInterval, score, ticks) {
		mm.spawn()
		mm.timer = 0
	}
	return escaped
}

// spawn raises a mole in a random empty hole. With every hole taken the
// spawn is skipped.
func (mm *MoleManager) spawn() {
	free := make([]int, 0, Holes)
	for h := range Holes {
		if !mm.Up(h) {
			free = append(free, h)
		}
	}
	if len(free) == 0 {
		return
	}

	life := mm.cfg.MinLife
	if span := mm.cfg.MaxLife - mm.cfg.MinLife; span > 0 {
		life += mm.rng.Intn(span + 1)
	}
	mm.moles = append(mm.moles, Mole{Hole: free[mm.rng.Intn(len(free))], Life: max(life, 1)})
}

// Up reports whether a mole is out of hole h.
func (mm *MoleManager) Up(h int) bool {
	for _, m := range mm.moles {
		if m.Hole == h {
			return true
		}
	}
	return false
}

// Whack knocks the mole in hole h back down. It reports whether there
// was one to hit.
func (mm *MoleManager) Whack(h int) bool {
	for i, m := range mm.moles {
		if m.Hole == h {
			mm.moles = append(mm.moles[:i], mm.moles[i+1:]...)
			return true
		}
	}
	return false
}

// Moles returns the moles currently up.
func (mm *MoleManager) Moles() []Mole {
	return mm.moles
}
