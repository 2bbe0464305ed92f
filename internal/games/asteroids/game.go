// Package asteroids implements a terminal Asteroids: a wrapping field, a
// rotating ship with inertia, and rocks that split when shot.
package asteroids

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

const (
	hudHeight  = 1
	minScreenW = 40
	minScreenH = 15
)

const (
	safeSpawn    = 10.0 // Minimum distance of a new rock from the ship
	maxWaveBonus = 4    // Extra rocks added by later waves, at most
)

// Game implements the Asteroids game logic.
type Game struct {
	cfg   config.AsteroidsConfig
	diff  *config.DifficultyManager
	rng   *rand.Rand
	phase core.PhaseMachine
	sess  core.Session

	// entities[0] is always the ship.
	entities []Entity

	lives        int
	wave         int
	cooldown     int
	invulnerable int

	fieldW, fieldH float64
	tick           int
	paused         bool
	tooSmall       bool
}

// New creates a new Asteroids game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "asteroids" }

// Title returns the display name.
func (g *Game) Title() string { return "Asteroids" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	preset, _ := config.ParsePreset(runtime.Difficulty)
	cfg, err := config.LoadAsteroids(runtime.ConfigPath, preset)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
		config.ApplyAsteroidsPreset(&cfg, preset)
	}
	cfg.Gameplay.Lives = max(cfg.Gameplay.Lives, 1)
	cfg.Bullets.Max = max(cfg.Bullets.Max, 1)
	cfg.Rocks.PerWave = max(cfg.Rocks.PerWave, 1)

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sess.Reset()
	g.phase.Reset(core.PhaseActive)

	g.fieldW = float64(runtime.ScreenW)
	g.fieldH = float64(runtime.ScreenH - hudHeight)
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.lives = cfg.Gameplay.Lives
	g.wave = 0
	g.tick = 0
	g.cooldown = 0
	g.paused = false

	g.entities = []Entity{g.newShip()}
	g.invulnerable = cfg.Gameplay.Invulnerable
	g.nextWave()
}

func (g *Game) newShip() Entity {
	return Entity{
		Kind:  KindShip,
		Pos:   core.Vec{X: g.fieldW / 2, Y: g.fieldH / 2},
		Angle: -math.Pi / 2,
	}
}

func (g *Game) ship() *Entity {
	return &g.entities[0]
}

// nextWave fills an empty field with large rocks away from the ship.
func (g *Game) nextWave() {
	g.wave++
	n := g.cfg.Rocks.PerWave + min(g.wave-1, maxWaveBonus)
	for range n {
		g.entities = append(g.entities, g.newRock(g.spawnPoint(), 3))
	}
}

// spawnPoint picks a random field position at least safeSpawn from the
// ship, falling back to the opposite corner of the torus.
func (g *Game) spawnPoint() core.Vec {
	shipPos := g.ship().Pos
	for range 32 {
		p := core.Vec{X: g.rng.Float64() * g.fieldW, Y: g.rng.Float64() * g.fieldH}
		if torusDist(p, shipPos, g.fieldW, g.fieldH) >= safeSpawn {
			return p
		}
	}
	return shipPos.Add(core.Vec{X: g.fieldW / 2, Y: g.fieldH / 2}).Wrap(g.fieldW, g.fieldH)
}

// newRock creates a rock drifting in a random direction. Smaller rocks are faster.
func (g *Game) newRock(pos core.Vec, size int) Entity {
	base := g.diff.Speed(g.cfg.Rocks.BaseSpeed, g.sess.Score(), g.tick)
	speed := base * (float64(4-size)*0.5 + 1)
	angle := g.rng.Float64() * 2 * math.Pi
	return Entity{
		Kind: KindRock,
		Pos:  pos,
		Vel:  core.FromAngle(angle, speed),
		Size: size,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.steerShip(in)
	if in.Has(core.ActionJump) {
		g.shoot()
	}
	if g.cooldown > 0 {
		g.cooldown--
	}
	if g.invulnerable > 0 {
		g.invulnerable--
	}

	for i := range g.entities {
		e := &g.entities[i]
		e.Move(g.fieldW, g.fieldH)
		if e.Kind == KindBullet {
			e.Life--
			if e.Life <= 0 {
				e.Dead = true
			}
		}
	}

	g.collideBullets()
	g.sweep()
	g.collideShip()

	if g.phase.Is(core.PhaseActive) && g.rockCount() == 0 {
		g.nextWave()
	}
	return core.StepResult{State: g.State()}
}

// steerShip applies rotation, thrust, drag and the speed cap.
func (g *Game) steerShip(in core.InputFrame) {
	s := g.ship()
	if in.Held(core.ActionLeft) {
		s.Angle -= g.cfg.Ship.RotateSpeed
	}
	if in.Held(core.ActionRight) {
		s.Angle += g.cfg.Ship.RotateSpeed
	}
	s.Angle = math.Remainder(s.Angle, 2*math.Pi)

	if in.Held(core.ActionUp) {
		s.Vel = s.Vel.Add(core.FromAngle(s.Angle, g.cfg.Ship.Thrust))
	}
	s.Vel = s.Vel.Scale(g.cfg.Ship.Drag)
	if speed := s.Vel.Len(); speed > g.cfg.Ship.MaxSpeed {
		s.Vel = s.Vel.Scale(g.cfg.Ship.MaxSpeed / speed)
	}
}

// shoot fires a bullet from the ship nose, honouring cooldown and the cap.
func (g *Game) shoot() {
	if g.cooldown > 0 || g.count(KindBullet) >= g.cfg.Bullets.Max {
		return
	}
	s := g.ship()
	g.entities = append(g.entities, Entity{
		Kind: KindBullet,
		Pos:  s.Pos.Add(core.FromAngle(s.Angle, 1)).Wrap(g.fieldW, g.fieldH),
		Vel:  s.Vel.Add(core.FromAngle(s.Angle, g.cfg.Bullets.Speed)),
		Life: g.cfg.Bullets.Life,
	})
	g.cooldown = g.cfg.Bullets.Cooldown
}

// collideBullets lets every bullet destroy at most one rock.
func (g *Game) collideBullets() {
	var spawned []Entity
	for i := range g.entities {
		b := &g.entities[i]
		if b.Kind != KindBullet || b.Dead {
			continue
		}
		for j := range g.entities {
			r := &g.entities[j]
			if r.Kind != KindRock || r.Dead || !b.Touches(*r, g.fieldW, g.fieldH) {
				continue
			}
			b.Dead = true
			r.Dead = true
			g.sess.Add((4 - r.Size) * g.cfg.Rocks.PointsUnit)
			if r.Size > 1 {
				spawned = append(spawned, g.newRock(r.Pos, r.Size-1), g.newRock(r.Pos, r.Size-1))
			}
			break
		}
	}
	g.entities = append(g.entities, spawned...)
}

// collideShip costs a life when a rock reaches a vulnerable ship.
func (g *Game) collideShip() {
	if g.invulnerable > 0 {
		return
	}
	s := g.ship()
	for _, e := range g.entities[1:] {
		if e.Kind != KindRock || !s.Touches(e, g.fieldW, g.fieldH) {
			continue
		}
		g.lives--
		if g.lives <= 0 {
			_ = g.phase.Transition(core.PhaseGameOver)
			g.sess.Finalize()
			return
		}
		*s = g.newShip()
		g.invulnerable = g.cfg.Gameplay.Invulnerable
		return
	}
}

// sweep removes dead entities. The ship is never removed.
func (g *Game) sweep() {
	kept := g.entities[:1]
	for _, e := range g.entities[1:] {
		if !e.Dead {
			kept = append(kept, e)
		}
	}
	g.entities = kept
}

func (g *Game) count(k Kind) int {
	n := 0
	for _, e := range g.entities {
		if e.Kind == k && !e.Dead {
			n++
		}
	}
	return n
}

func (g *Game) rockCount() int {
	return g.count(KindRock)
}

// Render draws the field and HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	for _, e := range g.entities[1:] {
		c := e.Pos.Cell()
		switch e.Kind {
		case KindBullet:
			dst.SetWithColor(c.X, c.Y+hudHeight, '•', core.ColorBrightYellow)
		case KindRock:
			g.drawRock(dst, c, e.Size)
		}
	}

	s := g.ship()
	if g.invulnerable == 0 || (g.tick/6)%2 == 0 {
		c := s.Pos.Cell()
		dst.SetWithColor(c.X, c.Y+hudHeight, s.HeadingChar(), core.ColorBrightCyan)
	}

	hud := fmt.Sprintf(" Score: %d  Lives: %d  Wave: %d  Best: %d ", g.sess.Score(), g.lives, g.wave, g.sess.HighScore())
	dst.DrawText(1, 0, hud)

	switch {
	case g.phase.Is(core.PhaseGameOver):
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sess.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// drawRock draws a rock centred on c; large rocks cover a plus shape.
func (g *Game) drawRock(dst *core.Screen, c core.Point, size int) {
	y := c.Y + hudHeight
	switch size {
	case 3:
		dst.SetWithColor(c.X, y, '@', core.ColorGray)
		for _, d := range []core.Point{core.Up, core.Down, core.Left, core.Right} {
			p := core.Point{X: core.Wrap(c.X+d.X, int(g.fieldW)), Y: core.Wrap(c.Y+d.Y, int(g.fieldH)) + hudHeight}
			dst.SetWithColor(p.X, p.Y, '#', core.ColorGray)
		}
	case 2:
		dst.SetWithColor(c.X, y, 'O', core.ColorWhite)
	default:
		dst.SetWithColor(c.X, y, 'o', core.ColorWhite)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sess.Score(),
		HighScore: g.sess.HighScore(),
		Phase:     g.phase.Phase(),
		Paused:    g.paused,
	}
}
