package config

import (
	"embed"
	"fmt"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// embeddedDefault returns the built-in YAML document for a game.
func embeddedDefault(gameID string) ([]byte, error) {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("config: no embedded defaults for %q: %w", gameID, err)
	}
	return data, nil
}

// DefaultSnakeConfig returns the hardcoded fallback for Snake.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{Width: 30, Height: 15},
		Gameplay: SnakeGameplay{
			MoveEvery:    6,
			MinMoveEvery: 2,
			FoodPoints:   10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 300},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultTetrisConfig returns the hardcoded fallback for Tetris.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board:   TetrisBoard{Width: 10, Height: 20, StartLevel: 1, LinesPerLevel: 10},
		Gravity: TetrisGravity{Base: 25, Step: 2, Min: 3},
		Scoring: TetrisScoring{
			Lines:    []int{0, 100, 300, 500, 800},
			SoftDrop: 1,
			HardDrop: 2,
		},
	}
}

// DefaultBreakoutConfig returns the hardcoded fallback for Breakout.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    0.35,
			PaddleSpeed:  0.8,
			MaxBallSpeed: 0.7,
		},
		Paddle:   BreakoutPaddle{Width: 8},
		Bricks:   BreakoutBricks{Rows: 6, Cols: 10, RowPoints: 10},
		Gameplay: BreakoutGameplay{Lives: 3},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultPongConfig returns the hardcoded fallback for Pong.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    0.5,
			PaddleSpeed:  0.5,
			MaxBallSpeed: 3.0,
			SpinFactor:   0.3,
		},
		Paddles:  PongPaddles{Height: 5, Width: 1, Offset: 2},
		Gameplay: PongGameplay{WinScore: 5, ServeDelay: 60},
		CPU:      PongCPU{MinSkill: 0.6, MaxSkill: 0.85},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 36000},
			Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultFlappyConfig returns the hardcoded fallback for Flappy Bird.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.8,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{X: 10, Width: 2, Height: 2},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultAsteroidsConfig returns the hardcoded fallback for Asteroids.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: AsteroidsShip{
			RotateSpeed: 0.09,
			Thrust:      0.02,
			Drag:        0.99,
			MaxSpeed:    0.8,
		},
		Bullets: AsteroidsBullets{Speed: 1.0, Life: 60, Max: 6, Cooldown: 6},
		Rocks:   AsteroidsRocks{PerWave: 5, BaseSpeed: 0.08, PointsUnit: 20},
		Gameplay: AsteroidsGameplay{
			Lives:        3,
			Invulnerable: 120,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 3000},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultMinesweeperConfig returns the hardcoded fallback for Minesweeper.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{Width: 10, Height: 10, Mines: 15}
}

// DefaultPlatformerConfig returns the hardcoded fallback for Platformer.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World:   PlatformerWorld{Width: 800, Height: 450},
		Physics: PlatformerPhysics{Gravity: 0.8, JumpImpulse: -16, MoveSpeed: 6},
		Player:  PlatformerPlayer{StartX: 50, StartY: 300, Width: 35, Height: 45},
		Level: PlatformerLevel{
			Platforms: []Box{
				{X: 0, Y: 380, W: 220, H: 70},
				{X: 270, Y: 320, W: 160, H: 25},
				{X: 480, Y: 260, W: 160, H: 25},
				{X: 350, Y: 190, W: 120, H: 25},
				{X: 520, Y: 130, W: 160, H: 25},
				{X: 700, Y: 190, W: 100, H: 25},
			},
			Goal: Box{X: 750, Y: 145, W: 35, H: 45},
		},
		Scoring: PlatformerScoring{Base: 1000, Min: 100, TicksPerPoint: 10, FallPenalty: 50},
	}
}

// DefaultCatchConfig returns the hardcoded fallback for Catch the Ball.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		World:  CatchWorld{Width: 600, Height: 500},
		Basket: CatchBasket{Speed: 8, HalfWidth: 40, Reach: 50, LineOffset: 50},
		Balls: CatchBalls{
			SpawnInterval:    40,
			MinSpawnInterval: 15,
			MinSpeed:         3,
			MaxSpeed:         6,
			MinRadius:        15,
			MaxRadius:        25,
			Margin:           30,
		},
		Gameplay: CatchGameplay{MaxMisses: 5},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultWhackConfig returns the default Whack-a-Mole configuration.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Round: WhackRound{Ticks: 30 * 60},
		Moles: WhackMoles{
			SpawnInterval:    30,
			MinSpawnInterval: 12,
			MinLife:          40,
			MaxLife:          80,
			Points:           1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 30},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultFroggerConfig returns the default Frogger configuration.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Field: FroggerField{Width: 600, Rows: 12, Cell: 50},
		Road: FroggerLanes{
			FirstRow: 7,
			LastRow:  10,
			PerLane:  3,
			Speeds:   []float64{-3, -2, 2, 3},
			MinWidth: 60,
			MaxWidth: 100,
		},
		River: FroggerLanes{
			FirstRow: 2,
			LastRow:  5,
			PerLane:  3,
			Speeds:   []float64{-2, -1, 1, 2},
			MinWidth: 80,
			MaxWidth: 150,
		},
		Gameplay: FroggerGameplay{Lives: 3, CrossingPoints: 10},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
			Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World:  InvadersWorld{Width: 800, Height: 600},
		Player: InvadersPlayer{Width: 50, Height: 30, Speed: 7, Bottom: 60},
		Bullet: InvadersBullet{Width: 4, Height: 15, Speed: 10},
		Fleet: InvadersFleet{
			Rows:            5,
			Cols:            10,
			Left:            50,
			Top:             50,
			SpacingX:        60,
			SpacingY:        40,
			AlienWidth:      40,
			AlienHeight:     30,
			Step:            10,
			Drop:            20,
			MoveEvery:       60,
			MinMoveEvery:    10,
			ScorePerSpeedUp: 10,
			Points:          []int{10, 20, 30},
		},
	}
}
