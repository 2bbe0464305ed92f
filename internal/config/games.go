package config

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	Board      SnakeBoard       `yaml:"board" toml:"board"`
	Gameplay   SnakeGameplay    `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// SnakeBoard sets the play field size in cells.
type SnakeBoard struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// SnakeGameplay sets pacing and scoring.
type SnakeGameplay struct {
	MoveEvery    int `yaml:"move_every" toml:"move_every"`         // Ticks between moves at base speed
	MinMoveEvery int `yaml:"min_move_every" toml:"min_move_every"` // Fastest allowed pace
	FoodPoints   int `yaml:"food_points" toml:"food_points"`
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board" toml:"board"`
	Gravity TetrisGravity `yaml:"gravity" toml:"gravity"`
	Scoring TetrisScoring `yaml:"scoring" toml:"scoring"`
}

// TetrisBoard sets the well size and level pacing.
type TetrisBoard struct {
	Width         int `yaml:"width" toml:"width"`
	Height        int `yaml:"height" toml:"height"`
	StartLevel    int `yaml:"start_level" toml:"start_level"`
	LinesPerLevel int `yaml:"lines_per_level" toml:"lines_per_level"` // 0 keeps the level fixed
}

// TetrisGravity sets the fall interval: max(Min, Base - Step*level) ticks.
type TetrisGravity struct {
	Base int `yaml:"base" toml:"base"`
	Step int `yaml:"step" toml:"step"`
	Min  int `yaml:"min" toml:"min"`
}

// TetrisScoring sets points for clears and drops.
type TetrisScoring struct {
	Lines    []int `yaml:"lines" toml:"lines"` // Indexed by lines cleared at once, multiplied by level
	SoftDrop int   `yaml:"soft_drop" toml:"soft_drop"`
	HardDrop int   `yaml:"hard_drop" toml:"hard_drop"` // Per row dropped
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics" toml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle" toml:"paddle"`
	Bricks     BreakoutBricks   `yaml:"bricks" toml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// BreakoutPhysics defines ball and paddle speeds in cells per tick.
type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed" toml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed" toml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed" toml:"max_ball_speed"`
}

// BreakoutPaddle defines paddle size.
type BreakoutPaddle struct {
	Width int `yaml:"width" toml:"width"`
}

// BreakoutBricks defines the wall layout. Row r is worth (Rows-r)*RowPoints.
type BreakoutBricks struct {
	Rows      int `yaml:"rows" toml:"rows"`
	Cols      int `yaml:"cols" toml:"cols"`
	RowPoints int `yaml:"row_points" toml:"row_points"`
}

// BreakoutGameplay defines lives.
type BreakoutGameplay struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics" toml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles" toml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay" toml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu" toml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PongPhysics defines ball and paddle movement.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed" toml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed" toml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed" toml:"max_ball_speed"`
	SpinFactor   float64 `yaml:"spin_factor" toml:"spin_factor"`
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height" toml:"height"`
	Width  int `yaml:"width" toml:"width"`
	Offset int `yaml:"offset" toml:"offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score" toml:"win_score"`
	ServeDelay int `yaml:"serve_delay" toml:"serve_delay"` // Ticks before the ball is served
}

// PongCPU defines the computer opponent's tracking skill (0..1).
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill" toml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill" toml:"max_skill"`
}

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics" toml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles" toml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player" toml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed" toml:"base_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width" toml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing" toml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size" toml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size" toml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin" toml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin" toml:"bottom_margin"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X      int `yaml:"x" toml:"x"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// AsteroidsConfig contains all configuration for Asteroids.
type AsteroidsConfig struct {
	Ship       AsteroidsShip     `yaml:"ship" toml:"ship"`
	Bullets    AsteroidsBullets  `yaml:"bullets" toml:"bullets"`
	Rocks      AsteroidsRocks    `yaml:"rocks" toml:"rocks"`
	Gameplay   AsteroidsGameplay `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig  `yaml:"difficulty" toml:"difficulty"`
}

// AsteroidsShip defines ship handling. Speeds are cells per tick.
type AsteroidsShip struct {
	RotateSpeed float64 `yaml:"rotate_speed" toml:"rotate_speed"` // Radians per tick
	Thrust      float64 `yaml:"thrust" toml:"thrust"`
	Drag        float64 `yaml:"drag" toml:"drag"` // Velocity multiplier per tick
	MaxSpeed    float64 `yaml:"max_speed" toml:"max_speed"`
}

// AsteroidsBullets defines shots.
type AsteroidsBullets struct {
	Speed    float64 `yaml:"speed" toml:"speed"`
	Life     int     `yaml:"life" toml:"life"` // Ticks before a bullet expires
	Max      int     `yaml:"max" toml:"max"`   // Bullets alive at once
	Cooldown int     `yaml:"cooldown" toml:"cooldown"`
}

// AsteroidsRocks defines waves. A rock of size s scores (4-s)*PointsUnit.
type AsteroidsRocks struct {
	PerWave    int     `yaml:"per_wave" toml:"per_wave"`
	BaseSpeed  float64 `yaml:"base_speed" toml:"base_speed"`
	PointsUnit int     `yaml:"points_unit" toml:"points_unit"`
}

// AsteroidsGameplay defines lives and respawn.
type AsteroidsGameplay struct {
	Lives        int `yaml:"lives" toml:"lives"`
	Invulnerable int `yaml:"invulnerable" toml:"invulnerable"` // Ticks of grace after a respawn
}

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Mines  int `yaml:"mines" toml:"mines"`
}

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// PlatformerConfig contains all configuration for the Platformer game.
// Positions and speeds are in world units; the renderer scales the world
// to the terminal.
type PlatformerConfig struct {
	World   PlatformerWorld   `yaml:"world" toml:"world"`
	Physics PlatformerPhysics `yaml:"physics" toml:"physics"`
	Player  PlatformerPlayer  `yaml:"player" toml:"player"`
	Level   PlatformerLevel   `yaml:"level" toml:"level"`
	Scoring PlatformerScoring `yaml:"scoring" toml:"scoring"`
}

// PlatformerWorld is the size of the simulated world.
type PlatformerWorld struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlatformerPhysics defines per-tick movement.
type PlatformerPhysics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	MoveSpeed   float64 `yaml:"move_speed" toml:"move_speed"`
}

// PlatformerPlayer defines the player's hitbox and spawn point.
type PlatformerPlayer struct {
	StartX float64 `yaml:"start_x" toml:"start_x"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlatformerLevel lists the solid platforms and the goal flag.
type PlatformerLevel struct {
	Platforms []Box `yaml:"platforms" toml:"platforms"`
	Goal      Box   `yaml:"goal" toml:"goal"`
}

// PlatformerScoring turns a finished run into points.
type PlatformerScoring struct {
	Base          int `yaml:"base" toml:"base"`
	Min           int `yaml:"min" toml:"min"`
	TicksPerPoint int `yaml:"ticks_per_point" toml:"ticks_per_point"`
	FallPenalty   int `yaml:"fall_penalty" toml:"fall_penalty"`
}

// CatchConfig contains all configuration for Catch the Ball.
type CatchConfig struct {
	World      CatchWorld       `yaml:"world" toml:"world"`
	Basket     CatchBasket      `yaml:"basket" toml:"basket"`
	Balls      CatchBalls       `yaml:"balls" toml:"balls"`
	Gameplay   CatchGameplay    `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// CatchWorld is the size of the simulated field.
type CatchWorld struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// CatchBasket defines basket movement and its catch zone.
type CatchBasket struct {
	Speed      float64 `yaml:"speed" toml:"speed"`
	HalfWidth  float64 `yaml:"half_width" toml:"half_width"`
	Reach      float64 `yaml:"reach" toml:"reach"`             // Horizontal distance that still counts as a catch
	LineOffset float64 `yaml:"line_offset" toml:"line_offset"` // Catch line height above the bottom edge
}

// CatchBalls defines how balls spawn and fall.
type CatchBalls struct {
	SpawnInterval    int     `yaml:"spawn_interval" toml:"spawn_interval"`
	MinSpawnInterval int     `yaml:"min_spawn_interval" toml:"min_spawn_interval"`
	MinSpeed         float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed" toml:"max_speed"`
	MinRadius        float64 `yaml:"min_radius" toml:"min_radius"`
	MaxRadius        float64 `yaml:"max_radius" toml:"max_radius"`
	Margin           float64 `yaml:"margin" toml:"margin"`
}

// CatchGameplay defines the loss condition.
type CatchGameplay struct {
	MaxMisses int `yaml:"max_misses" toml:"max_misses"`
}

// WhackConfig contains all configuration for Whack-a-Mole.
type WhackConfig struct {
	Round      WhackRound       `yaml:"round" toml:"round"`
	Moles      WhackMoles       `yaml:"moles" toml:"moles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WhackRound is the length of a timed round.
type WhackRound struct {
	Ticks int `yaml:"ticks" toml:"ticks"`
}

// WhackMoles defines how often moles pop up and how long they stay.
type WhackMoles struct {
	SpawnInterval    int `yaml:"spawn_interval" toml:"spawn_interval"`
	MinSpawnInterval int `yaml:"min_spawn_interval" toml:"min_spawn_interval"`
	MinLife          int `yaml:"min_life" toml:"min_life"`
	MaxLife          int `yaml:"max_life" toml:"max_life"`
	Points           int `yaml:"points" toml:"points"`
}

// FroggerConfig contains all configuration for Frogger. The field is a
// stack of lanes, each Cell world units tall.
type FroggerConfig struct {
	Field      FroggerField     `yaml:"field" toml:"field"`
	Road       FroggerLanes     `yaml:"road" toml:"road"`
	River      FroggerLanes     `yaml:"river" toml:"river"`
	Gameplay   FroggerGameplay  `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FroggerField is the size of the simulated field. Row 0 is the goal bank,
// the last row is the start.
type FroggerField struct {
	Width float64 `yaml:"width" toml:"width"`
	Rows  int     `yaml:"rows" toml:"rows"`
	Cell  float64 `yaml:"cell" toml:"cell"`
}

// FroggerLanes describes a block of moving lanes: cars on the road, logs
// on the river. Each lane draws one speed from Speeds.
type FroggerLanes struct {
	FirstRow int       `yaml:"first_row" toml:"first_row"`
	LastRow  int       `yaml:"last_row" toml:"last_row"`
	PerLane  int       `yaml:"per_lane" toml:"per_lane"`
	Speeds   []float64 `yaml:"speeds" toml:"speeds"`
	MinWidth float64   `yaml:"min_width" toml:"min_width"`
	MaxWidth float64   `yaml:"max_width" toml:"max_width"`
}

// FroggerGameplay defines lives and crossing points.
type FroggerGameplay struct {
	Lives          int `yaml:"lives" toml:"lives"`
	CrossingPoints int `yaml:"crossing_points" toml:"crossing_points"`
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	World  InvadersWorld  `yaml:"world" toml:"world"`
	Player InvadersPlayer `yaml:"player" toml:"player"`
	Bullet InvadersBullet `yaml:"bullet" toml:"bullet"`
	Fleet  InvadersFleet  `yaml:"fleet" toml:"fleet"`
}

// InvadersWorld is the size of the simulated field.
type InvadersWorld struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// InvadersPlayer defines the cannon. Bottom is the gap between its top
// edge and the bottom of the field.
type InvadersPlayer struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
}

// InvadersBullet defines the player's shots.
type InvadersBullet struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// InvadersFleet defines the alien formation and how it marches. The fleet
// steps every MoveEvery ticks, one tick sooner per ScorePerSpeedUp points,
// never faster than MinMoveEvery.
type InvadersFleet struct {
	Rows            int     `yaml:"rows" toml:"rows"`
	Cols            int     `yaml:"cols" toml:"cols"`
	Left            float64 `yaml:"left" toml:"left"`
	Top             float64 `yaml:"top" toml:"top"`
	SpacingX        float64 `yaml:"spacing_x" toml:"spacing_x"`
	SpacingY        float64 `yaml:"spacing_y" toml:"spacing_y"`
	AlienWidth      float64 `yaml:"alien_width" toml:"alien_width"`
	AlienHeight     float64 `yaml:"alien_height" toml:"alien_height"`
	Step            float64 `yaml:"step" toml:"step"`
	Drop            float64 `yaml:"drop" toml:"drop"`
	MoveEvery       int     `yaml:"move_every" toml:"move_every"`
	MinMoveEvery    int     `yaml:"min_move_every" toml:"min_move_every"`
	ScorePerSpeedUp int     `yaml:"score_per_speed_up" toml:"score_per_speed_up"`
	Points          []int   `yaml:"points" toml:"points"` // Per row, repeating
}
