package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// searchExts lists the file formats tried for a discovered config, in order.
var searchExts = []string{".yaml", ".yml", ".toml"}

// Load builds the configuration for gameID.
//
// The embedded default is decoded first, then one file is overlaid on it,
// so a file only needs the keys it changes. Search order:
// customPath -> ~/.arcade/configs/<id>.{yaml,toml} -> ./configs/<id>.{yaml,toml}.
// A bad customPath is an error; unreadable discovered files are skipped.
func Load[T any](gameID, customPath string) (T, error) {
	var cfg T

	data, err := embeddedDefault(gameID)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse embedded %s: %w", gameID, err)
	}

	if customPath != "" {
		if err := overlayFile(&cfg, customPath); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range candidatePaths(gameID) {
		// Decode into a copy so a half-parsed file leaves the defaults intact.
		trial := cfg
		if err := overlayFile(&trial, path); err == nil {
			return trial, nil
		}
	}
	return cfg, nil
}

// overlayFile decodes the file at path on top of cfg. The format is chosen by
// extension.
func overlayFile[T any](cfg *T, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(data, filepath.Ext(path), cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func decode(data []byte, ext string, v any) error {
	switch strings.ToLower(ext) {
	case ".toml":
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(v)
		return err
	case ".yaml", ".yml", "":
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

func candidatePaths(gameID string) []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	dirs = append(dirs, "configs")

	var paths []string
	for _, dir := range dirs {
		for _, ext := range searchExts {
			paths = append(paths, filepath.Join(dir, gameID+ext))
		}
	}
	return paths
}

func loadWith[T any](gameID, customPath string, preset DifficultyPreset, apply func(*T, DifficultyPreset)) (T, error) {
	cfg, err := Load[T](gameID, customPath)
	if err != nil {
		return cfg, err
	}
	apply(&cfg, preset)
	return cfg, nil
}

// LoadSnake loads Snake configuration and applies a difficulty preset.
func LoadSnake(customPath string, preset DifficultyPreset) (SnakeConfig, error) {
	return loadWith("snake", customPath, preset, ApplySnakePreset)
}

// LoadTetris loads Tetris configuration and applies a difficulty preset.
func LoadTetris(customPath string, preset DifficultyPreset) (TetrisConfig, error) {
	return loadWith("tetris", customPath, preset, ApplyTetrisPreset)
}

// LoadBreakout loads Breakout configuration and applies a difficulty preset.
func LoadBreakout(customPath string, preset DifficultyPreset) (BreakoutConfig, error) {
	return loadWith("breakout", customPath, preset, ApplyBreakoutPreset)
}

// LoadPong loads Pong configuration and applies a difficulty preset.
func LoadPong(customPath string, preset DifficultyPreset) (PongConfig, error) {
	return loadWith("pong", customPath, preset, ApplyPongPreset)
}

// LoadFlappy loads Flappy Bird configuration and applies a difficulty preset.
func LoadFlappy(customPath string, preset DifficultyPreset) (FlappyConfig, error) {
	return loadWith("flappy", customPath, preset, ApplyFlappyPreset)
}

// LoadAsteroids loads Asteroids configuration and applies a difficulty preset.
func LoadAsteroids(customPath string, preset DifficultyPreset) (AsteroidsConfig, error) {
	return loadWith("asteroids", customPath, preset, ApplyAsteroidsPreset)
}

// LoadMinesweeper loads Minesweeper configuration and applies a difficulty preset.
func LoadMinesweeper(customPath string, preset DifficultyPreset) (MinesweeperConfig, error) {
	return loadWith("minesweeper", customPath, preset, ApplyMinesweeperPreset)
}

// LoadPlatformer loads Platformer configuration and applies a difficulty preset.
func LoadPlatformer(customPath string, preset DifficultyPreset) (PlatformerConfig, error) {
	return loadWith("platformer", customPath, preset, ApplyPlatformerPreset)
}

// LoadCatch loads Catch the Ball configuration and applies a difficulty preset.
func LoadCatch(customPath string, preset DifficultyPreset) (CatchConfig, error) {
	return loadWith("catch", customPath, preset, ApplyCatchPreset)
}

// LoadWhack loads Whack-a-Mole configuration and applies a difficulty preset.
func LoadWhack(customPath string, preset DifficultyPreset) (WhackConfig, error) {
	return loadWith("whack", customPath, preset, ApplyWhackPreset)
}

// LoadFrogger loads Frogger configuration and applies a difficulty preset.
func LoadFrogger(customPath string, preset DifficultyPreset) (FroggerConfig, error) {
	return loadWith("frogger", customPath, preset, ApplyFroggerPreset)
}

// LoadInvaders loads Space Invaders configuration and applies a difficulty preset.
func LoadInvaders(customPath string, preset DifficultyPreset) (InvadersConfig, error) {
	return loadWith("invaders", customPath, preset, ApplyInvadersPreset)
}

// ApplySnakePreset adjusts Snake for a preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

// ApplyTetrisPreset picks the starting level. Fixed keeps the level constant.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy, DifficultyNormal:
		cfg.Board.StartLevel = 1
	case DifficultyHard:
		cfg.Board.StartLevel = 5
	case DifficultyFixed:
		cfg.Board.LinesPerLevel = 0
	}
}

// ApplyBreakoutPreset applies breakout-specific difficulty settings.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 10
		cfg.Physics.BallSpeed = 0.3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 0.45
	}
}

// ApplyPongPreset adjusts the CPU opponent for a preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.CPU.MinSkill, cfg.CPU.MaxSkill = 0.4, 0.6
	case DifficultyHard:
		cfg.CPU.MinSkill, cfg.CPU.MaxSkill = 0.8, 0.95
	}
}

// ApplyFlappyPreset adjusts Flappy Bird for a preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

// ApplyAsteroidsPreset adjusts Asteroids for a preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Rocks.PerWave = 7
	}
}

// ApplyMinesweeperPreset sets the mine count for a preset.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Mines = 10
	case DifficultyNormal:
		cfg.Mines = 15
	case DifficultyHard:
		cfg.Mines = 25
	}
}

// ApplyPlatformerPreset sets the cost of falling off the level.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.FallPenalty = 0
	case DifficultyHard:
		cfg.Scoring.FallPenalty = 150
	}
}

// ApplyCatchPreset adjusts Catch the Ball for a preset. Any preset other
// than fixed turns on the score-based speed-up.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxMisses = 8
	case DifficultyHard:
		cfg.Gameplay.MaxMisses = 3
	}
}

// ApplyWhackPreset adjusts Whack-a-Mole for a preset. Easy moles stay up
// longer, hard ones duck sooner.
func ApplyWhackPreset(cfg *WhackConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Moles.MinLife, cfg.Moles.MaxLife = 60, 100
	case DifficultyHard:
		cfg.Moles.MinLife, cfg.Moles.MaxLife = 25, 50
	}
}

// ApplyFroggerPreset adjusts Frogger for a preset. Easy and hard also
// change the number of lives.
func ApplyFroggerPreset(cfg *FroggerConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}

// ApplyInvadersPreset sets the fleet's marching pace. Fixed keeps the pace
// constant for the whole round.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Fleet.MoveEvery = 80
	case DifficultyHard:
		cfg.Fleet.MoveEvery = 40
		cfg.Fleet.MinMoveEvery = 5
	case DifficultyFixed:
		cfg.Fleet.ScorePerSpeedUp = 0
	}
}
