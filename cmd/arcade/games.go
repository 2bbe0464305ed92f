package main

// Import games to register them
import (
	_ "github.com/vovakirdan/retro-arcade/internal/games/asteroids"
	_ "github.com/vovakirdan/retro-arcade/internal/games/blackjack"
	_ "github.com/vovakirdan/retro-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/retro-arcade/internal/games/catch"
	_ "github.com/vovakirdan/retro-arcade/internal/games/checkers"
	_ "github.com/vovakirdan/retro-arcade/internal/games/connectfour"
	_ "github.com/vovakirdan/retro-arcade/internal/games/dice"
	_ "github.com/vovakirdan/retro-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/retro-arcade/internal/games/frogger"
	_ "github.com/vovakirdan/retro-arcade/internal/games/guess"
	_ "github.com/vovakirdan/retro-arcade/internal/games/hangman"
	_ "github.com/vovakirdan/retro-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/retro-arcade/internal/games/maze"
	_ "github.com/vovakirdan/retro-arcade/internal/games/memory"
	_ "github.com/vovakirdan/retro-arcade/internal/games/minesweeper"
	_ "github.com/vovakirdan/retro-arcade/internal/games/platformer"
	_ "github.com/vovakirdan/retro-arcade/internal/games/pong"
	_ "github.com/vovakirdan/retro-arcade/internal/games/rps"
	_ "github.com/vovakirdan/retro-arcade/internal/games/scramble"
	_ "github.com/vovakirdan/retro-arcade/internal/games/simon"
	_ "github.com/vovakirdan/retro-arcade/internal/games/slide"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
	_ "github.com/vovakirdan/retro-arcade/internal/games/sudoku"
	_ "github.com/vovakirdan/retro-arcade/internal/games/t2048"
	_ "github.com/vovakirdan/retro-arcade/internal/games/tetris"
	_ "github.com/vovakirdan/retro-arcade/internal/games/tictactoe"
	_ "github.com/vovakirdan/retro-arcade/internal/games/trivia"
	_ "github.com/vovakirdan/retro-arcade/internal/games/war"
	_ "github.com/vovakirdan/retro-arcade/internal/games/whack"
	_ "github.com/vovakirdan/retro-arcade/internal/games/yahtzee"
)
