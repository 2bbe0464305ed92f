package core

// Session tracks the score of the current round and the best score seen
// since the process started. High scores live in memory only.
type Session struct {
	score     int
	highScore int
}

// Add increases the score. Non-positive amounts are ignored, so the score
// never decreases within a round.
func (s *Session) Add(points int) {
	if points <= 0 {
		return
	}
	s.score += points
}

// Raise lifts the score to v if v is higher. Games whose score is a
// running maximum (balance, max tile) use this instead of Add.
func (s *Session) Raise(v int) {
	if v > s.score {
		s.score = v
	}
}

// Score returns the current round's score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best finalized score, or the current score if it
// is already higher.
func (s *Session) HighScore() int {
	return Max(s.highScore, s.score)
}

// Finalize folds the current score into the high score.
func (s *Session) Finalize() {
	s.highScore = s.HighScore()
}

// Reset starts a new round. The high score survives.
func (s *Session) Reset() {
	s.Finalize()
	s.score = 0
}

// ScoreRecorder receives finished rounds. The arcade's implementation is
// the in-memory session scoreboard in internal/storage.
type ScoreRecorder interface {
	SaveScore(gameID, sessionID string, score int) (int64, error)
}
