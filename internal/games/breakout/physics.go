package breakout

import "math"

// Fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-pixel precision while maintaining determinism.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// FixedFromFloat converts a config value in cells to fixed-point.
func FixedFromFloat(v float64) Fixed {
	return Fixed(math.Round(v * Scale))
}

// ToCell converts fixed-point to cell coordinate (floored).
func (f Fixed) ToCell() int {
	if f < 0 {
		return (int(f) - Scale + 1) / Scale
	}
	return int(f) / Scale
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// Ball represents the ball state with fixed-point coordinates.
type Ball struct {
	X, Y   Fixed // Position
	VX, VY Fixed // Velocity per tick
	Stuck  bool  // Resting on the paddle, waiting for launch
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int { return b.X.ToCell() }

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int { return b.Y.ToCell() }

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Aim sets the velocity to speed cells per tick at angle radians.
// Negative angles point up the screen.
func (b *Ball) Aim(angle float64, speed Fixed) {
	b.VX = Fixed(math.Round(math.Cos(angle) * float64(speed)))
	b.VY = Fixed(math.Round(math.Sin(angle) * float64(speed)))
}

// Paddle represents the player's paddle.
type Paddle struct {
	X     Fixed // Left edge position (fixed-point)
	Y     int   // Cell Y position (fixed row at bottom)
	Width int   // Width in cells
}

// CenterX returns paddle's center in fixed-point.
func (p *Paddle) CenterX() Fixed {
	return p.X + ToFixed(p.Width)/2
}

// Right returns right edge in fixed-point.
func (p *Paddle) Right() Fixed {
	return p.X + ToFixed(p.Width)
}

// BounceAngle maps a hit position along the paddle (0 = left edge,
// 1 = right edge) to an upward launch angle spanning ±54° from vertical.
func BounceAngle(hit float64) float64 {
	hit = math.Max(0, math.Min(1, hit))
	return -math.Pi/2 + (hit-0.5)*math.Pi*0.6
}

// Arena is the playable area inside the walls, in cells.
type Arena struct {
	Left, Right int // Inclusive columns the ball may occupy
	Top         int // First row below the ceiling
	Bottom      int // Rows at or below this are a miss
}

// CollisionSide indicates which wall was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionLeft
	CollisionRight
	CollisionFloor
)

// CheckWallCollision bounces the ball off the side walls and ceiling using
// its post-motion position. CollisionFloor means the ball was missed.
func CheckWallCollision(ball *Ball, a Arena) CollisionSide {
	switch {
	case ball.X < ToFixed(a.Left):
		ball.X = ToFixed(a.Left)
		ball.VX = ball.VX.Abs()
		return CollisionLeft
	case ball.X >= ToFixed(a.Right+1):
		ball.X = ToFixed(a.Right)
		ball.VX = -ball.VX.Abs()
		return CollisionRight
	case ball.Y < ToFixed(a.Top):
		ball.Y = ToFixed(a.Top)
		ball.VY = ball.VY.Abs()
		return CollisionTop
	case ball.Y >= ToFixed(a.Bottom):
		return CollisionFloor
	}
	return CollisionNone
}

// CheckPaddleCollision reflects a descending ball that reached the paddle
// row inside the paddle span. The outgoing angle depends on the hit point.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, speed Fixed) bool {
	if ball.VY <= 0 || ball.CellY() != paddle.Y {
		return false
	}
	if ball.X < paddle.X || ball.X > paddle.Right() {
		return false
	}

	hit := float64(ball.X-paddle.X) / float64(ToFixed(paddle.Width))
	ball.Aim(BounceAngle(hit), speed)
	ball.Y = ToFixed(paddle.Y - 1)
	return true
}
