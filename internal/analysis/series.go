package analysis

import "math"

// Row indexes into a recorded state row (see sim.Columns).
const (
	colBallX  = 2
	colBallY  = 3
	colBallVX = 4
	colBallVY = 5
)

// TangentialSpeed extracts the ball's velocity component along the rim from
// recorded state rows, given the wheel center. Positive values follow the
// counter-clockwise tangent basis used by the contact resolver.
func TangentialSpeed(states [][]float64, cx, cy float64) []float64 {
	out := make([]float64, len(states))
	for i, row := range states {
		if len(row) <= colBallVY {
			continue
		}
		dx := row[colBallX] - cx
		dy := row[colBallY] - cy
		dist := math.Max(math.Hypot(dx, dy), 1e-6)
		nx, ny := dx/dist, dy/dist
		// t = (-n.y, n.x)
		out[i] = row[colBallVX]*(-ny) + row[colBallVY]*nx
	}
	return out
}

// Speed extracts the ball's translational speed series from recorded rows.
func Speed(states [][]float64) []float64 {
	out := make([]float64, len(states))
	for i, row := range states {
		if len(row) <= colBallVY {
			continue
		}
		out[i] = math.Hypot(row[colBallVX], row[colBallVY])
	}
	return out
}
