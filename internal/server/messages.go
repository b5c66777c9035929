package server

import (
	"encoding/json"
	"fmt"
)

// Command is a client request acting on the shared wheel.
type Command struct {
	Op string `json:"op"`
}

const (
	OpSpin  = "spin"
	OpReset = "reset"
)

// ParseCommand decodes and validates a client message. Unknown ops are
// rejected so a typo never silently becomes a no-op.
func ParseCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	switch cmd.Op {
	case OpSpin, OpReset:
		return cmd, nil
	default:
		return Command{}, fmt.Errorf("unknown op %q", cmd.Op)
	}
}

// Frame is the state snapshot broadcast to every client.
type Frame struct {
	Tick       int64   `json:"tick"`
	Time       float64 `json:"t"`
	WheelAngle float64 `json:"wheel_angle"`
	WheelOmega float64 `json:"wheel_omega"`
	BallX      float64 `json:"ball_x"`
	BallY      float64 `json:"ball_y"`
	BallVX     float64 `json:"ball_vx"`
	BallVY     float64 `json:"ball_vy"`
	SpinAngle  float64 `json:"spin_angle"`
	SpinOmega  float64 `json:"spin_omega"`
	Touching   bool    `json:"touching"`
	Sticking   bool    `json:"sticking"`
}
