package control

import "github.com/san-kum/spinwheel/internal/wheel"

// None is the do-nothing governor: the wheel spins only from user triggers.
type None struct{}

func NewNone() *None { return &None{} }

func (n *None) Adjust(w *wheel.Wheel, t float64) {}
