// Package control provides spin governors: feedback loops that nudge the
// wheel's angular velocity toward a target by injecting additive impulses
// between frames. Governors never brake; the wheel's own friction handles
// overshoot.
package control
