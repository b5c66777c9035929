package viz

import (
	"math"

	"github.com/san-kum/spinwheel/internal/wheel"
)

// RenderWheel draws a wheel frame onto the canvas: rim ring, alternating
// spokes at the current wheel angle, hub, and the ball with its spin stripe.
// The wheel's pixel space is fitted to the canvas sub-pixel grid.
func RenderWheel(c *Canvas, w *wheel.Wheel) {
	sw, sh := float64(c.SubWidth()), float64(c.SubHeight())
	scale := math.Min(sw/w.Width, sh/w.Height)
	ox := sw/2 - w.CenterX*scale
	oy := sh/2 - w.CenterY*scale

	px := func(x, y float64) (int, int) {
		return int(math.Round(x*scale + ox)), int(math.Round(y*scale + oy))
	}

	cx, cy := px(w.CenterX, w.CenterY)
	inner := w.RadiusInner * scale
	outer := w.RadiusOuter() * scale

	c.DrawCircle(cx, cy, inner)
	c.DrawCircle(cx, cy, outer)

	// Alternating spokes make the rotation visible on a monochrome grid.
	cfg := w.Config()
	hub := math.Max(2, cfg.RimThickness*0.4*scale)
	step := 2 * math.Pi / float64(cfg.SpokeCount)
	for i := 0; i < cfg.SpokeCount; i += 2 {
		a := w.Angle + float64(i)*step
		ca, sa := math.Cos(a), math.Sin(a)
		x0, y0 := px(w.CenterX+ca*w.RadiusInner*0.60, w.CenterY+sa*w.RadiusInner*0.60)
		x1, y1 := px(w.CenterX+ca*w.RadiusInner*0.98, w.CenterY+sa*w.RadiusInner*0.98)
		c.DrawLine(x0, y0, x1, y1)
	}

	c.FillCircle(cx, cy, hub)

	// Ball with a stripe showing its spin.
	bx, by := px(w.Ball.X, w.Ball.Y)
	br := cfg.BallRadius * scale
	c.FillCircle(bx, by, br)
	stripe(c, bx, by, br, w.Ball.SpinAngle)
	stripe(c, bx, by, br, w.Ball.SpinAngle+math.Pi/2)
}

// stripe clears a diameter line through a filled disk, like the painted
// bands on a roulette ball.
func stripe(c *Canvas, cx, cy int, r, angle float64) {
	if r < 2 {
		return
	}
	ca, sa := math.Cos(angle), math.Sin(angle)
	steps := int(math.Ceil(2 * r))
	for i := 0; i <= steps; i++ {
		d := -r + float64(i)*2*r/float64(steps)
		c.Unset(cx+int(math.Round(ca*d)), cy+int(math.Round(sa*d)))
	}
}
