package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/spinwheel/internal/viz"
	"github.com/san-kum/spinwheel/internal/wheel"
)

// CanvasToSVG converts a Braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// FrameToSVG renders the wheel's current state as vector graphics: rim,
// spokes at the current angle, and the ball with its stripe marks.
func FrameToSVG(w *wheel.Wheel) string {
	if w == nil {
		return ""
	}

	width := w.Width
	height := w.Height
	cx := w.CenterX
	cy := w.CenterY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#00ffff" stroke-width="2"/>
`, cx, cy, w.RadiusOuter()))
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#00ffff" stroke-width="1"/>
`, cx, cy, w.RadiusInner))

	cfg := w.Config()
	sb.WriteString(`<g stroke="#006666" stroke-width="1">
`)
	for i := 0; i < cfg.SpokeCount; i += 2 {
		a := w.Angle + float64(i)/float64(cfg.SpokeCount)*2*math.Pi
		x0 := cx + math.Cos(a)*w.RadiusInner*0.60
		y0 := cy + math.Sin(a)*w.RadiusInner*0.60
		x1 := cx + math.Cos(a)*w.RadiusInner*0.98
		y1 := cy + math.Sin(a)*w.RadiusInner*0.98
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x1, y1))
	}
	sb.WriteString("</g>\n")

	hub := math.Max(2, cfg.RimThickness*0.4)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#00ffff"/>
`, cx, cy, hub))

	b := w.Ball
	r := w.BallRadius()
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#ffffff"/>
`, b.X, b.Y, r))

	// Stripe marks show the ball's own rotation.
	for _, phase := range []float64{0, math.Pi / 2} {
		a := b.SpinAngle + phase
		x0 := b.X - math.Cos(a)*r*0.8
		y0 := b.Y - math.Sin(a)*r*0.8
		x1 := b.X + math.Cos(a)*r*0.8
		y1 := b.Y + math.Sin(a)*r*0.8
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#0a0a0a" stroke-width="1.5"/>
`, x0, y0, x1, y1))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// BallPathToSVG plots the recorded ball positions from a run as a polyline.
// Each state row follows the runner's column order with time prepended by
// the caller stripped off, so ball x and y sit at indexes 2 and 3.
func BallPathToSVG(states [][]float64, width, height int, strokeColor string) string {
	if len(states) < 2 {
		return ""
	}

	minX, maxX := states[0][2], states[0][2]
	minY, maxY := states[0][3], states[0][3]
	for _, s := range states {
		minX = math.Min(minX, s[2])
		maxX = math.Max(maxX, s[2])
		minY = math.Min(minY, s[3])
		maxY = math.Max(maxY, s[3])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range states {
		// Screen coordinates already grow downward, no flip needed.
		x := (s[2] - minX) / rangeX * float64(width)
		y := (s[3] - minY) / rangeY * float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
