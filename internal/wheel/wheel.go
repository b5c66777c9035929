package wheel

import (
	"math"
	"math/rand"
)

// Ball is the rolling body constrained to the wheel's inner rim.
// SpinAngle is visual only; SpinOmega couples into rim friction.
type Ball struct {
	X, Y      float64
	VX, VY    float64
	SpinAngle float64
	SpinOmega float64
}

// Contact describes the rim interaction resolved during the most recent
// Update. Touching is false on frames where the ball never reached the rim.
type Contact struct {
	Touching bool
	Sticking bool
	Slip     float64 // relative tangential speed at the contact point, pre-impulse
	Impulse  float64 // tangential impulse applied
	Force    float64 // normal force estimate that bounded the impulse
}

// Wheel is the complete simulation state: a spinning wheel and a ball held
// inside its inner rim. Renderers read the exported fields between Update
// calls and must not write them. A Wheel is not safe for concurrent use.
type Wheel struct {
	Width, Height    float64
	CenterX, CenterY float64
	RadiusInner      float64
	Angle            float64 // radians, unbounded
	Omega            float64 // rad/s
	Ball             Ball
	LastContact      Contact

	cfg Config
	rng *rand.Rand
}

// New builds a wheel sized to cfg.WindowSize with the ball placed at a random
// rim position. All randomness (placement, spin impulses) comes from rng.
func New(cfg Config, rng *rand.Rand) *Wheel {
	w := &Wheel{cfg: cfg, rng: rng, Omega: 0.4}
	w.Resize(cfg.WindowSize, cfg.WindowSize)
	return w
}

func (w *Wheel) Config() Config { return w.cfg }

// RadiusOuter is the decorative outer edge of the rim.
func (w *Wheel) RadiusOuter() float64 { return w.RadiusInner + w.cfg.RimThickness }

// BallRadius is the ball's radius in pixels.
func (w *Wheel) BallRadius() float64 { return w.cfg.BallRadius }

// BallSpeed is the ball's translational speed in px/s.
func (w *Wheel) BallSpeed() float64 { return math.Hypot(w.Ball.VX, w.Ball.VY) }

// Resize recomputes the geometry for a new viewport and reseats the ball,
// which keeps the state valid after a shrink.
func (w *Wheel) Resize(width, height int) {
	w.Width, w.Height = float64(width), float64(height)
	w.CenterX, w.CenterY = w.Width*0.5, w.Height*0.5

	visual := math.Min(w.Width, w.Height) * 0.45
	w.RadiusInner = math.Max(40, visual-w.cfg.RimThickness)

	w.ResetBall()
}

// ResetBall places the ball just inside the rim at a random angle, moving
// tangentially at the configured boost speed. Spin is left untouched.
func (w *Wheel) ResetBall() {
	angle := w.rng.Float64() * 2 * math.Pi
	r := w.RadiusInner - w.cfg.BallRadius - 1
	ux, uy := math.Cos(angle), math.Sin(angle)
	w.Ball.X = w.CenterX + ux*r
	w.Ball.Y = w.CenterY + uy*r

	boost := w.cfg.BoostSpeed * w.cfg.PixelsPerMeter
	w.Ball.VX = -uy * boost
	w.Ball.VY = ux * boost
}

// ApplySpinImpulse adds a random angular impulse in the configured range to
// the wheel. Additive, so repeated triggers stack without discontinuity.
func (w *Wheel) ApplySpinImpulse() {
	w.Omega += w.cfg.SpinImpulseMin + w.rng.Float64()*(w.cfg.SpinImpulseMax-w.cfg.SpinImpulseMin)
}

// Update advances the system by dt seconds using semi-implicit Euler, then
// resolves rim contact. The order of operations is load-bearing: velocities
// are updated before positions, and angular decay happens before contact so
// the friction model sees the decayed surface speed.
func (w *Wheel) Update(dt float64) {
	g := w.cfg.Gravity * w.cfg.PixelsPerMeter
	w.Ball.VY += g * dt

	airK := math.Max(0, 1-w.cfg.AirDrag*dt)
	w.Ball.VX *= airK
	w.Ball.VY *= airK

	w.Ball.X += w.Ball.VX * dt
	w.Ball.Y += w.Ball.VY * dt

	wheelK := math.Max(0, 1-w.cfg.WheelFriction*dt)
	w.Omega *= wheelK
	w.Angle += w.Omega * dt

	spinK := math.Max(0, 1-w.cfg.BallSpinFriction*dt)
	w.Ball.SpinOmega *= spinK

	dx := w.Ball.X - w.CenterX
	dy := w.Ball.Y - w.CenterY
	dist := math.Max(math.Hypot(dx, dy), 1e-6)
	nx, ny := dx/dist, dy/dist
	allowed := w.RadiusInner - w.cfg.BallRadius

	w.LastContact = Contact{}
	if dist > allowed {
		pen := dist - allowed
		w.Ball.X -= nx * pen
		w.Ball.Y -= ny * pen

		vn := w.Ball.VX*nx + w.Ball.VY*ny
		tx, ty := -ny, nx
		vt := w.Ball.VX*tx + w.Ball.VY*ty

		// Reflect only outward motion; inward motion gets no energy added.
		if vn > 0 {
			vn = -vn * w.cfg.WallRestitution
		}

		surface := w.Omega * allowed
		slip := vt - surface - w.Ball.SpinOmega*allowed

		// Normal force estimate, unit mass: centripetal term plus gravity's
		// component along the outward normal. A fixed heuristic; it only
		// bounds the friction impulse.
		force := math.Max(0, vt*vt/math.Max(1, allowed)+math.Max(0, g*ny))
		maxStatic := w.cfg.MuStatic * force * dt
		maxKinetic := w.cfg.MuKinetic * force * dt

		// Impulse that cancels slip for a uniform solid disk.
		j := -slip / 3
		sticking := math.Abs(j) <= maxStatic
		if !sticking {
			j = math.Copysign(maxKinetic, -slip)
		}
		vt += j

		w.Ball.VX = vn*nx + vt*tx
		w.Ball.VY = vn*ny + vt*ty

		inward := w.cfg.InwardAccel * w.cfg.PixelsPerMeter
		w.Ball.VX -= nx * inward * dt
		w.Ball.VY -= ny * inward * dt

		w.Ball.SpinOmega += -2 * j / math.Max(1, w.cfg.BallRadius)

		w.LastContact = Contact{
			Touching: true,
			Sticking: sticking,
			Slip:     slip,
			Impulse:  j,
			Force:    force,
		}
	}

	w.Ball.SpinAngle += w.Ball.SpinOmega * dt
}
