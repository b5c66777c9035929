package wheel

// Config holds the physical constants of the wheel-and-ball system. A Config
// is copied into the Wheel at construction and never mutated afterwards.
// Distances are in pixels unless the comment says meters.
type Config struct {
	PixelsPerMeter   float64 `yaml:"pixels_per_meter"`
	Gravity          float64 `yaml:"gravity"`  // m/s^2
	AirDrag          float64 `yaml:"air_drag"` // fraction of velocity lost per second
	WallRestitution  float64 `yaml:"wall_restitution"`
	MuStatic         float64 `yaml:"mu_static"`
	MuKinetic        float64 `yaml:"mu_kinetic"`
	InwardAccel      float64 `yaml:"inward_accel"`   // m/s^2, seats the ball against the rim
	WheelFriction    float64 `yaml:"wheel_friction"` // angular decay per second
	BallSpinFriction float64 `yaml:"ball_spin_friction"`
	RimThickness     float64 `yaml:"rim_thickness"`
	BallRadius       float64 `yaml:"ball_radius"`
	SpokeCount       int     `yaml:"spoke_count"`
	SpinImpulseMin   float64 `yaml:"spin_impulse_min"` // rad/s
	SpinImpulseMax   float64 `yaml:"spin_impulse_max"` // rad/s
	BoostSpeed       float64 `yaml:"boost_speed"` // m/s, tangential speed on placement
	WindowSize       int     `yaml:"window_size"`
}

func DefaultConfig() Config {
	return Config{
		PixelsPerMeter:   200.0,
		Gravity:          5.0,
		AirDrag:          0.10,
		WallRestitution:  0.25,
		MuStatic:         0.45,
		MuKinetic:        0.35,
		InwardAccel:      1.8,
		WheelFriction:    0.25,
		BallSpinFriction: 2.0,
		RimThickness:     24.0,
		BallRadius:       10.0,
		SpokeCount:       36,
		SpinImpulseMin:   0.6,
		SpinImpulseMax:   1.2,
		BoostSpeed:       2.2,
		WindowSize:       820,
	}
}
