package kernel

// Params holds the force-model constants. Every value here is a tuned
// behavioral constant: the model aims for visually stable, galaxy-like
// rotation, not physical accuracy, so the numbers are preserved as-is
// rather than derived.
type Params struct {
	// Central softened point-mass attraction.
	CentralMass float64
	CentralSoft float64

	// Isothermal-halo term giving a flat rotation curve at large radius.
	HaloStrength float64
	HaloCore     float64

	// Rotation-curve steering toward a flat tangential speed.
	VFlat               float64
	SteerDeadzone       float64
	SteerGainInner      float64
	SteerGainOuterScale float64
	SteerMax            float64

	// Radial damping rate, inner to outer.
	RadialDampInner float64
	RadialDampOuter float64

	// Epicyclic spring toward each body's preferred radius.
	EpicycleKInner float64
	EpicycleKOuter float64
	PreferredRMin  float64
	PreferredRMax  float64

	// Local clumping via hashed neighbor sampling.
	ClumpSamples  int
	ClumpRadius   float64
	ClumpStrength float64
	ClumpSoft     float64

	// Per-step velocity jitter amplitude (scaled by dt).
	JitterAmp float64

	// Escape safety net and jet respawn radius.
	EscapeRadius    float64
	EscapeReflect   float64
	EscapeNudge     float64
	JetEscapeRadius float64

	// Smooth inner-to-outer ramp used by the radius-dependent gains.
	RampStart float64
	RampWidth float64

	// Proximity brightness boost 1/(d+GlowSoft) applied at emit.
	GlowSoft float64
}

// DefaultParams returns the tuned constants the morphologies were balanced
// against.
func DefaultParams() Params {
	return Params{
		CentralMass:         3.5,
		CentralSoft:         0.05,
		HaloStrength:        0.75,
		HaloCore:            1.7,
		VFlat:               2.0,
		SteerDeadzone:       0.32,
		SteerGainInner:      0.38,
		SteerGainOuterScale: 0.35,
		SteerMax:            0.8,
		RadialDampInner:     0.10,
		RadialDampOuter:     0.06,
		EpicycleKInner:      0.06,
		EpicycleKOuter:      0.02,
		PreferredRMin:       0.15,
		PreferredRMax:       1.2,
		ClumpSamples:        6,
		ClumpRadius:         0.14,
		ClumpStrength:       0.035,
		ClumpSoft:           0.02,
		JitterAmp:           0.0035,
		EscapeRadius:        1000,
		EscapeReflect:       1.4,
		EscapeNudge:         0.1,
		JetEscapeRadius:     1.5,
		RampStart:           0.2,
		RampWidth:           1.2,
		GlowSoft:            0.2,
	}
}
