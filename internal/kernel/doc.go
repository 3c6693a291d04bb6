// Package kernel implements the per-body dynamics update for the galaxy
// simulation.
//
// Each frame is an embarrassingly parallel map over body indices: for a
// given body the kernel composes a central softened attraction, an
// isothermal-halo term, rotation-curve steering toward a flat tangential
// speed, radial damping, an epicyclic spring toward a per-body preferred
// radius, hashed local clumping, and a small deterministic jitter, then
// integrates with semi-implicit Euler and emits three render vertices.
//
// The kernel holds no random state. All per-body variation comes from
// integer hashes of the body index, so one step is a pure function of
// (store, snapshot, dt): two runs over the same inputs produce identical
// output regardless of how the indices are scheduled.
//
// Numerical safety is structural: every force denominator carries an
// additive softening constant, so no radius can produce NaN or Inf.
// Removing one of those constants is a correctness regression.
package kernel
