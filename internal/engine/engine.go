// Package engine owns the frame loop state: the current body store, the
// clamped delta-time clock, and reset handling. One Engine drives one
// simulation run; the renderer consumes the vertex stream it returns.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/galaxia/internal/body"
	"github.com/san-kum/galaxia/internal/compute"
	"github.com/san-kum/galaxia/internal/config"
	"github.com/san-kum/galaxia/internal/galaxy"
	"github.com/san-kum/galaxia/internal/kernel"
)

// Engine is the frame driver. Not safe for concurrent use; one goroutine
// owns the frame loop (the kernel parallelizes internally).
type Engine struct {
	cfg     config.Config
	kern    *kernel.Kernel
	backend compute.Backend
	rng     *rand.Rand

	store *body.Store
	morph galaxy.Morphology
	snap  []body.Vec2
	verts []body.Vertex

	last    time.Time
	started bool
}

// New validates the configuration, generates the initial population and
// returns a ready engine.
func New(cfg config.Config) (*Engine, error) {
	if cfg.Stars <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStarBudget, cfg.Stars)
	}
	if cfg.MaxDt <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidMaxDt, cfg.MaxDt)
	}
	if cfg.Morphology != "" {
		if _, ok := galaxy.ByName(cfg.Morphology); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMorphology, cfg.Morphology)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var backend compute.Backend
	if cfg.Workers > 0 {
		backend = compute.NewCPUBackendWith(cfg.Workers)
	} else {
		backend = compute.GetBackend()
	}

	e := &Engine{
		cfg:     cfg,
		kern:    kernel.New(kernel.DefaultParams()),
		backend: backend,
		rng:     rand.New(rand.NewSource(seed)),
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}
	return e, nil
}

// SetBackend overrides the dispatch backend. Tests pin the serial backend
// here for bit-exact determinism.
func (e *Engine) SetBackend(b compute.Backend) { e.backend = b }

// Reset regenerates the body store under a freshly drawn morphology (or
// the configured override) and reallocates the frame buffers. On failure
// the previous store and buffers stay untouched and keep running.
func (e *Engine) Reset() error {
	morph := galaxy.Random(e.rng)
	if e.cfg.Morphology != "" {
		m, ok := galaxy.ByName(e.cfg.Morphology)
		if !ok {
			return &ResetError{Morphology: e.cfg.Morphology, Wrapped: ErrUnknownMorphology}
		}
		morph = m
	}

	store, err := galaxy.Generate(morph, e.cfg.Stars, e.rng)
	if err != nil {
		return &ResetError{Morphology: morph.String(), Wrapped: err}
	}

	// Swap everything at once; the old buffers are abandoned wholesale.
	e.store = store
	e.morph = morph
	e.snap = make([]body.Vec2, 0, store.Len())
	e.verts = make([]body.Vertex, store.Len()*3)
	e.started = false
	return nil
}

// Advance computes a clamped delta-time from the wall clock and steps the
// simulation one frame. The first call after a reset uses dt = 0.
func (e *Engine) Advance(now time.Time) []body.Vertex {
	dt := 0.0
	if e.started {
		dt = now.Sub(e.last).Seconds()
		if dt > e.cfg.MaxDt {
			dt = e.cfg.MaxDt
		}
		if dt < 0 {
			dt = 0
		}
	}
	e.last = now
	e.started = true
	return e.Step(dt)
}

// Step advances every body by the shared dt and returns the 3*N vertex
// stream. Neighbor reads inside the kernel go against the frame-start
// centroid snapshot taken here.
func (e *Engine) Step(dt float64) []body.Vertex {
	e.snap = e.store.Centroids(e.snap)
	e.kern.Step(e.store, e.snap, dt, e.verts, e.backend)
	return e.verts
}

// Run advances the simulation for steps fixed-dt frames, polling ctx
// between frames. onFrame, if non-nil, observes each frame's vertices.
func (e *Engine) Run(ctx context.Context, steps int, dt float64, onFrame func(frame int, verts []body.Vertex)) error {
	if dt < 0 {
		return fmt.Errorf("%w: %f", ErrInvalidMaxDt, dt)
	}
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		verts := e.Step(dt)
		if onFrame != nil {
			onFrame(i, verts)
		}
	}
	return nil
}

// Store exposes the live body store for metrics and tests.
func (e *Engine) Store() *body.Store { return e.store }

// Bodies returns the current body count, including bulge and jets.
func (e *Engine) Bodies() int { return e.store.Len() }

// Morphology returns the recipe the current population was generated from.
func (e *Engine) Morphology() galaxy.Morphology { return e.morph }

// Params returns the kernel constants in use.
func (e *Engine) Params() kernel.Params { return e.kern.P }

// Backend reports the active dispatch backend.
func (e *Engine) Backend() compute.Backend { return e.backend }
