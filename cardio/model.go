// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cardio

import (
	"io"

	"github.com/emer/etable/etensor"
)

// Model is the interface shared by all cardiac tissue models
// (FitzHugh-Nagumo, Luo-Rudy, Ten Tusscher).  All models embed ModelBase,
// which provides everything except Step, the readers, and persistence,
// which are model-specific.
type Model interface {
	// Name returns the name of this model instance.
	Name() string

	// Step advances the simulation by one time step: diffusion of the
	// potential field, reaction terms per non-masked cell, gating /
	// recovery updates from the pre-step potential, then commits the
	// new potential and advances the clock.
	Step()

	// Run calls Step exactly steps times, sequentially, with no early
	// exit and no per-step error recovery.
	Run(steps int)

	// UpdateParams updates all derived parameter values after any
	// parameters have been changed.
	UpdateParams()

	// CurTime returns the current simulation time.
	CurTime() float64

	// SetConductivity sets the tissue conductivity (diffusion
	// coefficient for the potential field).
	SetConductivity(cond float64)

	// SetMask sets the tissue (scar) mask wholesale, copying from the
	// given bool grid.  Returns a *ShapeError and leaves the mask
	// unchanged if the grid does not match the model shape.
	SetMask(mask *etensor.Bits) error

	// PotentialValues copies the current membrane potential field
	// (the u field for FitzHugh-Nagumo) into the given tensor,
	// setting its shape.
	PotentialValues(tsr *etensor.Float64)

	// StateFields returns the persisted field tensors in their fixed
	// serialization order.  The returned tensors are the live fields:
	// callers must not mutate them.
	StateFields() []*etensor.Float64

	// WriteState writes grid dimensions, current time, scalar model
	// parameters and every field array to the given writer in the
	// model's fixed text format.
	WriteState(w io.Writer) error

	// ReadState restores state written by WriteState.  The entire
	// stream is read and validated before any live state is touched:
	// on error (including a *ShapeError for mismatched header
	// dimensions) the model is left exactly as it was.
	ReadState(r io.Reader) error
}

// RunPotential runs the model for the given number of steps and returns
// a copy of the resulting membrane potential field.  This is the single
// "produce final output grid" entry point used by external collaborators
// (preprocessing, validation, visualization).
func RunPotential(m Model, steps int) *etensor.Float64 {
	m.Run(steps)
	tsr := &etensor.Float64{}
	m.PotentialValues(tsr)
	return tsr
}
