// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fhn implements the FitzHugh-Nagumo simplified excitable-medium
model over a 2D tissue grid:

	du/dt = u - u^3/3 - v + stimulus + Du * lap(u)
	dv/dt = (u + a - b*v) / c + Dv * lap(v)

where u is the fast excitation variable (the model's membrane-potential
analog) and v the slow recovery variable.  Cells marked in the tissue
mask are electrically inert: they receive no diffusion and no reaction,
and are copied forward unchanged.
*/
package fhn

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/emer/etable/etensor"
	"github.com/miomod/miomod/cardio"
)

// InitPerturb is the half-range of the uniform random perturbations
// seeded into the u and v fields by Init.
const InitPerturb = 0.01

// EqParams are the FitzHugh-Nagumo equation parameters.
type EqParams struct {
	A  float64 `def:"0.1" desc:"recovery offset in dv/dt = (u + a - b*v)/c"`
	B  float64 `def:"0.5" desc:"recovery gain on v in dv/dt"`
	C  float64 `def:"1" desc:"recovery time scale divisor in dv/dt"`
	D  float64 `def:"0" desc:"reserved parameter -- stored and persisted but not used by the reaction terms"`
	Du float64 `def:"0.1" desc:"diffusion coefficient for the fast variable u"`
	Dv float64 `def:"0" desc:"diffusion coefficient for the slow variable v -- typically zero"`
}

func (ep *EqParams) Defaults() {
	ep.A = 0.1
	ep.B = 0.5
	ep.C = 1
	ep.D = 0
	ep.Du = 0.1
	ep.Dv = 0
}

func (ep *EqParams) Update() {
}

// ReactionU is the reaction term for the fast variable:
// du/dt = u - u^3/3 - v + stimulus
func (ep *EqParams) ReactionU(u, v, stim float64) float64 {
	return u - u*u*u/3.0 - v + stim
}

// ReactionV is the reaction term for the slow variable:
// dv/dt = (u + a - b*v) / c
func (ep *EqParams) ReactionV(u, v float64) float64 {
	return (u + ep.A - ep.B*v) / ep.C
}

// fhn.Model is the FitzHugh-Nagumo tissue model.
type Model struct {
	cardio.ModelBase

	Eq EqParams `view:"inline" desc:"equation parameters: reaction constants a, b, c, d and diffusion coefficient pair du, dv"`

	U *etensor.Float64 `desc:"fast excitation variable -- the membrane potential analog"`
	V *etensor.Float64 `desc:"slow recovery variable"`

	Stim *etensor.Float64 `desc:"external stimulus field, added into the u reaction term -- a point stimulus stays until overwritten or cleared"`

	uNew, vNew *etensor.Float64 // write targets for the field swap
	duDt, dvDt *etensor.Float64 // diffusion scratch
}

// New returns a new FitzHugh-Nagumo model with the given grid dimensions
// and time step, with all fields at zero (the model's resting state) and
// default parameters.
func New(width, height int, dt float64) (*Model, error) {
	fh := &Model{}
	if err := fh.InitModel(fh, width, height, dt, "FitzHughNagumo"); err != nil {
		return nil, err
	}
	fh.Defaults()
	fh.U = fh.NewField()
	fh.V = fh.NewField()
	fh.Stim = fh.NewField()
	fh.uNew = fh.NewField()
	fh.vNew = fh.NewField()
	fh.duDt = fh.NewField()
	fh.dvDt = fh.NewField()
	return fh, nil
}

func (fh *Model) Defaults() {
	fh.Eq.Defaults()
}

func (fh *Model) UpdateParams() {
	fh.Eq.Update()
}

// Init seeds the u and v fields with small uniform random perturbations
// in [-InitPerturb, InitPerturb] drawn from the given generator, clears
// the stimulus field, and resets the simulation clock.  Passing the
// generator explicitly makes initialization reproducible under a fixed
// seed; a nil rnd uses a new time-seeded generator.
func (fh *Model) Init(rnd *rand.Rand) {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := fh.Shp.Len()
	for i := 0; i < n; i++ {
		fh.U.Values[i] = InitPerturb * (2*rnd.Float64() - 1)
		fh.V.Values[i] = InitPerturb * (2*rnd.Float64() - 1)
		fh.Stim.Values[i] = 0
	}
	fh.Time.Reset()
}

// SetParameters sets the reaction constants a, b, c, d.
func (fh *Model) SetParameters(a, b, c, d float64) {
	fh.Eq.A = a
	fh.Eq.B = b
	fh.Eq.C = c
	fh.Eq.D = d
}

// SetDiffusionCoefficients sets the diffusion coefficients for u and v.
func (fh *Model) SetDiffusionCoefficients(du, dv float64) {
	fh.Eq.Du = du
	fh.Eq.Dv = dv
}

// SetInitialConditions copies explicit initial u and v fields into the
// model.  Returns a *cardio.ShapeError and leaves state unchanged if
// either grid does not match the model shape.
func (fh *Model) SetInitialConditions(uInit, vInit *etensor.Float64) error {
	for _, tsr := range []*etensor.Float64{uInit, vInit} {
		if tsr.NumDims() != 2 || tsr.Dim(0) != fh.Shp.Dim(0) || tsr.Dim(1) != fh.Shp.Dim(1) {
			got := make([]int, tsr.NumDims())
			for i := range got {
				got[i] = tsr.Dim(i)
			}
			err := &cardio.ShapeError{Op: "SetInitialConditions", Want: []int{fh.Shp.Dim(0), fh.Shp.Dim(1)}, Got: got}
			log.Println(err)
			return err
		}
	}
	copy(fh.U.Values, uInit.Values)
	copy(fh.V.Values, vInit.Values)
	return nil
}

// AddStimulus sets an external stimulus of the given strength at cell
// (x, y).  The stimulus enters the u reaction term every step until
// overwritten or cleared.  The duration argument is accepted for
// interface compatibility but is currently inert: no timed decay is
// applied (see ClearStimuli for manual removal).  Returns an error for
// out-of-bounds coordinates, leaving the stimulus field unchanged.
func (fh *Model) AddStimulus(x, y int, strength, duration float64) error {
	if x < 0 || x >= fh.Width() || y < 0 || y >= fh.Height() {
		err := fmt.Errorf("fhn.AddStimulus: invalid stimulus coordinates (%d, %d)", x, y)
		log.Println(err)
		return err
	}
	fh.Stim.Values[fh.Offset(x, y)] = strength
	return nil
}

// ClearStimuli zeroes the entire stimulus field.
func (fh *Model) ClearStimuli() {
	fh.Stim.SetZeros()
}

// Step advances the model by one time step: diffusion of u (and of v if
// Dv > 0), reaction terms per non-masked cell, explicit Euler update of
// both fields from their pre-step values, field swap, clock advance.
func (fh *Model) Step() {
	dt := fh.Dt()
	w := fh.Width()
	fh.duDt.SetZeros()
	fh.dvDt.SetZeros()
	if fh.Eq.Du > 0 {
		fh.Diffuse(fh.duDt, fh.U, fh.Eq.Du)
	}
	if fh.Eq.Dv > 0 {
		fh.Diffuse(fh.dvDt, fh.V, fh.Eq.Dv)
	}
	fh.RunOnRows(func(y int) {
		for x := 0; x < w; x++ {
			off := y*w + x
			u := fh.U.Values[off]
			v := fh.V.Values[off]
			if fh.Masked(off) {
				fh.uNew.Values[off] = u
				fh.vNew.Values[off] = v
				continue
			}
			fh.uNew.Values[off] = u + dt*(fh.duDt.Values[off]+fh.Eq.ReactionU(u, v, fh.Stim.Values[off]))
			fh.vNew.Values[off] = v + dt*(fh.dvDt.Values[off]+fh.Eq.ReactionV(u, v))
		}
	})
	fh.U, fh.uNew = fh.uNew, fh.U
	fh.V, fh.vNew = fh.vNew, fh.V
	fh.Time.StepInc()
}

// UValues copies the current fast (excitation) field into tsr.
func (fh *Model) UValues(tsr *etensor.Float64) {
	fh.CopyFieldValues(tsr, fh.U)
}

// VValues copies the current slow (recovery) field into tsr.
func (fh *Model) VValues(tsr *etensor.Float64) {
	fh.CopyFieldValues(tsr, fh.V)
}

// PotentialValues copies the membrane potential analog (the u field)
// into tsr.
func (fh *Model) PotentialValues(tsr *etensor.Float64) {
	fh.UValues(tsr)
}

// StateFields returns the persisted fields in serialization order: u, v.
// The stimulus field is transient driver input and is not persisted.
func (fh *Model) StateFields() []*etensor.Float64 {
	return []*etensor.Float64{fh.U, fh.V}
}
