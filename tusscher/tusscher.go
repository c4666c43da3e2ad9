// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tusscher implements the Ten Tusscher human ventricular model
over a 2D tissue grid.  Beyond the Luo-Rudy current set it tracks
intracellular sodium and potassium concentrations and adds the
sodium-calcium exchanger and sodium-potassium pump currents, with a
square-root internal-potassium dependence on the rapid and inward
rectifier currents.

Named variant presets (Epi, Endo, Mid) select the conductance
parameterizations of the three myocardial layers.
*/
package tusscher

import (
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/miomod/miomod/cardio"
	"github.com/miomod/miomod/gates"
)

// Field resting values at construction.
const (
	RestV    = -86.2  // resting membrane potential, mV
	RestCai  = 0.0002 // resting intracellular calcium, mM
	RestCaSR = 0.2    // resting sarcoplasmic reticulum calcium, mM
	RestCaSS = 0.0002 // resting subspace calcium, mM
	RestNai  = 11.6   // resting intracellular sodium, mM
	RestKi   = 138.3  // resting intracellular potassium, mM
)

// tusscher.Model is the Ten Tusscher human ventricular tissue model.
type Model struct {
	cardio.ModelBase

	Chans ChanParams `view:"inline" desc:"maximal channel conductances, set wholesale by the variant preset"`
	Var   Variant    `desc:"currently selected cell variant preset"`

	CaiRange minmax.F64 `view:"inline" desc:"clamp range for intracellular calcium -- the sole explicitly bounded state variable"`

	V *etensor.Float64 `desc:"membrane potential, mV"`

	M  *etensor.Float64 `desc:"sodium activation gate"`
	H  *etensor.Float64 `desc:"sodium fast inactivation gate -- held at its resting value in this formulation"`
	J  *etensor.Float64 `desc:"sodium slow inactivation gate -- held at its resting value in this formulation"`
	Oa *etensor.Float64 `desc:"transient outward activation gate -- held at its resting value in this formulation"`
	Oi *etensor.Float64 `desc:"transient outward inactivation gate -- held at its resting value in this formulation"`
	D  *etensor.Float64 `desc:"L-type calcium activation gate -- held at its resting value in this formulation"`
	F  *etensor.Float64 `desc:"L-type calcium voltage inactivation gate -- held at its resting value in this formulation"`
	FCa *etensor.Float64 `desc:"L-type calcium calcium-dependent inactivation gate -- held at its resting value in this formulation"`
	U  *etensor.Float64 `desc:"rapid delayed rectifier activation gate"`
	Vg *etensor.Float64 `desc:"slow delayed rectifier gate -- held at its resting value in this formulation"`
	W  *etensor.Float64 `desc:"sarcoplasmic release gate -- held at its resting value in this formulation"`

	Cai  *etensor.Float64 `desc:"intracellular calcium concentration, mM, clamped to CaiRange"`
	CaSR *etensor.Float64 `desc:"sarcoplasmic reticulum calcium concentration, mM"`
	CaSS *etensor.Float64 `desc:"dyadic subspace calcium concentration, mM"`
	Nai  *etensor.Float64 `desc:"intracellular sodium concentration, mM"`
	Ki   *etensor.Float64 `desc:"intracellular potassium concentration, mM"`

	vNew *etensor.Float64 // write target for the potential field swap
	dVDt *etensor.Float64 // diffusion scratch
}

// New returns a new Ten Tusscher model with the given grid dimensions
// and time step, with fields at resting values and the Epi variant.
func New(width, height int, dt float64) (*Model, error) {
	tt := &Model{}
	if err := tt.InitModel(tt, width, height, dt, "TenTusscher"); err != nil {
		return nil, err
	}
	tt.Defaults()
	tt.V = tt.newFieldAt(RestV)
	tt.M = tt.newFieldAt(0)
	tt.H = tt.newFieldAt(0.75)
	tt.J = tt.newFieldAt(0.75)
	tt.Oa = tt.newFieldAt(0)
	tt.Oi = tt.newFieldAt(1)
	tt.D = tt.newFieldAt(0)
	tt.F = tt.newFieldAt(1)
	tt.FCa = tt.newFieldAt(1)
	tt.U = tt.newFieldAt(0)
	tt.Vg = tt.newFieldAt(1)
	tt.W = tt.newFieldAt(1)
	tt.Cai = tt.newFieldAt(RestCai)
	tt.CaSR = tt.newFieldAt(RestCaSR)
	tt.CaSS = tt.newFieldAt(RestCaSS)
	tt.Nai = tt.newFieldAt(RestNai)
	tt.Ki = tt.newFieldAt(RestKi)
	tt.vNew = tt.NewField()
	tt.dVDt = tt.NewField()
	return tt, nil
}

func (tt *Model) Defaults() {
	tt.Chans.Defaults()
	tt.Var = Epi
	tt.CaiRange.Min = 0.0001
	tt.CaiRange.Max = 0.01
}

func (tt *Model) UpdateParams() {
	tt.Chans.Update()
}

// newFieldAt allocates a field filled with the given resting value.
func (tt *Model) newFieldAt(val float64) *etensor.Float64 {
	fld := tt.NewField()
	if val != 0 {
		for i := range fld.Values {
			fld.Values[i] = val
		}
	}
	return fld
}

// SetVariant atomically replaces the whole conductance parameter set
// with the preset for the given cell variant.  Field state is not reset.
func (tt *Model) SetVariant(vr Variant) {
	switch vr {
	case Epi:
		tt.Chans.Epi()
	case Endo:
		tt.Chans.Endo()
	case Mid:
		tt.Chans.Mid()
	default:
		return
	}
	tt.Var = vr
}

// SetVariantName selects the variant preset by name (case insensitive:
// "epi", "endo", "mid").  Returns a *cardio.UnknownNameError and leaves
// parameters unchanged if the name is not recognized.
func (tt *Model) SetVariantName(name string) error {
	vr, err := VariantByName(name)
	if err != nil {
		return err
	}
	tt.SetVariant(vr)
	return nil
}

// Step advances the model by one time step: diffusion of the membrane
// potential, ionic current assembly and explicit Euler potential update
// per non-masked cell, then gating and calcium updates from the
// pre-step potential (operator-split explicit scheme -- this exact
// ordering is required for reproducibility), field swap, clock advance.
func (tt *Model) Step() {
	dt := tt.Dt()
	w := tt.Width()
	tt.dVDt.SetZeros()
	tt.Diffuse(tt.dVDt, tt.V, tt.Cond)
	tt.RunOnRows(func(y int) {
		for x := 0; x < w; x++ {
			off := y*w + x
			if tt.Masked(off) {
				// scar tissue -- no electrical activity
				tt.vNew.Values[off] = tt.V.Values[off]
				continue
			}
			cur := tt.cellCurrents(off)

			// dV/dt = -(I_ion + I_diff)
			tt.vNew.Values[off] = tt.V.Values[off] - dt*(cur.Total()+tt.dVDt.Values[off])

			// gating updates use the pre-step potential
			v := tt.V.Values[off]

			am, bm := gates.SodiumActivation(v)
			tt.M.Values[off] = gates.Euler(tt.M.Values[off], am, bm, dt)

			ax, bx := gates.RapidPotassium(v)
			tt.U.Values[off] = gates.Euler(tt.U.Values[off], ax, bx, dt)

			// simplified calcium handling, clamped
			cai := tt.Cai.Values[off]
			cai += dt * 0.001 * (-cur[ICaL] - 0.0001*cai)
			tt.Cai.Values[off] = tt.CaiRange.ClipVal(cai)
		}
	})
	tt.V, tt.vNew = tt.vNew, tt.V
	tt.Time.StepInc()
}

// PotentialValues copies the current membrane potential field into tsr.
func (tt *Model) PotentialValues(tsr *etensor.Float64) {
	tt.CopyFieldValues(tsr, tt.V)
}

// StateFields returns the persisted fields in serialization order.
func (tt *Model) StateFields() []*etensor.Float64 {
	return []*etensor.Float64{tt.V, tt.M, tt.H, tt.J, tt.Oa, tt.Oi, tt.D, tt.F, tt.FCa,
		tt.U, tt.Vg, tt.W, tt.Cai, tt.CaSR, tt.CaSS, tt.Nai, tt.Ki}
}
