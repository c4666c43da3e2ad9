// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package luorudy implements the Luo-Rudy dynamic ventricular model over a
2D tissue grid: fast sodium, L-type and T-type calcium, delayed and
inward rectifier potassium, and background currents, driven by
voltage-dependent gating kinetics and simplified intracellular calcium
handling, coupled spatially by masked diffusion of the membrane
potential.

Named cell type presets (Normal, Ischemic, Infarcted) scale the channel
conductances to model tissue health states.  Per-current diagnostic maps
are retrievable on demand without stepping.
*/
package luorudy

import (
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/miomod/miomod/cardio"
	"github.com/miomod/miomod/gates"
)

// Field resting values at construction.
const (
	RestV    = -84.0  // resting membrane potential, mV
	RestCai  = 0.0002 // resting intracellular calcium, mM
	RestCaSR = 0.2    // resting sarcoplasmic reticulum calcium, mM
)

// luorudy.Model is the Luo-Rudy dynamic tissue model.
type Model struct {
	cardio.ModelBase

	Chans   ChanParams `view:"inline" desc:"maximal channel conductances, set wholesale by the cell type preset"`
	CellTyp CellType   `desc:"currently selected cell type preset"`

	CaiRange minmax.F64 `view:"inline" desc:"clamp range for intracellular calcium -- the sole explicitly bounded state variable"`

	V *etensor.Float64 `desc:"membrane potential, mV"`

	M  *etensor.Float64 `desc:"sodium activation gate"`
	H  *etensor.Float64 `desc:"sodium fast inactivation gate"`
	J  *etensor.Float64 `desc:"sodium slow inactivation gate -- held at its resting value in this formulation"`
	Xr *etensor.Float64 `desc:"rapid delayed rectifier potassium activation gate"`
	Xs *etensor.Float64 `desc:"slow delayed rectifier potassium activation gate -- held at its resting value in this formulation"`
	D  *etensor.Float64 `desc:"L-type calcium activation gate -- held at its resting value in this formulation"`
	F  *etensor.Float64 `desc:"L-type calcium voltage inactivation gate -- held at its resting value in this formulation"`
	FCa *etensor.Float64 `desc:"L-type calcium calcium-dependent inactivation gate -- held at its resting value in this formulation"`

	Cai  *etensor.Float64 `desc:"intracellular calcium concentration, mM, clamped to CaiRange"`
	CaSR *etensor.Float64 `desc:"sarcoplasmic reticulum calcium concentration, mM"`

	vNew *etensor.Float64 // write target for the potential field swap
	dVDt *etensor.Float64 // diffusion scratch
}

// New returns a new Luo-Rudy model with the given grid dimensions and
// time step, with fields at resting values and the Normal cell type.
func New(width, height int, dt float64) (*Model, error) {
	lr := &Model{}
	if err := lr.InitModel(lr, width, height, dt, "LuoRudy"); err != nil {
		return nil, err
	}
	lr.Defaults()
	lr.V = lr.newFieldAt(RestV)
	lr.M = lr.newFieldAt(0)
	lr.H = lr.newFieldAt(1)
	lr.J = lr.newFieldAt(1)
	lr.Xr = lr.newFieldAt(0)
	lr.Xs = lr.newFieldAt(0)
	lr.D = lr.newFieldAt(0)
	lr.F = lr.newFieldAt(1)
	lr.FCa = lr.newFieldAt(1)
	lr.Cai = lr.newFieldAt(RestCai)
	lr.CaSR = lr.newFieldAt(RestCaSR)
	lr.vNew = lr.NewField()
	lr.dVDt = lr.NewField()
	return lr, nil
}

func (lr *Model) Defaults() {
	lr.Chans.Defaults()
	lr.CellTyp = Normal
	lr.CaiRange.Min = 0.0001
	lr.CaiRange.Max = 0.01
}

func (lr *Model) UpdateParams() {
	lr.Chans.Update()
}

// newFieldAt allocates a field filled with the given resting value.
func (lr *Model) newFieldAt(val float64) *etensor.Float64 {
	fld := lr.NewField()
	if val != 0 {
		for i := range fld.Values {
			fld.Values[i] = val
		}
	}
	return fld
}

// SetCellType atomically replaces the whole conductance parameter set
// with the preset for the given cell type.  Field state is not reset.
func (lr *Model) SetCellType(ct CellType) {
	switch ct {
	case Normal:
		lr.Chans.Normal()
	case Ischemic:
		lr.Chans.Ischemic()
	case Infarcted:
		lr.Chans.Infarcted()
	default:
		return
	}
	lr.CellTyp = ct
}

// SetCellTypeName selects the cell type preset by name (case
// insensitive: "normal", "ischemic", "infarcted").  Returns a
// *cardio.UnknownNameError and leaves parameters unchanged if the name
// is not recognized.
func (lr *Model) SetCellTypeName(name string) error {
	ct, err := CellTypeByName(name)
	if err != nil {
		return err
	}
	lr.SetCellType(ct)
	return nil
}

// Step advances the model by one time step: diffusion of the membrane
// potential, ionic current assembly and explicit Euler potential update
// per non-masked cell, then gating and calcium updates from the
// pre-step potential (operator-split explicit scheme -- this exact
// ordering is required for reproducibility), field swap, clock advance.
func (lr *Model) Step() {
	dt := lr.Dt()
	w := lr.Width()
	lr.dVDt.SetZeros()
	lr.Diffuse(lr.dVDt, lr.V, lr.Cond)
	lr.RunOnRows(func(y int) {
		for x := 0; x < w; x++ {
			off := y*w + x
			if lr.Masked(off) {
				// scar tissue -- no electrical activity
				lr.vNew.Values[off] = lr.V.Values[off]
				continue
			}
			cur := lr.cellCurrents(off)

			// dV/dt = -(I_ion + I_diff)
			lr.vNew.Values[off] = lr.V.Values[off] - dt*(cur.Total()+lr.dVDt.Values[off])

			// gating updates use the pre-step potential
			v := lr.V.Values[off]

			am, bm := gates.SodiumActivation(v)
			lr.M.Values[off] = gates.Euler(lr.M.Values[off], am, bm, dt)

			ah, bh := gates.SodiumInactivation(v)
			lr.H.Values[off] = gates.Euler(lr.H.Values[off], ah, bh, dt)

			ax, bx := gates.RapidPotassium(v)
			lr.Xr.Values[off] = gates.Euler(lr.Xr.Values[off], ax, bx, dt)

			// simplified calcium handling, clamped
			cai := lr.Cai.Values[off]
			cai += dt * 0.001 * (-cur[ICaL] - 0.0001*cai)
			lr.Cai.Values[off] = lr.CaiRange.ClipVal(cai)
		}
	})
	lr.V, lr.vNew = lr.vNew, lr.V
	lr.Time.StepInc()
}

// PotentialValues copies the current membrane potential field into tsr.
func (lr *Model) PotentialValues(tsr *etensor.Float64) {
	lr.CopyFieldValues(tsr, lr.V)
}

// StateFields returns the persisted fields in serialization order.
func (lr *Model) StateFields() []*etensor.Float64 {
	return []*etensor.Float64{lr.V, lr.M, lr.H, lr.J, lr.Xr, lr.Xs, lr.D, lr.F, lr.FCa, lr.Cai, lr.CaSR}
}
