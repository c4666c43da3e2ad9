// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tusscher

import (
	"math"

	"github.com/emer/etable/etensor"
	"github.com/goki/ki/kit"
	"github.com/miomod/miomod/cardio"
)

// Equilibrium (reversal) potentials, mV.
const (
	ENa = 54.4  // sodium
	ECa = 130.0 // calcium
	EK  = -77.0 // potassium
)

// KExt is the extracellular potassium concentration (mM) entering the
// square-root dependence of the IKr and IK1 currents.
const KExt = 5.4

// Current is a fixed tag for each named transmembrane current in the
// Ten Tusscher model.  The current set is closed and known at compile
// time, so per-cell currents live in a fixed-size Currents array rather
// than a dynamic string-keyed map.
type Current int

//go:generate stringer -type=Current

var KiT_Current = kit.Enums.AddEnum(CurrentN, kit.NotBitFlag, nil)

func (ev Current) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Current) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The Ten Tusscher transmembrane currents
const (
	// INa is the fast sodium current
	INa Current = iota

	// ICaL is the L-type calcium current
	ICaL

	// IKr is the rapid delayed rectifier potassium current
	IKr

	// IKs is the slow delayed rectifier potassium current
	IKs

	// IK1 is the inward rectifier potassium current
	IK1

	// Ito is the transient outward potassium current
	Ito

	// INaCa is the sodium-calcium exchanger current
	INaCa

	// INaK is the sodium-potassium pump current
	INaK

	CurrentN
)

// Currents holds one value per named current for a single cell.
type Currents [CurrentN]float64

// Total returns the total ionic current: the sum over all named currents.
func (cs *Currents) Total() float64 {
	var tot float64
	for _, c := range cs {
		tot += c
	}
	return tot
}

// cellCurrents assembles the named currents for the cell at flat offset
// off, from the local membrane potential, gating variables and ion
// concentrations.  Uses the pre-step state only: no mutation.
func (tt *Model) cellCurrents(off int) Currents {
	var cur Currents
	v := tt.V.Values[off]
	m := tt.M.Values[off]
	h := tt.H.Values[off]
	j := tt.J.Values[off]
	oa := tt.Oa.Values[off]
	oi := tt.Oi.Values[off]
	d := tt.D.Values[off]
	f := tt.F.Values[off]
	fca := tt.FCa.Values[off]
	u := tt.U.Values[off]
	vg := tt.Vg.Values[off]
	cai := tt.Cai.Values[off]
	nai := tt.Nai.Values[off]
	ki := tt.Ki.Values[off]

	// fast sodium: INa = GNa * m^3 * h * j * (V - ENa)
	cur[INa] = tt.Chans.GNa * m * m * m * h * j * (v - ENa)

	// L-type calcium: ICaL = GCaL * d * f * fca * (V - ECa)
	cur[ICaL] = tt.Chans.GCaL * d * f * fca * (v - ECa)

	// both rectifier currents scale with sqrt of internal/external K ratio
	sqk := math.Sqrt(ki / KExt)

	// rapid delayed rectifier potassium
	cur[IKr] = tt.Chans.GKr * sqk * u * (v - EK)

	// slow delayed rectifier potassium
	cur[IKs] = tt.Chans.GKs * vg * (v - EK)

	// inward rectifier potassium with voltage-dependent rectification
	cur[IK1] = tt.Chans.GK1 * sqk * (v - EK) / (1 + math.Exp(0.07*(v+80)))

	// transient outward potassium
	cur[Ito] = tt.Chans.Gto * oa * oi * (v - EK)

	// sodium-calcium exchanger: forward minus reverse mode, with
	// voltage-dependent saturation (external Na = 1, Ca = 1.4 normalized)
	ev := math.Exp(0.03743 * v)
	evr := math.Exp(-0.03743 * v)
	cur[INaCa] = tt.Chans.GNaCa * (ev*nai*nai*nai*cai - evr*1.0*1.0*1.0*1.4) / (1 + 0.1*evr)

	// sodium-potassium pump, saturating in both Ki and Nai
	cur[INaK] = tt.Chans.GNaK * ki / (ki + 1.0) * nai / (nai + 40.0)

	return cur
}

// CellCurrents returns the named transmembrane currents for the cell at
// (x, y), computed on demand from the current state without stepping.
func (tt *Model) CellCurrents(x, y int) Currents {
	return tt.cellCurrents(tt.Offset(x, y))
}

// CurrentValues fills tsr with the diagnostic map of the given named
// current over the whole grid, setting its shape.  Computed on demand
// from the current state without stepping; masked cells are included
// (their reaction terms are computable even though propagation is
// blocked).
func (tt *Model) CurrentValues(tsr *etensor.Float64, cur Current) {
	tsr.SetShape([]int{tt.Height(), tt.Width()}, nil, cardio.GridDimNames)
	n := tt.Shp.Len()
	for off := 0; off < n; off++ {
		cs := tt.cellCurrents(off)
		tsr.Values[off] = cs[cur]
	}
}
