// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luorudy

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

// Current is a fixed tag for each named transmembrane current in the
// Luo-Rudy model.  The current set is closed and known at compile time,
// so per-cell currents live in a fixed-size Currents array rather than a
// dynamic string-keyed map.
type Current int

//go:generate stringer -type=Current

var KiT_Current = kit.Enums.AddEnum(CurrentN, kit.NotBitFlag, nil)

func (ev Current) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Current) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The Luo-Rudy transmembrane currents
const (
	// INa is the fast sodium current
	INa Current = iota

	// ICaL is the L-type calcium current
	ICaL

	// IK is the delayed rectifier potassium current
	IK

	// IK1 is the inward rectifier potassium current
	IK1

	// Ib is the background current
	Ib

	// ICaT is the simplified T-type calcium current
	ICaT

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
// off, from the local membrane potential, gating variables and calcium
// concentration.  Uses the pre-step state only: no mutation.
func (lr *Model) cellCurrents(off int) Currents {
	var cur Currents
	v := lr.V.Values[off]
	m := lr.M.Values[off]
	h := lr.H.Values[off]
	j := lr.J.Values[off]
	xr := lr.Xr.Values[off]
	xs := lr.Xs.Values[off]
	d := lr.D.Values[off]
	f := lr.F.Values[off]
	fca := lr.FCa.Values[off]

	// fast sodium: INa = GNa * m^3 * h * j * (V - ENa)
	cur[INa] = lr.Chans.GNa * m * m * m * h * j * (v - ENa)

	// L-type calcium: ICaL = GCaL * d * f * fca * (V - ECa)
	cur[ICaL] = lr.Chans.GCaL * d * f * fca * (v - ECa)

	// delayed rectifier potassium: IK = GK * xr * xs * (V - EK)
	cur[IK] = lr.Chans.GK * xr * xs * (v - EK)

	// inward rectifier potassium with voltage-dependent rectification
	cur[IK1] = lr.Chans.GK1 * (v - EK) / (1 + math.Exp(0.07*(v+80)))

	// background current
	cur[Ib] = lr.Chans.Gb * (v + 59.87)

	// simplified T-type calcium current
	cur[ICaT] = 0.0005 * d * (v - ECa)

	return cur
}

// CellCurrents returns the named transmembrane currents for the cell at
// (x, y), computed on demand from the current state without stepping.
func (lr *Model) CellCurrents(x, y int) Currents {
	return lr.cellCurrents(lr.Offset(x, y))
}

// CurrentValues fills tsr with the diagnostic map of the given named
// current over the whole grid, setting its shape.  Computed on demand
// from the current state without stepping; masked cells are included
// (their reaction terms are computable even though propagation is
// blocked).
func (lr *Model) CurrentValues(tsr *etensor.Float64, cur Current) {
	tsr.SetShape([]int{lr.Height(), lr.Width()}, nil, cardio.GridDimNames)
	n := lr.Shp.Len()
	for off := 0; off < n; off++ {
		cs := lr.cellCurrents(off)
		tsr.Values[off] = cs[cur]
	}
}
