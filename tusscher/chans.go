// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tusscher

import (
	"log"
	"strings"

	"github.com/goki/ki/kit"
	"github.com/miomod/miomod/cardio"
)

// ChanParams are the maximal channel conductances for the Ten Tusscher
// model.  A variant preset overwrites the whole set atomically, without
// touching any field state.
type ChanParams struct {
	GNa   float64 `def:"75" desc:"fast sodium channel maximal conductance"`
	GCaL  float64 `def:"0.000175" desc:"L-type calcium channel maximal conductance"`
	GKr   float64 `def:"0.046" desc:"rapid delayed rectifier potassium maximal conductance"`
	GKs   float64 `def:"0.0034" desc:"slow delayed rectifier potassium maximal conductance"`
	GK1   float64 `def:"0.1908" desc:"inward rectifier potassium maximal conductance"`
	Gto   float64 `def:"0.294" desc:"transient outward potassium maximal conductance"`
	GNaCa float64 `def:"1000" desc:"sodium-calcium exchanger scaling factor"`
	GNaK  float64 `def:"1.362" desc:"sodium-potassium pump scaling factor"`
}

func (cp *ChanParams) Defaults() {
	cp.Epi()
}

func (cp *ChanParams) Update() {
}

// Epi sets the epicardial cell parameters.
func (cp *ChanParams) Epi() {
	cp.GNa = 75.0
	cp.GCaL = 0.000175
	cp.GKr = 0.046
	cp.GKs = 0.0034
	cp.GK1 = 0.1908
	cp.Gto = 0.294
	cp.GNaCa = 1000.0
	cp.GNaK = 1.362
}

// Endo sets the endocardial cell parameters.
func (cp *ChanParams) Endo() {
	cp.GNa = 75.0
	cp.GCaL = 0.000175
	cp.GKr = 0.023
	cp.GKs = 0.0034
	cp.GK1 = 0.1908
	cp.Gto = 0.073
	cp.GNaCa = 1000.0
	cp.GNaK = 1.362
}

// Mid sets the mid-myocardial cell parameters.
func (cp *ChanParams) Mid() {
	cp.GNa = 75.0
	cp.GCaL = 0.000175
	cp.GKr = 0.023
	cp.GKs = 0.0034
	cp.GK1 = 0.1908
	cp.Gto = 0.294
	cp.GNaCa = 1000.0
	cp.GNaK = 1.362
}

//////////////////////////////////////////////////////////////////////////////////////
//  Variant

// Variant are the named myocardial layer cell variants selecting a
// conductance parameter preset.
type Variant int

//go:generate stringer -type=Variant

var KiT_Variant = kit.Enums.AddEnum(VariantN, kit.NotBitFlag, nil)

func (ev Variant) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Variant) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The cell variants
const (
	// Epi is an epicardial (outer wall) cell
	Epi Variant = iota

	// Endo is an endocardial (inner wall) cell
	Endo

	// Mid is a mid-myocardial (M) cell
	Mid

	VariantN
)

// VariantByName returns the variant matching the given name (case
// insensitive), or a *cardio.UnknownNameError if the name is not
// recognized.
func VariantByName(name string) (Variant, error) {
	for vr := Epi; vr < VariantN; vr++ {
		if strings.EqualFold(name, vr.String()) {
			return vr, nil
		}
	}
	err := &cardio.UnknownNameError{Kind: "variant", Name: name}
	log.Println(err)
	return VariantN, err
}
