// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luorudy

import (
	"log"
	"strings"

	"github.com/goki/ki/kit"
	"github.com/miomod/miomod/cardio"
)

// ChanParams are the maximal channel conductances (mS/uF) for the
// Luo-Rudy model.  A cell type preset overwrites the whole set
// atomically, without touching any field state.
type ChanParams struct {
	GNa  float64 `def:"23" desc:"fast sodium channel maximal conductance"`
	Gsi  float64 `def:"0.09" desc:"slow inward channel maximal conductance"`
	GK   float64 `def:"0.282" desc:"delayed rectifier potassium maximal conductance"`
	GK1  float64 `def:"0.6047" desc:"inward rectifier potassium maximal conductance"`
	Gb   float64 `def:"0.03921" desc:"background channel conductance"`
	GCaL float64 `def:"0.000175" desc:"L-type calcium channel maximal conductance"`
}

func (cp *ChanParams) Defaults() {
	cp.Normal()
}

func (cp *ChanParams) Update() {
}

// Normal sets the conductances for healthy tissue.
func (cp *ChanParams) Normal() {
	cp.GNa = 23.0
	cp.Gsi = 0.09
	cp.GK = 0.282
	cp.GK1 = 0.6047
	cp.Gb = 0.03921
	cp.GCaL = 0.000175
}

// Ischemic sets the reduced conductances of ischemic tissue.
func (cp *ChanParams) Ischemic() {
	cp.GNa = 15.0
	cp.Gsi = 0.06
	cp.GK = 0.2
	cp.GK1 = 0.4
	cp.Gb = 0.03
	cp.GCaL = 0.00012
}

// Infarcted sets the severely reduced conductances of infarcted tissue.
func (cp *ChanParams) Infarcted() {
	cp.GNa = 2.0
	cp.Gsi = 0.01
	cp.GK = 0.05
	cp.GK1 = 0.1
	cp.Gb = 0.01
	cp.GCaL = 0.00002
}

//////////////////////////////////////////////////////////////////////////////////////
//  CellType

// CellType are the named cardiac cell health states selecting a
// conductance parameter preset.
type CellType int

//go:generate stringer -type=CellType

var KiT_CellType = kit.Enums.AddEnum(CellTypeN, kit.NotBitFlag, nil)

func (ev CellType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CellType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The cell types
const (
	// Normal is healthy, fully conducting tissue
	Normal CellType = iota

	// Ischemic is oxygen-starved tissue with reduced conductances
	Ischemic

	// Infarcted is scarred tissue with severely reduced conductances
	Infarcted

	CellTypeN
)

// CellTypeByName returns the cell type matching the given name
// (case insensitive), or a *cardio.UnknownNameError if the name is not
// recognized.
func CellTypeByName(name string) (CellType, error) {
	for ct := Normal; ct < CellTypeN; ct++ {
		if strings.EqualFold(name, ct.String()) {
			return ct, nil
		}
	}
	err := &cardio.UnknownNameError{Kind: "cell type", Name: name}
	log.Println(err)
	return CellTypeN, err
}
