// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tusscher

import (
	"io"
	"log"

	"github.com/emer/etable/etensor"
	"github.com/miomod/miomod/cardio"
)

// State file format (plain text, whitespace delimited):
//
//	width height time
//	conductivity GNa GCaL GKr GKs GK1 Gto GNaCa GNaK
//	fields, each as height rows of width values, in StateFields order:
//	V m h j oa oi d f fca u v w Cai CaSR CaSS Nai Ki

// WriteState writes the model state to w in the tusscher text format.
func (tt *Model) WriteState(w io.Writer) error {
	if err := cardio.WriteHeader(w, &tt.Shp, tt.Time.Time); err != nil {
		return err
	}
	cp := &tt.Chans
	if err := cardio.WriteFloats(w, tt.Cond, cp.GNa, cp.GCaL, cp.GKr, cp.GKs, cp.GK1, cp.Gto, cp.GNaCa, cp.GNaK); err != nil {
		return err
	}
	for _, fld := range tt.StateFields() {
		if err := cardio.WriteGrid(w, fld); err != nil {
			return err
		}
	}
	return nil
}

// ReadState restores state written by WriteState.  The whole stream is
// parsed into scratch storage and validated before the live fields,
// parameters, or clock are touched: on any error, including a
// *cardio.ShapeError for a mismatched header, the model is unchanged.
func (tt *Model) ReadState(r io.Reader) error {
	tm, err := cardio.ReadHeader(r, &tt.Shp)
	if err != nil {
		return err
	}
	var cond float64
	var cp ChanParams
	if err := cardio.ReadFloats(r, &cond, &cp.GNa, &cp.GCaL, &cp.GKr, &cp.GKs, &cp.GK1, &cp.Gto, &cp.GNaCa, &cp.GNaK); err != nil {
		log.Println(err)
		return err
	}
	flds := tt.StateFields()
	tmp := make([]*etensor.Float64, len(flds))
	for i := range tmp {
		tmp[i] = tt.NewField()
		if err := cardio.ReadGrid(r, tmp[i]); err != nil {
			log.Println(err)
			return err
		}
	}
	// all validated -- commit
	tt.Cond = cond
	tt.Chans = cp
	for i, fld := range flds {
		copy(fld.Values, tmp[i].Values)
	}
	tt.Time.Restore(tm)
	return nil
}
