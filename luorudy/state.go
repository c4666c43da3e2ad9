// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luorudy

import (
	"io"
	"log"

	"github.com/emer/etable/etensor"
	"github.com/miomod/miomod/cardio"
)

// State file format (plain text, whitespace delimited):
//
//	width height time
//	conductivity GNa Gsi GK GK1 Gb GCaL
//	fields, each as height rows of width values, in StateFields order:
//	V m h j xr xs d f fca Cai CaSR

// WriteState writes the model state to w in the luorudy text format.
func (lr *Model) WriteState(w io.Writer) error {
	if err := cardio.WriteHeader(w, &lr.Shp, lr.Time.Time); err != nil {
		return err
	}
	cp := &lr.Chans
	if err := cardio.WriteFloats(w, lr.Cond, cp.GNa, cp.Gsi, cp.GK, cp.GK1, cp.Gb, cp.GCaL); err != nil {
		return err
	}
	for _, fld := range lr.StateFields() {
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
func (lr *Model) ReadState(r io.Reader) error {
	tm, err := cardio.ReadHeader(r, &lr.Shp)
	if err != nil {
		return err
	}
	var cond float64
	var cp ChanParams
	if err := cardio.ReadFloats(r, &cond, &cp.GNa, &cp.Gsi, &cp.GK, &cp.GK1, &cp.Gb, &cp.GCaL); err != nil {
		log.Println(err)
		return err
	}
	flds := lr.StateFields()
	tmp := make([]*etensor.Float64, len(flds))
	for i := range tmp {
		tmp[i] = lr.NewField()
		if err := cardio.ReadGrid(r, tmp[i]); err != nil {
			log.Println(err)
			return err
		}
	}
	// all validated -- commit
	lr.Cond = cond
	lr.Chans = cp
	for i, fld := range flds {
		copy(fld.Values, tmp[i].Values)
	}
	lr.Time.Restore(tm)
	return nil
}
