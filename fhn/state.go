// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fhn

import (
	"io"
	"log"

	"github.com/emer/etable/etensor"
	"github.com/miomod/miomod/cardio"
)

// State file format (plain text, whitespace delimited):
//
//	width height time
//	a b c d
//	du dv
//	u field: height rows of width values
//	v field: height rows of width values

// WriteState writes the model state to w in the fhn text format.
func (fh *Model) WriteState(w io.Writer) error {
	if err := cardio.WriteHeader(w, &fh.Shp, fh.Time.Time); err != nil {
		return err
	}
	if err := cardio.WriteFloats(w, fh.Eq.A, fh.Eq.B, fh.Eq.C, fh.Eq.D); err != nil {
		return err
	}
	if err := cardio.WriteFloats(w, fh.Eq.Du, fh.Eq.Dv); err != nil {
		return err
	}
	for _, fld := range fh.StateFields() {
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
func (fh *Model) ReadState(r io.Reader) error {
	tm, err := cardio.ReadHeader(r, &fh.Shp)
	if err != nil {
		return err
	}
	var eq EqParams
	if err := cardio.ReadFloats(r, &eq.A, &eq.B, &eq.C, &eq.D); err != nil {
		log.Println(err)
		return err
	}
	if err := cardio.ReadFloats(r, &eq.Du, &eq.Dv); err != nil {
		log.Println(err)
		return err
	}
	ut := fh.NewField()
	vt := fh.NewField()
	for _, fld := range []*etensor.Float64{ut, vt} {
		if err := cardio.ReadGrid(r, fld); err != nil {
			log.Println(err)
			return err
		}
	}
	// all validated -- commit
	fh.Eq = eq
	copy(fh.U.Values, ut.Values)
	copy(fh.V.Values, vt.Values)
	fh.Time.Restore(tm)
	return nil
}
