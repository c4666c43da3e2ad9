// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cardio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/emer/etable/etensor"
)

// State persistence uses a plain-text, whitespace-delimited format:
// a header line "width height time", model-specific parameter lines,
// then each field as height rows of width space-separated values, in a
// fixed per-model order.  Values are written with %g, which for float64
// round-trips exactly.

// WriteHeader writes the "width height time" header line for a grid of
// the given shape.
func WriteHeader(w io.Writer, shp *etensor.Shape, time float64) error {
	_, err := fmt.Fprintf(w, "%d %d %g\n", shp.Dim(1), shp.Dim(0), time)
	return err
}

// ReadHeader reads a "width height time" header line and validates the
// dimensions against the given live grid shape, returning a *ShapeError
// on mismatch.
func ReadHeader(r io.Reader, shp *etensor.Shape) (time float64, err error) {
	var w, h int
	if _, err = fmt.Fscan(r, &w, &h, &time); err != nil {
		err = fmt.Errorf("cardio.ReadHeader: %w", err)
		log.Println(err)
		return
	}
	if w != shp.Dim(1) || h != shp.Dim(0) {
		serr := &ShapeError{Op: "ReadHeader", Want: []int{shp.Dim(0), shp.Dim(1)}, Got: []int{h, w}}
		log.Println(serr)
		return 0, serr
	}
	return time, nil
}

// WriteFloats writes the given values as one space-separated line.
func WriteFloats(w io.Writer, vals ...float64) error {
	for i, v := range vals {
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%g", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// ReadFloats reads one whitespace-delimited value per given pointer.
func ReadFloats(r io.Reader, vals ...*float64) error {
	for _, v := range vals {
		if _, err := fmt.Fscan(r, v); err != nil {
			return fmt.Errorf("cardio.ReadFloats: %w", err)
		}
	}
	return nil
}

// WriteGrid writes one scalar field as height rows of width
// space-separated values.
func WriteGrid(w io.Writer, tsr *etensor.Float64) error {
	h := tsr.Dim(0)
	wd := tsr.Dim(1)
	for y := 0; y < h; y++ {
		for x := 0; x < wd; x++ {
			if x > 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%g", tsr.Values[y*wd+x]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadGrid reads one scalar field's worth of whitespace-delimited values
// into the given tensor, which must already have its final shape.
func ReadGrid(r io.Reader, tsr *etensor.Float64) error {
	n := tsr.Len()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fscan(r, &tsr.Values[i]); err != nil {
			return fmt.Errorf("cardio.ReadGrid: value %d of %d: %w", i, n, err)
		}
	}
	return nil
}

// SaveState saves the model state to a text-format file.  If the
// filename has a .gz extension, the file is gzip compressed.
func (mb *ModelBase) SaveState(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	ext := filepath.Ext(filename)
	if ext == ".gz" {
		gzr := gzip.NewWriter(fp)
		err = mb.CardModel.WriteState(gzr)
		// a failed Close truncates the stream even if the writes went through
		if cerr := gzr.Close(); err == nil {
			err = cerr
		}
	} else {
		bw := bufio.NewWriter(fp)
		err = mb.CardModel.WriteState(bw)
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

// OpenState restores model state from a file saved by SaveState.  If the
// filename has a .gz extension, the file is gzip uncompressed.  On any
// error, including mismatched grid dimensions, the live model state is
// left unchanged.
func (mb *ModelBase) OpenState(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	ext := filepath.Ext(filename)
	if ext == ".gz" {
		gzr, err := gzip.NewReader(fp)
		if err != nil {
			log.Println(err)
			return err
		}
		defer gzr.Close()
		return mb.CardModel.ReadState(gzr)
	}
	return mb.CardModel.ReadState(bufio.NewReader(fp))
}
