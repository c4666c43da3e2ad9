// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cardio

import "github.com/emer/etable/etensor"

// Diffuse computes the discrete diffusion term of src into dst:
// for each interior cell, coeff times the 5-point Laplacian
// (N + S + E + W - 4 * center).  Boundary cells (x or y at the grid edge)
// are never written: callers must not rely on boundary diffusion values
// being meaningful.  Cells marked in the tissue mask get a dst value of
// exactly zero regardless of their neighbors, blocking propagation into
// scar tissue.  src is never mutated.
func (mb *ModelBase) Diffuse(dst, src *etensor.Float64, coeff float64) {
	w := mb.Shp.Dim(1)
	h := mb.Shp.Dim(0)
	mb.RunOnRows(func(y int) {
		if y == 0 || y == h-1 {
			return
		}
		for x := 1; x < w-1; x++ {
			off := y*w + x
			if mb.Mask.Value1D(off) {
				dst.Values[off] = 0
				continue
			}
			lap := src.Values[off-w] + src.Values[off+w] + src.Values[off-1] + src.Values[off+1] - 4*src.Values[off]
			dst.Values[off] = coeff * lap
		}
	})
}
