// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cardio

import "fmt"

// ShapeError is returned when a grid passed to a model (tissue mask,
// initial conditions, persisted state header) does not match the model's
// own grid shape.  The model state is always left unchanged.
type ShapeError struct {
	Op   string // operation that rejected the grid, e.g. "SetMask"
	Want []int  // model grid shape, [height, width]
	Got  []int  // offered grid shape, [height, width]
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cardio.%s: grid shape %v does not match model shape %v", e.Op, e.Got, e.Want)
}

// UnknownNameError is returned when a named parameter preset (cell type,
// variant) is not recognized.  The model parameters are left unchanged.
type UnknownNameError struct {
	Kind string // what was being looked up, e.g. "cell type"
	Name string // the unrecognized name
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("cardio: unknown %s: %q", e.Kind, e.Name)
}
