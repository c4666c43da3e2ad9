// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cardio

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/params"
	"github.com/emer/etable/etensor"
)

// GridDimNames are the standard dimension names for 2D tissue grids,
// outer-to-inner (row major), so Y then X.
var GridDimNames = []string{"Y", "X"}

// cardio.ModelBase manages the structural elements common to all tissue
// model types: grid shape, simulation clock, conductivity, and the scar
// mask.  Concrete models embed it and plug in their own field state,
// reaction terms and persistence.
type ModelBase struct {
	CardModel Model `copy:"-" json:"-" xml:"-" view:"-" desc:"we need a pointer to ourselves as a Model, which can always be used to extract the true underlying type of object when the base is embedded in other structs -- function receivers do not have this ability so this is necessary."`

	Nm  string `desc:"name of the model instance -- defaults to the model type name"`
	Cls string `desc:"class is for applying parameter styles, can be space separated multiple tags"`

	Shp  etensor.Shape `desc:"shape of the tissue grid -- 2D row major, so Y then X -- fixed for the lifetime of the model"`
	Time Time          `desc:"simulation clock -- accumulated time and fixed time step"`

	Cond float64 `def:"1" desc:"tissue conductivity: diffusion coefficient for the membrane potential field"`

	Mask *etensor.Bits `desc:"tissue mask: true = non-conducting (scar / infarcted) cell -- masked cells receive no diffusion and are copied forward unchanged by Step"`

	Threads int `def:"1" desc:"number of goroutines to tile the per-row traversal across within one step -- 1 = run inline.  The model itself is still driven by a single caller."`
}

// InitModel initializes the base for a model with the given grid
// dimensions and time step.  MUST be called by every concrete model
// constructor to set the model's pointer to itself as a Model, which
// enables the proper interface methods to be called.
func (mb *ModelBase) InitModel(m Model, width, height int, dt float64, name string) error {
	if width <= 0 || height <= 0 {
		err := fmt.Errorf("cardio.InitModel: %s: grid dimensions must be positive, got %d x %d", name, width, height)
		log.Println(err)
		return err
	}
	if dt <= 0 {
		err := fmt.Errorf("cardio.InitModel: %s: time step must be positive, got %g", name, dt)
		log.Println(err)
		return err
	}
	mb.CardModel = m
	mb.Nm = name
	mb.Shp.SetShape([]int{height, width}, nil, GridDimNames)
	mb.Time.TimePerStep = dt
	mb.Time.Reset()
	mb.Cond = 1
	mb.Threads = 1
	mb.Mask = etensor.NewBits([]int{height, width}, nil, GridDimNames)
	return nil
}

// params.Styler interface, for parameter styling with emergent params sets.

func (mb *ModelBase) Name() string        { return mb.Nm }
func (mb *ModelBase) SetName(nm string)   { mb.Nm = nm }
func (mb *ModelBase) Label() string       { return mb.Nm }
func (mb *ModelBase) Class() string       { return mb.Cls }
func (mb *ModelBase) SetClass(cls string) { mb.Cls = cls }
func (mb *ModelBase) TypeName() string    { return "Model" }

// Shape returns the grid shape: 2D row major, Y then X.
func (mb *ModelBase) Shape() *etensor.Shape { return &mb.Shp }

// Width returns the number of cells along X.
func (mb *ModelBase) Width() int { return mb.Shp.Dim(1) }

// Height returns the number of cells along Y.
func (mb *ModelBase) Height() int { return mb.Shp.Dim(0) }

// Dt returns the fixed integration time step.
func (mb *ModelBase) Dt() float64 { return mb.Time.TimePerStep }

// CurTime returns the current simulation time.
func (mb *ModelBase) CurTime() float64 { return mb.Time.Time }

// SetConductivity sets the tissue conductivity (diffusion coefficient
// for the membrane potential field).
func (mb *ModelBase) SetConductivity(cond float64) { mb.Cond = cond }

// Offset returns the flat index of cell (x, y) in a field's Values.
func (mb *ModelBase) Offset(x, y int) int { return y*mb.Shp.Dim(1) + x }

// SetMask sets the tissue (scar) mask wholesale, copying values from the
// given bool grid.  Returns a *ShapeError and leaves the mask unchanged
// if the grid shape does not match the model's grid.
func (mb *ModelBase) SetMask(mask *etensor.Bits) error {
	if mask.NumDims() != 2 || mask.Dim(0) != mb.Shp.Dim(0) || mask.Dim(1) != mb.Shp.Dim(1) {
		got := make([]int, mask.NumDims())
		for i := range got {
			got[i] = mask.Dim(i)
		}
		err := &ShapeError{Op: "SetMask", Want: []int{mb.Shp.Dim(0), mb.Shp.Dim(1)}, Got: got}
		log.Println(err)
		return err
	}
	n := mb.Shp.Len()
	for i := 0; i < n; i++ {
		mb.Mask.Set1D(i, mask.Value1D(i))
	}
	return nil
}

// ClearMask resets the tissue mask to all-conducting (no scar).
func (mb *ModelBase) ClearMask() {
	n := mb.Shp.Len()
	for i := 0; i < n; i++ {
		mb.Mask.Set1D(i, false)
	}
}

// Masked returns whether the cell at the given flat offset is scar tissue.
func (mb *ModelBase) Masked(off int) bool { return mb.Mask.Value1D(off) }

// MaskValues copies the current tissue mask into the given bool grid,
// setting its shape.
func (mb *ModelBase) MaskValues(tsr *etensor.Bits) {
	tsr.SetShape([]int{mb.Shp.Dim(0), mb.Shp.Dim(1)}, nil, GridDimNames)
	n := mb.Shp.Len()
	for i := 0; i < n; i++ {
		tsr.Set1D(i, mb.Mask.Value1D(i))
	}
}

// NewField allocates a new scalar field tensor with the model's grid shape.
func (mb *ModelBase) NewField() *etensor.Float64 {
	return etensor.NewFloat64([]int{mb.Shp.Dim(0), mb.Shp.Dim(1)}, nil, GridDimNames)
}

// CopyFieldValues copies field fld into tsr, setting its shape, so that
// callers never alias the model's own field storage.
func (mb *ModelBase) CopyFieldValues(tsr, fld *etensor.Float64) {
	tsr.SetShape([]int{mb.Shp.Dim(0), mb.Shp.Dim(1)}, nil, GridDimNames)
	copy(tsr.Values, fld.Values)
}

// Run calls the model's Step exactly steps times, sequentially.  There is
// no early exit and no per-step error recovery: callers are expected to
// inspect output ranges afterward (e.g. for numeric blowup at unstable
// time steps).
func (mb *ModelBase) Run(steps int) {
	for i := 0; i < steps; i++ {
		mb.CardModel.Step()
	}
}

// RunOnRows runs fun for every row y in 0..height-1, tiling the rows
// across Threads goroutines.  fun must only write cells within its own
// row of the new-state fields, reading only old-state fields, so tiles
// never observe already-updated neighbors.  With Threads <= 1 the rows
// run inline on the calling goroutine.
func (mb *ModelBase) RunOnRows(fun func(y int)) {
	h := mb.Shp.Dim(0)
	nt := mb.Threads
	if nt > h {
		nt = h
	}
	if nt <= 1 {
		for y := 0; y < h; y++ {
			fun(y)
		}
		return
	}
	var wg sync.WaitGroup
	per := (h + nt - 1) / nt
	for st := 0; st < h; st += per {
		ed := st + per
		if ed > h {
			ed = h
		}
		wg.Add(1)
		go func(st, ed int) {
			defer wg.Done()
			for y := st; y < ed; y++ {
				fun(y)
			}
		}(st, ed)
	}
	wg.Wait()
}

// ApplyParams applies the given parameter style Sheet to this model.
// Calls UpdateParams if anything was set to ensure derived parameters are
// all updated.  If setMsg is true, a message is printed to confirm each
// parameter that is set.  Returns true if any params were set, and error
// if there were any errors.
func (mb *ModelBase) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(mb.CardModel, setMsg) // essential to go through CardModel
	if app {
		mb.CardModel.UpdateParams()
	}
	return app, err
}

// SizeReport returns a string report of the memory used by the model's
// persisted field arrays.
func (mb *ModelBase) SizeReport() string {
	var b strings.Builder
	flds := mb.CardModel.StateFields()
	var mem int
	for _, fld := range flds {
		mem += 8 * fld.Len()
	}
	fmt.Fprintf(&b, "%14s:\t Grid: %d x %d\t Fields: %d\t FieldMem: %v\n",
		mb.Nm, mb.Shp.Dim(1), mb.Shp.Dim(0), len(flds), (datasize.ByteSize)(mem).HumanReadable())
	return b.String()
}
