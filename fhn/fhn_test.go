// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fhn

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/emer/etable/etensor"
	"github.com/miomod/miomod/cardio"
	"gonum.org/v1/gonum/floats"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float64(1.0e-12)

func TestPointStimulus(t *testing.T) {
	fh, err := New(10, 10, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	fh.SetParameters(0.1, 0.5, 1.0, 0.0)
	fh.SetDiffusionCoefficients(0.1, 0.0)
	if err := fh.AddStimulus(5, 5, 1.0, 1.0); err != nil {
		t.Fatal(err)
	}
	fh.Step()

	// from the all-zero resting state, after one step only the stimulated
	// cell has moved in u, and all of v gets the constant a/c kick
	uCor := 0.01 * 1.0
	vCor := 0.01 * 0.1
	u := fh.NewField()
	v := fh.NewField()
	fh.UValues(u)
	fh.VValues(v)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			off := fh.Offset(x, y)
			cor := 0.0
			if x == 5 && y == 5 {
				cor = uCor
			}
			if math.Abs(u.Values[off]-cor) > difTol {
				t.Errorf("u(%d,%d) after step: got %v, want %v", x, y, u.Values[off], cor)
			}
			if math.Abs(v.Values[off]-vCor) > difTol {
				t.Errorf("v(%d,%d) after step: got %v, want %v", x, y, v.Values[off], vCor)
			}
		}
	}
	if math.Abs(fh.CurTime()-0.01) > difTol {
		t.Errorf("time after one step: got %v, want 0.01", fh.CurTime())
	}

	// a few more steps: diffusion spreads the bump to the stencil neighbors
	fh.Run(2)
	fh.UValues(u)
	nb := u.Values[fh.Offset(4, 5)]
	dg := u.Values[fh.Offset(4, 4)]
	if nb <= 0 {
		t.Errorf("u neighbor did not receive diffusion: %v", nb)
	}
	if dg >= nb {
		t.Errorf("diagonal neighbor ahead of stencil neighbor: %v vs %v", dg, nb)
	}
}

func TestStimulusBounds(t *testing.T) {
	fh, _ := New(8, 8, 0.01)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if err := fh.AddStimulus(xy[0], xy[1], 1.0, 1.0); err == nil {
			t.Errorf("AddStimulus(%d,%d) did not fail", xy[0], xy[1])
		}
	}
	for _, v := range fh.Stim.Values {
		if v != 0 {
			t.Fatal("failed AddStimulus modified the stimulus field")
		}
	}
}

func TestClearStimuli(t *testing.T) {
	fh, _ := New(8, 8, 0.01)
	fh.AddStimulus(3, 3, 2.0, 1.0)
	fh.ClearStimuli()
	for _, v := range fh.Stim.Values {
		if v != 0 {
			t.Fatal("ClearStimuli left a nonzero stimulus")
		}
	}
}

func TestInitReproducible(t *testing.T) {
	fa, _ := New(12, 9, 0.01)
	fb, _ := New(12, 9, 0.01)
	fa.Init(rand.New(rand.NewSource(7)))
	fb.Init(rand.New(rand.NewSource(7)))
	for i := range fa.U.Values {
		if fa.U.Values[i] != fb.U.Values[i] || fa.V.Values[i] != fb.V.Values[i] {
			t.Fatalf("same-seed Init differs at %d", i)
		}
	}
	if mx := math.Max(math.Abs(floats.Max(fa.U.Values)), math.Abs(floats.Min(fa.U.Values))); mx > InitPerturb {
		t.Errorf("Init perturbation out of range: %v", mx)
	}
}

func TestMaskInert(t *testing.T) {
	fh, _ := New(10, 10, 0.01)
	fh.Init(rand.New(rand.NewSource(3)))
	msk := etensor.NewBits([]int{10, 10}, nil, cardio.GridDimNames)
	for i := 0; i < 100; i++ {
		msk.Set1D(i, true)
	}
	if err := fh.SetMask(msk); err != nil {
		t.Fatal(err)
	}
	u0 := append([]float64(nil), fh.U.Values...)
	v0 := append([]float64(nil), fh.V.Values...)
	fh.AddStimulus(5, 5, 1.0, 1.0)
	fh.Run(10)
	for i := range u0 {
		if fh.U.Values[i] != u0[i] || fh.V.Values[i] != v0[i] {
			t.Fatalf("fully masked tissue changed at %d", i)
		}
	}
	// but the clock still advances
	if math.Abs(fh.CurTime()-0.1) > difTol {
		t.Errorf("time after 10 steps: got %v, want 0.1", fh.CurTime())
	}
}

func TestScarBlocksCell(t *testing.T) {
	fh, _ := New(10, 10, 0.01)
	msk := etensor.NewBits([]int{10, 10}, nil, cardio.GridDimNames)
	msk.Set1D(fh.Offset(4, 5), true)
	if err := fh.SetMask(msk); err != nil {
		t.Fatal(err)
	}
	fh.AddStimulus(5, 5, 1.0, 1.0)
	fh.Run(5)
	u := fh.NewField()
	fh.UValues(u)
	if u.Values[fh.Offset(4, 5)] != 0 {
		t.Errorf("scar cell next to stimulus changed: %v", u.Values[fh.Offset(4, 5)])
	}
	if u.Values[fh.Offset(6, 5)] == 0 {
		t.Errorf("conducting neighbor did not activate")
	}
}

func TestBounded(t *testing.T) {
	fh, _ := New(20, 20, 0.01)
	fh.Init(rand.New(rand.NewSource(11)))
	fh.AddStimulus(10, 10, 1.0, 1.0)
	fh.Run(500)
	mx := math.Max(math.Abs(floats.Max(fh.U.Values)), math.Abs(floats.Min(fh.U.Values)))
	if math.IsNaN(mx) || mx > 10 {
		t.Errorf("u field blew up at stable time step: max |u| = %v", mx)
	}
}

func TestSetInitialConditions(t *testing.T) {
	fh, _ := New(6, 6, 0.01)
	uIn := fh.NewField()
	vIn := fh.NewField()
	for i := range uIn.Values {
		uIn.Values[i] = float64(i) / 100
		vIn.Values[i] = -float64(i) / 200
	}
	if err := fh.SetInitialConditions(uIn, vIn); err != nil {
		t.Fatal(err)
	}
	if fh.U.Values[10] != 0.1 || fh.V.Values[10] != -0.05 {
		t.Errorf("initial conditions not applied: u=%v v=%v", fh.U.Values[10], fh.V.Values[10])
	}
	bad := etensor.NewFloat64([]int{3, 3}, nil, cardio.GridDimNames)
	err := fh.SetInitialConditions(bad, vIn)
	if err == nil {
		t.Fatal("mismatched initial conditions did not fail")
	}
	if _, ok := err.(*cardio.ShapeError); !ok {
		t.Fatalf("error has type %T, want *cardio.ShapeError", err)
	}
	if fh.U.Values[10] != 0.1 {
		t.Errorf("failed SetInitialConditions modified state")
	}
}

func TestStateRoundTrip(t *testing.T) {
	fh, _ := New(9, 7, 0.01)
	fh.Init(rand.New(rand.NewSource(21)))
	fh.SetParameters(0.12, 0.6, 2.0, 0.3)
	fh.SetDiffusionCoefficients(0.15, 0.05)
	fh.AddStimulus(4, 3, 0.8, 1.0)
	fh.Run(13)

	var buf bytes.Buffer
	if err := fh.WriteState(&buf); err != nil {
		t.Fatal(err)
	}
	fh2, _ := New(9, 7, 0.01)
	if err := fh2.ReadState(&buf); err != nil {
		t.Fatal(err)
	}
	if fh2.Eq != fh.Eq {
		t.Errorf("params not restored: %+v vs %+v", fh2.Eq, fh.Eq)
	}
	if fh2.CurTime() != fh.CurTime() {
		t.Errorf("time not restored: %v vs %v", fh2.CurTime(), fh.CurTime())
	}
	for i := range fh.U.Values {
		if fh2.U.Values[i] != fh.U.Values[i] || fh2.V.Values[i] != fh.V.Values[i] {
			t.Fatalf("field differs at %d after round trip", i)
		}
	}
}

func TestStateDimsMismatch(t *testing.T) {
	small, _ := New(5, 5, 0.01)
	var buf bytes.Buffer
	if err := small.WriteState(&buf); err != nil {
		t.Fatal(err)
	}
	big, _ := New(10, 10, 0.01)
	big.Init(rand.New(rand.NewSource(5)))
	u0 := append([]float64(nil), big.U.Values...)
	eq0 := big.Eq
	err := big.ReadState(&buf)
	if err == nil {
		t.Fatal("load with mismatched dims did not fail")
	}
	if _, ok := err.(*cardio.ShapeError); !ok {
		t.Fatalf("load error has type %T, want *cardio.ShapeError", err)
	}
	if big.Eq != eq0 {
		t.Errorf("failed load modified params")
	}
	for i := range u0 {
		if big.U.Values[i] != u0[i] {
			t.Fatalf("failed load modified fields at %d", i)
		}
	}
}
