// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package luorudy

import (
	"bytes"
	"math"
	"testing"

	"github.com/emer/etable/etensor"
	"github.com/miomod/miomod/cardio"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float64(1.0e-12)

func TestRestingCurrents(t *testing.T) {
	lr, err := New(4, 4, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	cur := lr.CellCurrents(1, 1)
	// gated currents are exactly zero at rest: m, xr, d all start closed
	for _, c := range []Current{INa, ICaL, IK, ICaT} {
		if cur[c] != 0 {
			t.Errorf("%v at rest: got %v, want 0", c, cur[c])
		}
	}
	// background current at rest: Gb * (RestV + 59.87)
	if math.Abs(cur[Ib]-(-0.9461373)) > 1.0e-6 {
		t.Errorf("Ib at rest: got %v, want %v", cur[Ib], -0.9461373)
	}
	// inward rectifier is the dominant resting current, inward (negative)
	if cur[IK1] >= 0 || cur[IK1] > cur[Ib] {
		t.Errorf("IK1 at rest not dominant inward: IK1=%v Ib=%v", cur[IK1], cur[Ib])
	}
	if math.Abs(cur.Total()-(cur[IK1]+cur[Ib])) > difTol {
		t.Errorf("resting total %v != IK1 + Ib = %v", cur.Total(), cur[IK1]+cur[Ib])
	}
}

func TestRestingStep(t *testing.T) {
	lr, _ := New(5, 5, 0.01)
	lr.Step()
	// uniform tissue: no diffusion gradients, every cell moves identically
	v0 := lr.V.Values[0]
	for i, v := range lr.V.Values {
		if v != v0 {
			t.Fatalf("uniform tissue diverged at %d: %v vs %v", i, v, v0)
		}
	}
	// net resting current is inward: small depolarizing drift per step
	dv := v0 - RestV
	if dv <= 0 || dv > 0.1 {
		t.Errorf("resting potential drift per step: got %v", dv)
	}
	// sodium activation opens slightly, inactivation closes slightly
	if lr.M.Values[0] <= 0 {
		t.Errorf("m gate did not open from rest: %v", lr.M.Values[0])
	}
	if h := lr.H.Values[0]; h >= 1 || h < 0.99 {
		t.Errorf("h gate drift per step out of range: %v", h)
	}
	if math.Abs(lr.CurTime()-0.01) > difTol {
		t.Errorf("time after one step: got %v, want 0.01", lr.CurTime())
	}
}

func TestMaskFreeze(t *testing.T) {
	lr, _ := New(6, 6, 0.01)
	msk := etensor.NewBits([]int{6, 6}, nil, cardio.GridDimNames)
	for i := 0; i < 36; i++ {
		msk.Set1D(i, true)
	}
	if err := lr.SetMask(msk); err != nil {
		t.Fatal(err)
	}
	lr.Run(10)
	for i := 0; i < 36; i++ {
		if lr.V.Values[i] != RestV {
			t.Fatalf("masked potential changed at %d: %v", i, lr.V.Values[i])
		}
		if lr.M.Values[i] != 0 || lr.H.Values[i] != 1 || lr.Cai.Values[i] != RestCai {
			t.Fatalf("masked gates or calcium changed at %d", i)
		}
	}
}

func TestCellTypePresets(t *testing.T) {
	lr, _ := New(4, 4, 0.01)
	if lr.CellTyp != Normal || lr.Chans.GNa != 23 {
		t.Fatalf("default cell type: %v GNa=%v", lr.CellTyp, lr.Chans.GNa)
	}
	// case insensitive lookup, whole parameter set swapped at once
	if err := lr.SetCellTypeName("ISCHEMIC"); err != nil {
		t.Fatal(err)
	}
	if lr.CellTyp != Ischemic || lr.Chans.GNa != 15 || lr.Chans.GK1 != 0.4 {
		t.Errorf("ischemic preset not applied: %+v", lr.Chans)
	}
	// preset switch does not touch field state
	if lr.V.Values[0] != RestV {
		t.Errorf("preset switch modified fields: V=%v", lr.V.Values[0])
	}
	// unknown name: typed error, parameters untouched
	err := lr.SetCellTypeName("zombie")
	if err == nil {
		t.Fatal("unknown cell type name did not fail")
	}
	if _, ok := err.(*cardio.UnknownNameError); !ok {
		t.Fatalf("error has type %T, want *cardio.UnknownNameError", err)
	}
	if lr.CellTyp != Ischemic || lr.Chans.GNa != 15 {
		t.Errorf("failed preset lookup modified parameters")
	}
}

func TestCaiClamp(t *testing.T) {
	lr, _ := New(4, 4, 0.01)
	lr.Cai.Values[0] = 0 // below the physiological floor
	lr.Step()
	if got := lr.Cai.Values[0]; got != lr.CaiRange.Min {
		t.Errorf("calcium not clamped to floor: got %v, want %v", got, lr.CaiRange.Min)
	}
}

func TestCurrentValuesNoStep(t *testing.T) {
	lr, _ := New(5, 5, 0.01)
	tm := lr.CurTime()
	tsr := &etensor.Float64{}
	lr.CurrentValues(tsr, IK1)
	if tsr.Dim(0) != 5 || tsr.Dim(1) != 5 {
		t.Fatalf("diagnostic map shape: %d x %d", tsr.Dim(0), tsr.Dim(1))
	}
	for i, v := range tsr.Values {
		if v != tsr.Values[0] {
			t.Fatalf("uniform tissue diagnostic differs at %d: %v", i, v)
		}
	}
	if lr.CurTime() != tm || lr.V.Values[0] != RestV {
		t.Errorf("diagnostic retrieval advanced the model")
	}
}

func TestCurrentString(t *testing.T) {
	for c, nm := range map[Current]string{INa: "INa", ICaL: "ICaL", IK1: "IK1", ICaT: "ICaT"} {
		if c.String() != nm {
			t.Errorf("Current(%d).String(): got %q, want %q", c, c.String(), nm)
		}
	}
	if Ischemic.String() != "Ischemic" {
		t.Errorf("CellType string: got %q", Ischemic.String())
	}
}

func TestStateRoundTrip(t *testing.T) {
	// dt small enough that the h gate stays stable at the depolarized cell
	lr, _ := New(7, 5, 0.0001)
	lr.SetCellType(Ischemic)
	lr.SetConductivity(0.3)
	// break uniformity so the fields carry real spatial structure
	lr.V.Values[lr.Offset(3, 2)] = -20
	lr.Run(7)

	var buf bytes.Buffer
	if err := lr.WriteState(&buf); err != nil {
		t.Fatal(err)
	}
	lr2, _ := New(7, 5, 0.0001)
	if err := lr2.ReadState(&buf); err != nil {
		t.Fatal(err)
	}
	if lr2.Chans != lr.Chans || lr2.Cond != lr.Cond || lr2.CurTime() != lr.CurTime() {
		t.Errorf("params not restored: %+v cond=%v", lr2.Chans, lr2.Cond)
	}
	f1 := lr.StateFields()
	f2 := lr2.StateFields()
	for fi := range f1 {
		for i := range f1[fi].Values {
			if math.Float64bits(f2[fi].Values[i]) != math.Float64bits(f1[fi].Values[i]) {
				t.Fatalf("field %d differs at %d after round trip", fi, i)
			}
		}
	}
	// the perturbation must survive the run with finite values, or the
	// bit comparison above is vacuous at the hot cell
	if math.IsNaN(f1[0].Values[lr.Offset(3, 2)]) {
		t.Errorf("round trip fixture went non-finite")
	}
}
