// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gates

import (
	"math"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float64(1.0e-12)

func cmprFloats(out, cor []float64, msg string, t *testing.T) {
	t.Helper()
	for i := range out {
		dif := math.Abs(out[i] - cor[i])
		if dif > difTol {
			t.Errorf("%v err: out: %v, cor: %v, dif: %v\n", msg, out[i], cor[i], dif)
		}
	}
}

func TestEuler(t *testing.T) {
	// g=0.5, alpha=2, beta=1: dg/dt = 2*0.5 - 1*0.5 = 0.5
	if got := Euler(0.5, 2, 1, 0.1); math.Abs(got-0.55) > difTol {
		t.Errorf("Euler: got %v, want 0.55", got)
	}
	// no rates, no change
	if got := Euler(0.3, 0, 0, 0.1); got != 0.3 {
		t.Errorf("Euler with zero rates: got %v, want 0.3", got)
	}
	// fixed point at steady state g = alpha / (alpha + beta)
	ss := 2.0 / 3.0
	if got := Euler(ss, 2, 1, 0.1); math.Abs(got-ss) > difTol {
		t.Errorf("Euler at steady state: got %v, want %v", got, ss)
	}
}

func TestSodiumActivation(t *testing.T) {
	// beta anchors: exp(0) and exp(-1) points
	_, b0 := SodiumActivation(0)
	_, b11 := SodiumActivation(-11)
	cmprFloats([]float64{b0, b11}, []float64{0.08, 0.08 * math.E}, "SodiumActivation beta", t)

	// alpha increases with depolarization
	aRest, _ := SodiumActivation(-84)
	aUp, _ := SodiumActivation(-40)
	if !(aUp > aRest && aRest > 0) {
		t.Errorf("SodiumActivation alpha not increasing: %v at -84, %v at -40", aRest, aUp)
	}
}

func TestSodiumInactivation(t *testing.T) {
	// alpha = 0.135 exactly at v = -80
	a, _ := SodiumInactivation(-80)
	if math.Abs(a-0.135) > difTol {
		t.Errorf("SodiumInactivation alpha(-80): got %v, want 0.135", a)
	}
	// beta at v=0: 3.56 + 3.1e6
	_, b := SodiumInactivation(0)
	if math.Abs(b-(3.56+3.1e6)) > 1.0e-6 {
		t.Errorf("SodiumInactivation beta(0): got %v, want %v", b, 3.56+3.1e6)
	}
	// h closes with depolarization: alpha falls, beta rises
	aLo, bLo := SodiumInactivation(-84)
	aHi, bHi := SodiumInactivation(-20)
	if !(aHi < aLo && bHi > bLo) {
		t.Errorf("SodiumInactivation rates not monotone: alpha %v -> %v, beta %v -> %v", aLo, aHi, bLo, bHi)
	}
}

func TestRapidPotassium(t *testing.T) {
	// at the half-activation voltages the sigmoids are exactly 1/2
	a, _ := RapidPotassium(-50)
	if math.Abs(a-0.00025) > difTol {
		t.Errorf("RapidPotassium alpha(-50): got %v, want 0.00025", a)
	}
	_, b := RapidPotassium(-20)
	if math.Abs(b-0.00065) > difTol {
		t.Errorf("RapidPotassium beta(-20): got %v, want 0.00065", b)
	}
}
