// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package miomod is the overall repository for the myocardial infarction (MI)
tissue modeling code implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* cardio: the shared electrophysiology base used by all tissue models --
grid-shaped state fields, the masked diffusion operator for electrical
propagation, the simulation clock, and text-format state persistence.

* gates: voltage-dependent ion channel gating kinetics (opening / closing
rate pairs and their explicit Euler update), shared across the ionic models.

* fhn: the FitzHugh-Nagumo simplified excitable-medium model, with point
stimulation and random or explicit initial conditions.

* luorudy: the Luo-Rudy dynamic ventricular model, with normal / ischemic /
infarcted cell type parameterizations and per-current diagnostic maps.

* tusscher: the Ten Tusscher human ventricular model, with epicardial /
endocardial / mid-myocardial variants, ion concentration state, and
exchanger / pump currents.

* examples: these compile into runnable programs demonstrating driving a
model, applying a scar mask, and saving state.
*/
package miomod
