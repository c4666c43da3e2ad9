// Copyright (c) 2024, The MioMod Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cardio

// cardio.Time contains the timing state and parameters for running a model.
type Time struct {

	// accumulated amount of time the model has been running,
	// in simulation-time (not real world time), in msec.
	Time float64

	// number of integration steps taken since construction
	// or the last state restore.
	Step int

	// amount of time to increment per step -- the integration
	// time step dt, fixed for the lifetime of the model.
	TimePerStep float64 `def:"0.01"`
}

// NewTime returns a new Time struct with the given time step.
func NewTime(dt float64) *Time {
	tm := &Time{TimePerStep: dt}
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerStep = 0.01
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.TimePerStep == 0 {
		tm.Defaults()
	}
}

// StepInc increments the clock by one time step.
func (tm *Time) StepInc() {
	tm.Step++
	tm.Time += tm.TimePerStep
}

// Restore sets the clock to a persisted simulation time, resetting
// the step counter.
func (tm *Time) Restore(time float64) {
	tm.Time = time
	tm.Step = 0
}
