// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import "github.com/chewxy/math32"

// ActParams are the activation parameters for the recurrent forward pass
type ActParams struct {
	NTimeSteps int     `def:"2" min:"1" desc:"number of recurrent settling steps per pattern -- 1 is purely feedforward"`
	Steepness  float32 `def:"0.4" min:"0" desc:"sigmoid steepness: act = 1 / (1 + exp(-2 x / Steepness)) -- smaller values are sharper"`
	Bias       float32 `def:"0.8" desc:"fixed input value of the two bias neurons"`

	SigGain float32 `view:"-" json:"-" xml:"-" desc:"2 / Steepness"`
}

func (ap *ActParams) Defaults() {
	ap.NTimeSteps = 2
	ap.Steepness = 0.4
	ap.Bias = 0.8
	ap.Update()
}

// Update must be called after any changes to parameters
func (ap *ActParams) Update() {
	if ap.Steepness > 0 {
		ap.SigGain = 2 / ap.Steepness
	}
}

// Validate returns a *ConfigError for unusable values
func (ap *ActParams) Validate() error {
	if ap.NTimeSteps < 1 {
		return configErr("NTimeSteps", ap.NTimeSteps, "must be >= 1")
	}
	if !(ap.Steepness > 0) {
		return configErr("Steepness", ap.Steepness, "must be > 0")
	}
	return nil
}

// Sigmoid is the logistic activation function with Steepness
func (ap *ActParams) Sigmoid(x float32) float32 {
	return 1 / (1 + math32.Exp(-ap.SigGain*x))
}

// LearnParams are the error diffusion learning parameters
type LearnParams struct {
	Lrate float32 `def:"0.8" min:"0" desc:"learning rate"`
	Amp   float32 `def:"1" min:"0" desc:"amplification of the error diffused to hidden neurons -- the output neuron always gets the raw error"`
}

func (lp *LearnParams) Defaults() {
	lp.Lrate = 0.8
	lp.Amp = 1
}

func (lp *LearnParams) Update() {
}

// Validate returns a *ConfigError for unusable values
func (lp *LearnParams) Validate() error {
	if lp.Lrate < 0 {
		return configErr("Lrate", lp.Lrate, "must be >= 0")
	}
	if lp.Amp < 0 {
		return configErr("Amp", lp.Amp, "must be >= 0")
	}
	return nil
}

// Deriv is the sigmoid derivative surrogate used in learning.  It uses the
// absolute value of the activation.
func Deriv(act float32) float32 {
	aa := math32.Abs(act)
	return aa * (1 - aa)
}

// InitParams are the random weight initialization ranges
type InitParams struct {
	WtRange  float32 `def:"1" min:"0" desc:"initial weights are uniform in [0, WtRange) before the sign is applied"`
	ThrRange float32 `def:"1" min:"0" desc:"initial weights from the bias neurons (thresholds) are uniform in [0, ThrRange) before the sign is applied"`
}

func (ip *InitParams) Defaults() {
	ip.WtRange = 1
	ip.ThrRange = 1
}

// Validate returns a *ConfigError for unusable values
func (ip *InitParams) Validate() error {
	if ip.WtRange < 0 {
		return configErr("WtRange", ip.WtRange, "must be >= 0")
	}
	if ip.ThrRange < 0 {
		return configErr("ThrRange", ip.ThrRange, "must be >= 0")
	}
	return nil
}
