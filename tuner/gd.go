// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build coach

package tuner

import (
	"math"

	"github.com/nullmove/caps/engine"
)

// Pair is a tapered mid/end-game weight, the tuner's own copy of
// engine.Score stripped of the feature index: the tuner works in
// float64 throughout and rounds only when handing weights back to the
// engine.
type Pair struct {
	M, E float64
}

// EvalScale stretches the sigmoid horizontally: a larger scale means a
// larger centipawn eval is needed before it counts as "surely won",
// matching how far apart the engine's own centipawn scores already sit
// from a 0/1 result.
const EvalScale = 400.0

func sigmoid(cp float64) float64 {
	return 1.0 / (1.0 + math.Exp(-cp/EvalScale))
}

// predict returns the tapered centipawn score and its win probability
// for one sample under weights.
func predict(weights []Pair, s Sample) (cp, wr float64) {
	for i, n := range s.Values {
		if n == 0 {
			continue
		}
		w := weights[i]
		cp += float64(n) * (w.M*float64(s.Phase) + w.E*float64(engine.MaxPhase-s.Phase)) / float64(engine.MaxPhase)
	}
	wr = sigmoid(cp)
	return cp, wr
}

// Loss returns the mean squared error between predicted win
// probability and actual outcome over dataset.
func Loss(weights []Pair, dataset []Sample) float64 {
	var sum float64
	for _, s := range dataset {
		_, wr := predict(weights, s)
		d := wr - s.Outcome
		sum += d * d
	}
	return sum / float64(len(dataset))
}

// Gradient computes the analytic gradient of Loss with respect to every
// weight, batched over the whole dataset.
//
// L = (σ(cp/K) - y)², cp = Σ vᵢ·taper(Mᵢ, Eᵢ, phase)
// ∂L/∂cp = 2·(σ-y)·σ·(1-σ)/K
// ∂cp/∂Mᵢ = vᵢ·phase/MaxPhase, ∂cp/∂Eᵢ = vᵢ·(MaxPhase-phase)/MaxPhase
func Gradient(weights []Pair, dataset []Sample) []Pair {
	grad := make([]Pair, len(weights))
	if len(dataset) == 0 {
		return grad
	}
	scale := 2.0 / EvalScale / float64(len(dataset))
	for _, s := range dataset {
		cp, wr := predict(weights, s)
		_ = cp
		factor := scale * (wr - s.Outcome) * wr * (1 - wr)
		for i, n := range s.Values {
			if n == 0 {
				continue
			}
			fn := float64(n)
			grad[i].M += factor * fn * float64(s.Phase) / float64(engine.MaxPhase)
			grad[i].E += factor * fn * float64(engine.MaxPhase-s.Phase) / float64(engine.MaxPhase)
		}
	}
	return grad
}

// Adam is a per-parameter Adam optimizer (Kingma & Ba), holding the
// first and second moment estimates alongside the step count needed for
// their bias correction.
type Adam struct {
	LR, Beta1, Beta2, Eps float64
	t                      int
	m, v                   []Pair
}

// NewAdam returns an Adam optimizer tuned to the rates spec.md §4.H
// asks for, sized to n weights.
func NewAdam(n int) *Adam {
	return &Adam{
		LR:    1e-2,
		Beta1: 0.9,
		Beta2: 0.999,
		Eps:   1e-8,
		m:     make([]Pair, n),
		v:     make([]Pair, n),
	}
}

// Step applies one Adam update to weights in place, given the gradient
// computed at the current weights.
func (a *Adam) Step(weights, grad []Pair) {
	a.t++
	b1t := 1 - math.Pow(a.Beta1, float64(a.t))
	b2t := 1 - math.Pow(a.Beta2, float64(a.t))
	for i := range weights {
		g := grad[i]

		a.m[i].M = a.Beta1*a.m[i].M + (1-a.Beta1)*g.M
		a.m[i].E = a.Beta1*a.m[i].E + (1-a.Beta1)*g.E
		a.v[i].M = a.Beta2*a.v[i].M + (1-a.Beta2)*g.M*g.M
		a.v[i].E = a.Beta2*a.v[i].E + (1-a.Beta2)*g.E*g.E

		mhatM, mhatE := a.m[i].M/b1t, a.m[i].E/b1t
		vhatM, vhatE := a.v[i].M/b2t, a.v[i].E/b2t

		weights[i].M -= a.LR * mhatM / (math.Sqrt(vhatM) + a.Eps)
		weights[i].E -= a.LR * mhatE / (math.Sqrt(vhatE) + a.Eps)
	}
}

// SGD is the plain gradient-descent fallback spec.md §4.H names as an
// alternative to Adam: a fixed learning rate, decayed each epoch the
// way pliers/src/gd.rs's do_optimize shrinks its step.
type SGD struct {
	LR    float64
	Decay float64
}

// NewSGD returns a plain gradient-descent optimizer, decaying its
// learning rate by Decay every Step call.
func NewSGD(lr, decay float64) *SGD {
	return &SGD{LR: lr, Decay: decay}
}

func (s *SGD) Step(weights, grad []Pair) {
	for i := range weights {
		weights[i].M -= s.LR * grad[i].M
		weights[i].E -= s.LR * grad[i].E
	}
	s.LR *= s.Decay
}

// Optimizer is anything that can turn a gradient into a weight update,
// letting Train swap Adam and SGD without caring which it drives.
type Optimizer interface {
	Step(weights, grad []Pair)
}

// Train runs epochs full-batch gradient steps over dataset, starting
// from weights (mutated in place) and returns the per-epoch loss
// trace, useful for a caller that wants to plot convergence.
func Train(weights []Pair, dataset []Sample, opt Optimizer, epochs int) []float64 {
	losses := make([]float64, 0, epochs)
	for e := 0; e < epochs; e++ {
		grad := Gradient(weights, dataset)
		opt.Step(weights, grad)
		losses = append(losses, Loss(weights, dataset))
	}
	return losses
}
