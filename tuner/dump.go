// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build coach

package tuner

import (
	"fmt"
	"io"

	"github.com/nullmove/caps/engine"
)

// InitialWeights copies engine.Weights into the tuner's own float64
// representation, the starting point Train perturbs.
func InitialWeights() []Pair {
	w := make([]Pair, len(engine.Weights))
	for i, s := range engine.Weights {
		w[i] = Pair{M: float64(s.M), E: float64(s.E)}
	}
	return w
}

// groupName strips a FeatureNames entry's trailing ".N" or "[N]" index,
// so consecutive weights belonging to the same registerMany group are
// dumped under one heading, mirroring weights.go's own grouping.
func groupName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		switch name[i] {
		case '.':
			return name[:i]
		case '[':
			return name[:i]
		}
	}
	return name
}

// Dump writes weights as a human-readable table, grouped the same way
// weights.go's init() registers them, each entry rounded to the nearest
// centipawn pair. A caller feeding this back into the engine rounds the
// same way and re-runs init()'s registerMany/registerOne order, so
// FeatureNames and weights stay index-aligned.
func Dump(w io.Writer, weights []Pair) error {
	if len(weights) != len(engine.FeatureNames) {
		return fmt.Errorf("tuner: %d weights but %d feature names", len(weights), len(engine.FeatureNames))
	}

	lastGroup := ""
	for i, name := range engine.FeatureNames {
		group := groupName(name)
		if group != lastGroup {
			fmt.Fprintf(w, "// %s\n", group)
			lastGroup = group
		}
		fmt.Fprintf(w, "\t{M: %4d, E: %4d}, // %s\n",
			int32(weights[i].M+sign(weights[i].M)*0.5),
			int32(weights[i].E+sign(weights[i].E)*0.5),
			name)
	}
	return nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// Apply rounds weights the same way Dump does and writes them back into
// the live engine.Weights, letting a caller re-score the training set
// with Eval.Recompute (which reads Weights directly) without restarting
// the process. It does not update the named views (wFigure, wPawn, ...)
// evaluateInto's Add/AddN calls add from, so a full Evaluate still
// scores with the weights.go defaults until those are regenerated from
// a Dump and the binary is rebuilt.
func Apply(weights []Pair) error {
	if len(weights) != len(engine.Weights) {
		return fmt.Errorf("tuner: %d weights but engine.Weights has %d entries", len(weights), len(engine.Weights))
	}
	for i := range engine.Weights {
		engine.Weights[i].M = int32(weights[i].M + sign(weights[i].M)*0.5)
		engine.Weights[i].E = int32(weights[i].E + sign(weights[i].E)*0.5)
	}
	return nil
}
