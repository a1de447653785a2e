// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestTriangularPVUpdate(t *testing.T) {
	var pv triangularPV
	pv.Clear()

	m0 := MakeMove(Normal, SquareE2, SquareE4, NoFigure)
	m1 := MakeMove(Normal, SquareE7, SquareE5, NoFigure)
	m2 := MakeMove(Normal, SquareG1, SquareF3, NoFigure)

	// Search unwinds depth-first: the deepest ply's line is already
	// final by the time a shallower ply calls Update.
	pv.Update(2, m2)
	pv.Update(1, m1)
	pv.Update(0, m0)

	line := pv.Line()
	want := []Move{m0, m1, m2}
	if len(line) != len(want) {
		t.Fatalf("expected line of length %d, got %d (%v)", len(want), len(line), line)
	}
	for i, m := range want {
		if line[i] != m {
			t.Errorf("#%d expected %v, got %v", i, m, line[i])
		}
	}
}

func TestTriangularPVClearIsIndependent(t *testing.T) {
	var pv triangularPV
	m := MakeMove(Normal, SquareD2, SquareD4, NoFigure)
	pv.Update(0, m)
	pv.Clear()
	if len(pv.Line()) != 0 {
		t.Errorf("expected empty line after Clear, got %v", pv.Line())
	}
}
