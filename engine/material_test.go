// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestScoreRange(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		score := Evaluate(pos)
		if score <= -MinScoreWon || score >= MinScoreWon {
			t.Errorf("expected a centipawn score for %s, got %d", fen, score)
		}
	}
}

func TestScoreIsSymmetric(t *testing.T) {
	// Evaluate is always from White's point of view; mirroring neither
	// side's position should change the score's sign convention here,
	// but the starting position scores exactly 0 regardless of phase.
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if score := Evaluate(pos); score != 0 {
		t.Errorf("expected the symmetric starting position to score 0, got %d", score)
	}
}

func TestPhaseDecreasesAsMaterialComesOff(t *testing.T) {
	start, _ := PositionFromFEN(FENStartPos)
	endgame, _ := PositionFromFEN("8/8/8/8/8/4k3/4p3/4K3 w - - 0 1")
	if p := phase(start); p != MaxPhase {
		t.Errorf("expected starting position at MaxPhase %d, got %d", MaxPhase, p)
	}
	if p := phase(endgame); p != 0 {
		t.Errorf("expected a king-and-pawn endgame at phase 0, got %d", p)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	var positions []*Position
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			b.Fatalf("%s: %v", fen, err)
		}
		positions = append(positions, pos)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, pos := range positions {
			Evaluate(pos)
		}
	}
}
