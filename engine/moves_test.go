// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestSANToMovePlaysOutAGame(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	if err != nil {
		t.Fatal(err)
	}

	sans := []string{"Qxf6", "hxg2"}
	for i, san := range sans {
		m, err := pos.SANToMove(san)
		if err != nil {
			t.Fatalf("#%d %s: %v", i, san, err)
		}
		child, ok := pos.MakeMove(m)
		if !ok {
			t.Fatalf("#%d %s: SANToMove returned an illegal move %v", i, san, m)
		}
		pos = &child
	}
}

func TestSANToMoveDisambiguatesByFile(t *testing.T) {
	pos, err := PositionFromFEN("2r3k1/6pp/4pp2/3bp3/1Pq5/3R1P2/r1PQ2PP/1K1RN3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := pos.SANToMove("Raa1+")
	if err != nil {
		t.Fatal("could not parse move:", err)
	}
	if m.From() != SquareA2 || m.To() != SquareA1 {
		t.Errorf("expected Ra2a1, got %v", m)
	}
}

func TestSANToMoveCastling(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	m, err := pos.SANToMove("O-O")
	if err != nil {
		t.Fatal(err)
	}
	if m.MoveType() != Castling || m.From() != SquareE1 || m.To() != SquareG1 {
		t.Errorf("expected kingside castling e1g1, got %v (%v)", m, m.MoveType())
	}
}

func TestUCIToMoveRoundTrips(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range legalMoves(pos) {
		got, ok := pos.UCIToMove(m.UCI())
		if !ok {
			t.Fatalf("UCIToMove could not parse %s back", m.UCI())
		}
		if got != m {
			t.Errorf("UCI round trip: %s parsed as %v, want %v", m.UCI(), got, m)
		}
	}
}

func TestSANRoundTrips(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		for _, m := range legalMoves(pos) {
			san := pos.SAN(m)
			got, err := pos.SANToMove(san)
			if err != nil {
				t.Errorf("%s: SAN %q for %v did not parse back: %v", fen, san, m, err)
				continue
			}
			if got != m {
				t.Errorf("%s: SAN %q parsed back as %v, want %v", fen, san, got, m)
			}
		}
	}
}
