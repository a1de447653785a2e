// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestParseFENStartPosition(t *testing.T) {
	epd, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if epd.Position.SideToMove != White {
		t.Errorf("expected white to move, got %v", epd.Position.SideToMove)
	}
	if epd.Position.Castle != AnyCastle {
		t.Errorf("expected full castling rights, got %v", epd.Position.Castle)
	}
}

func TestParseFENKiwipete(t *testing.T) {
	epd, err := ParseFEN(FENKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	if got := epd.Position.PieceAt(SquareE5); got != ColorFigure(White, Knight) {
		t.Errorf("expected a white knight on e5, got %v", got)
	}
}

func TestParseEPD(t *testing.T) {
	line := `rnb2r1k/pp2p2p/2pp2p1/q2P1p2/8/1Pb2NP1/PB2PPBP/R2Q1RK1 w - - bm Qd2; id "BK.14";`
	epd, err := ParseEPD(line)
	if err != nil {
		t.Fatal(err)
	}
	if epd.Id != "BK.14" {
		t.Errorf("expected id BK.14, got %q", epd.Id)
	}
	if len(epd.BestMove) != 1 {
		t.Fatalf("expected 1 best move, got %d", len(epd.BestMove))
	}
	bm := epd.BestMove[0]
	if bm.From() != SquareD1 || bm.To() != SquareD2 {
		t.Errorf("expected Qd1d2, got %v", bm)
	}
}

func TestParseEPDMultipleBestMoves(t *testing.T) {
	line := `rnb2r1k/pp2p2p/2pp2p1/q2P1p2/8/1Pb2NP1/PB2PPBP/R2Q1RK1 w - - bm Qd2 Qe1;`
	epd, err := ParseEPD(line)
	if err != nil {
		t.Fatal(err)
	}
	if len(epd.BestMove) != 2 {
		t.Fatalf("expected 2 best moves, got %d", len(epd.BestMove))
	}
}
