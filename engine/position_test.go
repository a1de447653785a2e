// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestFENRoundTrips(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Errorf("FEN round trip: %q produced %q", fen, got)
		}
	}
}

func TestMakeMoveDoesNotMutateParent(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	before := *pos

	m := MakeMove(Normal, SquareE2, SquareE4, NoFigure)
	child, ok := pos.MakeMove(m)
	if !ok {
		t.Fatal("e2e4 should be legal from the starting position")
	}
	if *pos != before {
		t.Errorf("MakeMove mutated the receiver: got %+v, want %+v", *pos, before)
	}
	if child.PieceAt(SquareE4) != ColorFigure(White, Pawn) {
		t.Errorf("expected a white pawn on e4, got %v", child.PieceAt(SquareE4))
	}
	if child.PieceAt(SquareE2) != NoPiece {
		t.Errorf("expected e2 to be empty after the push")
	}
	if child.SideToMove != Black {
		t.Errorf("expected black to move after white's move")
	}
	if child.EnpassantSquare != SquareE3 {
		t.Errorf("expected en passant square e3, got %v", child.EnpassantSquare)
	}
}

func TestEnpassantCapture(t *testing.T) {
	pos, err := PositionFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	m := MakeMove(Enpassant, SquareE5, SquareD6, NoFigure)
	child, ok := pos.MakeMove(m)
	if !ok {
		t.Fatal("exd6 e.p. should be legal")
	}
	if child.PieceAt(SquareD6) != ColorFigure(White, Pawn) {
		t.Errorf("expected the capturing pawn on d6")
	}
	if child.PieceAt(SquareD5) != NoPiece {
		t.Errorf("expected the captured pawn removed from d5")
	}
	if child.EnpassantSquare != NoSquare {
		t.Errorf("expected no en passant square after the capture")
	}
}

func TestPromotion(t *testing.T) {
	pos, err := PositionFromFEN("8/4P1k1/8/8/8/8/6K1/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := MakeMove(Promotion, SquareE7, SquareE8, Queen)
	child, ok := pos.MakeMove(m)
	if !ok {
		t.Fatal("e8=Q should be legal")
	}
	if child.PieceAt(SquareE8) != ColorFigure(White, Queen) {
		t.Errorf("expected a white queen on e8, got %v", child.PieceAt(SquareE8))
	}
}

func TestCastlingClearsRights(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	m := MakeMove(Castling, SquareE1, SquareG1, NoFigure)
	child, ok := pos.MakeMove(m)
	if !ok {
		t.Fatal("O-O should be legal in the Kiwipete position")
	}
	if child.PieceAt(SquareG1) != ColorFigure(White, King) {
		t.Errorf("expected the king on g1")
	}
	if child.PieceAt(SquareF1) != ColorFigure(White, Rook) {
		t.Errorf("expected the rook on f1")
	}
	if child.Castle&WhiteOO != 0 || child.Castle&WhiteOOO != 0 {
		t.Errorf("expected white's castling rights cleared, got %v", child.Castle)
	}
	if child.Castle&BlackOO == 0 || child.Castle&BlackOOO == 0 {
		t.Errorf("expected black's castling rights untouched, got %v", child.Castle)
	}
}

func TestMakeMoveRejectsMoveIntoCheck(t *testing.T) {
	// The d2 pawn is pinned against the king by the bishop on a5: pushing
	// it is pseudo-legal but must be rejected by MakeMove.
	pos, err := PositionFromFEN("4k3/8/8/b7/8/8/3P4/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := MakeMove(Normal, SquareD2, SquareD3, NoFigure)
	if _, ok := pos.MakeMove(m); ok {
		t.Fatal("pushing the pinned pawn must be rejected as leaving the king in check")
	}
}

func TestRule50ResetsOnPawnMoveAndCapture(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	pos.Rule50 = 17
	m := MakeMove(Normal, SquareD5, SquareE6, NoFigure) // pawn capture
	child, ok := pos.MakeMove(m)
	if !ok {
		t.Fatal("dxe6 should be legal")
	}
	if child.Rule50 != 0 {
		t.Errorf("expected Rule50 reset on a capture, got %d", child.Rule50)
	}
}

func TestFullmoveIncrementsAfterBlack(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	white, ok := pos.MakeMove(MakeMove(Normal, SquareE2, SquareE4, NoFigure))
	if !ok {
		t.Fatal("e4 should be legal")
	}
	if white.Fullmove != 1 {
		t.Errorf("expected fullmove to stay 1 after white's move, got %d", white.Fullmove)
	}
	black, ok := white.MakeMove(MakeMove(Normal, SquareE7, SquareE5, NoFigure))
	if !ok {
		t.Fatal("e5 should be legal")
	}
	if black.Fullmove != 2 {
		t.Errorf("expected fullmove 2 after black's reply, got %d", black.Fullmove)
	}
}

func TestMakeNullMoveFlipsSideAndClearsEnpassant(t *testing.T) {
	pos, err := PositionFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	child, ok := pos.MakeNullMove()
	if !ok {
		t.Fatal("null move should be legal when not in check")
	}
	if child.SideToMove != Black {
		t.Errorf("expected side to move flipped to black")
	}
	if child.EnpassantSquare != NoSquare {
		t.Errorf("expected en passant square cleared by a null move")
	}
}

func TestMakeNullMoveRejectedInCheck(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := pos.MakeNullMove(); ok {
		t.Fatal("a null move while in check must be rejected")
	}
}

func TestIsPseudoLegal(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsPseudoLegal(MakeMove(Normal, SquareE2, SquareE4, NoFigure)) {
		t.Errorf("e2e4 should be pseudo-legal in the starting position")
	}
	if pos.IsPseudoLegal(MakeMove(Normal, SquareE2, SquareE5, NoFigure)) {
		t.Errorf("e2e5 is not a legal pawn move and must not be pseudo-legal")
	}
	if pos.IsPseudoLegal(MakeMove(Normal, SquareA8, SquareA7, NoFigure)) {
		t.Errorf("a black piece move must not be pseudo-legal while white is to move")
	}
}
