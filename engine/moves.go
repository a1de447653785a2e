// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// moves.go converts between the packed Move type and the two notations
// a UCI engine has to speak: UCI's own long-algebraic-ish move strings
// and standard algebraic notation (SAN) for EPD best-move fields.

package engine

import "fmt"

var (
	errWrongLength       = fmt.Errorf("SAN string is too short")
	errUnknownFigure     = fmt.Errorf("unknown figure symbol")
	errBadDisambiguation = fmt.Errorf("bad disambiguation")
	errNoSuchMove        = fmt.Errorf("no such move")
)

var symbolToFigure = map[byte]Figure{
	'N': Knight, 'B': Bishop, 'R': Rook, 'Q': Queen, 'K': King,
}

// legalMoves returns every legal move from pos: pseudo-legal moves that
// survive MakeMove's king-safety check.
func legalMoves(pos *Position) []Move {
	var ml MoveList
	pos.GenerateMoves(&ml)
	var out []Move
	for _, m := range ml.Moves() {
		if _, ok := pos.MakeMove(m); ok {
			out = append(out, m)
		}
	}
	return out
}

// UCIToMove parses a move given in UCI's wire format ("e2e4", "a7a8q",
// "e1g1" for castling) against pos, the position it is to be played in.
// ok is false if no legal move matches.
func (pos *Position) UCIToMove(s string) (Move, bool) {
	if len(s) < 4 {
		return NullMove, false
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, false
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, false
	}
	promo := NoFigure
	if len(s) > 4 {
		fig, ok := symbolToFigure[upperByte(s[4])]
		if !ok {
			return NullMove, false
		}
		promo = fig
	}
	for _, m := range legalMoves(pos) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.MoveType() == Promotion && m.PromotionFigure() != promo {
			continue
		}
		if m.MoveType() != Promotion && promo != NoFigure {
			continue
		}
		return m, true
	}
	return NullMove, false
}

func upperByte(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// SANToMove parses a move in standard algebraic notation against pos.
// Disambiguation, captures ('x'/'-'), check/mate suffixes ('+'/'#') and
// en passant's optional "e.p." suffix are all accepted but not required
// to match what the position actually does.
func (pos *Position) SANToMove(s string) (Move, error) {
	b, e := 0, len(s)
	if b == e {
		return NullMove, errWrongLength
	}
	for e > b && (s[e-1] == '#' || s[e-1] == '+') {
		e--
	}

	us := pos.Us()
	switch s[b:e] {
	case "O-O", "o-o", "0-0":
		return findCastle(pos, us, true)
	case "O-O-O", "o-o-o", "0-0-0":
		return findCastle(pos, us, false)
	}

	fig := Pawn
	if 'A' <= s[b] && s[b] <= 'Z' {
		f, ok := symbolToFigure[s[b]]
		if !ok {
			return NullMove, errUnknownFigure
		}
		fig = f
		b++
	}

	if e-4 > b && s[e-4:e] == "e.p." {
		e -= 4
	}

	promo := NoFigure
	if e-1 >= b && !('1' <= s[e-1] && s[e-1] <= '8') {
		f, ok := symbolToFigure[s[e-1]]
		if !ok {
			return NullMove, errUnknownFigure
		}
		promo = f
		e--
		if e-1 >= b && s[e-1] == '=' {
			e--
		}
	}

	if e-2 < b {
		return NullMove, errWrongLength
	}
	to, err := SquareFromString(s[e-2 : e])
	if err != nil {
		return NullMove, err
	}
	e -= 2

	if e-1 >= b && (s[e-1] == 'x' || s[e-1] == '-') {
		e--
	}

	if e-b > 2 {
		return NullMove, errBadDisambiguation
	}
	disambFile, disambRank := -1, -1
	for ; b < e; b++ {
		switch {
		case 'a' <= s[b] && s[b] <= 'h':
			disambFile = int(s[b] - 'a')
		case '1' <= s[b] && s[b] <= '8':
			disambRank = int(s[b] - '1')
		default:
			return NullMove, errBadDisambiguation
		}
	}

	for _, m := range legalMoves(pos) {
		if pos.PieceAt(m.From()).Figure() != fig || m.To() != to {
			continue
		}
		if promo != NoFigure && m.PromotionFigure() != promo {
			continue
		}
		if promo == NoFigure && m.MoveType() == Promotion {
			continue
		}
		if disambFile != -1 && m.From().File() != disambFile {
			continue
		}
		if disambRank != -1 && m.From().Rank() != disambRank {
			continue
		}
		return m, nil
	}
	return NullMove, errNoSuchMove
}

func findCastle(pos *Position, us Color, kingSide bool) (Move, error) {
	for _, m := range legalMoves(pos) {
		if m.MoveType() != Castling {
			continue
		}
		if pos.PieceAt(m.From()).Color() != us {
			continue
		}
		isKingSide := m.To().File() > m.From().File()
		if isKingSide == kingSide {
			return m, nil
		}
	}
	return NullMove, errNoSuchMove
}

// SAN renders m as standard algebraic notation against pos, the position
// it is played in. Does not append '+'/'#': callers that care about
// check/mate markers add them after playing the move.
func (pos *Position) SAN(m Move) string {
	if m.MoveType() == Castling {
		if m.To().File() > m.From().File() {
			return "O-O"
		}
		return "O-O-O"
	}

	fig := pos.PieceAt(m.From()).Figure()
	capture := pos.PieceAt(m.To()) != NoPiece || m.MoveType() == Enpassant

	s := ""
	if fig != Pawn {
		s += fig.String()
		s += disambiguation(pos, m)
	} else if capture {
		s += m.From().String()[0:1]
	}
	if capture {
		s += "x"
	}
	s += m.To().String()
	if m.MoveType() == Promotion {
		s += "=" + m.PromotionFigure().String()
	}
	return s
}

// disambiguation returns the minimal file/rank/square prefix needed to
// tell m.From() apart from every other legal move with the same figure
// and destination.
func disambiguation(pos *Position, m Move) string {
	fig := pos.PieceAt(m.From()).Figure()
	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legalMoves(pos) {
		if other == m || other.To() != m.To() {
			continue
		}
		if pos.PieceAt(other.From()).Figure() != fig {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	from := m.From().String()
	switch {
	case !sameFile:
		return from[0:1]
	case !sameRank:
		return from[1:2]
	default:
		return from
	}
}
