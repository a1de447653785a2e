// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pawns.go contains the pawn-structure masks and the passed/doubled/
// isolated/backward/connected pawn detectors built on top of them.

package engine

// adjacentFiles[f] is the files immediately left and right of f.
var adjacentFiles [8]Bitboard

// passedMask[col][sq] is every square a col pawn must see empty of enemy
// pawns (its own file and the two adjacent ones, from sq forward) to
// count as passed.
var passedMask [ColorArraySize][SquareArraySize]Bitboard

// forwardFileMask[col][sq] is the squares directly ahead of sq on its own
// file, used for the doubled-pawn check.
var forwardFileMask [ColorArraySize][SquareArraySize]Bitboard

// frontSpan[col][sq] is every square ahead of sq on sq's file and both
// adjacent files. frontSpan[them][sq] is the rear span used to find
// backward pawns.
var frontSpan [ColorArraySize][SquareArraySize]Bitboard

func init() {
	for f := 0; f < 8; f++ {
		var bb Bitboard
		if f > 0 {
			bb |= FileBb(f - 1)
		}
		if f < 7 {
			bb |= FileBb(f + 1)
		}
		adjacentFiles[f] = bb
	}

	for sq := SquareMinValue; sq <= SquareMaxValue; sq++ {
		for _, col := range [...]Color{White, Black} {
			var ahead Bitboard
			r := sq.Rank()
			if col == White {
				for rr := r + 1; rr < 8; rr++ {
					ahead |= RankBb(rr)
				}
			} else {
				for rr := r - 1; rr >= 0; rr-- {
					ahead |= RankBb(rr)
				}
			}
			forwardFileMask[col][sq] = ahead & FileBb(sq.File())
			frontSpan[col][sq] = ahead & (FileBb(sq.File()) | adjacentFiles[sq.File()])
			passedMask[col][sq] = frontSpan[col][sq]
		}
	}
}

// pawnForward shifts bb one rank towards col's promotion rank.
func pawnForward(col Color, bb Bitboard) Bitboard {
	if col == White {
		return bb << 8
	}
	return bb >> 8
}

// PassedPawns returns us's pawns with no enemy pawn able to stop or
// capture them on their way to promotion.
func PassedPawns(pos *Position, us Color) Bitboard {
	them := us.Opposite()
	theirPawns := pos.ByPiece(them, Pawn)
	var passed Bitboard
	for bb := pos.ByPiece(us, Pawn); bb != 0; {
		sq := bb.Pop()
		if passedMask[us][sq]&theirPawns == 0 {
			passed |= sq.Bitboard()
		}
	}
	return passed
}

// DoubledPawns returns us's pawns that share a file with another
// friendly pawn further back.
func DoubledPawns(pos *Position, us Color) Bitboard {
	ours := pos.ByPiece(us, Pawn)
	var doubled Bitboard
	for bb := ours; bb != 0; {
		sq := bb.Pop()
		if forwardFileMask[us.Opposite()][sq]&ours != 0 {
			doubled |= sq.Bitboard()
		}
	}
	return doubled
}

// IsolatedPawns returns us's pawns with no friendly pawn on an adjacent
// file.
func IsolatedPawns(pos *Position, us Color) Bitboard {
	ours := pos.ByPiece(us, Pawn)
	var isolated Bitboard
	for bb := ours; bb != 0; {
		sq := bb.Pop()
		if adjacentFiles[sq.File()]&ours == 0 {
			isolated |= sq.Bitboard()
		}
	}
	return isolated
}

// ConnectedPawns returns us's pawns defended by another friendly pawn.
func ConnectedPawns(pos *Position, us Color) Bitboard {
	ours := pos.ByPiece(us, Pawn)
	var defended Bitboard
	for bb := ours; bb != 0; {
		sq := bb.Pop()
		if BbPawnAttacks[us.Opposite()][sq]&ours != 0 {
			defended |= sq.Bitboard()
		}
	}
	return defended
}

// BackwardPawns returns us's pawns that cannot safely advance: their stop
// square is controlled by an enemy pawn and no friendly pawn can ever
// catch up to defend it (none on an adjacent file level with or behind
// it). Isolated pawns and pawns with a friendly pawn ahead on their own
// file are not counted.
func BackwardPawns(pos *Position, us Color) Bitboard {
	ours := pos.ByPiece(us, Pawn)
	them := us.Opposite()
	theirPawns := pos.ByPiece(them, Pawn)
	var backward Bitboard
	for bb := ours &^ IsolatedPawns(pos, us); bb != 0; {
		sq := bb.Pop()
		stop := pawnForward(us, sq.Bitboard())
		if stop == 0 {
			continue
		}
		stopSq := stop.AsSquare()
		if BbPawnAttacks[us][stopSq]&theirPawns == 0 {
			continue
		}
		support := (frontSpan[them][sq] | RankBb(sq.Rank())) & adjacentFiles[sq.File()]
		if support&ours != 0 || forwardFileMask[us][sq]&ours != 0 {
			continue
		}
		backward |= sq.Bitboard()
	}
	return backward
}

// PawnThreats returns every square a us pawn attacks.
func PawnThreats(pos *Position, us Color) Bitboard {
	var bb Bitboard
	for p := pos.ByPiece(us, Pawn); p != 0; {
		bb |= BbPawnAttacks[us][p.Pop()]
	}
	return bb
}

// Majors reports whether us has any rook or queen left, used to decide
// whether the pure-pawn-endgame bonus applies.
func Majors(pos *Position, us Color) Bitboard {
	return pos.ByPiece(us, Rook) | pos.ByPiece(us, Queen)
}
