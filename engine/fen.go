// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

var pieceFromSymbol = map[byte]Piece{
	'P': ColorFigure(White, Pawn), 'N': ColorFigure(White, Knight),
	'B': ColorFigure(White, Bishop), 'R': ColorFigure(White, Rook),
	'Q': ColorFigure(White, Queen), 'K': ColorFigure(White, King),
	'p': ColorFigure(Black, Pawn), 'n': ColorFigure(Black, Knight),
	'b': ColorFigure(Black, Bishop), 'r': ColorFigure(Black, Rook),
	'q': ColorFigure(Black, Queen), 'k': ColorFigure(Black, King),
}

var symbolFromPiece = func() map[Piece]byte {
	m := make(map[Piece]byte, len(pieceFromSymbol))
	for s, p := range pieceFromSymbol {
		m[p] = s
	}
	return m
}()

// PositionFromFEN parses a position from standard six-field FEN. Parsing
// is lenient about the last two fields: a halfmove clock / fullmove
// number that are missing default to 0 / 1, and Chess960-style castling
// letters (the rook's file letter instead of K/Q/k/q, uppercase for White
// and lowercase for Black) are accepted and recorded as the matching
// side's rook start file.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	pos := &Position{EnpassantSquare: NoSquare, Fullmove: 1, rooks: defaultRookFiles()}
	for sq := range pos.board {
		pos.board[sq] = NoPiece
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range []byte(rankStr) {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pi, ok := pieceFromSymbol[c]
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece symbol %q", c)
			}
			if file > 7 {
				return nil, fmt.Errorf("fen: rank %d overflows", rank)
			}
			pos.put(RankFile(rank, file), pi)
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("fen: rank %d has %d files, want 8", rank, file)
		}
	}

	switch fields[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
		pos.Zobrist ^= ZobristColor[White] ^ ZobristColor[Black]
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	if err := parseCastleField(pos, fields[2]); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en-passant square %q: %w", fields[3], err)
		}
		pos.EnpassantSquare = sq
		pos.Zobrist ^= ZobristEnpassant[sq]
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q: %w", fields[4], err)
		}
		pos.Rule50 = uint8(n)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid fullmove number %q: %w", fields[5], err)
		}
		pos.Fullmove = n
	}

	return pos, nil
}

func parseCastleField(pos *Position, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range []byte(field) {
		switch c {
		case 'K':
			pos.Castle |= WhiteOO
		case 'Q':
			pos.Castle |= WhiteOOO
		case 'k':
			pos.Castle |= BlackOO
		case 'q':
			pos.Castle |= BlackOOO
		case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H':
			// Chess960: uppercase letter names the white rook's file.
			pos.setChess960Rook(White, int(c-'A'))
		case 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h':
			pos.setChess960Rook(Black, int(c-'a'))
		default:
			return fmt.Errorf("fen: invalid castling letter %q", c)
		}
	}
	for _, right := range [...]Castle{WhiteOO, WhiteOOO, BlackOO, BlackOOO} {
		if pos.Castle&right != 0 {
			pos.Zobrist ^= ZobristCastle[right]
		}
	}
	return nil
}

// setChess960Rook records which file a side's rook starts on and grants
// the matching castling right, inferring kingside/queenside from the
// rook's position relative to its king.
func (pos *Position) setChess960Rook(col Color, file int) {
	kingSq := pos.ByPiece(col, King)
	kf := 4
	if kingSq != 0 {
		kf = kingSq.AsSquare().File()
	}
	if file > kf {
		pos.rooks.kingSide[col] = file
		pos.Castle |= kingsideRight(col)
	} else {
		pos.rooks.queenSide[col] = file
		pos.Castle |= queensideRight(col)
	}
}

// FEN renders pos as a standard six-field FEN string.
func (pos *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pi := pos.PieceAt(RankFile(rank, file))
			if pi == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(symbolFromPiece[pi])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.SideToMove.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.Castle.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.EnpassantSquare.String())

	fmt.Fprintf(&sb, " %d %d", pos.Rule50, pos.Fullmove)
	return sb.String()
}
