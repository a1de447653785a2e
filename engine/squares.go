// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Named square constants, a1 == 0 through h8 == 63.
const (
	SquareA1 Square = 8*iota + 0
	SquareA2
	SquareA3
	SquareA4
	SquareA5
	SquareA6
	SquareA7
	SquareA8
)

const (
	SquareB1 Square = 8*iota + 1
	SquareB2
	SquareB3
	SquareB4
	SquareB5
	SquareB6
	SquareB7
	SquareB8
)

const (
	SquareC1 Square = 8*iota + 2
	SquareC2
	SquareC3
	SquareC4
	SquareC5
	SquareC6
	SquareC7
	SquareC8
)

const (
	SquareD1 Square = 8*iota + 3
	SquareD2
	SquareD3
	SquareD4
	SquareD5
	SquareD6
	SquareD7
	SquareD8
)

const (
	SquareE1 Square = 8*iota + 4
	SquareE2
	SquareE3
	SquareE4
	SquareE5
	SquareE6
	SquareE7
	SquareE8
)

const (
	SquareF1 Square = 8*iota + 5
	SquareF2
	SquareF3
	SquareF4
	SquareF5
	SquareF6
	SquareF7
	SquareF8
)

const (
	SquareG1 Square = 8*iota + 6
	SquareG2
	SquareG3
	SquareG4
	SquareG5
	SquareG6
	SquareG7
	SquareG8
)

const (
	SquareH1 Square = 8*iota + 7
	SquareH2
	SquareH3
	SquareH4
	SquareH5
	SquareH6
	SquareH7
	SquareH8
)

const (
	SquareMinValue  = SquareA1
	SquareMaxValue  = SquareH8
	SquareArraySize = int(SquareMaxValue) + 1
)

const (
	ColorMinValue = White
	ColorMaxValue = Black
)

const (
	CastleMinValue  = NoCastle
	CastleMaxValue  = AnyCastle
	CastleArraySize = int(AnyCastle) + 1
)

// PieceArraySize covers every (color, figure) pair plus NoPiece.
const PieceArraySize = int(NoPiece) + 1
