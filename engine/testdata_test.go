// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// FENStartPos is the standard starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENKiwipete is a classic perft/move-generation stress position,
// chosen for exercising castling, en passant and promotions together.
const FENKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// testFENs is a small, varied sample of positions (opening, middlegame,
// endgame, heavy tactics) used by tests that sweep over many positions
// rather than asserting on one.
var testFENs = []string{
	FENStartPos,
	FENKiwipete,
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"8/8/8/8/8/4k3/4p3/4K3 w - - 0 1",
	"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
}
