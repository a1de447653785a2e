// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pv.go collects the principal variation during search in a triangular
// table, one row per ply, replacing the original hash-indexed pvTable
// (not kept; DESIGN.md records the change): a triangular table can't suffer
// a Zobrist collision and needs no position replay to read back, at the
// cost of O(MaxPly^2) moves of storage, which is negligible.

package engine

// triangularPV stores, for ply p, the best line found from p to the end
// of search: line[p][0:len[p]]. Row p's line always shares the tail of
// row p-1's.
type triangularPV struct {
	line [MaxPly][MaxPly]Move
	len  [MaxPly]int
}

// Clear resets every row's length, called once per iterative-deepening
// iteration.
func (t *triangularPV) Clear() {
	for i := range t.len {
		t.len[i] = 0
	}
}

// Update records m as the best move at ply and appends the continuation
// already found at ply+1, called on every new best move found at an
// exact node. One table is shared for the whole search; ply+1's row is
// always current by the time ply's call happens, since search unwinds
// depth-first.
func (t *triangularPV) Update(ply int, m Move) {
	t.line[ply][0] = m
	n := copy(t.line[ply][1:], t.line[ply+1][:t.len[ply+1]])
	t.len[ply] = n + 1
}

// Line returns the principal variation from the root.
func (t *triangularPV) Line() []Move {
	return append([]Move(nil), t.line[0][:t.len[0]]...)
}
