// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

// logLine is a test Logger that remembers the last line reported, so
// tests can assert on the move actually found without parsing UCI text.
type logLine struct {
	score int32
	pv    []Move
}

func (l *logLine) BeginSearch() {}
func (l *logLine) EndSearch()   {}
func (l *logLine) PrintPV(stats Stats, multiPVIndex int, score int32, pv []Move) {
	if multiPVIndex == 1 {
		l.score, l.pv = score, pv
	}
}

func TestPoolPlayReturnsALegalMoveFromStartpos(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(1, 4, Options{})
	tc := NewFixedDepthTimeControl(pos, 4)
	tc.Start(false)

	moves := pool.Play(pos, tc)
	if len(moves) == 0 {
		t.Fatal("expected at least one move")
	}
	if !pos.IsPseudoLegal(moves[0]) {
		t.Errorf("best move %v is not even pseudo-legal from the starting position", moves[0])
	}
}

func TestPoolPlayFindsMateInOne(t *testing.T) {
	// Back-rank mate: Ra8# is forced, the open rank giving check with
	// f8 and h8 both covered by the same rook.
	pos, err := PositionFromFEN("6k1/5ppp/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(1, 4, Options{})
	var log logLine
	pool.Log = &log
	tc := NewFixedDepthTimeControl(pos, 5)
	tc.Start(false)

	moves := pool.Play(pos, tc)
	if len(moves) == 0 {
		t.Fatal("expected a move")
	}
	want := MakeMove(Normal, SquareA1, SquareA8, NoFigure)
	if moves[0] != want {
		t.Errorf("expected the mating move %v, got %v (score %d)", want, moves[0], log.score)
	}
	if log.score < MinScoreWon {
		t.Errorf("expected a mate score to be reported, got %d", log.score)
	}
}

func TestPoolPlayFindsHangingQueenCapture(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/3q4/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(1, 4, Options{})
	tc := NewFixedDepthTimeControl(pos, 4)
	tc.Start(false)

	moves := pool.Play(pos, tc)
	if len(moves) == 0 {
		t.Fatal("expected a move")
	}
	want := MakeMove(Normal, SquareD1, SquareD5, NoFigure)
	if moves[0] != want {
		t.Errorf("expected Qxd5 (%v), got %v", want, moves[0])
	}
}

func TestWorkerNegamaxReturnsACentipawnScoreOnAQuietPosition(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	tt := NewHashTable(1)
	w := NewWorker(0, tt)
	w.tc = NewFixedDepthTimeControl(pos, 3)
	w.tc.Start(false)

	score := w.negamax(*pos, 3, -ScoreInf, ScoreInf, NullMove)
	if score <= -MinScoreWon || score >= MinScoreWon {
		t.Errorf("expected a centipawn score from the starting position, got %d", score)
	}
	if w.nodes.Load() == 0 {
		t.Errorf("expected negamax to visit at least one node")
	}
}

// multiPVLog remembers every multi-PV line's first move seen at the
// last depth reported, keyed by multiPVIndex.
type multiPVLog struct {
	firstMoves map[int]Move
}

func (l *multiPVLog) BeginSearch() {}
func (l *multiPVLog) EndSearch()   {}
func (l *multiPVLog) PrintPV(stats Stats, multiPVIndex int, score int32, pv []Move) {
	if l.firstMoves == nil {
		l.firstMoves = make(map[int]Move)
	}
	if len(pv) > 0 {
		l.firstMoves[multiPVIndex] = pv[0]
	}
}

func TestPoolMultiPVReportsDistinctLines(t *testing.T) {
	pos, err := PositionFromFEN(FENKiwipete)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(1, 4, Options{MultiPV: 2})
	log := &multiPVLog{}
	pool.Log = log
	tc := NewFixedDepthTimeControl(pos, 3)
	tc.Start(false)

	moves := pool.Play(pos, tc)
	if len(moves) == 0 {
		t.Fatal("expected a move")
	}
	if len(log.firstMoves) != 2 {
		t.Fatalf("expected two multi-PV lines reported, got %d", len(log.firstMoves))
	}
	if log.firstMoves[1] == log.firstMoves[2] {
		t.Errorf("expected the two multi-PV lines to start with different moves, both were %v", log.firstMoves[1])
	}
}

func TestPoolForgetClearsTheHashTable(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(1, 4, Options{})
	tc := NewFixedDepthTimeControl(pos, 3)
	tc.Start(false)
	pool.Play(pos, tc)

	if pool.Hashfull() == 0 {
		t.Fatal("expected the hash table to hold entries after a search")
	}
	pool.Forget()
	if pool.Hashfull() != 0 {
		t.Errorf("expected Forget to empty the hash table, got hashfull %d", pool.Hashfull())
	}
}

func TestPoolHelperWorkersDoNotPreventTermination(t *testing.T) {
	pos, err := PositionFromFEN(FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(4, 4, Options{})
	tc := NewFixedDepthTimeControl(pos, 4)
	tc.Start(false)

	moves := pool.Play(pos, tc)
	if len(moves) == 0 {
		t.Fatal("expected a move with helper workers running")
	}
}
