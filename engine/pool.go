// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pool.go drives the search: iterative deepening with aspiration
// windows on top of Worker.negamax, multi-PV by excluding already-
// reported root moves, and Lazy SMP — every helper worker runs the same
// iterative deepening independently, sharing only the transposition
// table, so a deeper helper's TT entries speed up the main worker's move
// ordering without any synchronization between them. No teacher
// equivalent: zurichess searched single-threaded, so this file's shape
// is grounded on the spec's thread-pool requirement instead, using the
// same Logger/Stats/Options contract the teacher's engine.go exposed.

package engine

import (
	"sort"
	"sync"
)

const initialAspirationWindow = 21

// Pool owns the shared transposition table and every search worker, and
// drives one Play() call end to end.
type Pool struct {
	Options Options
	Log     Logger

	tt      *HashTable
	workers []*Worker
	helperWG sync.WaitGroup
}

// NewPool allocates a pool of n workers (n>=1) sharing a hash table
// sized sizeMB megabytes.
func NewPool(n, sizeMB int, opts Options) *Pool {
	if n < 1 {
		n = 1
	}
	tt := NewHashTable(sizeMB)
	p := &Pool{Options: opts, Log: NulLogger{}, tt: tt}
	for i := 0; i < n; i++ {
		p.workers = append(p.workers, NewWorker(i, tt))
	}
	return p
}

// Forget clears the transposition table, for "ucinewgame".
func (p *Pool) Forget() { p.tt.Forget() }

// Resize reallocates the transposition table to sizeMB megabytes,
// discarding its contents.
func (p *Pool) Resize(sizeMB int) {
	p.tt = NewHashTable(sizeMB)
	for _, w := range p.workers {
		w.tt = p.tt
	}
}

// Hashfull reports the main table's per-mille occupancy.
func (p *Pool) Hashfull() int { return p.tt.Hashfull() }

// pvResult is one multi-PV line's outcome.
type pvResult struct {
	score int32
	line  []Move
}

// Play searches pos under tc and returns the best line found, moves[0]
// the move to play and moves[1] the move to ponder on. Time control
// must already be started. restrict, if non-empty, limits the root to
// those moves only (UCI's "go searchmoves").
func (p *Pool) Play(pos *Position, tc *TimeControl, restrict ...Move) (moves []Move) {
	p.Log.BeginSearch()
	p.tt.NewGeneration()

	multiPV := p.Options.MultiPV
	if multiPV < 1 {
		multiPV = 1
	}

	var restrictRoot map[Move]bool
	if len(restrict) > 0 {
		restrictRoot = make(map[Move]bool, len(restrict))
		for _, m := range restrict {
			restrictRoot[m] = true
		}
	}

	for _, w := range p.workers {
		w.rootPly = pos.Ply
		w.tc = tc
		w.stopped = false
		w.nodes.Store(0)
		w.selDepth = 0
		w.pv.Clear()
		w.restrictRoot = restrictRoot
		for m := range w.excludedRoot {
			delete(w.excludedRoot, m)
		}
	}

	main := p.workers[0]
	lines := make([]pvResult, 0, multiPV)
	estimated := int32(0)

	for depth := 1; depth < MaxPly-1 && tc.NextDepth(depth); depth++ {
		lines = lines[:0]
		stop := false
		for m := range main.excludedRoot {
			delete(main.excludedRoot, m)
		}

		for pvIndex := 0; pvIndex < multiPV; pvIndex++ {
			if p.helperCount() > 0 && pvIndex == 0 {
				p.startHelpers(pos, depth)
			}

			s := main.searchRoot(*pos, depth, estimated)
			if main.stopped {
				stop = true
			}
			line := main.pv.Line()
			if len(line) == 0 {
				line = []Move{main.lastBest()}
			}
			lines = append(lines, pvResult{score: s, line: line})
			if len(line) > 0 {
				main.excludedRoot[line[0]] = true
			}
			main.pv.Clear()

			if stop {
				break
			}
		}

		p.stopHelpers()
		if len(lines) == 0 {
			break
		}

		sort.SliceStable(lines, func(i, j int) bool { return lines[i].score > lines[j].score })
		for i, r := range lines {
			nodes := p.totalNodes()
			p.Log.PrintPV(Stats{Depth: int32(depth), SelDepth: main.selDepth, Nodes: nodes}, i+1, r.score, r.line)
		}

		moves = lines[0].line
		estimated = lines[0].score
		if stop {
			break
		}
	}

	p.Log.EndSearch()
	return moves
}

func (p *Pool) helperCount() int { return len(p.workers) - 1 }

func (p *Pool) totalNodes() uint64 {
	var n uint64
	for _, w := range p.workers {
		n += w.nodes.Load()
	}
	return n
}

// startHelpers launches every non-main worker on its own independent
// iterative deepening of the same root position and depth (Lazy SMP):
// they race the main worker, sharing only the transposition table.
func (p *Pool) startHelpers(pos *Position, depth int) {
	for _, w := range p.workers[1:] {
		w := w
		w.stopped = false
		p.helperWG.Add(1)
		go func() {
			defer p.helperWG.Done()
			w.searchRoot(*pos, depth, 0)
		}()
	}
}

func (p *Pool) stopHelpers() {
	for _, w := range p.workers[1:] {
		w.stopped = true
	}
	p.helperWG.Wait()
}

// searchRoot runs one iterative-deepening step at depth with an
// aspiration window centered on estimated, widening on fail-high/low,
// grounded on the teacher's search()'s gradual-widening loop.
func (w *Worker) searchRoot(pos Position, depth int, estimated int32) int32 {
	delta := int32(initialAspirationWindow)
	alpha, beta := estimated-delta, estimated+delta
	if depth < 4 {
		alpha, beta = -ScoreInf, ScoreInf
	} else {
		alpha = max32(alpha, -ScoreInf)
		beta = min32(beta, ScoreInf)
	}

	w.lastRootHash = pos.Zobrist
	score := estimated
	for !w.stopped {
		w.pv.Clear()
		score = w.negamax(pos, depth, alpha, beta, NullMove)
		if w.stopped {
			break
		}
		if score <= alpha {
			alpha = max32(alpha-delta, -ScoreInf)
			delta += delta / 2
		} else if score >= beta {
			beta = min32(beta+delta, ScoreInf)
			delta += delta / 2
		} else {
			break
		}
	}
	return score
}

// lastBest falls back to the hash move when the search stopped before
// ever raising alpha (possible under extreme time pressure at low
// depth), so Play never returns an empty line while legal moves exist.
func (w *Worker) lastBest() Move {
	if e, ok := w.tt.Load(w.lastRootHash, 0); ok {
		return e.Move
	}
	return NullMove
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
