// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go implements one worker's iterative-deepening, principal
// variation search over the position tree: aspiration windows, null
// move pruning, reverse futility pruning, late move reductions, mate
// distance pruning, quiescence search and history-driven move ordering.
// Grounded on the teacher's searchTree/tryMove/search/Play quartet in
// the original engine.go, restructured around copy-make Position values
// instead of a DoMove/UndoMove undo stack, and around the new packed
// Move and multi-table history types.

package engine

import "sync/atomic"

const (
	checkDepthExtension = 1
	nullMoveDepthLimit  = 2
	lmrDepthLimit       = 3
	rfpDepthLimit       = 8
	rfpMarginPerDepth   = 80
	futilityMargin      = 100
	checkpointNodes     = 2048
)

// Options carries user-visible search knobs, mirroring the teacher's
// Options but extended with the spec's multi-PV count.
type Options struct {
	AnalyseMode bool
	MultiPV     int
}

// Stats reports progress for one iterative-deepening depth.
type Stats struct {
	Depth     int32
	SelDepth  int32
	Nodes     uint64
	CacheHit  uint64
	CacheMiss uint64
}

// Logger is told about search progress, matching the teacher's Logger
// interface so a UCI front end can drive the same hooks.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, multiPVIndex int, score int32, pv []Move)
}

// NulLogger discards every callback.
type NulLogger struct{}

func (NulLogger) BeginSearch() {}
func (NulLogger) EndSearch()   {}
func (NulLogger) PrintPV(stats Stats, multiPVIndex int, score int32, pv []Move) {
}

// searchStackEntry is kept once per ply, for information that must
// survive the recursive descent: the static eval (for futility margins
// and the correction-history error signal) and whether the side to move
// is in check.
type searchStackEntry struct {
	staticEval int32
	inCheck    bool
}

// Worker searches one line of play. Many workers share one *HashTable
// and race harmlessly on it (Lazy SMP): each has its own history
// tables, move orderers, node counter and PV, but all read/write the
// same transposition table, so a deeper worker's findings help a
// shallower one's move ordering.
type Worker struct {
	id   int
	tt   *HashTable
	hist *workerHistory
	pv   triangularPV

	stack [MaxPly]searchStackEntry
	mo    [MaxPly]moveOrderer

	nodes        atomic.Uint64
	selDepth     int32
	rootPly      int
	lastRootHash uint64

	tc      *TimeControl
	stopped bool

	// excludedRoot holds root moves already reported by an earlier
	// multi-PV line, so the next line searches the rest of the list.
	excludedRoot map[Move]bool

	// restrictRoot, when non-nil, is the only set of root moves worth
	// searching (UCI's "go searchmoves"). Nil means no restriction.
	restrictRoot map[Move]bool
}

// NewWorker returns a worker sharing tt, ready to search.
func NewWorker(id int, tt *HashTable) *Worker {
	return &Worker{id: id, tt: tt, hist: newWorkerHistory(), excludedRoot: make(map[Move]bool)}
}

func (w *Worker) ply(pos *Position) int { return pos.Ply - w.rootPly }

func (w *Worker) checkTime() {
	if w.stopped {
		return
	}
	if w.nodes.Load()%checkpointNodes == 0 && w.tc.Stopped() {
		w.stopped = true
	}
}

// Score returns the static evaluation from the side to move's point of
// view, nudged by the worker's correction history.
func (w *Worker) Score(pos *Position) int32 {
	s := Evaluate(pos)
	if pos.Us() == Black {
		s = -s
	}
	s += w.hist.correction.Correction(pos, w.hist.prevMove, w.hist.contPrev)
	return s
}

func (w *Worker) endPosition(pos *Position) (int32, bool) {
	if pos.ByFigure[King]&pos.ByColor[White] == 0 || pos.ByFigure[King]&pos.ByColor[Black] == 0 {
		return 0, true
	}
	if pos.Rule50 >= 100 {
		return 0, true
	}
	return 0, false
}

// quiescence resolves captures and promotions (every move when in check)
// until the position is quiet. Fail-soft: the returned score may lie outside [alpha, beta].
func (w *Worker) quiescence(pos Position, alpha, beta int32) int32 {
	w.nodes.Add(1)
	w.checkTime()
	if w.stopped {
		return alpha
	}
	if score, done := w.endPosition(&pos); done {
		return score
	}

	static := w.Score(&pos)
	best := static
	if static >= beta {
		return static
	}
	if static > alpha {
		alpha = static
	}

	inCheck := pos.InCheck(pos.Us())
	var ml MoveList
	if inCheck {
		pos.GenerateMoves(&ml)
	} else {
		pos.GenerateTactical(&ml)
	}

	for _, m := range ml.Moves() {
		if !inCheck {
			if m.MoveType() != Promotion && pos.SEESign(m) {
				continue
			}
			capFig := pos.PieceAt(m.To()).Figure()
			if m.MoveType() == Enpassant {
				capFig = Pawn
			}
			if m.MoveType() != Promotion && static+futilityFigureBonus[capFig]+futilityMargin < alpha {
				continue
			}
		}
		child, ok := pos.MakeMove(m)
		if !ok {
			continue
		}
		score := -w.quiescence(child, -beta, -alpha)
		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// negamax is the main alpha-beta tree, fail-soft.
func (w *Worker) negamax(pos Position, depth int, alpha, beta int32, excluded Move) int32 {
	w.nodes.Add(1)
	w.checkTime()
	if w.stopped {
		return alpha
	}

	ply := w.ply(&pos)
	if ply > int(w.selDepth) {
		w.selDepth = int32(ply)
	}
	pvNode := beta-alpha > 1
	if ply >= MaxPly-1 {
		return w.Score(&pos)
	}
	if ply > 0 {
		if score, done := w.endPosition(&pos); done {
			return score
		}
		if mateAlpha := -ScoreWon + int32(ply); mateAlpha > alpha {
			alpha = mateAlpha
		}
		if mateBeta := ScoreWon - int32(ply); mateBeta < beta {
			beta = mateBeta
		}
		if alpha >= beta {
			return alpha
		}
	}

	if depth <= 0 {
		return w.quiescence(pos, alpha, beta)
	}

	us := pos.Us()
	inCheck := pos.InCheck(us)

	var ttMove Move
	if excluded == NullMove {
		if e, ok := w.tt.Load(pos.Zobrist, ply); ok {
			ttMove = e.Move
			ttScore := int32(e.Score)
			if int(e.Depth) >= depth && !pvNode {
				switch {
				case e.Bound == ExactBound:
					return ttScore
				case e.Bound == LowerBound && ttScore >= beta:
					return ttScore
				case e.Bound == UpperBound && ttScore <= alpha:
					return ttScore
				}
			}
		}
	}

	static := w.Score(&pos)
	w.stack[ply] = searchStackEntry{staticEval: static, inCheck: inCheck}

	// Reverse futility / static null move pruning: far above beta on the
	// static eval, a quiet move isn't going to change that.
	if !pvNode && !inCheck && excluded == NullMove && depth <= rfpDepthLimit &&
		beta > -MinScoreWon && beta < MinScoreWon &&
		static-int32(depth)*rfpMarginPerDepth >= beta {
		return static
	}

	// Null move pruning.
	if !pvNode && !inCheck && excluded == NullMove && depth > nullMoveDepthLimit &&
		static >= beta && hasNonPawnMaterial(&pos, us) {
		if child, ok := pos.MakeNullMove(); ok {
			sm, spm, sk, spk := w.hist.push(&pos, NullMove)
			reduction := 2 + depth/4
			score := -w.negamax(child, depth-1-reduction, -beta, -beta+1, NullMove)
			w.hist.pop(sm, spm, sk, spk)
			if score >= beta && score < MinScoreWon {
				return score
			}
		}
	}

	mo := &w.mo[ply]
	k1, k2 := w.hist.killers.Get(ply)
	counter := w.hist.killers.CounterMove(&pos, w.hist.prevMove)
	mo.reset(&pos, ttMove, false, k1, k2, counter)

	origAlpha := alpha
	bestMove, bestScore := NullMove, int32(-ScoreInf)
	var tried []Move
	numMoves := 0

	for {
		m := mo.Next(w.hist)
		if m == NullMove {
			break
		}
		if m == excluded {
			continue
		}
		if ply == 0 && w.excludedRoot[m] {
			continue
		}
		if ply == 0 && w.restrictRoot != nil && !w.restrictRoot[m] {
			continue
		}

		child, ok := pos.MakeMove(m)
		if !ok {
			continue
		}
		numMoves++
		tried = append(tried, m)

		givesCheck := child.InCheck(child.Us())
		newDepth := depth
		if givesCheck {
			newDepth += checkDepthExtension
		}

		isQuiet := !isTactical(&pos, m)
		reduction := 0
		if depth > lmrDepthLimit && !inCheck && !givesCheck && isQuiet && numMoves > 1 {
			reduction = lmrReduction(depth, numMoves)
			if pvNode && reduction > 0 {
				reduction--
			}
			if reduction > newDepth-1 {
				reduction = newDepth - 1
			}
			if reduction < 0 {
				reduction = 0
			}
		}

		sm, spm, sk, spk := w.hist.push(&pos, m)
		var score int32
		if numMoves == 1 {
			score = -w.negamax(child, newDepth-1, -beta, -alpha, NullMove)
		} else {
			score = -w.negamax(child, newDepth-1-reduction, -alpha-1, -alpha, NullMove)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -w.negamax(child, newDepth-1, -beta, -alpha, NullMove)
			}
		}
		w.hist.pop(sm, spm, sk, spk)

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				if pvNode {
					w.pv.Update(ply, m)
				}
			}
		}
		if alpha >= beta {
			w.hist.onCutoff(&pos, m, tried, depth)
			break
		}
	}

	if numMoves == 0 {
		if excluded != NullMove {
			// Singular-extension probe found no alternative: signal the
			// caller by returning the window floor rather than a mate.
			return alpha
		}
		if inCheck {
			return -ScoreWon + int32(ply)
		}
		return 0
	}

	w.hist.correction.Update(&pos, w.hist.prevMove, w.hist.contPrev, depth, bestScore-static)

	if excluded == NullMove {
		bound := ExactBound
		switch {
		case bestScore >= beta:
			bound = LowerBound
		case bestScore <= origAlpha:
			bound = UpperBound
		}
		w.tt.Store(pos.Zobrist, TTEntry{Move: bestMove, Score: int16(clampScore(bestScore)), Depth: int8(depth), Bound: bound}, ply)
	}

	return bestScore
}

func clampScore(s int32) int32 {
	if s > ScoreInf {
		return ScoreInf
	}
	if s < -ScoreInf {
		return -ScoreInf
	}
	return s
}

// hasNonPawnMaterial reports whether us has a piece besides pawns and
// king, the condition under which null move pruning is sound (otherwise
// zugzwang can break the null-move assumption).
func hasNonPawnMaterial(pos *Position, us Color) bool {
	return pos.ByColor[us]&^(pos.ByFigure[Pawn]|pos.ByFigure[King]) != 0
}

// lmrReduction shapes a late-move reduction from depth and how far down
// the ordered move list we are: roughly log(depth)*log(moveNumber),
// scaled so reductions grow gently with both.
func lmrReduction(depth, moveNumber int) int {
	d, n := ln(depth), ln(moveNumber)
	r := 0.2 + d*n/2.4
	if r < 0 {
		return 0
	}
	return int(r)
}

// ln is a coarse natural log, good enough for LMR shaping, avoiding a
// math.Log import on a hot path.
func ln(n int) float64 {
	if n < 1 {
		n = 1
	}
	x := float64(n)
	r := 0.0
	for x >= 2 {
		x /= 2
		r += 0.6931471805599453
	}
	r += (x - 1) - (x-1)*(x-1)/2
	return r
}
