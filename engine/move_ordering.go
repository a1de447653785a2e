// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move_ordering.go generates and orders moves for a search worker in
// stages, many of which are skipped entirely on a beta cutoff: hash move,
// good captures (SEE >= 0, ordered by MVV/LVA + capture history), killer
// and counter moves, quiet moves (butterfly + continuation history), bad
// captures last.

package engine

type orderStage int

const (
	stageHash orderStage = iota
	stageGenCaptures
	stageGoodCaptures
	stageKillers
	stageGenQuiets
	stageQuiets
	stageBadCaptures
	stageDone
)

// moveOrderer drives staged move generation/ordering for one search
// node. One is kept per ply on the worker's stack.
type moveOrderer struct {
	pos    *Position
	hash   Move
	stage  orderStage
	onlyTactical bool

	captures    []Move
	capOrder    []int32
	badCaptures []Move
	badOrder    []int32
	quiets      []Move
	quietOrder  []int32

	killer1, killer2, counter Move
}

// reset prepares the orderer for a new node. hash is the transposition
// table move (NullMove if none); onlyTactical stops after the good
// captures; k1, k2 and counter are the killer and counter moves tried
// before the quiet moves.
func (mo *moveOrderer) reset(pos *Position, hash Move, onlyTactical bool, k1, k2, counter Move) {
	mo.pos = pos
	mo.hash = hash
	mo.stage = stageHash
	mo.onlyTactical = onlyTactical
	mo.killer1, mo.killer2, mo.counter = k1, k2, counter
	mo.captures = mo.captures[:0]
	mo.capOrder = mo.capOrder[:0]
	mo.badCaptures = mo.badCaptures[:0]
	mo.badOrder = mo.badOrder[:0]
	mo.quiets = mo.quiets[:0]
	mo.quietOrder = mo.quietOrder[:0]
}

// mvvlvaBonus approximates Most Valuable Victim / Least Valuable
// Aggressor ordering; scaled so even a bad-LVA good-MVV capture still
// sorts ahead of any quiet move.
var mvvlvaBonus = [FigureArraySize]int32{0, 100, 300, 330, 500, 900, 10000}

func mvvlva(pos *Position, m Move) int32 {
	victim := pos.PieceAt(m.To()).Figure()
	if m.MoveType() == Enpassant {
		victim = Pawn
	}
	attacker := pos.PieceAt(m.From()).Figure()
	return mvvlvaBonus[victim]*64 - mvvlvaBonus[attacker]
}

func isTactical(pos *Position, m Move) bool {
	return m.MoveType() == Promotion || m.MoveType() == Enpassant || pos.PieceAt(m.To()) != NoPiece
}

// Next returns the next move in ordering-stage order, or NullMove when
// exhausted. h is the worker's history state.
func (mo *moveOrderer) Next(h *workerHistory) Move {
	for {
		switch mo.stage {
		case stageHash:
			mo.stage = stageGenCaptures
			if mo.hash != NullMove && mo.pos.IsPseudoLegal(mo.hash) {
				return mo.hash
			}

		case stageGenCaptures:
			mo.stage = stageGoodCaptures
			var ml MoveList
			mo.pos.GenerateTactical(&ml)
			for _, m := range ml.Moves() {
				if m == mo.hash {
					continue
				}
				score := mvvlva(mo.pos, m)
				if mo.pos.SEESign(m) {
					mo.badCaptures = append(mo.badCaptures, m)
					mo.badOrder = append(mo.badOrder, score)
				} else {
					score += int32(h.capture.get(mo.pos, m))
					mo.captures = append(mo.captures, m)
					mo.capOrder = append(mo.capOrder, score)
				}
			}

		case stageGoodCaptures:
			if m, ok := popBest(&mo.captures, &mo.capOrder); ok {
				return m
			}
			mo.stage = stageKillers
			if mo.onlyTactical {
				mo.stage = stageDone
			}

		case stageKillers:
			mo.stage = stageGenQuiets
			for _, k := range [...]Move{mo.killer1, mo.killer2, mo.counter} {
				if k != NullMove && k != mo.hash && mo.pos.IsPseudoLegal(k) && !isTactical(mo.pos, k) {
					return k
				}
			}

		case stageGenQuiets:
			mo.stage = stageQuiets
			var ml MoveList
			mo.pos.GenerateMoves(&ml)
			for _, m := range ml.Moves() {
				if m == mo.hash || isTactical(mo.pos, m) || mo.isKiller(m) {
					continue
				}
				score := int32(h.butterfly.get(mo.pos, m))
				score += int32(h.continuation.get(h.contPrev, mo.pos, m))
				score += int32(h.continuation.get(h.contPrevPrev, mo.pos, m))
				mo.quiets = append(mo.quiets, m)
				mo.quietOrder = append(mo.quietOrder, score)
			}

		case stageQuiets:
			if m, ok := popBest(&mo.quiets, &mo.quietOrder); ok {
				return m
			}
			mo.stage = stageBadCaptures

		case stageBadCaptures:
			if m, ok := popBest(&mo.badCaptures, &mo.badOrder); ok {
				return m
			}
			mo.stage = stageDone

		case stageDone:
			return NullMove
		}
	}
}

func (mo *moveOrderer) isKiller(m Move) bool {
	return m == mo.killer1 || m == mo.killer2 || m == mo.counter
}

// popBest removes and returns the highest-scoring move from a
// parallel (moves, scores) pair, linear-scan style — move lists at one
// node are small enough (tens of entries) that this beats sorting
// upfront when most nodes cut off before exhausting the list.
func popBest(moves *[]Move, order *[]int32) (Move, bool) {
	if len(*moves) == 0 {
		return NullMove, false
	}
	best := 0
	for i := 1; i < len(*order); i++ {
		if (*order)[i] > (*order)[best] {
			best = i
		}
	}
	m := (*moves)[best]
	last := len(*moves) - 1
	(*moves)[best] = (*moves)[last]
	(*order)[best] = (*order)[last]
	*moves = (*moves)[:last]
	*order = (*order)[:last]
	return m, true
}

// workerHistory bundles one worker's history tables plus the two
// preceding moves' continuation keys, since continuation history is
// always consulted together with them.
type workerHistory struct {
	butterfly    butterflyHistory
	capture      captureHistory
	continuation *continuationHistory
	correction   *correctionHistory
	killers      killers

	prevMove, prevPrevMove Move
	contPrev, contPrevPrev continuationKey
}

// push records the move just played at this node, becoming "the previous
// move" for the child node's continuation/counter lookups. Callers call
// this on the child's workerHistory right after descending, and pop on
// the way back up.
func (h *workerHistory) push(pos *Position, m Move) (savedMove, savedPrevMove Move, savedKey, savedPrevKey continuationKey) {
	savedMove, savedPrevMove = h.prevMove, h.prevPrevMove
	savedKey, savedPrevKey = h.contPrev, h.contPrevPrev
	h.prevPrevMove, h.contPrevPrev = h.prevMove, h.contPrev
	h.prevMove = m
	if m == NullMove {
		h.contPrev = continuationKey{}
	} else {
		h.contPrev = moveContinuationKey(pos, m)
	}
	return
}

func (h *workerHistory) pop(savedMove, savedPrevMove Move, savedKey, savedPrevKey continuationKey) {
	h.prevMove, h.prevPrevMove = savedMove, savedPrevMove
	h.contPrev, h.contPrevPrev = savedKey, savedPrevKey
}

func newWorkerHistory() *workerHistory {
	return &workerHistory{
		continuation: newContinuationHistory(),
		correction:   newCorrectionHistory(),
	}
}

// onCutoff applies the gravity bonus/malus to every move tried at this
// node on a beta cutoff: bonus to cutoff, matching malus to all earlier
// tried moves, split by quiet vs capture.
func (h *workerHistory) onCutoff(pos *Position, cutoff Move, tried []Move, depth int) {
	bonus := clampBonus(depth)
	if isTactical(pos, cutoff) {
		h.capture.update(pos, cutoff, bonus)
	} else {
		h.butterfly.update(pos, cutoff, bonus)
		h.continuation.update(h.contPrev, pos, cutoff, bonus)
		h.continuation.update(h.contPrevPrev, pos, cutoff, bonus)
		h.killers.Update(pos.Ply, cutoff)
		h.killers.SetCounterMove(pos, h.prevMove, cutoff)
	}
	for _, m := range tried {
		if m == cutoff {
			continue
		}
		if isTactical(pos, m) {
			h.capture.update(pos, m, -bonus)
		} else {
			h.butterfly.update(pos, m, -bonus)
			h.continuation.update(h.contPrev, pos, m, -bonus)
			h.continuation.update(h.contPrevPrev, pos, m, -bonus)
		}
	}
}

