// +build !coach

package engine

// Score represents a pair of mid and end game scores.
type Score struct {
	M, E int32 // mid game, end game
}

// Eval accumulates a position's tapered score one term at a time.
type Eval struct {
	M, E  int32 // mid game, end game
	Phase int32
}

func (e *Eval) Make(pos *Position) {
	e.M, e.E = 0, 0
	e.Phase = phase(pos)
}

func (e *Eval) Feed() int32 {
	return taper(e.M, e.E, e.Phase)
}

func (e *Eval) Add(s Score) {
	e.M += s.M
	e.E += s.E
}

func (e *Eval) AddN(s Score, n int32) {
	e.M += s.M * n
	e.E += s.E * n
}

func (e *Eval) Neg() {
	e.M = -e.M
	e.E = -e.E
}

// newSideEval starts a fresh per-side accumulator. Outside a coach
// build there is no trace to propagate.
func newSideEval(e *Eval) Eval { return Eval{} }

// mergeSide folds a side's contribution into e, sign flipping Black's.
func mergeSide(e *Eval, side *Eval, sign int32) {
	e.M += sign * side.M
	e.E += sign * side.E
}

// setIndex is a no-op outside a coach build, where Score carries no
// feature index to track.
func setIndex(s *Score, i int) {}

var pawnsCache [ColorArraySize]pawnTable

// evaluatePawnsCached adds us's pawn-structure score to eval,
// using the pawn hash table when the same pawn skeleton was seen before.
func evaluatePawnsCached(pos *Position, us Color, eval *Eval) {
	ours := pos.ByPiece(us, Pawn)
	theirs := pos.ByPiece(us.Opposite(), Pawn)
	if s, ok := pawnsCache[us].get(ours, theirs); ok {
		eval.M += s.M
		eval.E += s.E
		return
	}

	var tmp Eval
	evaluatePawns(pos, us, &tmp)
	pawnsCache[us].put(ours, theirs, Score{tmp.M, tmp.E})
	eval.M += tmp.M
	eval.E += tmp.E
}

func initWeights() {}
