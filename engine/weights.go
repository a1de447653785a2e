// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// weights.go holds the evaluation's tunable parameters. All numbers are
// tapered mid/end-game pairs, trained with the texel tuner in tuner/.
//
// Weights starts out holding the named groups' default values and grows
// as each group registers itself in init(), so the tuner (coach build)
// can append new feature groups (threats, king-zone attacks) without the
// array size being hardcoded anywhere.

package engine

import "fmt"

var (
	// Weights is every tunable evaluation parameter, flattened. In a
	// coach build Score.I is this slice's index, used to accumulate
	// Eval.Values for the tuner's gradient.
	Weights []Score

	// Named views into Weights, populated by init() below.
	wFigure      [FigureArraySize]Score
	wMobility    [FigureArraySize]Score
	wPawn        [SquareArraySize]Score
	wEndgamePawn Score

	wPassedPawn     [8]Score
	wPassedPawnKing [8]Score
	wFigureFile     [FigureArraySize][8]Score
	wFigureRank     [FigureArraySize][8]Score
	wKingAttack     [5]Score

	wBackwardPawn  Score
	wConnectedPawn [8]Score
	wDoublePawn    Score
	wIsolatedPawn  Score
	wPawnThreat    Score
	wKingShelter   Score

	wBishopPair         Score
	wRookOnOpenFile     Score
	wRookOnHalfOpenFile Score
	wQueenKingTropism   [8]Score

	// ThreatWeights[attacker][victim] scores a piece of figure attacker
	// attacking a piece of figure victim, supplementing the teacher's
	// table with a term it never scored.
	ThreatWeights [FigureArraySize][FigureArraySize]Score
	// KingZoneAttackWeights[fig] scores each attacker figure's
	// contribution to pressure on the enemy king zone, distinct from
	// wKingAttack's attacker-count curve.
	KingZoneAttackWeights [FigureArraySize]Score

	// FeatureNames names each entry of Weights, index for index. Only
	// meaningful once init() has run.
	FeatureNames []string

	// Futility figure bonus, derived from wFigure once weights are live.
	futilityFigureBonus [FigureArraySize]int32
)

// defaultFigureValues and defaultMobilityValues supply starting values
// for the two groups whose magnitude matters most to move ordering and
// pruning even before tuning; every other group starts at zero and is
// expected to be grown by the tuner.
func defaultFigureValues() [FigureArraySize]Score {
	return [FigureArraySize]Score{
		{M: 0, E: 0}, {M: 100, E: 120}, {M: 320, E: 330},
		{M: 330, E: 340}, {M: 500, E: 550}, {M: 975, E: 1000}, {M: 0, E: 0},
	}
}

func defaultMobilityValues() [FigureArraySize]Score {
	return [FigureArraySize]Score{
		{M: 0, E: 0}, {M: 2, E: 4}, {M: 4, E: 3},
		{M: 3, E: 3}, {M: 2, E: 4}, {M: 1, E: 3}, {M: 0, E: 0},
	}
}

// registerMany appends out's default values to Weights, assigning each
// entry its slot index (meaningful in a coach build, a no-op otherwise).
func registerMany(name string, out []Score) {
	start := len(Weights)
	for i := range out {
		setIndex(&out[i], start+i)
		Weights = append(Weights, out[i])
		FeatureNames = append(FeatureNames, fmt.Sprintf("%s.%d", name, i))
	}
}

func registerOne(name string, out *Score) {
	setIndex(out, len(Weights))
	Weights = append(Weights, *out)
	FeatureNames = append(FeatureNames, name)
}

func init() {
	initWeights()

	wFigure, wMobility = defaultFigureValues(), defaultMobilityValues()
	registerMany("Figure", wFigure[:])
	registerMany("Mobility", wMobility[:])
	registerMany("Pawn", wPawn[:])
	registerOne("EndgamePawn", &wEndgamePawn)
	registerMany("PassedPawn", wPassedPawn[:])
	registerMany("PassedPawnKing", wPassedPawnKing[:])
	for _, fig := range [...]Figure{Knight, Bishop, Rook, Queen, King} {
		registerMany(fmt.Sprintf("FigureFile[%d]", fig), wFigureFile[fig][:])
		registerMany(fmt.Sprintf("FigureRank[%d]", fig), wFigureRank[fig][:])
	}
	registerMany("KingAttack", wKingAttack[:])
	registerOne("BackwardPawn", &wBackwardPawn)
	registerMany("ConnectedPawn", wConnectedPawn[:])
	registerOne("DoublePawn", &wDoublePawn)
	registerOne("IsolatedPawn", &wIsolatedPawn)
	registerOne("PawnThreat", &wPawnThreat)
	registerOne("KingShelter", &wKingShelter)
	registerOne("BishopPair", &wBishopPair)
	registerOne("RookOnOpenFile", &wRookOnOpenFile)
	registerOne("RookOnHalfOpenFile", &wRookOnHalfOpenFile)
	registerMany("QueenKingTropism", wQueenKingTropism[:])
	for attacker := FigureMinValue; attacker <= FigureMaxValue; attacker++ {
		registerMany(fmt.Sprintf("Threat[%d]", attacker), ThreatWeights[attacker][:])
	}
	registerMany("KingZoneAttack", KingZoneAttackWeights[:])

	for i, w := range wFigure {
		futilityFigureBonus[i] = max(w.M, w.E)
	}
}
