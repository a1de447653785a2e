// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build coach

// Package tuner implements a texel-style evaluation tuner: it loads a
// corpus of labelled positions, traces each one through the coach
// build's evaluation to get a sparse feature count vector, and adjusts
// engine.Weights by gradient descent against the game outcomes.
package tuner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nullmove/caps/engine"
)

// Sample is one labelled position, reduced to exactly what the gradient
// needs: how many times each weight's feature fired (Values, index
// aligned with engine.Weights), the game phase it fired at, and the
// game's outcome from White's point of view.
type Sample struct {
	Values  []int32
	Phase   int32
	Outcome float64
}

// wdlTokens maps the result tokens found in PGN-derived EPD corpora to a
// White-relative outcome, longest prefixes first so "1/2-1/2" is not
// mistaken for a partial match of "1-0".
var wdlTokens = []struct {
	prefix string
	value  float64
}{
	{"1/2-1/2", 0.5},
	{"0.5-0.5", 0.5},
	{"0-1", 0.0},
	{"1-0", 1.0},
}

// parseOutcome recognises a PGN result token or a bare float in [0, 1].
func parseOutcome(tok string) (float64, bool) {
	tok = strings.Trim(tok, "\"'[](){}; \t")
	for _, e := range wdlTokens {
		if strings.HasPrefix(tok, e.prefix) {
			return e.value, true
		}
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil && f >= 0 && f <= 1 {
		return f, true
	}
	return 0, false
}

// sampleFromPosition traces pos and pairs the trace with outcome,
// skipping positions that give the gradient nothing useful: those with
// no legal moves at all (mate and stalemate scores don't belong to a
// tapered material model) and those in check (the static eval is
// unreliable: a forced reply dominates). Positions with captures still
// pending are accepted.
func sampleFromPosition(pos *engine.Position, outcome float64) (Sample, bool) {
	var ml engine.MoveList
	pos.GenerateMoves(&ml)
	if ml.Len() == 0 {
		return Sample{}, false
	}
	if pos.InCheck(pos.Us()) {
		return Sample{}, false
	}

	e := engine.EvaluateTrace(pos)
	return Sample{Values: e.Values, Phase: e.Phase, Outcome: outcome}, true
}

// loadLine parses one line of the corpus. Two shapes are accepted:
//
//	<fen fields...> c9 "1-0";          (EPD, texel-tuner convention)
//	<fen fields...> 1-0                (bare FEN plus a trailing result)
func loadLine(line string) (Sample, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Sample{}, false, nil
	}

	if epd, err := engine.ParseEPD(line); err == nil {
		if tag, ok := epd.Comment["c9"]; ok {
			if v, ok := parseOutcome(tag); ok {
				s, ok := sampleFromPosition(epd.Position, v)
				return s, ok, nil
			}
		}
		if tag, ok := epd.Comment["result"]; ok {
			if v, ok := parseOutcome(tag); ok {
				s, ok := sampleFromPosition(epd.Position, v)
				return s, ok, nil
			}
		}
	}

	fields := strings.Fields(line)
	if len(fields) < 5 {
		return Sample{}, false, fmt.Errorf("tuner: cannot find a result token in %q", line)
	}
	v, ok := parseOutcome(fields[len(fields)-1])
	if !ok {
		return Sample{}, false, fmt.Errorf("tuner: invalid result token %q", fields[len(fields)-1])
	}
	pos, err := engine.PositionFromFEN(strings.Join(fields[:len(fields)-1], " "))
	if err != nil {
		return Sample{}, false, fmt.Errorf("tuner: invalid FEN in %q: %v", line, err)
	}
	s, ok := sampleFromPosition(pos, v)
	return s, ok, nil
}

// LoadDataset reads one sample per line from r, discarding lines that
// fail the in-check/no-moves filter but failing outright on a line that
// cannot be parsed at all.
func LoadDataset(r io.Reader) ([]Sample, error) {
	var samples []Sample
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		s, ok, err := loadLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if ok {
			samples = append(samples, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}
