// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// epd.go parses Extended Position Description lines: a FEN position (the
// halfmove clock and fullmove number fields are always omitted in EPD)
// followed by semicolon-terminated operations. Only "bm" (best move) and
// "id" are interpreted; unrecognized operations are kept verbatim in
// Comment for a caller that cares.

package engine

import (
	"fmt"
	"strings"
)

// EPD is one parsed EPD record.
type EPD struct {
	Position *Position
	Id       string
	BestMove []Move
	Comment  map[string]string
}

// ParseFEN parses a bare FEN string (no trailing operations) and returns
// an EPD wrapping just the position.
func ParseFEN(line string) (*EPD, error) {
	pos, err := PositionFromFEN(line)
	if err != nil {
		return nil, err
	}
	return &EPD{Position: pos, Comment: make(map[string]string)}, nil
}

// ParseEPD parses a full EPD record: four FEN fields followed by
// semicolon-separated "operator argument..." operations.
func ParseEPD(line string) (*EPD, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil, fmt.Errorf("epd: expected at least 4 fields, got %d", len(fields))
	}
	pos, err := PositionFromFEN(strings.Join(fields[:4], " "))
	if err != nil {
		return nil, err
	}
	epd := &EPD{Position: pos, Comment: make(map[string]string)}

	rest := strings.TrimSpace(strings.Join(fields[4:], " "))
	for _, op := range splitOperations(rest) {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		parts := strings.SplitN(op, " ", 2)
		operator := parts[0]
		args := ""
		if len(parts) > 1 {
			args = strings.TrimSpace(parts[1])
		}
		if err := epd.handleOperation(operator, args); err != nil {
			return nil, err
		}
	}
	return epd, nil
}

// splitOperations splits on ';', respecting quoted strings (an id or
// comment argument may itself contain a ';').
func splitOperations(s string) []string {
	var ops []string
	inQuote := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case ';':
			if !inQuote {
				ops = append(ops, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		ops = append(ops, s[start:])
	}
	return ops
}

func (epd *EPD) handleOperation(operator, args string) error {
	switch operator {
	case "id":
		epd.Id = strings.Trim(args, "\"")
	case "bm":
		for _, san := range strings.Fields(args) {
			m, err := epd.Position.SANToMove(san)
			if err != nil {
				return fmt.Errorf("epd: invalid best move %q: %v", san, err)
			}
			epd.BestMove = append(epd.BestMove, m)
		}
	default:
		epd.Comment[operator] = strings.Trim(args, "\"")
	}
	return nil
}

// String renders epd back as a FEN-plus-operations line, using the full
// six-field FEN (EPD strictly has no halfmove/fullmove fields, but
// round-tripping through Position.FEN keeps this simple and lossless).
func (epd *EPD) String() string {
	var sb strings.Builder
	sb.WriteString(epd.Position.FEN())
	for _, bm := range epd.BestMove {
		sb.WriteString(" bm ")
		sb.WriteString(epd.Position.SAN(bm))
		sb.WriteByte(';')
	}
	if epd.Id != "" {
		sb.WriteString(" id \"")
		sb.WriteString(epd.Id)
		sb.WriteString("\";")
	}
	for k, v := range epd.Comment {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(" \"")
		sb.WriteString(v)
		sb.WriteString("\";")
	}
	return sb.String()
}
