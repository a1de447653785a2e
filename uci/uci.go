// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uci implements the UCI/UGI command protocol described at
// http://wbec-ridderkerk.nl/html/UCIProtocol.html, driving an
// engine.Pool instead of zurichess's single-threaded Engine.
package uci

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nullmove/caps/config"
	"github.com/nullmove/caps/engine"
)

// ErrQuit is returned by Execute on "quit".
var ErrQuit = errors.New("quit")

const maxMultiPV = 256

// uciLogger renders search progress in UCI's "info" line format,
// buffering each info line and writing it to stdout with a single Write.
type uciLogger struct {
	start time.Time
	buf   bytes.Buffer
	pool  *engine.Pool
}

func (ul *uciLogger) BeginSearch() {
	ul.start = time.Now()
	ul.buf.Reset()
}

func (ul *uciLogger) EndSearch() {
	ul.flush()
}

func (ul *uciLogger) PrintPV(stats engine.Stats, multiPV int, score int32, pv []engine.Move) {
	now := time.Now()
	fmt.Fprintf(&ul.buf, "info depth %d seldepth %d multipv %d ", stats.Depth, stats.SelDepth, multiPV)

	switch {
	case score >= engine.MinScoreWon:
		mateIn := (engine.ScoreWon - score + 1) / 2
		fmt.Fprintf(&ul.buf, "score mate %d ", mateIn)
	case score <= -engine.MinScoreWon:
		mateIn := (engine.ScoreWon + score + 1) / 2
		fmt.Fprintf(&ul.buf, "score mate %d ", -mateIn)
	default:
		fmt.Fprintf(&ul.buf, "score cp %d ", score)
	}

	elapsed := maxDuration(now.Sub(ul.start), time.Microsecond)
	millis := uint64(elapsed / time.Millisecond)
	nps := stats.Nodes * uint64(time.Second) / uint64(elapsed)
	hashfull := 0
	if ul.pool != nil {
		hashfull = ul.pool.Hashfull()
	}
	fmt.Fprintf(&ul.buf, "nodes %d time %d nps %d hashfull %d ", stats.Nodes, millis, nps, hashfull)

	fmt.Fprintf(&ul.buf, "pv")
	for _, m := range pv {
		fmt.Fprintf(&ul.buf, " %v", m.UCI())
	}
	fmt.Fprintf(&ul.buf, "\n")
	ul.flush()
}

func (ul *uciLogger) flush() {
	os.Stdout.Write(ul.buf.Bytes())
	ul.buf.Reset()
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

// UCI drives one engine.Pool over repeated position/go cycles.
type UCI struct {
	log  *uciLogger
	pool *engine.Pool
	pos  engine.Position

	hashMB  int
	threads int
	ponder  bool
	overhead time.Duration
	opponent string

	tc *engine.TimeControl

	// buffer of 1; filled while the engine is busy with position/go.
	idle chan struct{}
	// buffer of 1; filled while pondering, so ponderhit/stop can drain it.
	pondering chan struct{}
	rootMoves []engine.Move
}

// New builds a UCI front end seeded from cfg's defaults.
func New(cfg config.Config) *UCI {
	log := &uciLogger{}
	pool := engine.NewPool(cfg.Threads, cfg.Hash, engine.Options{MultiPV: cfg.MultiPV})
	pool.Log = log
	log.pool = pool

	pos, err := engine.PositionFromFEN(engine.StartFEN)
	if err != nil {
		panic(err) // StartFEN is a constant, this can't happen.
	}

	return &UCI{
		log:      log,
		pool:     pool,
		pos:      *pos,
		hashMB:   cfg.Hash,
		threads:  cfg.Threads,
		ponder:   cfg.Ponder,
		overhead: cfg.Overhead(),
		idle:     make(chan struct{}, 1),
		pondering: make(chan struct{}, 1),
	}
}

var reCmd = regexp.MustCompile(`^[[:word:]]+\b`)

// Execute dispatches one input line. ErrQuit signals a clean exit.
func (u *UCI) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	cmd := reCmd.FindString(line)
	if cmd == "" {
		return fmt.Errorf("invalid command line")
	}

	// These do not require the engine to be idle.
	switch cmd {
	case "isready":
		return u.isready()
	case "quit":
		return ErrQuit
	case "stop":
		return u.stop()
	case "uci", "ugi":
		return u.identify()
	case "ponderhit":
		return u.ponderhit()
	}

	// Everything else needs a quiescent engine.
	u.idle <- struct{}{}
	<-u.idle

	switch cmd {
	case "ucinewgame":
		return u.ucinewgame()
	case "position":
		return u.position(line)
	case "go":
		return u.go_(line)
	case "setoption":
		return u.setoption(line)
	default:
		return fmt.Errorf("unhandled command %s", cmd)
	}
}

func (u *UCI) identify() error {
	fmt.Println("id name caps")
	fmt.Println("id author nullmove")
	fmt.Println()
	fmt.Printf("option name Hash type spin default %d min 0 max 10000000\n", u.hashMB)
	fmt.Printf("option name Threads type spin default %d min 1 max 512\n", u.threads)
	fmt.Printf("option name MultiPV type spin default %d min 1 max %d\n", u.pool.Options.MultiPV, maxMultiPV)
	fmt.Printf("option name Ponder type check default %v\n", u.ponder)
	fmt.Printf("option name MoveOverhead type spin default %d min 0 max 10000\n", u.overhead.Milliseconds())
	fmt.Println("option name UCI_Opponent type string default <empty>")
	fmt.Println("uciok")
	return nil
}

func (u *UCI) isready() error {
	fmt.Println("readyok")
	return nil
}

func (u *UCI) ucinewgame() error {
	u.pool.Forget()
	return nil
}

func (u *UCI) position(line string) error {
	args := strings.Fields(line)[1:]
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	var pos *engine.Position
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		pos, err = engine.PositionFromFEN(engine.StartFEN)
		i = 1
	case "fen":
		i = 1
		for i < len(args) && args[i] != "moves" {
			i++
		}
		pos, err = engine.PositionFromFEN(strings.Join(args[1:i], " "))
	default:
		err = fmt.Errorf("unknown position command: %s", args[0])
	}
	if err != nil {
		return err
	}
	u.pos = *pos

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("expected 'moves', got '%s'", args[i])
		}
		for _, s := range args[i+1:] {
			m, ok := u.pos.UCIToMove(s)
			if !ok {
				return fmt.Errorf("illegal move %s", s)
			}
			next, ok := u.pos.MakeMove(m)
			if !ok {
				return fmt.Errorf("illegal move %s", s)
			}
			u.pos = next
		}
	}
	return nil
}

var validGoCommands = map[string]bool{
	"searchmoves": true, "ponder": true, "wtime": true, "btime": true,
	"winc": true, "binc": true, "movestogo": true, "depth": true,
	"nodes": true, "mate": true, "movetime": true, "infinite": true,
}

func (u *UCI) go_(line string) error {
	tc := engine.NewTimeControl(&u.pos)
	u.rootMoves = u.rootMoves[:0]
	ponderRequested := false

	args := strings.Fields(line)[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "searchmoves":
			for j := i + 1; j < len(args) && !validGoCommands[args[j]]; j++ {
				m, ok := u.pos.UCIToMove(args[j])
				if !ok {
					return fmt.Errorf("illegal searchmoves entry %s", args[j])
				}
				i++
				u.rootMoves = append(u.rootMoves, m)
			}
		case "ponder":
			ponderRequested = true
		case "infinite":
			tc.Depth = engine.MaxPly - 2
		case "wtime":
			i++
			ms, _ := strconv.Atoi(args[i])
			tc.WTime = time.Duration(ms) * time.Millisecond
		case "winc":
			i++
			ms, _ := strconv.Atoi(args[i])
			tc.WInc = time.Duration(ms) * time.Millisecond
		case "btime":
			i++
			ms, _ := strconv.Atoi(args[i])
			tc.BTime = time.Duration(ms) * time.Millisecond
		case "binc":
			i++
			ms, _ := strconv.Atoi(args[i])
			tc.BInc = time.Duration(ms) * time.Millisecond
		case "movestogo":
			i++
			n, _ := strconv.Atoi(args[i])
			tc.MovesToGo = n
		case "movetime":
			i++
			ms, _ := strconv.Atoi(args[i])
			tc.WTime = time.Duration(ms) * time.Millisecond
			tc.WInc = 0
			tc.BTime = time.Duration(ms) * time.Millisecond
			tc.BInc = 0
			tc.MovesToGo = 1
		case "depth":
			i++
			d, _ := strconv.Atoi(args[i])
			tc.Depth = d
		case "nodes", "mate":
			fmt.Printf("info string %s limit not supported, ignoring\n", args[i])
			i++
		default:
			return fmt.Errorf("invalid go command %s", args[i])
		}
	}

	// Reserve the configured overhead against clock lag.
	if tc.WTime > u.overhead {
		tc.WTime -= u.overhead
	}
	if tc.BTime > u.overhead {
		tc.BTime -= u.overhead
	}

	if ponderRequested {
		u.pondering <- struct{}{}
	}

	tc.Start(ponderRequested)
	u.tc = tc
	u.idle <- struct{}{}
	go u.play()
	return nil
}

func (u *UCI) ponderhit() error {
	if u.tc != nil {
		u.tc.PonderHit()
	}
	<-u.pondering
	return nil
}

func (u *UCI) stop() error {
	if u.tc != nil {
		u.tc.Stop()
	}
	select {
	case <-u.pondering:
	default:
	}
	u.idle <- struct{}{}
	<-u.idle
	return nil
}

// play runs one search to completion and prints bestmove. Must run in
// its own goroutine; go_ hands it the idle token to release on exit.
func (u *UCI) play() {
	moves := u.pool.Play(&u.pos, u.tc, u.rootMoves...)

	// If pondering was requested this blocks until ponderhit/stop drains it.
	u.pondering <- struct{}{}
	<-u.pondering

	switch len(moves) {
	case 0:
		fmt.Println("bestmove (none)")
	case 1:
		fmt.Printf("bestmove %v\n", moves[0].UCI())
	default:
		fmt.Printf("bestmove %v ponder %v\n", moves[0].UCI(), moves[1].UCI())
	}

	<-u.idle
}

var reOption = regexp.MustCompile(`^setoption\s+name\s+(.+?)(\s+value\s+(.*))?$`)

func (u *UCI) setoption(line string) error {
	m := reOption.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("invalid setoption arguments")
	}

	switch m[1] {
	case "Clear Hash":
		u.pool.Forget()
		return nil
	}

	if len(m) < 3 || m[3] == "" {
		return fmt.Errorf("missing setoption value for %s", m[1])
	}
	value := m[3]

	switch m[1] {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		u.hashMB = mb
		u.pool.Resize(mb)
		return nil
	case "Threads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if n < 1 {
			return fmt.Errorf("Threads must be at least 1")
		}
		u.threads = n
		opts := u.pool.Options
		u.pool = engine.NewPool(n, u.hashMB, opts)
		u.pool.Log = u.log
		u.log.pool = u.pool
		return nil
	case "MultiPV":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if n < 1 || n > maxMultiPV {
			return fmt.Errorf("MultiPV must be between 1 and %d", maxMultiPV)
		}
		u.pool.Options.MultiPV = n
		return nil
	case "Ponder":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		u.ponder = b
		return nil
	case "MoveOverhead":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		u.overhead = time.Duration(ms) * time.Millisecond
		return nil
	case "UCI_Opponent":
		u.opponent = value
		return nil
	default:
		return fmt.Errorf("unhandled option %s", m[1])
	}
}
