// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// config loads the engine's startup defaults from a TOML file, mirroring
// the UCI options a GUI can later override with setoption: Hash size,
// worker count, MultiPV, pondering and move overhead.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every option the UCI front end exposes, before any
// setoption override.
type Config struct {
	Hash         int  `toml:"hash"`          // transposition table size, MiB
	Threads      int  `toml:"threads"`       // search worker count
	MultiPV      int  `toml:"multipv"`       // number of lines to report
	Ponder       bool `toml:"ponder"`        // permit pondering on the opponent's time
	MoveOverhead int  `toml:"move_overhead"` // milliseconds reserved against clock lag
}

// Default returns the engine's built-in defaults, used when no config
// file is given or a key is missing from it.
func Default() Config {
	return Config{
		Hash:         4,
		Threads:      1,
		MultiPV:      1,
		Ponder:       false,
		MoveOverhead: 50,
	}
}

// Load reads path as TOML over top of Default, so a config file may
// specify only the keys it wants to change.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Overhead returns MoveOverhead as a Duration.
func (c Config) Overhead() time.Duration {
	return time.Duration(c.MoveOverhead) * time.Millisecond
}
