// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command caps is a UCI/UGI chess engine.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/nullmove/caps/config"
	"github.com/nullmove/caps/uci"
)

var (
	buildVersion = "(devel)"

	configPath = flag.String("config", "", "TOML file with engine defaults; unset uses built-in defaults")
	version    = flag.Bool("version", false, "only print version and exit")
)

func main() {
	fmt.Printf("caps %v, build with %v, running on %v\n", buildVersion, runtime.Version(), runtime.GOARCH)

	flag.Parse()
	if *version {
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalln("cannot load --config:", err)
		}
	}

	log.SetOutput(os.Stdout)
	log.SetPrefix("info string ")
	log.SetFlags(0)

	front := uci.New(cfg)
	bio := bufio.NewReader(os.Stdin)
	for {
		line, _, err := bio.ReadLine()
		if err != nil {
			log.Println("error:", err)
			break
		}
		if err := front.Execute(string(line)); err != nil {
			if err == uci.ErrQuit {
				os.Exit(0)
			}
			log.Println("for line:", string(line))
			log.Println("error:", err)
		}
	}
}
