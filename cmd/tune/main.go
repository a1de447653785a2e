// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build coach

// Command tune runs the texel tuner over a labelled position corpus and
// prints a weight table in weights.go's format.
//
// Build with the coach tag, since both the tuner package and
// engine.EvaluateTrace only exist there:
//
//	go build -tags coach ./cmd/tune
//	./tune -data lichess-quiet.epd -epochs 2000 > engine/weights_tuned.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/nullmove/caps/tuner"
)

var (
	dataPath = flag.String("data", "", "EPD or FEN+result corpus, one sample per line")
	epochs   = flag.Int("epochs", 2000, "training epochs over the full dataset")
	sgd      = flag.Bool("sgd", false, "use plain decayed SGD instead of Adam")
	lr       = flag.Float64("lr", 1e-2, "learning rate (Adam's or SGD's initial rate)")
)

func main() {
	flag.Parse()
	if *dataPath == "" {
		log.Fatal("missing -data")
	}

	f, err := os.Open(*dataPath)
	if err != nil {
		log.Fatalln("cannot open -data:", err)
	}
	defer f.Close()

	dataset, err := tuner.LoadDataset(f)
	if err != nil {
		log.Fatalln("cannot load dataset:", err)
	}
	if len(dataset) == 0 {
		log.Fatal("dataset has no usable samples")
	}
	log.Printf("loaded %d samples", len(dataset))

	weights := tuner.InitialWeights()

	var opt tuner.Optimizer
	if *sgd {
		opt = tuner.NewSGD(*lr, 0.99)
	} else {
		a := tuner.NewAdam(len(weights))
		a.LR = *lr
		opt = a
	}

	losses := tuner.Train(weights, dataset, opt, *epochs)
	for epoch, loss := range losses {
		if epoch%100 == 0 || epoch == len(losses)-1 {
			log.Printf("epoch %d loss %.6f", epoch, loss)
		}
	}

	if err := tuner.Dump(os.Stdout, weights); err != nil {
		log.Fatalln("cannot dump weights:", err)
	}
}
