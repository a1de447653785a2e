// Perft is a perft tool.
//
// Perft's main purpose is to test, debug and benchmark move generation.
// To do this we count number of nodes, captures, en passant, castles and
// promotions for given depths (usually small 4-7) from specific position.
// In order to aid debugging perft can do split up to any level.
//
// For more results and test description see:
//	https://www.chessprogramming.org/Perft
//	https://www.chessprogramming.org/Perft_Results
//
// Examples:
//
// startpos:
//	$ ./perft --fen startpos --max_depth 6
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nullmove/caps/engine"
)

var (
	fen        = flag.String("fen", "startpos", "position to search")
	minDepth   = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth   = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth      = flag.Int("depth", 0, "if non zero, searches only this depth")
	splitDepth = flag.Int("split", 0, "split depth")

	splitMoves []string
)

// counters counts leafs after playing out a position up to certain depth.
type counters struct {
	nodes      uint64
	captures   uint64
	enpassant  uint64
	castles    uint64
	promotions uint64
}

// add adds ot into co.
func (co *counters) add(ot counters) {
	co.nodes += ot.nodes
	co.captures += ot.captures
	co.enpassant += ot.enpassant
	co.castles += ot.castles
	co.promotions += ot.promotions
}

type hashEntry struct {
	zobrist  uint64
	counters counters
	depth    int
}

var (
	startpos = engine.StartFEN
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	duplain  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	known = map[string]string{
		"startpos": startpos,
		"kiwipete": kiwipete,
		"duplain":  duplain,
	}

	data = map[string][]counters{
		startpos: {
			{1, 0, 0, 0, 0},
			{20, 0, 0, 0, 0},
			{400, 0, 0, 0, 0},
			{8902, 34, 0, 0, 0},
			{197281, 1576, 0, 0, 0},
			{4865609, 82719, 258, 0, 0},
			{119060324, 2812008, 5248, 0, 0},
		},
		kiwipete: {
			{1, 0, 0, 0, 0},
			{48, 8, 0, 2, 0},
			{2039, 351, 1, 91, 0},
			{97862, 17102, 45, 3162, 0},
			{4085603, 757163, 1929, 128013, 15172},
			{193690690, 35043416, 73365, 4993637, 8392},
		},
		duplain: {
			{1, 0, 0, 0, 0},
			{14, 1, 0, 0, 0},
			{191, 14, 0, 0, 0},
			{2812, 209, 2, 0, 0},
			{43238, 3348, 123, 0, 0},
			{674624, 52051, 1165, 0, 0},
			{11030083, 940350, 33325, 0, 7552},
		},
	}

	// A hash table to speed up perft.
	hashSize  = 1 << 20
	hashTable = make([]hashEntry, hashSize)
)

// isCapture reports whether m, played from pos, removes an enemy piece.
func isCapture(pos *engine.Position, m engine.Move) bool {
	if m.MoveType() == engine.Enpassant {
		return true
	}
	return pos.PieceAt(m.To()) != engine.NoPiece
}

func perft(pos engine.Position, depth int, ht []hashEntry) counters {
	if depth == 0 {
		return counters{nodes: 1}
	}

	if ht != nil {
		index := pos.Zobrist % uint64(len(ht))
		if ht[index].depth == depth && ht[index].zobrist == pos.Zobrist {
			return ht[index].counters
		}
	}

	r := counters{}
	var ml engine.MoveList
	pos.GenerateMoves(&ml)
	for _, m := range ml.Moves() {
		capture := depth == 1 && isCapture(&pos, m)
		mtype := m.MoveType()

		child, ok := pos.MakeMove(m)
		if !ok {
			continue
		}

		if depth == 1 {
			if capture {
				r.captures++
			}
			if mtype == engine.Enpassant {
				r.enpassant++
			}
			if mtype == engine.Castling {
				r.castles++
			}
			if mtype == engine.Promotion {
				r.promotions++
			}
		}

		r.add(perft(child, depth-1, ht))
	}

	if ht != nil {
		index := pos.Zobrist % uint64(len(ht))
		ht[index] = hashEntry{zobrist: pos.Zobrist, counters: r, depth: depth}
	}
	return r
}

func split(pos engine.Position, depth, splitDepth int) counters {
	r := counters{}
	if depth == 0 || splitDepth == 0 {
		r = perft(pos, depth, hashTable)
	} else {
		var ml engine.MoveList
		pos.GenerateMoves(&ml)
		for _, m := range ml.Moves() {
			child, ok := pos.MakeMove(m)
			if !ok {
				continue
			}
			splitMoves = append(splitMoves, m.UCI())
			r.add(split(child, depth-1, splitDepth-1))
			splitMoves = splitMoves[:len(splitMoves)-1]
		}
	}

	if len(splitMoves) != 0 {
		fmt.Printf("   %2d %12d %8d %9d %7d split %s\n",
			depth, r.nodes, r.captures, r.enpassant, r.castles, strings.Join(splitMoves, " "))
	}
	return r
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	var expected []counters
	if s, has := known[*fen]; has {
		*fen = s
		expected = data[*fen]
	}
	if *depth != 0 {
		*minDepth = *depth
		*maxDepth = *depth
	}

	fmt.Printf("Searching FEN %q\n", *fen)
	pos, err := engine.PositionFromFEN(*fen)
	if err != nil {
		log.Fatalln("cannot parse --fen:", err)
	}

	fmt.Printf("depth        nodes   captures enpassant castles   promotions   KNps   elapsed\n")
	fmt.Printf("-----+------------+----------+---------+---------+----------+------+-------\n")

	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		c := split(*pos, d, *splitDepth)
		duration := time.Since(start)

		ok := ""
		if d < len(expected) {
			if c == expected[d] {
				ok = "good"
			} else {
				ok = "bad"
			}
		}

		fmt.Printf("   %2d %12d %10d %9d %9d %10d %-4s %6.f %v\n",
			d, c.nodes, c.captures, c.enpassant, c.castles, c.promotions,
			ok, float64(c.nodes)/duration.Seconds()/1e3, duration)

		if ok == "bad" {
			e := expected[d]
			fmt.Printf("   %2d %12d %10d %9d %9d %10d %s\n",
				d, e.nodes, e.captures, e.enpassant, e.castles, e.promotions, "expected")
			break
		}
	}
}
