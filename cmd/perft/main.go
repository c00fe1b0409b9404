package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"chess-notation/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to the initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	check := flag.Bool("check", false, "Cross-validate the node count against dragontoothmg")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := board.PerftDivide(b, *depth)
		type kv struct {
			m board.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := board.Perft(b, *depth)
	elapsed := time.Since(start)
	fmt.Printf("depth %d \t%d nodes \t%s \t%.0f nps\n",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())

	if *check {
		dt := dragontoothmg.ParseFen(*fen)
		want := uint64(dragontoothmg.Perft(&dt, *depth))
		if nodes != want {
			fmt.Fprintf(os.Stderr, "MISMATCH: dragontoothmg counts %d nodes\n", want)
			os.Exit(1)
		}
		fmt.Println("dragontoothmg agrees")
	}
}
