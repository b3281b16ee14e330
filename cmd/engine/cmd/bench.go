package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chess-engine/config"
	"chess-engine/engine"
	"chess-engine/position"
)

var (
	benchFEN   string
	benchDepth int
)

// benchPositions is a small, fixed suite of tactically and structurally
// varied positions, enough to surface a gross regression in node count or
// search time without needing an external EPD file.
var benchPositions = []string{
	position.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"4k3/8/8/4q3/4Q3/8/8/4K3 w - - 0 1",
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "run a fixed-depth search benchmark over a small position suite",
	RunE: func(cmd *cobra.Command, args []string) error {
		fens := benchPositions
		if benchFEN != "" {
			fens = []string{benchFEN}
		}

		limits := config.Default()
		limits.Depth = int16(benchDepth)
		limits.TTSizeMB = 64

		var totalNodes uint64
		start := time.Now()
		for _, fen := range fens {
			p, err := position.FromFEN(fen, true)
			if err != nil {
				return fmt.Errorf("parsing FEN %q: %w", fen, err)
			}
			s := engine.NewSearcher(limits)
			result := s.Search(p, limits, nil, nil)
			totalNodes += result.Nodes
			fmt.Printf("%-70s depth=%d nodes=%d best=%s score=%d\n",
				fen, result.Depth, result.Nodes, result.BestMove.UCI(), result.Score)
		}
		elapsed := time.Since(start)
		nps := uint64(0)
		if elapsed > 0 {
			nps = uint64(float64(totalNodes) / elapsed.Seconds())
		}
		fmt.Printf("total nodes=%d time=%s nps=%d\n", totalNodes, elapsed, nps)
		return nil
	},
}

func init() {
	benchCmd.Flags().StringVar(&benchFEN, "fen", "", "run a single FEN instead of the built-in suite")
	benchCmd.Flags().IntVar(&benchDepth, "depth", 6, "fixed search depth per position")
}
