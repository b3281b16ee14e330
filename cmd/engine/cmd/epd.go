package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chess-engine/config"
	"chess-engine/engine"
	"chess-engine/position"
)

var (
	epdFEN   string
	epdDepth int
)

// epdCmd runs a single position (given as a bare FEN, not a parsed .epd
// file's "bm"/"id" operations) through a fixed-depth search and prints the
// chosen move. It is the thin per-position primitive an external EPD/WAC
// test-suite runner can shell out to one line at a time; this module does
// not itself read .epd files or score test suites.
var epdCmd = &cobra.Command{
	Use:   "epd",
	Short: "search one FEN and print the chosen move, for an external EPD runner to shell out to",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := position.FromFEN(epdFEN, true)
		if err != nil {
			return fmt.Errorf("parsing FEN: %w", err)
		}
		limits := config.Default()
		limits.Depth = int16(epdDepth)
		limits.TTSizeMB = 64

		s := engine.NewSearcher(limits)
		result := s.Search(p, limits, nil, nil)
		fmt.Printf("bestmove %s score %d depth %d nodes %d\n",
			result.BestMove.UCI(), result.Score, result.Depth, result.Nodes)
		return nil
	},
}

func init() {
	epdCmd.Flags().StringVar(&epdFEN, "fen", position.StartFEN, "FEN of the position to search")
	epdCmd.Flags().IntVar(&epdDepth, "depth", 8, "fixed search depth")
}
