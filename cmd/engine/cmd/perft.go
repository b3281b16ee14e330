package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"chess-engine/position"
)

var (
	perftFEN    string
	perftDepth  int
	perftDivide bool
)

var perftCmd = &cobra.Command{
	Use:   "perft",
	Short: "count leaf nodes of the legal move tree to a fixed depth",
	RunE: func(cmd *cobra.Command, args []string) error {
		if perftDepth <= 0 {
			return fmt.Errorf("--depth must be > 0")
		}
		p, err := position.FromFEN(perftFEN, true)
		if err != nil {
			return fmt.Errorf("parsing FEN: %w", err)
		}

		if perftDivide {
			div := position.PerftDivide(p, perftDepth)
			moves := make([]string, 0, len(div))
			for m := range div {
				moves = append(moves, m)
			}
			sort.Strings(moves)
			var total uint64
			for _, m := range moves {
				fmt.Printf("%s: %d\n", m, div[m])
				total += div[m]
			}
			fmt.Printf("total: %d\n", total)
			return nil
		}

		fmt.Println(position.Perft(p, perftDepth))
		return nil
	},
}

func init() {
	perftCmd.Flags().StringVar(&perftFEN, "fen", position.StartFEN, "FEN string (defaults to the starting position)")
	perftCmd.Flags().IntVar(&perftDepth, "depth", 0, "perft depth (required)")
	perftCmd.Flags().BoolVar(&perftDivide, "divide", false, "print per-root-move leaf counts")
}
