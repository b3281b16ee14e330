package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chess-engine/engine"
	"chess-engine/position"
)

var evalFEN string

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "print the static evaluation of a position",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := position.FromFEN(evalFEN, true)
		if err != nil {
			return fmt.Errorf("parsing FEN: %w", err)
		}
		score := engine.Evaluate(p)
		fmt.Printf("%s\nside to move: %v\nscore (side to move's perspective): %d\n", evalFEN, p.SideToMove(), score)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalFEN, "fen", position.StartFEN, "FEN string to evaluate")
}
