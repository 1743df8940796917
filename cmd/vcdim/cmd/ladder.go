package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcdim/witness"
)

var ladderCmd = &cobra.Command{
	Use:   "ladder <file>",
	Short: "Bound the graph's ladder index",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		g, _, err := loadGraph(args[0], "")
		if err != nil {
			return err
		}

		e, err := witness.NewLadderEngine(g)
		if err != nil {
			return err
		}
		e.WithLogger(logger)
		e.Run()

		fmt.Printf("ladder index in [%d, %d]\n", e.Lower(), e.Upper())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(ladderCmd)
}
