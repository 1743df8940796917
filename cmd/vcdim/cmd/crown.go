package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcdim/witness"
)

var crownCmd = &cobra.Command{
	Use:   "crown <file>",
	Short: "Bound the graph's crown size",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		g, _, err := loadGraph(args[0], "")
		if err != nil {
			return err
		}

		e, err := witness.NewCrownEngine(g)
		if err != nil {
			return err
		}
		e.WithLogger(logger)
		e.Run()

		fmt.Printf("crown size in [%d, %d]\n", e.Lower(), e.Upper())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(crownCmd)
}
