package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcdim/witness"
)

var bicliqueCmd = &cobra.Command{
	Use:   "biclique <file>",
	Short: "Bound the graph's biclique number",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		g, _, err := loadGraph(args[0], "")
		if err != nil {
			return err
		}

		e, err := witness.NewBicliqueEngine(g)
		if err != nil {
			return err
		}
		e.WithLogger(logger)
		e.Run()

		fmt.Printf("biclique number in [%d, %d]\n", e.Lower(), e.Upper())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(bicliqueCmd)
}
