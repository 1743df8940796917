package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcdim/witness"
)

var vcCmd = &cobra.Command{
	Use:   "vc <file> [<candidates-file>]",
	Short: "Compute the VC dimension of the graph's neighbourhood set system",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		g, candidates, err := loadGraph(args[0], candidatesArg(args))
		if err != nil {
			return err
		}

		e, err := witness.NewVCEngine(g, candidates)
		if err != nil {
			return err
		}
		e.WithLogger(logger).WithCoverSizeCeiling(effectiveCoverSizeCeiling())
		e.Run()

		fmt.Printf("vc dimension = %d\n", e.VCDim())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(vcCmd)
}
