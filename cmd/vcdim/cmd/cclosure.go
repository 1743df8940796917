package cmd

import (
	"github.com/spf13/cobra"
)

// cclosureCmd is registered so `vcdim cclosure <file>` fails loudly with
// ErrStatisticNotImplemented rather than cobra's "unknown command" — the
// statistic is named in spec.md's glossary but its algorithm is absent
// from the original implementation, and invented semantics would not be
// grounded in anything.
var cclosureCmd = &cobra.Command{
	Use:   "cclosure <file>",
	Short: "Not implemented: no c-closure algorithm exists in the source this CLI was ported from",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, _ []string) error {
		return ErrStatisticNotImplemented
	},
}

func init() {
	rootCmd.AddCommand(cclosureCmd)
}
