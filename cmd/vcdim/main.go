// Command vcdim is the CLI surface of spec.md §6:
//
//	vcdim <statistic> <file> [<shattered-candidates-file>]
//	statistic ∈ { vc, ladder, crown, biclique, cclosure }
//
// Exit code 0 on success, nonzero on parse or I/O failure.
package main

import "github.com/katalvlaran/vcdim/cmd/vcdim/cmd"

func main() {
	cmd.Execute()
}
