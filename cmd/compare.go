package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pagesim/pagesim/sim"
)

// compareCmd replays every policy against the same reference string at
// one capacity and prints the fault/hit-rate comparison table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare FIFO, LRU, and OPT on one reference string",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		refs, err := resolveReferenceString()
		if err != nil {
			logrus.Fatalf("unable to resolve reference string: %v", err)
		}

		cmp, err := sim.ComparePolicies(refs, frameCount)
		if err != nil {
			logrus.Fatalf("configuration error: %v", err)
		}

		cmp.Print(os.Stdout)
	},
}
