package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pagesim/pagesim/sim"
	"github.com/pagesim/pagesim/sim/workload"
)

var (
	// CLI flags shared by the simulation subcommands
	logLevel    string // Log verbosity level
	refsCSV     string // Inline reference string, comma-separated
	patternFile string // YAML pattern spec path
	presetName  string // Built-in pattern preset name
	policyName  string // Replacement policy tag
	frameCount  int    // Number of physical frames available

	frameRangeCSV string // Ascending capacities for the sweep command
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "Page-replacement policy simulator (FIFO, LRU, OPT)",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging parses the --log flag and configures logrus.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveReferenceString materializes the input reference string from the
// flags, in precedence order: --refs, --pattern-file, --preset. With no
// input flag set, the textbook preset is used.
func resolveReferenceString() (sim.ReferenceString, error) {
	switch {
	case refsCSV != "":
		return sim.ParseReferenceString(refsCSV)
	case patternFile != "":
		spec, err := workload.LoadPatternSpec(patternFile)
		if err != nil {
			return nil, err
		}
		return workload.Generate(spec)
	case presetName != "":
		return workload.Preset(presetName)
	default:
		return workload.Preset(workload.PresetTextbook)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// reference-string input flags, shared by every subcommand
	for _, c := range []*cobra.Command{runCmd, compareCmd, sweepCmd} {
		c.Flags().StringVar(&refsCSV, "refs", "", "Inline reference string, e.g. \"1,2,3,4,1,2,5\"")
		c.Flags().StringVar(&patternFile, "pattern-file", "", "YAML pattern spec used to generate the reference string")
		c.Flags().StringVar(&presetName, "preset", "", "Built-in pattern preset (textbook, belady, locality, loop)")
	}

	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFIFO, "Replacement policy (fifo, lru, opt)")
	runCmd.Flags().IntVar(&frameCount, "frames", 3, "Number of physical frames")

	compareCmd.Flags().IntVar(&frameCount, "frames", 3, "Number of physical frames")

	sweepCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFIFO, "Policy checked for Belady's anomaly")
	sweepCmd.Flags().StringVar(&frameRangeCSV, "frame-range", "1,2,3,4,5", "Ascending comma-separated frame capacities to sweep")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(sweepCmd)
}
