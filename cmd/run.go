package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pagesim/pagesim/sim"
	"github.com/pagesim/pagesim/sim/trace"
)

// runCmd replays one policy over one reference string and prints the
// step-by-step trace table.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay one replacement policy and print the step-by-step trace",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		refs, err := resolveReferenceString()
		if err != nil {
			logrus.Fatalf("unable to resolve reference string: %v", err)
		}

		tr, err := sim.RunPolicy(policyName, refs, frameCount)
		if err != nil {
			logrus.Fatalf("configuration error: %v", err)
		}

		writeTraceTable(os.Stdout, policyName, refs, tr)
	},
}

// writeTraceTable renders the replay as the classic step/page/frames/fault
// table, one row per reference.
func writeTraceTable(w io.Writer, policy string, refs sim.ReferenceString, tr *trace.Trace) {
	fmt.Fprintf(w, "===== %s Page Replacement Trace =====\n", strings.ToUpper(policy))
	fmt.Fprintf(w, "Reference String: %s\n\n", refs)
	fmt.Fprintln(w, "Step | Page | Frames               | Page Fault")
	fmt.Fprintln(w, strings.Repeat("-", 50))

	for _, rec := range tr.Records {
		fault := "No"
		if rec.Fault {
			fault = "Yes"
		}
		fmt.Fprintf(w, "%4d | %4d | %-20s | %s\n", rec.Step+1, rec.Ref, formatFrames(rec.Frames), fault)
	}

	s := trace.Summarize(tr)
	fmt.Fprintf(w, "\nTotal: %d faults / %d references (%.2f%% fault rate, %.2f%% hit rate)\n",
		s.Faults, s.Steps, s.FaultRate*100, s.HitRate*100)
}

func formatFrames(frames []trace.Page) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range frames {
		sb.WriteString(strconv.Itoa(int(p)))
		if i < len(frames)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
