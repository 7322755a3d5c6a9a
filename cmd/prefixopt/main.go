package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "prefixopt",
		Short: "Aggregate, filter, and compare CIDR prefix sets",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		newOptimizeCommand(),
		newAddCommand(),
		newFilterCommand(),
		newMergeCommand(),
		newIntersectCommand(),
		newExcludeCommand(),
		newSplitCommand(),
		newDiffCommand(),
		newStatsCommand(),
		newCheckCommand(),
	)
	return root
}

// fatalf logs a single human-readable error line and returns it as a cobra
// error so Execute's non-nil return drives the process exit code to 1,
// matching the driver's documented exit policy.
func fatalf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	log.Error(msg)
	return fmt.Errorf("%s", msg)
}
