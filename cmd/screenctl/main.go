// Command screenctl scores resumes and manages the similarity model from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "screenctl",
		Short:         "Resume screening from the command line",
		Long:          "screenctl scores a resume against a job description, retrains the semantic model and mints admin tokens for the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newTrainCmd(), newExtractCmd(), newTokenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
