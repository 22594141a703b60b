package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Fit the semantic model on the built-in corpus and persist it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, closeFn, err := openEngine(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeFn()

			if err := engine.Train(cmd.Context()); err != nil {
				return fmt.Errorf("training failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Model trained successfully (id %s)\n", engine.ModelID())
			return nil
		},
	}
}
