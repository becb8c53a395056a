package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved reports (and optionally recorded LLM requests)",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		withLLM, _ := cmd.Flags().GetBool("llm")
		if !yes {
			return fmt.Errorf("refusing to delete history without --yes")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := s.Reset(cmd.Context(), withLLM)
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d reports", res.Reports)
		if withLLM {
			fmt.Fprintf(cmd.OutOrStdout(), " and %d LLM requests", res.LLMEvents)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ".")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
	resetCmd.Flags().Bool("llm", false, "Also delete recorded LLM requests")
}
