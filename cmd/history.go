package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/testlens/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved review reports",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		project, _ := cmd.Flags().GetString("project")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		reports, err := s.Reports().List(cmd.Context(), project, opts)
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(w, "No saved reports.")
			return nil
		}

		fmt.Fprintf(w, "%-8s  %-19s  %-20s  %-5s  %5s  %5s  %5s  %5s\n",
			"ID", "Created", "Project", "Model", "Items", "Fit", "Cons.", "Not")
		fmt.Fprintln(w, strings.Repeat("─", 90))
		for _, r := range reports {
			fmt.Fprintf(w, "%-8s  %-19s  %-20s  %-5s  %5d  %5d  %5d  %5d\n",
				r.ID[:8],
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(r.ProjectID, 20),
				r.Model,
				r.ItemCount, r.Fit, r.Considerable, r.NotFit,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a saved report (ID or unique prefix)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.Reports().Get(cmd.Context(), args[0])
		if store.IsNotFound(err) {
			return fmt.Errorf("report %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("get report: %w", err)
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), r)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "ID:        %s\n", r.ID)
		fmt.Fprintf(w, "Created:   %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Project:   %s\n", r.ProjectID)
		fmt.Fprintf(w, "Model:     %s\n", r.Model)
		fmt.Fprintf(w, "Items:     %d (%d fit, %d considerable, %d not fit)\n\n",
			r.ItemCount, r.Fit, r.Considerable, r.NotFit)
		printer(cmd).Review(r.Entries)
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Reports().Delete(cmd.Context(), args[0]); err != nil {
			if store.IsNotFound(err) {
				return fmt.Errorf("report %s not found", args[0])
			}
			return fmt.Errorf("delete report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted report %s\n", args[0])
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of reports to show")
	historyListCmd.Flags().StringP("project", "p", "", "Only show reports for this project")
	historyListCmd.Flags().Duration("since", 0, "Only show reports newer than this (e.g. 168h)")
	historyViewCmd.Flags().Bool("json", false, "Print JSON instead of text")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}
