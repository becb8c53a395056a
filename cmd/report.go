package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/category"
)

type reportOutput struct {
	Details      analysis.GeneralDetails           `json:"details"`
	Reliability  category.CronbachAlpha            `json:"reliability"`
	Distribution analysis.Distribution             `json:"distribution"`
	Spreads      map[category.Stat]analysis.Spread `json:"spreads"`
	Groups       [6]int                            `json:"groups"`
	Outliers     []analysis.Deviation              `json:"infit_outliers,omitempty"`
}

var reportCmd = &cobra.Command{
	Use:   "report <project-id>",
	Short: "Summarise a project's test-level statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project := args[0]
		modelFlag, _ := cmd.Flags().GetString("model")
		asJSON, _ := cmd.Flags().GetBool("json")

		model := analysis.ModelCTT
		if modelFlag != "" {
			m, ok := analysis.ParseModel(modelFlag)
			if !ok {
				return fmt.Errorf("unknown model %q: want ctt or rasch", modelFlag)
			}
			model = m
		}

		ctx := cmd.Context()
		client, err := newClient()
		if err != nil {
			return err
		}

		var (
			details  analysis.GeneralDetails
			students []analysis.Student
			set      itemSet
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			details, err = client.GeneralDetails(gctx, project)
			return err
		})
		g.Go(func() (err error) {
			students, err = client.Students(gctx, project)
			return err
		})
		g.Go(func() (err error) {
			set, err = fetchProject(gctx, project, model)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		out := reportOutput{
			Details:      details,
			Reliability:  analysis.TestVerdict(details),
			Distribution: set.distribution(),
			Groups:       analysis.GroupCounts(students),
		}
		if model == analysis.ModelRasch {
			out.Spreads = analysis.RaschAverages(set.rasch)
			for _, d := range analysis.InfitDeviations(set.rasch) {
				if d.Outlier {
					out.Outliers = append(out.Outliers, d)
				}
			}
		} else {
			out.Spreads = analysis.CTTAverages(set.questions)
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), out)
		}

		w := cmd.OutOrStdout()
		p := printer(cmd)
		p.Details(details)
		fmt.Fprintln(w)
		p.Distribution(out.Distribution)
		fmt.Fprintln(w)
		p.Spreads(out.Spreads)

		fmt.Fprintf(w, "\nStudents by score group (1 lowest, 5 highest)\n")
		for grp := 5; grp >= 1; grp-- {
			fmt.Fprintf(w, "  %d: %d\n", grp, out.Groups[grp])
		}
		if out.Groups[0] > 0 {
			fmt.Fprintf(w, "  ungraded: %d\n", out.Groups[0])
		}

		if len(out.Outliers) > 0 {
			fmt.Fprintf(w, "\nInfit outside [0.77, 1.33]\n")
			for _, d := range out.Outliers {
				fmt.Fprintf(w, "  %-12s %.3f (%+.3f)\n", d.ItemID, d.Infit, d.Delta)
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("model", "m", "", "Item model: ctt or rasch (default ctt)")
	reportCmd.Flags().Bool("json", false, "Print JSON instead of text")
}
