package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/testlens/internal/advisor"
	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/api"
	"github.com/abhisek/testlens/internal/llm"
	"github.com/abhisek/testlens/internal/review"
	"github.com/abhisek/testlens/internal/store"
	"github.com/abhisek/testlens/internal/workbook"
)

type reviewOutput struct {
	Project      string                `json:"project"`
	Model        analysis.Model        `json:"model"`
	Items        int                   `json:"items"`
	Distribution analysis.Distribution `json:"distribution"`
	Entries      []review.Entry        `json:"entries"`
	Advice       []advisor.Advice      `json:"advice,omitempty"`
	ReportID     string                `json:"report_id,omitempty"`
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Score every item of a project and list those that need review",
	Long: "Score every item of a project, fetched from the analysis backend with --project " +
		"or read from an .xlsx/.json file with --file, and list the items whose statistics " +
		"need a reviewer's attention.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		var opts sourceOpts
		opts.project, _ = f.GetString("project")
		opts.file, _ = f.GetString("file")
		opts.model, _ = f.GetString("model")
		xlsxPath, _ := f.GetString("xlsx")
		save, _ := f.GetBool("save")
		advise, _ := f.GetBool("advise")
		asJSON, _ := f.GetBool("json")

		ctx := cmd.Context()

		set, err := loadItems(ctx, opts)
		if err != nil {
			return err
		}

		out := reviewOutput{
			Project:      set.project,
			Model:        set.model,
			Items:        set.len(),
			Distribution: set.distribution(),
			Entries:      set.entries(),
		}

		var s *store.Store
		if save || advise {
			if s, err = openStore(cmd); err != nil {
				return err
			}
			defer s.Close()
		}

		if advise && len(out.Entries) > 0 {
			if out.Advice, err = adviseEntries(ctx, s, set, out.Entries, opts.file == ""); err != nil {
				return err
			}
		}

		if save {
			rep := &store.Report{
				ProjectID:    set.project,
				Model:        string(set.model),
				ItemCount:    out.Items,
				Fit:          out.Distribution.Fit,
				Considerable: out.Distribution.Considerable,
				NotFit:       out.Distribution.NotFit,
				Entries:      out.Entries,
			}
			if err := s.Reports().Save(ctx, rep); err != nil {
				return fmt.Errorf("save report: %w", err)
			}
			out.ReportID = rep.ID
			log.Info("saved report", "id", rep.ID, "project", set.project)
		}

		if xlsxPath != "" {
			if err := writeWorkbook(xlsxPath, set, out); err != nil {
				return err
			}
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), out)
		}

		p := printer(cmd)
		if set.model == analysis.ModelRasch {
			p.RaschTable(set.rasch)
		} else {
			p.CTTTable(set.questions)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		p.Distribution(out.Distribution)
		fmt.Fprintln(cmd.OutOrStdout())
		p.Review(out.Entries)
		if len(out.Advice) > 0 {
			p.Advice(out.Advice)
		}
		if out.ReportID != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved report %s\n", out.ReportID)
		}
		if xlsxPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", xlsxPath)
		}
		return nil
	},
}

func writeWorkbook(path string, set itemSet, out reviewOutput) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	werr := workbook.Write(f, workbook.Report{
		ProjectID: set.project,
		Questions: set.questions,
		Rasch:     set.rasch,
		Entries:   out.Entries,
		Dist:      out.Distribution,
	})
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write workbook: %w", werr)
	}
	return nil
}

// adviseEntries asks the configured LLM about every flagged item. Option
// statistics are fetched from the backend for CTT projects when online.
func adviseEntries(ctx context.Context, s *store.Store, set itemSet, entries []review.Entry, online bool) ([]advisor.Advice, error) {
	llmCfg, ok := llm.Discover(settings.LLM)
	if !ok {
		return nil, fmt.Errorf("no LLM provider configured: set TESTLENS_LLM_PROVIDER and its API key")
	}
	provider, err := llm.NewProvider(ctx, llmCfg, s.LLMEvents(), log)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	var client *api.Client
	if online && set.model == analysis.ModelCTT {
		if client, err = newClient(); err != nil {
			return nil, err
		}
	}

	subjects := make([]advisor.Subject, len(entries))
	for i, e := range entries {
		id, content := set.source(e.Ordinal)
		subjects[i] = advisor.Subject{Entry: e, Content: content}
		if client == nil || id == "" {
			continue
		}
		opts, err := client.Options(ctx, id)
		if err != nil {
			log.Warn("fetch options failed", "item", e.ItemID, "error", err)
			continue
		}
		subjects[i].Options = opts
	}

	cfg := advisor.DefaultConfig()
	cfg.Concurrency = settings.AdviceConcurrency
	return advisor.New(provider, cfg, log).All(ctx, subjects)
}

func init() {
	f := reviewCmd.Flags()
	f.StringP("project", "p", "", "Project ID on the analysis backend")
	f.StringP("file", "f", "", "Read item statistics from an .xlsx or .json file")
	f.StringP("model", "m", "", "Item model: ctt or rasch (default: ctt, or detected from --file)")
	f.String("xlsx", "", "Also write the results to this .xlsx workbook")
	f.Bool("save", false, "Save the report to the local history")
	f.Bool("advise", false, "Ask the configured LLM for revision advice on flagged items")
	f.Bool("json", false, "Print JSON instead of text")
}
