package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/testlens/internal/category"
	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
)

type violationJSON struct {
	Stat     category.Stat `json:"stat"`
	Value    float64       `json:"value"`
	Category string        `json:"category"`
	Label    string        `json:"label"`
}

type resultJSON struct {
	Verdict  fit.Verdict     `json:"verdict"`
	Label    string          `json:"label"`
	Summary  string          `json:"summary"`
	Violated []violationJSON `json:"violated"`
	Band     *bandJSON       `json:"band,omitempty"`
	Bounds   []review.Index  `json:"bounds,omitempty"`
}

type bandJSON struct {
	Verdict fit.Verdict `json:"verdict"`
	Note    string      `json:"note"`
}

func toResultJSON(r fit.Result) resultJSON {
	out := resultJSON{
		Verdict:  r.Verdict,
		Label:    r.Verdict.Label(),
		Summary:  r.Summary(),
		Violated: make([]violationJSON, len(r.Violated)),
	}
	for i, v := range r.Violated {
		out.Violated[i] = violationJSON{
			Stat: v.Stat, Value: v.Value, Category: v.Category.Key(), Label: v.Descriptor().Label,
		}
	}
	return out
}

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Score a single item's overall fit",
}

var fitCTTCmd = &cobra.Command{
	Use:   "ctt",
	Short: "Score an item from discrimination, difficulty and rpbis",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		var s fit.ItemStat
		s.Discrimination, _ = f.GetFloat64("discrimination")
		s.Difficulty, _ = f.GetFloat64("difficulty")
		s.Rpbis, _ = f.GetFloat64("rpbis")

		res := fit.EvaluateCTT(s)
		if asJSON, _ := f.GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), toResultJSON(res))
		}
		printer(cmd).Result("", res)
		return nil
	},
}

var fitRaschCmd = &cobra.Command{
	Use:   "rasch",
	Short: "Score an item from infit, outfit and reliability",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		var s fit.RaschItemStat
		s.Infit, _ = f.GetFloat64("infit")
		s.Outfit, _ = f.GetFloat64("outfit")
		s.Reliability, _ = f.GetFloat64("reliability")
		s.Ability, _ = f.GetFloat64("ability")
		s.Difficulty, _ = f.GetFloat64("difficulty")

		res := fit.EvaluateRasch(s)
		band, note := fit.MeanSquareBand(s.Infit, s.Outfit)
		bounds := review.ViolatedIndices(s)
		if asJSON, _ := f.GetBool("json"); asJSON {
			out := toResultJSON(res)
			out.Band = &bandJSON{Verdict: band, Note: note}
			out.Bounds = bounds
			return writeJSON(cmd.OutOrStdout(), out)
		}

		p := printer(cmd)
		p.Result("", res)
		p.Classification(category.StatAbility, s.Ability, category.EvaluateAbility(s.Ability))
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "\nMean-square band: %s\n%s\n", band.Label(), note)
		if len(bounds) == 0 {
			fmt.Fprintln(w, "Within fixed bounds.")
			return nil
		}
		fmt.Fprintln(w, "Outside fixed bounds:")
		for _, b := range bounds {
			fmt.Fprintf(w, "  %-12s %.3f  %s\n", b.Name.Label(), b.Value, b.Message)
		}
		return nil
	},
}

func init() {
	ctt := fitCTTCmd.Flags()
	ctt.Float64("discrimination", 0, "Discrimination index")
	ctt.Float64("difficulty", 0, "Difficulty index (proportion correct)")
	ctt.Float64("rpbis", 0, "Point-biserial correlation")
	ctt.Bool("json", false, "Print JSON instead of text")
	for _, name := range []string{"discrimination", "difficulty", "rpbis"} {
		_ = fitCTTCmd.MarkFlagRequired(name)
	}

	rasch := fitRaschCmd.Flags()
	rasch.Float64("infit", 0, "Infit mean-square")
	rasch.Float64("outfit", 0, "Outfit mean-square")
	rasch.Float64("reliability", 0, "Item reliability")
	rasch.Float64("ability", 0, "Ability estimate in logits")
	rasch.Float64("difficulty", 0, "Item difficulty in logits")
	rasch.Bool("json", false, "Print JSON instead of text")
	for _, name := range []string{"infit", "outfit", "reliability"} {
		_ = fitRaschCmd.MarkFlagRequired(name)
	}

	fitCmd.AddCommand(fitCTTCmd)
	fitCmd.AddCommand(fitRaschCmd)
}
