package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/testlens/internal/category"
)

type classification struct {
	Stat       category.Stat    `json:"stat"`
	Value      float64          `json:"value"`
	Category   string           `json:"category"`
	Label      string           `json:"label"`
	Tone       category.Tone    `json:"tone"`
	Variant    category.Variant `json:"variant,omitempty"`
	Evaluation string           `json:"evaluation"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <stat> <value>...",
	Short: "Classify statistic values into quality categories",
	Long: "Classify one or more values of a statistic. Known statistics: " +
		"discrimination, difficulty, rpbis, infit, outfit, cronbachAlpha, ability, reliability.",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		stat, err := category.ParseStat(args[0])
		if err != nil {
			return err
		}

		values, err := parseValues(args[1:])
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			out := make([]classification, len(values))
			for i, v := range values {
				c := category.Evaluate(stat, v)
				d := c.Descriptor()
				out[i] = classification{
					Stat: stat, Value: v, Category: c.Key(),
					Label: d.Label, Tone: d.Tone, Variant: d.Variant, Evaluation: d.Evaluation,
				}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		}

		p := printer(cmd)
		for _, v := range values {
			p.Classification(stat, v, category.Evaluate(stat, v))
		}
		return nil
	},
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: not a number", a)
		}
		values[i] = v
	}
	return values, nil
}

func init() {
	classifyCmd.Flags().Bool("json", false, "Print JSON instead of text")
}
