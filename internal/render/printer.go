package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/testlens/internal/advisor"
	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/category"
	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
)

const rule = "─"

// Printer writes formatted results to w.
type Printer struct {
	w     io.Writer
	theme Theme
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, theme: NewTheme(color)}
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) title(s string) {
	p.printf("%s\n", p.theme.render(p.theme.Title, s))
}

// Classification prints the category of a single statistic value.
func (p *Printer) Classification(stat category.Stat, value float64, c category.Category) {
	d := c.Descriptor()
	p.printf("%s = %.4g  %s\n", stat.Label(), value, p.theme.Badge(d))
	if d.Evaluation != "" {
		p.printf("%s\n", p.theme.render(p.theme.Dim, d.Evaluation))
	}
}

// Result prints an item verdict followed by each violated statistic.
func (p *Printer) Result(itemID string, r fit.Result) {
	if itemID != "" {
		p.title(itemID)
	}
	p.printf("%s  %s\n", p.theme.VerdictBadge(r.Verdict), r.Verdict.Evaluation())
	for _, v := range r.Violated {
		d := v.Descriptor()
		p.printf("  - %-28s %-8.4g %s\n", v.Stat.Label(), v.Value, p.theme.ToneText(d.Tone, d.Label))
	}
}

// CTTTable prints one row per question with its categories and verdict.
func (p *Printer) CTTTable(qs []analysis.QuestionAnalysis) {
	p.printf("%s\n", p.theme.render(p.theme.Header, fmt.Sprintf("%-4s  %-10s  %-10s  %-10s  %s",
		"#", "Disc.", "Diff.", "Rpbis", "Verdict")))
	p.printf("%s\n", strings.Repeat(rule, 60))
	for i, q := range qs {
		s := q.Stat()
		r := fit.EvaluateCTT(s)
		p.printf("%-4d  %s  %s  %s  %s\n", i+1,
			p.cell(s.Discrimination, category.EvaluateDiscrimination(s.Discrimination)),
			p.cell(s.Difficulty, category.EvaluateDifficulty(s.Difficulty)),
			p.cell(s.Rpbis, category.EvaluateRpbis(s.Rpbis)),
			p.theme.VerdictBadge(r.Verdict))
	}
}

// RaschTable prints one row per Rasch item with its mean-square band.
func (p *Printer) RaschTable(qs []analysis.RaschQuestion) {
	p.printf("%s\n", p.theme.render(p.theme.Header, fmt.Sprintf("%-4s  %-10s  %-10s  %-10s  %-10s  %s",
		"#", "Diff.", "Infit", "Outfit", "Rel.", "Band")))
	p.printf("%s\n", strings.Repeat(rule, 70))
	for i, q := range qs {
		band, _ := fit.MeanSquareBand(q.Infit, q.Outfit)
		p.printf("%-4d  %-10.3f  %s  %s  %s  %s\n", i+1, q.Difficulty,
			p.cell(q.Infit, category.EvaluateInfit(q.Infit)),
			p.cell(q.Outfit, category.EvaluateOutfit(q.Outfit)),
			p.cell(q.Reliability, category.EvaluateReliability(q.Reliability)),
			p.theme.VerdictBadge(band))
	}
}

func (p *Printer) cell(v float64, c category.Category) string {
	return p.theme.ToneText(c.Descriptor().Tone, fmt.Sprintf("%-10.3f", v))
}

// Review prints the review list, one block per flagged item.
func (p *Printer) Review(entries []review.Entry) {
	if len(entries) == 0 {
		p.printf("No items need review.\n")
		return
	}
	p.title(fmt.Sprintf("%d items need review (%d flagged indices)", len(entries), review.Count(entries)))
	for _, e := range entries {
		p.printf("\nCâu %d  %s\n", e.Ordinal, p.theme.render(p.theme.Dim, e.ItemID))
		for _, idx := range e.Indices {
			p.printf("  %-28s %-8.4g %s\n", idx.Name.Label(), idx.Value, idx.Message)
		}
	}
}

// Distribution prints verdict counts with their share of the total.
func (p *Printer) Distribution(d analysis.Distribution) {
	total := d.Total()
	counts := map[fit.Verdict]int{
		fit.VerdictFit:          d.Fit,
		fit.VerdictConsiderable: d.Considerable,
		fit.VerdictNotFit:       d.NotFit,
	}
	for _, v := range fit.AllVerdicts() {
		n := counts[v]
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(n) / float64(total)
		}
		p.printf("%-16s %4d  %5.1f%%\n", v.Label(), n, pct)
	}
}

// Details prints the test-level summary of an analysis run.
func (p *Printer) Details(d analysis.GeneralDetails) {
	name := d.Project.Name
	if name == "" {
		name = d.ProjectID
	}
	alpha := analysis.TestVerdict(d)
	body := strings.Join([]string{
		fmt.Sprintf("Questions: %d   Students: %d   Options: %d",
			d.Project.TotalQuestions, d.Project.TotalStudents, d.Project.TotalOptions),
		fmt.Sprintf("Average score: %.2f", d.AvgScore),
		fmt.Sprintf("Cronbach's alpha: %.3f  %s", d.CronbachAlpha, p.theme.Badge(alpha.Descriptor())),
		fmt.Sprintf("Avg. discrimination %.3f  difficulty %.3f  rpbis %.3f",
			d.AvgDiscriminationIndex, d.AvgDifficultyIndex, d.AvgRpbis),
	}, "\n")
	p.title(name)
	p.printf("%s\n", p.theme.render(p.theme.Card, body))
}

// Spreads prints per-statistic spread lines in stat order.
func (p *Printer) Spreads(spreads map[category.Stat]analysis.Spread) {
	for _, st := range category.AllStats() {
		s, ok := spreads[st]
		if !ok {
			continue
		}
		p.printf("%-28s mean %.3f  median %.3f  sd %.3f  [%.3f, %.3f]\n",
			st.Label(), s.Mean, s.Median, s.StdDev, s.Min, s.Max)
	}
}

// Advice prints model suggestions per item.
func (p *Printer) Advice(advice []advisor.Advice) {
	for _, a := range advice {
		p.printf("\nCâu %d  %s\n", a.Ordinal, p.theme.render(p.theme.Dim, a.ItemID))
		if a.Err != "" {
			p.printf("  %s\n", p.theme.ToneText(category.ToneVeryBad, "advice unavailable: "+a.Err))
			continue
		}
		p.printf("  %s\n", a.Diagnosis)
		for _, s := range a.Suggestions {
			p.printf("  - %s\n", s)
		}
		if a.Rewrite != "" {
			p.printf("  %s %s\n", p.theme.render(p.theme.Header, "Rewrite:"), a.Rewrite)
		}
	}
}
