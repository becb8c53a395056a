package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/testlens/internal/advisor"
	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/category"
	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
)

func plain() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, false), &buf
}

func TestClassification(t *testing.T) {
	p, buf := plain()
	p.Classification(category.StatDifficulty, 0.05, category.DifficultyVeryEasy)

	out := buf.String()
	assert.Contains(t, out, "Độ khó = 0.05  [Rất dễ]")
	assert.Contains(t, out, category.DifficultyVeryEasy.Descriptor().Evaluation)
}

func TestBadge_PlainText(t *testing.T) {
	th := NewTheme(false)
	assert.Equal(t, "[Phù hợp]", th.VerdictBadge(fit.VerdictFit))
	assert.Equal(t, "Cao", th.Badge(category.RpbisHigh.Descriptor()))
}

func TestBadge_Colored(t *testing.T) {
	th := NewTheme(true)
	got := th.VerdictBadge(fit.VerdictNotFit)
	assert.Contains(t, got, "Không phù hợp")
	assert.NotEqual(t, "[Không phù hợp]", got)
}

func TestResult(t *testing.T) {
	p, buf := plain()
	p.Result("q7", fit.EvaluateCTT(fit.ItemStat{Discrimination: 0.5, Difficulty: 0.05, Rpbis: 0.9}))

	out := buf.String()
	assert.Contains(t, out, "q7")
	assert.Contains(t, out, "[Cần xem xét]")
	assert.Contains(t, out, "Độ khó")
	assert.NotContains(t, out, "R_PBIS")
}

func TestCTTTable(t *testing.T) {
	p, buf := plain()
	p.CTTTable([]analysis.QuestionAnalysis{
		{Analysis: analysis.QuestionResult{DiscriminationIndex: 0.5, DifficultyIndex: 0.6, Rpbis: 0.9}},
		{Analysis: analysis.QuestionResult{DiscriminationIndex: 0.01, DifficultyIndex: 0.05, Rpbis: 0.1}},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "[Phù hợp]")
	assert.Contains(t, lines[3], "[Không phù hợp]")
}

func TestRaschTable(t *testing.T) {
	p, buf := plain()
	p.RaschTable([]analysis.RaschQuestion{
		{Infit: 1.0, Outfit: 1.1, Reliability: 0.9},
		{Infit: 1.25, Outfit: 1.0, Reliability: 0.9},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "[Phù hợp]")
	assert.Contains(t, lines[3], "[Cần xem xét]")
}

func TestReview(t *testing.T) {
	p, buf := plain()
	p.Review(nil)
	assert.Equal(t, "No items need review.\n", buf.String())

	buf.Reset()
	p.Review([]review.Entry{{ItemID: "q3", Ordinal: 3, Indices: []review.Index{
		{Name: category.StatInfit, Value: 1.5, Message: "out of band"},
	}}})
	out := buf.String()
	assert.Contains(t, out, "1 items need review (1 flagged indices)")
	assert.Contains(t, out, "Câu 3")
	assert.Contains(t, out, "out of band")
}

func TestDistribution(t *testing.T) {
	p, buf := plain()
	p.Distribution(analysis.Distribution{Fit: 1, Considerable: 1, NotFit: 2})

	out := buf.String()
	assert.Contains(t, out, "Phù hợp             1   25.0%")
	assert.Contains(t, out, "Không phù hợp       2   50.0%")
}

func TestDistribution_Empty(t *testing.T) {
	p, buf := plain()
	p.Distribution(analysis.Distribution{})
	assert.Equal(t, 3, strings.Count(buf.String(), "0.0%"))
}

func TestDetails(t *testing.T) {
	p, buf := plain()
	p.Details(analysis.GeneralDetails{
		ProjectID:     "p1",
		CronbachAlpha: 0.85,
		Project:       analysis.Project{TotalQuestions: 40, TotalStudents: 120},
	})

	out := buf.String()
	assert.Contains(t, out, "p1")
	assert.Contains(t, out, "Questions: 40   Students: 120")
	assert.Contains(t, out, "Tốt")
}

func TestAdvice(t *testing.T) {
	p, buf := plain()
	p.Advice([]advisor.Advice{
		{ItemID: "q1", Ordinal: 1, Diagnosis: "too easy", Suggestions: []string{"add distractor"}, Rewrite: "What is 17+26?"},
		{ItemID: "q2", Ordinal: 2, Err: "rate limited"},
	})

	out := buf.String()
	assert.Contains(t, out, "  - add distractor")
	assert.Contains(t, out, "Rewrite: What is 17+26?")
	assert.Contains(t, out, "advice unavailable: rate limited")
}
