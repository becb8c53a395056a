package workbook

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
)

func buildInput(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, writeRows(f, "Sheet1", rows))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestOpen_CTT(t *testing.T) {
	in := buildInput(t, [][]any{
		{"ID", "Content", "Discrimination_Index", "Difficulty_Index", "RPBIS"},
		{"q1", "2+2?", 0.5, 0.6, 0.9},
		{},
		{"q2", "3+3?", 0.01, 0.05, 0.1},
	})

	s, err := Open(in)
	require.NoError(t, err)
	assert.Equal(t, analysis.ModelCTT, s.Model())

	qs, err := s.Questions()
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "q2", qs[1].ID)
	assert.Equal(t, fit.ItemStat{Discrimination: 0.01, Difficulty: 0.05, Rpbis: 0.1}, qs[1].Stat())
}

func TestOpen_Rasch(t *testing.T) {
	in := buildInput(t, [][]any{
		{"id", "infit", "outfit", "reliability", "ability"},
		{"r1", 1.0, 1.1, 0.85, ""},
		{"r2", 1.5, 0.9, 0.9, 0.4},
	})

	s, err := Open(in)
	require.NoError(t, err)
	assert.Equal(t, analysis.ModelRasch, s.Model())

	qs, err := s.RaschQuestions()
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, 0.0, qs[0].Ability)
	assert.Equal(t, 0.4, qs[1].Ability)
	assert.Equal(t, 1.5, qs[1].Infit)
}

func TestQuestions_Errors(t *testing.T) {
	missing := buildInput(t, [][]any{
		{"id", "discrimination", "difficulty"},
		{"q1", 0.5, 0.6},
	})
	s, err := Open(missing)
	require.NoError(t, err)
	_, err = s.Questions()
	assert.ErrorIs(t, err, ErrMissingColumn)

	bad := buildInput(t, [][]any{
		{"id", "discrimination", "difficulty", "rpbis"},
		{"q1", 0.5, "hard", 0.3},
	})
	s, err = Open(bad)
	require.NoError(t, err)
	_, err = s.Questions()
	assert.ErrorContains(t, err, `row 2: difficulty: "hard" is not a number`)
}

func TestQuestions_ErrorNamesSheetRow(t *testing.T) {
	in := buildInput(t, [][]any{
		{"id", "Discrimination", "Difficulty", "RPBIS"},
		{"q1", 0.5, 0.6, 0.3},
		{},
		{"q2", 0.5, "abc", 0.3},
	})
	s, err := Open(in)
	require.NoError(t, err)
	_, err = s.Questions()
	assert.EqualError(t, err, `row 4: Difficulty: "abc" is not a number`)

	rasch := buildInput(t, [][]any{
		{"id", "infit", "outfit", "reliability"},
		{},
		{},
		{"r1", 1.0, "x", 0.9},
	})
	s, err = Open(rasch)
	require.NoError(t, err)
	_, err = s.RaschQuestions()
	assert.EqualError(t, err, `row 4: outfit: "x" is not a number`)
}

func TestOpen_NotAWorkbook(t *testing.T) {
	_, err := Open(bytes.NewBufferString("id,infit\n1,1.0\n"))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	qs := []analysis.QuestionAnalysis{
		{ID: "q1", Analysis: analysis.QuestionResult{DiscriminationIndex: 0.5, DifficultyIndex: 0.6, Rpbis: 0.9}},
		{ID: "q2", Analysis: analysis.QuestionResult{DiscriminationIndex: 0.5, DifficultyIndex: 0.05, Rpbis: 0.9}},
	}
	items := analysis.CTTItems(qs)
	entries := review.BuildCTTList(items)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Report{
		ProjectID: "p1",
		Questions: qs,
		Entries:   entries,
		Dist:      analysis.Distribute(items, fit.EvaluateCTT),
	}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetItems, SheetReview, SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(SheetItems)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Verdict", rows[0][6])
	assert.Equal(t, fit.VerdictConsiderable.Label(), rows[2][6])
	assert.Equal(t, "Độ khó", rows[2][7])

	rows, err = f.GetRows(SheetReview)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2", "q2", "Độ khó", "0.05"}, rows[1][:4])

	rows, err = f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Total", "2"}, rows[4])
}

func TestWrite_Rasch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Report{Rasch: []analysis.RaschQuestion{
		{ID: "r1", Infit: 1.25, Outfit: 1.0, Reliability: 0.9},
	}}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetItems)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Band", rows[0][7])
	assert.Equal(t, fit.VerdictConsiderable.Label(), rows[1][7])
	assert.Equal(t, fit.VerdictFit.Label(), rows[1][8])
}
