// Package workbook reads item statistics from and writes classification
// reports to XLSX workbooks.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/testlens/internal/analysis"
	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
)

const (
	SheetItems   = "Items"
	SheetReview  = "Review"
	SheetSummary = "Summary"
)

// Report is everything written to an exported workbook. Exactly one of
// Questions and Rasch is expected to be set.
type Report struct {
	ProjectID string
	Questions []analysis.QuestionAnalysis
	Rasch     []analysis.RaschQuestion
	Entries   []review.Entry
	Dist      analysis.Distribution
}

// Write encodes r as an XLSX workbook to w.
func Write(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetItems); err != nil {
		return err
	}
	for _, name := range []string{SheetReview, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	var items [][]any
	if r.Rasch != nil {
		items = raschRows(r.Rasch)
	} else {
		items = cttRows(r.Questions)
	}
	sheets := map[string][][]any{
		SheetItems:   items,
		SheetReview:  reviewRows(r.Entries),
		SheetSummary: summaryRows(r),
	}
	for name, rows := range sheets {
		if err := writeRows(f, name, rows); err != nil {
			return fmt.Errorf("write %s sheet: %w", name, err)
		}
		if err := f.SetRowStyle(name, 1, 1, bold); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func cttRows(qs []analysis.QuestionAnalysis) [][]any {
	rows := [][]any{{"#", "ID", "Content", "Discrimination", "Difficulty", "Rpbis", "Verdict", "Violations"}}
	for i, q := range qs {
		s := q.Stat()
		res := fit.EvaluateCTT(s)
		rows = append(rows, []any{
			i + 1, q.ID, q.Content,
			s.Discrimination, s.Difficulty, s.Rpbis,
			res.Verdict.Label(), violations(res),
		})
	}
	return rows
}

func raschRows(qs []analysis.RaschQuestion) [][]any {
	rows := [][]any{{"#", "ID", "Content", "Difficulty", "Infit", "Outfit", "Reliability", "Band", "Verdict", "Violations"}}
	for i, q := range qs {
		res := fit.EvaluateRasch(q.Stat())
		band, _ := fit.MeanSquareBand(q.Infit, q.Outfit)
		rows = append(rows, []any{
			i + 1, q.ID, q.Content,
			q.Difficulty, q.Infit, q.Outfit, q.Reliability,
			band.Label(), res.Verdict.Label(), violations(res),
		})
	}
	return rows
}

func violations(res fit.Result) string {
	labels := make([]string, len(res.Violated))
	for i, v := range res.Violated {
		labels[i] = v.Stat.Label()
	}
	return strings.Join(labels, ", ")
}

func reviewRows(entries []review.Entry) [][]any {
	rows := [][]any{{"Ordinal", "Item", "Index", "Value", "Message"}}
	for _, e := range entries {
		for _, idx := range e.Indices {
			rows = append(rows, []any{e.Ordinal, e.ItemID, idx.Name.Label(), idx.Value, idx.Message})
		}
	}
	return rows
}

func summaryRows(r Report) [][]any {
	return [][]any{
		{"Project", r.ProjectID},
		{fit.VerdictFit.Label(), r.Dist.Fit},
		{fit.VerdictConsiderable.Label(), r.Dist.Considerable},
		{fit.VerdictNotFit.Label(), r.Dist.NotFit},
		{"Total", r.Dist.Total()},
		{"Flagged indices", review.Count(r.Entries)},
	}
}
