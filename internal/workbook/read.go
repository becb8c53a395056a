package workbook

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/testlens/internal/analysis"
)

var ErrMissingColumn = errors.New("missing column")

// Sheet is the first worksheet of an input workbook keyed by lower-cased
// header.
type Sheet struct {
	header map[string]int
	names  []string
	rows   []row
}

// row is one non-blank data row with its 1-based sheet row number.
type row struct {
	line  int
	cells []string
}

// Open reads the first worksheet of an XLSX workbook. The first row is
// the header; blank rows are skipped.
func Open(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	s := &Sheet{header: map[string]int{}, names: rows[0]}
	for i, h := range rows[0] {
		s.header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for i, cells := range rows[1:] {
		if strings.TrimSpace(strings.Join(cells, "")) != "" {
			s.rows = append(s.rows, row{line: i + 2, cells: cells})
		}
	}
	return s, nil
}

// Has reports whether any of the given headers is present.
func (s *Sheet) Has(names ...string) bool {
	_, ok := s.col(names...)
	return ok
}

func (s *Sheet) col(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := s.header[n]; ok {
			return i, true
		}
	}
	return 0, false
}

func (s *Sheet) text(r row, names ...string) string {
	i, ok := s.col(names...)
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// number parses a numeric cell. Errors name the sheet row and the header as
// written in the workbook.
func (s *Sheet) number(r row, names ...string) (float64, error) {
	i, ok := s.col(names...)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, names[0])
	}
	raw := s.text(r, names...)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s: %q is not a number", r.line, strings.TrimSpace(s.names[i]), raw)
	}
	return v, nil
}

func (s *Sheet) optional(r row, names ...string) (float64, error) {
	if s.text(r, names...) == "" {
		return 0, nil
	}
	return s.number(r, names...)
}

// Model guesses the item model from the header.
func (s *Sheet) Model() analysis.Model {
	if s.Has("infit") && s.Has("outfit") {
		return analysis.ModelRasch
	}
	return analysis.ModelCTT
}

// Questions reads CTT item statistics.
func (s *Sheet) Questions() ([]analysis.QuestionAnalysis, error) {
	out := make([]analysis.QuestionAnalysis, 0, len(s.rows))
	for _, r := range s.rows {
		disc, err := s.number(r, "discrimination_index", "discrimination")
		if err != nil {
			return nil, err
		}
		diff, err := s.number(r, "difficulty_index", "difficulty")
		if err != nil {
			return nil, err
		}
		rpbis, err := s.number(r, "rpbis", "r_pbis")
		if err != nil {
			return nil, err
		}
		out = append(out, analysis.QuestionAnalysis{
			ID:      s.text(r, "id", "question_id"),
			Content: s.text(r, "content"),
			Analysis: analysis.QuestionResult{
				DiscriminationIndex: disc,
				DifficultyIndex:     diff,
				Rpbis:               rpbis,
			},
		})
	}
	return out, nil
}

// RaschQuestions reads Rasch item statistics. Ability and difficulty
// columns are optional.
func (s *Sheet) RaschQuestions() ([]analysis.RaschQuestion, error) {
	out := make([]analysis.RaschQuestion, 0, len(s.rows))
	for _, r := range s.rows {
		q := analysis.RaschQuestion{
			ID:      s.text(r, "id", "question_id"),
			Content: s.text(r, "content"),
		}
		var err error
		if q.Infit, err = s.number(r, "infit"); err != nil {
			return nil, err
		}
		if q.Outfit, err = s.number(r, "outfit"); err != nil {
			return nil, err
		}
		if q.Reliability, err = s.number(r, "reliability"); err != nil {
			return nil, err
		}
		if q.Ability, err = s.optional(r, "ability"); err != nil {
			return nil, err
		}
		if q.Difficulty, err = s.optional(r, "difficulty"); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}
