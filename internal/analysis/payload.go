// Package analysis holds the analysis backend's payload types and the
// summaries derived from them.
package analysis

import (
	"strconv"
	"strings"

	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
)

// Model selects the item model a project was analysed with.
type Model string

const (
	ModelCTT   Model = "ctt"
	ModelRasch Model = "rasch"
)

// ParseModel accepts "ctt" or "rasch" in any case.
func ParseModel(s string) (Model, bool) {
	switch Model(strings.ToLower(strings.TrimSpace(s))) {
	case ModelCTT:
		return ModelCTT, true
	case ModelRasch:
		return ModelRasch, true
	}
	return "", false
}

// QuestionAnalysis is one CTT-analysed question.
type QuestionAnalysis struct {
	ID       string         `json:"id"`
	ExamID   string         `json:"exam_id"`
	Content  string         `json:"content"`
	Analysis QuestionResult `json:"question_analysis"`
}

type QuestionResult struct {
	DiscriminationIndex    float64              `json:"discrimination_index"`
	DifficultyIndex        float64              `json:"difficulty_index"`
	Rpbis                  float64              `json:"rpbis"`
	SelectionRate          float64              `json:"selection_rate"`
	GroupChoicePercentages []map[string]float64 `json:"group_choice_percentages,omitempty"`
}

// Stat returns the scorer input for the question.
func (q QuestionAnalysis) Stat() fit.ItemStat {
	return fit.ItemStat{
		Discrimination: q.Analysis.DiscriminationIndex,
		Difficulty:     q.Analysis.DifficultyIndex,
		Rpbis:          q.Analysis.Rpbis,
	}
}

// OptionAnalysis is one answer option of a question.
type OptionAnalysis struct {
	ID       string       `json:"id"`
	Content  string       `json:"content"`
	Analysis OptionResult `json:"option_analysis"`
}

type OptionResult struct {
	DiscriminationIndex float64 `json:"discrimination_index"`
	Rpbis               float64 `json:"rpbis"`
	SelectionRate       float64 `json:"selection_rate"`
	SelectedBy          int     `json:"selected_by"`
	TopSelected         int     `json:"top_selected"`
	BottomSelected      int     `json:"bottom_selected"`
}

// RaschQuestion is one Rasch-analysed question.
type RaschQuestion struct {
	ID          string  `json:"id"`
	Content     string  `json:"content"`
	Difficulty  float64 `json:"difficulty"`
	Logit       float64 `json:"logit"`
	Infit       float64 `json:"infit"`
	Outfit      float64 `json:"outfit"`
	Ability     float64 `json:"ability"`
	Reliability float64 `json:"reliability"`
}

func (q RaschQuestion) Stat() fit.RaschItemStat {
	return fit.RaschItemStat{
		Infit:       q.Infit,
		Outfit:      q.Outfit,
		Ability:     q.Ability,
		Reliability: q.Reliability,
		Difficulty:  q.Difficulty,
	}
}

// Project is the summary block embedded in GeneralDetails.
type Project struct {
	Name           string `json:"name"`
	TotalOptions   int    `json:"total_options"`
	TotalStudents  int    `json:"total_students"`
	TotalQuestions int    `json:"total_questions"`
}

// GeneralDetails is the test-level result of an analysis run.
type GeneralDetails struct {
	ID                     string   `json:"id"`
	ProjectID              string   `json:"project_id"`
	ExamID                 string   `json:"exam_id"`
	CreatedAt              string   `json:"created_at"`
	CronbachAlpha          float64  `json:"cronbach_alpha"`
	AvgScore               float64  `json:"avg_score"`
	AvgDiscriminationIndex float64  `json:"avg_discrimination_index"`
	AvgDifficultyIndex     float64  `json:"avg_difficulty_index"`
	AvgRpbis               float64  `json:"avg_rpbis"`
	AvgInfit               *float64 `json:"avg_infit,omitempty"`
	AvgOutfit              *float64 `json:"avg_outfit,omitempty"`
	AvgReliability         *float64 `json:"avg_reliability,omitempty"`
	Project                Project  `json:"projects"`
}

// Histogram holds bucket counts per statistic; each bucket is a
// single-key map from bucket label to count.
type Histogram struct {
	Score          []map[string]float64 `json:"score"`
	Difficulty     []map[string]float64 `json:"difficulty"`
	Discrimination []map[string]float64 `json:"discrimination"`
	Rpbis          []map[string]float64 `json:"r_pbis"`
}

// Student is one examinee's result. Grade is on a 0 to 10 scale.
type Student struct {
	ID        string   `json:"id"`
	StudentID string   `json:"student_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Grade     *float64 `json:"grade"`
	Ability   *float64 `json:"ability,omitempty"`
}

// Score returns the grade as a percentage, or nil when ungraded.
func (s Student) Score() *float64 {
	if s.Grade == nil {
		return nil
	}
	v := *s.Grade * 10
	return &v
}

// CTTItems converts questions to review items; item IDs fall back to the
// 1-based position when the backend omits them.
func CTTItems(qs []QuestionAnalysis) []review.Item[fit.ItemStat] {
	items := make([]review.Item[fit.ItemStat], len(qs))
	for i, q := range qs {
		items[i] = review.Item[fit.ItemStat]{ID: idOr(q.ID, i), Stat: q.Stat()}
	}
	return items
}

func RaschItems(qs []RaschQuestion) []review.Item[fit.RaschItemStat] {
	items := make([]review.Item[fit.RaschItemStat], len(qs))
	for i, q := range qs {
		items[i] = review.Item[fit.RaschItemStat]{ID: idOr(q.ID, i), Stat: q.Stat()}
	}
	return items
}

func idOr(id string, i int) string {
	if id != "" {
		return id
	}
	return strconv.Itoa(i + 1)
}
