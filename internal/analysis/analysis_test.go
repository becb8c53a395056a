package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/testlens/internal/category"
	"github.com/abhisek/testlens/internal/fit"
)

const questionsJSON = `{"code": 200, "message": "ok", "data": [
	{"id": "q1", "exam_id": "e1", "content": "2+2?", "question_analysis": {"discrimination_index": 0.5, "difficulty_index": 0.6, "rpbis": 0.9}},
	{"id": "q2", "exam_id": "e1", "content": "3+3?", "question_analysis": {"discrimination_index": 0.5, "difficulty_index": 0.05, "rpbis": 0.9}},
	{"id": "", "exam_id": "e1", "content": "4+4?", "question_analysis": {"discrimination_index": 0.01, "difficulty_index": 0.05, "rpbis": 0.1}}
]}`

const raschJSON = `[
	{"id": "r1", "infit": 1.0, "outfit": 1.1, "reliability": 0.85, "ability": 0.2, "difficulty": -0.4},
	{"id": "r2", "infit": 1.5, "outfit": 1.0, "reliability": 0.9},
	{"id": "r3", "infit": 0.5, "outfit": 2.0, "reliability": 0.2}
]`

func TestDecodeQuestions(t *testing.T) {
	qs, err := Decode[[]QuestionAnalysis](KindQuestions, []byte(questionsJSON))
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, "q2", qs[1].ID)
	assert.Equal(t, fit.ItemStat{Discrimination: 0.5, Difficulty: 0.05, Rpbis: 0.9}, qs[1].Stat())

	items := CTTItems(qs)
	assert.Equal(t, "3", items[2].ID)
}

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		raw     string
		wantErr bool
	}{
		{"bare rasch array", KindRasch, raschJSON, false},
		{"missing rpbis", KindQuestions, `[{"question_analysis": {"discrimination_index": 0.1, "difficulty_index": 0.2}}]`, true},
		{"string infit", KindRasch, `[{"infit": "1.0", "outfit": 1.0, "reliability": 0.8}]`, true},
		{"details", KindDetails, `{"data": {"cronbach_alpha": 0.81, "avg_score": 6.2}}`, false},
		{"details without alpha", KindDetails, `{"avg_score": 6.2}`, true},
		{"grade out of range", KindStudents, `[{"student_id": "s1", "grade": 11}]`, true},
		{"ungraded student", KindStudents, `[{"student_id": "s1", "grade": null}]`, false},
		{"histogram", KindHistogram, `{"score": [{"0-1": 2}, {"1-2": 5}], "r_pbis": []}`, false},
		{"malformed", KindRasch, `[{`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(tt.kind, []byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePayload_UnknownKind(t *testing.T) {
	err := ValidatePayload("bogus", []byte(`[]`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestUnwrap(t *testing.T) {
	assert.JSONEq(t, `[1,2]`, string(Unwrap([]byte(`{"data": [1,2]}`))))
	assert.JSONEq(t, `[1,2]`, string(Unwrap([]byte(`[1,2]`))))
	assert.JSONEq(t, `{"data": null}`, string(Unwrap([]byte(`{"data": null}`))))
}

func TestParseModel(t *testing.T) {
	m, ok := ParseModel(" Rasch ")
	assert.True(t, ok)
	assert.Equal(t, ModelRasch, m)

	_, ok = ParseModel("irt")
	assert.False(t, ok)
}

func TestDistribute(t *testing.T) {
	qs, err := Decode[[]QuestionAnalysis](KindQuestions, []byte(questionsJSON))
	require.NoError(t, err)
	d := Distribute(CTTItems(qs), fit.EvaluateCTT)
	assert.Equal(t, Distribution{Fit: 1, Considerable: 1, NotFit: 1}, d)
	assert.Equal(t, 3, d.Total())

	rs, err := Decode[[]RaschQuestion](KindRasch, []byte(raschJSON))
	require.NoError(t, err)
	assert.Equal(t, Distribution{Fit: 1, Considerable: 1, NotFit: 1}, Distribute(RaschItems(rs), fit.EvaluateRasch))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, Spread{}, Describe(nil))

	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, s.Mean, 1e-9)
	assert.InDelta(t, 4.5, s.Median, 1e-9)
	assert.InDelta(t, 2.0, s.StdDev, 1e-9)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
}

func TestAverages(t *testing.T) {
	qs := []QuestionAnalysis{
		{Analysis: QuestionResult{DiscriminationIndex: 0.2, DifficultyIndex: 0.4, Rpbis: 0.3}},
		{Analysis: QuestionResult{DiscriminationIndex: 0.4, DifficultyIndex: 0.6, Rpbis: 0.5}},
	}
	avg := CTTAverages(qs)
	assert.InDelta(t, 0.3, avg[category.StatDiscrimination].Mean, 1e-9)
	assert.InDelta(t, 0.5, avg[category.StatDifficulty].Mean, 1e-9)
	assert.InDelta(t, 0.4, avg[category.StatRpbis].Mean, 1e-9)

	empty := RaschAverages(nil)
	assert.Equal(t, Spread{}, empty[category.StatInfit])
}

func ptr(v float64) *float64 { return &v }

func TestAssignGroup(t *testing.T) {
	tests := []struct {
		score *float64
		want  int
	}{
		{nil, 0},
		{ptr(100), 5},
		{ptr(80), 5},
		{ptr(79.9), 4},
		{ptr(65), 4},
		{ptr(50), 3},
		{ptr(35), 2},
		{ptr(34.9), 1},
		{ptr(0), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AssignGroup(tt.score))
	}
}

func TestGroupCounts(t *testing.T) {
	students := []Student{
		{StudentID: "a", Grade: ptr(9)},
		{StudentID: "b", Grade: ptr(6.5)},
		{StudentID: "c", Grade: ptr(3)},
		{StudentID: "d"},
	}
	assert.Equal(t, [6]int{1, 1, 0, 0, 1, 1}, GroupCounts(students))
}

func TestTestVerdict(t *testing.T) {
	assert.Equal(t, category.CronbachGood, TestVerdict(GeneralDetails{CronbachAlpha: 0.85}))
	assert.Equal(t, category.CronbachUnacceptable, TestVerdict(GeneralDetails{}))
}

func TestInfitDeviations(t *testing.T) {
	got := InfitDeviations([]RaschQuestion{
		{ID: "a", Infit: 1.0},
		{Infit: 1.4},
		{ID: "c", Infit: 0.77},
	})
	require.Len(t, got, 3)
	assert.False(t, got[0].Outlier)
	assert.Equal(t, "2", got[1].ItemID)
	assert.True(t, got[1].Outlier)
	assert.InDelta(t, 0.4, got[1].Delta, 1e-9)
	assert.False(t, got[2].Outlier)
}
