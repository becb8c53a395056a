package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/testlens/internal/category"
)

func TestEvaluateCTT(t *testing.T) {
	tests := []struct {
		name     string
		stat     ItemStat
		want     Verdict
		violated []category.Stat
	}{
		{
			name: "all good",
			stat: ItemStat{Discrimination: 0.5, Difficulty: 0.6, Rpbis: 0.9},
			want: VerdictFit,
		},
		{
			name:     "all bad",
			stat:     ItemStat{Discrimination: 0.01, Difficulty: 0.05, Rpbis: 0.1},
			want:     VerdictNotFit,
			violated: []category.Stat{category.StatDiscrimination, category.StatDifficulty, category.StatRpbis},
		},
		{
			name:     "difficulty only",
			stat:     ItemStat{Discrimination: 0.5, Difficulty: 0.05, Rpbis: 0.9},
			want:     VerdictConsiderable,
			violated: []category.Stat{category.StatDifficulty},
		},
		{
			name:     "top difficulty bin is bad",
			stat:     ItemStat{Discrimination: 0.2, Difficulty: 0.8, Rpbis: 0.45},
			want:     VerdictConsiderable,
			violated: []category.Stat{category.StatDifficulty},
		},
		{
			name:     "two bad",
			stat:     ItemStat{Discrimination: 0.05, Difficulty: 0.3, Rpbis: 0.2},
			want:     VerdictConsiderable,
			violated: []category.Stat{category.StatDiscrimination, category.StatRpbis},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCTT(tt.stat)
			assert.Equal(t, tt.want, got.Verdict)
			assert.Equal(t, tt.violated, statsOf(got.Violated))
		})
	}
}

func TestEvaluateCTT_ViolationCarriesDescriptor(t *testing.T) {
	got := EvaluateCTT(ItemStat{Discrimination: 0.5, Difficulty: 0.05, Rpbis: 0.9})
	require.Len(t, got.Violated, 1)

	v := got.Violated[0]
	assert.Equal(t, category.DifficultyVeryEasy, v.Category)
	assert.Equal(t, 0.05, v.Value)
	assert.Equal(t, category.DifficultyVeryEasy.Descriptor().Evaluation, v.Descriptor().Evaluation)
}

func TestEvaluateRasch(t *testing.T) {
	tests := []struct {
		name     string
		stat     RaschItemStat
		want     Verdict
		violated []category.Stat
	}{
		{
			name: "all acceptable",
			stat: RaschItemStat{Infit: 1.0, Outfit: 1.1, Reliability: 0.85},
			want: VerdictFit,
		},
		{
			name:     "all bad",
			stat:     RaschItemStat{Infit: 0.5, Outfit: 1.6, Reliability: 0.3},
			want:     VerdictNotFit,
			violated: []category.Stat{category.StatInfit, category.StatOutfit, category.StatReliability},
		},
		{
			name:     "outfit only",
			stat:     RaschItemStat{Infit: 1.0, Outfit: 1.4, Reliability: 0.7},
			want:     VerdictConsiderable,
			violated: []category.Stat{category.StatOutfit},
		},
		{
			name:     "low reliability is bad",
			stat:     RaschItemStat{Infit: 0.9, Outfit: 0.9, Reliability: 0.65},
			want:     VerdictConsiderable,
			violated: []category.Stat{category.StatReliability},
		},
		{
			name: "ability is not scored",
			stat: RaschItemStat{Infit: 1.0, Outfit: 1.0, Reliability: 0.9, Ability: -5},
			want: VerdictFit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRasch(tt.stat)
			assert.Equal(t, tt.want, got.Verdict)
			assert.Equal(t, tt.violated, statsOf(got.Violated))
		})
	}
}

func TestResult_Summary(t *testing.T) {
	fitRes := EvaluateCTT(ItemStat{Discrimination: 0.5, Difficulty: 0.6, Rpbis: 0.9})
	assert.Equal(t, "Rất tốt để đánh giá năng lực thí sinh.", fitRes.Summary())

	mixed := EvaluateCTT(ItemStat{Discrimination: 0.05, Difficulty: 0.3, Rpbis: 0.2})
	assert.Equal(t,
		"Có thể sử dụng nhưng cần cải thiện để tăng hiệu quả đánh giá.\nChỉ số cần cải thiện: Độ p.cách, R_PBIS.",
		mixed.Summary())

	bad := EvaluateRasch(RaschItemStat{Infit: 0.5, Outfit: 1.6, Reliability: 0.3})
	assert.Equal(t,
		"Không hiệu quả trong đánh giá, cần xem xét lại.\nChỉ số vi phạm: infit, outfit, reliability.",
		bad.Summary())
}

func TestVerdict_Text(t *testing.T) {
	tests := []struct {
		v       Verdict
		label   string
		variant category.Variant
	}{
		{VerdictFit, "Phù hợp", category.VariantMedium},
		{VerdictConsiderable, "Cần xem xét", category.VariantHard},
		{VerdictNotFit, "Không phù hợp", category.VariantVeryHard},
	}

	for _, tt := range tests {
		if got := tt.v.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.v, got, tt.label)
		}
		if got := tt.v.Variant(); got != tt.variant {
			t.Errorf("%s.Variant() = %q, want %q", tt.v, got, tt.variant)
		}
		if tt.v.Evaluation() == "" {
			t.Errorf("%s.Evaluation() is empty", tt.v)
		}
	}
}

func statsOf(vs []Violation) []category.Stat {
	if len(vs) == 0 {
		return nil
	}
	out := make([]category.Stat, len(vs))
	for i, v := range vs {
		out[i] = v.Stat
	}
	return out
}
