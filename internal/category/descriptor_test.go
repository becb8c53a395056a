package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCategoryHasDescriptor(t *testing.T) {
	for _, stat := range AllStats() {
		for _, c := range Values(stat) {
			d := c.Descriptor()
			assert.NotEmpty(t, d.Label, "%s label", c.Key())
			assert.NotEmpty(t, d.Evaluation, "%s evaluation", c.Key())
			assert.NotEmpty(t, d.Tone, "%s tone", c.Key())
		}
	}
}

func TestDescriptor_UnknownValuePanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = Difficulty("diff-medium").Descriptor()
	})
}

func TestDescriptor_BadgeVariants(t *testing.T) {
	tests := []struct {
		cat  Category
		want Variant
	}{
		{DiscriminationLow, VariantVeryHard},
		{DiscriminationAverage, VariantHard},
		{DiscriminationHigh, VariantMedium},
		{DifficultyVeryEasy, VariantVeryEasy},
		{DifficultyEasy, VariantEasy},
		{DifficultyDifficult, VariantHard},
		{DifficultyVeryDifficult, VariantVeryHard},
		{RpbisHigh, VariantNone},
		{FitAcceptable, VariantNone},
	}

	for _, tt := range tests {
		if got := tt.cat.Descriptor().Variant; got != tt.want {
			t.Errorf("%s variant = %q, want %q", tt.cat.Key(), got, tt.want)
		}
	}
}

func TestInfitAndOutfitShareBins(t *testing.T) {
	assert.Equal(t, Values(StatInfit), Values(StatOutfit))
	assert.Equal(t, EvaluateInfit(1.5).Descriptor(), EvaluateOutfit(1.5).Descriptor())
}

func TestParseStat(t *testing.T) {
	tests := []struct {
		in   string
		want Stat
	}{
		{"discrimination", StatDiscrimination},
		{"discrimination_index", StatDiscrimination},
		{"Difficulty", StatDifficulty},
		{"difficulty_index", StatDifficulty},
		{"r_pbis", StatRpbis},
		{"rpbis", StatRpbis},
		{"infit", StatInfit},
		{" outfit ", StatOutfit},
		{"cronbachAlpha", StatCronbachAlpha},
		{"cronbach_alpha", StatCronbachAlpha},
		{"ability", StatAbility},
		{"reliability", StatReliability},
	}

	for _, tt := range tests {
		got, err := ParseStat(tt.in)
		if err != nil {
			t.Errorf("ParseStat(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	_, err := ParseStat("p_value")
	assert.EqualError(t, err, `unknown statistic "p_value"`)
}

func TestStat_Label(t *testing.T) {
	assert.Equal(t, "Độ khó", StatDifficulty.Label())
	assert.Equal(t, "Độ p.cách", StatDiscrimination.Label())
	assert.Equal(t, "R_PBIS", StatRpbis.Label())
	assert.Equal(t, "infit", StatInfit.Label())
	assert.Equal(t, "reliability", StatReliability.Label())
}
