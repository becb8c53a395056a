package category

import "fmt"

// Category is the ordinal bin a statistic value falls into. Each statistic
// family has its own closed set of values; the concrete types below are the
// only implementations.
type Category interface {
	// Key returns the stable wire identifier, e.g. "diff-very-easy".
	Key() string

	// Descriptor returns the static display metadata for the category.
	Descriptor() Descriptor
}

// Discrimination bins the discrimination index.
type Discrimination string

const (
	DiscriminationLow     Discrimination = "discrimination-low"
	DiscriminationAverage Discrimination = "discrimination-average"
	DiscriminationHigh    Discrimination = "discrimination-high"
)

// Difficulty bins the fraction-correct difficulty index.
//
// The names are inherited from the analysis backend and read backwards:
// VeryEasy is the LOWEST fraction-correct bin (few examinees answered
// correctly) and VeryDifficult the HIGHEST. The descriptor copy matches the
// statistic, not the name. Kept as-is so stored reports stay comparable.
type Difficulty string

const (
	DifficultyVeryEasy      Difficulty = "diff-very-easy"
	DifficultyEasy          Difficulty = "diff-easy"
	DifficultyDifficult     Difficulty = "diff-difficult"
	DifficultyVeryDifficult Difficulty = "diff-very-difficult"
)

// Rpbis bins the point-biserial correlation.
type Rpbis string

const (
	RpbisLow      Rpbis = "rpbis-low"
	RpbisAverage  Rpbis = "rpbis-average"
	RpbisHigh     Rpbis = "rpbis-high"
	RpbisVeryHigh Rpbis = "rpbis-very-high"
)

// FitStat bins infit and outfit mean-square values. Both statistics share
// one set of bins.
type FitStat string

const (
	FitTooLow     FitStat = "fit-too-low"
	FitAcceptable FitStat = "fit-acceptable"
	FitTooHigh    FitStat = "fit-too-high"
)

// Reliability bins a per-item or per-test reliability coefficient.
type Reliability string

const (
	ReliabilityVeryLow  Reliability = "reliability-very-low"
	ReliabilityLow      Reliability = "reliability-low"
	ReliabilityModerate Reliability = "reliability-moderate"
	ReliabilityHigh     Reliability = "reliability-high"
	ReliabilityVeryHigh Reliability = "reliability-very-high"
)

// CronbachAlpha bins the test-level internal consistency coefficient.
type CronbachAlpha string

const (
	CronbachUnacceptable CronbachAlpha = "cronbach-unacceptable"
	CronbachPoor         CronbachAlpha = "cronbach-poor"
	CronbachQuestionable CronbachAlpha = "cronbach-questionable"
	CronbachAcceptable   CronbachAlpha = "cronbach-acceptable"
	CronbachGood         CronbachAlpha = "cronbach-good"
	CronbachExcellent    CronbachAlpha = "cronbach-excellent"
)

// Ability bins an examinee ability estimate in logits.
type Ability string

const (
	AbilityExtremelyLow  Ability = "ability-extremely-low"
	AbilityBelowAverage  Ability = "ability-below-average"
	AbilityNormal        Ability = "ability-normal"
	AbilityAboveAverage  Ability = "ability-above-average"
	AbilityExtremelyHigh Ability = "ability-extremely-high"
)

func (c Discrimination) Key() string { return string(c) }
func (c Difficulty) Key() string     { return string(c) }
func (c Rpbis) Key() string          { return string(c) }
func (c FitStat) Key() string        { return string(c) }
func (c Reliability) Key() string    { return string(c) }
func (c CronbachAlpha) Key() string  { return string(c) }
func (c Ability) Key() string        { return string(c) }

func (c Discrimination) Descriptor() Descriptor { return lookup(discriminationText, c) }
func (c Difficulty) Descriptor() Descriptor     { return lookup(difficultyText, c) }
func (c Rpbis) Descriptor() Descriptor          { return lookup(rpbisText, c) }
func (c FitStat) Descriptor() Descriptor        { return lookup(fitStatText, c) }
func (c Reliability) Descriptor() Descriptor    { return lookup(reliabilityText, c) }
func (c CronbachAlpha) Descriptor() Descriptor  { return lookup(cronbachText, c) }
func (c Ability) Descriptor() Descriptor        { return lookup(abilityText, c) }

// Values returns every category of the given statistic, ordered from the
// lowest bin to the highest. It panics on an unknown statistic.
func Values(stat Stat) []Category {
	switch stat {
	case StatDiscrimination:
		return []Category{DiscriminationLow, DiscriminationAverage, DiscriminationHigh}
	case StatDifficulty:
		return []Category{DifficultyVeryEasy, DifficultyEasy, DifficultyDifficult, DifficultyVeryDifficult}
	case StatRpbis:
		return []Category{RpbisLow, RpbisAverage, RpbisHigh, RpbisVeryHigh}
	case StatInfit, StatOutfit:
		return []Category{FitTooLow, FitAcceptable, FitTooHigh}
	case StatCronbachAlpha:
		return []Category{
			CronbachUnacceptable, CronbachPoor, CronbachQuestionable,
			CronbachAcceptable, CronbachGood, CronbachExcellent,
		}
	case StatAbility:
		return []Category{
			AbilityExtremelyLow, AbilityBelowAverage, AbilityNormal,
			AbilityAboveAverage, AbilityExtremelyHigh,
		}
	case StatReliability:
		return []Category{
			ReliabilityVeryLow, ReliabilityLow, ReliabilityModerate,
			ReliabilityHigh, ReliabilityVeryHigh,
		}
	default:
		panic(fmt.Sprintf("category: unknown statistic %q", string(stat)))
	}
}
