package category

import "fmt"

// Evaluate maps a raw statistic value to its category. Every finite value
// maps to exactly one category; out-of-range values (e.g. a difficulty of
// 1.4) fall into the outermost bin rather than being rejected.
//
// Evaluate panics when stat is not one of the known Stat constants: that is
// a caller bug, and defaulting would corrupt the displayed classification.
func Evaluate(stat Stat, value float64) Category {
	switch stat {
	case StatDiscrimination:
		return EvaluateDiscrimination(value)
	case StatDifficulty:
		return EvaluateDifficulty(value)
	case StatRpbis:
		return EvaluateRpbis(value)
	case StatInfit:
		return EvaluateInfit(value)
	case StatOutfit:
		return EvaluateOutfit(value)
	case StatCronbachAlpha:
		return EvaluateCronbachAlpha(value)
	case StatAbility:
		return EvaluateAbility(value)
	case StatReliability:
		return EvaluateReliability(value)
	default:
		panic(fmt.Sprintf("category: unknown statistic %q", string(stat)))
	}
}

// EvaluateDiscrimination bins a discrimination index.
func EvaluateDiscrimination(value float64) Discrimination {
	switch {
	case value < 0.10:
		return DiscriminationLow
	case value < 0.30:
		return DiscriminationAverage
	default:
		return DiscriminationHigh
	}
}

// EvaluateDifficulty bins a fraction-correct difficulty index.
func EvaluateDifficulty(value float64) Difficulty {
	switch {
	case value < 0.25:
		return DifficultyVeryEasy
	case value < 0.50:
		return DifficultyEasy
	case value < 0.75:
		return DifficultyDifficult
	default:
		return DifficultyVeryDifficult
	}
}

// EvaluateRpbis bins a point-biserial correlation.
func EvaluateRpbis(value float64) Rpbis {
	switch {
	case value < 0.40:
		return RpbisLow
	case value < 0.60:
		return RpbisAverage
	case value < 0.80:
		return RpbisHigh
	default:
		return RpbisVeryHigh
	}
}

// EvaluateInfit bins an infit mean-square.
func EvaluateInfit(value float64) FitStat {
	return evaluateMeanSquare(value)
}

// EvaluateOutfit bins an outfit mean-square.
func EvaluateOutfit(value float64) FitStat {
	return evaluateMeanSquare(value)
}

// evaluateMeanSquare is the only bin set whose upper cutoff is exclusive:
// 1.33 itself is still Acceptable.
func evaluateMeanSquare(value float64) FitStat {
	switch {
	case value < 0.77:
		return FitTooLow
	case value > 1.33:
		return FitTooHigh
	default:
		return FitAcceptable
	}
}

// EvaluateCronbachAlpha bins a test-level Cronbach's alpha.
func EvaluateCronbachAlpha(value float64) CronbachAlpha {
	switch {
	case value < 0.50:
		return CronbachUnacceptable
	case value < 0.60:
		return CronbachPoor
	case value < 0.70:
		return CronbachQuestionable
	case value < 0.80:
		return CronbachAcceptable
	case value < 0.90:
		return CronbachGood
	default:
		return CronbachExcellent
	}
}

// EvaluateAbility bins an ability estimate in logits.
func EvaluateAbility(value float64) Ability {
	switch {
	case value < -2:
		return AbilityExtremelyLow
	case value < -0.5:
		return AbilityBelowAverage
	case value < 0.5:
		return AbilityNormal
	case value < 2:
		return AbilityAboveAverage
	default:
		return AbilityExtremelyHigh
	}
}

// EvaluateReliability bins a reliability coefficient.
func EvaluateReliability(value float64) Reliability {
	switch {
	case value < 0.60:
		return ReliabilityVeryLow
	case value < 0.70:
		return ReliabilityLow
	case value < 0.80:
		return ReliabilityModerate
	case value < 0.90:
		return ReliabilityHigh
	default:
		return ReliabilityVeryHigh
	}
}
