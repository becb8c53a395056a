package category

import (
	"fmt"
	"strings"
)

// Stat identifies which statistic a raw value measures.
type Stat string

const (
	StatDiscrimination Stat = "discrimination"
	StatDifficulty     Stat = "difficulty"
	StatRpbis          Stat = "rpbis"
	StatInfit          Stat = "infit"
	StatOutfit         Stat = "outfit"
	StatCronbachAlpha  Stat = "cronbachAlpha"
	StatAbility        Stat = "ability"
	StatReliability    Stat = "reliability"
)

// AllStats returns every statistic type in display order.
func AllStats() []Stat {
	return []Stat{
		StatDiscrimination,
		StatDifficulty,
		StatRpbis,
		StatInfit,
		StatOutfit,
		StatCronbachAlpha,
		StatAbility,
		StatReliability,
	}
}

// ParseStat resolves a user-supplied statistic name. It accepts the
// backend's snake_case aliases (r_pbis, cronbach_alpha, difficulty_index,
// discrimination_index) as well as the canonical names.
func ParseStat(name string) (Stat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "discrimination", "discrimination_index":
		return StatDiscrimination, nil
	case "difficulty", "difficulty_index":
		return StatDifficulty, nil
	case "rpbis", "r_pbis":
		return StatRpbis, nil
	case "infit":
		return StatInfit, nil
	case "outfit":
		return StatOutfit, nil
	case "cronbachalpha", "cronbach_alpha", "alpha":
		return StatCronbachAlpha, nil
	case "ability", "logit":
		return StatAbility, nil
	case "reliability":
		return StatReliability, nil
	default:
		return "", fmt.Errorf("unknown statistic %q", name)
	}
}

// Label returns the short column label reviewers see for the statistic.
func (s Stat) Label() string {
	switch s {
	case StatDifficulty:
		return "Độ khó"
	case StatDiscrimination:
		return "Độ p.cách"
	case StatRpbis:
		return "R_PBIS"
	default:
		return string(s)
	}
}
