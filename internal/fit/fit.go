package fit

import (
	"slices"
	"strings"

	"github.com/abhisek/testlens/internal/category"
)

// ItemStat holds the Classical Test Theory indices of one item.
type ItemStat struct {
	Discrimination float64
	Difficulty     float64
	Rpbis          float64
}

// RaschItemStat holds the Rasch indices of one item. Ability and Difficulty
// are carried for display; only infit, outfit and reliability are scored.
type RaschItemStat struct {
	Infit       float64
	Outfit      float64
	Ability     float64
	Reliability float64
	Difficulty  float64
}

// Violation is one scored dimension that fell outside its good subset.
type Violation struct {
	Stat     category.Stat
	Value    float64
	Category category.Category
}

// Descriptor returns the display metadata of the violated category.
func (v Violation) Descriptor() category.Descriptor {
	return v.Category.Descriptor()
}

// Result is the outcome of scoring one item.
type Result struct {
	Verdict  Verdict
	Violated []Violation
}

// Summary returns the verdict explanation followed by the labels of the
// violated statistics, as shown in the fit badge tooltip.
func (r Result) Summary() string {
	text := r.Verdict.Evaluation()
	if len(r.Violated) == 0 {
		return text
	}

	labels := make([]string, len(r.Violated))
	for i, v := range r.Violated {
		labels[i] = v.Stat.Label()
	}

	switch r.Verdict {
	case VerdictConsiderable:
		text += "\nChỉ số cần cải thiện: " + strings.Join(labels, ", ") + "."
	case VerdictNotFit:
		text += "\nChỉ số vi phạm: " + strings.Join(labels, ", ") + "."
	}
	return text
}

// dimension is one classified statistic and whether its category is in the
// good subset for that statistic.
type dimension struct {
	stat  category.Stat
	value float64
	cat   category.Category
	good  bool
}

// score aggregates dimensions: all good is Fit, none good is NotFit,
// anything in between is Considerable. Violations keep dimension order.
func score(dims []dimension) Result {
	var good int
	var violated []Violation
	for _, d := range dims {
		if d.good {
			good++
			continue
		}
		violated = append(violated, Violation{Stat: d.stat, Value: d.value, Category: d.cat})
	}

	var verdict Verdict
	switch good {
	case len(dims):
		verdict = VerdictFit
	case 0:
		verdict = VerdictNotFit
	default:
		verdict = VerdictConsiderable
	}
	return Result{Verdict: verdict, Violated: violated}
}

// EvaluateCTT scores an item on discrimination, difficulty and rpbis.
func EvaluateCTT(stat ItemStat) Result {
	disc := category.EvaluateDiscrimination(stat.Discrimination)
	diff := category.EvaluateDifficulty(stat.Difficulty)
	rpbis := category.EvaluateRpbis(stat.Rpbis)

	return score([]dimension{
		{
			stat:  category.StatDiscrimination,
			value: stat.Discrimination,
			cat:   disc,
			good:  slices.Contains([]category.Discrimination{category.DiscriminationAverage, category.DiscriminationHigh}, disc),
		},
		{
			stat:  category.StatDifficulty,
			value: stat.Difficulty,
			cat:   diff,
			good:  slices.Contains([]category.Difficulty{category.DifficultyEasy, category.DifficultyDifficult}, diff),
		},
		{
			stat:  category.StatRpbis,
			value: stat.Rpbis,
			cat:   rpbis,
			good:  rpbis != category.RpbisLow,
		},
	})
}

// EvaluateRasch scores an item on infit, outfit and reliability.
func EvaluateRasch(stat RaschItemStat) Result {
	infit := category.EvaluateInfit(stat.Infit)
	outfit := category.EvaluateOutfit(stat.Outfit)
	rel := category.EvaluateReliability(stat.Reliability)

	return score([]dimension{
		{stat: category.StatInfit, value: stat.Infit, cat: infit, good: infit == category.FitAcceptable},
		{stat: category.StatOutfit, value: stat.Outfit, cat: outfit, good: outfit == category.FitAcceptable},
		{
			stat:  category.StatReliability,
			value: stat.Reliability,
			cat:   rel,
			good: slices.Contains([]category.Reliability{
				category.ReliabilityModerate, category.ReliabilityHigh, category.ReliabilityVeryHigh,
			}, rel),
		},
	})
}
