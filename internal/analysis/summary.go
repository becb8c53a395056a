package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/abhisek/testlens/internal/category"
	"github.com/abhisek/testlens/internal/fit"
	"github.com/abhisek/testlens/internal/review"
)

// Distribution counts items per verdict.
type Distribution struct {
	Fit          int `json:"fit"`
	Considerable int `json:"considerable"`
	NotFit       int `json:"not_fit"`
}

func (d Distribution) Total() int { return d.Fit + d.Considerable + d.NotFit }

func (d *Distribution) add(v fit.Verdict) {
	switch v {
	case fit.VerdictFit:
		d.Fit++
	case fit.VerdictConsiderable:
		d.Considerable++
	case fit.VerdictNotFit:
		d.NotFit++
	}
}

// Distribute scores every item and tallies the verdicts.
func Distribute[S any](items []review.Item[S], score review.Scorer[S]) Distribution {
	var d Distribution
	for _, it := range items {
		d.add(score(it.Stat).Verdict)
	}
	return d
}

// Spread summarises one statistic across items.
type Spread struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe returns the spread of values. An empty input yields zeros.
func Describe(values []float64) Spread {
	if len(values) == 0 {
		return Spread{}
	}
	data := stats.Float64Data(values)
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	return Spread{Mean: mean, Median: median, StdDev: stdDev, Min: min, Max: max}
}

// CTTAverages maps each CTT statistic to its spread over qs.
func CTTAverages(qs []QuestionAnalysis) map[category.Stat]Spread {
	disc := make([]float64, len(qs))
	diff := make([]float64, len(qs))
	rpbis := make([]float64, len(qs))
	for i, q := range qs {
		disc[i] = q.Analysis.DiscriminationIndex
		diff[i] = q.Analysis.DifficultyIndex
		rpbis[i] = q.Analysis.Rpbis
	}
	return map[category.Stat]Spread{
		category.StatDiscrimination: Describe(disc),
		category.StatDifficulty:     Describe(diff),
		category.StatRpbis:          Describe(rpbis),
	}
}

func RaschAverages(qs []RaschQuestion) map[category.Stat]Spread {
	infit := make([]float64, len(qs))
	outfit := make([]float64, len(qs))
	rel := make([]float64, len(qs))
	for i, q := range qs {
		infit[i] = q.Infit
		outfit[i] = q.Outfit
		rel[i] = q.Reliability
	}
	return map[category.Stat]Spread{
		category.StatInfit:       Describe(infit),
		category.StatOutfit:      Describe(outfit),
		category.StatReliability: Describe(rel),
	}
}

// AssignGroup buckets a percentage score into performance groups 1 to 5.
// Ungraded students land in group 0.
func AssignGroup(score *float64) int {
	if score == nil {
		return 0
	}
	switch s := *score; {
	case s >= 80:
		return 5
	case s >= 65:
		return 4
	case s >= 50:
		return 3
	case s >= 35:
		return 2
	}
	return 1
}

// GroupCounts tallies students per group, index 0 holding the ungraded.
func GroupCounts(students []Student) [6]int {
	var counts [6]int
	for _, s := range students {
		counts[AssignGroup(s.Score())]++
	}
	return counts
}

// TestVerdict grades the whole test by its Cronbach's alpha.
func TestVerdict(d GeneralDetails) category.CronbachAlpha {
	return category.EvaluateCronbachAlpha(d.CronbachAlpha)
}

const (
	infitReference = 1.0
	infitLowerBand = 0.77
	infitUpperBand = 1.33
)

// Deviation is an item's infit distance from the model expectation.
type Deviation struct {
	ItemID  string  `json:"item_id"`
	Infit   float64 `json:"infit"`
	Delta   float64 `json:"delta"`
	Outlier bool    `json:"outlier"`
}

// InfitDeviations reports each item's infit relative to 1.0, flagging
// those outside the 0.77 to 1.33 band.
func InfitDeviations(qs []RaschQuestion) []Deviation {
	out := make([]Deviation, len(qs))
	for i, q := range qs {
		out[i] = Deviation{
			ItemID:  idOr(q.ID, i),
			Infit:   q.Infit,
			Delta:   q.Infit - infitReference,
			Outlier: q.Infit < infitLowerBand || q.Infit > infitUpperBand,
		}
	}
	return out
}
