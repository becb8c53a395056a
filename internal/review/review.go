// Package review builds the list of items that need a reviewer's attention.
package review

import (
	"github.com/abhisek/testlens/internal/category"
	"github.com/abhisek/testlens/internal/fit"
)

// Fixed bounds used by ViolatedIndices. They differ from the category
// cutoffs on purpose: they are the absolute bounds shown to reviewers.
const (
	MeanSquareMin  = 0.7
	MeanSquareMax  = 1.3
	ReliabilityMin = 0.6
)

const (
	msgInfit       = "Giá trị infit nằm ngoài khoảng [0.7–1.3], cần xem xét."
	msgOutfit      = "Giá trị outfit nằm ngoài khoảng [0.7–1.3], cần xem xét."
	msgReliability = "Độ tin cậy thấp dưới 0.6, cho thấy tính ổn định thấp của câu hỏi."
)

// Index is one flagged statistic of an item.
type Index struct {
	Name    category.Stat `json:"name"`
	Value   float64       `json:"value"`
	Message string        `json:"message"`
}

// Entry is a review-list row for one item with at least one violation.
type Entry struct {
	ItemID  string  `json:"item_id"`
	Ordinal int     `json:"ordinal"`
	Indices []Index `json:"indices"`
}

// Item pairs an item identifier with the statistics a Scorer reads.
type Item[S any] struct {
	ID   string
	Stat S
}

// Scorer is a fit scorer for one item model.
type Scorer[S any] func(S) fit.Result

// ViolatedIndices flags a Rasch item against the fixed bounds: infit or
// outfit outside [0.7, 1.3], reliability below 0.6. Entries are returned in
// that order; an item within all bounds yields nil.
func ViolatedIndices(stat fit.RaschItemStat) []Index {
	var out []Index
	if outside(stat.Infit) {
		out = append(out, Index{Name: category.StatInfit, Value: stat.Infit, Message: msgInfit})
	}
	if outside(stat.Outfit) {
		out = append(out, Index{Name: category.StatOutfit, Value: stat.Outfit, Message: msgOutfit})
	}
	if stat.Reliability < ReliabilityMin {
		out = append(out, Index{Name: category.StatReliability, Value: stat.Reliability, Message: msgReliability})
	}
	return out
}

func outside(v float64) bool {
	return v < MeanSquareMin || v > MeanSquareMax
}

// BuildList scores every item and returns one entry per item with at least
// one violated dimension. Ordinals are 1-based input positions, so the
// caller's ordering is what the reviewer sees.
func BuildList[S any](items []Item[S], score Scorer[S]) []Entry {
	var entries []Entry
	for i, item := range items {
		res := score(item.Stat)
		if len(res.Violated) == 0 {
			continue
		}

		indices := make([]Index, len(res.Violated))
		for j, v := range res.Violated {
			indices[j] = Index{
				Name:    v.Stat,
				Value:   v.Value,
				Message: v.Descriptor().Evaluation,
			}
		}
		entries = append(entries, Entry{
			ItemID:  item.ID,
			Ordinal: i + 1,
			Indices: indices,
		})
	}
	return entries
}

// BuildCTTList builds the review list using the CTT fit scorer.
func BuildCTTList(items []Item[fit.ItemStat]) []Entry {
	return BuildList(items, fit.EvaluateCTT)
}

// BuildRaschList builds the review list using the Rasch fit scorer.
func BuildRaschList(items []Item[fit.RaschItemStat]) []Entry {
	return BuildList(items, fit.EvaluateRasch)
}

// Count returns the number of flagged indices across entries.
func Count(entries []Entry) int {
	var n int
	for _, e := range entries {
		n += len(e.Indices)
	}
	return n
}
