package fit

import "github.com/abhisek/testlens/internal/category"

// Verdict is the tri-state overall fit of an item.
type Verdict string

const (
	VerdictFit          Verdict = "fit"
	VerdictConsiderable Verdict = "considerable"
	VerdictNotFit       Verdict = "not-fit"
)

// AllVerdicts returns all verdicts from best to worst.
func AllVerdicts() []Verdict {
	return []Verdict{VerdictFit, VerdictConsiderable, VerdictNotFit}
}

// Label returns the short badge text for the verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictFit:
		return "Phù hợp"
	case VerdictConsiderable:
		return "Cần xem xét"
	case VerdictNotFit:
		return "Không phù hợp"
	default:
		return string(v)
	}
}

// Evaluation returns the reviewer-facing explanation of the verdict.
func (v Verdict) Evaluation() string {
	switch v {
	case VerdictFit:
		return "Rất tốt để đánh giá năng lực thí sinh."
	case VerdictConsiderable:
		return "Có thể sử dụng nhưng cần cải thiện để tăng hiệu quả đánh giá."
	case VerdictNotFit:
		return "Không hiệu quả trong đánh giá, cần xem xét lại."
	default:
		return ""
	}
}

// Variant returns the badge style for the verdict.
func (v Verdict) Variant() category.Variant {
	switch v {
	case VerdictFit:
		return category.VariantMedium
	case VerdictConsiderable:
		return category.VariantHard
	default:
		return category.VariantVeryHard
	}
}
