package fit

// Mean-square bands of the Rasch item table badge. Values inside the ideal
// band fit, values inside the tolerated band need review, anything else
// does not fit.
const (
	idealLow, idealHigh         = 0.8, 1.2
	toleratedLow, toleratedHigh = 0.7, 1.3
)

// MeanSquareBand rates an item by its worse mean-square statistic and
// returns the verdict with the explanation shown next to the badge.
func MeanSquareBand(infit, outfit float64) (Verdict, string) {
	within := func(lo, hi float64) bool {
		return infit >= lo && infit <= hi && outfit >= lo && outfit <= hi
	}
	switch {
	case !within(toleratedLow, toleratedHigh):
		return VerdictNotFit, "Giá trị infit hoặc outfit nằm ngoài khoảng [0.7–1.3], cho thấy câu hỏi có thể không phù hợp với mô hình hoặc chứa phản hồi bất thường."
	case !within(idealLow, idealHigh):
		return VerdictConsiderable, "Giá trị infit hoặc outfit nằm ngoài khoảng lý tưởng [0.8–1.2], cần xem xét kỹ hơn để đánh giá độ phù hợp."
	default:
		return VerdictFit, "Giá trị infit và outfit nằm trong khoảng [0.8–1.2], cho thấy câu hỏi phù hợp với mô hình Rasch."
	}
}
