package category

import "fmt"

// Tone is the semantic colour a category is rendered with.
type Tone string

const (
	ToneVeryBad  Tone = "very-bad"
	ToneBad      Tone = "bad"
	ToneAverage  Tone = "average"
	ToneGood     Tone = "good"
	ToneVeryGood Tone = "very-good"
)

// Variant is the badge style a category is rendered with. The empty
// Variant means the category is shown as plain coloured text.
type Variant string

const (
	VariantNone     Variant = ""
	VariantVeryEasy Variant = "veryEasy"
	VariantEasy     Variant = "easy"
	VariantMedium   Variant = "medium"
	VariantHard     Variant = "hard"
	VariantVeryHard Variant = "veryHard"
)

// Descriptor is the static display metadata attached to a Category.
type Descriptor struct {
	Label      string
	Evaluation string
	Tone       Tone
	Variant    Variant
}

func lookup[C interface {
	comparable
	Key() string
}](table map[C]Descriptor, c C) Descriptor {
	d, ok := table[c]
	if !ok {
		panic(fmt.Sprintf("category: no descriptor for %T %q", c, c.Key()))
	}
	return d
}

var discriminationText = map[Discrimination]Descriptor{
	DiscriminationLow: {
		Label:      "Thấp",
		Tone:       ToneBad,
		Variant:    VariantVeryHard,
		Evaluation: "Câu hỏi này không phân biệt rõ giữa thí sinh giỏi và yếu. Nên xem xét cải thiện để tăng khả năng đánh giá năng lực.",
	},
	DiscriminationAverage: {
		Label:      "Trung bình",
		Tone:       ToneAverage,
		Variant:    VariantHard,
		Evaluation: "Câu hỏi này phân biệt ở mức trung bình. Có thể chấp nhận được nhưng vẫn còn có thể cải thiện.",
	},
	DiscriminationHigh: {
		Label:      "Cao",
		Tone:       ToneGood,
		Variant:    VariantMedium,
		Evaluation: "Câu hỏi này phân biệt rõ ràng giữa thí sinh giỏi và yếu, rất phù hợp để đánh giá năng lực.",
	},
}

var difficultyText = map[Difficulty]Descriptor{
	DifficultyVeryEasy: {
		Label:      "Rất dễ",
		Tone:       ToneVeryBad,
		Variant:    VariantVeryEasy,
		Evaluation: "Chỉ một số ít thí sinh có thể trả lời đúng. Phù hợp để thử thách thí sinh giỏi, nhưng không đánh giá được năng lực của phần lớn thí sinh.",
	},
	DifficultyEasy: {
		Label:      "Dễ",
		Tone:       ToneGood,
		Variant:    VariantEasy,
		Evaluation: "Phần lớn thí sinh không trả lời đúng. Phù hợp để phân biệt rõ ràng giữa thí sinh yếu và giỏi.",
	},
	DifficultyDifficult: {
		Label:      "Khó",
		Tone:       ToneGood,
		Variant:    VariantHard,
		Evaluation: "Đa số thí sinh có thể trả lời đúng. Phù hợp để kiểm tra kiến thức cơ bản cho thí sinh.",
	},
	DifficultyVeryDifficult: {
		Label:      "Rất khó",
		Tone:       ToneVeryBad,
		Variant:    VariantVeryHard,
		Evaluation: "Hầu hết thí sinh đều trả lời đúng. Phù hợp cho các câu hỏi khởi động nhưng không hiệu quả trong việc đánh giá hoặc phân biệt năng lực.",
	},
}

var rpbisText = map[Rpbis]Descriptor{
	RpbisLow: {
		Label:      "Thấp",
		Tone:       ToneBad,
		Evaluation: "Chỉ số này cho thấy độ tương quan kém. Thí sinh điểm cao sẽ có khả năng trả lời đúng thấp, và ngược lại. Cần được xem xét cải thiện",
	},
	RpbisAverage: {
		Label:      "Trung bình",
		Tone:       ToneAverage,
		Evaluation: "Chỉ số này cho thấy độ tương quan trung bình. Thí sinh điểm cao sẽ khả năng trả lời đúng trung bình, và ngược lại.",
	},
	RpbisHigh: {
		Label:      "Cao",
		Tone:       ToneGood,
		Evaluation: "Chỉ số này cho thấy độ tương quan tốt. Thí sinh điểm cao sẽ có khả năng trả lời đúng cao, và ngược lại.",
	},
	RpbisVeryHigh: {
		Label:      "Rất cao",
		Tone:       ToneVeryGood,
		Evaluation: "Chỉ số này cho thấy độ tương quan rất tốt. Thí sinh điểm cao sẽ có khả năng trả lời đúng rất cao, và ngược lại.",
	},
}

var fitStatText = map[FitStat]Descriptor{
	FitTooLow: {
		Label:      "Quá thấp",
		Tone:       ToneVeryBad,
		Evaluation: "Giá trị quá thấp so với ngưỡng chấp nhận, cho thấy mức độ phù hợp yếu.",
	},
	FitAcceptable: {
		Label:      "Chấp nhận được",
		Tone:       ToneVeryGood,
		Evaluation: "Giá trị nằm trong khoảng chấp nhận được, có thể sử dụng trong đánh giá.",
	},
	FitTooHigh: {
		Label:      "Quá cao",
		Tone:       ToneVeryBad,
		Evaluation: "Giá trị vượt quá giới hạn lý tưởng, cần xem xét kỹ hơn để đánh giá.",
	},
}

var abilityText = map[Ability]Descriptor{
	AbilityExtremelyLow: {
		Label:      "Năng lực rất yếu",
		Tone:       ToneVeryBad,
		Evaluation: "Học sinh có khả năng làm bài rất thấp, cần hỗ trợ nhiều hơn.",
	},
	AbilityBelowAverage: {
		Label:      "Dưới trung bình",
		Tone:       ToneBad,
		Evaluation: "Học sinh ở mức dưới trung bình, cần cải thiện thêm.",
	},
	AbilityNormal: {
		Label:      "Trung bình",
		Tone:       ToneAverage,
		Evaluation: "Học sinh có năng lực trung bình, phù hợp với phần lớn chương trình học.",
	},
	AbilityAboveAverage: {
		Label:      "Trên trung bình",
		Tone:       ToneGood,
		Evaluation: "Học sinh có năng lực khá, hiểu bài tốt.",
	},
	AbilityExtremelyHigh: {
		Label:      "Năng lực rất tốt",
		Tone:       ToneVeryGood,
		Evaluation: "Học sinh xuất sắc, có khả năng vượt trội.",
	},
}

var reliabilityText = map[Reliability]Descriptor{
	ReliabilityVeryLow: {
		Label:      "Rất thấp",
		Tone:       ToneVeryBad,
		Evaluation: "Độ tin cậy rất kém, bài kiểm tra không ổn định.",
	},
	ReliabilityLow: {
		Label:      "Thấp",
		Tone:       ToneBad,
		Evaluation: "Cần cải thiện độ tin cậy, có thể do thiết kế câu hỏi chưa tốt.",
	},
	ReliabilityModerate: {
		Label:      "Trung bình",
		Tone:       ToneAverage,
		Evaluation: "Mức độ tin cậy tạm chấp nhận được.",
	},
	ReliabilityHigh: {
		Label:      "Cao",
		Tone:       ToneGood,
		Evaluation: "Bài kiểm tra đáng tin cậy.",
	},
	ReliabilityVeryHigh: {
		Label:      "Rất cao",
		Tone:       ToneVeryGood,
		Evaluation: "Bài kiểm tra rất ổn định và nhất quán.",
	},
}

var cronbachText = map[CronbachAlpha]Descriptor{
	CronbachUnacceptable: {
		Label:      "Không chấp nhận được",
		Tone:       ToneVeryBad,
		Evaluation: "Hệ số quá thấp, không nên sử dụng bài kiểm tra này.",
	},
	CronbachPoor: {
		Label:      "Yếu",
		Tone:       ToneBad,
		Evaluation: "Cần cải thiện để tăng độ tin cậy.",
	},
	CronbachQuestionable: {
		Label:      "Cần xem xét",
		Tone:       ToneAverage,
		Evaluation: "Độ tin cậy chưa rõ ràng, cần đánh giá thêm.",
	},
	CronbachAcceptable: {
		Label:      "Chấp nhận được",
		Tone:       ToneAverage,
		Evaluation: "Đủ độ tin cậy để sử dụng trong các tình huống cơ bản.",
	},
	CronbachGood: {
		Label:      "Tốt",
		Tone:       ToneGood,
		Evaluation: "Bài kiểm tra có độ tin cậy cao.",
	},
	CronbachExcellent: {
		Label:      "Rất tốt",
		Tone:       ToneVeryGood,
		Evaluation: "Độ tin cậy rất cao, phù hợp với tiêu chuẩn nghiêm ngặt.",
	},
}
