package scoring

import "github.com/eivindstn/helsegrad/internal/catalog"

// Confidence grades how certain a recommendation is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Recommendation is the outcome of the single-axis grading calculation.
type Recommendation struct {
	Level      int
	Confidence Confidence
	Flags      []catalog.Flag
	Reasoning  []string
}

// HasFlag reports whether the recommendation carries the given policy flag.
func (r *Recommendation) HasFlag(f catalog.Flag) bool {
	return hasFlag(r.Flags, f)
}

func hasFlag(flags []catalog.Flag, f catalog.Flag) bool {
	for _, have := range flags {
		if have == f {
			return true
		}
	}
	return false
}

// CalculateRecommendedLevel accumulates points and policy flags over the
// classification questions and derives a grading level. Regulatory flags
// override the point buckets: anything under Sikkerhetsloven is level 4,
// and health data is never below level 3.
func CalculateRecommendedLevel(answers Answers) Recommendation {
	totalPoints := 0
	var flags []catalog.Flag
	var reasoning []string

	for i := range catalog.ClassificationQuestions {
		q := &catalog.ClassificationQuestions[i]
		for _, answerID := range answers.Selected(q.ID) {
			opt, ok := q.Option(answerID)
			if !ok {
				continue
			}
			totalPoints += opt.Points
			flags = append(flags, opt.Flags...)
			if opt.Points >= 3 {
				reasoning = append(reasoning, q.Question+": "+opt.Label)
			}
		}
	}

	if hasFlag(flags, catalog.FlagClassified) || hasFlag(flags, catalog.FlagNationalSecurity) || hasFlag(flags, catalog.FlagSecurityLaw) {
		return Recommendation{
			Level:      4,
			Confidence: ConfidenceHigh,
			Flags:      flags,
			Reasoning: append([]string{
				"Systemet behandler skjermingsverdig informasjon og er underlagt Sikkerhetsloven",
			}, reasoning...),
		}
	}

	if hasFlag(flags, catalog.FlagHealthData) || hasFlag(flags, catalog.FlagPatientIdentifiable) || hasFlag(flags, catalog.FlagNormenRequired) {
		level := 3
		if totalPoints >= 20 {
			level = 4
		}
		return Recommendation{
			Level:      level,
			Confidence: ConfidenceHigh,
			Flags:      flags,
			Reasoning: append([]string{
				"Systemet behandler helseopplysninger og er underlagt Normen og GDPR Art. 9",
			}, reasoning...),
		}
	}

	var level int
	var confidence Confidence
	var headline string

	switch {
	case totalPoints <= 3:
		level = 1
		confidence = ConfidenceMedium
		if totalPoints <= 1 {
			confidence = ConfidenceHigh
		}
		headline = "Systemet behandler ikke sensitiv informasjon"
	case totalPoints <= 8:
		level = 2
		confidence = ConfidenceMedium
		if totalPoints >= 5 && totalPoints <= 7 {
			confidence = ConfidenceHigh
		}
		headline = "Systemet inneholder teknisk interessant informasjon"
	case totalPoints <= 15:
		level = 3
		confidence = ConfidenceMedium
		headline = "Systemet kan inneholde sensitiv informasjon - verifiser om det er helseopplysninger"
	default:
		level = 4
		confidence = ConfidenceLow
		headline = "Høy score indikerer potensielt skjermingsverdig - bør verifiseres"
	}

	return Recommendation{
		Level:      level,
		Confidence: confidence,
		Flags:      flags,
		Reasoning:  append([]string{headline}, reasoning...),
	}
}
