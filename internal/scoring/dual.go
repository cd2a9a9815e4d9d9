package scoring

import (
	"fmt"

	"github.com/eivindstn/helsegrad/internal/catalog"
)

// AxisResult is one dimension of the dual classification.
type AxisResult struct {
	Level     int
	Name      string
	ShortName string
	Reasoning []string
}

// DualClassification separates service criticality (availability) from
// information classification (confidentiality).
type DualClassification struct {
	ServiceCriticality        AxisResult
	InformationClassification AxisResult
	Flags                     []catalog.Flag
	Exposure                  catalog.Exposure
	Confidence                Confidence
}

// CalculateDualClassification routes each question's points onto one or both
// axes and derives a level per axis. Flag overrides take precedence over the
// point buckets on both axes.
func CalculateDualClassification(answers Answers) DualClassification {
	var flags []catalog.Flag
	var critReasons []string
	var classReasons []string

	criticalityPoints := 0
	classificationPoints := 0

	for i := range catalog.ClassificationQuestions {
		q := &catalog.ClassificationQuestions[i]
		for _, answerID := range answers.Selected(q.ID) {
			opt, ok := q.Option(answerID)
			if !ok {
				continue
			}
			flags = append(flags, opt.Flags...)

			switch q.ID {
			case "data_type", "patient_data", "confidentiality_impact":
				classificationPoints += opt.Points
				if opt.Points >= 2 {
					classReasons = append(classReasons, opt.Label)
				}
			case "infrastructure_impact", "integration":
				criticalityPoints += opt.Points
				if opt.Points >= 2 {
					critReasons = append(critReasons, opt.Label)
				}
			case "user_base", "regulatory":
				classificationPoints += opt.Points
				criticalityPoints += opt.Points / 2
				if opt.Points >= 3 {
					critReasons = append(critReasons, opt.Label)
					classReasons = append(classReasons, opt.Label)
				}
			default:
				classificationPoints += (opt.Points + 1) / 2
				criticalityPoints += opt.Points / 2
			}
		}
	}

	info := informationAxis(flags, classificationPoints, classReasons)
	crit := criticalityAxis(flags, criticalityPoints, critReasons)

	confidence := ConfidenceLow
	switch answered := answers.AnsweredCount(); {
	case answered >= 6:
		confidence = ConfidenceHigh
	case answered >= 4:
		confidence = ConfidenceMedium
	}

	return DualClassification{
		ServiceCriticality:        crit,
		InformationClassification: info,
		Flags:                     flags,
		Exposure:                  CalculateExposure(answers),
		Confidence:                confidence,
	}
}

var informationAxisNames = map[int]string{
	1: "Åpen",
	2: "Intern",
	3: "Skjermet",
	4: "Sterkt skjermet",
}

var criticalityAxisNames = map[int]string{
	1: "Normal",
	2: "Moderat",
	3: "Høy",
	4: "Kritisk",
}

func axisResult(level int, names map[int]string, reasons []string, headline string) AxisResult {
	name := names[level]
	return AxisResult{
		Level:     level,
		Name:      name,
		ShortName: shortName(level, name),
		Reasoning: append([]string{headline}, reasons...),
	}
}

func shortName(level int, name string) string {
	return fmt.Sprintf("%d. %s", level, name)
}

func informationAxis(flags []catalog.Flag, points int, reasons []string) AxisResult {
	switch {
	case hasFlag(flags, catalog.FlagClassified) || hasFlag(flags, catalog.FlagNationalSecurity) || hasFlag(flags, catalog.FlagSecurityLaw):
		return axisResult(4, informationAxisNames, reasons, "Skjermingsverdig informasjon (Sikkerhetsloven)")
	case hasFlag(flags, catalog.FlagHealthData) || hasFlag(flags, catalog.FlagPatientIdentifiable) || hasFlag(flags, catalog.FlagNormenRequired):
		return axisResult(3, informationAxisNames, reasons, "Helseopplysninger/pasientdata")
	case points <= 2:
		return axisResult(1, informationAxisNames, reasons, "Offentlig/åpen informasjon")
	case points <= 5:
		return axisResult(2, informationAxisNames, reasons, "Intern informasjon")
	case points <= 10:
		return axisResult(3, informationAxisNames, reasons, "Sensitiv informasjon")
	default:
		return axisResult(4, informationAxisNames, reasons, "Svært sensitiv informasjon")
	}
}

func criticalityAxis(flags []catalog.Flag, points int, reasons []string) AxisResult {
	switch {
	case hasFlag(flags, catalog.FlagCriticalSystem) || hasFlag(flags, catalog.FlagCriticalInfrastructure):
		return axisResult(4, criticalityAxisNames, reasons, "Kritisk for liv og helse")
	case hasFlag(flags, catalog.FlagDigitalSecurityLaw):
		level := 3
		if points >= 8 {
			level = 4
		}
		return axisResult(level, criticalityAxisNames, reasons, "Samfunnsviktig tjeneste (Digitalsikkerhetsloven)")
	case points <= 2:
		return axisResult(1, criticalityAxisNames, reasons, "Begrenset driftskonsekvens")
	case points <= 5:
		return axisResult(2, criticalityAxisNames, reasons, "Moderat driftskonsekvens")
	case points <= 8:
		return axisResult(3, criticalityAxisNames, reasons, "Betydelig driftskonsekvens")
	default:
		return axisResult(4, criticalityAxisNames, reasons, "Kritisk driftskonsekvens")
	}
}
