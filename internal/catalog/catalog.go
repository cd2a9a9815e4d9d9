// Package catalog contains the static assessment catalogs: the classification
// and exposure questionnaires, the threat scenario catalog used for the ROS
// analysis, and the security measure catalog with legal references. The
// catalogs are compile-time data; nothing in this package mutates them.
package catalog

// Flag is a policy tag produced by answer options and consumed by the scoring
// rules as a boolean predicate. Flags are the channel through which specific
// answers override the generic point-based scoring.
type Flag string

// Known flags.
const (
	FlagHealthData             Flag = "health_data"
	FlagPatientIdentifiable    Flag = "patient_identifiable"
	FlagClassified             Flag = "classified"
	FlagNationalSecurity       Flag = "national_security"
	FlagSecurityLaw            Flag = "security_law"
	FlagNormenRequired         Flag = "normen_required"
	FlagDigitalSecurityLaw     Flag = "digitalsikkerhetsloven_required"
	FlagCriticalSystem         Flag = "critical_system"
	FlagCriticalInfrastructure Flag = "critical_infrastructure"
	FlagHighConfidentiality    Flag = "high_confidentiality"
	FlagPublicFacing           Flag = "public_facing"
	FlagExtensiveIntegration   Flag = "extensive_integration"
	FlagHelsenett              Flag = "helsenett"
	FlagInternet               Flag = "internet"
)

// Exposure is the network reachability tier of the assessed system.
type Exposure string

// Exposure categories, most exposed first.
const (
	ExposureInternet  Exposure = "internet"
	ExposureHelsenett Exposure = "helsenett"
	ExposureInternal  Exposure = "internal"
)

// Question is a single questionnaire entry with its selectable options.
// Option order is display order only; it carries no scoring meaning.
type Question struct {
	ID          string
	Question    string
	Description string
	MultiSelect bool
	Options     []Option
}

// Option is one selectable answer. Points accumulate into the classification
// score; flags accumulate into the global flag set.
type Option struct {
	ID          string
	Label       string
	Description string
	Points      int
	Flags       []Flag
}

// Option returns the option with the given id, or false when the id does not
// exist in this question. Unknown ids are a caller concern, never an error.
func (q *Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// QuestionByID looks up a classification or exposure question.
func QuestionByID(id string) (*Question, bool) {
	for i := range ClassificationQuestions {
		if ClassificationQuestions[i].ID == id {
			return &ClassificationQuestions[i], true
		}
	}
	for i := range ExposureQuestions {
		if ExposureQuestions[i].ID == id {
			return &ExposureQuestions[i], true
		}
	}
	return nil, false
}

// AllQuestions returns the classification questions followed by the exposure
// questions, in wizard order.
func AllQuestions() []Question {
	all := make([]Question, 0, len(ClassificationQuestions)+len(ExposureQuestions))
	all = append(all, ClassificationQuestions...)
	all = append(all, ExposureQuestions...)
	return all
}
