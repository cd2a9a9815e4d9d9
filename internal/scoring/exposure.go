package scoring

import "github.com/eivindstn/helsegrad/internal/catalog"

// CalculateExposure picks the most exposed tier among the selected network
// answers: internet beats helsenett, everything else counts as internal.
func CalculateExposure(answers Answers) catalog.Exposure {
	if answers.Includes("network_exposure", "internet") {
		return catalog.ExposureInternet
	}
	if answers.Includes("network_exposure", "helsenett") {
		return catalog.ExposureHelsenett
	}
	return catalog.ExposureInternal
}
