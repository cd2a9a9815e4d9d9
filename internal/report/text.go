package report

import (
	"fmt"
	"strings"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/models"
)

// RenderText produces a plain-text rendering of an assessment, suitable for
// terminals and text reports.
func RenderText(a *models.Assessment) string {
	var b strings.Builder

	rule := strings.Repeat("=", 72)
	thin := strings.Repeat("-", 72)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "GRADERINGSVURDERING: %s\n", a.SystemName)
	if a.Organization != "" {
		fmt.Fprintf(&b, "Virksomhet: %s\n", a.Organization)
	}
	fmt.Fprintf(&b, "Vurdert: %s\n", a.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(&b, rule)

	grading, _ := catalog.GradingLevel(a.RecommendedLevel)
	fmt.Fprintf(&b, "\nAnbefalt nivå: %d - %s (konfidens: %s)\n", a.RecommendedLevel, grading.Name, a.Confidence)
	for _, r := range a.Reasoning {
		fmt.Fprintf(&b, "  * %s\n", r)
	}

	fmt.Fprintf(&b, "\nInformasjonsklassifisering: %s\n", a.InformationClassification.ShortName)
	fmt.Fprintf(&b, "Tjenestekritikalitet:       %s\n", a.ServiceCriticality.ShortName)
	fmt.Fprintf(&b, "Eksponering:                %s\n", a.Exposure)

	fmt.Fprintf(&b, "\n%s\nRISIKOVURDERING (%d scenarier)\n%s\n", thin, len(a.Risks), thin)
	for _, r := range a.Risks {
		info := catalog.RiskLevels[r.Level]
		fmt.Fprintf(&b, "%-45s %2d (%s)  etter tiltak: %d\n",
			truncate(r.Name, 45), r.Score, info.Label, r.MitigatedScore)
	}

	set := a.Measures()
	fmt.Fprintf(&b, "\n%s\nPÅKREVDE TILTAK\n%s\n", thin, thin)
	fmt.Fprintf(&b, "Tekniske (%d):\n", len(set.Technical))
	for _, m := range set.Technical {
		fmt.Fprintf(&b, "  [ ] %s (%s)\n", m.Name, m.LegalBasis)
	}
	fmt.Fprintf(&b, "Organisatoriske (%d):\n", len(set.Organizational))
	for _, m := range set.Organizational {
		fmt.Fprintf(&b, "  [ ] %s (%s)\n", m.Name, m.LegalBasis)
	}

	if notifications := a.Notifications(); len(notifications) > 0 {
		fmt.Fprintf(&b, "\nVarslingskrav:\n")
		for _, n := range notifications {
			fmt.Fprintf(&b, "  - %s: %s til %s (%s)\n", n.Event, n.Deadline, n.Recipient, n.LegalBasis)
		}
	}

	for _, note := range a.Notes() {
		fmt.Fprintf(&b, "\nNB: %s\n    %s\n", note.Title, note.Description)
	}

	fmt.Fprintf(&b, "\nVurderings-ID: %s\n", a.ID)
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
