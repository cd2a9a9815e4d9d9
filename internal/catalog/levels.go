package catalog

// GradingInfo describes one of the four service grading levels.
type GradingInfo struct {
	Level       int
	Name        string
	Description string
	Examples    []string
	LegalBasis  []string
}

// GradingLevels is ordered by level, 1 through 4.
var GradingLevels = []GradingInfo{
	{
		Level:       1,
		Name:        "Normal",
		Description: "Bortfall av tjenesten rammer kun en del av virksomheten og medfører lave økonomiske konsekvenser.",
		Examples: []string{
			"Interne støttesystemer",
			"Ikke-kritiske administrative verktøy",
		},
		LegalBasis: []string{"NSM Grunnprinsipper"},
	},
	{
		Level:       2,
		Name:        "Moderat (Alvorlig)",
		Description: "Bortfall av tjenesten kan medføre høye til moderate økonomiske konsekvenser for virksomheten, men har ubetydelige konsekvenser for omdømmet.",
		Examples: []string{
			"Interne fagsystemer",
			"Eksterne informasjonstjenester",
		},
		LegalBasis: []string{"NSM Grunnprinsipper", "Digitalsikkerhetsloven"},
	},
	{
		Level:       3,
		Name:        "Høy (Funksjons- og virksomhetskritisk)",
		Description: "Bortfall av tjenesten vil medføre store ulemper for enkelte virksomheter eller funksjoner i en virksomhet, men skal ikke påvirke liv og helse. Benyttes også på tjenester som kan få omdømmemessige konsekvenser for enkelte virksomheter eller sektoren samlet.",
		Examples: []string{
			"Helsenorge.no",
			"Adresseregisteret",
		},
		LegalBasis: []string{"GDPR Art. 9 og 32", "Pasientjournalloven § 22", "Normen", "Digitalsikkerhetsloven"},
	},
	{
		Level:       4,
		Name:        "Kritisk (Sektorkritisk)",
		Description: "Bortfall av tjenesten vil kunne medføre fare for liv og helse. Benyttes på tjenester som understøtter andre kritiske tjenester. Benyttes også for publikumstjenester og tjenester hvor nedetid kan medføre fare for liv og helse.",
		Examples: []string{
			"PREG",
			"Persontjenesten",
			"Helsenettet",
		},
		LegalBasis: []string{"Digitalsikkerhetsloven", "Sikkerhetsloven (kun for spesifikke skjermingsverdige systemer)"},
	},
}

// GradingLevel returns the grading info for a 1-4 level, or false if out of
// range.
func GradingLevel(level int) (GradingInfo, bool) {
	if level < 1 || level > len(GradingLevels) {
		return GradingInfo{}, false
	}
	return GradingLevels[level-1], true
}

// ExposureInfo is presentation metadata for a network exposure tier.
type ExposureInfo struct {
	Type        Exposure
	Name        string
	Description string
	RiskLevel   string
}

var ExposureTypes = []ExposureInfo{
	{
		Type:        ExposureInternet,
		Name:        "Internett-eksponert",
		Description: "Tjenesten er tilgjengelig fra det åpne internett",
		RiskLevel:   "Høy risiko - eksponert mot hele verden",
	},
	{
		Type:        ExposureHelsenett,
		Name:        "Helsenett-eksponert",
		Description: "Tjenesten er kun tilgjengelig via Helsenettet",
		RiskLevel:   "Moderat risiko - NB: Helsenettet regnes som åpent nett",
	},
}

// LegalRequirement points to a law, regulation, or sector norm the
// recommendations reference.
type LegalRequirement struct {
	ID          string
	Name        string
	Source      string
	URL         string
	Description string
}

var LegalRequirements = []LegalRequirement{
	{
		ID:          "digitalsikkerhetsloven",
		Name:        "Digitalsikkerhetsloven",
		Source:      "Norsk lov (gjeldende fra 1. okt 2025)",
		URL:         "https://lovdata.no/dokument/NL/lov/2023-12-20-108",
		Description: "Krav til digital sikkerhet for tilbydere av samfunnsviktige tjenester, inkl. helsesektoren",
	},
	{
		ID:          "gdpr",
		Name:        "GDPR / Personopplysningsloven",
		Source:      "EU-forordning / Norsk lov",
		URL:         "https://lovdata.no/dokument/NL/lov/2018-06-15-38",
		Description: "Krav til behandling og sikring av personopplysninger",
	},
	{
		ID:          "normen",
		Name:        "Normen v7.0",
		Source:      "Bransjenorm (oppdatert sept. 2025)",
		URL:         "https://www.helsedirektoratet.no/normen/norm-for-informasjonssikkerhet-og-personvern-i-helse-og-omsorgssektoren",
		Description: "Norm for informasjonssikkerhet og personvern i helse- og omsorgssektoren",
	},
	{
		ID:          "sikkerhetsloven",
		Name:        "Sikkerhetsloven",
		Source:      "Norsk lov",
		URL:         "https://lovdata.no/dokument/NL/lov/2018-06-01-24",
		Description: "Beskyttelse av skjermingsverdig informasjon og objekter (gjelder spesifikke systemer)",
	},
	{
		ID:          "pasientjournal",
		Name:        "Pasientjournalloven",
		Source:      "Norsk lov",
		URL:         "https://lovdata.no/dokument/NL/lov/2014-06-20-42",
		Description: "Krav til behandling av helseopplysninger i pasientjournaler",
	},
	{
		ID:          "nsm",
		Name:        "NSM Grunnprinsipper v2.1",
		Source:      "Veiledning",
		URL:         "https://nsm.no/regelverk-og-hjelp/rad-og-anbefalinger/grunnprinsipper-for-ikt-sikkerhet/",
		Description: "21 prinsipper med 118 sikkerhetstiltak",
	},
	{
		ID:          "nis2",
		Name:        "NIS2-direktivet",
		Source:      "EU-direktiv (kommende, forventet 2026)",
		URL:         "https://www.regjeringen.no/no/sub/eos-notatbasen/notatene/2021/feb/nis2-direktivet/id2846097/",
		Description: "Kommende EU-krav til cybersikkerhet - strengere enn NIS1/Digitalsikkerhetsloven",
	},
}

// LevelInfo names a probability or consequence level.
type LevelInfo struct {
	Label       string
	Description string
}

// ProbabilityLevels maps the 1-4 probability scale to labels.
var ProbabilityLevels = map[int]LevelInfo{
	1: {Label: "Svært lav", Description: "Usannsynlig, < 1% sjanse per år"},
	2: {Label: "Lav", Description: "Lite sannsynlig, 1-10% sjanse per år"},
	3: {Label: "Moderat", Description: "Kan skje, 10-50% sjanse per år"},
	4: {Label: "Høy", Description: "Sannsynlig, > 50% sjanse per år"},
}

// ConsequenceLevels maps the 1-3 consequence scale to labels.
var ConsequenceLevels = map[int]LevelInfo{
	1: {Label: "Lav", Description: "Begrenset skade, enkelt å håndtere"},
	2: {Label: "Moderat", Description: "Betydelig skade, krever ressurser å håndtere"},
	3: {Label: "Alvorlig", Description: "Stor skade, kan true liv, helse eller drift"},
}

// RiskLevel buckets a risk score (probability x consequence).
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevelInfo is presentation metadata for a risk level bucket.
type RiskLevelInfo struct {
	Min    int
	Max    int
	Label  string
	Color  string
	Action string
}

var RiskLevels = map[RiskLevel]RiskLevelInfo{
	RiskLow:      {Min: 1, Max: 3, Label: "Lav risiko", Color: "green", Action: "Akseptabel risiko, overvåk"},
	RiskMedium:   {Min: 4, Max: 6, Label: "Moderat risiko", Color: "yellow", Action: "Vurder tiltak, prioriter ved kapasitet"},
	RiskHigh:     {Min: 7, Max: 9, Label: "Høy risiko", Color: "orange", Action: "Tiltak må implementeres"},
	RiskCritical: {Min: 10, Max: 12, Label: "Kritisk risiko", Color: "red", Action: "Umiddelbar handling påkrevd"},
}

// RiskLevelForScore buckets a score into one of the four risk levels.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score <= 3:
		return RiskLow
	case score <= 6:
		return RiskMedium
	case score <= 9:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// NotificationRequirement is a regulatory reporting duty that applies from a
// given grading level.
type NotificationRequirement struct {
	Event      string
	Deadline   string
	Recipient  string
	LegalBasis string
	Level      int
}

var NotificationRequirements = []NotificationRequirement{
	{
		Event:      "Hendelse med betydelig innvirkning på tjenestetilbudet",
		Deadline:   "24 timer",
		Recipient:  "Tilsynsmyndighet (sektormyndighet)",
		LegalBasis: "Digitalsikkerhetsloven § 9",
		Level:      2,
	},
	{
		Event:      "Oppdatert hendelsesrapport",
		Deadline:   "72 timer",
		Recipient:  "Tilsynsmyndighet (sektormyndighet)",
		LegalBasis: "Digitalsikkerhetsloven § 9",
		Level:      2,
	},
	{
		Event:      "Fullstendig hendelsesrapport",
		Deadline:   "1 måned",
		Recipient:  "Tilsynsmyndighet (sektormyndighet)",
		LegalBasis: "Digitalsikkerhetsloven § 9",
		Level:      2,
	},
	{
		Event:      "Brudd på personopplysningssikkerheten",
		Deadline:   "72 timer",
		Recipient:  "Datatilsynet",
		LegalBasis: "GDPR Art. 33",
		Level:      3,
	},
	{
		Event:      "Høy risiko for registrerte",
		Deadline:   "Uten ugrunnet opphold",
		Recipient:  "Berørte pasienter/registrerte",
		LegalBasis: "GDPR Art. 34",
		Level:      3,
	},
	{
		Event:      "Sikkerhetstruende hendelse (skjermingsverdige systemer)",
		Deadline:   "Umiddelbart",
		Recipient:  "NSM",
		LegalBasis: "Sikkerhetsloven",
		Level:      4,
	},
}

// ImportantNote is sector guidance shown alongside recommendations.
// Level 0 means the note applies at every level.
type ImportantNote struct {
	Title       string
	Description string
	Level       int
}

var ImportantNotes = []ImportantNote{
	{
		Title:       "Helsenettet er et åpent nett",
		Description: "I henhold til Normen Faktaark 24 regnes Helsenettet som et åpent nett. Dette betyr at kryptering er obligatorisk også for kommunikasjon innenfor Helsenettet.",
		Level:       0,
	},
	{
		Title:       "Logging av tilgang er lovpålagt",
		Description: "Pasientjournalforskriften § 14 krever at det logges hvem som har aksessert pasientopplysninger, og pasienten har rett til innsyn i denne loggen.",
		Level:       3,
	},
	{
		Title:       "24-timers varsling ved hendelser",
		Description: "Digitalsikkerhetsloven § 9 krever varsling til tilsynsmyndighet innen 24 timer ved hendelser med betydelig innvirkning på tjenestetilbudet.",
		Level:       2,
	},
	{
		Title:       "Digitalsikkerhetsloven gjelder fra 1. oktober 2025",
		Description: "Loven gjelder for tilbydere av samfunnsviktige tjenester i helsesektoren, inkludert regionale helseforetak og kommuner med >50 000 innbyggere. Ingen overgangsperiode.",
		Level:       0,
	},
}
