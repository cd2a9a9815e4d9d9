package catalog

// ChecklistItem is one NIS2 compliance checkpoint with the control
// expectations an organization verifies against it.
type ChecklistItem struct {
	ID          string
	Title       string
	Description string
	Details     []string
	Article     string
	ArticleURL  string
	Deadline    string
}

// ChecklistCategory groups NIS2 checkpoints by subject area.
type ChecklistCategory struct {
	ID    string
	Name  string
	Items []ChecklistItem
}

// NIS2Categories is the compliance checklist for NIS2-direktivet, implemented
// in Norway through Digitalsikkerhetsloven. The health sector is regulated as
// an essential entity and is subject to the strictest tier of requirements.
var NIS2Categories = []ChecklistCategory{
	{
		ID:   "governance",
		Name: "Styring og ledelse",
		Items: []ChecklistItem{
			{
				ID:          "gov-1",
				Title:       "Ledelsesansvar etablert",
				Description: "Toppledelsen må godkjenne og overvåke cybersikkerhetstiltak",
				Details: []string{
					"Styret/ledelsen har formelt godkjent sikkerhetspolicy",
					"Ledelsen gjennomgår sikkerhetsrapporter regelmessig",
					"Det er utpekt ansvarlig for informasjonssikkerhet (CISO eller tilsvarende)",
					"Ledelsen har gjennomgått opplæring i cybersikkerhet",
				},
				Article:    "Art. 20",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_20.html",
			},
			{
				ID:          "gov-2",
				Title:       "Sikkerhetspolicy vedtatt",
				Description: "Dokumentert policy for informasjonssikkerhet",
				Details: []string{
					"Policy er oppdatert og godkjent siste 12 måneder",
					"Policy dekker alle vesentlige sikkerhetsområder",
					"Policy er kommunisert til alle ansatte",
					"Det finnes prosess for årlig gjennomgang",
				},
				Article:    "Art. 21(2)(a)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
		},
	},
	{
		ID:   "risk",
		Name: "Risikostyring",
		Items: []ChecklistItem{
			{
				ID:          "risk-1",
				Title:       "Risikovurdering gjennomført",
				Description: "Systematisk vurdering av cybersikkerhetsrisikoer",
				Details: []string{
					"Risikovurdering er gjennomført siste 12 måneder",
					"Alle kritiske systemer er inkludert",
					"Risikoer er prioritert og akseptnivå er definert",
					"Tiltaksplan er etablert for høye risikoer",
				},
				Article:    "Art. 21(2)(a)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "risk-2",
				Title:       "Sikkerhetstiltak implementert",
				Description: "Tekniske og organisatoriske tiltak basert på risikovurdering",
				Details: []string{
					"Tiltak er proporsjonale med identifiserte risikoer",
					"Tiltak dekker konfidensialitet, integritet og tilgjengelighet",
					"Effektiviteten av tiltak måles og rapporteres",
					"State-of-the-art løsninger vurderes",
				},
				Article:    "Art. 21(1)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
		},
	},
	{
		ID:   "incident",
		Name: "Hendelseshåndtering",
		Items: []ChecklistItem{
			{
				ID:          "inc-1",
				Title:       "Hendelseshåndteringsplan",
				Description: "Dokumentert prosess for håndtering av sikkerhetshendelser",
				Details: []string{
					"Plan inkluderer deteksjon, analyse og respons",
					"Roller og ansvar er tydelig definert",
					"Eskaleringsprosedyrer er etablert",
					"Planen er testet/øvd siste 12 måneder",
				},
				Article:    "Art. 21(2)(b)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "inc-2",
				Title:       "Varslingsrutiner etablert",
				Description: "Prosedyrer for varsling til myndigheter ved vesentlige hendelser",
				Details: []string{
					"Tidlig varsling innen 24 timer er mulig",
					"Full rapport innen 72 timer er mulig",
					"Kontaktinfo til NSM/sektormyndighet er kjent",
					"Intern varslingskjede er definert",
				},
				Article:    "Art. 23",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_23.html",
				Deadline:   "24 timer",
			},
		},
	},
	{
		ID:   "continuity",
		Name: "Kontinuitet",
		Items: []ChecklistItem{
			{
				ID:          "cont-1",
				Title:       "Backup-rutiner",
				Description: "Regelmessig sikkerhetskopiering av kritiske data og systemer",
				Details: []string{
					"Backup-frekvens er definert basert på kritikalitet",
					"Backup lagres geografisk adskilt (offsite)",
					"Gjenoppretting er testet siste 6 måneder",
					"Backup er beskyttet mot ransomware",
				},
				Article:    "Art. 21(2)(c)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "cont-2",
				Title:       "Beredskapsplan",
				Description: "Plan for opprettholdelse av drift under og etter hendelser",
				Details: []string{
					"Kritiske prosesser og systemer er identifisert",
					"RTO (Recovery Time Objective) er definert",
					"RPO (Recovery Point Objective) er definert",
					"Alternative driftsrutiner er dokumentert",
				},
				Article:    "Art. 21(2)(c)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "cont-3",
				Title:       "Krisehåndtering",
				Description: "Organisering og prosesser for håndtering av større hendelser",
				Details: []string{
					"Kriseteam er utpekt med tydelige roller",
					"Kommunikasjonsplan er etablert",
					"Øvelser gjennomføres årlig",
					"Læringspunkter dokumenteres og følges opp",
				},
				Article:    "Art. 21(2)(c)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
		},
	},
	{
		ID:   "supply",
		Name: "Leverandørsikkerhet",
		Items: []ChecklistItem{
			{
				ID:          "sup-1",
				Title:       "Leverandøroversikt",
				Description: "Kartlegging av IKT-leverandører og deres risiko",
				Details: []string{
					"Alle kritiske IKT-leverandører er identifisert",
					"Risikovurdering er gjort per leverandør",
					"Avhengigheter til leverandører er dokumentert",
					"Exit-strategi finnes for kritiske leverandører",
				},
				Article:    "Art. 21(2)(d)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "sup-2",
				Title:       "Sikkerhetskrav i kontrakter",
				Description: "Avtaler med leverandører inkluderer sikkerhetskrav",
				Details: []string{
					"Databehandleravtaler er på plass (GDPR)",
					"Sikkerhetskrav er spesifisert i kontrakter",
					"Revisjonsrett er avtalt",
					"Varslingskrav ved hendelser er inkludert",
				},
				Article:    "Art. 21(2)(d)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
		},
	},
	{
		ID:   "access",
		Name: "Tilgangsstyring",
		Items: []ChecklistItem{
			{
				ID:          "acc-1",
				Title:       "Tilgangskontroll",
				Description: "Styring av hvem som har tilgang til systemer og data",
				Details: []string{
					"Prinsippet om minste privilegium følges",
					"Tilganger gjennomgås regelmessig (minst årlig)",
					"Prosess for onboarding/offboarding av ansatte",
					"Priviligerte tilganger er strengt kontrollert",
				},
				Article:    "Art. 21(2)(i)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "acc-2",
				Title:       "Flerfaktorautentisering",
				Description: "MFA implementert for kritiske systemer",
				Details: []string{
					"MFA er påkrevd for administrativ tilgang",
					"MFA er påkrevd for ekstern tilgang (VPN)",
					"MFA vurdert for alle systemer med sensitive data",
					"Phishing-resistent MFA vurdert (FIDO2/passkeys)",
				},
				Article:    "Art. 21(2)(j)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
		},
	},
	{
		ID:   "technical",
		Name: "Teknisk sikkerhet",
		Items: []ChecklistItem{
			{
				ID:          "tech-1",
				Title:       "Nettverkssikkerhet",
				Description: "Beskyttelse av nettverk og kommunikasjon",
				Details: []string{
					"Brannmur og segmentering er implementert",
					"Kryptering brukes for data i transitt",
					"IDS/IPS eller tilsvarende overvåkning",
					"Sikker konfigurasjon av nettverksutstyr",
				},
				Article:    "Art. 21(2)(e)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "tech-2",
				Title:       "Sårbarhetshåndtering",
				Description: "Prosess for å identifisere og håndtere sårbarheter",
				Details: []string{
					"Regelmessig sårbarhetsskanning gjennomføres",
					"Kritiske oppdateringer installeres innen definert tid",
					"Prosess for testing før utrulling av patcher",
					"Oversikt over alle systemer og programvare",
				},
				Article:    "Art. 21(2)(e)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "tech-3",
				Title:       "Kryptografi",
				Description: "Bruk av kryptering for å beskytte data",
				Details: []string{
					"Data i hvile er kryptert der relevant",
					"Data i transitt er kryptert (TLS 1.2+)",
					"Nøkkelhåndtering er dokumentert",
					"Kryptostandard følger anbefalinger (NSM/ENISA)",
				},
				Article:    "Art. 21(2)(h)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
		},
	},
	{
		ID:   "awareness",
		Name: "Opplæring og bevissthet",
		Items: []ChecklistItem{
			{
				ID:          "awa-1",
				Title:       "Sikkerhetsopplæring",
				Description: "Regelmessig opplæring av ansatte i cybersikkerhet",
				Details: []string{
					"Alle ansatte gjennomfører grunnleggende opplæring",
					"Opplæring gjennomføres ved ansettelse og årlig",
					"Spesialisert opplæring for IT-personell",
					"Ledelsen har gjennomgått relevant opplæring",
				},
				Article:    "Art. 21(2)(g)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
			{
				ID:          "awa-2",
				Title:       "Phishing-øvelser",
				Description: "Testing av ansattes evne til å gjenkjenne phishing",
				Details: []string{
					"Simulerte phishing-øvelser gjennomføres",
					"Resultater analyseres og følges opp",
					"Målrettet opplæring til de som trenger det",
					"Trend over tid følges",
				},
				Article:    "Art. 21(2)(g)",
				ArticleURL: "https://www.nis-2-directive.com/NIS_2_Directive_Article_21.html",
			},
		},
	},
}

// NIS2ItemCount returns the total number of checkpoints across all
// categories.
func NIS2ItemCount() int {
	total := 0
	for _, cat := range NIS2Categories {
		total += len(cat.Items)
	}
	return total
}

// NIS2ItemByID searches all categories for a checkpoint.
func NIS2ItemByID(id string) (ChecklistItem, bool) {
	for _, cat := range NIS2Categories {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return ChecklistItem{}, false
}
