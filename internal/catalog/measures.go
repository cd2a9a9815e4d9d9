package catalog

// MeasureCategory separates technical from organizational controls.
type MeasureCategory string

const (
	MeasureTechnical      MeasureCategory = "technical"
	MeasureOrganizational MeasureCategory = "organizational"
)

// Measure is a single mandated security control.
type Measure struct {
	ID          string
	Name        string
	Description string
	LegalBasis  string
	Required    bool
	Category    MeasureCategory
}

// MeasureByID searches both control catalogs.
func MeasureByID(id string) (Measure, bool) {
	for _, m := range TechnicalMeasures {
		if m.ID == id {
			return m, true
		}
	}
	for _, m := range OrganizationalMeasures {
		if m.ID == id {
			return m, true
		}
	}
	return Measure{}, false
}

// TechnicalMeasures is ordered by the grading level that first requires each
// control.
var TechnicalMeasures = []Measure{
	// Nivå 1
	{
		ID:          "tls",
		Name:        "TLS-kryptering (HTTPS)",
		Description: "Kryptert kommunikasjon med TLS 1.2 eller høyere",
		LegalBasis:  "NSM 2.7, Normen Faktaark 24",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "firewall",
		Name:        "Brannmur",
		Description: "Perimetersikring og segmentering",
		LegalBasis:  "NSM 2.4",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "patching",
		Name:        "Sårbarhetshåndtering / Patching",
		Description: "Regelmessige sikkerhetsoppdateringer",
		LegalBasis:  "NSM 3.1, Digitalsikkerhetsforskriften § 10",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "backup",
		Name:        "Sikkerhetskopiering",
		Description: "Regelmessig backup med testing av gjenoppretting",
		LegalBasis:  "NSM 2.9, Digitalsikkerhetsforskriften § 10",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "logging_basic",
		Name:        "Systemlogging",
		Description: "Logging av systemhendelser",
		LegalBasis:  "NSM 3.2",
		Required:    true,
		Category:    MeasureTechnical,
	},

	// Nivå 2
	{
		ID:          "mfa",
		Name:        "Flerfaktor-autentisering (MFA)",
		Description: "To eller flere autentiseringsfaktorer",
		LegalBasis:  "NSM 2.6, NHN-krav",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "segmentation",
		Name:        "Nettverkssegmentering",
		Description: "Isolering av nettverkssoner",
		LegalBasis:  "NSM 2.4",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "vulnerability_scan",
		Name:        "Sårbarhetsskanning",
		Description: "Automatisert skanning etter kjente sårbarheter",
		LegalBasis:  "NSM 3.1",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "ids_ips",
		Name:        "IDS/IPS",
		Description: "Innbruddsdeteksjon og -forebygging",
		LegalBasis:  "NSM 3.2",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "secure_config",
		Name:        "Sikker konfigurasjon",
		Description: "Hardening, fjerne standardpassord og unødvendige tjenester",
		LegalBasis:  "NSM 2.3",
		Required:    true,
		Category:    MeasureTechnical,
	},

	// Nivå 3
	{
		ID:          "eid",
		Name:        "Sikker autentisering (eID)",
		Description: "BankID, Buypass eller tilsvarende for pasienter/brukere",
		LegalBasis:  "Normen Faktaark 24",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "e2e_encryption",
		Name:        "Ende-til-ende kryptering",
		Description: "Kryptering av all helseinformasjon i transitt",
		LegalBasis:  "Normen Faktaark 24 (OBLIGATORISK)",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "encryption_at_rest",
		Name:        "Kryptering i ro",
		Description: "Kryptert lagring av helseopplysninger",
		LegalBasis:  "GDPR Art. 32",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "access_logging",
		Name:        "Tilgangslogging",
		Description: "Logging av hvem som har aksessert hvilke opplysninger",
		LegalBasis:  "Pasientjournalforskriften § 14, GDPR Art. 32",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "waf",
		Name:        "Web Application Firewall (WAF)",
		Description: "Beskyttelse mot OWASP Top 10",
		LegalBasis:  "NSM 2.4",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "pentest",
		Name:        "Penetrasjonstesting",
		Description: "Regelmessig sikkerhetstesting",
		LegalBasis:  "NSM 3.4",
		Required:    true,
		Category:    MeasureTechnical,
	},

	// Nivå 4
	{
		ID:          "nsm_crypto",
		Name:        "NSM-godkjent kryptering",
		Description: "Kryptering godkjent av NSM for gradert informasjon",
		LegalBasis:  "Virksomhetssikkerhetsforskriften § 35",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "separated_infra",
		Name:        "Adskilt infrastruktur",
		Description: "Fysisk eller logisk separert fra øvrig infrastruktur",
		LegalBasis:  "Virksomhetssikkerhetsforskriften",
		Required:    true,
		Category:    MeasureTechnical,
	},
	{
		ID:          "physical_security",
		Name:        "Fysisk sikring",
		Description: "Kontrollert/sperret/beskyttet område",
		LegalBasis:  "Virksomhetssikkerhetsforskriften §§ 28-31",
		Required:    true,
		Category:    MeasureTechnical,
	},
}

var OrganizationalMeasures = []Measure{
	// Nivå 1
	{
		ID:          "system_owner",
		Name:        "Definert systemeier",
		Description: "Klart definert ansvar for systemet",
		LegalBasis:  "NSM 1.1",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "change_mgmt",
		Name:        "Endringsrutiner",
		Description: "Kontrollerte endringer med godkjenning",
		LegalBasis:  "NSM 2.10",
		Required:    true,
		Category:    MeasureOrganizational,
	},

	// Nivå 2
	{
		ID:          "risk_assessment",
		Name:        "Risikovurdering",
		Description: "Dokumentert risikovurdering ved etablering og endringer",
		LegalBasis:  "Digitalsikkerhetsforskriften § 7, GDPR Art. 32, Normen",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "incident_procedures",
		Name:        "Hendelsesprosedyrer",
		Description: "Dokumenterte prosedyrer for sikkerhetshendelser",
		LegalBasis:  "NSM 4.1, Digitalsikkerhetsforskriften § 13",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "access_control_policy",
		Name:        "Tilgangskontrollpolicy",
		Description: "Tilgang kun til de som trenger det",
		LegalBasis:  "NSM 2.6",
		Required:    true,
		Category:    MeasureOrganizational,
	},

	// Nivå 3
	{
		ID:          "dpia",
		Name:        "DPIA (Personvernkonsekvensvurdering)",
		Description: "Obligatorisk ved høy risiko for registrerte",
		LegalBasis:  "GDPR Art. 35",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "dpa",
		Name:        "Databehandleravtale",
		Description: "Påkrevd ved bruk av leverandører",
		LegalBasis:  "GDPR Art. 28",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "legal_basis",
		Name:        "Behandlingsgrunnlag",
		Description: "Dokumentert lovlig grunnlag for behandling",
		LegalBasis:  "GDPR Art. 6 og 9",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "annual_review",
		Name:        "Årlig tilgangsgjennomgang",
		Description: "Årlig kontroll av tildelte tilganger",
		LegalBasis:  "Normen Faktaark 14",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "confidentiality",
		Name:        "Taushetspliktserklæring",
		Description: "Signert erklæring for alle med tilgang",
		LegalBasis:  "Helsepersonelloven",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "training",
		Name:        "Sikkerhetsopplæring",
		Description: "Opplæring for alle ansatte med tilgang",
		LegalBasis:  "Normen, Digitalsikkerhetsforskriften § 12",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "continuity_plan",
		Name:        "Beredskaps- og kontinuitetsplan",
		Description: "Dokumentert og øvet beredskapsplan",
		LegalBasis:  "Digitalsikkerhetsforskriften § 13",
		Required:    true,
		Category:    MeasureOrganizational,
	},

	// Nivå 4
	{
		ID:          "security_clearance",
		Name:        "Sikkerhetsklarering",
		Description: "Personellsikkerhetsklarering for alle med tilgang",
		LegalBasis:  "Sikkerhetsloven § 8-1",
		Required:    true,
		Category:    MeasureOrganizational,
	},
	{
		ID:          "supplier_clearance",
		Name:        "Leverandørklarering",
		Description: "Klarering av leverandører for gradert informasjon",
		LegalBasis:  "Sikkerhetsloven § 9-3",
		Required:    true,
		Category:    MeasureOrganizational,
	},
}
