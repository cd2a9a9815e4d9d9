package catalog

import "strings"

// CIAImpact marks which of the three security properties a scenario affects.
// The Norwegian rendering is K (konfidensialitet), I (integritet),
// T (tilgjengelighet).
type CIAImpact struct {
	Confidentiality bool
	Integrity       bool
	Availability    bool
}

// Label renders the impact as "K, I, T" style shorthand.
func (c CIAImpact) Label() string {
	parts := make([]string, 0, 3)
	if c.Confidentiality {
		parts = append(parts, "K")
	}
	if c.Integrity {
		parts = append(parts, "I")
	}
	if c.Availability {
		parts = append(parts, "T")
	}
	return strings.Join(parts, ", ")
}

// ExposureMultiplier scales a scenario's base probability per exposure tier.
type ExposureMultiplier struct {
	Internet  float64
	Helsenett float64
	Internal  float64
}

// For returns the multiplier for the given exposure. Unknown exposures fall
// back to the internal tier.
func (m ExposureMultiplier) For(e Exposure) float64 {
	switch e {
	case ExposureInternet:
		return m.Internet
	case ExposureHelsenett:
		return m.Helsenett
	default:
		return m.Internal
	}
}

// MitigationEffect is the flat reduction the scenario's control set is
// assumed to achieve once implemented.
type MitigationEffect struct {
	ProbabilityReduction int
	ConsequenceReduction int
}

// ThreatScenario is a static entry in the ROS catalog. Scenarios never
// mutate; the risk engine filters and scores them per invocation.
type ThreatScenario struct {
	ID                 string
	Category           string
	Name               string
	Description        string
	Vulnerability      string
	Consequence        string
	TechnicalDetails   string
	CIA                CIAImpact
	BaseProbability    int // 1-4
	BaseConsequence    int // 1-3
	ProbabilityFactors []string
	ConsequenceFactors []string
	ExistingMeasures   []string
	AdditionalMeasures []string
	Mitigations        []string
	RelevantFlags      []Flag
	ExposureMultiplier ExposureMultiplier
	MitigationEffect   MitigationEffect
}

// ScenarioByID looks up a threat scenario.
func ScenarioByID(id string) (*ThreatScenario, bool) {
	for i := range ThreatScenarios {
		if ThreatScenarios[i].ID == id {
			return &ThreatScenarios[i], true
		}
	}
	return nil, false
}

// ThreatScenarios is the full ROS scenario catalog.
var ThreatScenarios = []ThreatScenario{
	{
		ID:               "ransomware",
		Category:         "Ondsinnet programvare",
		Name:             "Ransomware-angrep",
		Description:      "Kryptering av data og systemer med krav om løsepenger",
		Vulnerability:    "Eksponerte RDP-tjenester, sårbare VPN-løsninger, manglende MFA, eller phishing-angrep gir angripere initiell tilgang til nettverket.",
		Consequence:      "Kritiske systemer og data blir kryptert. Tjenestene vil ikke være tilgjengelige. Potensiell datalekkasje ved dobbel utpressing. Betydelig omdømmeskade.",
		TechnicalDetails: "Moderne ransomware (LockBit 3.0, BlackCat/ALPHV, Cl0p) eksfiltrerer data før kryptering. Gjennomsnittlig nedetid: 21 dager. Løsepengekrav i helse: $1.27M gjennomsnitt.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Internett-eksponert RDP/VPN", "Manglende MFA", "Utdaterte systemer", "Manglende sikkerhetsopplæring",
		},
		ConsequenceFactors: []string{
			"Helseopplysninger", "Kritisk infrastruktur", "Manglende offline backup", "Ingen hendelsesresponsplan",
		},
		ExistingMeasures: []string{
			"Antivirus/EDR installert",
			"Brannmur konfigurert",
			"Daglig backup kjører",
			"E-postfiltrering aktivert",
		},
		AdditionalMeasures: []string{
			"Implementer offline/immutable backup (3-2-1-1 regel)",
			"MFA på alle eksterne tilganger",
			"Nettverkssegmentering med mikrosegmentering",
			"XDR-løsning med automatisert respons",
			"Kvartalsvise phishing-simuleringer",
			"Incident response plan med øvelser",
		},
		Mitigations: []string{
			"Offline backup", "MFA", "Nettverkssegmentering", "EDR/XDR", "Phishing-opplæring", "Hendelsesresponsplan",
		},
		RelevantFlags:      []Flag{FlagInternet, FlagHealthData, FlagCriticalSystem},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.5, Helsenett: 1.0, Internal: 0.6},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "supply_chain",
		Category:         "Leverandørkjedeangrep",
		Name:             "Kompromittert leverandør/programvare",
		Description:      "Angrep via tredjeparts programvare eller leverandørtilgang",
		Vulnerability:    "Manglende kontroll på leverandørers sikkerhetsnivå. Automatiske oppdateringer fra kompromitterte kilder. Bred leverandørtilgang til systemer.",
		Consequence:      "Massiv dataeksponering via betrodd kanal. Vanskelig å oppdage. Kan gi full tilgang til interne systemer og data.",
		TechnicalDetails: "Kjente angrep: SolarWinds Orion (2020), Kaseya VSA (2021), MOVEit (2023). Helsesektoren særlig utsatt pga. mange integrasjoner (EPJ, lab, radiologi).",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Mange tredjepartsleverandører", "Automatiske oppdateringer", "Manglende leverandørvurdering",
		},
		ConsequenceFactors: []string{
			"Kritisk knutepunkt", "Tilgang til pasientdata", "Mange integrerte systemer",
		},
		ExistingMeasures: []string{
			"Databehandleravtaler på plass",
			"Årlig leverandørgjennomgang",
			"Nettverksovervåking",
		},
		AdditionalMeasures: []string{
			"Leverandørsikkerhetsscoring (SOC 2, ISO 27001 krav)",
			"Segmenterte leverandørtilganger med JIT-access",
			"Overvåking av leverandøraktivitet (UEBA)",
			"Software Bill of Materials (SBOM) krav",
			"Incident response plan for leverandørbrudd",
			"Pen-test krav i kontrakter",
		},
		Mitigations: []string{
			"Leverandørvurdering", "Segmentering", "UEBA", "SBOM", "Hendelsesplan",
		},
		RelevantFlags:      []Flag{FlagCriticalInfrastructure, FlagExtensiveIntegration, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.2, Helsenett: 1.1, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "phishing_targeted",
		Category:         "Sosial manipulering",
		Name:             "Målrettet phishing (spear phishing)",
		Description:      "Målrettede e-postangrep mot ansatte med tilgang til sensitive systemer",
		Vulnerability:    "Ansatte med tilgang til sensitive systemer mottar troverdige, målrettede phishing-forsøk basert på OSINT-innsamling.",
		Consequence:      "Kompromitterte kontoer gir tilgang til sensitive data. Kan være starten på større angrep.",
		TechnicalDetails: "AI-generert phishing øker i kvalitet. Business Email Compromise (BEC) målretter ledelse og økonomi. QR-kode phishing (quishing) omgår e-postfiltre.",
		CIA:              CIAImpact{Confidentiality: true},
		BaseProbability:  4,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Stor brukergruppe", "Offentlig eksponert organisasjon", "Manglende opplæring",
		},
		ConsequenceFactors: []string{
			"Privilegerte brukere rammes", "Tilgang til pasientdata", "Manglende MFA",
		},
		ExistingMeasures: []string{
			"E-postfiltrering (spam/phishing)",
			"Årlig sikkerhetsopplæring",
			"Varsling av mistenkelige e-poster",
		},
		AdditionalMeasures: []string{
			"Månedlige phishing-simuleringer med oppfølging",
			"DMARC/DKIM/SPF implementering",
			"MFA på alle kontoer (hardware-tokens for admin)",
			"Privileged Access Management (PAM)",
			"Sikkerhetskultur-program",
			"AI-basert e-postanalyse",
		},
		Mitigations: []string{
			"Phishing-simuleringer", "DMARC", "MFA", "PAM", "Opplæring",
		},
		RelevantFlags:      []Flag{FlagPublicFacing, FlagPatientIdentifiable, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.1, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "unauthorized_access",
		Category:         "Uautorisert tilgang",
		Name:             "Kompromitterte brukerkontoer",
		Description:      "Uautorisert tilgang via stjålne, gjettede eller lekkede passord",
		Vulnerability:    "Svak passordpolicy, gjenbrukte passord fra andre lekkasjer, eller manglende MFA gjør kontoer sårbare.",
		Consequence:      "Angriper får tilgang med legitime rettigheter. Vanskelig å oppdage. Kan eskalere privilegier.",
		TechnicalDetails: "Credential stuffing fra 24+ milliarder lekkede passord. Password spraying mot vanlige passord. Gjennomsnittlig tid til oppdagelse: 207 dager.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Manglende MFA", "Svak passordpolicy", "Gjenbrukte passord", "Ingen credential monitoring",
		},
		ConsequenceFactors: []string{
			"Tilgang til EPJ", "Administrative rettigheter", "Lateral movement mulig",
		},
		ExistingMeasures: []string{
			"Passordpolicy (min 8 tegn)",
			"Kontolåsing etter feilforsøk",
			"Logging av innlogging",
		},
		AdditionalMeasures: []string{
			"MFA på alle kontoer (phishing-resistent for admin)",
			"Passordpolicy min 14 tegn eller passphrase",
			"Credential monitoring (Have I Been Pwned Enterprise)",
			"Kontobasert anomalideteksjon (UEBA)",
			"Passwordless autentisering for sensitive systemer",
			"Regelmessig tilgangsgjennomgang",
		},
		Mitigations: []string{
			"MFA", "Sterk passordpolicy", "Credential monitoring", "UEBA", "Tilgangsgjennomgang",
		},
		RelevantFlags:      []Flag{FlagPatientIdentifiable, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.4, Helsenett: 1.1, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "data_exfiltration",
		Category:         "Datalekkasje",
		Name:             "Uautorisert dataeksfiltrering",
		Description:      "Sensitiv data kopieres ut av organisasjonen",
		Vulnerability:    "Manglende DLP-kontroller, bred datatilgang, eller mulighet for å bruke USB/skytjenester gjør eksfiltrering mulig.",
		Consequence:      "Helseopplysninger på avveie. GDPR-brudd med potensielle bøter. Stor omdømmeskade. Mulig utpressing.",
		TechnicalDetails: "Helsejournaler verdt $250-1000 på darknet (10x kredittkort). Eksfiltrering via DNS tunneling, cloud storage, eller krypterte kanaler.",
		CIA:              CIAImpact{Confidentiality: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Manglende DLP", "Bred datatilgang", "USB/cloud tillatt", "Manglende logging",
		},
		ConsequenceFactors: []string{
			"Helseopplysninger", "Mange pasienter", "Sensitive diagnoser",
		},
		ExistingMeasures: []string{
			"Tilgangsstyring implementert",
			"Logging av filaksess",
			"Kryptert lagring",
		},
		AdditionalMeasures: []string{
			"Data Loss Prevention (DLP) på endpoint og nettverk",
			"USB-restriksjon/blokkering",
			"Cloud Access Security Broker (CASB)",
			"Data classification og tagging",
			"Need-to-know tilgangsprinsipp",
			"Regelmessig tilgangsgjennomgang",
		},
		Mitigations: []string{
			"DLP", "USB-kontroll", "CASB", "Data classification", "Tilgangsstyring",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagPatientIdentifiable, FlagHighConfidentiality},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.2, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "ddos",
		Category:         "Tjenestenekt",
		Name:             "DDoS-angrep",
		Description:      "Distribuert tjenestenektangrep som overbelaster systemer",
		Vulnerability:    "Internett-eksponerte tjenester uten tilstrekkelig beskyttelse kan overbelastes av distribuerte angrep.",
		Consequence:      "Kritiske helsetjenester blir utilgjengelige. Pasientbehandling kan forsinkes eller stoppes.",
		TechnicalDetails: "DDoS-as-a-service fra $20/time. Angrep på 1+ Tbps observert. Applikasjonslagsangrep (L7) vanskeligere å stoppe.",
		CIA:              CIAImpact{Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Internett-eksponert", "Kritisk helsetjeneste", "Politisk sensitivt", "Manglende DDoS-beskyttelse",
		},
		ConsequenceFactors: []string{
			"Pasientbehandling påvirkes", "Ingen redundans", "Lang gjenopprettingstid",
		},
		ExistingMeasures: []string{
			"Brannmur med rate limiting",
			"ISP-varsling ved angrep",
			"Redundant internettlinje",
		},
		AdditionalMeasures: []string{
			"Dedikert DDoS-beskyttelse (Cloudflare, Akamai, Azure)",
			"Web Application Firewall (WAF)",
			"Auto-skalering av infrastruktur",
			"Anycast DNS",
			"DDoS-responsplan med ISP",
			"Kommunikasjonsplan for nedetid",
		},
		Mitigations: []string{
			"DDoS-beskyttelse", "WAF", "Auto-skalering", "Responsplan",
		},
		RelevantFlags:      []Flag{FlagInternet, FlagCriticalSystem, FlagPublicFacing},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.5, Helsenett: 0.4, Internal: 0.1},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "vulnerability_exploitation",
		Category:         "Sårbarhetsutnyttelse",
		Name:             "Utnyttelse av kjente sårbarheter",
		Description:      "Angrep via upatchede systemer og publiserte CVE-er",
		Vulnerability:    "Systemer med kjente, upatchede sårbarheter eksponert mot nettverk. Treg patchingprosess.",
		Consequence:      "Full systemkompromittering mulig. Kan føre til videre angrep i nettverket.",
		TechnicalDetails: "Median tid fra CVE til exploit: 7 dager. CISA KEV-katalogen viser aktivt utnyttede sårbarheter. Kritiske VPN-sårbarheter (Fortinet, Ivanti) utnyttes timer etter publisering.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Treg patching (>30 dager)", "Legacy-systemer", "Internett-eksponert", "Manglende sårbarhetsskanning",
		},
		ConsequenceFactors: []string{
			"Kritisk system", "Lateral movement mulig", "Ingen segmentering",
		},
		ExistingMeasures: []string{
			"Månedlig patching",
			"Antivirus oppdatert",
			"Brannmur på plass",
		},
		AdditionalMeasures: []string{
			"Kontinuerlig sårbarhetsskanning (ukentlig)",
			"Patching SLA (kritisk: 24-72t, høy: 7 dager)",
			"Virtual patching via WAF/IPS",
			"Nettverkssegmentering",
			"CISA KEV-overvåking",
			"Penetrasjonstesting årlig",
		},
		Mitigations: []string{
			"Sårbarhetsskanning", "Rask patching", "Virtual patching", "Segmentering", "Pen-test",
		},
		RelevantFlags:      []Flag{FlagInternet, FlagCriticalInfrastructure, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.5, Helsenett: 1.0, Internal: 0.5},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "insider_threat",
		Category:         "Innsidertrussel",
		Name:             "Ondsinnet eller uaktsom innsider",
		Description:      "Ansatte som bevisst eller ubevisst forårsaker sikkerhetshendelse",
		Vulnerability:    "Ansatte med bred tilgang, utilstrekkelig logging, eller manglende kontroller kan misbruke tilgang.",
		Consequence:      "Datatyveri, sabotasje, eller utilsiktet eksponering av sensitive data.",
		TechnicalDetails: "34% av databrudd involverer innsidere (Verizon DBIR). Helsepersonell trenger bred tilgang for å utføre jobben, noe som øker risikoen.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Bred tilgang", "Manglende logging", "Utilfredse ansatte", "Ingen UEBA",
		},
		ConsequenceFactors: []string{
			"Tilgang til mange pasienter", "Administrative rettigheter", "Manglende segmentering",
		},
		ExistingMeasures: []string{
			"Tilgangsstyring basert på rolle",
			"Logging av systemtilgang",
			"Arbeidsreglement",
		},
		AdditionalMeasures: []string{
			"User Entity Behavior Analytics (UEBA)",
			"Prinsipp om minste privilegium",
			"Logging av all datatilgang med varsling",
			"Regelmessig tilgangsgjennomgang",
			"Strukturert offboarding-prosess",
			"Bakgrunnssjekk ved ansettelse",
		},
		Mitigations: []string{
			"UEBA", "Minste privilegium", "Logging", "Tilgangsgjennomgang", "Offboarding",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagPatientIdentifiable},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.0, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "medical_device",
		Category:         "Medisinsk utstyr",
		Name:             "Kompromittert medisinsk utstyr (IoMT)",
		Description:      "Angrep mot nettverkstilkoblet medisinsk utstyr",
		Vulnerability:    "Medisinsk utstyr med begrenset sikkerhetsfunksjonalitet, lang livssyklus, og sjelden oppdatering eksponert på nettverk.",
		Consequence:      "Utstyrssvikt kan påvirke pasientbehandling. Dataeksfiltrering fra enheter. Springbrett til videre angrep.",
		TechnicalDetails: "53% av IoMT-enheter har kjente sårbarheter. Infusjonspumper, MR-maskiner, pacemakere har vist sårbarheter. FDA-varsler om IoMT-sikkerhet øker.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Mange IoMT-enheter", "Flat nettverksstruktur", "Legacy-utstyr", "Manglende inventar",
		},
		ConsequenceFactors: []string{
			"Livsopprettholdende utstyr", "Pasientdata på enheten", "Mange pasienter påvirkes",
		},
		ExistingMeasures: []string{
			"Utstyrsinventar delvis på plass",
			"Vedlikeholdsavtaler",
			"Nettverksovervåking",
		},
		AdditionalMeasures: []string{
			"Dedikert IoMT-nettverk (VLAN-segmentering)",
			"Komplett IoMT-inventar med sårbarhetsinfo",
			"Sikkerhetskrav i anskaffelser",
			"Passiv nettverksovervåking (NAC)",
			"Leverandørkrav til sikkerhet og patching",
			"Risikovurdering før tilkobling",
		},
		Mitigations: []string{
			"Segmentering", "IoMT-inventar", "Sikkerhetskrav", "NAC", "Risikovurdering",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagHealthData, FlagPatientIdentifiable},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.1, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "backup_failure",
		Category:         "Kontinuitet",
		Name:             "Backup-svikt ved hendelse",
		Description:      "Backup er utilgjengelig, inkomplett, eller korrupt ved behov for gjenoppretting",
		Vulnerability:    "Backup på samme nettverk som produksjon, manglende testing, eller for lange intervaller gjør backup sårbar.",
		Consequence:      "Permanent datatap ved ransomware eller systemfeil. Langvarig nedetid. Kan true virksomhetens eksistens.",
		TechnicalDetails: "Ransomware målretter aktivt backup-systemer. 37% av gjenopprettingsforsøk feiler. RTO/RPO ofte ikke testet under reelle forhold.",
		CIA:              CIAImpact{Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Backup på samme nettverk", "Manglende testing", "Lange backup-intervaller", "Ingen immutable backup",
		},
		ConsequenceFactors: []string{
			"Kritisk system", "Mye data", "Lang akseptabel nedetid",
		},
		ExistingMeasures: []string{
			"Daglig backup kjører",
			"Backup til ekstern lokasjon",
			"Backup-monitorering",
		},
		AdditionalMeasures: []string{
			"3-2-1-1 backup-strategi (inkl. immutable)",
			"Offline/air-gapped backup",
			"Kvartalsvis gjenopprettingstesting",
			"Dokumentert RTO/RPO per system",
			"Ransomware-resistent backup-løsning",
			"Kryptert backup med separat nøkkelhåndtering",
		},
		Mitigations: []string{
			"3-2-1-1 backup", "Immutable backup", "Testing", "RTO/RPO", "Offline backup",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.0, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "api_security",
		Category:         "Applikasjonssikkerhet",
		Name:             "API-sårbarheter og misbruk",
		Description:      "Utnyttelse av usikre eller feilkonfigurerte API-er",
		Vulnerability:    "Manglende autentisering, autorisasjon, eller rate limiting på API-endepunkter. Eksponering av sensitive data.",
		Consequence:      "Massiv datahøsting, uautorisert tilgang til funksjoner, eller tjenestenekt.",
		TechnicalDetails: "OWASP API Security Top 10. Broken Object Level Authorization (BOLA) er vanligste sårbarhet. Helse-API-er (FHIR, HL7) krever spesiell sikring.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Mange API-er", "Manglende API-gateway", "Ingen rate limiting", "Legacy-API-er",
		},
		ConsequenceFactors: []string{
			"API-er eksponerer pasientdata", "Integrasjon med kritiske systemer",
		},
		ExistingMeasures: []string{
			"API-autentisering (API-nøkler)",
			"HTTPS påkrevd",
			"Grunnleggende logging",
		},
		AdditionalMeasures: []string{
			"API Gateway med autentisering og rate limiting",
			"OAuth 2.0/OIDC for autorisasjon",
			"API-spesifikk WAF-beskyttelse",
			"Regelmessig API-sikkerhetstesting",
			"API-inventar og dokumentasjon",
			"Versjonering og deprecation-policy",
		},
		Mitigations: []string{
			"API Gateway", "OAuth 2.0", "WAF", "API-testing", "Inventar",
		},
		RelevantFlags:      []Flag{FlagInternet, FlagHelsenett, FlagHealthData, FlagExtensiveIntegration},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.4, Helsenett: 1.2, Internal: 0.7},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "cloud_misconfiguration",
		Category:         "Skysikkerhet",
		Name:             "Feilkonfigurert skytjeneste",
		Description:      "Sensitiv data eksponert gjennom feilkonfigurerte skytjenester",
		Vulnerability:    "Åpne S3-buckets, feilkonfigurerte tilganger, eller manglende kryptering i skytjenester.",
		Consequence:      "Offentlig eksponering av sensitive data. Brudd på GDPR og Normen. Betydelig omdømmeskade.",
		TechnicalDetails: "Skyfeilkonfigurasjon er involvert i 15% av databrudd. Azure, AWS og GCP har komplekse tilgangsmodeller som ofte feilkonfigureres.",
		CIA:              CIAImpact{Confidentiality: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Mye skybruk", "Kompleks konfigurasjon", "Manglende sky-kompetanse", "Ingen CSPM",
		},
		ConsequenceFactors: []string{
			"Helseopplysninger i sky", "Mange tjenester", "Offentlig eksponert",
		},
		ExistingMeasures: []string{
			"Grunnleggende IAM-konfigurasjon",
			"Kryptering aktivert",
			"Noe logging",
		},
		AdditionalMeasures: []string{
			"Cloud Security Posture Management (CSPM)",
			"Infrastructure as Code med sikkerhetsskanning",
			"Minste privilegium IAM-policy",
			"Regelmessig konfigurasjonsgjennnomgang",
			"Cloud Access Security Broker (CASB)",
			"Automatisert compliance-sjekking",
		},
		Mitigations: []string{
			"CSPM", "IaC-sikkerhet", "IAM-review", "CASB", "Compliance-sjekk",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagInternet, FlagHighConfidentiality},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 0.8, Internal: 0.5},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "detection_gap",
		Category:         "Deteksjon",
		Name:             "Manglende logging og deteksjonsevne",
		Description:      "Sikkerhetshendelser oppdages ikke eller for sent",
		Vulnerability:    "Utilstrekkelig logging, ingen sentral logganalyse (SIEM), eller manglende varsling ved anomalier.",
		Consequence:      "Angripere opererer uoppdaget over lang tid. Større skadeomfang. Vanskelig etterforskning.",
		TechnicalDetails: "Gjennomsnittlig tid til oppdagelse (MTTD): 207 dager. Angrep oppdages ofte av eksterne parter. Log4j-lignende sårbarheter krever rask deteksjon.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Ingen SIEM/SOAR", "Begrenset logging", "Ingen 24/7 overvåking", "For mange varsler (alert fatigue)",
		},
		ConsequenceFactors: []string{
			"Kritiske systemer", "Sensitive data", "Regulatoriske krav til logging",
		},
		ExistingMeasures: []string{
			"Lokal logging på systemer",
			"Brannmurlogging",
			"Manuell gjennomgang ved hendelser",
		},
		AdditionalMeasures: []string{
			"Sentral SIEM-løsning med korrelering",
			"SOAR for automatisert respons",
			"24/7 SOC (intern eller managed)",
			"Use cases for helsespesifikke trusler",
			"Threat hunting-kapasitet",
			"Regelmessig logganalyse-review",
		},
		Mitigations: []string{
			"SIEM", "SOAR", "SOC", "Threat hunting", "Use cases",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagCriticalSystem, FlagCriticalInfrastructure},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.2, Helsenett: 1.1, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "physical_security",
		Category:         "Fysisk sikkerhet",
		Name:             "Fysisk tilgang til kritisk infrastruktur",
		Description:      "Uautorisert fysisk tilgang til serverrom, nettverksutstyr, eller klienter",
		Vulnerability:    "Mangelfull adgangskontroll, ingen logging av fysisk tilgang, eller usikrede enheter.",
		Consequence:      "Direkte tilgang til systemer omgår mange logiske kontroller. Datatyveri eller sabotasje.",
		TechnicalDetails: "USB Rubber Ducky, Raspberry Pi implants, eller direkte disktilgang kan kompromittere systemer raskt. Sosial manipulering for fysisk tilgang er effektivt.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Mange lokasjoner", "Besøkende med tilgang", "Manglende adgangskontroll",
		},
		ConsequenceFactors: []string{
			"Serverrom tilgjengelig", "Ukrypterte disker", "USB tillatt",
		},
		ExistingMeasures: []string{
			"Låste serverrom",
			"Besøksregistrering",
			"Adgangskort-system",
		},
		AdditionalMeasures: []string{
			"Logging av all fysisk tilgang til kritiske områder",
			"Video-overvåking med oppbevaring",
			"Disk-kryptering (BitLocker/FileVault)",
			"USB-port blokkering",
			"Besøkspolicy med eskortekrav",
			"Regelmessig fysisk sikkerhetsgjennomgang",
		},
		Mitigations: []string{
			"Adgangslogging", "Video", "Disk-kryptering", "USB-blokkering", "Besøkspolicy",
		},
		RelevantFlags:      []Flag{FlagCriticalInfrastructure, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 0.8, Helsenett: 1.0, Internal: 1.2},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "third_party_cloud",
		Category:         "Tredjeparts risiko",
		Name:             "Hendelse hos skyleverandør",
		Description:      "Sikkerhetshendelse eller nedetid hos tredjeparts skyleverandør",
		Vulnerability:    "Avhengighet av enkelt skyleverandør uten redundans eller exit-strategi.",
		Consequence:      "Utilgjengelighet av kritiske tjenester. Mulig dataeksponering ved leverandørbrudd.",
		TechnicalDetails: "Microsoft 365, Epic i sky, skybaserte lab-systemer. Store hendelser: Azure AD-nedetid, LastPass-brudd. Viktig med shared responsibility-forståelse.",
		CIA:              CIAImpact{Confidentiality: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Stor skyavhengighet", "Enkeltleverandør", "Kritiske tjenester i sky",
		},
		ConsequenceFactors: []string{
			"Ingen plan B", "Mye data hos leverandør", "Kritisk for drift",
		},
		ExistingMeasures: []string{
			"SLA-avtaler",
			"Leverandørovervåking",
			"Databehandleravtale",
		},
		AdditionalMeasures: []string{
			"Multi-cloud eller hybrid strategi for kritiske tjenester",
			"Regelmessig leverandørsikkerhetsreview",
			"Exit-strategi og dataportabilitet",
			"Lokal backup av skydata",
			"Hendelsesresponsplan for leverandørnedetid",
			"Shared responsibility-dokumentasjon",
		},
		Mitigations: []string{
			"Multi-cloud", "Exit-strategi", "Lokal backup", "Leverandør-review", "Hendelsesplan",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.1, Helsenett: 1.0, Internal: 0.8},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "epj_compromise",
		Category:         "Helsesystemer",
		Name:             "Kompromittert EPJ-system",
		Description:      "Elektronisk pasientjournal kompromitteres eller manipuleres",
		Vulnerability:    "EPJ-systemer med kompleks integrasjonsarkitektur, mange brukere, og lange livssykluser. Ofte basert på eldre teknologi.",
		Consequence:      "Feil pasientinformasjon kan føre til feilbehandling. Massiv datalekkasje av sensitive helseopplysninger. Total driftsstans.",
		TechnicalDetails: "EPJ-systemer (DIPS, MetaVision, Helseplattformen) er kritiske knutepunkter. Integrasjoner mot lab, radiologi, legemiddel. HL7/FHIR-grensesnitt må sikres.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Kompleks integrasjonsarkitektur", "Mange brukere", "Legacy-komponenter", "Eksponert mot Helsenett",
		},
		ConsequenceFactors: []string{
			"All pasientbehandling avhenger av EPJ", "Juridisk dokumentasjon", "Kritisk for pasientsikkerhet",
		},
		ExistingMeasures: []string{
			"Rollebasert tilgangsstyring",
			"Logging av all tilgang",
			"Redundant infrastruktur",
			"Databehandleravtale med leverandør",
		},
		AdditionalMeasures: []string{
			"Segmentering av EPJ-infrastruktur",
			"Applikasjonsspesifikk WAF",
			"Kontinuerlig sårbarhetsskanning",
			"Penetrasjonstesting årlig",
			"Anomalideteksjon på bruksmønster",
			"Dokumentert nedetidsprosedyre",
		},
		Mitigations: []string{
			"Segmentering", "WAF", "Sårbarhetsskanning", "Pen-test", "Anomalideteksjon", "Nedetidsprosedyre",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagCriticalSystem, FlagPatientIdentifiable},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.4, Helsenett: 1.2, Internal: 0.8},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "medication_system",
		Category:         "Helsesystemer",
		Name:             "Svikt i legemiddelsystem",
		Description:      "Kompromittering eller feil i systemer for legemiddelhåndtering",
		Vulnerability:    "Integrasjon mellom EPJ, apotek, og infusjonspumper. Kompleks logikk for dosering og interaksjonssjekk.",
		Consequence:      "Feil dosering kan være livstruende. Manglende interaksjonsvarsel. Feilmedisinering ved identitetsfeil.",
		TechnicalDetails: "FEST, eResept, kurveløsninger. Automatiske infusjonspumper styrt av nettverk. Barcode-verifisering ved administrering.",
		CIA:              CIAImpact{Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Kompleks systemintegrasjon", "Nettverkstilkoblet utstyr", "Mange manuelle prosesser",
		},
		ConsequenceFactors: []string{
			"Direkte pasientpåvirkning", "Livsfarlige feil mulig", "Regulatoriske konsekvenser",
		},
		ExistingMeasures: []string{
			"Dobbeltsjekk-rutiner",
			"Interaksjonsvarsel i system",
			"Logging av all ordinering",
		},
		AdditionalMeasures: []string{
			"Redundant interaksjonssjekk",
			"Segmentering av infusjonspumper",
			"Automatisert integritetssjekk",
			"Backup-prosedyrer for manuell drift",
			"Regelmessig testing av varsler",
			"Opplæring i fallback-prosedyrer",
		},
		Mitigations: []string{
			"Redundans", "Segmentering", "Integritetssjekk", "Backup-prosedyrer", "Testing",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagCriticalSystem},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.0, Helsenett: 1.1, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "lab_system",
		Category:         "Helsesystemer",
		Name:             "Kompromittert laboratoriesystem",
		Description:      "Angrep eller feil i laboratorieinformasjonssystem (LIS)",
		Vulnerability:    "LIS-systemer med integrasjon mot analyseinstrumenter, EPJ, og eksterne laboratorier. Ofte eldre systemer.",
		Consequence:      "Feil prøvesvar kan føre til feildiagnose. Forsinkede svar påvirker behandling. Datamanipulering kan gå uoppdaget.",
		TechnicalDetails: "Integrasjon via HL7/ASTM. Instrumenter med begrenset sikkerhet. Krav til sporbarhet og akkreditering (ISO 15189).",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Legacy-instrumenter", "Mange integrasjoner", "Begrenset sikkerhetsoppdatering",
		},
		ConsequenceFactors: []string{
			"Feildiagnose mulig", "Akkrediteringskrav", "Forsinkelser i behandling",
		},
		ExistingMeasures: []string{
			"Kvalitetskontroll av prøvesvar",
			"Autovalidering med regler",
			"Logging av endringer",
		},
		AdditionalMeasures: []string{
			"Segmentering av lab-nettverk",
			"Integritetsovervåking av prøvesvar",
			"Redundant kommunikasjon til EPJ",
			"Manuell backup-prosedyre",
			"Anomalideteksjon på svardata",
			"Regelmessig sikkerhetsgjennomgang",
		},
		Mitigations: []string{
			"Segmentering", "Integritetsovervåking", "Redundans", "Backup-prosedyre", "Anomalideteksjon",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagCriticalSystem},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.0, Helsenett: 1.1, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "imaging_system",
		Category:         "Helsesystemer",
		Name:             "Kompromittert bildediagnostikk (RIS/PACS)",
		Description:      "Angrep på radiologi-informasjonssystem eller bildearkiv",
		Vulnerability:    "PACS-systemer med store datamengder, DICOM-protokoll med kjente svakheter, og mange integrasjoner.",
		Consequence:      "Tap av bilder forsinker diagnose. Manipulerte bilder kan føre til feilbehandling. Stor datamengde attraktiv for utpressing.",
		TechnicalDetails: "DICOM-protokoll, ofte uten kryptering. Store lagringsvolumer. AI-integrasjon for bildediagnose. Teleradiologi-tilgang.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"DICOM-svakheter", "Store datamengder", "Ekstern tilgang for teleradiologi",
		},
		ConsequenceFactors: []string{
			"Forsinket diagnose", "Mange pasienter", "Kreftdiagnostikk kritisk",
		},
		ExistingMeasures: []string{
			"PACS-arkivering",
			"Tilgangsstyring",
			"Backup av bilder",
		},
		AdditionalMeasures: []string{
			"DICOM-kryptering (TLS)",
			"Segmentering av modaliteter",
			"Integritetssjekk på bilder",
			"Sikker teleradiologi-løsning",
			"Regelmessig testing av gjenoppretting",
			"Redundant arkivering",
		},
		Mitigations: []string{
			"DICOM TLS", "Segmentering", "Integritetssjekk", "Sikker fjernaksess", "Redundant arkiv",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagCriticalSystem, FlagPatientIdentifiable},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.1, Internal: 0.8},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "patient_identity",
		Category:         "Pasientsikkerhet",
		Name:             "Pasientidentitetsfeil",
		Description:      "Feil pasient kobles til feil data grunnet systemfeil eller manipulering",
		Vulnerability:    "Kompleks identitetshåndtering på tvers av systemer. Manuelle prosesser. Felles pasienter mellom virksomheter.",
		Consequence:      "Feil pasient får feil behandling. Journalsammenblanding. Alvorlige pasientskader mulig.",
		TechnicalDetails: "Personidentifikator (fødselsnummer) som nøkkel. Integrasjon mot Folkeregisteret. D-nummer og hjelpenummer-problematikk.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Mange integrasjoner", "Manuelle registreringer", "Delt data mellom virksomheter",
		},
		ConsequenceFactors: []string{
			"Direkte pasientskade mulig", "Juridisk ansvar", "Tillitsbrudd",
		},
		ExistingMeasures: []string{
			"Fødselsnummer-validering",
			"Dobbeltsjekk ved kritiske prosedyrer",
			"Fotoverifikasjon",
		},
		AdditionalMeasures: []string{
			"Automatisert identitetsmatch-varsel",
			"Biometrisk identifikasjon for kritiske prosedyrer",
			"Integritetssjekk på pasientkobling",
			"Logging av alle identitetsoppslag",
			"Regelmessig duplikatsjekk",
			"Opplæring i identifikasjonsprosedyrer",
		},
		Mitigations: []string{
			"Automatisk varsel", "Biometri", "Integritetssjekk", "Logging", "Duplikatsjekk",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagPatientIdentifiable, FlagCriticalSystem},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.0, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "gdpr_violation",
		Category:         "Compliance",
		Name:             "Brudd på personvernforordningen (GDPR)",
		Description:      "Behandling av personopplysninger i strid med GDPR/personopplysningsloven",
		Vulnerability:    "Manglende oversikt over databehandling. Utilstrekkelig samtykke. Feil rettslig grunnlag. Manglende DPIA.",
		Consequence:      "Bøter opptil 4% av omsetning eller 20M EUR. Omdømmeskade. Pålegg om stans. Erstatningskrav fra registrerte.",
		TechnicalDetails: "GDPR Art. 5-11 (prinsipper), Art. 12-23 (rettigheter), Art. 24-43 (ansvar). Schrems II for overføring til tredjeland.",
		CIA:              CIAImpact{Confidentiality: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Manglende oversikt", "Kompleks dataflyt", "Tredjelandsoverføring", "Manglende DPIA",
		},
		ConsequenceFactors: []string{
			"Mange registrerte", "Sensitive kategorier (helse)", "Tidligere påpekninger",
		},
		ExistingMeasures: []string{
			"Personvernerklæring",
			"Behandlingsprotokoll",
			"Databehandleravtaler",
		},
		AdditionalMeasures: []string{
			"Komplett behandlingsoversikt (Art. 30)",
			"DPIA for høyrisiko-behandling",
			"Automatisert innsynsløsning",
			"Privacy by Design i utvikling",
			"Regelmessig compliance-audit",
			"Personvernombud med ressurser",
		},
		Mitigations: []string{
			"Behandlingsoversikt", "DPIA", "Innsynsløsning", "Privacy by Design", "Compliance-audit",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagPatientIdentifiable},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.2, Helsenett: 1.0, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "normen_violation",
		Category:         "Compliance",
		Name:             "Brudd på Normen for helse-IKT",
		Description:      "Manglende etterlevelse av Norm for informasjonssikkerhet i helse- og omsorgssektoren",
		Vulnerability:    "Normen er bransjestandard med krav fra Helsedirektoratet. Tilsyn fra Helsetilsynet og Datatilsynet.",
		Consequence:      "Tilsynspålegg. Krav om utbedring. Mulig stans av tjenester. Omdømmeskade i sektoren.",
		TechnicalDetails: "Normen v7.0 (2025). Faktaark for spesifikke krav. Krav til logging, tilgangsstyring, kryptering, risikovurdering.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Manglende dokumentasjon", "Utdatert risikovurdering", "Manglende tilgangsgjennomgang",
		},
		ConsequenceFactors: []string{
			"Tilsynsvarsel mottatt", "Kritisk tjeneste", "Mange brukere",
		},
		ExistingMeasures: []string{
			"Sikkerhetspolicy på plass",
			"Årlig risikovurdering",
			"Tilgangsstyring implementert",
		},
		AdditionalMeasures: []string{
			"Gap-analyse mot Normen v7.0",
			"Dokumentert styringssystem",
			"Internrevisjon av sikkerhet",
			"Kontinuerlig compliance-monitorering",
			"Opplæringsprogram for ansatte",
			"Leverandøroppfølging mot Normen",
		},
		Mitigations: []string{
			"Gap-analyse", "Styringssystem", "Internrevisjon", "Compliance-monitorering", "Opplæring",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagNormenRequired},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.1, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "digital_security_law",
		Category:         "Compliance",
		Name:             "Brudd på Digitalsikkerhetsloven",
		Description:      "Manglende etterlevelse av Digitalsikkerhetsloven for samfunnsviktige tjenester",
		Vulnerability:    "Ny lov fra oktober 2025 med krav til sikkerhetsstyring, varsling, og tilsyn. Ingen overgangsperiode.",
		Consequence:      "Overtredelsesgebyr opptil 25G eller 4% av omsetning (maks 50M NOK). Pålegg fra tilsynsmyndighet.",
		TechnicalDetails: "Digitalsikkerhetsloven §§ 7-9. Digitalsikkerhetsforskriften §§ 7-13. Krav til sikkerhetsstyringssystem, risikovurdering, varsling.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Ny regulering", "Komplekse krav", "Kort implementeringstid", "Manglende ressurser",
		},
		ConsequenceFactors: []string{
			"Samfunnsviktig tjeneste", "Mange brukere", "Kritisk infrastruktur",
		},
		ExistingMeasures: []string{
			"Grunnleggende sikkerhetstiltak",
			"Hendelseshåndtering",
			"Beredskapsplan",
		},
		AdditionalMeasures: []string{
			"Sikkerhetsstyringssystem godkjent av ledelsen",
			"Årlig gjennomgang av styringssystem",
			"24/72/30-dagers varslingsprosedyre",
			"Dokumentert risikovurdering per § 7-8",
			"Tekniske tiltak per § 10",
			"Personellsikkerhet per § 12",
		},
		Mitigations: []string{
			"Styringssystem", "Varslingsprosedyre", "Risikovurdering", "Tekniske tiltak", "Personellsikkerhet",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagCriticalInfrastructure, FlagDigitalSecurityLaw},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.2, Helsenett: 1.1, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "network_breach",
		Category:         "Nettverkssikkerhet",
		Name:             "Nettverksinnbrudd og lateral bevegelse",
		Description:      "Angriper får tilgang til internt nettverk og beveger seg lateralt",
		Vulnerability:    "Flat nettverksstruktur, manglende segmentering, eller svak intern sikkerhet gjør lateral bevegelse enkelt.",
		Consequence:      "Angriper får tilgang til flere systemer. Eskalering til domenekontroller. Full kompromittering av infrastruktur.",
		TechnicalDetails: "Mimikatz, BloodHound, Cobalt Strike for AD-angrep. Pass-the-hash, Kerberoasting. Gjennomsnittlig 9 dager fra initial tilgang til full kompromittering.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Flat nettverk", "Legacy-protokoller (SMBv1, LLMNR)", "Manglende EDR", "Delte admin-passord",
		},
		ConsequenceFactors: []string{
			"AD-dominans", "Mange systemer", "Kritisk infrastruktur",
		},
		ExistingMeasures: []string{
			"Brannmur mellom soner",
			"Antivirus på klienter",
			"Domenekontrollere sikret",
		},
		AdditionalMeasures: []string{
			"Mikrosegmentering",
			"Privileged Access Workstation (PAW)",
			"LAPS for lokal admin",
			"Deaktiver legacy-protokoller",
			"EDR med lateral movement-deteksjon",
			"AD-herding etter Microsoft best practices",
		},
		Mitigations: []string{
			"Mikrosegmentering", "PAW", "LAPS", "Legacy-deaktivering", "EDR", "AD-herding",
		},
		RelevantFlags:      []Flag{FlagCriticalInfrastructure, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.1, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "dns_attack",
		Category:         "Nettverkssikkerhet",
		Name:             "DNS-angrep og manipulering",
		Description:      "Angrep mot DNS-infrastruktur eller DNS-basert dataeksfiltrering",
		Vulnerability:    "Intern DNS uten sikkerhet, manglende DNSSEC, eller tillatt DNS-trafikk ut.",
		Consequence:      "Omdirigering til falske tjenester. Dataeksfiltrering via DNS-tunneling. Phishing via falske domener.",
		TechnicalDetails: "DNS tunneling for C2 og eksfiltrering. Homoglyph-domener for phishing. DNS over HTTPS kan omgå sikkerhet.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Ingen DNS-filtrering", "Tillatt all utgående DNS", "Manglende DNSSEC",
		},
		ConsequenceFactors: []string{
			"Kritiske tjenester via DNS", "Ingen DNS-logging",
		},
		ExistingMeasures: []string{
			"Intern DNS-server",
			"Brannmur",
			"E-postfiltrering",
		},
		AdditionalMeasures: []string{
			"DNS-filtrering (Cisco Umbrella, Quad9)",
			"Blokkering av direkte DNS ut",
			"DNS-logging og analyse",
			"DNSSEC-validering",
			"DNS over HTTPS-policy",
			"Typosquatting-overvåking",
		},
		Mitigations: []string{
			"DNS-filtrering", "Utgående blokkering", "DNS-logging", "DNSSEC", "DoH-policy",
		},
		RelevantFlags:      []Flag{FlagInternet, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.0, Internal: 0.7},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "crypto_weakness",
		Category:         "Kryptografi",
		Name:             "Svak eller feil kryptering",
		Description:      "Bruk av utdaterte eller feilkonfigurerte krypteringsalgoritmer",
		Vulnerability:    "Legacy-systemer med gammel kryptering, feilkonfigurerte sertifikater, eller manglende kryptering.",
		Consequence:      "Sensitiv data kan dekrypteres. Man-in-the-middle mulig. Compliance-brudd (GDPR Art. 32).",
		TechnicalDetails: "SSL 3.0, TLS 1.0/1.1 sårbare. SHA-1 utfaset. RSA <2048 bit usikkert. Quantum-trusler mot RSA/ECC kommer.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true},
		BaseProbability:  2,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Legacy-systemer", "Manglende sertifikathåndtering", "Eldre protokoller tillatt",
		},
		ConsequenceFactors: []string{
			"Helseopplysninger", "Finansielle data", "Autentiseringsdata",
		},
		ExistingMeasures: []string{
			"HTTPS påkrevd",
			"Sertifikater fra CA",
			"TLS aktivert",
		},
		AdditionalMeasures: []string{
			"Minimum TLS 1.2, helst 1.3",
			"Sertifikatmonitorering og automatisk fornyelse",
			"Kryptoinventar og policy",
			"Deaktivering av svake cipher suites",
			"HSM for nøkkelhåndtering",
			"Post-quantum krypto-strategi",
		},
		Mitigations: []string{
			"TLS 1.3", "Sertifikatmonitorering", "Kryptopolitikk", "Cipher-hardening", "HSM",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagHighConfidentiality},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.4, Helsenett: 1.1, Internal: 0.8},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "container_escape",
		Category:         "Infrastruktur",
		Name:             "Container/VM-escape og hypervisor-angrep",
		Description:      "Angriper bryter ut av container eller VM til underliggende infrastruktur",
		Vulnerability:    "Feilkonfigurerte containere, sårbare images, eller hypervisor-sårbarheter.",
		Consequence:      "Tilgang til andre containere/VM-er. Kompromittering av hele plattformen. Multi-tenant risiko.",
		TechnicalDetails: "Container breakout (CVE-2019-5736). VM escape sjeldnere men alvorligere. Kubernetes RBAC-feil. Supply chain via images.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Kjører containere", "Delt infrastruktur", "Manglende image-skanning",
		},
		ConsequenceFactors: []string{
			"Multi-tenant", "Kritiske systemer på plattformen",
		},
		ExistingMeasures: []string{
			"Oppdatert container runtime",
			"Ressursbegrensninger",
			"Nettverkspolicy",
		},
		AdditionalMeasures: []string{
			"Container image-skanning (Trivy, Snyk)",
			"Runtime-sikkerhet (Falco)",
			"Pod Security Standards/Policies",
			"Least-privilege service accounts",
			"Network policies per namespace",
			"Regelmessig Kubernetes-sikkerhetsscan",
		},
		Mitigations: []string{
			"Image-skanning", "Runtime-sikkerhet", "Pod Security", "Least-privilege", "Network policies",
		},
		RelevantFlags:      []Flag{FlagCriticalInfrastructure},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.2, Helsenett: 1.0, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "power_failure",
		Category:         "Fysisk infrastruktur",
		Name:             "Strømbrudd og infrastruktursvikt",
		Description:      "Tap av strøm, kjøling, eller annen kritisk infrastruktur",
		Vulnerability:    "Avhengighet av strøm og kjøling uten tilstrekkelig redundans eller reserveløsninger.",
		Consequence:      "Systemnedetid. Datatap ved ukontrollert nedstenging. Utstyrsskade. Langvarig gjenoppretting.",
		TechnicalDetails: "UPS gir 15-30 min. Diesel-aggregat må starte på 10-15 sek. Kjølesvikt kan gi nedetid på timer. Energikriser øker risiko.",
		CIA:              CIAImpact{Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Enkelt strøminntak", "Gammel UPS", "Manglende aggregat-test",
		},
		ConsequenceFactors: []string{
			"Kritiske systemer", "Lang gjenopprettingstid", "Pasientbehandling påvirkes",
		},
		ExistingMeasures: []string{
			"UPS på kritiske systemer",
			"Diesel-aggregat",
			"Redundant kjøling",
		},
		AdditionalMeasures: []string{
			"Doble strøminntak fra ulike forsyninger",
			"Månedlig aggregat-test med last",
			"Kjøle-redundans N+1",
			"Automatisk failover av tjenester",
			"Dokumentert nedstenging-prioritering",
			"Varslingssystem for infrastruktur",
		},
		Mitigations: []string{
			"Dual-feed strøm", "Aggregat-testing", "N+1 kjøling", "Automatisk failover", "Nedstengingsprioritering",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagCriticalInfrastructure},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.0, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "incident_response_failure",
		Category:         "Beredskap",
		Name:             "Svikt i hendelseshåndtering",
		Description:      "Organisasjonen klarer ikke håndtere sikkerhetshendelse effektivt",
		Vulnerability:    "Manglende hendelsesresponsplan, utrent personell, eller manglende verktøy for respons.",
		Consequence:      "Hendelsen eskalerer. Lengre nedetid. Større datalekkasje. Høyere kostnader.",
		TechnicalDetails: "NIST Incident Response (IR) rammeverk. Mean Time To Respond (MTTR). Forensisk kapasitet. Kommunikasjonskrise.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Ingen IR-plan", "Utrent team", "Manglende øvelser", "Ingen 24/7 kapasitet",
		},
		ConsequenceFactors: []string{
			"Kritiske systemer", "Regulatoriske varlingskrav", "Omdømme",
		},
		ExistingMeasures: []string{
			"Grunnleggende varslingsliste",
			"IT-vaktordning",
			"Loggingskapasitet",
		},
		AdditionalMeasures: []string{
			"Dokumentert IR-plan med playbooks",
			"IR-team med definerte roller",
			"Årlige IR-øvelser (tabletop og teknisk)",
			"Retainer med IR-leverandør",
			"Forensisk verktøy og kompetanse",
			"Kommunikasjonsplan for krise",
		},
		Mitigations: []string{
			"IR-plan", "IR-team", "Øvelser", "Retainer", "Forensisk kapasitet", "Kommunikasjonsplan",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagHealthData, FlagCriticalInfrastructure},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.1, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 2},
	},
	{
		ID:               "single_point_failure",
		Category:         "Arkitektur",
		Name:             "Single Point of Failure",
		Description:      "Kritiske tjenester avhenger av enkeltkomponenter uten redundans",
		Vulnerability:    "Sentrale systemer, nettverkskomponenter, eller ekspertise uten backup eller redundans.",
		Consequence:      "Total nedetid ved svikt. Langvarig gjenoppretting. Avhengighet av enkeltpersoner.",
		TechnicalDetails: "Database-cluster, load balancer, autentiseringstjeneste, DNS. Nøkkelpersonavhengighet.",
		CIA:              CIAImpact{Availability: true},
		BaseProbability:  2,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Ikke-redundant arkitektur", "Budsjettbegrensninger", "Legacy-systemer",
		},
		ConsequenceFactors: []string{
			"Mange avhengige systemer", "Lang failover-tid", "Kritisk for drift",
		},
		ExistingMeasures: []string{
			"Noe redundans på nettverk",
			"Daglig backup",
			"Dokumentasjon",
		},
		AdditionalMeasures: []string{
			"SPOF-analyse av alle kritiske tjenester",
			"Høytilgjengelighetsarkitektur (HA) for kritiske komponenter",
			"Aktiv-aktiv eller aktiv-passiv failover",
			"Geografisk redundans for kritiske data",
			"Kompetanseredundans (flere kan systemene)",
			"Regelmessig failover-testing",
		},
		Mitigations: []string{
			"SPOF-analyse", "HA-arkitektur", "Failover", "Geo-redundans", "Kompetansespredning", "Testing",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagCriticalInfrastructure},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.0, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 2},
	},
	{
		ID:               "competence_gap",
		Category:         "Menneskelige faktorer",
		Name:             "Mangel på sikkerhetskompetanse",
		Description:      "Utilstrekkelig sikkerhetskompetanse i organisasjonen",
		Vulnerability:    "Få sikkerhetsressurser, manglende opplæring, eller utdatert kompetanse.",
		Consequence:      "Sårbarheter overses. Feilkonfigurasjoner. Treg respons på hendelser. Dårlige beslutninger.",
		TechnicalDetails: "Skills gap i cybersecurity. Konkurranse om talenter. Rask teknologiutvikling. Kompleksitet i moderne trusler.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Lite sikkerhetsteam", "Høy turnover", "Manglende budsett til kompetanse",
		},
		ConsequenceFactors: []string{
			"Kritiske systemer", "Kompleks infrastruktur", "Regulatoriske krav",
		},
		ExistingMeasures: []string{
			"IT-personell med noe sikkerhetsansvar",
			"Grunnleggende opplæring",
			"Ekstern bistand ved behov",
		},
		AdditionalMeasures: []string{
			"Dedikert sikkerhetspersonell",
			"Sertifiseringsprogram (CISSP, CISM, etc.)",
			"Regelmessig faglig oppdatering",
			"Managed Security Service Provider (MSSP)",
			"Security Champions i utviklingsteam",
			"Tabletop-øvelser for kompetansebygging",
		},
		Mitigations: []string{
			"Dedikerte ressurser", "Sertifisering", "Faglig oppdatering", "MSSP", "Security Champions",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagHealthData},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.1, Helsenett: 1.0, Internal: 1.0},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "shadow_it",
		Category:         "Menneskelige faktorer",
		Name:             "Shadow IT og uautoriserte systemer",
		Description:      "Bruk av IKT-løsninger utenfor IT-avdelingens kontroll",
		Vulnerability:    "Ansatte tar i bruk skytjenester, apper, eller systemer uten godkjenning. Data lagres ukontrollert.",
		Consequence:      "Sensitive data i usikrede løsninger. Compliance-brudd. Ingen backup eller sikkerhet.",
		TechnicalDetails: "Dropbox, Google Drive, WhatsApp for pasientdata. Egne Excel-løsninger. Uautoriserte SaaS-tjenester.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Tungvinte offisielle løsninger", "Manglende opplæring", "Svak policy-håndhevelse",
		},
		ConsequenceFactors: []string{
			"Helseopplysninger", "Mange brukere", "GDPR-krav",
		},
		ExistingMeasures: []string{
			"IT-policy",
			"Godkjenningsprosess for nye systemer",
			"Nettverksovervåking",
		},
		AdditionalMeasures: []string{
			"Cloud Access Security Broker (CASB)",
			"SaaS-inventory og kontroll",
			"Brukervennlige godkjente alternativer",
			"Regelmessig Shadow IT-scan",
			"Opplæring i datasikkerhet",
			"Tydelig policy med konsekvenser",
		},
		Mitigations: []string{
			"CASB", "SaaS-kontroll", "Gode alternativer", "Shadow IT-scan", "Opplæring",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagPatientIdentifiable},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.0, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "user_misconfiguration",
		Category:         "Menneskelige faktorer",
		Name:             "Feilkonfigurering og menneskelige feil",
		Description:      "Sikkerhetshendelser forårsaket av utilsiktede feil fra administratorer eller brukere",
		Vulnerability:    "Komplekse systemer, manglende prosedyrer, eller tidspress fører til feilkonfigurasjoner.",
		Consequence:      "Eksponering av data eller systemer. Nedetid. Sikkerhetshull introdusert.",
		TechnicalDetails: "Feilkonfigurert brannmur, åpne S3-buckets, feil i AD-grupper, publiserte secrets i kode.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  3,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Komplekse systemer", "Manglende 4-øyne prinsipp", "Manuell konfigurasjon",
		},
		ConsequenceFactors: []string{
			"Kritiske systemer", "Internett-eksponert",
		},
		ExistingMeasures: []string{
			"Endringsrutiner",
			"Dokumentasjon",
			"Testing før produksjon",
		},
		AdditionalMeasures: []string{
			"Infrastructure as Code (IaC) med review",
			"Automatisert konfigurasjonsskanning",
			"Peer review av kritiske endringer",
			"Automatiserte deployment-pipelines",
			"Drift-mot-baseline varsling",
			"Secret scanning i kode",
		},
		Mitigations: []string{
			"IaC", "Konfigurasjonsskanning", "Peer review", "CI/CD", "Baseline-varsling", "Secret scanning",
		},
		RelevantFlags:      []Flag{FlagCriticalSystem, FlagInternet},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.0, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 2, ConsequenceReduction: 1},
	},
	{
		ID:               "apt_attack",
		Category:         "Avanserte trusler",
		Name:             "Advanced Persistent Threat (APT)",
		Description:      "Sofistikert, langvarig angrep fra statlige aktører eller organisert kriminalitet",
		Vulnerability:    "Høyverdi-mål med sensitive data. Begrenset deteksjonskapasitet mot sofistikerte teknikker.",
		Consequence:      "Langvarig uoppdaget tilstedeværelse. Massiv dataeksfiltrering. Strategisk etterretning. Sabotasje mulig.",
		TechnicalDetails: "Zero-days, supply chain, spear phishing. Living-off-the-land teknikker. MITRE ATT&CK framework. Kjente grupper mot helse: Lazarus, APT41.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  1,
		BaseConsequence:  3,
		ProbabilityFactors: []string{
			"Høyverdi-data (forskning, helse)", "Nasjonal interesse", "Svak deteksjon",
		},
		ConsequenceFactors: []string{
			"Strategiske data", "Kritisk infrastruktur", "Nasjonal sikkerhet",
		},
		ExistingMeasures: []string{
			"Perimetersikkerhet",
			"Antivirus/EDR",
			"Logging",
		},
		AdditionalMeasures: []string{
			"Threat hunting-program",
			"MITRE ATT&CK-basert deteksjon",
			"Deception technology (honeypots)",
			"Network Traffic Analysis (NTA)",
			"Samarbeid med NSM/HelseCERT",
			"Red team/Purple team øvelser",
		},
		Mitigations: []string{
			"Threat hunting", "ATT&CK-deteksjon", "Deception", "NTA", "Myndighetsamarbeid", "Red team",
		},
		RelevantFlags:      []Flag{FlagCriticalInfrastructure, FlagHealthData, FlagSecurityLaw},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.1, Internal: 0.9},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
	{
		ID:               "ai_attack",
		Category:         "Avanserte trusler",
		Name:             "AI-forsterket cyberangrep",
		Description:      "Angrep som bruker kunstig intelligens for økt effektivitet",
		Vulnerability:    "Tradisjonelle sikkerhetstiltak kan omgås av AI-optimaliserte angrep. Deepfakes for sosial manipulering.",
		Consequence:      "Mer overbevisende phishing. Automatisert sårbarhetsutnyttelse. Adaptiv malware. Deepfake-svindel.",
		TechnicalDetails: "GPT-generert phishing, AI-polymorf malware, deepfake audio/video for CEO fraud, automatisert OSINT.",
		CIA:              CIAImpact{Confidentiality: true, Integrity: true, Availability: true},
		BaseProbability:  2,
		BaseConsequence:  2,
		ProbabilityFactors: []string{
			"Høyprofilert mål", "Tradisjonelle tiltak kun", "Manglende AI-sikkerhet",
		},
		ConsequenceFactors: []string{
			"Finansiell eksponering", "Omdømme", "Kritiske beslutninger",
		},
		ExistingMeasures: []string{
			"E-postfiltrering",
			"Sikkerhetsopplæring",
			"Verifikasjonsprosedyrer",
		},
		AdditionalMeasures: []string{
			"AI-basert e-postanalyse",
			"Deepfake-deteksjonsverktøy",
			"Out-of-band verifikasjon for kritiske handlinger",
			"AI Security awareness-opplæring",
			"Kontinuerlig oppdatering av deteksjon",
			"Samarbeid med sikkerhetsforskere",
		},
		Mitigations: []string{
			"AI-deteksjon", "Deepfake-verktøy", "Out-of-band verifisering", "AI-opplæring", "Oppdatert deteksjon",
		},
		RelevantFlags:      []Flag{FlagHealthData, FlagCriticalSystem},
		ExposureMultiplier: ExposureMultiplier{Internet: 1.3, Helsenett: 1.0, Internal: 0.8},
		MitigationEffect:   MitigationEffect{ProbabilityReduction: 1, ConsequenceReduction: 1},
	},
}
