package catalog

// ClassificationQuestions is the ordered questionnaire that determines the
// classification of a system. Labels and descriptions are the Norwegian
// wording shown to the user.
var ClassificationQuestions = []Question{
	{
		ID:          "data_type",
		Question:    "Hvilke typer data behandler systemet?",
		Description: "Velg alle datatyper som gjelder",
		MultiSelect: true,
		Options: []Option{
			{
				ID:          "public",
				Label:       "Offentlig tilgjengelig informasjon",
				Description: "Informasjon som allerede er offentlig eller ment for offentligheten",
				Points:      0,
			},
			{
				ID:          "internal",
				Label:       "Intern informasjon",
				Description: "Teknisk dokumentasjon, interne prosedyrer, ikke-sensitiv driftsinformasjon",
				Points:      1,
			},
			{
				ID:          "personal",
				Label:       "Alminnelige personopplysninger",
				Description: "Navn, kontaktinfo, ansattdata (ikke helserelatert)",
				Points:      2,
			},
			{
				ID:          "health",
				Label:       "Helseopplysninger",
				Description: "Pasientjournal, diagnoser, behandling, resepter, labsvar",
				Points:      3,
				Flags:       []Flag{FlagHealthData},
			},
			{
				ID:          "classified",
				Label:       "Skjermingsverdig informasjon",
				Description: "Informasjon underlagt Sikkerhetsloven (nasjonal sikkerhet)",
				Points:      4,
				Flags:       []Flag{FlagClassified},
			},
		},
	},
	{
		ID:          "patient_data",
		Question:    "Inneholder systemet pasientidentifiserbare opplysninger?",
		Description: "Kan enkeltpasienter identifiseres direkte eller indirekte?",
		Options: []Option{
			{
				ID:          "no",
				Label:       "Nei",
				Description: "Ingen kobling til enkeltpasienter",
				Points:      0,
			},
			{
				ID:          "anonymized",
				Label:       "Anonymiserte data",
				Description: "Data som ikke kan tilbakeføres til enkeltpersoner",
				Points:      0,
			},
			{
				ID:          "pseudonymized",
				Label:       "Pseudonymiserte data",
				Description: "Kan tilbakeføres med nøkkel/kodeliste",
				Points:      2,
			},
			{
				ID:          "yes",
				Label:       "Ja, direkte identifiserbare",
				Description: "Navn, fødselsnummer, eller annen direkte identifikasjon",
				Points:      3,
				Flags:       []Flag{FlagPatientIdentifiable},
			},
		},
	},
	{
		ID:          "infrastructure_impact",
		Question:    "Hva er konsekvensen hvis systemet blir utilgjengelig?",
		Description: "Vurder påvirkning på pasientsikkerhet og drift",
		Options: []Option{
			{
				ID:          "minimal",
				Label:       "Minimal påvirkning",
				Description: "Kan enkelt håndteres med manuelle rutiner",
				Points:      0,
			},
			{
				ID:          "moderate",
				Label:       "Moderat påvirkning",
				Description: "Forsinkelser i drift, men ikke kritisk",
				Points:      1,
			},
			{
				ID:          "significant",
				Label:       "Betydelig påvirkning",
				Description: "Vesentlig redusert kapasitet, potensielt forsinket behandling",
				Points:      2,
			},
			{
				ID:          "critical",
				Label:       "Kritisk påvirkning",
				Description: "Direkte fare for pasientsikkerhet eller liv",
				Points:      3,
				Flags:       []Flag{FlagCriticalSystem},
			},
		},
	},
	{
		ID:          "confidentiality_impact",
		Question:    "Hva er konsekvensen hvis informasjonen kommer på avveie?",
		Description: "Vurder skadepotensialet ved uautorisert tilgang",
		Options: []Option{
			{
				ID:          "minimal",
				Label:       "Minimal skade",
				Description: "Informasjonen er lite sensitiv",
				Points:      0,
			},
			{
				ID:          "moderate",
				Label:       "Moderat skade",
				Description: "Kan gi innsikt i infrastruktur eller interne prosesser",
				Points:      1,
			},
			{
				ID:          "significant",
				Label:       "Betydelig skade",
				Description: "Personvern krenkes, omdømmeskade, regulatoriske brudd",
				Points:      2,
			},
			{
				ID:          "severe",
				Label:       "Alvorlig skade",
				Description: "Stor skade for enkeltpersoner eller samfunnet",
				Points:      3,
				Flags:       []Flag{FlagHighConfidentiality},
			},
			{
				ID:          "national",
				Label:       "Skade på nasjonale interesser",
				Description: "Kan skade Norges sikkerhet eller vitale interesser",
				Points:      4,
				Flags:       []Flag{FlagNationalSecurity},
			},
		},
	},
	{
		ID:          "integration",
		Question:    "Hvordan er systemet integrert med andre systemer?",
		Description: "Vurder systemets rolle i den større infrastrukturen",
		Options: []Option{
			{
				ID:          "standalone",
				Label:       "Frittstående system",
				Description: "Ingen eller minimal integrasjon med andre systemer",
				Points:      0,
			},
			{
				ID:          "limited",
				Label:       "Begrenset integrasjon",
				Description: "Integrasjon med noen interne systemer",
				Points:      1,
			},
			{
				ID:          "extensive",
				Label:       "Omfattende integrasjon",
				Description: "Integrert med mange systemer, sentral komponent",
				Points:      2,
			},
			{
				ID:          "critical_hub",
				Label:       "Kritisk knutepunkt",
				Description: "Sentral hub som mange andre systemer er avhengige av",
				Points:      3,
				Flags:       []Flag{FlagCriticalInfrastructure},
			},
		},
	},
	{
		ID:          "user_base",
		Question:    "Hvem har tilgang til systemet?",
		Description: "Velg alle brukergrupper som har tilgang",
		MultiSelect: true,
		Options: []Option{
			{
				ID:          "internal_limited",
				Label:       "Begrenset intern gruppe",
				Description: "Kun et fåtall navngitte medarbeidere",
				Points:      0,
			},
			{
				ID:          "internal_broad",
				Label:       "Bred intern tilgang",
				Description: "Mange ansatte i organisasjonen",
				Points:      1,
			},
			{
				ID:          "external_partners",
				Label:       "Eksterne samarbeidspartnere",
				Description: "Tilgang for partnere, leverandører eller andre helseaktører",
				Points:      2,
			},
			{
				ID:          "patients",
				Label:       "Pasienter/innbyggere",
				Description: "Publikumstjeneste med pålogging",
				Points:      2,
				Flags:       []Flag{FlagPublicFacing},
			},
			{
				ID:          "public",
				Label:       "Åpen for alle",
				Description: "Offentlig tilgjengelig uten pålogging",
				Points:      1,
			},
		},
	},
	{
		ID:          "regulatory",
		Question:    "Er systemet underlagt spesielle regulatoriske krav som dere vet om?",
		Description: "Velg alle regelverk som gjelder for systemet",
		MultiSelect: true,
		Options: []Option{
			{
				ID:          "none",
				Label:       "Ingen spesielle krav vi kjenner til",
				Description: "Standard IKT-sikkerhetskrav",
				Points:      0,
			},
			{
				ID:          "gdpr",
				Label:       "GDPR/Personopplysningsloven",
				Description: "Behandler personopplysninger",
				Points:      2,
			},
			{
				ID:          "normen",
				Label:       "Normen for helsesektoren",
				Description: "Behandler helseopplysninger",
				Points:      3,
				Flags:       []Flag{FlagNormenRequired},
			},
			{
				ID:          "digitalsikkerhetsloven",
				Label:       "Digitalsikkerhetsloven",
				Description: "Samfunnsviktig tjeneste i helsesektoren (gjeldende fra okt. 2025)",
				Points:      3,
				Flags:       []Flag{FlagDigitalSecurityLaw},
			},
			{
				ID:          "security_law",
				Label:       "Sikkerhetsloven",
				Description: "Skjermingsverdig informasjon eller objekt",
				Points:      4,
				Flags:       []Flag{FlagSecurityLaw},
			},
		},
	},
}

// ExposureQuestions covers network reachability. Scored separately from the
// classification questions; see the exposure resolver.
var ExposureQuestions = []Question{
	{
		ID:          "network_exposure",
		Question:    "Hvordan er systemet tilgjengelig nettverksmessig?",
		Description: "Velg alle tilgangsmetoder som gjelder",
		MultiSelect: true,
		Options: []Option{
			{
				ID:          "internal_only",
				Label:       "Kun internt nettverk",
				Description: "Kun tilgjengelig fra organisasjonens lokale nettverk",
				Points:      0,
			},
			{
				ID:          "vpn",
				Label:       "Via VPN",
				Description: "Tilgjengelig eksternt, men kun via VPN",
				Points:      1,
			},
			{
				ID:          "helsenett",
				Label:       "Helsenettet",
				Description: "Eksponert på Norsk Helsenett",
				Points:      2,
				Flags:       []Flag{FlagHelsenett},
			},
			{
				ID:          "internet",
				Label:       "Internett",
				Description: "Direkte tilgjengelig fra internett",
				Points:      3,
				Flags:       []Flag{FlagInternet},
			},
		},
	},
}
