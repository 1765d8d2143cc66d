package catalog

// Default returns the built-in BHV360 module catalog. The data is static and
// hand-maintained; defaultModules is validated by New, so a mistake here fails
// at startup rather than corrupting downstream pricing.
func Default() *Catalog {
	c, err := New(defaultModules())
	if err != nil {
		panic(err)
	}
	return c
}

//nolint:funlen // static catalog data
func defaultModules() []Module {
	return []Module{
		{
			ID:          "bhv-plotkaart",
			Name:        "BHV Plotkaart",
			Description: "Interactieve plattegronden met BHV-voorzieningen, vluchtroutes en verzamelplaatsen.",
			Category:    CategoryCore,
			Tier:        TierStarter,
			Status:      StatusActive,
			Core:        true,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing:     Pricing{Model: PricingFixed, BasePrice: 19},
			Features:    []string{"Interactieve plattegrond", "Voorzieningen beheer", "Vluchtroutes", "PDF export"},
			Rating:      4.8,
			Popularity:  96,
			Customers:   412,
		},
		{
			ID:          "ontruimingsplan",
			Name:        "Ontruimingsplan",
			Description: "Digitale ontruimingsplannen conform NEN 8112, gekoppeld aan de plotkaart.",
			Category:    CategoryCore,
			Tier:        TierStarter,
			Status:      StatusActive,
			Core:        true,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing:     Pricing{Model: PricingFixed, BasePrice: 29},
			Features:    []string{"NEN 8112 sjablonen", "Versiebeheer", "Oefening planning"},
			Rating:      4.6,
			Popularity:  88,
			Customers:   387,
			Dependencies: []string{
				"bhv-plotkaart",
			},
		},
		{
			ID:          "incident-management",
			Name:        "Incident Management",
			Description: "Registratie en afhandeling van incidenten met escalatie en opvolging per locatie.",
			Category:    CategoryPremium,
			Tier:        TierProfessional,
			Status:      StatusActive,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:       PricingHybrid,
				BasePrice:   49,
				PerUser:     2.5,
				PerBuilding: 10,
				FreeTrial:   true,
				TrialDays:   30,
			},
			Features:     []string{"Incident registratie", "Escalatie workflows", "Opvolgacties", "Tijdlijn"},
			Rating:       4.7,
			Popularity:   92,
			Customers:    298,
			Dependencies: []string{"bhv-plotkaart"},
		},
		{
			ID:          "nfc-tags",
			Name:        "NFC Tag Beheer",
			Description: "Beheer van NFC-tags voor controlerondes langs blusmiddelen, AED's en nooduitgangen.",
			Category:    CategoryPremium,
			Tier:        TierProfessional,
			Status:      StatusActive,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:       PricingHybrid,
				BasePrice:   39,
				PerBuilding: 15,
				SetupFee:    95,
			},
			Features:     []string{"Tag registratie", "Controlerondes", "Scan historie", "Afwijkingen rapportage"},
			Rating:       4.4,
			Popularity:   74,
			Customers:    186,
			Dependencies: []string{"bhv-plotkaart"},
		},
		{
			ID:          "aanwezigheid",
			Name:        "Aanwezigheidsregistratie",
			Description: "In- en uitchecken van medewerkers, bezoekers en contractors per gebouw.",
			Category:    CategoryPremium,
			Tier:        TierProfessional,
			Status:      StatusActive,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:       PricingHybrid,
				BasePrice:   59,
				PerUser:     1.5,
				PerBuilding: 12.5,
				FreeTrial:   true,
				TrialDays:   14,
			},
			Features:     []string{"Check-in/check-out", "Contractor beheer", "Ontruimingslijst", "Kiosk modus"},
			Rating:       4.5,
			Popularity:   81,
			Customers:    154,
			Dependencies: []string{"nfc-tags"},
		},
		{
			ID:          "notificaties",
			Name:        "Notificatie Centrum",
			Description: "Broadcast van alarmen en mededelingen naar BHV'ers via push, SMS en e-mail.",
			Category:    CategoryPremium,
			Tier:        TierProfessional,
			Status:      StatusActive,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:     PricingFixed,
				BasePrice: 25,
				FreeTrial: true,
				TrialDays: 14,
			},
			Features:   []string{"Push notificaties", "SMS alarmering", "Groepen en rollen", "Leesbevestiging"},
			Rating:     4.3,
			Popularity: 79,
			Customers:  231,
		},
		{
			ID:          "competentie-tracker",
			Name:        "Competentie Tracker",
			Description: "Volgen van BHV-certificeringen, herhalingstrainingen en vaardigheidstoetsen.",
			Category:    CategoryPremium,
			Tier:        TierProfessional,
			Status:      StatusBeta,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:     PricingHybrid,
				BasePrice: 45,
				PerUser:   3,
			},
			Features:   []string{"Certificaat beheer", "Verloopbewaking", "Toets resultaten", "Trainingskalender"},
			Rating:     4.1,
			Popularity: 62,
			Customers:  97,
		},
		{
			ID:          "bezoekersregistratie",
			Name:        "Bezoekersregistratie",
			Description: "Digitale receptie met aanmelding, badges en gastheer-notificatie.",
			Category:    CategoryPremium,
			Tier:        TierProfessional,
			Status:      StatusBeta,
			Enabled:     true,
			Visible:     true,
			Implemented: false,
			Pricing: Pricing{
				Model:       PricingHybrid,
				BasePrice:   35,
				PerBuilding: 20,
			},
			Features:     []string{"Zelfaanmelding", "Badge printen", "Gastheer notificatie"},
			Rating:       3.9,
			Popularity:   48,
			Customers:    41,
			Dependencies: []string{"aanwezigheid"},
		},
		{
			ID:          "rapportage-analytics",
			Name:        "Rapportage & Analytics",
			Description: "Dashboards en periodieke rapportages over incidenten, rondes en paraatheid.",
			Category:    CategoryEnterprise,
			Tier:        TierEnterprise,
			Status:      StatusActive,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:       PricingHybrid,
				BasePrice:   89,
				PerUser:     0.5,
				PerBuilding: 25,
				SetupFee:    250,
			},
			Features:     []string{"KPI dashboards", "Geplande rapportages", "Export naar Excel", "Trend analyse"},
			Rating:       4.6,
			Popularity:   70,
			Customers:    88,
			Dependencies: []string{"incident-management"},
		},
		{
			ID:          "white-label",
			Name:        "White Label",
			Description: "Eigen huisstijl, domein en branding voor partners en grote organisaties.",
			Category:    CategoryEnterprise,
			Tier:        TierEnterprise,
			Status:      StatusActive,
			Enabled:     true,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:     PricingFixed,
				BasePrice: 199,
				SetupFee:  500,
			},
			Features:   []string{"Eigen logo en kleuren", "Eigen domein", "Partner portaal"},
			Rating:     4.2,
			Popularity: 35,
			Customers:  19,
		},
		{
			ID:          "api-toegang",
			Name:        "API Toegang",
			Description: "REST API en webhooks voor koppelingen met HR-, BMS- en toegangssystemen.",
			Category:    CategoryEnterprise,
			Tier:        TierEnterprise,
			Status:      StatusBeta,
			Enabled:     true,
			Visible:     true,
			Implemented: false,
			Pricing: Pricing{
				Model:     PricingFixed,
				BasePrice: 79,
			},
			Features:   []string{"REST API", "Webhooks", "API sleutels", "Rate limiting"},
			Rating:     4.0,
			Popularity: 44,
			Customers:  27,
		},
		{
			ID:          "sms-alarmering",
			Name:        "SMS Alarmering (klassiek)",
			Description: "Losse SMS-alarmering uit de eerste productgeneratie, vervangen door het Notificatie Centrum.",
			Category:    CategoryPremium,
			Tier:        TierStarter,
			Status:      StatusDeprecated,
			Enabled:     false,
			Visible:     true,
			Implemented: true,
			Pricing: Pricing{
				Model:     PricingFixed,
				BasePrice: 15,
			},
			Features:   []string{"SMS alarmering"},
			Rating:     3.2,
			Popularity: 12,
			Customers:  64,
		},
	}
}
