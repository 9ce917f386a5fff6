package globe

// JurisdictionInfo is static reference data about a Pillar Two
// jurisdiction: where the GloBE Information Return is filed and any
// practical notes surfaced alongside the calculators.
type JurisdictionInfo struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	FilingAuthority string   `json:"filing_authority"`
	FilingPortal    string   `json:"filing_portal"`
	Notes           []string `json:"notes"`
}

// jurisdictionList is ordered for display; the map below indexes it by
// code for lookups.
var jurisdictionList = []JurisdictionInfo{
	{
		Code:            "IE",
		Name:            "Ireland",
		FilingAuthority: "Revenue Commissioners",
		FilingPortal:    "ROS (Revenue Online Service)",
		Notes: []string{
			"QDMTT, IIR and UTPR in effect from fiscal years beginning on or after 31 December 2023.",
			"GIR filed through ROS; registration required before first filing.",
		},
	},
	{
		Code:            "DE",
		Name:            "Germany",
		FilingAuthority: "Bundeszentralamt für Steuern (BZSt)",
		FilingPortal:    "BZSt Online Portal",
		Notes: []string{
			"Mindeststeuergesetz implements the GloBE rules including a domestic minimum tax.",
			"Group head files a single Mindeststeuerbericht for the German minimum tax group.",
		},
	},
	{
		Code:            "NL",
		Name:            "Netherlands",
		FilingAuthority: "Belastingdienst",
		FilingPortal:    "Mijn Belastingdienst Zakelijk",
		Notes: []string{
			"Wet minimumbelasting 2024 covers QDMTT, IIR and UTPR.",
			"Dutch QDMTT follows local financial accounting standards where available.",
		},
	},
	{
		Code:            "LU",
		Name:            "Luxembourg",
		FilingAuthority: "Administration des contributions directes",
		FilingPortal:    "MyGuichet.lu",
		Notes: []string{
			"GIR and notifications filed electronically via MyGuichet.",
		},
	},
	{
		Code:            "FR",
		Name:            "France",
		FilingAuthority: "Direction générale des Finances publiques",
		FilingPortal:    "impots.gouv.fr (professional space)",
		Notes: []string{
			"Pillar Two enacted in the Finance Act for 2024.",
		},
	},
	{
		Code:            "GB",
		Name:            "United Kingdom",
		FilingAuthority: "HM Revenue & Customs",
		FilingPortal:    "HMRC Pillar 2 online service",
		Notes: []string{
			"Multinational Top-up Tax and Domestic Top-up Tax apply from 31 December 2023.",
			"Groups must register with HMRC within six months of the end of the first in-scope period.",
		},
	},
	{
		Code:            "US",
		Name:            "United States",
		FilingAuthority: "Internal Revenue Service",
		FilingPortal:    "IRS e-file",
		Notes: []string{
			"No GloBE legislation enacted; US groups remain in scope abroad through foreign IIR and UTPR.",
			"GILTI is not a qualified IIR for GloBE purposes.",
		},
	},
	{
		Code:            "CH",
		Name:            "Switzerland",
		FilingAuthority: "Eidgenössische Steuerverwaltung (ESTV)",
		FilingPortal:    "OMTax portal",
		Notes: []string{
			"QDMTT in force from 2024; IIR from 2025.",
			"One Swiss constituent entity files on behalf of the whole group.",
		},
	},
	{
		Code:            "SG",
		Name:            "Singapore",
		FilingAuthority: "Inland Revenue Authority of Singapore",
		FilingPortal:    "myTax Portal",
		Notes: []string{
			"Domestic Top-up Tax and IIR apply from fiscal years starting on or after 1 January 2025.",
		},
	},
	{
		Code:            "JP",
		Name:            "Japan",
		FilingAuthority: "National Tax Agency",
		FilingPortal:    "e-Tax",
		Notes: []string{
			"IIR applies from fiscal years beginning on or after 1 April 2024.",
		},
	},
}

var jurisdictionsByCode = func() map[string]JurisdictionInfo {
	m := make(map[string]JurisdictionInfo, len(jurisdictionList))
	for _, j := range jurisdictionList {
		m[j.Code] = j
	}
	return m
}()

// Jurisdictions returns the jurisdiction reference table in display
// order.
func Jurisdictions() []JurisdictionInfo {
	out := make([]JurisdictionInfo, len(jurisdictionList))
	copy(out, jurisdictionList)
	return out
}

// JurisdictionByCode looks up a jurisdiction by its ISO code.
func JurisdictionByCode(code string) (JurisdictionInfo, bool) {
	j, ok := jurisdictionsByCode[code]
	return j, ok
}
