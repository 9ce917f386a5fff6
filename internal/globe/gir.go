package globe

import "fmt"

// EntityData is one row of the group structure section of the GIR
// practice form. DirectParent is a soft reference to another entity's
// ID in the same collection.
type EntityData struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Jurisdiction string  `json:"jurisdiction"`
	EntityType   string  `json:"entity_type"`
	DirectParent string  `json:"direct_parent,omitempty"`
	OwnershipPct float64 `json:"ownership_pct"`
}

// JurisdictionCalcEntry is one jurisdiction's worth of computation
// inputs on the practice form. Unlike the standalone calculator these
// arrive as numbers: the practice form normalizes its grid before
// submitting.
type JurisdictionCalcEntry struct {
	Jurisdiction string `json:"jurisdiction"`

	FANI               float64 `json:"fani"`
	NetTaxes           float64 `json:"net_taxes"`
	ExcludedDividends  float64 `json:"excluded_dividends"`
	ExcludedEquity     float64 `json:"excluded_equity"`
	DisallowedExpenses float64 `json:"disallowed_expenses"`
	StockCompAdj       float64 `json:"stock_comp_adj"`
	OtherAdj           float64 `json:"other_adj"`
	CurrentTax         float64 `json:"current_tax"`
	DeferredTax        float64 `json:"deferred_tax"`
	UTPAdj             float64 `json:"utp_adj"`
	NonCoveredAdj      float64 `json:"non_covered_adj"`
	PayrollCosts       float64 `json:"payroll_costs"`
	TangibleAssets     float64 `json:"tangible_assets"`
	QDMTT              float64 `json:"qdmtt"`
}

// GIRInput is a full practice session: the entity structure plus the
// per-jurisdiction computation grid for one fiscal year.
type GIRInput struct {
	MNEName      string                  `json:"mne_name"`
	FiscalYear   string                  `json:"fiscal_year"`
	UPE          string                  `json:"upe,omitempty"`
	Entities     []EntityData            `json:"entities"`
	Calculations []JurisdictionCalcEntry `json:"calculations"`
}

// GIRJurisdictionResult is the per-jurisdiction derivation chain, one
// entry per computation row. Jurisdictions are fully independent:
// there is no group-level blending of income or taxes.
type GIRJurisdictionResult struct {
	Jurisdiction string `json:"jurisdiction"`

	GloBEIncome          float64 `json:"globe_income"`
	AdjustedCoveredTaxes float64 `json:"adjusted_covered_taxes"`
	SBIEPayroll          float64 `json:"sbie_payroll"`
	SBIEAssets           float64 `json:"sbie_assets"`
	TotalSBIE            float64 `json:"total_sbie"`
	ETR                  float64 `json:"etr"`
	TopUpTaxPct          float64 `json:"top_up_tax_pct"`
	ExcessProfit         float64 `json:"excess_profit"`
	GrossTopUp           float64 `json:"gross_top_up"`
	NetTopUp             float64 `json:"net_top_up"`

	Status ComplianceStatus `json:"status"`
}

// GIRResult is the outcome of a practice session computation.
//
// JurisdictionMatch is the documented cardinality check: it compares
// the count of distinct structure jurisdictions against the number of
// computation rows, and can therefore pass while the actual sets
// differ. MissingJurisdictions carries the real set difference so the
// caller can prompt for the rows that are absent; it is advisory and
// never blocks the jurisdictions that are present.
type GIRResult struct {
	MNEName    string `json:"mne_name"`
	FiscalYear int    `json:"fiscal_year"`

	Jurisdictions        []GIRJurisdictionResult `json:"jurisdictions"`
	MissingJurisdictions []string                `json:"missing_jurisdictions"`
	JurisdictionMatch    bool                    `json:"jurisdiction_match"`
	StructureWarnings    []FieldError            `json:"structure_warnings,omitempty"`
}

// ValidateGIR checks the session-level required fields and the
// structural soundness of the entity graph. Structure problems
// surface as warnings on the result as well; only the missing
// required fields block computation.
func ValidateGIR(in GIRInput) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "mne_name", in.MNEName, "MNE group name is required")
	errs = requireField(errs, "fiscal_year", in.FiscalYear, "Fiscal year is required")
	return errs
}

// ComputeGIR applies the per-jurisdiction GloBE formula to every
// computation row independently and cross-checks the entity structure
// against the computation grid.
func ComputeGIR(in GIRInput) GIRResult {
	year := ParseFiscalYear(in.FiscalYear)
	rates := SBIERates(year)

	results := make([]GIRJurisdictionResult, 0, len(in.Calculations))
	for _, entry := range in.Calculations {
		core := computeCore(coreInputs{
			fani:               entry.FANI,
			netTaxes:           entry.NetTaxes,
			excludedDividends:  entry.ExcludedDividends,
			excludedEquity:     entry.ExcludedEquity,
			disallowedExpenses: entry.DisallowedExpenses,
			stockCompAdj:       entry.StockCompAdj,
			otherAdj:           entry.OtherAdj,
			currentTax:         entry.CurrentTax,
			deferredTax:        entry.DeferredTax,
			utpAdj:             entry.UTPAdj,
			nonCoveredAdj:      entry.NonCoveredAdj,
			payrollCosts:       entry.PayrollCosts,
			tangibleAssets:     entry.TangibleAssets,
			qdmtt:              entry.QDMTT,
		}, rates)

		results = append(results, GIRJurisdictionResult{
			Jurisdiction:         entry.Jurisdiction,
			GloBEIncome:          core.globeIncome,
			AdjustedCoveredTaxes: core.adjustedCoveredTaxes,
			SBIEPayroll:          core.sbiePayroll,
			SBIEAssets:           core.sbieAssets,
			TotalSBIE:            core.totalSBIE,
			ETR:                  core.etrPct,
			TopUpTaxPct:          core.topUpPct,
			ExcessProfit:         core.excessProfit,
			GrossTopUp:           core.grossTopUp,
			NetTopUp:             core.netTopUp,
			Status:               classify(core.etrPctRaw),
		})
	}

	needed := distinctStructureJurisdictions(in.Entities)

	computed := make(map[string]bool, len(in.Calculations))
	for _, entry := range in.Calculations {
		computed[entry.Jurisdiction] = true
	}

	missing := make([]string, 0)
	for _, code := range needed {
		if !computed[code] {
			missing = append(missing, code)
		}
	}

	return GIRResult{
		MNEName:              in.MNEName,
		FiscalYear:           year,
		Jurisdictions:        results,
		MissingJurisdictions: missing,
		JurisdictionMatch:    len(needed) <= len(in.Calculations),
		StructureWarnings:    CheckEntityStructure(in.Entities),
	}
}

// distinctStructureJurisdictions returns the jurisdiction codes
// referenced by the entity structure, deduplicated in first-appearance
// order.
func distinctStructureJurisdictions(entities []EntityData) []string {
	seen := make(map[string]bool, len(entities))
	codes := make([]string, 0, len(entities))
	for _, e := range entities {
		if e.Jurisdiction == "" || seen[e.Jurisdiction] {
			continue
		}
		seen[e.Jurisdiction] = true
		codes = append(codes, e.Jurisdiction)
	}
	return codes
}

// CheckEntityStructure inspects the ownership graph for dangling
// parent references and ownership cycles. Findings are advisory:
// the per-jurisdiction computation does not depend on the graph, so a
// broken structure warns but never blocks.
func CheckEntityStructure(entities []EntityData) []FieldError {
	byID := make(map[string]EntityData, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
	}

	var warnings []FieldError
	inCycle := make(map[string]bool)

	for _, e := range entities {
		if e.DirectParent == "" {
			continue
		}

		if _, ok := byID[e.DirectParent]; !ok {
			warnings = append(warnings, FieldError{
				Field:   "entities." + e.ID + ".direct_parent",
				Message: fmt.Sprintf("Entity %q references unknown parent %q", e.Name, e.DirectParent),
			})
			continue
		}

		// Walk the parent chain; revisiting the start entity means a cycle.
		visited := map[string]bool{e.ID: true}
		current := e.DirectParent
		for current != "" {
			if visited[current] {
				if !inCycle[e.ID] {
					inCycle[e.ID] = true
					warnings = append(warnings, FieldError{
						Field:   "entities." + e.ID + ".direct_parent",
						Message: fmt.Sprintf("Entity %q is part of an ownership cycle", e.Name),
					})
				}
				break
			}
			visited[current] = true
			parent, ok := byID[current]
			if !ok {
				break
			}
			current = parent.DirectParent
		}
	}

	return warnings
}
