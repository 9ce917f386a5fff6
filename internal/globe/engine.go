package globe

import "math"

// ComplianceStatus classifies a jurisdiction's effective tax rate
// against the GloBE minimum rate.
type ComplianceStatus string

const (
	// StatusLowTaxed means the ETR is below the 15% minimum rate and
	// top-up tax arises.
	StatusLowTaxed ComplianceStatus = "LOW_TAXED"
	// StatusWarning means the ETR clears the minimum rate by less than
	// half a point, close enough to warrant review.
	StatusWarning ComplianceStatus = "WARNING"
	// StatusCompliant means the ETR comfortably clears the minimum
	// rate.
	StatusCompliant ComplianceStatus = "COMPLIANT"
)

// GloBEInput is one jurisdiction/period of raw form fields. Every
// numeric quantity arrives as a string because the UI binds text
// inputs directly; missing or malformed fields coerce to zero via
// ParseNumeric.
type GloBEInput struct {
	Jurisdiction string `json:"jurisdiction"`
	FiscalYear   string `json:"fiscal_year"`
	Currency     string `json:"currency"`

	// GloBE income adjustments (book income to GloBE income).
	FANI               string `json:"fani"`
	NetTaxes           string `json:"net_taxes"`
	ExcludedDividends  string `json:"excluded_dividends"`
	ExcludedEquity     string `json:"excluded_equity"`
	DisallowedExpenses string `json:"disallowed_expenses"`
	StockCompAdj       string `json:"stock_comp_adj"`
	OtherAdj           string `json:"other_adj"`

	// Covered tax adjustments.
	CurrentTax    string `json:"current_tax"`
	DeferredTax   string `json:"deferred_tax"`
	UTPAdj        string `json:"utp_adj"`
	NonCoveredAdj string `json:"non_covered_adj"`

	// Substance carve-out bases and domestic top-up offset.
	PayrollCosts   string `json:"payroll_costs"`
	TangibleAssets string `json:"tangible_assets"`
	QDMTT          string `json:"qdmtt"`
}

// GloBEResult carries the full derivation chain for one jurisdiction.
// Intermediates are exposed deliberately: the UI renders every step so
// a reviewer can audit the computation.
type GloBEResult struct {
	Jurisdiction string `json:"jurisdiction"`
	FiscalYear   int    `json:"fiscal_year"`
	Currency     string `json:"currency,omitempty"`

	GloBEIncome          float64 `json:"globe_income"`
	AdjustedCoveredTaxes float64 `json:"adjusted_covered_taxes"`

	PayrollRate float64 `json:"payroll_rate"`
	AssetRate   float64 `json:"asset_rate"`
	SBIEPayroll float64 `json:"sbie_payroll"`
	SBIEAssets  float64 `json:"sbie_assets"`
	TotalSBIE   float64 `json:"total_sbie"`

	ETR          float64 `json:"etr"`
	TopUpTaxPct  float64 `json:"top_up_tax_pct"`
	ExcessProfit float64 `json:"excess_profit"`
	GrossTopUp   float64 `json:"gross_top_up"`
	NetTopUp     float64 `json:"net_top_up"`

	Status ComplianceStatus `json:"status"`
}

// coreInputs are the coerced numeric fields shared by the
// single-jurisdiction calculator and the per-jurisdiction GIR
// computation.
type coreInputs struct {
	fani               float64
	netTaxes           float64
	excludedDividends  float64
	excludedEquity     float64
	disallowedExpenses float64
	stockCompAdj       float64
	otherAdj           float64

	currentTax    float64
	deferredTax   float64
	utpAdj        float64
	nonCoveredAdj float64

	payrollCosts   float64
	tangibleAssets float64
	qdmtt          float64
}

type coreResult struct {
	globeIncome          float64
	adjustedCoveredTaxes float64
	sbiePayroll          float64
	sbieAssets           float64
	totalSBIE            float64
	etrPct               float64
	etrPctRaw            float64
	topUpPct             float64
	excessProfit         float64
	grossTopUp           float64
	netTopUp             float64
}

// computeCore runs the per-jurisdiction GloBE formula. Adjustment
// fields carry their own sign, so income and tax lines are straight
// sums. A zero or negative GloBE income resolves the ETR to 0 rather
// than erroring; excess profit is floored at zero so no top-up can
// arise in that case.
func computeCore(in coreInputs, rates SBIERate) coreResult {
	globeIncome := Round2(in.fani + in.netTaxes + in.excludedDividends + in.excludedEquity +
		in.disallowedExpenses + in.stockCompAdj + in.otherAdj)
	coveredTaxes := Round2(in.currentTax + in.deferredTax + in.utpAdj + in.nonCoveredAdj)

	sbiePayroll := Round2(in.payrollCosts * rates.Payroll / 100)
	sbieAssets := Round2(in.tangibleAssets * rates.Asset / 100)
	totalSBIE := Round2(sbiePayroll + sbieAssets)

	etrRaw := 0.0
	if globeIncome > 0 {
		etrRaw = coveredTaxes / globeIncome * 100
	}

	topUpPct := Round2(math.Max(0, MinimumRate-etrRaw))
	excessProfit := Round2(math.Max(0, globeIncome-totalSBIE))
	grossTopUp := Round2(excessProfit * topUpPct / 100)
	netTopUp := Round2(math.Max(0, grossTopUp-in.qdmtt))

	return coreResult{
		globeIncome:          globeIncome,
		adjustedCoveredTaxes: coveredTaxes,
		sbiePayroll:          sbiePayroll,
		sbieAssets:           sbieAssets,
		totalSBIE:            totalSBIE,
		etrPct:               Round2(etrRaw),
		etrPctRaw:            etrRaw,
		topUpPct:             topUpPct,
		excessProfit:         excessProfit,
		grossTopUp:           grossTopUp,
		netTopUp:             netTopUp,
	}
}

// classify maps an unrounded ETR (percent) to a compliance status. The
// unrounded value decides the band so an ETR of 14.999% is still
// reported low-taxed even though it displays as 15.00%.
func classify(etrPct float64) ComplianceStatus {
	switch {
	case etrPct < MinimumRate:
		return StatusLowTaxed
	case etrPct < MinimumRate+warningBand:
		return StatusWarning
	default:
		return StatusCompliant
	}
}

// ValidateGloBE checks the non-numeric context fields. Numeric fields
// are never invalid: whatever the user typed coerces through
// ParseNumeric. A negative QDMTT is the one out-of-range numeric the
// form rejects.
func ValidateGloBE(in GloBEInput) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "jurisdiction", in.Jurisdiction, "Jurisdiction is required")
	errs = requireField(errs, "fiscal_year", in.FiscalYear, "Fiscal year is required")
	errs = requireNonNegative(errs, "qdmtt", ParseNumeric(in.QDMTT), "QDMTT cannot be negative")
	return errs
}

// ComputeGloBE runs the single-jurisdiction GloBE computation. It is a
// pure, total function: identical inputs always produce identical
// results, and no input combination panics or errors.
func ComputeGloBE(in GloBEInput) GloBEResult {
	year := ParseFiscalYear(in.FiscalYear)
	rates := SBIERates(year)

	core := computeCore(coreInputs{
		fani:               ParseNumeric(in.FANI),
		netTaxes:           ParseNumeric(in.NetTaxes),
		excludedDividends:  ParseNumeric(in.ExcludedDividends),
		excludedEquity:     ParseNumeric(in.ExcludedEquity),
		disallowedExpenses: ParseNumeric(in.DisallowedExpenses),
		stockCompAdj:       ParseNumeric(in.StockCompAdj),
		otherAdj:           ParseNumeric(in.OtherAdj),
		currentTax:         ParseNumeric(in.CurrentTax),
		deferredTax:        ParseNumeric(in.DeferredTax),
		utpAdj:             ParseNumeric(in.UTPAdj),
		nonCoveredAdj:      ParseNumeric(in.NonCoveredAdj),
		payrollCosts:       ParseNumeric(in.PayrollCosts),
		tangibleAssets:     ParseNumeric(in.TangibleAssets),
		qdmtt:              ParseNumeric(in.QDMTT),
	}, rates)

	return GloBEResult{
		Jurisdiction:         in.Jurisdiction,
		FiscalYear:           year,
		Currency:             in.Currency,
		GloBEIncome:          core.globeIncome,
		AdjustedCoveredTaxes: core.adjustedCoveredTaxes,
		PayrollRate:          rates.Payroll,
		AssetRate:            rates.Asset,
		SBIEPayroll:          core.sbiePayroll,
		SBIEAssets:           core.sbieAssets,
		TotalSBIE:            core.totalSBIE,
		ETR:                  core.etrPct,
		TopUpTaxPct:          core.topUpPct,
		ExcessProfit:         core.excessProfit,
		GrossTopUp:           core.grossTopUp,
		NetTopUp:             core.netTopUp,
		Status:               classify(core.etrPctRaw),
	}
}
