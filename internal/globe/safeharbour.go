package globe

import "math"

// ETRTestStatus classifies the simplified ETR test outcome.
type ETRTestStatus string

const (
	// ETRStatusLossMaking short-circuits the test: a loss-making
	// jurisdiction qualifies without any ETR being computed.
	ETRStatusLossMaking ETRTestStatus = "LOSS_MAKING"
	// ETRStatusAboveThreshold means the simplified ETR meets the
	// transition rate for the year.
	ETRStatusAboveThreshold ETRTestStatus = "ABOVE_THRESHOLD"
	// ETRStatusBelowThreshold means it does not.
	ETRStatusBelowThreshold ETRTestStatus = "BELOW_THRESHOLD"
)

// Safe harbour test identifiers, in tie-break priority order.
const (
	TestDeMinimis      = "de_minimis"
	TestSimplifiedETR  = "simplified_etr"
	TestRoutineProfits = "routine_profits"
)

// SafeHarbourInput is the raw form state for one jurisdiction/period of
// the transitional safe harbour qualifier. All quantities come from
// the group's qualified CbCR data, as strings straight off the form.
type SafeHarbourInput struct {
	Jurisdiction string `json:"jurisdiction"`
	FiscalYear   string `json:"fiscal_year"`

	Revenue         string `json:"revenue"`
	ProfitBeforeTax string `json:"profit_before_tax"`
	CoveredTaxes    string `json:"covered_taxes"`
	PayrollCosts    string `json:"payroll_costs"`
	TangibleAssets  string `json:"tangible_assets"`
}

// DeMinimisResult is the outcome of the de minimis test.
type DeMinimisResult struct {
	Revenue         float64 `json:"revenue"`
	ProfitBeforeTax float64 `json:"profit_before_tax"`
	RevenueBelow    bool    `json:"revenue_below"`
	ProfitBelow     bool    `json:"profit_below"`
	Qualifies       bool    `json:"qualifies"`
}

// SimplifiedETRResult is the outcome of the simplified ETR test. ETR is
// only meaningful when ETRApplicable is true; a loss-making
// jurisdiction reports no rate at all.
type SimplifiedETRResult struct {
	ProfitBeforeTax float64       `json:"profit_before_tax"`
	CoveredTaxes    float64       `json:"covered_taxes"`
	ETR             float64       `json:"etr"`
	ETRApplicable   bool          `json:"etr_applicable"`
	TransitionRate  float64       `json:"transition_rate"`
	Status          ETRTestStatus `json:"status"`
	Qualifies       bool          `json:"qualifies"`
}

// RoutineProfitsResult is the outcome of the routine profits test.
type RoutineProfitsResult struct {
	PayrollRate     float64 `json:"payroll_rate"`
	AssetRate       float64 `json:"asset_rate"`
	SBIEPayroll     float64 `json:"sbie_payroll"`
	SBIEAssets      float64 `json:"sbie_assets"`
	TotalSBIE       float64 `json:"total_sbie"`
	ProfitBeforeTax float64 `json:"profit_before_tax"`
	Qualifies       bool    `json:"qualifies"`
}

// SafeHarbourResult combines the three tests. QualifyingTest names the
// first qualifying test in the fixed priority order de minimis >
// simplified ETR > routine profits, even when several qualify, so the
// reported reason is reproducible. It is empty when none qualify.
type SafeHarbourResult struct {
	Jurisdiction string `json:"jurisdiction"`
	FiscalYear   int    `json:"fiscal_year"`

	DeMinimis      DeMinimisResult      `json:"de_minimis"`
	SimplifiedETR  SimplifiedETRResult  `json:"simplified_etr"`
	RoutineProfits RoutineProfitsResult `json:"routine_profits"`

	Qualifies      bool   `json:"qualifies"`
	QualifyingTest string `json:"qualifying_test,omitempty"`
}

// ValidateSafeHarbour checks the context fields of the qualifier form.
func ValidateSafeHarbour(in SafeHarbourInput) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "jurisdiction", in.Jurisdiction, "Jurisdiction is required")
	errs = requireField(errs, "fiscal_year", in.FiscalYear, "Fiscal year is required")
	return errs
}

// EvaluateDeMinimis runs the de minimis test: revenue under 10M and
// profit magnitude under 1M, both required. The profit condition uses
// the absolute value so a small loss counts the same as a small
// profit.
func EvaluateDeMinimis(revenue, profitBeforeTax float64) DeMinimisResult {
	revenueBelow := revenue < DeMinimisRevenueThreshold
	profitBelow := math.Abs(profitBeforeTax) < DeMinimisProfitThreshold

	return DeMinimisResult{
		Revenue:         Round2(revenue),
		ProfitBeforeTax: Round2(profitBeforeTax),
		RevenueBelow:    revenueBelow,
		ProfitBelow:     profitBelow,
		Qualifies:       revenueBelow && profitBelow,
	}
}

// EvaluateSimplifiedETR runs the simplified ETR test against the
// transition rate for the year. A non-positive profit qualifies
// immediately with no division, so no taxes value can produce NaN or
// Inf.
func EvaluateSimplifiedETR(profitBeforeTax, coveredTaxes float64, year int) SimplifiedETRResult {
	rate := TransitionRate(year)

	if profitBeforeTax <= 0 {
		return SimplifiedETRResult{
			ProfitBeforeTax: Round2(profitBeforeTax),
			CoveredTaxes:    Round2(coveredTaxes),
			ETRApplicable:   false,
			TransitionRate:  rate,
			Status:          ETRStatusLossMaking,
			Qualifies:       true,
		}
	}

	etr := Round2(coveredTaxes / profitBeforeTax * 100)
	qualifies := etr >= rate

	status := ETRStatusBelowThreshold
	if qualifies {
		status = ETRStatusAboveThreshold
	}

	return SimplifiedETRResult{
		ProfitBeforeTax: Round2(profitBeforeTax),
		CoveredTaxes:    Round2(coveredTaxes),
		ETR:             etr,
		ETRApplicable:   true,
		TransitionRate:  rate,
		Status:          status,
		Qualifies:       qualifies,
	}
}

// EvaluateRoutineProfits runs the routine profits test: the
// jurisdiction qualifies when profit does not exceed the substance
// carve-out, or when there is no profit at all. Uses the same SBIE
// schedule as the full computation.
func EvaluateRoutineProfits(profitBeforeTax, payrollCosts, tangibleAssets float64, year int) RoutineProfitsResult {
	rates := SBIERates(year)

	sbiePayroll := Round2(payrollCosts * rates.Payroll / 100)
	sbieAssets := Round2(tangibleAssets * rates.Asset / 100)
	totalSBIE := Round2(sbiePayroll + sbieAssets)

	return RoutineProfitsResult{
		PayrollRate:     rates.Payroll,
		AssetRate:       rates.Asset,
		SBIEPayroll:     sbiePayroll,
		SBIEAssets:      sbieAssets,
		TotalSBIE:       totalSBIE,
		ProfitBeforeTax: Round2(profitBeforeTax),
		Qualifies:       profitBeforeTax <= totalSBIE || profitBeforeTax <= 0,
	}
}

// EvaluateSafeHarbour runs all three transitional safe harbour tests
// and combines them. The jurisdiction qualifies if any single test
// passes.
func EvaluateSafeHarbour(in SafeHarbourInput) SafeHarbourResult {
	year := ParseFiscalYear(in.FiscalYear)

	revenue := ParseNumeric(in.Revenue)
	profit := ParseNumeric(in.ProfitBeforeTax)
	taxes := ParseNumeric(in.CoveredTaxes)
	payroll := ParseNumeric(in.PayrollCosts)
	assets := ParseNumeric(in.TangibleAssets)

	result := SafeHarbourResult{
		Jurisdiction:   in.Jurisdiction,
		FiscalYear:     year,
		DeMinimis:      EvaluateDeMinimis(revenue, profit),
		SimplifiedETR:  EvaluateSimplifiedETR(profit, taxes, year),
		RoutineProfits: EvaluateRoutineProfits(profit, payroll, assets, year),
	}

	switch {
	case result.DeMinimis.Qualifies:
		result.Qualifies = true
		result.QualifyingTest = TestDeMinimis
	case result.SimplifiedETR.Qualifies:
		result.Qualifies = true
		result.QualifyingTest = TestSimplifiedETR
	case result.RoutineProfits.Qualifies:
		result.Qualifies = true
		result.QualifyingTest = TestRoutineProfits
	}

	return result
}
