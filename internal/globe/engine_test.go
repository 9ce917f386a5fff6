package globe_test

import (
	"testing"

	"globe-api/internal/globe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full worked example for a low-taxed Irish jurisdiction at 2024 rates
// (9.8% payroll, 7.8% assets), checking the entire derivation chain.
func TestComputeGloBE_WorkedExample(t *testing.T) {
	input := globe.GloBEInput{
		Jurisdiction:       "IE",
		FiscalYear:         "2024",
		Currency:           "EUR",
		FANI:               "28,000,000",
		NetTaxes:           "3,500,000",
		DisallowedExpenses: "-200,000",
		StockCompAdj:       "1,200,000",
		OtherAdj:           "300,000",
		CurrentTax:         "3,000,000",
		DeferredTax:        "800,000",
		UTPAdj:             "-150,000",
		NonCoveredAdj:      "-50,000",
		PayrollCosts:       "19,000,000",
		TangibleAssets:     "17,000,000",
		QDMTT:              "0",
	}

	result := globe.ComputeGloBE(input)

	assert.Equal(t, "IE", result.Jurisdiction)
	assert.Equal(t, 2024, result.FiscalYear)
	assert.InDelta(t, 32_800_000, result.GloBEIncome, 0.01)
	assert.InDelta(t, 3_600_000, result.AdjustedCoveredTaxes, 0.01)
	assert.Equal(t, 9.8, result.PayrollRate)
	assert.Equal(t, 7.8, result.AssetRate)
	assert.InDelta(t, 1_862_000, result.SBIEPayroll, 0.01)
	assert.InDelta(t, 1_326_000, result.SBIEAssets, 0.01)
	assert.InDelta(t, 3_188_000, result.TotalSBIE, 0.01)
	assert.InDelta(t, 10.98, result.ETR, 0.001)
	assert.InDelta(t, 4.02, result.TopUpTaxPct, 0.001)
	assert.InDelta(t, 29_612_000, result.ExcessProfit, 0.01)
	assert.InDelta(t, 1_190_402.40, result.GrossTopUp, 0.01)
	assert.InDelta(t, 1_190_402.40, result.NetTopUp, 0.01)
	assert.Equal(t, globe.StatusLowTaxed, result.Status)
}

func TestComputeGloBE_QDMTTOffset(t *testing.T) {
	input := globe.GloBEInput{
		Jurisdiction: "DE",
		FiscalYear:   "2024",
		FANI:         "10,000,000",
		CurrentTax:   "500,000",
		QDMTT:        "400,000",
	}

	result := globe.ComputeGloBE(input)

	// ETR 5%, top-up 10% of the full excess profit (no substance), then
	// the domestic top-up offsets the gross amount.
	assert.InDelta(t, 5.0, result.ETR, 0.001)
	assert.InDelta(t, 10.0, result.TopUpTaxPct, 0.001)
	assert.InDelta(t, 1_000_000, result.GrossTopUp, 0.01)
	assert.InDelta(t, 600_000, result.NetTopUp, 0.01)

	// A QDMTT larger than the gross top-up floors at zero, never goes
	// negative.
	input.QDMTT = "2,000,000"
	assert.InDelta(t, 0, globe.ComputeGloBE(input).NetTopUp, 0.01)
}

func TestComputeGloBE_StatusBands(t *testing.T) {
	tests := []struct {
		name       string
		taxes      string
		wantStatus globe.ComplianceStatus
		wantTopUp  float64
	}{
		{name: "exactly at minimum rate", taxes: "150,000", wantStatus: globe.StatusWarning, wantTopUp: 0},
		{name: "just below minimum rate", taxes: "149,990", wantStatus: globe.StatusLowTaxed, wantTopUp: 0.00},
		{name: "inside warning band", taxes: "152,000", wantStatus: globe.StatusWarning, wantTopUp: 0},
		{name: "at warning band upper edge", taxes: "155,000", wantStatus: globe.StatusCompliant, wantTopUp: 0},
		{name: "clearly low taxed", taxes: "100,000", wantStatus: globe.StatusLowTaxed, wantTopUp: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := globe.ComputeGloBE(globe.GloBEInput{
				Jurisdiction: "NL",
				FiscalYear:   "2024",
				FANI:         "1,000,000",
				CurrentTax:   tt.taxes,
			})
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.InDelta(t, tt.wantTopUp, result.TopUpTaxPct, 0.001)
		})
	}
}

// Zero or negative GloBE income resolves the ETR to 0 instead of
// dividing; excess profit floors at zero so no top-up can arise.
func TestComputeGloBE_NonPositiveIncome(t *testing.T) {
	tests := []struct {
		name string
		fani string
	}{
		{name: "zero income", fani: "0"},
		{name: "negative income", fani: "-4,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := globe.ComputeGloBE(globe.GloBEInput{
				Jurisdiction: "IE",
				FiscalYear:   "2024",
				FANI:         tt.fani,
				CurrentTax:   "250,000",
			})
			assert.Zero(t, result.ETR)
			assert.Zero(t, result.ExcessProfit)
			assert.Zero(t, result.GrossTopUp)
			assert.Zero(t, result.NetTopUp)
		})
	}
}

// Empty and malformed fields coerce to zero, so the engine stays total
// over arbitrary form state.
func TestComputeGloBE_EmptyInputs(t *testing.T) {
	result := globe.ComputeGloBE(globe.GloBEInput{Jurisdiction: "IE", FiscalYear: "2024"})

	assert.Zero(t, result.GloBEIncome)
	assert.Zero(t, result.AdjustedCoveredTaxes)
	assert.Zero(t, result.TotalSBIE)
	assert.Zero(t, result.NetTopUp)
	assert.Equal(t, globe.StatusLowTaxed, result.Status)
}

func TestComputeGloBE_Idempotent(t *testing.T) {
	input := globe.GloBEInput{
		Jurisdiction:   "IE",
		FiscalYear:     "2024",
		FANI:           "28,000,000",
		CurrentTax:     "3,000,000",
		PayrollCosts:   "19,000,000",
		TangibleAssets: "17,000,000",
	}

	first := globe.ComputeGloBE(input)
	second := globe.ComputeGloBE(input)
	assert.Equal(t, first, second)
}

// Growing the substance carve-out bases can only grow the carve-out
// and can only shrink (or hold) the top-up tax.
func TestComputeGloBE_SBIEMonotonicity(t *testing.T) {
	base := globe.GloBEInput{
		Jurisdiction: "IE",
		FiscalYear:   "2024",
		FANI:         "30,000,000",
		CurrentTax:   "1,500,000",
		PayrollCosts: "1,000,000",
	}

	prev := globe.ComputeGloBE(base)
	for _, payroll := range []string{"2,000,000", "5,000,000", "20,000,000", "400,000,000"} {
		base.PayrollCosts = payroll
		next := globe.ComputeGloBE(base)

		assert.GreaterOrEqual(t, next.TotalSBIE, prev.TotalSBIE, "payroll %s", payroll)
		assert.LessOrEqual(t, next.NetTopUp, prev.NetTopUp, "payroll %s", payroll)
		prev = next
	}
}

func TestValidateGloBE(t *testing.T) {
	errs := globe.ValidateGloBE(globe.GloBEInput{})
	require.Len(t, errs, 2)
	assert.Equal(t, "jurisdiction", errs[0].Field)
	assert.Equal(t, "fiscal_year", errs[1].Field)

	errs = globe.ValidateGloBE(globe.GloBEInput{
		Jurisdiction: "IE",
		FiscalYear:   "2024",
		QDMTT:        "-100",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "qdmtt", errs[0].Field)

	assert.Empty(t, globe.ValidateGloBE(globe.GloBEInput{Jurisdiction: "IE", FiscalYear: "2024"}))
}
