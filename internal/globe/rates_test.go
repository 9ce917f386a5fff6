package globe_test

import (
	"strconv"
	"testing"

	"globe-api/internal/globe"

	"github.com/stretchr/testify/assert"
)

func TestSBIERates(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		wantPayroll float64
		wantAsset   float64
	}{
		{name: "first transition year", year: 2024, wantPayroll: 9.8, wantAsset: 7.8},
		{name: "mid schedule", year: 2028, wantPayroll: 9.0, wantAsset: 7.0},
		{name: "final year", year: 2033, wantPayroll: 5.0, wantAsset: 5.0},
		{name: "before schedule clamps to first year", year: 2020, wantPayroll: 9.8, wantAsset: 7.8},
		{name: "after schedule stabilizes at final rates", year: 2040, wantPayroll: 5.0, wantAsset: 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := globe.SBIERates(tt.year)
			assert.Equal(t, tt.wantPayroll, rates.Payroll)
			assert.Equal(t, tt.wantAsset, rates.Asset)
		})
	}
}

func TestTransitionRate(t *testing.T) {
	tests := []struct {
		name string
		year int
		want float64
	}{
		{name: "2024", year: 2024, want: 15.0},
		{name: "2025", year: 2025, want: 16.0},
		{name: "2026", year: 2026, want: 17.0},
		{name: "before window clamps down", year: 2023, want: 15.0},
		{name: "after window clamps up", year: 2030, want: 17.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, globe.TransitionRate(tt.year))
		})
	}
}

func TestParseFiscalYear(t *testing.T) {
	assert.Equal(t, 2026, globe.ParseFiscalYear("2026"))
	assert.Equal(t, 2024, globe.ParseFiscalYear(" 2024 "))
	assert.Equal(t, 2024, globe.ParseFiscalYear(""))
	assert.Equal(t, 2024, globe.ParseFiscalYear("next year"))
}

// The safe harbour routine profits test and the full computation read
// the same schedule, so their carve-out rates can never disagree for a
// shared year.
func TestSBIEScheduleSharedAcrossEngines(t *testing.T) {
	for _, year := range globe.SBIEScheduleYears() {
		rates := globe.SBIERates(year)

		routine := globe.EvaluateRoutineProfits(0, 100, 100, year)
		assert.Equal(t, rates.Payroll, routine.PayrollRate, "payroll rate for %d", year)
		assert.Equal(t, rates.Asset, routine.AssetRate, "asset rate for %d", year)

		full := globe.ComputeGloBE(globe.GloBEInput{
			Jurisdiction: "IE",
			FiscalYear:   strconv.Itoa(year),
			PayrollCosts: "100",
		})
		assert.Equal(t, rates.Payroll, full.PayrollRate, "engine payroll rate for %d", year)
		assert.Equal(t, rates.Asset, full.AssetRate, "engine asset rate for %d", year)
	}
}

func TestJurisdictionLookup(t *testing.T) {
	ie, ok := globe.JurisdictionByCode("IE")
	assert.True(t, ok)
	assert.Equal(t, "Ireland", ie.Name)
	assert.NotEmpty(t, ie.FilingAuthority)
	assert.NotEmpty(t, ie.Notes)

	_, ok = globe.JurisdictionByCode("ZZ")
	assert.False(t, ok)

	all := globe.Jurisdictions()
	assert.NotEmpty(t, all)
	assert.Equal(t, "IE", all[0].Code)
}
