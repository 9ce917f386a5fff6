package globe

import (
	"strconv"
	"strings"
)

// MinimumRate is the fixed GloBE minimum rate, in percent. The
// transitional safe harbour uses the year-specific rates below instead;
// the two are different reference rates in the rules, not a
// duplication.
const MinimumRate = 15.0

// warningBand widens the compliant threshold by half a point so results
// sitting just above the minimum rate are flagged for review.
const warningBand = 0.5

// De-minimis thresholds for the transitional safe harbour, in the
// group's presentation currency.
const (
	DeMinimisRevenueThreshold = 10_000_000.0
	DeMinimisProfitThreshold  = 1_000_000.0
)

// SBIERate is the substance-based income exclusion rate pair for one
// fiscal year, in percent.
type SBIERate struct {
	Payroll float64 `json:"payroll"`
	Asset   float64 `json:"asset"`
}

// sbieSchedule is the single source of truth for SBIE transition rates.
// Both the single-jurisdiction engine and the safe harbour routine
// profits test read from this table, so the calculators can never
// drift apart for overlapping years.
var sbieSchedule = map[int]SBIERate{
	2024: {Payroll: 9.8, Asset: 7.8},
	2025: {Payroll: 9.6, Asset: 7.6},
	2026: {Payroll: 9.4, Asset: 7.4},
	2027: {Payroll: 9.2, Asset: 7.2},
	2028: {Payroll: 9.0, Asset: 7.0},
	2029: {Payroll: 8.2, Asset: 6.6},
	2030: {Payroll: 7.4, Asset: 6.2},
	2031: {Payroll: 6.6, Asset: 5.8},
	2032: {Payroll: 5.8, Asset: 5.4},
	2033: {Payroll: 5.0, Asset: 5.0},
}

const (
	sbieFirstYear = 2024
	sbieLastYear  = 2033
)

// transitionRates holds the transitional safe harbour ETR thresholds,
// in percent, for the three transition years.
var transitionRates = map[int]float64{
	2024: 15.0,
	2025: 16.0,
	2026: 17.0,
}

const (
	transitionFirstYear = 2024
	transitionLastYear  = 2026
)

// SBIERates returns the SBIE rate pair for a fiscal year. Years outside
// the declared schedule clamp to the nearest bound; the post-2033 rates
// are stabilized at the final 5%/5% pair.
func SBIERates(year int) SBIERate {
	if year < sbieFirstYear {
		year = sbieFirstYear
	}
	if year > sbieLastYear {
		year = sbieLastYear
	}
	return sbieSchedule[year]
}

// TransitionRate returns the transitional safe harbour ETR threshold
// for a fiscal year, clamped to the 2024-2026 window.
func TransitionRate(year int) float64 {
	if year < transitionFirstYear {
		year = transitionFirstYear
	}
	if year > transitionLastYear {
		year = transitionLastYear
	}
	return transitionRates[year]
}

// ParseFiscalYear converts the fiscal-year form field to an integer
// year. Unparseable input falls back to the first scheduled year so
// lookups stay total.
func ParseFiscalYear(value string) int {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return sbieFirstYear
	}
	return year
}

// SBIEScheduleYears returns the declared schedule years in ascending
// order, for the reference-data API.
func SBIEScheduleYears() []int {
	years := make([]int, 0, len(sbieSchedule))
	for y := sbieFirstYear; y <= sbieLastYear; y++ {
		years = append(years, y)
	}
	return years
}

// TransitionScheduleYears returns the transition window years in
// ascending order.
func TransitionScheduleYears() []int {
	years := make([]int, 0, len(transitionRates))
	for y := transitionFirstYear; y <= transitionLastYear; y++ {
		years = append(years, y)
	}
	return years
}
