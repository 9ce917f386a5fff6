package globe

import (
	"math"
	"strconv"
	"strings"
)

// roundEpsilon nudges scaled values off binary representation error so
// that values like 2.675 round up to 2.68 instead of truncating down.
const roundEpsilon = 1e-9

// ParseNumeric converts a raw text-input value to a number. Thousands
// separators are stripped and anything that does not parse cleanly
// (empty strings, partial input, garbage) comes back as 0. It never
// returns NaN or Inf, so results are always safe for arithmetic.
func ParseNumeric(value string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}

	return parsed
}

// Round rounds a value to the given number of decimal places using
// round-half-up. Every derived monetary or percentage output must pass
// through here before display or storage so results are reproducible
// across platforms.
func Round(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	scaled := value * scale

	// Epsilon is scale-relative so large monetary amounts sitting a few
	// ulps below a half boundary still round up.
	epsilon := math.Abs(scaled)*1e-12 + roundEpsilon
	if scaled >= 0 {
		scaled += epsilon
	} else {
		scaled -= epsilon
	}

	return math.Round(scaled) / scale
}

// Round2 is shorthand for the 2-decimal rounding applied to monetary
// amounts and percentages throughout the engines.
func Round2(value float64) float64 {
	return Round(value, 2)
}

// FormatMoney formats a number with thousands separators and a fixed
// number of decimal places. Purely presentational; formatted strings
// are never persisted.
func FormatMoney(value float64, decimals int) string {
	negative := value < 0
	if negative {
		value = -value
	}

	formatted := strconv.FormatFloat(Round(value, decimals), 'f', decimals, 64)

	intPart := formatted
	fracPart := ""
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		intPart = formatted[:idx]
		fracPart = formatted[idx:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteString(fracPart)

	return b.String()
}

// currencySymbols covers the currencies offered by the calculator UI.
// Codes without a symbol fall back to "CODE amount" formatting.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF ",
	"JPY": "¥",
	"SGD": "S$",
}

// FormatCurrency formats a monetary amount with its currency symbol,
// falling back to the ISO code as a prefix for unknown currencies.
func FormatCurrency(code string, value float64) string {
	symbol, ok := currencySymbols[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return strings.ToUpper(strings.TrimSpace(code)) + " " + FormatMoney(value, 2)
	}
	return symbol + FormatMoney(value, 2)
}
