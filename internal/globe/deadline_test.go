package globe_test

import (
	"testing"
	"time"

	"globe-api/internal/globe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDeadlineAt_FilingWindows(t *testing.T) {
	asOf := date(2025, time.January, 15)

	t.Run("first filing gets 18 months", func(t *testing.T) {
		result := globe.ComputeDeadlineAt(globe.DeadlineInput{
			MNEName:       "Acme Group",
			FiscalYearEnd: "2024-12-31",
			IsFirstFiling: true,
		}, asOf)

		assert.Equal(t, date(2026, time.March, 31), result.StandardDeadline)
		assert.Equal(t, date(2026, time.June, 30), result.ApplicableDeadline)
	})

	t.Run("subsequent filings get 15 months", func(t *testing.T) {
		result := globe.ComputeDeadlineAt(globe.DeadlineInput{
			MNEName:       "Acme Group",
			FiscalYearEnd: "2024-12-31",
			IsFirstFiling: false,
		}, asOf)

		assert.Equal(t, date(2026, time.March, 31), result.StandardDeadline)
		assert.Equal(t, date(2026, time.March, 31), result.ApplicableDeadline)
	})

	t.Run("month-end dates clamp instead of rolling over", func(t *testing.T) {
		// 2024-03-31 + 15 months lands in June, which has no 31st.
		result := globe.ComputeDeadlineAt(globe.DeadlineInput{
			MNEName:       "Acme Group",
			FiscalYearEnd: "2024-03-31",
		}, asOf)

		assert.Equal(t, date(2025, time.June, 30), result.ApplicableDeadline)
	})
}

func TestComputeDeadlineAt_DaysRemaining(t *testing.T) {
	input := globe.DeadlineInput{
		MNEName:       "Acme Group",
		FiscalYearEnd: "2024-12-31",
	}

	// Deadline is 2026-03-31.
	assert.Equal(t, 10, globe.ComputeDeadlineAt(input, date(2026, time.March, 21)).DaysRemaining)
	assert.Equal(t, 0, globe.ComputeDeadlineAt(input, date(2026, time.March, 31)).DaysRemaining)

	// Overdue filings report a negative count; that is a signal, not an
	// error.
	assert.Equal(t, -5, globe.ComputeDeadlineAt(input, date(2026, time.April, 5)).DaysRemaining)
}

func TestComputeDeadlineAt_Milestones(t *testing.T) {
	asOf := date(2025, time.June, 1)
	result := globe.ComputeDeadlineAt(globe.DeadlineInput{
		MNEName:       "Acme Group",
		FiscalYearEnd: "2024-12-31",
		IsFirstFiling: true,
	}, asOf)

	require.Len(t, result.Milestones, 4)

	// Counting back from the 2026-06-30 deadline.
	assert.Equal(t, date(2025, time.December, 30), result.Milestones[0].Date)
	assert.Equal(t, date(2026, time.March, 30), result.Milestones[1].Date)
	assert.Equal(t, date(2026, time.May, 30), result.Milestones[2].Date)
	assert.Equal(t, date(2026, time.June, 30), result.Milestones[3].Date)

	for i, m := range result.Milestones {
		assert.NotEmpty(t, m.Name, "milestone %d", i)
		assert.NotEmpty(t, m.Description, "milestone %d", i)
		assert.Equal(t, i == len(result.Milestones)-1, m.IsDeadline, "milestone %d", i)

		// DaysAway uses the same whole-day arithmetic as DaysRemaining.
		if m.IsDeadline {
			assert.Equal(t, result.DaysRemaining, m.DaysAway)
		}
	}
}

func TestValidateDeadline(t *testing.T) {
	tests := []struct {
		name      string
		input     globe.DeadlineInput
		wantField string
	}{
		{
			name:      "missing name",
			input:     globe.DeadlineInput{FiscalYearEnd: "2024-12-31"},
			wantField: "mne_name",
		},
		{
			name:      "missing fiscal year end",
			input:     globe.DeadlineInput{MNEName: "Acme Group"},
			wantField: "fiscal_year_end",
		},
		{
			name:      "unparseable date",
			input:     globe.DeadlineInput{MNEName: "Acme Group", FiscalYearEnd: "31/12/2024"},
			wantField: "fiscal_year_end",
		},
		{
			name:      "before the rules existed",
			input:     globe.DeadlineInput{MNEName: "Acme Group", FiscalYearEnd: "2023-06-30"},
			wantField: "fiscal_year_end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := globe.ValidateDeadline(tt.input)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}

	t.Run("floor date itself is allowed", func(t *testing.T) {
		assert.Empty(t, globe.ValidateDeadline(globe.DeadlineInput{
			MNEName:       "Acme Group",
			FiscalYearEnd: "2023-12-31",
		}))
	})
}
