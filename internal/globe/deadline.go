package globe

import "time"

const dateLayout = "2006-01-02"

// Filing windows counted from fiscal year end, per the GIR filing
// rules: 15 months normally, 18 months for a group's first filing.
const (
	standardFilingMonths     = 15
	firstFilingMonths        = 18
	earliestFiscalYearEndStr = "2023-12-31"
)

// earliestFiscalYearEnd is the validity floor: the GIR does not exist
// for fiscal years ending before the rules took effect.
var earliestFiscalYearEnd = time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

// DeadlineInput is the raw form state of the filing deadline
// calculator.
type DeadlineInput struct {
	MNEName       string `json:"mne_name"`
	FiscalYearEnd string `json:"fiscal_year_end"`
	IsFirstFiling bool   `json:"is_first_filing"`
}

// Milestone is one named checkpoint on the preparation timeline.
// DaysAway uses the same whole-day arithmetic as the top-level
// DaysRemaining and is negative once the date has passed.
type Milestone struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	DaysAway    int       `json:"days_away"`
	IsDeadline  bool      `json:"is_deadline"`
}

// DeadlineResult is the computed filing timeline. A negative
// DaysRemaining signals an overdue filing; that is reported, not
// rejected.
type DeadlineResult struct {
	MNEName            string      `json:"mne_name"`
	FiscalYearEnd      time.Time   `json:"fiscal_year_end"`
	IsFirstFiling      bool        `json:"is_first_filing"`
	StandardDeadline   time.Time   `json:"standard_deadline"`
	ApplicableDeadline time.Time   `json:"applicable_deadline"`
	DaysRemaining      int         `json:"days_remaining"`
	Milestones         []Milestone `json:"milestones"`
}

// ValidateDeadline checks the deadline form: both fields are required,
// the date must parse, and fiscal year ends before the GIR's effective
// date are out of range.
func ValidateDeadline(in DeadlineInput) []FieldError {
	var errs []FieldError
	errs = requireField(errs, "mne_name", in.MNEName, "MNE group name is required")

	if in.FiscalYearEnd == "" {
		return append(errs, FieldError{Field: "fiscal_year_end", Message: "Fiscal year end is required"})
	}

	fye, err := time.Parse(dateLayout, in.FiscalYearEnd)
	if err != nil {
		return append(errs, FieldError{Field: "fiscal_year_end", Message: "Fiscal year end must be a date in YYYY-MM-DD format"})
	}

	if fye.Before(earliestFiscalYearEnd) {
		errs = append(errs, FieldError{
			Field:   "fiscal_year_end",
			Message: "GIR filing rules apply to fiscal years ending on or after " + earliestFiscalYearEndStr,
		})
	}

	return errs
}

// ComputeDeadline computes the filing timeline relative to the current
// date. Callers that need a stable reference date (tests, replays)
// use ComputeDeadlineAt directly.
func ComputeDeadline(in DeadlineInput) DeadlineResult {
	return ComputeDeadlineAt(in, time.Now().UTC())
}

// ComputeDeadlineAt computes statutory and transitional deadlines and
// the preparation milestones as of a reference date. The input is
// assumed to have passed ValidateDeadline; an unparseable date
// degrades to the validity floor rather than panicking.
func ComputeDeadlineAt(in DeadlineInput, asOf time.Time) DeadlineResult {
	fye, err := time.Parse(dateLayout, in.FiscalYearEnd)
	if err != nil {
		fye = earliestFiscalYearEnd
	}

	standard := addMonths(fye, standardFilingMonths)
	applicable := standard
	if in.IsFirstFiling {
		applicable = addMonths(fye, firstFilingMonths)
	}

	return DeadlineResult{
		MNEName:            in.MNEName,
		FiscalYearEnd:      fye,
		IsFirstFiling:      in.IsFirstFiling,
		StandardDeadline:   standard,
		ApplicableDeadline: applicable,
		DaysRemaining:      wholeDaysBetween(asOf, applicable),
		Milestones:         buildMilestones(applicable, asOf),
	}
}

// buildMilestones derives the fixed preparation checkpoints counting
// back from the applicable deadline.
func buildMilestones(deadline, asOf time.Time) []Milestone {
	checkpoints := []struct {
		name        string
		description string
		monthsPrior int
		isDeadline  bool
	}{
		{"Data collection kickoff", "Begin gathering constituent entity financial data and CbCR extracts", 6, false},
		{"Draft GIR complete", "First complete draft of the GloBE Information Return ready for review", 3, false},
		{"Internal review", "Final internal sign-off and reconciliation against group accounts", 1, false},
		{"GIR filing deadline", "GloBE Information Return due with the filing authority", 0, true},
	}

	milestones := make([]Milestone, 0, len(checkpoints))
	for _, cp := range checkpoints {
		date := addMonths(deadline, -cp.monthsPrior)
		milestones = append(milestones, Milestone{
			Name:        cp.name,
			Description: cp.description,
			Date:        date,
			DaysAway:    wholeDaysBetween(asOf, date),
			IsDeadline:  cp.isDeadline,
		})
	}

	return milestones
}

// addMonths adds calendar months with end-of-month clamping, so
// 2024-12-31 plus 18 months is 2026-06-30 rather than rolling over
// into July the way AddDate would.
func addMonths(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) + months
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}

	day := t.Day()
	if last := lastDayOfMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// wholeDaysBetween counts whole days from one date to another,
// ignoring the time of day on both ends. Negative when the target is
// in the past.
func wholeDaysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
