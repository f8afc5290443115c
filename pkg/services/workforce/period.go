package workforce

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
)

// ExtractPeriod derives the calendar month covered by the declaration from
// its period code. 8-digit codes are normalized to year+month; the day
// component carries no period semantics. Returns the inclusive range from the
// first to the last day of the month.
func ExtractPeriod(decl *domain.Declaration) (domain.ReportingPeriod, error) {
	code := decl.PeriodCode
	if code == "" {
		return domain.ReportingPeriod{}, fmt.Errorf("declaration carries no reporting period")
	}
	if len(code) == 8 {
		code = code[:6]
	}
	if len(code) != 6 {
		return domain.ReportingPeriod{}, fmt.Errorf("invalid reporting period %q: expected 6 or 8 digits", decl.PeriodCode)
	}

	year, err := strconv.Atoi(code[:4])
	if err != nil {
		return domain.ReportingPeriod{}, fmt.Errorf("invalid reporting period %q: not numeric", decl.PeriodCode)
	}
	month, err := strconv.Atoi(code[4:])
	if err != nil {
		return domain.ReportingPeriod{}, fmt.Errorf("invalid reporting period %q: not numeric", decl.PeriodCode)
	}

	if year < 1900 || year > 2100 {
		return domain.ReportingPeriod{}, fmt.Errorf("invalid reporting period year %d: expected 1900 to 2100", year)
	}
	if month < 1 || month > 12 {
		return domain.ReportingPeriod{}, fmt.Errorf("invalid reporting period month %d: expected 1 to 12", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return domain.ReportingPeriod{Start: start, End: end}, nil
}
