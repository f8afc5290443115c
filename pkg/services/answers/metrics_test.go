package answers

import (
	"testing"
	"time"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func november2025() domain.ReportingPeriod {
	return domain.ReportingPeriod{
		Start: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestHeadcountAtEnd(t *testing.T) {
	period := november2025()
	employees := []domain.Employee{
		// open contract, starts-on-the-last-day, starts-after-the-period,
		// left mid-month, no contract at all
		{ContractStart: date(2025, time.October, 1)},
		{ContractStart: date(2025, time.November, 30)},
		{ContractStart: date(2025, time.December, 1)},
		{ContractStart: date(2024, time.January, 1), ContractEnd: date(2025, time.November, 15)},
		{},
	}

	value, explanation := HeadcountAtEnd(employees, period)
	assert.Equal(t, 2, value)
	assert.Contains(t, explanation, "2 employees")
	assert.Contains(t, explanation, "2025-11-30")
}

func TestAverageHeadcount_OneDecimal(t *testing.T) {
	period := november2025()
	employees := []domain.Employee{
		{ContractStart: date(2024, time.January, 1)},
		{ContractStart: date(2024, time.January, 1), ContractEnd: date(2025, time.November, 15)},
	}

	// 2 at start, 1 at end.
	value, explanation := AverageHeadcount(employees, period)
	assert.Equal(t, 1.5, value)
	assert.Contains(t, explanation, "2 employees")
}

func TestLeavers_BoundariesInclusive(t *testing.T) {
	period := november2025()
	employees := []domain.Employee{
		{ContractStart: date(2024, time.January, 1), ContractEnd: date(2025, time.November, 1)},
		{ContractStart: date(2024, time.January, 1), ContractEnd: date(2025, time.November, 30)},
		{ContractStart: date(2024, time.January, 1), ContractEnd: date(2025, time.October, 31)},
		{ContractStart: date(2024, time.January, 1), ContractEnd: date(2025, time.December, 1)},
		{ContractStart: date(2024, time.January, 1)},
	}

	value, _ := Leavers(employees, period)
	assert.Equal(t, 2, value)
}

func TestTurnoverRate(t *testing.T) {
	period := november2025()

	var employees []domain.Employee
	for i := 0; i < 4; i++ {
		employees = append(employees, domain.Employee{ContractStart: date(2024, time.January, 1)})
	}
	employees = append(employees, domain.Employee{
		ContractStart: date(2024, time.January, 1),
		ContractEnd:   date(2025, time.November, 15),
	})

	// 1 leaver over 5 employees at period start.
	value, explanation := TurnoverRate(employees, period)
	assert.Equal(t, 20, value)
	assert.Contains(t, explanation, "1 leavers out of 5")
}

func TestTurnoverRate_ZeroDenominator(t *testing.T) {
	period := november2025()

	// A leaver exists but nobody was under contract at period start.
	employees := []domain.Employee{
		{ContractStart: date(2025, time.November, 10), ContractEnd: date(2025, time.November, 20)},
	}

	value, explanation := TurnoverRate(employees, period)
	assert.Equal(t, 0, value)
	assert.Contains(t, explanation, "defined as 0")
}

func TestDimensionGrouping(t *testing.T) {
	employees := []domain.Employee{
		{Country: "FR", Gender: "M", JobCode: "38"},
		{Country: "FR", Gender: "F", JobCode: "38"},
		{Country: "IR", Gender: "F", JobCode: "47"},
		{Country: "", Gender: "M", JobCode: ""},
	}

	byCountry := DimensionCountry.group(employees)
	assert.Len(t, byCountry, 2)
	assert.Len(t, byCountry["FR"], 2)
	assert.Len(t, byCountry["IR"], 1)

	byGenderJob := DimensionGenderJob.group(employees)
	assert.Len(t, byGenderJob, 3)
	assert.Len(t, byGenderJob["F_38"], 1)

	// Employees missing the attribute are skipped, never bucketed.
	byJob := DimensionJob.group(employees)
	_, ok := byJob[""]
	assert.False(t, ok)
}
