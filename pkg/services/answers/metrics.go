package answers

import (
	"fmt"
	"math"
	"time"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
)

// Metric computes one workforce figure over a set of employees and the
// reporting period, returning the value together with an audit explanation
// that embeds the computed inputs.
type Metric func(employees []domain.Employee, period domain.ReportingPeriod) (any, string)

// metrics routes leaf question ids to the global metric strategies.
var metrics = map[string]Metric{
	"S1-6_01": HeadcountAtEnd,
	"S1-6_02": AverageHeadcount,
	"S1-6_10": Leavers,
	"S1-6_11": TurnoverRate,
}

// tableMetrics routes the children of table questions; their results are
// keyed `{childId}_{bucket}`.
var tableMetrics = map[string]Metric{
	"S1-6_04a": HeadcountAtEnd,
	"S1-6_04b": AverageHeadcount,
	"S1-6_07a": HeadcountAtEnd,
	"S1-9_01a": HeadcountAtEnd,
	"S1-9_02a": HeadcountAtEnd,
	"S1-9_02b": TurnoverRate,
}

// manualQuestions are methodology questions answered by the reporting entity;
// the engine emits a placeholder instead of computing them.
var manualQuestions = map[string]struct{}{
	"S1-6_03": {},
	"S1-6_09": {},
}

// HeadcountAtEnd counts employees under contract on the last day of the
// period: contract started on or before it and not ended by it.
func HeadcountAtEnd(employees []domain.Employee, period domain.ReportingPeriod) (any, string) {
	count := headcountAt(employees, period.End)
	return count, fmt.Sprintf("%d employees under contract on %s", count, period.End.Format("2006-01-02"))
}

// AverageHeadcount is the mean of the start-of-period and end-of-period
// headcounts, rounded to one decimal.
func AverageHeadcount(employees []domain.Employee, period domain.ReportingPeriod) (any, string) {
	start := headcountAt(employees, period.Start)
	end := headcountAt(employees, period.End)
	average := math.Round(float64(start+end)/2*10) / 10
	return average, fmt.Sprintf("average of %d employees on %s and %d on %s",
		start, period.Start.Format("2006-01-02"), end, period.End.Format("2006-01-02"))
}

// Leavers counts employees whose contract end date falls within the period,
// boundaries included.
func Leavers(employees []domain.Employee, period domain.ReportingPeriod) (any, string) {
	count := countLeavers(employees, period)
	return count, fmt.Sprintf("%d contracts ended between %s and %s",
		count, period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
}

// TurnoverRate divides leavers by the start-of-period headcount, as a
// percentage rounded to the nearest integer. Note the denominator is the
// start-of-period headcount, not the average headcount reported alongside it.
// A zero denominator yields exactly 0.
func TurnoverRate(employees []domain.Employee, period domain.ReportingPeriod) (any, string) {
	start := headcountAt(employees, period.Start)
	leavers := countLeavers(employees, period)

	if start == 0 {
		return 0, "no employees at period start, turnover rate defined as 0"
	}

	rate := int(math.Round(float64(leavers) / float64(start) * 100))
	return rate, fmt.Sprintf("%d leavers out of %d employees at period start", leavers, start)
}

func headcountAt(employees []domain.Employee, at time.Time) int {
	count := 0
	for _, employee := range employees {
		if employee.ContractStart == nil || employee.ContractStart.After(at) {
			continue
		}
		if employee.ContractEnd != nil && !employee.ContractEnd.After(at) {
			continue
		}
		count++
	}
	return count
}

func countLeavers(employees []domain.Employee, period domain.ReportingPeriod) int {
	count := 0
	for _, employee := range employees {
		end := employee.ContractEnd
		if end == nil {
			continue
		}
		if end.Before(period.Start) || end.After(period.End) {
			continue
		}
		count++
	}
	return count
}
