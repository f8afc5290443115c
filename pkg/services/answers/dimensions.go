package answers

import "github.com/hr-tools/social-atlas/pkg/models/domain"

// Dimension is the closed set of table groupings. Adding a table means adding
// a variant here and routing it in tableDimensions, not another string branch
// in the walk.
type Dimension int

const (
	DimensionCountry Dimension = iota
	// DimensionRegion groups by country: the declaration carries no finer
	// geographic granularity, so country is the regulatory fallback.
	DimensionRegion
	DimensionGenderJob
	DimensionJob
)

// tableDimensions routes table question ids to their grouping dimension.
var tableDimensions = map[string]Dimension{
	"S1-6_04": DimensionCountry,
	"S1-6_07": DimensionRegion,
	"S1-9_01": DimensionGenderJob,
	"S1-9_02": DimensionJob,
}

// group partitions employees into buckets keyed by the dimension value.
// Employees missing the attribute land in the unknown bucket, which is
// skipped.
func (d Dimension) group(employees []domain.Employee) map[string][]domain.Employee {
	buckets := make(map[string][]domain.Employee)
	for _, employee := range employees {
		key := d.key(employee)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], employee)
	}
	return buckets
}

func (d Dimension) key(employee domain.Employee) string {
	switch d {
	case DimensionCountry, DimensionRegion:
		return employee.Country
	case DimensionGenderJob:
		if employee.Gender == "" || employee.JobCode == "" {
			return ""
		}
		return employee.Gender + "_" + employee.JobCode
	case DimensionJob:
		return employee.JobCode
	}
	return ""
}
