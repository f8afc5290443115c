package workforce

import (
	"strconv"
	"time"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
)

// NormalizeEmployees flattens the declaration graph into one employee record
// per individual, combining the establishment's country with the individual's
// most recent contract (the last one emitted by the source).
func NormalizeEmployees(decl *domain.Declaration) []domain.Employee {
	var employees []domain.Employee

	for _, est := range decl.Company.Establishments {
		for _, ind := range est.Individuals {
			employee := domain.Employee{
				ID:           employeeID(ind),
				Country:      est.Country,
				BirthCountry: ind.BirthCountry,
				Gender:       normalizeGender(ind.SexCode),
			}
			if n := len(ind.Contracts); n > 0 {
				contract := ind.Contracts[n-1]
				employee.ContractStart = ParseDate(contract.StartDate)
				employee.ContractEnd = ParseDate(contract.EndDate)
				employee.JobCode = contract.JobCode
			}
			employees = append(employees, employee)
		}
	}

	return employees
}

func employeeID(ind domain.Individual) string {
	if ind.Nir != "" {
		return ind.Nir
	}
	return ind.TechnicalID
}

// normalizeGender zero-pads the sex code to two digits: "01" is male, "02"
// female, anything else unknown.
func normalizeGender(code string) string {
	if len(code) == 1 {
		code = "0" + code
	}
	switch code {
	case "01":
		return "M"
	case "02":
		return "F"
	}
	return ""
}

// ParseDate decodes an 8-digit YYYYMMDD token. The constructed date must
// round-trip to the same year, month and day, which rejects overflows like
// February 30. Returns nil for anything invalid.
func ParseDate(token string) *time.Time {
	if len(token) != 8 {
		return nil
	}

	year, err := strconv.Atoi(token[:4])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(token[4:6])
	if err != nil {
		return nil
	}
	day, err := strconv.Atoi(token[6:])
	if err != nil {
		return nil
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return nil
	}
	return &date
}
