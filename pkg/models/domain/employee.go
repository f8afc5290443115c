package domain

import "time"

// Employee is the flattened projection of one Individual, combining
// establishment-level and contract-level attributes. One Employee per
// Individual, built from the individual's most recent contract.
type Employee struct {
	ID            string
	Country       string // employment country, from the establishment
	BirthCountry  string
	Gender        string // "M", "F" or empty when unknown
	ContractStart *time.Time
	ContractEnd   *time.Time
	JobCode       string
}
