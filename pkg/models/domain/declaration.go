package domain

// Declaration is the decoded root entity of one submitted payroll filing.
// Scalar header fields follow sequential bloc processing: the last value
// observed in file order wins.
type Declaration struct {
	Nature     string
	Type       string
	PeriodCode string
	Currency   string
	FilingDate string

	Company Company

	// ValidStatement stays true unless a structural check invalidates the
	// declaration. No check currently flips it; the contract is kept for
	// future structural validations.
	ValidStatement bool
}

type Company struct {
	Siren          string
	Apen           string
	Establishments []Establishment
}

// Establishment is a place of employment, scoped by country. Individuals are
// appended in file order.
type Establishment struct {
	Nic         string
	Country     string
	Individuals []Individual
}

type Individual struct {
	Nir          string
	FamilyName   string
	FirstNames   string
	SexCode      string
	BirthCountry string
	TechnicalID  string
	Contracts    []Contract
}

// Contract dates are kept as raw YYYYMMDD tokens; parsing and validation
// happen during employee normalization. EndDate is empty until a contract-end
// bloc sets it.
type Contract struct {
	StartDate  string
	EndDate    string
	JobCode    string
	NatureCode string
}
