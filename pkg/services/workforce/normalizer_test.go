package workforce

import (
	"testing"
	"time"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmployees(t *testing.T) {
	decl := &domain.Declaration{
		Company: domain.Company{
			Establishments: []domain.Establishment{
				{
					Country: "FR",
					Individuals: []domain.Individual{
						{
							Nir:          "1850577000123",
							SexCode:      "01",
							BirthCountry: "FR",
							Contracts: []domain.Contract{
								{StartDate: "20240301", JobCode: "38"},
								{StartDate: "20251001", EndDate: "20251115", JobCode: "52"},
							},
						},
						{
							TechnicalID: "TMP-42",
							SexCode:     "2",
						},
					},
				},
			},
		},
	}

	employees := NormalizeEmployees(decl)
	require.Len(t, employees, 2)

	first := employees[0]
	assert.Equal(t, "1850577000123", first.ID)
	assert.Equal(t, "FR", first.Country)
	assert.Equal(t, "M", first.Gender)
	// The most recent contract wins.
	assert.Equal(t, "52", first.JobCode)
	require.NotNil(t, first.ContractStart)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), *first.ContractStart)
	require.NotNil(t, first.ContractEnd)
	assert.Equal(t, time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC), *first.ContractEnd)

	second := employees[1]
	assert.Equal(t, "TMP-42", second.ID)
	// Single-digit sex codes are zero-padded before mapping.
	assert.Equal(t, "F", second.Gender)
	assert.Nil(t, second.ContractStart)
	assert.Empty(t, second.JobCode)
}

func TestNormalizeGender_UnknownCodes(t *testing.T) {
	for _, ind := range []domain.Individual{{SexCode: "03"}, {SexCode: ""}, {SexCode: "xx"}} {
		decl := &domain.Declaration{Company: domain.Company{Establishments: []domain.Establishment{
			{Individuals: []domain.Individual{ind}},
		}}}
		employees := NormalizeEmployees(decl)
		require.Len(t, employees, 1)
		assert.Empty(t, employees[0].Gender)
	}
}

func TestParseDate(t *testing.T) {
	date := ParseDate("20251130")
	require.NotNil(t, date)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, time.November, date.Month())
	assert.Equal(t, 30, date.Day())

	// February 30 does not round-trip.
	assert.Nil(t, ParseDate("20250230"))
	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("2025-11-30"))
	assert.Nil(t, ParseDate("2025113"))
}

func TestExtractPeriod(t *testing.T) {
	period, err := ExtractPeriod(&domain.Declaration{PeriodCode: "202511"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), period.End)

	// 8-digit codes keep only year and month.
	period, err = ExtractPeriod(&domain.Declaration{PeriodCode: "20251101"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), period.End)

	// Leap year.
	period, err = ExtractPeriod(&domain.Declaration{PeriodCode: "202402"})
	require.NoError(t, err)
	assert.Equal(t, 29, period.End.Day())
}

func TestExtractPeriod_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"missing", ""},
		{"wrong length", "2025"},
		{"not numeric", "2025AB"},
		{"year too small", "189912"},
		{"year too large", "210101"},
		{"month zero", "202500"},
		{"month too large", "202513"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractPeriod(&domain.Declaration{PeriodCode: tc.code})
			assert.Error(t, err)
		})
	}
}
