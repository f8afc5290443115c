package dsn

import (
	"context"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Block codes needed for workforce metrics. The rest of the standard is
// ignored by the builder.
const (
	blockHeader        = "S20.G00.05"
	blockCompany       = "S21.G00.06"
	blockEstablishment = "S21.G00.11"
	blockIndividual    = "S21.G00.30"
	blockContract      = "S21.G00.40"
	blockContractEnd   = "S21.G00.62"
)

// Rubrique numbers within the blocks above.
const (
	fieldNature     = "001"
	fieldType       = "002"
	fieldPeriod     = "005"
	fieldFilingDate = "007"
	fieldCurrency   = "010"

	fieldSiren = "001"
	fieldApen  = "003"

	fieldNic        = "001"
	fieldEstCountry = "015"

	fieldNir          = "001"
	fieldFamilyName   = "002"
	fieldFirstNames   = "004"
	fieldSexCode      = "005"
	fieldBirthCountry = "015"
	fieldTechnicalID  = "019"

	fieldContractStart  = "001"
	fieldJobCode        = "004"
	fieldContractNature = "007"
	fieldContractEnd    = "001"
)

// cursor tracks the most recently created parent at each level of the graph.
// Child blocs attach to it; the format's convention is that a parent bloc
// always precedes its children in file order. -1 means no parent seen yet.
type cursor struct {
	est int
	ind int
	con int
}

// BuildDeclaration runs a single left-to-right scan over the rows,
// dispatching on block code. Detail blocs with no eligible parent are logged
// and dropped, never fatal. Unrecognized block codes advance by one row so an
// unknown block can never swallow a following known one.
func BuildDeclaration(ctx context.Context, rows []Row) *domain.Declaration {
	logger := zerolog.Ctx(ctx)

	decl := &domain.Declaration{ValidStatement: true}
	cur := cursor{est: -1, ind: -1, con: -1}

	i := 0
	for i < len(rows) {
		start := i
		var bloc Bloc

		switch rows[i].Block {
		case blockHeader:
			bloc, i = CollectBloc(rows, i)
			applyHeader(decl, bloc)

		case blockCompany:
			bloc, i = CollectBloc(rows, i)
			if v, ok := bloc[fieldSiren]; ok {
				decl.Company.Siren = v
			}
			if v, ok := bloc[fieldApen]; ok {
				decl.Company.Apen = v
			}

		case blockEstablishment:
			bloc, i = CollectBloc(rows, i)
			decl.Company.Establishments = append(decl.Company.Establishments, domain.Establishment{
				Nic:     bloc[fieldNic],
				Country: bloc[fieldEstCountry],
			})
			cur.est = len(decl.Company.Establishments) - 1
			cur.ind, cur.con = -1, -1

		case blockIndividual:
			bloc, i = CollectBloc(rows, i)
			if cur.est < 0 {
				logger.Warn().
					Str("block", blockIndividual).
					Int("row", start).
					Msg("individual bloc with no establishment, dropped")
				continue
			}
			est := &decl.Company.Establishments[cur.est]
			est.Individuals = append(est.Individuals, domain.Individual{
				Nir:          bloc[fieldNir],
				FamilyName:   bloc[fieldFamilyName],
				FirstNames:   bloc[fieldFirstNames],
				SexCode:      bloc[fieldSexCode],
				BirthCountry: bloc[fieldBirthCountry],
				TechnicalID:  bloc[fieldTechnicalID],
			})
			cur.ind = len(est.Individuals) - 1
			cur.con = -1

		case blockContract:
			bloc, i = CollectBloc(rows, i)
			if cur.est < 0 || cur.ind < 0 {
				logger.Warn().
					Str("block", blockContract).
					Int("row", start).
					Msg("contract bloc with no individual, dropped")
				continue
			}
			ind := &decl.Company.Establishments[cur.est].Individuals[cur.ind]
			ind.Contracts = append(ind.Contracts, domain.Contract{
				StartDate:  bloc[fieldContractStart],
				JobCode:    bloc[fieldJobCode],
				NatureCode: bloc[fieldContractNature],
			})
			cur.con = len(ind.Contracts) - 1

		case blockContractEnd:
			bloc, i = CollectBloc(rows, i)
			if cur.est < 0 || cur.ind < 0 || cur.con < 0 {
				logger.Warn().
					Str("block", blockContractEnd).
					Int("row", start).
					Msg("contract-end bloc with no contract, dropped")
				continue
			}
			ind := &decl.Company.Establishments[cur.est].Individuals[cur.ind]
			if v, ok := bloc[fieldContractEnd]; ok {
				ind.Contracts[cur.con].EndDate = v
			}

		default:
			i++
		}
	}

	return decl
}

// applyHeader assigns only the fields present in the bloc; across repeated
// header blocs the last value in file order wins.
func applyHeader(decl *domain.Declaration, bloc Bloc) {
	if v, ok := bloc[fieldNature]; ok {
		decl.Nature = v
	}
	if v, ok := bloc[fieldType]; ok {
		decl.Type = v
	}
	if v, ok := bloc[fieldPeriod]; ok {
		decl.PeriodCode = v
	}
	if v, ok := bloc[fieldFilingDate]; ok {
		decl.FilingDate = v
	}
	if v, ok := bloc[fieldCurrency]; ok {
		decl.Currency = v
	}
}
