package store

import (
	"context"
	"fmt"

	"country-exchange-service/internal/domain"
	"country-exchange-service/internal/pkg/constants"
	"country-exchange-service/internal/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

var countryColumns = []string{
	"id", "name", "capital", "region", "population",
	"currency_code", "exchange_rate", "estimated_gdp", "flag_url", "last_refreshed_at",
}

// ListCountriesOpts are the optional /countries filters. Sort must be one of
// gdp_asc/gdp_desc and is validated before it reaches the store.
type ListCountriesOpts struct {
	Region   *string
	Currency *string
	Sort     *string
}

// UpsertCountries writes the whole refresh batch as one statement, so either
// every staged row lands or none does. Name is the reconciliation key.
func (s *store) UpsertCountries(ctx context.Context, countries []*domain.Country) error {
	if len(countries) == 0 {
		return nil
	}

	if _, err := s.pool.Execx(ctx, upsertCountriesQuery(countries)); err != nil {
		logger.Errorf(ctx, "upsert countries: %s", err.Error())
		return fmt.Errorf("upsert countries: %w", err)
	}

	return nil
}

func upsertCountriesQuery(countries []*domain.Country) sq.InsertBuilder {
	query := builder().Insert(tableCountries).Columns(countryColumns...)

	for _, c := range countries {
		query = query.Values(
			c.ID, c.Name, c.Capital, c.Region, c.Population,
			c.CurrencyCode, c.ExchangeRate, c.EstimatedGDP, c.FlagURL, c.LastRefreshedAt,
		)
	}

	return query.Suffix(`
on conflict (name)
do update
set
	capital = excluded.capital,
	region = excluded.region,
	population = excluded.population,
	currency_code = excluded.currency_code,
	exchange_rate = excluded.exchange_rate,
	estimated_gdp = excluded.estimated_gdp,
	flag_url = excluded.flag_url,
	last_refreshed_at = excluded.last_refreshed_at`)
}

func (s *store) ListCountries(ctx context.Context, opts ListCountriesOpts) ([]*domain.Country, error) {
	var selected []*domain.Country
	if err := s.pool.Selectx(ctx, &selected, listCountriesQuery(opts)); err != nil {
		logger.Errorf(ctx, "list countries: %s", err.Error())
		return nil, fmt.Errorf("list countries: %w", err)
	}

	return selected, nil
}

func listCountriesQuery(opts ListCountriesOpts) sq.SelectBuilder {
	query := builder().Select(countryColumns...).From(tableCountries)

	if opts.Region != nil {
		query = query.Where(sq.Eq{"region": *opts.Region})
	}
	if opts.Currency != nil {
		query = query.Where(sq.Eq{"currency_code": *opts.Currency})
	}
	if opts.Sort != nil {
		switch *opts.Sort {
		case "gdp_asc":
			query = query.OrderBy("estimated_gdp asc")
		case "gdp_desc":
			query = query.OrderBy("estimated_gdp desc")
		}
	}

	return query
}

func (s *store) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	query := builder().Select(countryColumns...).
		From(tableCountries).
		Where(sq.Eq{"name": name})

	var selected domain.Country
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) DeleteCountryByName(ctx context.Context, name string) error {
	query := builder().Delete(tableCountries).
		Where(sq.Eq{"name": name})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		logger.Errorf(ctx, "delete country: %s", err.Error())
		return fmt.Errorf("delete country: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) TopByEstimatedGDP(ctx context.Context, limit uint64) ([]*domain.GDPEntry, error) {
	query := builder().Select("name", "estimated_gdp").
		From(tableCountries).
		OrderBy("estimated_gdp desc").
		Limit(limit)

	var selected []*domain.GDPEntry
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("top countries by gdp: %w", err)
	}

	return selected, nil
}

func (s *store) Stats(ctx context.Context) (*domain.StoreStats, error) {
	query := builder().Select(
		"count(id) as total_countries",
		"max(last_refreshed_at) as last_refreshed_at",
	).From(tableCountries)

	var selected domain.StoreStats
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, fmt.Errorf("country stats: %w", err)
	}

	return &selected, nil
}
