package countries

import (
	"context"
	"sort"

	"country-exchange-service/internal/domain"
	"country-exchange-service/internal/pkg/constants"
	"country-exchange-service/internal/pkg/store"
)

// fakeStore is an in-memory store.Store for pipeline tests.
type fakeStore struct {
	countries map[string]*domain.Country
	upsertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{countries: make(map[string]*domain.Country)}
}

func (f *fakeStore) Migrate(context.Context) error { return nil }

func (f *fakeStore) UpsertCountries(_ context.Context, countries []*domain.Country) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, c := range countries {
		clone := *c
		f.countries[c.Name] = &clone
	}
	return nil
}

func (f *fakeStore) ListCountries(_ context.Context, opts store.ListCountriesOpts) ([]*domain.Country, error) {
	var selected []*domain.Country
	for _, c := range f.countries {
		if opts.Region != nil && (c.Region == nil || *c.Region != *opts.Region) {
			continue
		}
		if opts.Currency != nil && (c.CurrencyCode == nil || *c.CurrencyCode != *opts.Currency) {
			continue
		}
		selected = append(selected, c)
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].Name < selected[j].Name })
	if opts.Sort != nil {
		switch *opts.Sort {
		case "gdp_asc":
			sort.Slice(selected, func(i, j int) bool { return selected[i].EstimatedGDP < selected[j].EstimatedGDP })
		case "gdp_desc":
			sort.Slice(selected, func(i, j int) bool { return selected[i].EstimatedGDP > selected[j].EstimatedGDP })
		}
	}

	return selected, nil
}

func (f *fakeStore) GetCountryByName(_ context.Context, name string) (*domain.Country, error) {
	c, ok := f.countries[name]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return c, nil
}

func (f *fakeStore) DeleteCountryByName(_ context.Context, name string) error {
	if _, ok := f.countries[name]; !ok {
		return constants.ErrDBNotFound
	}
	delete(f.countries, name)
	return nil
}

func (f *fakeStore) TopByEstimatedGDP(_ context.Context, limit uint64) ([]*domain.GDPEntry, error) {
	all := make([]*domain.Country, 0, len(f.countries))
	for _, c := range f.countries {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EstimatedGDP > all[j].EstimatedGDP })

	entries := make([]*domain.GDPEntry, 0, limit)
	for _, c := range all {
		if uint64(len(entries)) == limit {
			break
		}
		entries = append(entries, &domain.GDPEntry{Name: c.Name, EstimatedGDP: c.EstimatedGDP})
	}
	return entries, nil
}

func (f *fakeStore) Stats(context.Context) (*domain.StoreStats, error) {
	stats := &domain.StoreStats{TotalCountries: int64(len(f.countries))}
	for _, c := range f.countries {
		if stats.LastRefreshedAt == nil || c.LastRefreshedAt.After(stats.LastRefreshedAt.Time) {
			ts := c.LastRefreshedAt
			stats.LastRefreshedAt = &ts
		}
	}
	return stats, nil
}
