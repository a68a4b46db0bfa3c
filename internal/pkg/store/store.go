package store

import (
	"context"

	"country-exchange-service/internal/domain"
	"country-exchange-service/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	Migrate(ctx context.Context) error
	UpsertCountries(ctx context.Context, countries []*domain.Country) error
	ListCountries(ctx context.Context, opts ListCountriesOpts) ([]*domain.Country, error)
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)
	DeleteCountryByName(ctx context.Context, name string) error
	TopByEstimatedGDP(ctx context.Context, limit uint64) ([]*domain.GDPEntry, error)
	Stats(ctx context.Context) (*domain.StoreStats, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
