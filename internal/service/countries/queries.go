package countries

import (
	"context"
	"errors"
	"fmt"
	"os"

	"country-exchange-service/internal/domain"
	"country-exchange-service/internal/domain/dto"
	"country-exchange-service/internal/pkg/constants"
	"country-exchange-service/internal/pkg/store"
)

func (s *Service) List(ctx context.Context, query *dto.ListQuery) ([]*domain.Country, error) {
	opts := store.ListCountriesOpts{}
	if query.Region != "" {
		opts.Region = &query.Region
	}
	if query.Currency != "" {
		opts.Currency = &query.Currency
	}
	if query.Sort != "" {
		opts.Sort = &query.Sort
	}

	countries, err := s.store.ListCountries(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store.ListCountries: %w", err)
	}
	if countries == nil {
		countries = []*domain.Country{}
	}

	return countries, nil
}

func (s *Service) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	country, err := s.store.GetCountryByName(ctx, name)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrCountryNotFound
		}
		return nil, fmt.Errorf("store.GetCountryByName: %w", err)
	}

	return country, nil
}

func (s *Service) DeleteByName(ctx context.Context, name string) error {
	if err := s.store.DeleteCountryByName(ctx, name); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.ErrCountryNotFound
		}
		return fmt.Errorf("store.DeleteCountryByName: %w", err)
	}

	return nil
}

func (s *Service) Status(ctx context.Context) (*dto.StatusResult, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Stats: %w", err)
	}

	return &dto.StatusResult{
		TotalCountries:  stats.TotalCountries,
		LastRefreshedAt: stats.LastRefreshedAt,
	}, nil
}

// SummaryImagePath returns the artifact path, or a not-found error when no
// refresh has generated it yet.
func (s *Service) SummaryImagePath() (string, error) {
	if _, err := os.Stat(s.cfg.SummaryPath); err != nil {
		return "", constants.ErrImageNotFound
	}
	return s.cfg.SummaryPath, nil
}
