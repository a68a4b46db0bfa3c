package countries

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"country-exchange-service/internal/domain"
	"country-exchange-service/internal/domain/dto"
	"country-exchange-service/internal/pkg/constants"
	"country-exchange-service/internal/pkg/logger"
	"country-exchange-service/internal/pkg/store"
	"country-exchange-service/internal/pkg/summary"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	fetchTimeout      = 30 * time.Second
	topCountriesLimit = 5
)

type Config struct {
	CountriesURL string
	ExchangeURL  string
	SummaryPath  string
}

type Service struct {
	store  store.Store
	client *http.Client
	cfg    Config
}

func NewCountriesService(st store.Store, cfg Config) *Service {
	return &Service{
		store:  st,
		client: &http.Client{Timeout: fetchTimeout},
		cfg:    cfg,
	}
}

// Refresh fetches both upstream feeds, reconciles them against the stored
// rows by name, rewrites every matched row in full, and regenerates the
// summary image. Any upstream failure aborts before anything is written.
func (s *Service) Refresh(ctx context.Context) (*dto.RefreshResult, error) {
	var (
		feed  []dto.CountryFeedItem
		rates dto.RateTable
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.fetchFeed(egCtx, "countries feed", s.cfg.CountriesURL, &feed)
	})
	eg.Go(func() error {
		return s.fetchFeed(egCtx, "exchange rates feed", s.cfg.ExchangeURL, &rates)
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	existing, err := s.store.ListCountries(ctx, store.ListCountriesOpts{})
	if err != nil {
		return nil, fmt.Errorf("store.ListCountries: %w", err)
	}
	byName := make(map[string]*domain.Country, len(existing))
	for _, c := range existing {
		byName[c.Name] = c
	}

	now := time.Now().UTC().Truncate(time.Second)
	staged := make([]*domain.Country, 0, len(feed))
	position := make(map[string]int, len(feed))
	for i := range feed {
		item := &feed[i]
		if item.Name == "" || item.Population <= 0 {
			// malformed upstream entry, dropped silently
			continue
		}

		country := buildCountry(item, rates.Rates, now)
		if pos, ok := position[item.Name]; ok {
			// the feed can repeat a name; the row is unique, last entry wins
			country.ID = staged[pos].ID
			staged[pos] = country
			continue
		}
		if prev, ok := byName[item.Name]; ok {
			country.ID = prev.ID
		} else {
			country.ID = uuid.New()
		}
		position[item.Name] = len(staged)
		staged = append(staged, country)
	}

	if err := s.store.UpsertCountries(ctx, staged); err != nil {
		return nil, fmt.Errorf("store.UpsertCountries: %w", err)
	}

	if err := s.regenerateSummary(ctx); err != nil {
		return nil, err
	}

	logger.Infof(ctx, "refreshed %d countries", len(staged))

	return &dto.RefreshResult{
		Message:        "countries refreshed successfully",
		TotalCountries: len(staged),
		LastRefreshed:  now.Format(domain.TimeFormat),
	}, nil
}

// buildCountry maps one feed entry to a full row. The currency code is the
// first listed currency's; the rate comes from the fetched table; estimated
// GDP stays 0 unless both population and a nonzero rate are present.
func buildCountry(item *dto.CountryFeedItem, rates map[string]float64, now time.Time) *domain.Country {
	country := &domain.Country{
		Name:            item.Name,
		Capital:         optional(item.Capital),
		Region:          optional(item.Region),
		Population:      item.Population,
		FlagURL:         optional(item.Flag),
		LastRefreshedAt: domain.NewTimestamp(now),
	}

	if len(item.Currencies) == 0 || item.Currencies[0].Code == "" {
		return country
	}

	code := item.Currencies[0].Code
	country.CurrencyCode = &code

	rate, ok := rates[code]
	if !ok {
		return country
	}
	country.ExchangeRate = &rate
	country.EstimatedGDP = EstimateGDP(item.Population, rate, randomMultiplier())

	return country
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *Service) fetchFeed(ctx context.Context, name, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Errorf(ctx, "%s: %s", name, err.Error())
		return fmt.Errorf("%s: %s: %w", name, err, constants.ErrUpstreamUnavailable)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		logger.Errorf(ctx, "%s: status code %d", name, resp.StatusCode)
		return fmt.Errorf("%s: status code %d: %w", name, resp.StatusCode, constants.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %s: %w", name, err, constants.ErrUpstreamUnavailable)
	}

	if err := sonic.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%s: decode: %s: %w", name, err, constants.ErrUpstreamUnavailable)
	}

	return nil
}

func (s *Service) regenerateSummary(ctx context.Context) error {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("store.Stats: %w", err)
	}

	top, err := s.store.TopByEstimatedGDP(ctx, topCountriesLimit)
	if err != nil {
		return fmt.Errorf("store.TopByEstimatedGDP: %w", err)
	}

	lastRefreshed := time.Now().UTC()
	if stats.LastRefreshedAt != nil {
		lastRefreshed = stats.LastRefreshedAt.Time
	}

	img, err := summary.Render(summary.Stats{
		TotalCountries:  stats.TotalCountries,
		TopFive:         top,
		LastRefreshedAt: lastRefreshed,
	})
	if err != nil {
		return fmt.Errorf("summary.Render: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.cfg.SummaryPath), 0o755); err != nil {
		return fmt.Errorf("create summary dir: %w", err)
	}
	if err := os.WriteFile(s.cfg.SummaryPath, img, 0o644); err != nil {
		return fmt.Errorf("write summary image: %w", err)
	}

	return nil
}
