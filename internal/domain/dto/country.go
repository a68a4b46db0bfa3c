package dto

import (
	"strings"

	"country-exchange-service/internal/domain"
)

// CountryFeedItem is one entry of the upstream country metadata feed.
type CountryFeedItem struct {
	Name       string         `json:"name"`
	Capital    string         `json:"capital"`
	Region     string         `json:"region"`
	Population int64          `json:"population"`
	Flag       string         `json:"flag"`
	Currencies []FeedCurrency `json:"currencies"`
}

type FeedCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RateTable is the upstream exchange-rate feed: currency code -> units per 1 USD.
type RateTable struct {
	Rates map[string]float64 `json:"rates"`
}

// ListQuery are the supported /countries filters. Sort is restricted to the
// two GDP orderings; anything else is a client error.
type ListQuery struct {
	Region   string `query:"region"`
	Currency string `query:"currency"`
	Sort     string `query:"sort" validate:"omitempty,oneof=gdp_asc gdp_desc"`
}

// Normalize folds the sort value to its canonical lower-case form, so
// ?sort=GDP_DESC passes validation. Runs after binding, before validation.
func (q *ListQuery) Normalize() {
	q.Sort = strings.ToLower(q.Sort)
}

type RefreshResult struct {
	Message        string `json:"message"`
	TotalCountries int    `json:"total_countries"`
	LastRefreshed  string `json:"last_refreshed"`
}

type StatusResult struct {
	TotalCountries  int64             `json:"total_countries"`
	LastRefreshedAt *domain.Timestamp `json:"last_refreshed_at"`
}
