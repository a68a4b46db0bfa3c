package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the wire format for every timestamp the API returns.
const TimeFormat = "2006-01-02T15:04:05Z"

// Timestamp serializes as TimeFormat in UTC regardless of the zone the
// database handed back.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(TimeFormat))), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unquote timestamp: %w", err)
	}
	parsed, err := time.Parse(TimeFormat, s)
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}

func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case nil:
		t.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Timestamp", src)
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

// Country is the single persisted entity: one row per country name,
// written only by the refresh pipeline.
type Country struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Capital         *string   `db:"capital" json:"capital"`
	Region          *string   `db:"region" json:"region"`
	Population      int64     `db:"population" json:"population"`
	CurrencyCode    *string   `db:"currency_code" json:"currency_code"`
	ExchangeRate    *float64  `db:"exchange_rate" json:"exchange_rate"`
	EstimatedGDP    int64     `db:"estimated_gdp" json:"estimated_gdp"`
	FlagURL         *string   `db:"flag_url" json:"flag_url"`
	LastRefreshedAt Timestamp `db:"last_refreshed_at" json:"last_refreshed_at"`
}

// GDPEntry is the (name, estimated_gdp) projection used by the summary image.
type GDPEntry struct {
	Name         string `db:"name"`
	EstimatedGDP int64  `db:"estimated_gdp"`
}

// StoreStats are the aggregates behind /status and the summary image.
type StoreStats struct {
	TotalCountries  int64      `db:"total_countries"`
	LastRefreshedAt *Timestamp `db:"last_refreshed_at"`
}
