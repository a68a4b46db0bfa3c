package store

import (
	"context"
	"fmt"
)

// Name carries a unique constraint so the refresh reconciliation can rely on
// at most one row per country.
const schemaDDL = `
create table if not exists countries (
	id uuid primary key,
	name text not null unique,
	capital text,
	region text,
	population bigint not null check (population >= 0),
	currency_code text,
	exchange_rate double precision,
	estimated_gdp bigint not null default 0,
	flag_url text,
	last_refreshed_at timestamptz not null
)`

func (s *store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("migrate countries schema: %w", err)
	}
	return nil
}
