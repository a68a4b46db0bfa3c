package store

import (
	"errors"

	"country-exchange-service/internal/pkg/constants"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/dbscan"
	"github.com/jackc/pgx/v5"
)

const tableCountries = "countries"

var mapping = map[error]error{
	pgx.ErrNoRows:      constants.ErrDBNotFound,
	dbscan.ErrNotFound: constants.ErrDBNotFound,
}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel SQL builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
