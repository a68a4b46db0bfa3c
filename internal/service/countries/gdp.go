package countries

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// Multiplier range for the synthetic GDP model. The noise is deliberate:
// estimated GDP is a placeholder metric, not an economic figure.
const (
	gdpMultiplierMin = 1000
	gdpMultiplierMax = 2000
)

// EstimateGDP returns floor(population * multiplier / exchangeRate), or 0
// when either input cannot support the computation. It is the only place the
// derived field is ever produced.
func EstimateGDP(population int64, exchangeRate float64, multiplier int64) int64 {
	if population <= 0 || exchangeRate <= 0 {
		return 0
	}

	gdp := decimal.NewFromInt(population).
		Mul(decimal.NewFromInt(multiplier)).
		Div(decimal.NewFromFloat(exchangeRate)).
		Floor()

	return gdp.IntPart()
}

func randomMultiplier() int64 {
	return gdpMultiplierMin + rand.Int63n(gdpMultiplierMax-gdpMultiplierMin+1)
}
