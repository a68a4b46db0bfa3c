package constants

// viper keys
const (
	ViperKeyPort         = "PORT"
	ViperKeyDatabaseURL  = "DATABASE_URL"
	ViperKeyCountriesURL = "COUNTRIES_API_URL"
	ViperKeyExchangeURL  = "EXCHANGE_API_URL"
	ViperKeySummaryPath  = "SUMMARY_PATH"
)

const (
	DefaultPort         = 8000
	DefaultCountriesURL = "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"
	DefaultExchangeURL  = "https://open.er-api.com/v6/latest/USD"
	DefaultSummaryPath  = "cache/summary.png"
)
