package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"country-exchange-service/internal/api"
	"country-exchange-service/internal/pkg/constants"
	"country-exchange-service/internal/pkg/logger"
	"country-exchange-service/internal/pkg/store"
	"country-exchange-service/internal/pkg/store/xpgx"
	"country-exchange-service/internal/service/countries"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	// .env is optional outside local development
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault(constants.ViperKeyPort, constants.DefaultPort)
	viper.SetDefault(constants.ViperKeyCountriesURL, constants.DefaultCountriesURL)
	viper.SetDefault(constants.ViperKeyExchangeURL, constants.DefaultExchangeURL)
	viper.SetDefault(constants.ViperKeySummaryPath, constants.DefaultSummaryPath)

	dsn := viper.GetString(constants.ViperKeyDatabaseURL)
	if dsn == "" {
		logger.Fatal(ctx, "DATABASE_URL is not set")
	}

	pool, err := xpgx.Connect(ctx, dsn)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool)
	if err := st.Migrate(ctx); err != nil {
		logger.Fatal(ctx, err)
	}

	svc, err := api.NewAPIService(st, countries.Config{
		CountriesURL: viper.GetString(constants.ViperKeyCountriesURL),
		ExchangeURL:  viper.GetString(constants.ViperKeyExchangeURL),
		SummaryPath:  viper.GetString(constants.ViperKeySummaryPath),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(fmt.Sprintf(":%d", viper.GetInt(constants.ViperKeyPort)))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}
