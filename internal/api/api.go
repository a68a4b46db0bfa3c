package api

import (
	"context"
	"errors"
	"net/http"

	"country-exchange-service/internal/api/controller"
	"country-exchange-service/internal/pkg/logger"
	"country-exchange-service/internal/pkg/store"
	"country-exchange-service/internal/service/countries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type APIService struct {
	router           *echo.Echo
	countriesService *countries.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, cfg countries.Config) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type"},
	}))

	svc.countriesService = countries.NewCountriesService(store, cfg)

	cntrl := controller.NewController(svc.countriesService)

	svc.router.GET("/", cntrl.Welcome)
	svc.router.GET("/status", cntrl.GetStatus)

	group := svc.router.Group("/countries")
	group.POST("/refresh", cntrl.RefreshCountries)
	group.GET("", cntrl.ListCountries)
	group.GET("/image", cntrl.GetSummaryImage)
	group.GET("/:name", cntrl.GetCountry)
	group.DELETE("/:name", cntrl.DeleteCountry)

	return svc, nil
}
