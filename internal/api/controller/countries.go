package controller

import (
	"context"
	"net/http"

	"country-exchange-service/internal/domain"
	"country-exchange-service/internal/domain/dto"

	"github.com/labstack/echo/v4"
)

func (c *Controller) RefreshCountries(ctx echo.Context) error {
	// a client disconnect must not abort a refresh already in flight
	refreshCtx := context.WithoutCancel(ctx.Request().Context())

	result, err := c.service.Refresh(refreshCtx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, result)
}

func (c *Controller) ListCountries(ctx echo.Context) error {
	query := new(dto.ListQuery)
	if err := ctx.Bind(query); err != nil {
		return err
	}

	countries, err := c.service.List(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, countries)
}

func (c *Controller) GetCountry(ctx echo.Context) error {
	country, err := c.service.GetByName(ctx.Request().Context(), ctx.Param("name"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, country)
}

func (c *Controller) DeleteCountry(ctx echo.Context) error {
	if err := c.service.DeleteByName(ctx.Request().Context(), ctx.Param("name")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) GetSummaryImage(ctx echo.Context) error {
	path, err := c.service.SummaryImagePath()
	if err != nil {
		return err
	}

	return ctx.File(path)
}

func (c *Controller) GetStatus(ctx echo.Context) error {
	status, err := c.service.Status(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, status)
}

func (c *Controller) Welcome(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.WelcomeResponse{
		Message: "Welcome to the Country, Currency & Exchange API",
	})
}
