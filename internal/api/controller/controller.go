package controller

import (
	"country-exchange-service/internal/service/countries"
)

type Controller struct {
	service *countries.Service
}

func NewController(service *countries.Service) *Controller {
	return &Controller{service: service}
}
