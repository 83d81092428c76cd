package data_fx

import (
	"go.uber.org/fx"

	"raahi/internal/repositories"
	"raahi/internal/services"
)

var Module = fx.Provide(
	repositories.NewWeatherRepository,
	repositories.NewCrowdRepository,
	repositories.NewCurrencyRepository,
	repositories.NewHotelRepository,
	repositories.NewPOIRepository,
	services.NewDataService)
