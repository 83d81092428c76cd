package controllers_fx

import (
	"go.uber.org/fx"

	"raahi/internal/api/controllers"
	"raahi/internal/config"
)

var Module = fx.Options(
	fx.Provide(provideCookieSettings),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewDataController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewHealthController))

func provideCookieSettings(cfg config.Config) controllers.CookieSettings {
	return controllers.CookieSettings{
		Secure: cfg.Auth.CookieSecure,
		MaxAge: cfg.Auth.TokenTTL,
	}
}
