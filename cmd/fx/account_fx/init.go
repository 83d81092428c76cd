package account_fx

import (
	"go.uber.org/fx"

	"raahi/internal/config"
	"raahi/internal/repositories"
	"raahi/internal/services"
	"raahi/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer,
	repositories.NewAccountRepository,
	services.NewAccountService)

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
