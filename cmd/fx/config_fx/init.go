package config_fx

import (
	"go.uber.org/fx"

	"raahi/internal/config"
)

var Module = fx.Provide(config.Load)
