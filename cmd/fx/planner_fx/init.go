package planner_fx

import (
	"log"

	"go.uber.org/fx"

	"raahi/internal/config"
	"raahi/internal/services"
	"raahi/pkg/utils"
)

var Module = fx.Provide(
	provideLLMGateway,
	services.NewContextService,
	services.NewPlanService)

func provideLLMGateway(cfg config.Config) utils.LLMGatewayInterface {
	gateway := utils.NewLLMGateway(cfg.LLM)
	log.Printf("LLM provider: %s", gateway.Provider())
	return gateway
}
