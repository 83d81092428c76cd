package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"raahi/cmd/fx/account_fx"
	"raahi/cmd/fx/config_fx"
	"raahi/cmd/fx/controllers_fx"
	"raahi/cmd/fx/data_fx"
	"raahi/cmd/fx/db_fx"
	"raahi/cmd/fx/memcache_fx"
	"raahi/cmd/fx/planner_fx"
	"raahi/internal/api/controllers"
	"raahi/internal/config"
	"raahi/internal/services"
	"raahi/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		data_fx.Module,
		planner_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Raahi API listening on port %s", cfg.HTTP.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config            config.Config
	AccountService    services.AccountServiceInterface
	PlanController    *controllers.PlanController
	DataController    *controllers.DataController
	AccountController *controllers.AccountController
	HealthController  *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.BodyLimitMiddleware(middleware.DefaultBodyLimit))
	r.Use(middleware.CORSMiddleware(p.Config.HTTP.CORSOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/", p.HealthController.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/health", p.HealthController.Health)

	dataGroup := api.Group("")
	dataGroup.Use(middleware.APIKeyMiddleware(p.Config.Data.APIKey))
	dataGroup.GET("/weather", p.DataController.GetWeather)
	dataGroup.GET("/crowd", p.DataController.GetCrowd)
	dataGroup.GET("/currency", p.DataController.GetCurrency)
	dataGroup.GET("/hotels", p.DataController.GetHotels)
	dataGroup.GET("/pois", p.DataController.GetPOIs)
	dataGroup.GET("/pois/:city", p.DataController.GetPOIsByCity)

	aiGroup := api.Group("/ai")
	aiGroup.POST("/plan", p.PlanController.CreatePlanHandler)
	aiGroup.POST("/plan/pdf", p.PlanController.PlanPDFHandler)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", p.AccountController.Signup)
	authGroup.POST("/login", p.AccountController.Login)
	authGroup.GET("/logout", p.AccountController.Logout)

	authorized := authGroup.Group("")
	authorized.Use(middleware.JWTAuthMiddleware(p.AccountService))
	authorized.GET("/me", p.AccountController.Me)
	authorized.PUT("/update", p.AccountController.Update)
}
