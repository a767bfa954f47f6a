package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"hookify/cmd/fx/account_fx"
	"hookify/cmd/fx/db_fx"
	"hookify/cmd/fx/generation_fx"
	"hookify/cmd/fx/links_fx"
	"hookify/cmd/fx/quota_fx"
	"hookify/internal/api/controllers"
	"hookify/internal/services"
	"hookify/pkg/middleware"
	"hookify/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		quota_fx.Module,
		generation_fx.Module,
		links_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tokens *utils.TokenManager,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	quotaController *controllers.QuotaController,
	generationController *controllers.GenerationController,
	linkController *controllers.LinkController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tokens, accountService,
		accountController, quotaController, generationController, linkController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	tokens *utils.TokenManager,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	quotaController *controllers.QuotaController,
	generationController *controllers.GenerationController,
	linkController *controllers.LinkController,
) {

	r.POST("/accounts/register", accountController.Register)
	r.POST("/accounts/login", accountController.Login)
	r.GET("/plans", quotaController.ListPlans)
	r.GET("/templates", generationController.Templates)
	r.GET("/r/:code", linkController.Redirect)

	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(tokens))
	authGroup.POST("/accounts/api-keys", accountController.CreateApiKey)
	authGroup.GET("/accounts/api-keys", accountController.ListApiKeys)
	authGroup.GET("/usage", quotaController.GetUsage)
	authGroup.POST("/subscription/upgrade", quotaController.UpgradePlan)
	authGroup.POST("/generate/hook", generationController.GenerateHooks)
	authGroup.POST("/generate/caption", generationController.GenerateCaptions)
	authGroup.POST("/generate/hashtag", generationController.GenerateHashtags)
	authGroup.POST("/generate/emotion", generationController.AnalyzeEmotion)
	authGroup.POST("/generate/complete", generationController.GenerateComplete)
	authGroup.GET("/generations", generationController.ListHistory)
	authGroup.GET("/generations/stats", generationController.Stats)

	apiKeyGroup := r.Group("/")
	apiKeyGroup.Use(middleware.ApiKeyMiddleware(accountService))
	apiKeyGroup.POST("/links/shorten", linkController.Shorten)
	apiKeyGroup.GET("/analytics/links", linkController.Analytics)
}
