package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"vpgquote/cmd/fx/admin_fx"
	"vpgquote/cmd/fx/configurator_fx"
	"vpgquote/cmd/fx/controllers_fx"
	"vpgquote/cmd/fx/db_fx"
	"vpgquote/cmd/fx/mail_fx"
	"vpgquote/cmd/fx/memcache_fx"
	"vpgquote/cmd/fx/quote_fx"
	"vpgquote/internal/api/controllers"
	"vpgquote/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		configurator_fx.Module,
		quote_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

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
	configuratorController *controllers.ConfiguratorController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, configuratorController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	configuratorController *controllers.ConfiguratorController,
	adminController *controllers.AdminController) {

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	configuratorGroup := r.Group("/api/configurator")
	configuratorGroup.GET("/questions", configuratorController.GetQuestions)
	configuratorGroup.POST("/calculate", configuratorController.Calculate)
	configuratorGroup.POST("/submit", configuratorController.Submit)

	r.POST("/api/admin/login", adminController.Login)

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/questions", adminController.ListQuestions)
	adminGroup.POST("/questions", adminController.CreateQuestion)
	adminGroup.PUT("/questions/:id", adminController.UpdateQuestion)
	adminGroup.DELETE("/questions/:id", adminController.DeleteQuestion)
	adminGroup.PUT("/pricing", adminController.UpsertPricing)
	adminGroup.GET("/catalogue", adminController.ListCatalogue)
	adminGroup.POST("/catalogue", adminController.CreateCatalogueItem)
	adminGroup.PUT("/catalogue/:id", adminController.UpdateCatalogueItem)
	adminGroup.DELETE("/catalogue/:id", adminController.DeleteCatalogueItem)
	adminGroup.GET("/submissions", adminController.ListSubmissions)
}
