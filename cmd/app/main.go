package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"blockpass/cmd/fx/account_fx"
	"blockpass/cmd/fx/contract_fx"
	"blockpass/cmd/fx/db_fx"
	"blockpass/cmd/fx/facility_fx"
	"blockpass/cmd/fx/ocr_fx"
	"blockpass/cmd/fx/pass_fx"
	"blockpass/cmd/fx/settlement_fx"
	"blockpass/internal/api/controllers"
	"blockpass/internal/services"
	"blockpass/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		facility_fx.Module,
		pass_fx.Module,
		settlement_fx.Module,
		contract_fx.Module,
		ocr_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedFacilities),
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

func SeedFacilities(facilityService services.FacilityServiceInterface) {
	if err := facilityService.SeedIfEmpty(context.Background()); err != nil {
		log.Printf("Facility seed failed: %v", err)
	}
}

func ProvideRouter(
	db *gorm.DB,
	accountController *controllers.AccountController,
	facilityController *controllers.FacilityController,
	passController *controllers.PassController,
	orderController *controllers.OrderController,
	contractController *controllers.ContractController,
	ocrController *controllers.OCRController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/db/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, accountController, facilityController, passController, orderController, contractController, ocrController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	facilityController *controllers.FacilityController,
	passController *controllers.PassController,
	orderController *controllers.OrderController,
	contractController *controllers.ContractController,
	ocrController *controllers.OCRController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	facilityGroup := r.Group("/facilities")
	facilityGroup.GET("", facilityController.ListFacilities)
	facilityGroup.POST("/seed", facilityController.Seed)

	businessGroup := r.Group("/business")
	businessGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("business"))
	businessGroup.POST("/passes", passController.CreatePass)
	businessGroup.GET("/passes", passController.ListMyPasses)
	businessGroup.POST("/passes/:id/deploy", passController.DeployPass)

	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.JWTAuthMiddleware())
	orderGroup.POST("/purchase/:passId", orderController.Purchase)
	orderGroup.POST("/cancel/:id", orderController.Cancel)
	orderGroup.POST("/refund/:id", orderController.Refund)
	orderGroup.GET("/my", orderController.MyOrders)

	contractGroup := r.Group("/contracts")
	contractGroup.POST("/solidity", contractController.GenerateSolidity)

	ocrGroup := r.Group("/ocr")
	ocrGroup.GET("/documents/:id/image", ocrController.GetImage)
	authedOcr := ocrGroup.Group("")
	authedOcr.Use(middleware.JWTAuthMiddleware())
	authedOcr.POST("/upload", ocrController.Upload)
	authedOcr.GET("/documents", ocrController.ListMyDocuments)
	authedOcr.GET("/documents/:id", ocrController.GetDocument)
	authedOcr.POST("/contracts", ocrController.CreateContract)
}
