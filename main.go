package main

import (
	"fmt"
	"log"

	"loyaltypro-backend/config"
	"loyaltypro-backend/controllers"
	"loyaltypro-backend/models"
	"loyaltypro-backend/routes"
	"loyaltypro-backend/services"
	"loyaltypro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Merchant{},
		&models.Customer{},
		&models.Transaction{},
	); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	notifier := services.NewNotificationService(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
		logger,
	)
	customerSvc := services.NewCustomerService(db, logger, notifier)
	merchantSvc := services.NewMerchantService(db, logger)

	stats := services.NewStatsService(db, logger)
	stats.Start()
	defer stats.Stop()

	limiter := utils.NewMemoryRateLimitStore()
	stopPruning := limiter.StartPruning(cfg.RateLimitWindow, cfg.RateLimitWindow)
	defer stopPruning()

	r := routes.SetupRouter(routes.Deps{
		Logger:          logger,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitStore:  limiter,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		Customers:       controllers.NewCustomerController(customerSvc, logger),
		Merchants:       controllers.NewMerchantController(merchantSvc, logger),
	})
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
