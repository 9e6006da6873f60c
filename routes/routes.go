package routes

import (
	"net/http"
	"time"

	"loyaltypro-backend/config"
	"loyaltypro-backend/controllers"
	"loyaltypro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps bundles everything the router needs.
type Deps struct {
	Logger          *zap.Logger
	CORSOrigins     []string
	RateLimitStore  utils.RateLimitStore
	RateLimitMax    int
	RateLimitWindow time.Duration
	Customers       *controllers.CustomerController
	Merchants       *controllers.MerchantController
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger(deps.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(utils.SecurityHeadersMiddleware())
	r.Use(utils.RateLimitMiddleware(deps.RateLimitStore, deps.RateLimitMax, deps.RateLimitWindow))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	customers := r.Group("/customers")
	{
		customers.POST("/check-in", deps.Customers.CheckIn)
		customers.GET("", deps.Customers.GetAllCustomers)
		customers.GET("/id/:id", deps.Customers.GetCustomerByID)
		customers.GET("/:phoneNumber", deps.Customers.GetCustomer)
		customers.PUT("/:phoneNumber", deps.Customers.UpdateCustomer)
		customers.DELETE("/:phoneNumber", deps.Customers.DeleteCustomer)
	}

	merchants := r.Group("/merchants")
	{
		merchants.POST("", deps.Merchants.CreateMerchant)
		merchants.GET("", deps.Merchants.GetAllMerchants)
		merchants.GET("/id/:id", deps.Merchants.GetMerchant)
		merchants.GET("/phone/:phoneNumber", deps.Merchants.GetMerchantByPhone)
		merchants.PUT("/id/:id", deps.Merchants.UpdateMerchant)
		merchants.DELETE("/id/:id", deps.Merchants.DeleteMerchant)
	}

	return r
}
