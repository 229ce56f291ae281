package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"classical-cipher-backend/config"
)

// NewRouter wires the API routes, CORS and the request body limit.
func NewRouter(cfg config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"X-Analysis-ID"}
	router.Use(cors.New(corsConfig))
	router.Use(limitBody(cfg.Server.MaxBodyBytes))

	cipherHandler := NewCipherHandler(cfg.Keys)

	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)
		api.GET("/ciphers", cipherHandler.ListCiphers)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.Encrypt)
			cipher.POST("/decrypt", cipherHandler.Decrypt)
		}

		api.POST("/analyze", cipherHandler.Analyze)
		api.GET("/analyze/chart", cipherHandler.FrequencyChart)
		api.POST("/analyze/chart", cipherHandler.FrequencyChart)
	}

	return router
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
