package handlers

import (
	"net/http"

	"hmi-backend/middleware"
	"hmi-backend/models"
	"hmi-backend/monitoring"
	"hmi-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterOptions carries the router's dependencies. Cache and Kafka may be
// nil; the handlers degrade to store-only operation.
type RouterOptions struct {
	Repo        models.Repository
	Cache       utils.RedisClient
	Kafka       utils.KafkaProducer
	Verifier    CredentialVerifier
	CORSOrigins []string
}

func NewRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			c.JSON(http.StatusInternalServerError, internalErrorBody())
		}),
		middleware.SentryMiddleware(),
		middleware.PrometheusMetrics(),
		middleware.ErrorHandler(),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, notFoundBody())
	})

	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	apps := NewApplicationHandler(opts.Repo, opts.Kafka)
	requests := NewRequestHandler(opts.Repo, opts.Kafka)
	contact := NewContactHandler(opts.Repo, opts.Cache, opts.Kafka)
	reviews := NewReviewHandler(opts.Repo, opts.Kafka)
	admin := NewAdminHandler(opts.Verifier)

	api := router.Group("/api")
	if len(opts.CORSOrigins) > 0 {
		api.Use(corsMiddleware(opts.CORSOrigins))
	}
	{
		api.POST("/professional-applications", apps.Create)
		api.GET("/professional-applications", apps.List)
		api.DELETE("/professional-applications/:id", apps.Delete)

		api.POST("/client-requests", requests.Create)
		api.GET("/client-requests", requests.List)
		api.DELETE("/client-requests/:id", requests.Delete)

		api.GET("/contact-info", contact.Get)
		api.PUT("/contact-info", contact.Update)

		api.POST("/reviews", reviews.Create)
		api.GET("/reviews", reviews.List)
		api.GET("/reviews/:professionalName", reviews.ListByProfessional)

		api.POST("/admin/login", admin.Login)

		api.GET("/health", Health)
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}
	if wildcard {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}
