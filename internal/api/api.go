package api

import (
	"strings"
	"time"

	"github.com/dulceandina/panela-backend/internal/api/handlers"
	"github.com/dulceandina/panela-backend/internal/api/middleware"
	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/dulceandina/panela-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Analytics *service.AnalyticsService
	Catalog   *service.CatalogService
}

func NewRouter(services *Services, issuer *middleware.TokenIssuer, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	apiGroup.Use(middleware.RequireAuth(issuer))

	if services != nil {
		if services.Analytics != nil {
			analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics)

			// The full report exposes margins and supplier spend, so it
			// stays behind the admin role.
			apiGroup.GET("/analytics", middleware.RequireRole(domain.RoleAdmin), analyticsHandler.GetReport)

			dashboardGroup := apiGroup.Group("/dashboard")
			{
				dashboardGroup.GET("/inventory_stats", analyticsHandler.GetInventoryStats)
				dashboardGroup.GET("/sales_stats", analyticsHandler.GetSalesStats)
				dashboardGroup.GET("/procurement_stats", analyticsHandler.GetProcurementStats)
			}
		}

		if services.Catalog != nil {
			catalogHandler := handlers.NewCatalogHandler(services.Catalog)
			apiGroup.GET("/lots", catalogHandler.ListLots)
			apiGroup.GET("/suppliers", catalogHandler.ListSuppliers)
			apiGroup.GET("/supplies", catalogHandler.ListSupplyItems)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
