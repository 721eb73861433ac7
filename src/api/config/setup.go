package config

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API
type APIConfig struct {
	DB          *sql.DB
	Version     string
	ServiceName string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		DB:          nil,
		Version:     "dev",
		ServiceName: "sales-service",
	}
}

// SetupAPIModule registra los endpoints de health check y versión
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	healthHandler := func(c *gin.Context) {
		status := "ok"
		dbStatus := "disconnected"

		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err == nil {
				dbStatus = "connected"
			} else {
				status = "degraded"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"service":   cfg.ServiceName,
			"version":   cfg.Version,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.GET("/health", healthHandler)
	v1.GET("/health", healthHandler)
}
