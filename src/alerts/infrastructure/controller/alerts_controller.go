package controller

import (
	"log"
	"net/http"

	"github.com/oscargustin/Ferremas/src/alerts/application/usecase"

	"github.com/gin-gonic/gin"
)

// AlertsController maneja las peticiones HTTP del log de notificaciones
type AlertsController struct {
	alertLog *usecase.AlertLog
}

// NewAlertsController crea una nueva instancia del controlador
func NewAlertsController(alertLog *usecase.AlertLog) *AlertsController {
	return &AlertsController{alertLog: alertLog}
}

// RegisterRoutes registra las rutas del controlador
func (c *AlertsController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/alerts", c.ListAlerts)

	log.Println("Rutas Alerts disponibles:")
	log.Println("  GET    /api/v1/alerts")
}

// ListAlerts devuelve las notificaciones vigentes, más recientes primero
func (c *AlertsController) ListAlerts(ctx *gin.Context) {
	entries := c.alertLog.Entries()
	ctx.JSON(http.StatusOK, gin.H{
		"notifications": entries,
		"total_count":   len(entries),
	})
}
