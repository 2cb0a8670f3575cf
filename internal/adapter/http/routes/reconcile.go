package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/handlers"
)

const (
	PathReconcile = "/reconcile"
	PathAccounts  = "/accounts"
	PathHealth    = "/health"
)

func addReconcileRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, reconcileHandler *handlers.ReconcileHandler, accountHandler *handlers.AccountHandler, healthHandler *handlers.HealthHandler) {
	reconcile := rg.Group(PathReconcile, authRequired)
	{
		reconcile.POST("", reconcileHandler.TriggerReconcile)
		reconcile.GET("", reconcileHandler.GetStats)
		reconcile.POST("/import-historical", reconcileHandler.ImportHistorical)
	}

	accounts := rg.Group(PathAccounts, authRequired)
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.POST("/link", accountHandler.CreateAccountLink)
	}

	health := rg.Group(PathHealth)
	{
		health.GET("/auth", healthHandler.AuthHealth)
	}
}

func addCronRoutes(rg *gin.RouterGroup, cronHandler *handlers.CronHandler) {
	rg.GET("/cleanup-pending-donations", cronHandler.CleanupPendingDonations)
}
