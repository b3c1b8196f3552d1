package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/weekly", h.GetWeekly)
		reports.GET("/monthly", h.GetMonthly)
		reports.GET("/yearly/:year", h.GetYearly)
	}

	api := r.Group("/api/v1/reports")
	{
		api.POST("/generate", h.Generate)
		api.GET("", h.ListReports)
		api.GET("/recent", h.ListRecent)
		api.POST("/cleanup", h.Cleanup)
		api.DELETE("/cache", h.InvalidateCache)
	}
}
