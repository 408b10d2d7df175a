package api

import (
	"github.com/gin-gonic/gin"

	"github.com/siftworks/botsift/internal/telemetry"
)

// SetupRoutes registers all routes on the router.
func SetupRoutes(router *gin.Engine, handler *Handler, tel *telemetry.Provider) {
	router.GET("/healthz", handler.Healthz)
	router.GET("/metrics", gin.WrapH(tel.Handler()))

	v1 := router.Group("/api/v1")

	analyze := v1.Group("/analyze")
	analyze.POST("", handler.Analyze)            // POST /api/v1/analyze
	analyze.POST("/video", handler.AnalyzeVideo) // POST /api/v1/analyze/video
	analyze.POST("/csv", handler.AnalyzeCSV)     // POST /api/v1/analyze/csv

	phrases := v1.Group("/phrases")
	phrases.GET("", handler.ListPhrases)         // GET /api/v1/phrases
	phrases.POST("", handler.CreatePhrase)       // POST /api/v1/phrases
	phrases.DELETE("/:id", handler.DeletePhrase) // DELETE /api/v1/phrases/:id

	v1.GET("/llm/health", handler.SecondaryHealth) // GET /api/v1/llm/health
}
