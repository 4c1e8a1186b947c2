package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.requestID())
	r.Use(app.requestLogger())
	r.Use(app.cors())
	if app.Config.Limiter.Enabled {
		r.Use(app.rateLimit())
	}

	h := app.Handler
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/ats/score", h.ScoreResume)
		api.POST("/chat/ask", h.AskChat)
		api.GET("/job-scrape", h.ScrapeJob)

		// history routes
		api.GET("/history", h.ListHistory)
		api.POST("/history", h.CreateHistory)
		api.DELETE("/history", h.ClearHistory)

		// learning hub routes
		api.GET("/learning/resources", h.ListResources)
		api.GET("/learning/resources/:id", h.GetResource)
		api.GET("/learning/video-id", h.VideoID)
	}

	return r
}
