package handler

import (
	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/abhishek622/careercraft/pkg/response"
	"github.com/gin-gonic/gin"
)

// ScrapeJob always answers 200. A missing url or a page that cannot be
// fetched produces {"jd":""}.
func (app *Application) ScrapeJob(c *gin.Context) {
	var q model.JobScrapeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.Logger.Sugar().Warnw("job scrape without url", "query", c.Request.URL.RawQuery)
		response.OK(c, model.EmptyJobScrape())
		return
	}

	res := app.Fetcher.ScrapeJob(c.Request.Context(), q.URL)
	if res.Title != nil || res.JD != "" {
		app.record(c.Request.Context(), model.HistoryJobScraped, map[string]interface{}{"url": q.URL})
	}
	response.OK(c, res)
}
