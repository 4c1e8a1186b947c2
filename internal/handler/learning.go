package handler

import (
	"github.com/abhishek622/careercraft/internal/learning"
	"github.com/abhishek622/careercraft/internal/validate"
	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/abhishek622/careercraft/pkg/response"
	"github.com/gin-gonic/gin"
)

func (app *Application) ListResources(c *gin.Context) {
	var q model.ListResourcesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, validate.Message(err))
		return
	}

	response.OK(c, model.ResourceListRes{
		Resources: app.Catalog.List(q.Topic),
		Topics:    app.Catalog.Topics(),
	})
}

func (app *Application) GetResource(c *gin.Context) {
	res, ok := app.Catalog.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "resource not found")
		return
	}

	app.record(c.Request.Context(), model.HistoryResourceViewed, map[string]interface{}{"id": res.ID})
	response.OK(c, res)
}

func (app *Application) VideoID(c *gin.Context) {
	var q model.VideoIDQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "url is required")
		return
	}
	response.OK(c, model.VideoIDRes{VideoID: learning.YouTubeVideoID(q.URL)})
}
