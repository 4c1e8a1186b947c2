package handler

import (
	"github.com/abhishek622/careercraft/internal/validate"
	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/abhishek622/careercraft/pkg/response"
	"github.com/gin-gonic/gin"
)

func (app *Application) ListHistory(c *gin.Context) {
	records, err := app.History.List(c.Request.Context())
	if err != nil {
		app.Logger.Sugar().Errorw("list history failed", "err", err)
		response.InternalError(c, "failed to load history")
		return
	}
	response.OK(c, model.HistoryListRes{Records: records})
}

// CreateHistory lets clients log events the server never sees, such as
// resume edits and exports.
func (app *Application) CreateHistory(c *gin.Context) {
	var req model.CreateHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validate.Message(err))
		return
	}

	rec, err := app.History.Log(c.Request.Context(), req.Type, req.Meta)
	if err != nil {
		app.Logger.Sugar().Errorw("create history failed", "type", req.Type, "err", err)
		response.InternalError(c, "failed to save history")
		return
	}
	response.Created(c, gin.H{"record": rec})
}

func (app *Application) ClearHistory(c *gin.Context) {
	if err := app.History.Clear(c.Request.Context()); err != nil {
		app.Logger.Sugar().Errorw("clear history failed", "err", err)
		response.InternalError(c, "failed to clear history")
		return
	}
	response.NoContent(c)
}
