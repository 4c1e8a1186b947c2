package handler

import (
	"github.com/abhishek622/careercraft/internal/validate"
	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/abhishek622/careercraft/pkg/response"
	"github.com/gin-gonic/gin"
)

func (app *Application) AskChat(c *gin.Context) {
	var req model.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validate.Message(err))
		return
	}

	reply, err := app.Assistant.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		app.Logger.Sugar().Errorw("chat failed", "err", err)
		response.InternalError(c, err.Error())
		return
	}

	app.record(c.Request.Context(), model.HistoryChatAsked, nil)
	response.OK(c, model.ChatRes{Response: reply})
}
