package handler

import (
	"github.com/abhishek622/careercraft/internal/validate"
	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/abhishek622/careercraft/pkg/response"
	"github.com/gin-gonic/gin"
)

// ScoreResume rates resume text for ATS compatibility. Every failure,
// including model errors, is reported as 400.
func (app *Application) ScoreResume(c *gin.Context) {
	var req model.ScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validate.Message(err))
		return
	}

	res, err := app.Scorer.Score(c.Request.Context(), req.Text)
	if err != nil {
		app.Logger.Sugar().Errorw("ats scoring failed", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	app.record(c.Request.Context(), model.HistoryATSScored, map[string]interface{}{"score": res.ATSScore})
	response.OK(c, res)
}
