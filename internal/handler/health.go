package handler

import (
	"github.com/abhishek622/careercraft/pkg/model"
	"github.com/abhishek622/careercraft/pkg/response"
	"github.com/gin-gonic/gin"
)

func (app *Application) Health(c *gin.Context) {
	response.OK(c, model.HealthRes{Status: "ok", Env: app.Env, Provider: app.Provider})
}
