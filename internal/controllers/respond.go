package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// statusResponse is the acknowledgement returned by menu item mutations
type statusResponse struct {
	Status bool `json:"status"`
}

// respondError maps err to its status code and APIError body
func respondError(ctx *gin.Context, err error) {
	status, body := models.APIErrorFor(err)
	if status >= http.StatusInternalServerError {
		log.WithFields(logrus.Fields{
			"method": ctx.Request.Method,
			"path":   ctx.FullPath(),
		}).WithError(err).Error("Request failed")
	}
	_ = ctx.Error(err)
	ctx.JSON(status, body)
}

// bindJSON decodes the request body into out, answering 400 when it cannot
func bindJSON(ctx *gin.Context, out interface{}) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "Invalid request body: "+err.Error()))
		return false
	}
	return true
}
