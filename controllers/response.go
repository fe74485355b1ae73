package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clubcaddy/backend/apperrors"
)

// Envelope is the uniform response body every endpoint returns.
type Envelope struct {
	Success    bool        `json:"success"`
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	StatusCode int         `json:"statusCode"`
}

func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Envelope{
		Success:    true,
		Status:     "success",
		Message:    message,
		Data:       data,
		StatusCode: code,
	})
}

func respondFailure(c *gin.Context, code int, message string) {
	c.JSON(code, Envelope{
		Success:    false,
		Status:     "failure",
		Message:    message,
		Data:       nil,
		StatusCode: code,
	})
}

// respondNotFound reports an owned-resource miss. The SPA expects HTTP 200
// with success:false and null data here, not a 404; preserved for client
// compatibility.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{
		Success:    false,
		Status:     "failure",
		Message:    message,
		Data:       nil,
		StatusCode: http.StatusOK,
	})
}

// respondError maps a service error onto the envelope. Internal detail stays
// in the logs; 5xx-class responses carry only the generic message.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr.Code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", appErr.Code),
			zap.Error(appErr),
		)
	}
	respondFailure(c, appErr.Code, appErr.Message)
}
