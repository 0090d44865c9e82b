package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal"
	"github.com/TrustedSamu/Dome1v1/internal/response"
	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(msg + ": " + err.Error())
	case 404:
		resp = response.NotFound(msg + ": " + err.Error())
	case 500:
		resp = response.InternalError(msg + ": " + err.Error())
	default:
		resp = response.NewAppError(status, msg+": "+err.Error())
	}
	c.JSON(status, resp)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Debugf("[request_id=%s] Success", requestID)
	c.JSON(200, response.Success(data, meta))
}

// handleMutationError maps a missing user on a mutating call to an empty
// success, per the store contract; everything else is a generic failure.
func handleMutationError(c *gin.Context, logger internal.Logger, err error, msg string) {
	if errors.Is(err, storage.ErrUserNotFound) {
		HandleSuccess(c, logger, nil, nil)
		return
	}
	HandleError(c, logger, err, 500, msg)
}
