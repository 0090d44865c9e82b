package api

import (
	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal/service"
)

func PutBedtime(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		var req service.SleepTimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateSleepTimeRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		record, err := service.RecordBedtime(c.Request.Context(), app.Users(), name, req.Time, app.Today()())
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to record bedtime")
			return
		}
		HandleSuccess(c, app.Logger(), record, nil)
	}
}

func PutWake(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		var req service.SleepTimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateSleepTimeRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		record, err := service.RecordWake(c.Request.Context(), app.Users(), name, req.Time, app.Today()())
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to record wake time")
			return
		}
		HandleSuccess(c, app.Logger(), record, nil)
	}
}
