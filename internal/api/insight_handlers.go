package api

import (
	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal/service"
)

func PatchInsights(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		var req service.InsightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateInsightRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		insight, err := service.UpsertInsight(c.Request.Context(), app.Users(), name, &req, app.Today()())
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to save insight")
			return
		}
		HandleSuccess(c, app.Logger(), insight, nil)
	}
}
