package api

import (
	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal/service"
)

func PostTraining(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		var req service.TrainingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateTrainingRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.AddTraining(c.Request.Context(), app.Users(), name, &req, app.Today()())
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to add training")
			return
		}
		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func DeleteTraining(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		trainingID := c.Param("trainingId")

		training, err := service.DeleteTraining(c.Request.Context(), app.Users(), name, trainingID)
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to delete training")
			return
		}
		HandleSuccess(c, app.Logger(), training, nil)
	}
}
