package api

import (
	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal/service"
)

func PostTask(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		var req service.TaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateTaskRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		task, err := service.CreateTask(c.Request.Context(), app.Users(), name, &req, app.Today()())
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to add task")
			return
		}
		HandleSuccess(c, app.Logger(), task, nil)
	}
}

func PatchTask(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		taskID := c.Param("taskId")

		var req service.TaskUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		user, err := service.UpdateTask(c.Request.Context(), app.Users(), name, taskID, &req)
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to update task")
			return
		}
		HandleSuccess(c, app.Logger(), user, nil)
	}
}

func PostDailyTasks(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		added, err := service.SeedDailyTasks(c.Request.Context(), app.Users(), name, app.Today()())
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to seed daily tasks")
			return
		}
		HandleSuccess(c, app.Logger(), added, map[string]any{"seeded": len(added)})
	}
}

func PostHabit(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		var req service.HabitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		task, err := service.TrackHabit(c.Request.Context(), app.Users(), name, &req, app.Today()())
		if err != nil {
			handleMutationError(c, app.Logger(), err, "Failed to track habit")
			return
		}
		HandleSuccess(c, app.Logger(), task, nil)
	}
}
