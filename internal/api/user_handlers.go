package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal/storage"
)

func GetUsers(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := app.Users().GetAllUsers(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch users")
			return
		}
		HandleSuccess(c, app.Logger(), users, nil)
	}
}

func GetUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		user, err := app.Users().GetUser(c.Request.Context(), name)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				HandleError(c, app.Logger(), err, 404, "User not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to fetch user")
			return
		}
		HandleSuccess(c, app.Logger(), user, nil)
	}
}
