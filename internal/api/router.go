package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TrustedSamu/Dome1v1/internal/roster"
)

// NewRouter assembles the full HTTP surface.
func NewRouter(app App, participants *roster.Roster) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(cors.Default())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/api/users")
	users.GET("", GetUsers(app))

	one := users.Group("/:name")
	one.Use(roster.RequireParticipant(participants))
	one.GET("", GetUser(app))
	one.POST("/tasks", PostTask(app))
	one.PATCH("/tasks/:taskId", PatchTask(app))
	one.POST("/tasks/daily", PostDailyTasks(app))
	one.POST("/habit", PostHabit(app))
	one.POST("/training", PostTraining(app))
	one.DELETE("/training/:trainingId", DeleteTraining(app))
	one.PATCH("/insights", PatchInsights(app))
	one.PUT("/sleep/bedtime", PutBedtime(app))
	one.PUT("/sleep/wake", PutWake(app))

	r.POST("/api/admin/reset", PostReset(app))

	return r
}
