package api

import (
	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal/metrics"
	"github.com/TrustedSamu/Dome1v1/internal/service"
)

// PostReset triggers the daily reset outside its schedule. Useful for ops
// and for exercising the rollover end to end.
func PostReset(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.ResetRunsTotal.Inc()
		winner, err := service.RunDailyReset(c.Request.Context(), app.Users(), app.Today()(), app.Logger())
		if err != nil {
			metrics.ResetFailuresTotal.Inc()
			HandleError(c, app.Logger(), err, 500, "Daily reset failed")
			return
		}
		if winner != "" {
			metrics.WinsAwardedTotal.Inc()
		}
		HandleSuccess(c, app.Logger(), nil, map[string]any{"winner": winner})
	}
}
