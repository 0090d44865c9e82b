package roster

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TrustedSamu/Dome1v1/internal/response"
)

// RequireParticipant rejects requests whose :name segment is not a roster
// member, before any handler touches the store.
func RequireParticipant(r *Roster) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if !r.Contains(name) {
			c.AbortWithStatusJSON(http.StatusNotFound, response.NotFound("Unknown participant"))
			return
		}
		c.Set("participant", name)
		c.Next()
	}
}
