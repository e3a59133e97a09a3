package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-manager-api/internal/errors"
)

// RequireIDParams parses the named URL parameters as positive integers and
// stores them in the context under the same names. A malformed ID is
// answered with 404, like an ID that does not exist.
func RequireIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			id, err := strconv.ParseUint(c.Param(name), 10, 64)
			if err != nil || id == 0 {
				apierrors.NotFound(c, "")
				c.Abort()
				return
			}
			c.Set(name, id)
		}
		c.Next()
	}
}

// GetIDParam returns an ID stored by RequireIDParams
func GetIDParam(c *gin.Context, name string) uint64 {
	return c.GetUint64(name)
}
