package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-board-api/internal/errors"
)

const contextKeyPathID = "path_id"

// RequireIDParam parses the :id path parameter and rejects malformed ids with 400
func RequireIDParam() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.InvalidFormat(c, "Invalid id: "+c.Param("id"))
			c.Abort()
			return
		}

		c.Set(contextKeyPathID, id)
		c.Next()
	}
}

// GetPathID retrieves the id parsed by RequireIDParam
func GetPathID(c *gin.Context) (uint64, bool) {
	id, exists := c.Get(contextKeyPathID)
	if !exists {
		return 0, false
	}

	v, ok := id.(uint64)
	return v, ok
}
