package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-board-api/internal/errors"
)

// RecoveryWithLog turns panics into a 500 envelope and logs them
func RecoveryWithLog(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		apierrors.AbortWithError(c, http.StatusInternalServerError,
			apierrors.NewAPIError(apierrors.ErrCodeInternalError, "Internal server error"))
	})
}
