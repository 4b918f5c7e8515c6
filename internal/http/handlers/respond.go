package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tycord/pkg/errors"
)

// respondError maps app error codes onto HTTP statuses. Anything without a
// recognized code is reported as a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	c.JSON(statusOf(errors.CodeOf(err)), gin.H{"message": errors.MessageOf(err)})
}

func statusOf(code errors.Code) int {
	switch code {
	case errors.CodeInvalidArgument:
		return http.StatusBadRequest
	case errors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case errors.CodePermissionDenied:
		return http.StatusForbidden
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists, errors.CodeFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
