package response

import (
	"log"
	"net/http"
	"strconv"

	"anoa.com/quarterdirectory/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (int64, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return 0, apperror.ErrUnauthorized
	}

	userID, err := strconv.ParseInt(userIDStr.(string), 10, 64)
	if err != nil {
		return 0, apperror.ErrUnauthorized
	}

	return userID, nil
}

// GetViewerID is the optional-auth variant of GetUserID: 0 means the
// request is anonymous.
func GetViewerID(c *gin.Context) int64 {
	userID, err := GetUserID(c)
	if err != nil {
		return 0
	}
	return userID
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
