package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/casestudy-api/pkg/errors"
)

// Success is the body returned by the auth endpoints.
type Success struct {
	Success bool `json:"success"`
}

// JSON sends data as the response body without an envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	if c.Writer.Header().Get("Cache-Control") == "" {
		noStore(c)
	}
	c.JSON(status, data)
}

// Cached sends data marking it cacheable by the client for maxAgeSeconds.
func Cached(c *gin.Context, status int, data interface{}, maxAgeSeconds int) {
	c.Header("Cache-Control", "private, max-age="+strconv.Itoa(maxAgeSeconds))
	c.JSON(status, data)
}

// OK responds with {"success": true}.
func OK(c *gin.Context) {
	JSON(c, http.StatusOK, Success{Success: true})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, appErr)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
