package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string, err error) {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// NotFound answers unmatched routes, including todo paths whose id
// segment is not numeric.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "resource not found", nil)
}

// parseID accepts only an all-digit id segment. Anything else gets the
// generic not-found envelope, same as an unmatched route.
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	if raw == "" {
		NotFound(c)
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			NotFound(c)
			return 0, false
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		NotFound(c)
		return 0, false
	}
	return id, true
}
