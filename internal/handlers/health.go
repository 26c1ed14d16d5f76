package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health is intentionally store-agnostic: it answers as long as the
// process is up. Deep checks live under /api/health.
func Health(c *gin.Context) {
	respondSuccess(c, http.StatusOK, "todo manager API is running", gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
