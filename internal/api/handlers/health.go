package handlers

import (
	"net/http"
	"time"

	"github.com/toby/expense-tracker-backend/internal/api/response"
)

// Health reports liveness. For debugging and load balancers only.
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
