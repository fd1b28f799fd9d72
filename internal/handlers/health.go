package handlers

import "net/http"

// Health handles GET /api/health with a static liveness response.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
