package api

import (
	"net/http"
	"time"
)

// Healthz is the Kubernetes liveness probe.
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object} object{status=string,timestamp=string}
// @Router       /healthz [get]
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": now().UTC().Format(time.RFC3339),
	})
}
