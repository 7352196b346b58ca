package api

import (
	"net/http"
	"time"
)

// isoLayout renders UTC instants as YYYY-MM-DDTHH:mm:ss.sssZ.
const isoLayout = "2006-01-02T15:04:05.000Z"

// now is swapped in tests to pin the clock.
var now = time.Now

// PingResponse is the availability acknowledgment returned by Ping.
type PingResponse struct {
	OK bool   `json:"ok"`
	At string `json:"at"`
}

func formatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// Ping answers any request with {"ok":true,"at":<now>}. Method, headers,
// query and body are never read.
// @Summary      Ping
// @Description  Liveness check. Accepts any method and ignores the request.
// @Tags         health
// @Produce      json
// @Success      200  {object} PingResponse
// @Router       /api/ping [get]
// @Router       /api/ping [post]
// @Router       /api/ping [put]
// @Router       /api/ping [patch]
// @Router       /api/ping [delete]
// @Router       /api/ping [head]
// @Router       /api/ping [options]
func Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, PingResponse{
		OK: true,
		At: formatISO(now()),
	})
}
