package handler

import (
	"net/http"
	"time"
)

// HealthcheckHandler indica que o processo está de pé e resume o último estado
// conhecido do MCP; nunca chama a API externa
func HealthcheckHandler(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}

		if services.Dashboard != nil {
			snapshot := services.Dashboard.Snapshot()
			body["ai_status"] = snapshot.AIStatus
			body["loading"] = snapshot.Loading
			if !snapshot.FetchedAt.IsZero() {
				body["metrics_fetched_at"] = snapshot.FetchedAt.UTC().Format(time.RFC3339)
			}
		}

		writeJSON(w, http.StatusOK, body)
	})
}
