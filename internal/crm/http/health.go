package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/vos-crm/crm/pkg/crmsdk"
	"github.com/vos-crm/crm/pkg/httpx"
	"github.com/vos-crm/crm/pkg/slogx"
)

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning environment, build version and uptime.
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	crmsdk.HealthResponse	"ok, env, version, uptime"
//	@Router			/health [get].
func HealthHandler(startTime time.Time, version, env string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, crmsdk.HealthResponse{
			OK:      true,
			Env:     env,
			Version: version,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
		})
	}
}

// Pinger is satisfied by store.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DBHealthHandler godoc
//
//	@Summary		Database Check Endpoint
//	@Description	Pings the database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	crmsdk.DBHealthResponse	"ok"
//	@Failure		503	{object}	crmsdk.DBHealthResponse	"ok=false, error"
//	@Router			/health/db [get].
func DBHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			slogx.FromContext(ctx).Error("database ping failed", slog.Any("error", err))
			httpx.WriteJSON(w, http.StatusServiceUnavailable, crmsdk.DBHealthResponse{OK: false, Error: err.Error()})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, crmsdk.DBHealthResponse{OK: true})
	}
}
