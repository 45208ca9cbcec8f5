package controllers

import (
	"net/http"

	"github.com/angelmondragon/inventory-ledger/api/responses"
	"github.com/angelmondragon/inventory-ledger/pkg/config"
	pkgerrors "github.com/angelmondragon/inventory-ledger/pkg/errors"
	"github.com/angelmondragon/inventory-ledger/pkg/logger"
	"github.com/angelmondragon/inventory-ledger/pkg/redis"
)

const envHeader = "X-Inventory-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings redis when it is configured. A nil pinger reports it as skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{"ledger": "ok", "redis": "skipped"}
		if redisPinger != nil {
			if err := redisPinger.Ping(r.Context()); err != nil {
				checks["redis"] = err.Error()
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable").WithDetails(checks))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
