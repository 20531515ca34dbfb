package controllers

import (
	"net/http"

	"github.com/Greenkack/pvoffer-backend/api/responses"
	"github.com/Greenkack/pvoffer-backend/pkg/config"
	"github.com/Greenkack/pvoffer-backend/pkg/db"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PVOffer-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PVOffer-Env", cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
