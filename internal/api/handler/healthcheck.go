package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-platform-api/internal/config"
	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

// HealthcheckHandler responde na raiz, usada como liveness pelas plataformas
func HealthcheckHandler(service config.Service, clock utils.Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, domain.Health{
			Status:    "healthy",
			Service:   service.Name,
			Version:   service.Version,
			Timestamp: utils.FormatTimestamp(clock.Now()),
		})
	})
}

func StatusHandler(service config.Service, clock utils.Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, domain.APIStatus{
			Status:    "online",
			Version:   service.Version,
			Timestamp: utils.FormatTimestamp(clock.Now()),
		})
	})
}
