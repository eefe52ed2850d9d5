package handler

import (
	"net/http"

	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

// Login aceita qualquer email/senha não vazios. Corpo ausente ou inválido resulta em 401.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.LoginRequest](r)

		session, err := service.LoginUser(req)
		if err != nil {
			log.ForContext(r.Context()).Warn("Tentativa de login sem credenciais")
			writeServiceError(w, r, err)
			return
		}

		respond(w, r, http.StatusOK, session)
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.RegisterRequest](r)

		registration, err := service.RegisterUser(req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respond(w, r, http.StatusCreated, registration)
	}
}

func RefreshToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, service.RefreshToken())
	}
}

// GetProfile retorna o perfil fixo de demonstração
func GetProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, service.GetUserProfile())
	}
}

func MetaConnect(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.MetaConnectRequest](r)

		connection, err := service.ConnectMetaAccount(req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respond(w, r, http.StatusOK, connection)
	}
}
