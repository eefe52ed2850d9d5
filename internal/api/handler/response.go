package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-platform-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

func respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		// O status já foi enviado; resta apenas registrar
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz erros dos casos de uso para o corpo padronizado
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"error":      accountErr.Error(),
			"account_id": accountErr.AccountID,
		}).Error("Erro na operação de conta")
		apiErrors.WriteError(w, accountErr.Code, accountErr.Details, nil)
		return
	}

	logrus.WithError(err).Error("Erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, apiErrors.MsgInternalServer, nil)
}
