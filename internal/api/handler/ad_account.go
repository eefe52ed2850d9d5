package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

// accountID devolve o parâmetro de rota já decodificado, sem validação
func accountID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("account_id")
}

func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, service.ListAdAccounts())
	})
}

func CampaignList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, service.ListCampaigns(accountID(r)))
	})
}

func AdSetList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, service.ListAdSets(accountID(r)))
	})
}

func AdList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, service.ListAds(accountID(r)))
	})
}

// GetAccountInsights ecoa o date_preset da query; vazio usa o padrão do serviço
func GetAccountInsights(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		datePreset := r.URL.Query().Get("date_preset")

		respond(w, r, http.StatusOK, service.GetInsights(accountID(r), datePreset))
	})
}

func CreateCampaign(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input, _ := utils.DecodeBody[domain.CampaignInput](r)

		created, err := service.CreateCampaign(accountID(r), input)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"account_id":  created.AccountID,
			"campaign_id": created.Campaign.ID,
		}).Info("Campanha criada")

		respond(w, r, http.StatusCreated, created)
	})
}

func UpdateCampaign(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input, _ := utils.DecodeBody[domain.CampaignInput](r)
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("campaign_id")

		respond(w, r, http.StatusOK, service.UpdateCampaign(accountID(r), campaignID, input))
	})
}
