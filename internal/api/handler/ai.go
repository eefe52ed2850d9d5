package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/advising"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

// Os handlers de IA nunca falham por entrada: corpo ausente vira campos padrão

func AnalyzeURL(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.AnalyzeURLRequest](r)
		respond(w, r, http.StatusOK, service.AnalyzeURL(req))
	})
}

func Chat(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.ChatRequest](r)
		respond(w, r, http.StatusOK, service.Chat(req))
	})
}

func OptimizeCampaign(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.OptimizeCampaignRequest](r)
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("campaign_id")

		respond(w, r, http.StatusOK, service.OptimizeCampaign(campaignID, req))
	})
}

func GenerateCreative(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.GenerateCreativeRequest](r)
		respond(w, r, http.StatusOK, service.GenerateCreative(req))
	})
}

func PredictPerformance(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, _ := utils.DecodeBody[domain.PredictPerformanceRequest](r)
		respond(w, r, http.StatusOK, service.PredictPerformance(req))
	})
}
