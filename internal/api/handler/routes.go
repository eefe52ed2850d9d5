package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/meta-ads-platform-api/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-platform-api/internal/config"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/account"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/advising"
	"github.com/vfg2006/meta-ads-platform-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

func Healthcheck(service config.Service, clock utils.Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service, clock),
		},
		{
			Path:    "/api/status",
			Method:  http.MethodGet,
			Handler: StatusHandler(service, clock),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/api/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/api/auth/refresh",
			Method:  http.MethodPost,
			Handler: RefreshToken(service),
		},
		{
			Path:    "/api/auth/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
		{
			Path:    "/api/auth/meta-connect",
			Method:  http.MethodPost,
			Handler: MetaConnect(service),
		},
	}
}

func MetaAds(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/meta/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/api/meta/account/:account_id/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignList(service),
		},
		{
			Path:    "/api/meta/account/:account_id/adsets",
			Method:  http.MethodGet,
			Handler: AdSetList(service),
		},
		{
			Path:    "/api/meta/account/:account_id/ads",
			Method:  http.MethodGet,
			Handler: AdList(service),
		},
		{
			Path:    "/api/meta/account/:account_id/insights",
			Method:  http.MethodGet,
			Handler: GetAccountInsights(service),
		},
		{
			Path:    "/api/meta/account/:account_id/campaign",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/meta/account/:account_id/campaign/:campaign_id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
	}
}

func AI(service advising.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ai/analyze-url",
			Method:  http.MethodPost,
			Handler: AnalyzeURL(service),
		},
		{
			Path:    "/api/ai/chat",
			Method:  http.MethodPost,
			Handler: Chat(service),
		},
		{
			Path:    "/api/ai/optimize-campaign/:campaign_id",
			Method:  http.MethodPost,
			Handler: OptimizeCampaign(service),
		},
		{
			Path:    "/api/ai/generate-creative",
			Method:  http.MethodPost,
			Handler: GenerateCreative(service),
		},
		{
			Path:    "/api/ai/predict-performance",
			Method:  http.MethodPost,
			Handler: PredictPerformance(service),
		},
	}
}

// Metrics expõe o registry padrão do Prometheus; só o servidor standalone registra esta rota
func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
