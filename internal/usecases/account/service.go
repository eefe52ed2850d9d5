package account

import (
	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

const (
	DefaultDatePreset   = "last_30d"
	DefaultCampaignName = "Nova campanha"
)

type AccountService interface {
	ListAdAccounts() *domain.AdAccountList
	AccountIDs() []string
	ListCampaigns(accountID string) *domain.CampaignList
	ListAdSets(accountID string) *domain.AdSetList
	ListAds(accountID string) *domain.AdList
	GetInsights(accountID, datePreset string) *domain.AccountInsights
	CreateCampaign(accountID string, input domain.CampaignInput) (*domain.CreatedCampaign, error)
	UpdateCampaign(accountID, campaignID string, input domain.CampaignInput) *domain.CampaignUpdate
}

type Service struct {
	generateID func() (string, error)
}

func NewService() AccountService {
	return &Service{generateID: utils.GenerateNumericID}
}

func (s *Service) ListAdAccounts() *domain.AdAccountList {
	return &domain.AdAccountList{Accounts: adAccounts()}
}

func (s *Service) AccountIDs() []string {
	accounts := adAccounts()
	ids := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		ids = append(ids, acc.ID)
	}
	return ids
}

// ListCampaigns ecoa o accountID sem validar existência
func (s *Service) ListCampaigns(accountID string) *domain.CampaignList {
	list := campaigns()
	return &domain.CampaignList{
		AccountID: accountID,
		Campaigns: list,
		Paging:    domain.NewPaging(len(list)),
	}
}

func (s *Service) ListAdSets(accountID string) *domain.AdSetList {
	list := adSets()
	return &domain.AdSetList{
		AccountID: accountID,
		AdSets:    list,
		Paging:    domain.NewPaging(len(list)),
	}
}

func (s *Service) ListAds(accountID string) *domain.AdList {
	list := ads()
	return &domain.AdList{
		AccountID: accountID,
		Ads:       list,
		Paging:    domain.NewPaging(len(list)),
	}
}

// GetInsights consolida as métricas das campanhas simuladas da conta
func (s *Service) GetInsights(accountID, datePreset string) *domain.AccountInsights {
	if datePreset == "" {
		datePreset = DefaultDatePreset
	}

	var spend, impressions, clicks, conversions float64
	for _, c := range campaigns() {
		spend += c.Insights["spend"]
		impressions += c.Insights["impressions"]
		clicks += c.Insights["clicks"]
		conversions += c.Insights["conversions"]
	}

	return &domain.AccountInsights{
		AccountID:  accountID,
		DatePreset: datePreset,
		Insights: map[string]float64{
			"spend":               spend,
			"impressions":         impressions,
			"clicks":              clicks,
			"conversions":         conversions,
			"ctr":                 utils.Ratio(clicks*100, impressions),
			"cpc":                 utils.Ratio(spend, clicks),
			"cost_per_conversion": utils.Ratio(spend, conversions),
		},
	}
}

// CreateCampaign devolve a campanha enviada com ID gerado. Campanhas novas nascem pausadas.
func (s *Service) CreateCampaign(accountID string, input domain.CampaignInput) (*domain.CreatedCampaign, error) {
	id, err := s.generateID()
	if err != nil {
		return nil, NewAccountErrorWithID(ErrGenerateID, apiErrors.ErrInternalServer, accountID, "Falha ao gerar identificador da campanha")
	}

	campaign := domain.Campaign{
		ID:          id,
		Name:        DefaultCampaignName,
		Status:      domain.CampaignStatusPaused,
		Objective:   domain.ObjectiveConversions,
		DailyBudget: 0,
		Insights:    map[string]float64{},
	}
	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Objective != nil {
		campaign.Objective = domain.CampaignObjective(*input.Objective)
	}
	if input.DailyBudget != nil {
		campaign.DailyBudget = *input.DailyBudget
	}

	return &domain.CreatedCampaign{
		AccountID: accountID,
		Campaign:  campaign,
	}, nil
}

func (s *Service) UpdateCampaign(accountID, campaignID string, input domain.CampaignInput) *domain.CampaignUpdate {
	return &domain.CampaignUpdate{
		AccountID:   accountID,
		CampaignID:  campaignID,
		Updated:     true,
		Name:        input.Name,
		Status:      input.Status,
		Objective:   input.Objective,
		DailyBudget: input.DailyBudget,
	}
}
