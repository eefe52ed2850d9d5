package domain

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "ACTIVE"
	CampaignStatusPaused CampaignStatus = "PAUSED"
)

type CampaignObjective string

const (
	ObjectiveConversions    CampaignObjective = "CONVERSIONS"
	ObjectiveTraffic        CampaignObjective = "TRAFFIC"
	ObjectiveMessages       CampaignObjective = "MESSAGES"
	ObjectiveLeadGeneration CampaignObjective = "LEAD_GENERATION"
	ObjectiveEngagement     CampaignObjective = "ENGAGEMENT"
	ObjectiveBrandAwareness CampaignObjective = "BRAND_AWARENESS"
	ObjectiveAppInstalls    CampaignObjective = "APP_INSTALLS"
)

// Campaign.DailyBudget está em centavos. Insights não tem esquema fixo:
// as métricas variam conforme o objetivo.
type Campaign struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Status      CampaignStatus     `json:"status"`
	Objective   CampaignObjective  `json:"objective"`
	DailyBudget int                `json:"daily_budget"`
	Insights    map[string]float64 `json:"insights"`
}

type CampaignList struct {
	AccountID string     `json:"account_id"`
	Campaigns []Campaign `json:"campaigns"`
	Paging    Paging     `json:"paging"`
}

// CampaignInput é o corpo de criação/edição; campos ausentes ficam nil
type CampaignInput struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Objective   *string `json:"objective"`
	DailyBudget *int    `json:"daily_budget"`
}

type CreatedCampaign struct {
	AccountID string   `json:"account_id"`
	Campaign  Campaign `json:"campaign"`
}

type CampaignUpdate struct {
	AccountID   string  `json:"account_id"`
	CampaignID  string  `json:"campaign_id"`
	Updated     bool    `json:"updated"`
	Name        *string `json:"name,omitempty"`
	Status      *string `json:"status,omitempty"`
	Objective   *string `json:"objective,omitempty"`
	DailyBudget *int    `json:"daily_budget,omitempty"`
}

type Targeting struct {
	AgeMin    int      `json:"age_min"`
	AgeMax    int      `json:"age_max"`
	Genders   []int    `json:"genders"`
	Interests []string `json:"interests"`
}

type AdSet struct {
	ID               string         `json:"id"`
	CampaignID       string         `json:"campaign_id"`
	Name             string         `json:"name"`
	Status           CampaignStatus `json:"status"`
	DailyBudget      int            `json:"daily_budget"`
	OptimizationGoal string         `json:"optimization_goal"`
	Targeting        Targeting      `json:"targeting"`
}

type AdSetList struct {
	AccountID string  `json:"account_id"`
	AdSets    []AdSet `json:"adsets"`
	Paging    Paging  `json:"paging"`
}

type Ad struct {
	ID       string             `json:"id"`
	AdSetID  string             `json:"adset_id"`
	Name     string             `json:"name"`
	Status   CampaignStatus     `json:"status"`
	Creative CreativeSuggestion `json:"creative"`
}

type AdList struct {
	AccountID string `json:"account_id"`
	Ads       []Ad   `json:"ads"`
	Paging    Paging `json:"paging"`
}
