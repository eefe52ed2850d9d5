package domain

type AnalyzeURLRequest struct {
	URL *string `json:"url"`
}

type CreativeSuggestion struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	CallToAction string `json:"call_to_action"`
}

type CampaignRecommendation struct {
	Name                string               `json:"name"`
	Objective           CampaignObjective    `json:"objective"`
	ConversionEvent     string               `json:"conversion_event"`
	DailyBudget         int                  `json:"daily_budget"`
	Targeting           Targeting            `json:"targeting"`
	CreativeSuggestions []CreativeSuggestion `json:"creative_suggestions"`
}

type URLAnalysis struct {
	URL                 string                 `json:"url"`
	AnalyzedAt          string                 `json:"analyzed_at"`
	SiteType            string                 `json:"site_type"`
	ProductCategory     string                 `json:"product_category"`
	RecommendedCampaign CampaignRecommendation `json:"recommended_campaign"`
}

type ChatRequest struct {
	Message        *string `json:"message"`
	ConversationID *string `json:"conversation_id"`
}

type ChatReply struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	Actions     []string `json:"actions"`
}

type ChatResponse struct {
	Response       ChatReply `json:"response"`
	ConversationID string    `json:"conversation_id"`
}

type OptimizeCampaignRequest struct {
	AccountID *string `json:"account_id"`
	AutoApply *bool   `json:"auto_apply"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Confidence  string `json:"confidence"`
}

type OptimizationResult struct {
	CampaignID      string           `json:"campaign_id"`
	AccountID       string           `json:"account_id"`
	AutoApply       bool             `json:"auto_apply"`
	Applied         bool             `json:"applied"`
	Recommendations []Recommendation `json:"recommendations"`
}

type GenerateCreativeRequest struct {
	ProductDescription *string `json:"product_description"`
	CreativeType       *string `json:"creative_type"`
}

type CreativeResult struct {
	ProductDescription string               `json:"product_description"`
	CreativeType       string               `json:"creative_type"`
	Creatives          []CreativeSuggestion `json:"creatives"`
}

type PredictPerformanceRequest struct {
	AccountID      *string        `json:"account_id"`
	CampaignConfig map[string]any `json:"campaign_config"`
}

type PerformancePrediction struct {
	EstimatedReach       int     `json:"estimated_reach"`
	EstimatedImpressions int     `json:"estimated_impressions"`
	EstimatedConversions int     `json:"estimated_conversions"`
	EstimatedCPA         float64 `json:"estimated_cpa"`
	Confidence           string  `json:"confidence"`
}

type PredictionResult struct {
	AccountID      string                `json:"account_id"`
	CampaignConfig map[string]any        `json:"campaign_config"`
	Prediction     PerformancePrediction `json:"prediction"`
}
