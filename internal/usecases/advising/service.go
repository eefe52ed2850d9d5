package advising

import (
	"fmt"

	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

const (
	DefaultURL            = "https://example.com/product"
	DefaultConversationID = "12345"
	DefaultCreativeType   = "IMAGE"

	chatReplyTemplate = `Olá! Sou seu assistente de Meta Ads. Entendi sua mensagem: "%s". Como posso ajudar hoje?`
)

// Advisor simula o agente de IA: todas as respostas são fixas, exceto os campos ecoados
type Advisor interface {
	AnalyzeURL(req domain.AnalyzeURLRequest) *domain.URLAnalysis
	Chat(req domain.ChatRequest) *domain.ChatResponse
	OptimizeCampaign(campaignID string, req domain.OptimizeCampaignRequest) *domain.OptimizationResult
	GenerateCreative(req domain.GenerateCreativeRequest) *domain.CreativeResult
	PredictPerformance(req domain.PredictPerformanceRequest) *domain.PredictionResult
}

type Service struct {
	clock utils.Clock
}

func NewService(clock utils.Clock) Advisor {
	return &Service{clock: clock}
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func (s *Service) AnalyzeURL(req domain.AnalyzeURLRequest) *domain.URLAnalysis {
	return &domain.URLAnalysis{
		URL:             valueOr(req.URL, DefaultURL),
		AnalyzedAt:      utils.FormatTimestamp(s.clock.Now()),
		SiteType:        "e-commerce",
		ProductCategory: "tecnologia",
		RecommendedCampaign: domain.CampaignRecommendation{
			Name:            "🔵 RINO PRO - VENDAS - Produto Tecnológico",
			Objective:       domain.ObjectiveConversions,
			ConversionEvent: "PURCHASE",
			DailyBudget:     5000,
			Targeting: domain.Targeting{
				AgeMin:    25,
				AgeMax:    55,
				Genders:   []int{1, 2},
				Interests: []string{"Tecnologia", "Gadgets", "Inovação"},
			},
			CreativeSuggestions: []domain.CreativeSuggestion{
				{
					Type:         "IMAGE",
					Title:        "Tecnologia que Transforma",
					Body:         "Descubra como nosso produto pode revolucionar seu dia a dia. Compre agora com 15% de desconto!",
					CallToAction: "SHOP_NOW",
				},
			},
		},
	}
}

func (s *Service) Chat(req domain.ChatRequest) *domain.ChatResponse {
	return &domain.ChatResponse{
		Response: domain.ChatReply{
			Message: fmt.Sprintf(chatReplyTemplate, valueOr(req.Message, "")),
			Suggestions: []string{
				"Otimizar minhas campanhas",
				"Criar uma nova campanha",
				"Ver relatório de desempenho",
			},
			Actions: []string{},
		},
		ConversationID: valueOr(req.ConversationID, DefaultConversationID),
	}
}

// OptimizeCampaign nunca altera nada: Applied apenas reflete auto_apply
func (s *Service) OptimizeCampaign(campaignID string, req domain.OptimizeCampaignRequest) *domain.OptimizationResult {
	autoApply := valueOr(req.AutoApply, false)

	return &domain.OptimizationResult{
		CampaignID: campaignID,
		AccountID:  valueOr(req.AccountID, ""),
		AutoApply:  autoApply,
		Applied:    autoApply,
		Recommendations: []domain.Recommendation{
			{
				Title:       "Aumente o orçamento da campanha",
				Description: "Esta campanha está performando 30% acima da média com ROAS de 3.2x.",
				Impact:      "+15% conversões estimadas",
				Confidence:  "HIGH",
			},
			{
				Title:       "Pause anúncios de baixo desempenho",
				Description: "3 anúncios têm CPA 50% acima da média nos últimos 7 dias.",
				Impact:      "-20% em gastos ineficientes",
				Confidence:  "MEDIUM",
			},
		},
	}
}

func (s *Service) GenerateCreative(req domain.GenerateCreativeRequest) *domain.CreativeResult {
	creativeType := valueOr(req.CreativeType, DefaultCreativeType)

	return &domain.CreativeResult{
		ProductDescription: valueOr(req.ProductDescription, ""),
		CreativeType:       creativeType,
		Creatives: []domain.CreativeSuggestion{
			{
				Type:         creativeType,
				Title:        "Tecnologia que Transforma",
				Body:         "Descubra como nosso produto pode revolucionar seu dia a dia.",
				CallToAction: "SHOP_NOW",
			},
			{
				Type:         creativeType,
				Title:        "Oferta por tempo limitado",
				Body:         "Compre agora com 15% de desconto e frete grátis para todo o Brasil!",
				CallToAction: "LEARN_MORE",
			},
		},
	}
}

func (s *Service) PredictPerformance(req domain.PredictPerformanceRequest) *domain.PredictionResult {
	config := req.CampaignConfig
	if config == nil {
		config = map[string]any{}
	}

	return &domain.PredictionResult{
		AccountID:      valueOr(req.AccountID, ""),
		CampaignConfig: config,
		Prediction: domain.PerformancePrediction{
			EstimatedReach:       250000,
			EstimatedImpressions: 500000,
			EstimatedConversions: 375,
			EstimatedCPA:         4000,
			Confidence:           "MEDIUM",
		},
	}
}
