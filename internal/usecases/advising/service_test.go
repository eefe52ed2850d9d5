package advising

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-platform-api/internal/domain"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils/mocks"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestService_AnalyzeURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixed := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     domain.AnalyzeURLRequest
		wantURL string
	}{
		{name: "url informada é ecoada", req: domain.AnalyzeURLRequest{URL: ptr("https://loja.com/p/1")}, wantURL: "https://loja.com/p/1"},
		{name: "url ausente usa placeholder", req: domain.AnalyzeURLRequest{}, wantURL: DefaultURL},
		{name: "url vazia é ecoada como vazia", req: domain.AnalyzeURLRequest{URL: ptr("")}, wantURL: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(fixed)

			analysis := NewService(clock).AnalyzeURL(tt.req)

			assert.Equal(t, tt.wantURL, analysis.URL)
			assert.Equal(t, "2024-01-15T10:00:00.000000Z", analysis.AnalyzedAt)
			assert.Equal(t, domain.ObjectiveConversions, analysis.RecommendedCampaign.Objective)
			require.Len(t, analysis.RecommendedCampaign.CreativeSuggestions, 1)
		})
	}
}

func TestService_Chat(t *testing.T) {
	service := NewService(zeroClock{})

	tests := []struct {
		name             string
		req              domain.ChatRequest
		wantContains     string
		wantConversation string
	}{
		{
			name:             "mensagem e conversa informadas",
			req:              domain.ChatRequest{Message: ptr("hello"), ConversationID: ptr("c1")},
			wantContains:     `"hello"`,
			wantConversation: "c1",
		},
		{
			name:             "corpo ausente usa padrões",
			req:              domain.ChatRequest{},
			wantContains:     `Entendi sua mensagem: ""`,
			wantConversation: DefaultConversationID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := service.Chat(tt.req)

			assert.Contains(t, resp.Response.Message, tt.wantContains)
			assert.True(t, strings.HasPrefix(resp.Response.Message, "Olá! Sou seu assistente de Meta Ads."))
			assert.Equal(t, tt.wantConversation, resp.ConversationID)
			assert.Len(t, resp.Response.Suggestions, 3)
			assert.NotNil(t, resp.Response.Actions)
			assert.Empty(t, resp.Response.Actions)
		})
	}
}

func TestService_OptimizeCampaign(t *testing.T) {
	service := NewService(zeroClock{})

	result := service.OptimizeCampaign("23851234567890", domain.OptimizeCampaignRequest{AccountID: ptr("act_1"), AutoApply: ptr(true)})
	assert.Equal(t, "23851234567890", result.CampaignID)
	assert.Equal(t, "act_1", result.AccountID)
	assert.True(t, result.Applied)
	assert.Len(t, result.Recommendations, 2)

	defaults := service.OptimizeCampaign("1", domain.OptimizeCampaignRequest{})
	assert.False(t, defaults.AutoApply)
	assert.False(t, defaults.Applied)
}

func TestService_GenerateCreative(t *testing.T) {
	service := NewService(zeroClock{})

	result := service.GenerateCreative(domain.GenerateCreativeRequest{ProductDescription: ptr("Fone bluetooth"), CreativeType: ptr("VIDEO")})
	assert.Equal(t, "Fone bluetooth", result.ProductDescription)
	assert.Equal(t, "VIDEO", result.CreativeType)
	for _, c := range result.Creatives {
		assert.Equal(t, "VIDEO", c.Type)
	}

	assert.Equal(t, DefaultCreativeType, service.GenerateCreative(domain.GenerateCreativeRequest{}).CreativeType)
}

func TestService_PredictPerformance(t *testing.T) {
	service := NewService(zeroClock{})

	result := service.PredictPerformance(domain.PredictPerformanceRequest{
		AccountID:      ptr("act_1"),
		CampaignConfig: map[string]any{"objective": "CONVERSIONS"},
	})
	assert.Equal(t, "act_1", result.AccountID)
	assert.Equal(t, "CONVERSIONS", result.CampaignConfig["objective"])
	assert.Equal(t, 375, result.Prediction.EstimatedConversions)

	empty := service.PredictPerformance(domain.PredictPerformanceRequest{})
	assert.NotNil(t, empty.CampaignConfig)
}

// zeroClock para os testes que não dependem do horário
type zeroClock struct{}

func (zeroClock) Now() time.Time { return time.Time{} }
