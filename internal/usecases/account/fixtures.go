package account

import "github.com/vfg2006/meta-ads-platform-api/internal/domain"

// Dados simulados da integração com o Meta. Cada chamada devolve valores novos.

func adAccounts() []domain.AdAccount {
	return []domain.AdAccount{
		{
			ID:       "act_123456789",
			Name:     "Conta Principal",
			Currency: "BRL",
			Timezone: "America/Sao_Paulo",
			Status:   domain.AdAccountStatusActive,
		},
		{
			ID:       "act_987654321",
			Name:     "Conta Secundária",
			Currency: "BRL",
			Timezone: "America/Sao_Paulo",
			Status:   domain.AdAccountStatusActive,
		},
	}
}

func campaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:          "23851234567890",
			Name:        "🔵 RINO PRO - VENDAS - Produto Premium",
			Status:      domain.CampaignStatusActive,
			Objective:   domain.ObjectiveConversions,
			DailyBudget: 5000,
			Insights: map[string]float64{
				"spend":               120000,
				"impressions":         500000,
				"clicks":              15000,
				"ctr":                 3.0,
				"cpc":                 8.0,
				"conversions":         300,
				"cost_per_conversion": 400.0,
			},
		},
		{
			ID:          "23851234567891",
			Name:        "🔵 RINO PRO - TRÁFEGO - Blog Institucional",
			Status:      domain.CampaignStatusActive,
			Objective:   domain.ObjectiveTraffic,
			DailyBudget: 3000,
			Insights: map[string]float64{
				"spend":              45000,
				"impressions":        300000,
				"clicks":             12000,
				"ctr":                4.0,
				"cpc":                3.75,
				"landing_page_views": 10000,
			},
		},
	}
}

func adSets() []domain.AdSet {
	return []domain.AdSet{
		{
			ID:               "23851234567900",
			CampaignID:       "23851234567890",
			Name:             "Interesse em Tecnologia - 25 a 55",
			Status:           domain.CampaignStatusActive,
			DailyBudget:      5000,
			OptimizationGoal: "OFFSITE_CONVERSIONS",
			Targeting: domain.Targeting{
				AgeMin:    25,
				AgeMax:    55,
				Genders:   []int{1, 2},
				Interests: []string{"Tecnologia", "Gadgets"},
			},
		},
		{
			ID:               "23851234567901",
			CampaignID:       "23851234567891",
			Name:             "Interesse em Marketing",
			Status:           domain.CampaignStatusActive,
			DailyBudget:      3000,
			OptimizationGoal: "LANDING_PAGE_VIEWS",
			Targeting: domain.Targeting{
				AgeMin:    18,
				AgeMax:    65,
				Genders:   []int{1, 2},
				Interests: []string{"Marketing digital", "Empreendedorismo"},
			},
		},
	}
}

func ads() []domain.Ad {
	return []domain.Ad{
		{
			ID:      "23851234567910",
			AdSetID: "23851234567900",
			Name:    "Carrossel Produto v1",
			Status:  domain.CampaignStatusActive,
			Creative: domain.CreativeSuggestion{
				Type:         "CAROUSEL",
				Title:        "Tecnologia que Transforma",
				Body:         "Descubra como nosso produto pode revolucionar seu dia a dia.",
				CallToAction: "SHOP_NOW",
			},
		},
		{
			ID:      "23851234567911",
			AdSetID: "23851234567901",
			Name:    "Artigo do Blog - Imagem",
			Status:  domain.CampaignStatusActive,
			Creative: domain.CreativeSuggestion{
				Type:         "IMAGE",
				Title:        "Aprenda a vender mais",
				Body:         "Leia no nosso blog as estratégias que usamos com nossos clientes.",
				CallToAction: "LEARN_MORE",
			},
		},
	}
}
