package view

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
)

func TestToggleURL(t *testing.T) {
	tests := []struct {
		name     string
		expanded map[int]bool
		index    int
		expected string
	}{
		{
			name:     "Nenhum aberto - deve abrir o cartão",
			expanded: map[int]bool{},
			index:    2,
			expected: "/?expand=2#client-2",
		},
		{
			name:     "Cartão aberto - deve fechar apenas ele",
			expanded: map[int]bool{2: true},
			index:    2,
			expected: "/#client-2",
		},
		{
			name:     "Outros abertos - deve preservar os demais",
			expanded: map[int]bool{0: true, 3: true},
			index:    1,
			expected: "/?expand=0&expand=1&expand=3#client-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToggleURL(tt.expanded, tt.index))
		})
	}
}

func TestParseExpanded(t *testing.T) {
	query := url.Values{ExpandParam: {"0", "3", "abc", "-1"}}

	expanded := ParseExpanded(query)

	assert.Equal(t, map[int]bool{0: true, 3: true}, expanded)
}

func TestBuildPage(t *testing.T) {
	snapshot := domain.DashboardSnapshot{
		AIStatus: domain.AIStatusTemplate,
		Data: &domain.DashboardData{
			Metrics: &domain.EDCMetrics{ITGrowth: "18.5%", TechFirms: 1247, AvgWage: 72500},
			Revenue: &domain.Revenue{MonthlyTotal: "$20,000", AnnualProjection: "$240,000"},
			Clients: []domain.Client{
				{Name: "Acme VR", Industry: "vr_gaming", Status: domain.ClientStatusActive, Kits: 4},
				{Name: "Clínica", Industry: "", Status: domain.ClientStatusPaused, Kits: 0},
			},
		},
	}
	kit := domain.KitStatus{
		State:  domain.KitStateSuccess,
		Result: &domain.KitResult{WordCount: 900, GenerationMethod: "openai_gpt4", Content: "texto"},
	}

	page := BuildPage(snapshot, kit, map[int]bool{1: true}, domain.DefaultPricing())

	assert.Equal(t, "📝 Template Mode", page.AIBadge)
	assert.Len(t, page.Metrics, 5)
	require.NotNil(t, page.Revenue)
	assert.Equal(t, "20.0", page.Revenue.ProgressLabel)

	require.Len(t, page.Clients, 2)
	assert.False(t, page.Clients[0].Expanded)
	assert.Equal(t, "/?expand=0&expand=1#client-0", page.Clients[0].ToggleURL)
	assert.True(t, page.Clients[1].Expanded)
	assert.Equal(t, "General", page.Clients[1].IndustryLabel)
	assert.Equal(t, "/clients/1/kit", page.Clients[1].KitURL)

	assert.Equal(t, "AI", page.Kit.MethodLabel)
	assert.Equal(t, "texto...", page.Kit.Preview)
	assert.Equal(t, 4, page.Kit.SocialPosts)
	assert.Equal(t, "$750", page.Kit.EstimatedValue)
	assert.Len(t, page.Industries, 4)
}

func TestBuildPage_SemDados(t *testing.T) {
	page := BuildPage(domain.DashboardSnapshot{AIStatus: domain.AIStatusError}, domain.KitStatus{State: domain.KitStateIdle}, nil, domain.DefaultPricing())

	assert.Nil(t, page.Metrics)
	assert.Nil(t, page.Revenue)
	assert.Empty(t, page.Clients)
	assert.Equal(t, "⚠️ Connection Error", page.AIBadge)
	assert.Equal(t, "Template Mode", page.Kit.ModeLabel)
}

func TestFormatFetchedAt(t *testing.T) {
	assert.Equal(t, "never", FormatFetchedAt(time.Time{}))
	assert.Contains(t, FormatFetchedAt(time.Now().Add(-3*time.Minute)), "minutes ago")
}
