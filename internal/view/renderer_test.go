package view

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer()
	require.NoError(t, err)
	return renderer
}

func TestRenderer_Loading(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, newRenderer(t).Loading(rec))

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Loading Innovation Engine...")
}

func TestRenderer_Dashboard(t *testing.T) {
	tests := []struct {
		name     string
		snapshot domain.DashboardSnapshot
		kit      domain.KitStatus
		expanded map[int]bool
		contains []string
		missing  []string
	}{
		{
			name: "Painel completo com kit gerado - deve exibir todas as seções",
			snapshot: domain.DashboardSnapshot{
				AIStatus: domain.AIStatusActive,
				Data: &domain.DashboardData{
					Metrics: &domain.EDCMetrics{ITGrowth: "18.5%", TechFirms: 1247, AvgWage: 72500, AnnualRelos: "350+", JobsCreated: "1200"},
					Revenue: &domain.Revenue{MonthlyTotal: "$20,000", AnnualProjection: "$240,000", EDCSubscription: "$2,000", ReloKits: "$15,000"},
					Clients: []domain.Client{{Name: "Acme VR", Industry: "vr_gaming", Status: domain.ClientStatusActive, Kits: 4}},
				},
			},
			kit: domain.KitStatus{
				State:  domain.KitStateSuccess,
				Result: &domain.KitResult{WordCount: 1234, GenerationMethod: "openai_gpt4", Content: "Sarasota blog"},
			},
			expanded: map[int]bool{0: true},
			contains: []string{
				"🤖 AI Active",
				`id="metrics-panel"`,
				"1,247",
				"$73K",
				`id="revenue-tracker"`,
				"20.0%",
				"$3000",
				"▼ Hide Details",
				`href="/clients/0/kit"`,
				"⚡ Generate Relocator Kit",
				"1234",
				"🤖 AI",
				"Sarasota blog...",
			},
			missing: []string{"❌ Error", "Generating Kit..."},
		},
		{
			name:     "Sem dados e kit em geração - deve ocultar painéis e mostrar o modo",
			snapshot: domain.DashboardSnapshot{AIStatus: domain.AIStatusTemplate},
			kit:      domain.KitStatus{State: domain.KitStateGenerating, Request: domain.DefaultKitRequest()},
			contains: []string{
				"📝 Template Mode",
				"Generating Kit... (Template Mode)",
				`action="/kits/abort"`,
				`http-equiv="refresh"`,
			},
			missing: []string{`id="metrics-panel"`, `id="revenue-tracker"`, `id="kit-result"`},
		},
		{
			name:     "Geração com erro - deve mostrar a mensagem",
			snapshot: domain.DashboardSnapshot{AIStatus: domain.AIStatusError},
			kit:      domain.KitStatus{State: domain.KitStateError, Error: "Generation failed", ErrorKind: domain.KitErrorFailed, Request: domain.DefaultKitRequest()},
			contains: []string{"⚠️ Connection Error", "❌ Error: Generation failed"},
			missing:  []string{"✅ Kit Generated Successfully!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := BuildPage(tt.snapshot, tt.kit, tt.expanded, domain.DefaultPricing())
			rec := httptest.NewRecorder()

			require.NoError(t, newRenderer(t).Dashboard(rec, page))

			body := rec.Body.String()
			for _, s := range tt.contains {
				assert.True(t, strings.Contains(body, s), "esperava encontrar %q", s)
			}
			for _, s := range tt.missing {
				assert.False(t, strings.Contains(body, s), "não esperava encontrar %q", s)
			}
		})
	}
}
