package mcp

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpdomain "github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/domain"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/mcpclient"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/mocks"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (MCPIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	service, err := New(client)
	require.NoError(t, err)

	return service, client
}

func stringPtr(s string) *string {
	return &s
}

func TestMCPService_GetDashboardData(t *testing.T) {
	service, client := newService(t)

	client.EXPECT().
		GetEDCMetrics(gomock.Any()).
		Return(&mcpdomain.EDCMetricsResponse{
			Metrics: &mcpdomain.Metrics{ITGrowth: "18.5%", TechFirms: "1247", AvgWage: "72500", AnnualRelos: "350+", JobsCreated: "1200"},
			Revenue: &mcpdomain.Revenue{MonthlyTotal: "$20,000", AnnualProjection: "$240,000", EDCSubscription: "$2,000", ReloKits: "15000"},
			Clients: []mcpdomain.Client{
				{Name: "Acme VR", Industry: stringPtr("vr_gaming"), Status: "active", Kits: 4},
				{Name: "Sem Setor", Industry: nil, Status: "pending", Kits: 1},
			},
		}, nil)

	data, err := service.GetDashboardData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "18.5%", data.Metrics.ITGrowth)
	assert.Equal(t, "15000", data.Revenue.ReloKits)
	require.Len(t, data.Clients, 2)
	assert.Equal(t, "vr_gaming", data.Clients[0].Industry)
	assert.Equal(t, "", data.Clients[1].Industry)
	assert.Equal(t, domain.ClientStatusPending, data.Clients[1].Status)
}

func TestMCPService_GetDashboardData_MetricasNumericas(t *testing.T) {
	tests := []struct {
		name          string
		techFirms     mcpdomain.FlexValue
		avgWage       mcpdomain.FlexValue
		expectedFirms int64
		expectedWage  float64
		firmsText     string
		wageText      string
	}{
		{name: "Texto com separador de milhar", techFirms: "1,247", avgWage: "$72,500", expectedFirms: 1247, expectedWage: 72500},
		{name: "Número com casa decimal", techFirms: "1247.0", avgWage: "72500.5", expectedFirms: 1247, expectedWage: 72500.5},
		{name: "Campos ausentes - zero", expectedFirms: 0, expectedWage: 0},
		{name: "Texto não numérico - exibido como recebido", techFirms: "1.2K+", avgWage: "competitive", firmsText: "1.2K+", wageText: "competitive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := newService(t)
			client.EXPECT().GetEDCMetrics(gomock.Any()).Return(&mcpdomain.EDCMetricsResponse{
				Metrics: &mcpdomain.Metrics{TechFirms: tt.techFirms, AvgWage: tt.avgWage},
			}, nil)

			data, err := service.GetDashboardData(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedFirms, data.Metrics.TechFirms)
			assert.Equal(t, tt.expectedWage, data.Metrics.AvgWage)
			assert.Equal(t, tt.firmsText, data.Metrics.TechFirmsText)
			assert.Equal(t, tt.wageText, data.Metrics.AvgWageText)
		})
	}
}

func TestMCPService_GetDashboardData_SemSecoes(t *testing.T) {
	service, client := newService(t)

	client.EXPECT().GetEDCMetrics(gomock.Any()).Return(&mcpdomain.EDCMetricsResponse{}, nil)

	data, err := service.GetDashboardData(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data.Metrics)
	assert.Nil(t, data.Revenue)
	assert.Empty(t, data.Clients)
}

func TestMCPService_GetAIAvailability(t *testing.T) {
	tests := []struct {
		name     string
		resp     *mcpdomain.HealthResponse
		err      error
		expected bool
		wantErr  bool
	}{
		{
			name:     "IA habilitada - deve retornar true",
			resp:     &mcpdomain.HealthResponse{Features: &mcpdomain.HealthFeatures{AIBlogGeneration: true}},
			expected: true,
		},
		{
			name:     "IA desabilitada - deve retornar false",
			resp:     &mcpdomain.HealthResponse{Features: &mcpdomain.HealthFeatures{}},
			expected: false,
		},
		{
			name:    "Falha de comunicação - deve propagar o erro",
			err:     mcpclient.ErrTransport,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := newService(t)
			client.EXPECT().GetHealth(gomock.Any()).Return(tt.resp, tt.err)

			available, err := service.GetAIAvailability(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, available)
		})
	}
}

func TestMCPService_GenerateReloKit(t *testing.T) {
	req := domain.KitRequest{Keyword: "Acme VR", Quote: "play here, build here", Geo: "Sarasota", Industry: "vr_gaming"}

	tests := []struct {
		name     string
		body     string
		validate func(t *testing.T, result *domain.KitResult, err error)
	}{
		{
			name: "Resposta válida gerada por IA - deve retornar o blog",
			body: `{"outputs": {"blog": {"word_count": 1200, "generation_method": "openai_gpt4", "content": "Olá"}}, "extra": true}`,
			validate: func(t *testing.T, result *domain.KitResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1200, result.WordCount)
				assert.Equal(t, "AI", result.MethodLabel())
				assert.Equal(t, "Olá", result.Content)
			},
		},
		{
			name: "Blog sem método - deve ser tratado como template",
			body: `{"outputs": {"blog": {"word_count": 10}}}`,
			validate: func(t *testing.T, result *domain.KitResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Template", result.MethodLabel())
			},
		},
		{
			name: "word_count com casa decimal - aceito como inteiro",
			body: `{"outputs": {"blog": {"word_count": 812.0, "generation_method": "openai_gpt4", "content": "x"}}}`,
			validate: func(t *testing.T, result *domain.KitResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 812, result.WordCount)
				assert.Equal(t, "AI", result.MethodLabel())
			},
		},
		{
			name: "Sem outputs - deve retornar ErrUnexpectedShape",
			body: `{"status": "ok"}`,
			validate: func(t *testing.T, result *domain.KitResult, err error) {
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, ErrUnexpectedShape))
			},
		},
		{
			name: "word_count textual - deve retornar ErrUnexpectedShape",
			body: `{"outputs": {"blog": {"word_count": "muitas"}}}`,
			validate: func(t *testing.T, result *domain.KitResult, err error) {
				assert.True(t, errors.Is(err, ErrUnexpectedShape))
			},
		},
		{
			name: "Corpo que não é JSON - deve retornar ErrUnexpectedShape",
			body: `<html>erro</html>`,
			validate: func(t *testing.T, result *domain.KitResult, err error) {
				assert.True(t, errors.Is(err, ErrUnexpectedShape))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := newService(t)
			client.EXPECT().
				GenerateReloKit(gomock.Any(), mcpdomain.GenerateReloKitRequest{
					Keyword:  "Acme VR",
					Quote:    "play here, build here",
					Geo:      "Sarasota",
					Industry: "vr_gaming",
				}).
				Return([]byte(tt.body), nil)

			result, err := service.GenerateReloKit(context.Background(), req)

			tt.validate(t, result, err)
		})
	}
}
