// Package domain contém as estruturas de dados do painel e os cálculos derivados
package domain

import "time"

// EDCMetrics são os indicadores do Economic Development Council exibidos no painel.
// Os campos textuais são exibidos exatamente como recebidos da API. TechFirmsText
// e AvgWageText guardam o valor recebido quando ele não é numérico.
type EDCMetrics struct {
	ITGrowth      string  `json:"it_growth"`
	TechFirms     int64   `json:"tech_firms"`
	TechFirmsText string  `json:"tech_firms_text,omitempty"`
	AvgWage       float64 `json:"avg_wage"`
	AvgWageText   string  `json:"avg_wage_text,omitempty"`
	AnnualRelos   string  `json:"annual_relos"`
	JobsCreated   string  `json:"jobs_created"`
}

// Revenue chega com valores monetários formatados ("$20,000")
type Revenue struct {
	MonthlyTotal     string `json:"monthly_total"`
	AnnualProjection string `json:"annual_projection"`
	EDCSubscription  string `json:"edc_subscription"`
	ReloKits         string `json:"relo_kits"`
}

type Client struct {
	Name     string       `json:"name"`
	Industry string       `json:"industry"`
	Status   ClientStatus `json:"status"`
	Kits     int          `json:"kits"`
}

// DashboardData é o retorno de /edc_metrics já convertido para o domínio
type DashboardData struct {
	Metrics *EDCMetrics `json:"metrics"`
	Revenue *Revenue    `json:"revenue"`
	Clients []Client    `json:"clients"`
}

// AIStatus classifica o modo de geração de conteúdo informado pelo /health
type AIStatus string

const (
	AIStatusChecking AIStatus = "checking"
	AIStatusActive   AIStatus = "active"
	AIStatusTemplate AIStatus = "template"
	AIStatusError    AIStatus = "error"
)

// ClassifyAIStatus converte a flag ai_blog_generation no status do badge
func ClassifyAIStatus(aiBlogGeneration bool) AIStatus {
	if aiBlogGeneration {
		return AIStatusActive
	}
	return AIStatusTemplate
}

// Badge retorna o texto exibido no cabeçalho para o status
func (s AIStatus) Badge() string {
	switch s {
	case AIStatusActive:
		return "🤖 AI Active"
	case AIStatusTemplate:
		return "📝 Template Mode"
	case AIStatusError:
		return "⚠️ Connection Error"
	default:
		return "⏳ Checking..."
	}
}

// BadgeColor retorna as classes de cor do badge
func (s AIStatus) BadgeColor() string {
	switch s {
	case AIStatusActive:
		return "bg-green-100 text-green-800"
	case AIStatusTemplate:
		return "bg-yellow-100 text-yellow-800"
	case AIStatusChecking:
		return "bg-gray-100 text-gray-800"
	default:
		return "bg-red-100 text-red-800"
	}
}

// ModeLabel é o modo exibido enquanto um kit é gerado
func (s AIStatus) ModeLabel() string {
	if s == AIStatusActive {
		return "AI Mode"
	}
	return "Template Mode"
}

// DashboardSnapshot é a cópia do estado do painel entregue aos handlers
type DashboardSnapshot struct {
	Data      *DashboardData `json:"data"`
	AIStatus  AIStatus       `json:"ai_status"`
	Loading   bool           `json:"loading"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// Metrics retorna os indicadores ou nil quando ainda não há dados
func (s DashboardSnapshot) Metrics() *EDCMetrics {
	if s.Data == nil {
		return nil
	}
	return s.Data.Metrics
}

func (s DashboardSnapshot) Revenue() *Revenue {
	if s.Data == nil {
		return nil
	}
	return s.Data.Revenue
}

func (s DashboardSnapshot) Clients() []Client {
	if s.Data == nil {
		return nil
	}
	return s.Data.Clients
}

// Pricing reúne os valores comerciais que antes ficavam espalhados pelos componentes
type Pricing struct {
	KitUnitPrice      int64
	EDCSubscription   int64
	ReloKits          int64
	MonthlyGoal       int64
	SocialPostsPerKit int
}

// DefaultPricing são os valores usados quando nada é configurado
func DefaultPricing() Pricing {
	return Pricing{
		KitUnitPrice:      750,
		EDCSubscription:   2000,
		ReloKits:          15000,
		MonthlyGoal:       100000,
		SocialPostsPerKit: 4,
	}
}
