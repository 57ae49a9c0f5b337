package domain

import (
	"fmt"
	"math"

	"github.com/vfg2006/mcp-dashboard/pkg/utils"
)

type StatCard struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// BuildMetricsPanel monta os cinco cartões do painel de métricas, na ordem fixa.
// Sem métricas não há cartões.
func BuildMetricsPanel(metrics *EDCMetrics) []StatCard {
	if metrics == nil {
		return nil
	}

	return []StatCard{
		{
			Label:       "IT Growth",
			Value:       metrics.ITGrowth,
			Icon:        "📈",
			Color:       "from-green-400 to-emerald-600",
			Description: "5-year sector expansion",
		},
		{
			Label:       "Tech Firms",
			Value:       techFirmsValue(metrics),
			Icon:        "🏢",
			Color:       "from-blue-400 to-blue-600",
			Description: "Established companies",
		},
		{
			Label:       "Average Wage",
			Value:       avgWageValue(metrics),
			Icon:        "💰",
			Color:       "from-yellow-400 to-orange-600",
			Description: "Tech sector compensation",
		},
		{
			Label:       "Annual Relos",
			Value:       metrics.AnnualRelos,
			Icon:        "🚀",
			Color:       "from-purple-400 to-purple-600",
			Description: "Successful relocations",
		},
		{
			Label:       "Jobs Created",
			Value:       metrics.JobsCreated,
			Icon:        "👥",
			Color:       "from-indigo-400 to-indigo-600",
			Description: "Through EDC initiatives",
		},
	}
}

func techFirmsValue(metrics *EDCMetrics) string {
	if metrics.TechFirmsText != "" {
		return metrics.TechFirmsText
	}
	return utils.FormatThousands(metrics.TechFirms)
}

func avgWageValue(metrics *EDCMetrics) string {
	if metrics.AvgWageText != "" {
		return metrics.AvgWageText
	}
	return FormatWageK(metrics.AvgWage)
}

// FormatWageK escala o salário para milhares: 72500 -> "$73K"
func FormatWageK(wage float64) string {
	return fmt.Sprintf("$%sK", utils.FormatFixed(math.Round(wage/1000), 0))
}
