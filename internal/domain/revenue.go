package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/mcp-dashboard/pkg/utils"
)

// Raio do círculo de progresso da meta, em pixels do SVG
const progressArcRadius = 56

var ErrInvalidCurrency = errors.New("valor monetário inválido")

var currencyCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// ParseAmount aceita números com "$", separador de milhar e casas decimais
// ("$72,500.50", "1,247", "812.0")
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := currencyCleaner.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return decimal.Zero, errors.Wrapf(ErrInvalidCurrency, "%q", value)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrInvalidCurrency, "%q", value)
	}

	return amount, nil
}

// ParseCurrency converte texto monetário ("$20,000") para a parte inteira do valor
func ParseCurrency(value string) (int64, error) {
	amount, err := ParseAmount(value)
	if err != nil {
		return 0, err
	}
	return amount.IntPart(), nil
}

// FormatCurrency formata um inteiro como "$1,234"
func FormatCurrency(amount int64) string {
	return "$" + utils.FormatThousands(amount)
}

type BreakdownItem struct {
	Label           string  `json:"label"`
	Value           string  `json:"value"`
	Color           string  `json:"color"`
	Amount          int64   `json:"amount"`
	Percentage      float64 `json:"percentage"`
	PercentageLabel string  `json:"percentage_label"`
	BarWidth        float64 `json:"bar_width"`
}

type GrowthStep struct {
	Period string `json:"period"`
	Target string `json:"target"`
	Final  bool   `json:"final"`
}

type RevenueTracker struct {
	Monthly          int64           `json:"monthly"`
	Annual           int64           `json:"annual"`
	MonthlyDisplay   string          `json:"monthly_display"`
	AnnualDisplay    string          `json:"annual_display"`
	Breakdown        []BreakdownItem `json:"breakdown"`
	Goal             int64           `json:"goal"`
	GoalDisplay      string          `json:"goal_display"`
	Progress         float64         `json:"progress"`
	ProgressLabel    string          `json:"progress_label"`
	ProgressClamped  float64         `json:"progress_clamped"`
	ArcCircumference string          `json:"arc_circumference"`
	ArcOffset        string          `json:"arc_offset"`
	Remaining        int64           `json:"remaining"`
	RemainingDisplay string          `json:"remaining_display"`
	GrowthPath       []GrowthStep    `json:"growth_path"`
}

// BuildRevenueTracker calcula o resumo de receita e o progresso até a meta mensal.
// Com receita mensal zero os percentuais são 0; acima da meta o texto mostra o
// valor real e o arco fica limitado a 100%.
func BuildRevenueTracker(revenue *Revenue, pricing Pricing) *RevenueTracker {
	if revenue == nil {
		return nil
	}

	monthly, _ := ParseCurrency(revenue.MonthlyTotal)
	annual, _ := ParseCurrency(revenue.AnnualProjection)

	progress := utils.Percentage(monthly, pricing.MonthlyGoal)
	clamped := utils.ClampPercent(progress)
	circumference := 2 * math.Pi * progressArcRadius

	remaining := pricing.MonthlyGoal - monthly
	if remaining < 0 {
		remaining = 0
	}

	return &RevenueTracker{
		Monthly:        monthly,
		Annual:         annual,
		MonthlyDisplay: FormatCurrency(monthly),
		AnnualDisplay:  FormatCurrency(annual),
		Breakdown: []BreakdownItem{
			breakdownItem("EDC Subscription", "bg-blue-500", revenue.EDCSubscription, pricing.EDCSubscription, monthly),
			breakdownItem("Relocator Kits", "bg-green-500", revenue.ReloKits, pricing.ReloKits, monthly),
		},
		Goal:             pricing.MonthlyGoal,
		GoalDisplay:      formatGoal(pricing.MonthlyGoal),
		Progress:         utils.RoundWithTwoDecimalPlace(progress),
		ProgressLabel:    utils.FormatFixed(progress, 1),
		ProgressClamped:  clamped,
		ArcCircumference: utils.FormatFixed(circumference, 2),
		ArcOffset:        utils.FormatFixed(circumference*(1-clamped/100), 2),
		Remaining:        remaining,
		RemainingDisplay: FormatCurrency(remaining),
		GrowthPath:       growthPath(monthly),
	}
}

// breakdownItem usa o valor enviado pela API quando ele é um valor monetário válido;
// caso contrário usa o valor configurado
func breakdownItem(label, color, reported string, fallback, monthly int64) BreakdownItem {
	amount, err := ParseCurrency(reported)
	if err != nil {
		amount = fallback
		reported = FormatCurrency(fallback)
	}

	percentage := utils.Percentage(amount, monthly)

	return BreakdownItem{
		Label:           label,
		Value:           reported,
		Color:           color,
		Amount:          amount,
		Percentage:      utils.RoundWithTwoDecimalPlace(percentage),
		PercentageLabel: utils.FormatFixed(percentage, 0),
		BarWidth:        utils.ClampPercent(percentage),
	}
}

func formatGoal(goal int64) string {
	if goal%1000 == 0 {
		return fmt.Sprintf("$%dK/mo", goal/1000)
	}
	return FormatCurrency(goal) + "/mo"
}

var growthMilestones = []struct {
	period string
	target int64
}{
	{"Month 1-2", 17000},
	{"Month 3-4", 32000},
	{"Month 5-6", 50000},
	{"Month 7+", 100000},
}

func growthPath(monthly int64) []GrowthStep {
	steps := make([]GrowthStep, 0, len(growthMilestones))
	for i, m := range growthMilestones {
		target := fmt.Sprintf("$%dK", m.target/1000)
		switch {
		case i == len(growthMilestones)-1:
			target += " 🎯"
		case monthly >= m.target:
			target += " ✅"
		}
		steps = append(steps, GrowthStep{
			Period: m.period,
			Target: target,
			Final:  i == len(growthMilestones)-1,
		})
	}
	return steps
}
