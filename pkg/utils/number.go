package utils

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands formata inteiros com separador de milhar (1234567 -> "1,234,567")
func FormatThousands(n int64) string {
	return humanize.Comma(n)
}

// FormatFixed formata com um número fixo de casas decimais
func FormatFixed(f float64, decimals int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', decimals, 64)
}

// Percentage retorna part/total*100, ou 0 quando o total é zero
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// ClampPercent limita o valor ao intervalo [0, 100]
func ClampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}
