package domain

import (
	"fmt"
	"strings"
)

type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "active"
	ClientStatusPending ClientStatus = "pending"
	ClientStatusPaused  ClientStatus = "paused"
)

const defaultIndustryIcon = "📊"

var industryIcons = map[string]string{
	"healthcare":   "🏥",
	"construction": "🏗️",
	"tech":         "💻",
	"vr_gaming":    "🎮",
}

var statusColors = map[ClientStatus]string{
	ClientStatusActive:  "bg-green-100 text-green-800",
	ClientStatusPending: "bg-yellow-100 text-yellow-800",
	ClientStatusPaused:  "bg-gray-100 text-gray-800",
}

// IndustryIcon retorna o ícone do setor, ou o ícone padrão para setores desconhecidos
func IndustryIcon(industry string) string {
	if icon, ok := industryIcons[industry]; ok {
		return icon
	}
	return defaultIndustryIcon
}

// IndustryLabel retorna o setor ou "General" quando ausente
func IndustryLabel(industry string) string {
	if strings.TrimSpace(industry) == "" {
		return "General"
	}
	return industry
}

// KitRevenue formata o valor estimado dos kits do cliente, sem separador de milhar
func KitRevenue(kits int, unitPrice int64) string {
	return fmt.Sprintf("$%d", int64(kits)*unitPrice)
}

type ClientCard struct {
	Index         int          `json:"index"`
	Name          string       `json:"name"`
	Icon          string       `json:"icon"`
	Status        ClientStatus `json:"status"`
	StatusLabel   string       `json:"status_label"`
	StatusColor   string       `json:"status_color"`
	IndustryLabel string       `json:"industry_label"`
	Industry      string       `json:"industry"`
	Kits          int          `json:"kits"`
	KitRevenue    string       `json:"kit_revenue"`
	UnitPrice     string       `json:"unit_price"`
	Expanded      bool         `json:"expanded"`
}

// BuildClientCard monta o cartão de um cliente; expanded indica se o painel de
// detalhes está aberto
func BuildClientCard(index int, client Client, expanded bool, pricing Pricing) ClientCard {
	return ClientCard{
		Index:         index,
		Name:          client.Name,
		Icon:          IndustryIcon(client.Industry),
		Status:        client.Status,
		StatusLabel:   strings.ToUpper(string(client.Status)),
		StatusColor:   statusColors[client.Status],
		IndustryLabel: IndustryLabel(client.Industry),
		Industry:      client.Industry,
		Kits:          client.Kits,
		KitRevenue:    KitRevenue(client.Kits, pricing.KitUnitPrice),
		UnitPrice:     fmt.Sprintf("$%d", pricing.KitUnitPrice),
		Expanded:      expanded,
	}
}

// BuildClientCards monta todos os cartões; expanded contém os índices abertos
func BuildClientCards(clients []Client, expanded map[int]bool, pricing Pricing) []ClientCard {
	cards := make([]ClientCard, 0, len(clients))
	for i, client := range clients {
		cards = append(cards, BuildClientCard(i, client, expanded[i], pricing))
	}
	return cards
}
