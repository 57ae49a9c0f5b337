// Package view monta os modelos de página e renderiza os templates HTML do painel
package view

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
)

// ExpandParam é o parâmetro de query que carrega os cartões abertos
const ExpandParam = "expand"

type Page struct {
	AIStatus     domain.AIStatus         `json:"ai_status"`
	AIBadge      string                  `json:"ai_badge"`
	AIBadgeColor string                  `json:"ai_badge_color"`
	Loading      bool                    `json:"loading"`
	FetchedAt    time.Time               `json:"fetched_at"`
	Metrics      []domain.StatCard       `json:"metrics"`
	Revenue      *domain.RevenueTracker  `json:"revenue"`
	Clients      []ClientCardView        `json:"clients"`
	Kit          KitView                 `json:"kit"`
	Industries   []domain.IndustryOption `json:"industries"`
}

type ClientCardView struct {
	domain.ClientCard
	ToggleURL string `json:"toggle_url"`
	KitURL    string `json:"kit_url"`
}

type KitView struct {
	domain.KitStatus
	ModeLabel      string `json:"mode_label"`
	MethodLabel    string `json:"method_label,omitempty"`
	MethodIcon     string `json:"method_icon,omitempty"`
	Preview        string `json:"preview,omitempty"`
	SocialPosts    int    `json:"social_posts"`
	EstimatedValue string `json:"estimated_value"`
}

// BuildPage compõe o painel a partir do estado atual
func BuildPage(snapshot domain.DashboardSnapshot, kit domain.KitStatus, expanded map[int]bool, pricing domain.Pricing) Page {
	cards := domain.BuildClientCards(snapshot.Clients(), expanded, pricing)
	clients := make([]ClientCardView, 0, len(cards))
	for _, card := range cards {
		clients = append(clients, ClientCardView{
			ClientCard: card,
			ToggleURL:  ToggleURL(expanded, card.Index),
			KitURL:     fmt.Sprintf("/clients/%d/kit", card.Index),
		})
	}

	return Page{
		AIStatus:     snapshot.AIStatus,
		AIBadge:      snapshot.AIStatus.Badge(),
		AIBadgeColor: snapshot.AIStatus.BadgeColor(),
		Loading:      snapshot.Loading,
		FetchedAt:    snapshot.FetchedAt,
		Metrics:      domain.BuildMetricsPanel(snapshot.Metrics()),
		Revenue:      domain.BuildRevenueTracker(snapshot.Revenue(), pricing),
		Clients:      clients,
		Kit:          BuildKitView(kit, snapshot.AIStatus, pricing),
		Industries:   domain.KitIndustries,
	}
}

func BuildKitView(kit domain.KitStatus, aiStatus domain.AIStatus, pricing domain.Pricing) KitView {
	v := KitView{
		KitStatus:      kit,
		ModeLabel:      aiStatus.ModeLabel(),
		SocialPosts:    pricing.SocialPostsPerKit,
		EstimatedValue: fmt.Sprintf("$%d", pricing.KitUnitPrice),
	}

	if kit.Result != nil {
		v.MethodLabel = kit.Result.MethodLabel()
		v.MethodIcon = kit.Result.MethodIcon()
		v.Preview = kit.Result.Preview()
	}

	return v
}

// ParseExpanded lê os índices abertos de ?expand=; valores inválidos são ignorados
func ParseExpanded(query url.Values) map[int]bool {
	expanded := make(map[int]bool)
	for _, raw := range query[ExpandParam] {
		index, err := strconv.Atoi(raw)
		if err != nil || index < 0 {
			continue
		}
		expanded[index] = true
	}
	return expanded
}

// ToggleURL retorna o link que inverte apenas o cartão index, mantendo os demais
func ToggleURL(expanded map[int]bool, index int) string {
	indexes := make([]int, 0, len(expanded)+1)
	for i, open := range expanded {
		if open && i != index {
			indexes = append(indexes, i)
		}
	}
	if !expanded[index] {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	query := url.Values{}
	for _, i := range indexes {
		query.Add(ExpandParam, strconv.Itoa(i))
	}

	anchor := "#client-" + strconv.Itoa(index)
	if len(query) == 0 {
		return "/" + anchor
	}
	return "/?" + query.Encode() + anchor
}

// FormatFetchedAt descreve há quanto tempo os dados foram atualizados
func FormatFetchedAt(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}
