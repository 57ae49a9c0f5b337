// Package mcpdomain contém os formatos de dados trocados com a API do MCP Framework
package mcpdomain

import (
	"bytes"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FlexValue aceita texto ou número e guarda a representação textual recebida
type FlexValue string

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FlexValue(s)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("mcpdomain: valor %s não é texto nem número", data)
	}
	*v = FlexValue(data)
	return nil
}

func (v FlexValue) String() string {
	return string(v)
}

type Metrics struct {
	ITGrowth    FlexValue `json:"it_growth"`
	TechFirms   FlexValue `json:"tech_firms"`
	AvgWage     FlexValue `json:"avg_wage"`
	AnnualRelos FlexValue `json:"annual_relos"`
	JobsCreated FlexValue `json:"jobs_created"`
}

type Revenue struct {
	MonthlyTotal     string    `json:"monthly_total"`
	AnnualProjection string    `json:"annual_projection"`
	EDCSubscription  FlexValue `json:"edc_subscription"`
	ReloKits         FlexValue `json:"relo_kits"`
}

type Client struct {
	Name     string  `json:"name"`
	Industry *string `json:"industry"`
	Status   string  `json:"status"`
	Kits     int     `json:"kits"`
}

// EDCMetricsResponse é o corpo de GET /edc_metrics
type EDCMetricsResponse struct {
	Metrics *Metrics `json:"metrics"`
	Revenue *Revenue `json:"revenue"`
	Clients []Client `json:"clients"`
}

type HealthFeatures struct {
	AIBlogGeneration bool `json:"ai_blog_generation"`
}

// HealthResponse é o corpo de GET /health; só as features interessam ao painel
type HealthResponse struct {
	Status   string          `json:"status,omitempty"`
	Features *HealthFeatures `json:"features"`
}

// GenerateReloKitRequest é o corpo de POST /generate_relo_kit
type GenerateReloKitRequest struct {
	Keyword  string `json:"keyword"`
	Quote    string `json:"quote"`
	Geo      string `json:"geo"`
	Industry string `json:"industry"`
}

// Blog.WordCount chega como número JSON, inteiro ou com ".0"
type Blog struct {
	WordCount        float64 `json:"word_count"`
	GenerationMethod string  `json:"generation_method"`
	Content          string  `json:"content"`
}

type Outputs struct {
	Blog Blog `json:"blog"`
}

// GenerateReloKitResponse é a parte conhecida da resposta de geração
type GenerateReloKitResponse struct {
	Outputs Outputs `json:"outputs"`
}
