package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Limite de caracteres da prévia do blog
const previewLength = 1000

// Método de geração que identifica conteúdo produzido por IA
const GenerationMethodAI = "openai_gpt4"

var (
	ErrMissingKeyword  = errors.New("keyword is required")
	ErrMissingQuote    = errors.New("quote is required")
	ErrMissingGeo      = errors.New("geo is required")
	ErrUnknownIndustry = errors.New("unknown industry template")
)

type IndustryOption struct {
	Value       string `json:"value"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// KitIndustries são os modelos de setor aceitos pelo gerador
var KitIndustries = []IndustryOption{
	{Value: "vr_gaming", Icon: "🎮", Label: "VR/Gaming Studios", Description: "Immersive tech & gaming"},
	{Value: "tech_startups", Icon: "💻", Label: "Tech Startups", Description: "SaaS & software dev"},
	{Value: "construction", Icon: "🏗️", Label: "Construction", Description: "Real estate development"},
	{Value: "healthcare", Icon: "🏥", Label: "Healthcare", Description: "Medical practices"},
}

// Setores dos cartões de cliente que correspondem a um modelo do gerador com outro nome
var kitIndustryAliases = map[string]string{
	"tech": "tech_startups",
}

// KitIndustryFor converte o setor de um cliente no modelo do gerador; ok=false
// quando não há modelo correspondente
func KitIndustryFor(industry string) (string, bool) {
	if alias, ok := kitIndustryAliases[industry]; ok {
		industry = alias
	}
	return industry, IsKitIndustry(industry)
}

// IsKitIndustry informa se o setor é um dos modelos do gerador
func IsKitIndustry(industry string) bool {
	for _, option := range KitIndustries {
		if option.Value == industry {
			return true
		}
	}
	return false
}

type KitRequest struct {
	Keyword  string `json:"keyword"`
	Quote    string `json:"quote"`
	Geo      string `json:"geo"`
	Industry string `json:"industry"`
}

// DefaultKitRequest é o formulário inicial do gerador
func DefaultKitRequest() KitRequest {
	return KitRequest{
		Quote:    "play here, build here",
		Geo:      "Sarasota",
		Industry: "vr_gaming",
	}
}

// KitRequestForClient pré-preenche o formulário a partir de um cliente
func KitRequestForClient(client Client) KitRequest {
	req := DefaultKitRequest()
	req.Keyword = client.Name
	if industry, ok := KitIndustryFor(client.Industry); ok {
		req.Industry = industry
	}
	return req
}

// Normalize remove espaços das bordas de todos os campos
func (r KitRequest) Normalize() KitRequest {
	return KitRequest{
		Keyword:  strings.TrimSpace(r.Keyword),
		Quote:    strings.TrimSpace(r.Quote),
		Geo:      strings.TrimSpace(r.Geo),
		Industry: strings.TrimSpace(r.Industry),
	}
}

// Validate exige os campos de texto preenchidos e um setor conhecido
func (r KitRequest) Validate() error {
	switch {
	case r.Keyword == "":
		return ErrMissingKeyword
	case r.Quote == "":
		return ErrMissingQuote
	case r.Geo == "":
		return ErrMissingGeo
	case !IsKitIndustry(r.Industry):
		return errors.Wrapf(ErrUnknownIndustry, "%q", r.Industry)
	}
	return nil
}

// KitResult é a parte da resposta de geração que o painel inspeciona
type KitResult struct {
	WordCount        int    `json:"word_count"`
	GenerationMethod string `json:"generation_method"`
	Content          string `json:"content"`
}

// MethodLabel retorna "AI" para conteúdo gerado pelo GPT-4 e "Template" para o resto
func (r KitResult) MethodLabel() string {
	if r.GenerationMethod == GenerationMethodAI {
		return "AI"
	}
	return "Template"
}

// MethodIcon acompanha o MethodLabel na tela
func (r KitResult) MethodIcon() string {
	if r.GenerationMethod == GenerationMethodAI {
		return "🤖"
	}
	return "📝"
}

// Preview retorna os primeiros caracteres do conteúdo seguidos de "..."
func (r KitResult) Preview() string {
	content := r.Content
	if utf8.RuneCountInString(content) > previewLength {
		content = string([]rune(content)[:previewLength])
	}
	return content + "..."
}

type KitState string

const (
	KitStateIdle       KitState = "idle"
	KitStateGenerating KitState = "generating"
	KitStateSuccess    KitState = "success"
	KitStateError      KitState = "error"
)

// KitErrorKind distingue as falhas da geração para o operador
type KitErrorKind string

const (
	KitErrorFailed  KitErrorKind = "failed"
	KitErrorTimeout KitErrorKind = "timeout"
	KitErrorAborted KitErrorKind = "aborted"
)

// KitStatus é o estado do gerador em um instante
type KitStatus struct {
	ID         string       `json:"id,omitempty"`
	State      KitState     `json:"state"`
	Request    KitRequest   `json:"request"`
	Result     *KitResult   `json:"result,omitempty"`
	Error      string       `json:"error,omitempty"`
	ErrorKind  KitErrorKind `json:"error_kind,omitempty"`
	StartedAt  *time.Time   `json:"started_at,omitempty"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
}

func (s KitStatus) Generating() bool {
	return s.State == KitStateGenerating
}
