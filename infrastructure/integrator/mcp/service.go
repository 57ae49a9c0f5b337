package mcp

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	mcpdomain "github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/domain"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/mcpclient"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnexpectedShape indica uma resposta de geração sem outputs.blog utilizável
var ErrUnexpectedShape = errors.New("unexpected generation response format")

// Formato mínimo que o painel lê da resposta de geração; método e conteúdo
// ausentes viram "Template" e prévia vazia
const generationSchema = `{
	"type": "object",
	"required": ["outputs"],
	"properties": {
		"outputs": {
			"type": "object",
			"required": ["blog"],
			"properties": {
				"blog": {
					"type": "object",
					"required": ["word_count"],
					"properties": {
						"word_count": {"type": "integer", "minimum": 0},
						"generation_method": {"type": "string"},
						"content": {"type": "string"}
					}
				}
			}
		}
	}
}`

var generationSchemaLoader = gojsonschema.NewStringLoader(generationSchema)

type MCPIntegrator interface {
	GetDashboardData(ctx context.Context) (*domain.DashboardData, error)
	GetAIAvailability(ctx context.Context) (bool, error)
	GenerateReloKit(ctx context.Context, req domain.KitRequest) (*domain.KitResult, error)
}

type MCPService struct {
	Client mcpclient.Client
	schema *gojsonschema.Schema
}

func New(client mcpclient.Client) (MCPIntegrator, error) {
	schema, err := gojsonschema.NewSchema(generationSchemaLoader)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao compilar o schema da resposta de geração")
	}

	return &MCPService{
		Client: client,
		schema: schema,
	}, nil
}

func (s *MCPService) GetDashboardData(ctx context.Context) (*domain.DashboardData, error) {
	resp, err := s.Client.GetEDCMetrics(ctx)
	if err != nil {
		return nil, err
	}

	return toDashboardData(resp), nil
}

func (s *MCPService) GetAIAvailability(ctx context.Context) (bool, error) {
	resp, err := s.Client.GetHealth(ctx)
	if err != nil {
		return false, err
	}

	return resp.Features.AIBlogGeneration, nil
}

func (s *MCPService) GenerateReloKit(ctx context.Context, req domain.KitRequest) (*domain.KitResult, error) {
	body, err := s.Client.GenerateReloKit(ctx, mcpdomain.GenerateReloKitRequest{
		Keyword:  req.Keyword,
		Quote:    req.Quote,
		Geo:      req.Geo,
		Industry: req.Industry,
	})
	if err != nil {
		return nil, err
	}

	if err := s.validateGeneration(body); err != nil {
		return nil, err
	}

	var resp mcpdomain.GenerateReloKitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logrus.WithError(err).Warn("Erro ao decodificar a resposta de geração")
		return nil, ErrUnexpectedShape
	}

	blog := resp.Outputs.Blog
	return &domain.KitResult{
		WordCount:        int(blog.WordCount),
		GenerationMethod: blog.GenerationMethod,
		Content:          blog.Content,
	}, nil
}

func (s *MCPService) validateGeneration(body []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.Wrap(ErrUnexpectedShape, err.Error())
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		logrus.WithField("errors", details).Warn("Resposta de geração fora do formato esperado")
		return errors.Wrap(ErrUnexpectedShape, details[0])
	}

	return nil
}

// parseAmount trata valor ausente como zero; texto não numérico retorna ok=false
func parseAmount(v mcpdomain.FlexValue) (decimal.Decimal, bool) {
	if v == "" {
		return decimal.Zero, true
	}
	amount, err := domain.ParseAmount(v.String())
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

func toDashboardData(resp *mcpdomain.EDCMetricsResponse) *domain.DashboardData {
	data := &domain.DashboardData{
		Clients: make([]domain.Client, 0, len(resp.Clients)),
	}

	if m := resp.Metrics; m != nil {
		data.Metrics = &domain.EDCMetrics{
			ITGrowth:    m.ITGrowth.String(),
			AnnualRelos: m.AnnualRelos.String(),
			JobsCreated: m.JobsCreated.String(),
		}

		if amount, ok := parseAmount(m.TechFirms); ok {
			data.Metrics.TechFirms = amount.IntPart()
		} else {
			data.Metrics.TechFirmsText = m.TechFirms.String()
		}

		if amount, ok := parseAmount(m.AvgWage); ok {
			data.Metrics.AvgWage = amount.InexactFloat64()
		} else {
			data.Metrics.AvgWageText = m.AvgWage.String()
		}
	}

	if r := resp.Revenue; r != nil {
		data.Revenue = &domain.Revenue{
			MonthlyTotal:     r.MonthlyTotal,
			AnnualProjection: r.AnnualProjection,
			EDCSubscription:  r.EDCSubscription.String(),
			ReloKits:         r.ReloKits.String(),
		}
	}

	for _, c := range resp.Clients {
		industry := ""
		if c.Industry != nil {
			industry = *c.Industry
		}
		data.Clients = append(data.Clients, domain.Client{
			Name:     c.Name,
			Industry: industry,
			Status:   domain.ClientStatus(c.Status),
			Kits:     c.Kits,
		})
	}

	return data
}
