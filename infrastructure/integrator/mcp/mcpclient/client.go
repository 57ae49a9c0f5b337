package mcpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	mcpdomain "github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/domain"
	"github.com/vfg2006/mcp-dashboard/internal/config"
	"github.com/vfg2006/mcp-dashboard/internal/observability"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	EndpointEDCMetrics      = "/edc_metrics"
	EndpointHealth          = "/health"
	EndpointGenerateReloKit = "/generate_relo_kit"
)

// Tamanho máximo do corpo de erro guardado no StatusError
const maxErrorBody = 1024

type Client interface {
	GetEDCMetrics(ctx context.Context) (*mcpdomain.EDCMetricsResponse, error)
	GetHealth(ctx context.Context) (*mcpdomain.HealthResponse, error)
	// GenerateReloKit devolve o corpo bruto para que o chamador valide o formato
	GenerateReloKit(ctx context.Context, req mcpdomain.GenerateReloKitRequest) ([]byte, error)
}

type MCPClient struct {
	httpClient     *http.Client
	baseURL        string
	metricsTimeout time.Duration
	healthTimeout  time.Duration
}

// NewClient cria o cliente da API do MCP Framework. O tempo limite da geração de
// kits é controlado pelo contexto recebido.
func NewClient(cfg *config.Config) Client {
	return NewClientWithHTTP(cfg, &http.Client{})
}

func NewClientWithHTTP(cfg *config.Config, httpClient *http.Client) Client {
	return &MCPClient{
		httpClient:     httpClient,
		baseURL:        cfg.MCP.URL,
		metricsTimeout: cfg.MCP.MetricsTimeout,
		healthTimeout:  cfg.MCP.HealthTimeout,
	}
}

func (c *MCPClient) GetEDCMetrics(ctx context.Context) (*mcpdomain.EDCMetricsResponse, error) {
	ctx, cancel := withOptionalTimeout(ctx, c.metricsTimeout)
	defer cancel()

	body, err := c.do(ctx, http.MethodGet, EndpointEDCMetrics, nil)
	if err != nil {
		return nil, err
	}

	var response mcpdomain.EDCMetricsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, newRequestError(ErrDecode, http.MethodGet, EndpointEDCMetrics, err)
	}

	return &response, nil
}

func (c *MCPClient) GetHealth(ctx context.Context) (*mcpdomain.HealthResponse, error) {
	ctx, cancel := withOptionalTimeout(ctx, c.healthTimeout)
	defer cancel()

	body, err := c.do(ctx, http.MethodGet, EndpointHealth, nil)
	if err != nil {
		return nil, err
	}

	var response mcpdomain.HealthResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, newRequestError(ErrDecode, http.MethodGet, EndpointHealth, err)
	}

	if response.Features == nil {
		return nil, newRequestError(ErrDecode, http.MethodGet, EndpointHealth, errors.New("campo features ausente"))
	}

	return &response, nil
}

func (c *MCPClient) GenerateReloKit(ctx context.Context, req mcpdomain.GenerateReloKitRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "mcp: erro ao serializar requisição de geração")
	}

	return c.do(ctx, http.MethodPost, EndpointGenerateReloKit, payload)
}

// do executa a requisição e devolve o corpo de respostas 2xx
func (c *MCPClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	start := time.Now()
	body, err := c.roundTrip(ctx, method, endpoint, payload)
	observability.ObserveUpstream(endpoint, outcome(err), time.Since(start))
	return body, err
}

func (c *MCPClient) roundTrip(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "mcp: erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyContext(ctx, newRequestError(ErrTransport, method, endpoint, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Method:   method,
			Endpoint: endpoint,
			Code:     resp.StatusCode,
			Body:     string(b),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyContext(ctx, newRequestError(ErrTransport, method, endpoint, err))
	}

	return body, nil
}

// classifyContext troca o tipo do erro quando a causa foi o contexto
func classifyContext(ctx context.Context, reqErr *RequestError) error {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		reqErr.Kind = ErrTimeout
	case context.Canceled:
		reqErr.Kind = ErrCanceled
	}
	return reqErr
}

func withOptionalTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("http_%d", statusErr.Code)
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrCanceled):
		return "canceled"
	default:
		return "transport_error"
	}
}
