package kitgen

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/mcpclient"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"github.com/vfg2006/mcp-dashboard/internal/observability"
	"github.com/vfg2006/mcp-dashboard/pkg/utils"
)

// Generator controla a geração de kits de realocação, uma por vez
type Generator interface {
	Submit(req domain.KitRequest) (domain.KitStatus, error)
	Abort() (domain.KitStatus, error)
	Current() domain.KitStatus
	Prefill(req domain.KitRequest) domain.KitStatus
	Wait()
}

type Service struct {
	mcpService mcp.MCPIntegrator
	baseCtx    context.Context
	timeout    time.Duration
	now        func() time.Time
	newID      func() (string, error)

	mu      sync.Mutex
	status  domain.KitStatus
	cancel  context.CancelCauseFunc
	running sync.WaitGroup
}

// NewService cria o gerador. As gerações herdam baseCtx, então cancelá-lo
// interrompe a geração em andamento no desligamento.
func NewService(baseCtx context.Context, mcpService mcp.MCPIntegrator, timeout time.Duration) *Service {
	return &Service{
		mcpService: mcpService,
		baseCtx:    baseCtx,
		timeout:    timeout,
		now:        time.Now,
		newID:      utils.GenerateID,
		status: domain.KitStatus{
			State:   domain.KitStateIdle,
			Request: domain.DefaultKitRequest(),
		},
	}
}

// Submit valida o formulário e inicia a geração em segundo plano
func (s *Service) Submit(req domain.KitRequest) (domain.KitStatus, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return s.Current(), &ValidationError{Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Generating() {
		return s.status, ErrGenerationInProgress
	}

	id, err := s.newID()
	if err != nil {
		return s.status, errors.Wrap(err, "erro ao gerar o ID do kit")
	}

	ctx, cancel := context.WithCancelCause(s.baseCtx)
	if s.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeoutCause(ctx, s.timeout, ErrGenerationTimeout)
		parentCancel := cancel
		cancel = func(cause error) {
			parentCancel(cause)
			cancelTimeout()
		}
	}

	startedAt := s.now()
	s.status = domain.KitStatus{
		ID:        id,
		State:     domain.KitStateGenerating,
		Request:   req,
		StartedAt: &startedAt,
	}
	s.cancel = cancel

	logrus.WithFields(logrus.Fields{
		"kit_id":   id,
		"keyword":  req.Keyword,
		"industry": req.Industry,
	}).Info("Iniciando geração de kit de realocação")

	s.running.Add(1)
	go s.generate(ctx, id, req)

	return s.status, nil
}

func (s *Service) generate(ctx context.Context, id string, req domain.KitRequest) {
	defer s.running.Done()

	result, err := s.mcpService.GenerateReloKit(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel(nil)
		s.cancel = nil
	}

	// Uma nova submissão só ocorre depois que esta termina, mas o ID evita
	// sobrescrever um estado que não pertence a esta geração
	if s.status.ID != id {
		return
	}

	finishedAt := s.now()
	s.status.FinishedAt = &finishedAt

	if err == nil {
		s.status.State = domain.KitStateSuccess
		s.status.Result = result
		observability.ObserveKitGeneration("success")
		logrus.WithFields(logrus.Fields{
			"kit_id":     id,
			"word_count": result.WordCount,
			"method":     result.GenerationMethod,
		}).Info("Kit de realocação gerado com sucesso")
		return
	}

	kind, message := classify(ctx, err)
	s.status.State = domain.KitStateError
	s.status.ErrorKind = kind
	s.status.Error = message
	observability.ObserveKitGeneration(string(kind))

	logrus.WithError(err).WithFields(logrus.Fields{
		"kit_id":     id,
		"error_kind": kind,
	}).Error("Erro ao gerar kit de realocação")
}

// classify converte a falha na mensagem mostrada ao operador
func classify(ctx context.Context, err error) (domain.KitErrorKind, string) {
	switch cause := context.Cause(ctx); {
	case errors.Is(cause, ErrGenerationAborted):
		return domain.KitErrorAborted, ErrGenerationAborted.Error()
	case errors.Is(cause, ErrGenerationTimeout), errors.Is(err, mcpclient.ErrTimeout):
		return domain.KitErrorTimeout, ErrGenerationTimeout.Error()
	}

	var statusErr *mcpclient.StatusError
	if errors.As(err, &statusErr) {
		return domain.KitErrorFailed, ErrGenerationFailed.Error()
	}

	return domain.KitErrorFailed, err.Error()
}

// Abort cancela a geração em andamento; o estado final é gravado pela goroutine
func (s *Service) Abort() (domain.KitStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.status.Generating() || s.cancel == nil {
		return s.status, ErrNotGenerating
	}

	logrus.WithField("kit_id", s.status.ID).Info("Abortando geração de kit")
	s.cancel(ErrGenerationAborted)

	return s.status, nil
}

// Current retorna uma cópia do estado do gerador
func (s *Service) Current() domain.KitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.status
	if status.Result != nil {
		result := *status.Result
		status.Result = &result
	}
	return status
}

// Prefill troca o formulário exibido quando não há geração em andamento
func (s *Service) Prefill(req domain.KitRequest) domain.KitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.status.Generating() {
		s.status = domain.KitStatus{
			State:   domain.KitStateIdle,
			Request: req,
		}
	}
	return s.status
}

// Wait bloqueia até a geração em andamento terminar
func (s *Service) Wait() {
	s.running.Wait()
}
