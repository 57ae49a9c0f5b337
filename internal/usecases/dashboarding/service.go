package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"github.com/vfg2006/mcp-dashboard/internal/observability"
)

// Dashboarder é o estado do painel consumido pelos handlers e pelo agendador
type Dashboarder interface {
	Load(ctx context.Context)
	RefreshMetrics(ctx context.Context) error
	CheckAIStatus(ctx context.Context) domain.AIStatus
	Loading() bool
	Snapshot() domain.DashboardSnapshot
}

type Service struct {
	mcpService mcp.MCPIntegrator
	now        func() time.Time

	mu        sync.RWMutex
	data      *domain.DashboardData
	aiStatus  domain.AIStatus
	loading   bool
	fetchedAt time.Time

	// Cada busca recebe um número ao começar; respostas de buscas mais antigas
	// que a última aplicada são descartadas
	metricsSeq, metricsApplied uint64
	healthSeq, healthApplied   uint64
}

func NewService(mcpService mcp.MCPIntegrator) *Service {
	observability.SetAIStatus(string(domain.AIStatusChecking))

	return &Service{
		mcpService: mcpService,
		now:        time.Now,
		aiStatus:   domain.AIStatusChecking,
		loading:    true,
	}
}

// Load dispara as buscas de métricas e de saúde em paralelo e espera as duas
func (s *Service) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_ = s.RefreshMetrics(ctx)
	}()

	go func() {
		defer wg.Done()
		s.CheckAIStatus(ctx)
	}()

	wg.Wait()
}

// RefreshMetrics busca /edc_metrics. Em caso de falha os dados anteriores são
// mantidos e o carregamento termina do mesmo jeito.
func (s *Service) RefreshMetrics(ctx context.Context) error {
	s.mu.Lock()
	s.metricsSeq++
	seq := s.metricsSeq
	s.mu.Unlock()

	data, err := s.mcpService.GetDashboardData(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar métricas do EDC")
		return err
	}

	if seq < s.metricsApplied {
		logrus.WithField("seq", seq).Debug("Resposta de métricas mais antiga que a atual, descartada")
		return nil
	}

	s.metricsApplied = seq
	s.data = data
	s.fetchedAt = s.now()

	logrus.WithField("clients", len(data.Clients)).Debug("Métricas do EDC atualizadas")

	return nil
}

// CheckAIStatus consulta /health e classifica o modo de geração de conteúdo
func (s *Service) CheckAIStatus(ctx context.Context) domain.AIStatus {
	s.mu.Lock()
	s.healthSeq++
	seq := s.healthSeq
	s.mu.Unlock()

	status := domain.AIStatusError

	available, err := s.mcpService.GetAIAvailability(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao verificar o status da IA")
	} else {
		status = domain.ClassifyAIStatus(available)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.healthApplied {
		return s.aiStatus
	}

	s.healthApplied = seq
	s.aiStatus = status
	observability.SetAIStatus(string(status))

	return status
}

func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Snapshot retorna uma cópia do estado atual
func (s *Service) Snapshot() domain.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.DashboardSnapshot{
		Data:      copyData(s.data),
		AIStatus:  s.aiStatus,
		Loading:   s.loading,
		FetchedAt: s.fetchedAt,
	}
}

func copyData(data *domain.DashboardData) *domain.DashboardData {
	if data == nil {
		return nil
	}

	cp := &domain.DashboardData{
		Clients: append([]domain.Client(nil), data.Clients...),
	}
	if data.Metrics != nil {
		metrics := *data.Metrics
		cp.Metrics = &metrics
	}
	if data.Revenue != nil {
		revenue := *data.Revenue
		cp.Revenue = &revenue
	}
	return cp
}
