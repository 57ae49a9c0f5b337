package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcp-dashboard/internal/observability"
)

// JobConfig representa a configuração de um job agendado
type JobConfig struct {
	Name         string
	CronSchedule string
	Enabled      bool
	// Timeout limita cada execução; zero significa sem limite próprio
	Timeout time.Duration
}

// job executa uma tarefa periódica, ignorando disparos enquanto outra execução
// ainda está em andamento
type job struct {
	scheduler *gocron.Scheduler
	config    JobConfig
	task      func(ctx context.Context) error

	baseCtx         context.Context
	running         bool
	mutex           sync.Mutex
	wg              sync.WaitGroup
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	runs            int
}

func newJob(config JobConfig, task func(ctx context.Context) error) *job {
	logrus.WithFields(logrus.Fields{
		"job":           config.Name,
		"cron_schedule": config.CronSchedule,
		"sync_enabled":  config.Enabled,
	}).Info("Configuração do job agendado carregada")

	return &job{
		scheduler: gocron.NewScheduler(time.Local),
		config:    config,
		task:      task,
		baseCtx:   context.Background(),
	}
}

// Start agenda o job e o para quando ctx for cancelado
func (j *job) Start(ctx context.Context) error {
	j.mutex.Lock()
	j.baseCtx = ctx
	j.mutex.Unlock()

	if !j.config.Enabled {
		logrus.WithField("job", j.config.Name).Info("Job desabilitado por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  j.config.Name,
		"cron": j.config.CronSchedule,
	}).Info("Iniciando agendador")

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		j.run()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o job %s: %w", j.config.Name, err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", j.config.Name).Info("Parando agendador")
		j.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução fora do agendamento
func (j *job) TriggerManualSync() bool {
	j.mutex.Lock()
	if j.running {
		j.mutex.Unlock()
		logrus.WithField("job", j.config.Name).Info("Job já em andamento, ignorando solicitação manual")
		return false
	}
	j.mutex.Unlock()

	logrus.WithField("job", j.config.Name).Info("Iniciando execução manual do job")
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.run()
	}()
	return true
}

// Wait bloqueia até as execuções manuais em andamento terminarem
func (j *job) Wait() {
	j.wg.Wait()
}

func (j *job) run() {
	j.mutex.Lock()
	if j.running {
		j.mutex.Unlock()
		logrus.WithField("job", j.config.Name).Info("Job já em andamento, ignorando")
		return
	}
	j.running = true
	j.lastStartedAt = time.Now()
	ctx := j.baseCtx
	j.mutex.Unlock()

	if j.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.config.Timeout)
		defer cancel()
	}

	err := j.task(ctx)
	observability.ObserveJobRun(j.config.Name, err)

	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.running = false
	j.runs++
	j.lastCompletedAt = time.Now()
	j.lastError = ""

	fields := logrus.Fields{
		"job":      j.config.Name,
		"duration": j.lastCompletedAt.Sub(j.lastStartedAt).String(),
	}
	if err != nil {
		j.lastError = err.Error()
		logrus.WithError(err).WithFields(fields).Error("Job finalizado com erro")
		return
	}
	logrus.WithFields(fields).Info("Job finalizado")
}

// GetStatus retorna o status atual do job
func (j *job) GetStatus() map[string]any {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	return map[string]any{
		"sync_enabled":           j.config.Enabled,
		"sync_cron":              j.config.CronSchedule,
		"running":                j.running,
		"runs":                   j.runs,
		"last_error":             j.lastError,
		"last_sync_started_at":   j.lastStartedAt,
		"last_sync_completed_at": j.lastCompletedAt,
	}
}
