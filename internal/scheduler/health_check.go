package scheduler

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/mcp-dashboard/internal/config"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"github.com/vfg2006/mcp-dashboard/internal/usecases/dashboarding"
)

const JobNameHealthCheck = "health_check"

var ErrAIUnreachable = errors.New("status da IA indisponível")

// HealthCheckService reavalia periodicamente o badge de status da IA
type HealthCheckService struct {
	*job
}

func NewHealthCheckService(dashboard dashboarding.Dashboarder, appConfig *config.Config) *HealthCheckService {
	cfg := JobConfig{
		Name:         JobNameHealthCheck,
		CronSchedule: appConfig.HealthCheck.CronSchedule,
		Enabled:      appConfig.HealthCheck.Enabled,
		Timeout:      appConfig.HealthCheck.Timeout,
	}

	return &HealthCheckService{
		job: newJob(cfg, func(ctx context.Context) error {
			if dashboard.CheckAIStatus(ctx) == domain.AIStatusError {
				return ErrAIUnreachable
			}
			return nil
		}),
	}
}
