package scheduler

import (
	"context"

	"github.com/vfg2006/mcp-dashboard/internal/config"
	"github.com/vfg2006/mcp-dashboard/internal/usecases/dashboarding"
)

const JobNameDashboardRefresh = "dashboard_refresh"

// DashboardRefreshService atualiza periodicamente as métricas do EDC
type DashboardRefreshService struct {
	*job
}

func NewDashboardRefreshService(dashboard dashboarding.Dashboarder, appConfig *config.Config) *DashboardRefreshService {
	cfg := JobConfig{
		Name:         JobNameDashboardRefresh,
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		Enabled:      appConfig.DashboardRefresh.Enabled,
		Timeout:      appConfig.DashboardRefresh.Timeout,
	}

	return &DashboardRefreshService{
		job: newJob(cfg, func(ctx context.Context) error {
			return dashboard.RefreshMetrics(ctx)
		}),
	}
}
