package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcp-dashboard/internal/scheduler"
	"github.com/vfg2006/mcp-dashboard/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMetrics = "metrics"
	CronJobTypeHealth  = "health"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DashboardRefreshService *scheduler.DashboardRefreshService
	HealthCheckService      *scheduler.HealthCheckService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		started := map[string]bool{}

		switch cronType {
		case CronJobTypeMetrics:
			if services.DashboardRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do painel não disponível", nil)
				return
			}
			started[scheduler.JobNameDashboardRefresh] = services.DashboardRefreshService.TriggerManualSync()

		case CronJobTypeHealth:
			if services.HealthCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação da IA não disponível", nil)
				return
			}
			started[scheduler.JobNameHealthCheck] = services.HealthCheckService.TriggerManualSync()

		case CronJobTypeAll:
			if services.DashboardRefreshService != nil {
				started[scheduler.JobNameDashboardRefresh] = services.DashboardRefreshService.TriggerManualSync()
			}
			if services.HealthCheckService != nil {
				started[scheduler.JobNameHealthCheck] = services.HealthCheckService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: metrics, health, all", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.DashboardRefreshService != nil {
			status[scheduler.JobNameDashboardRefresh] = services.DashboardRefreshService.GetStatus()
		}
		if services.HealthCheckService != nil {
			status[scheduler.JobNameHealthCheck] = services.HealthCheckService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
