package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/mcp-dashboard/internal/api/handler/router"
	"github.com/vfg2006/mcp-dashboard/internal/observability"
	"github.com/vfg2006/mcp-dashboard/pkg/middleware"
)

func Healthcheck(services DashboardServices) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(services),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: observability.Handler(),
		},
	}
}

// Pages são as rotas HTML usadas pelo navegador
func Pages(services DashboardServices) []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     GetDashboardPage(services),
			Middlewares: []alice.Constructor{middleware.NoStore()},
		},
		{
			Path:    "/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(services),
		},
		{
			Path:    "/kits",
			Method:  http.MethodPost,
			Handler: SubmitKitForm(services),
		},
		{
			Path:    "/kits/abort",
			Method:  http.MethodPost,
			Handler: AbortKitForm(services),
		},
		{
			Path:    "/clients/:index/kit",
			Method:  http.MethodGet,
			Handler: PrefillKitForClient(services),
		},
	}
}

func Dashboard(services DashboardServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardJSON(services),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboardJSON(services),
		},
	}
}

func Kits(services DashboardServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kits/current",
			Method:  http.MethodGet,
			Handler: GetCurrentKit(services),
		},
		{
			Path:    "/v1/kits",
			Method:  http.MethodPost,
			Handler: SubmitKitJSON(services),
		},
		{
			Path:    "/v1/kits/abort",
			Method:  http.MethodPost,
			Handler: AbortKitJSON(services),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
