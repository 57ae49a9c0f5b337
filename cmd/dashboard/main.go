package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp"
	"github.com/vfg2006/mcp-dashboard/infrastructure/integrator/mcp/mcpclient"
	"github.com/vfg2006/mcp-dashboard/internal/api"
	"github.com/vfg2006/mcp-dashboard/internal/api/handler"
	"github.com/vfg2006/mcp-dashboard/internal/config"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"github.com/vfg2006/mcp-dashboard/internal/scheduler"
	"github.com/vfg2006/mcp-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/mcp-dashboard/internal/usecases/kitgen"
	"github.com/vfg2006/mcp-dashboard/internal/view"
	"github.com/vfg2006/mcp-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.WithFields(logrus.Fields{
		"log_level":   logrus.GetLevel().String(),
		"mcp_api_url": cfg.MCP.URL,
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mcpClient := mcpclient.NewClient(cfg)
	mcpIntegrator, err := mcp.New(mcpClient)
	if err != nil {
		logrus.Fatal(err)
	}

	pricing := domain.Pricing(cfg.Pricing)

	dashboardService := dashboarding.NewService(mcpIntegrator)
	kitService := kitgen.NewService(ctx, mcpIntegrator, cfg.MCP.GenerationTimeout)

	// As duas buscas iniciais rodam em paralelo; o painel mostra a tela de
	// carregamento até as métricas chegarem
	go dashboardService.Load(ctx)

	dashboardRefreshService := scheduler.NewDashboardRefreshService(dashboardService, cfg)
	healthCheckService := scheduler.NewHealthCheckService(dashboardService, cfg)

	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do painel")
	}

	if err := healthCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação da IA")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logrus.Fatal(err)
	}

	server, err := api.New(
		cfg,
		handler.DashboardServices{
			Dashboard: dashboardService,
			Kits:      kitService,
			Renderer:  renderer,
			Pricing:   pricing,
		},
		handler.CronJobServices{
			DashboardRefreshService: dashboardRefreshService,
			HealthCheckService:      healthCheckService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	// Cancela a geração em andamento e espera a goroutine gravar o estado final
	cancel()
	kitService.Wait()
}
