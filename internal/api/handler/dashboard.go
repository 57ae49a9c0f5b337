package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"github.com/vfg2006/mcp-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/mcp-dashboard/internal/usecases/kitgen"
	"github.com/vfg2006/mcp-dashboard/internal/view"
	"github.com/vfg2006/mcp-dashboard/pkg/apiErrors"
	"github.com/vfg2006/mcp-dashboard/pkg/log"
)

// DashboardServices reúne o que os handlers do painel precisam
type DashboardServices struct {
	Dashboard dashboarding.Dashboarder
	Kits      kitgen.Generator
	Renderer  *view.Renderer
	Pricing   domain.Pricing
}

func (s DashboardServices) page(r *http.Request) view.Page {
	return view.BuildPage(
		s.Dashboard.Snapshot(),
		s.Kits.Current(),
		view.ParseExpanded(r.URL.Query()),
		s.Pricing,
	)
}

// GetDashboardPage renderiza o painel, ou a tela de carregamento enquanto a
// primeira busca de métricas não termina
func GetDashboardPage(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		var err error
		if services.Dashboard.Loading() {
			err = services.Renderer.Loading(w)
		} else {
			err = services.Renderer.Dashboard(w, services.page(r))
		}

		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar o painel")
			http.Error(w, "Erro ao renderizar o painel", http.StatusInternalServerError)
		}
	})
}

// RefreshDashboard é o botão de atualização manual; falhas ficam só no log
func RefreshDashboard(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := services.Dashboard.RefreshMetrics(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Atualização manual das métricas falhou")
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}

// PrefillKitForClient preenche o gerador com os dados do cliente escolhido
func PrefillKitForClient(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("index")

		index, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice de cliente inválido", map[string]string{"index": raw})
			return
		}

		clients := services.Dashboard.Snapshot().Clients()
		if index < 0 || index >= len(clients) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", map[string]int{"index": index})
			return
		}

		status := services.Kits.Prefill(domain.KitRequestForClient(clients[index]))
		logrus.WithFields(logrus.Fields{
			"client":    clients[index].Name,
			"kit_state": status.State,
		}).Debug("Formulário do gerador pré-preenchido")

		http.Redirect(w, r, "/#kit-generator", http.StatusSeeOther)
	})
}

func GetDashboardJSON(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, services.page(r))
	})
}

func RefreshDashboardJSON(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshDashboardJSON")

		if err := services.Dashboard.RefreshMetrics(r.Context()); err != nil {
			upstreamError(w, err, "Erro ao atualizar as métricas do EDC")
			return
		}

		writeJSON(w, http.StatusOK, services.page(r))
	})
}
