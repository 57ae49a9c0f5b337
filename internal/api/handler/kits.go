package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/mcp-dashboard/internal/domain"
	"github.com/vfg2006/mcp-dashboard/internal/usecases/kitgen"
	"github.com/vfg2006/mcp-dashboard/internal/view"
	"github.com/vfg2006/mcp-dashboard/pkg/apiErrors"
	"github.com/vfg2006/mcp-dashboard/pkg/log"
)

const kitGeneratorAnchor = "/#kit-generator"

func (s DashboardServices) kitView(status domain.KitStatus) view.KitView {
	return view.BuildKitView(status, s.Dashboard.Snapshot().AIStatus, s.Pricing)
}

// SubmitKitForm recebe o formulário HTML do gerador
func SubmitKitForm(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formulário inválido", nil)
			return
		}

		req := domain.KitRequest{
			Keyword:  r.PostForm.Get("keyword"),
			Quote:    r.PostForm.Get("quote"),
			Geo:      r.PostForm.Get("geo"),
			Industry: r.PostForm.Get("industry"),
		}

		_, err := services.Kits.Submit(req)

		var validationErr *kitgen.ValidationError
		switch {
		case errors.As(err, &validationErr):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), nil)
			return
		case errors.Is(err, kitgen.ErrGenerationInProgress):
			// O botão fica desabilitado durante a geração; basta voltar ao painel
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("Erro ao iniciar geração de kit")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar geração", nil)
			return
		}

		http.Redirect(w, r, kitGeneratorAnchor, http.StatusSeeOther)
	})
}

func AbortKitForm(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := services.Kits.Abort(); err != nil && !errors.Is(err, kitgen.ErrNotGenerating) {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao abortar geração de kit")
		}

		http.Redirect(w, r, kitGeneratorAnchor, http.StatusSeeOther)
	})
}

func GetCurrentKit(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, services.kitView(services.Kits.Current()))
	})
}

// SubmitKitJSON inicia a geração e responde 202 com o estado "generating"
func SubmitKitJSON(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.KitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		status, err := services.Kits.Submit(req)

		var validationErr *kitgen.ValidationError
		switch {
		case errors.As(err, &validationErr):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), nil)
			return
		case errors.Is(err, kitgen.ErrGenerationInProgress):
			apiErrors.WriteError(w, apiErrors.ErrKitInProgress, err.Error(), map[string]string{"kit_id": status.ID})
			return
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("Erro ao iniciar geração de kit")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar geração", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, services.kitView(status))
	})
}

func AbortKitJSON(services DashboardServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := services.Kits.Abort()
		if errors.Is(err, kitgen.ErrNotGenerating) {
			apiErrors.WriteError(w, apiErrors.ErrKitNotRunning, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusAccepted, services.kitView(status))
	})
}
