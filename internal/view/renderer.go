package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	dashboardTemplate = "dashboard.html"
	loadingTemplate   = "loading.html"
)

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{
			"fetchedAt": FormatFetchedAt,
		}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Dashboard renderiza a página completa do painel
func (r *Renderer) Dashboard(w http.ResponseWriter, page Page) error {
	return r.render(w, dashboardTemplate, page)
}

// Loading renderiza a tela exibida até a primeira busca de métricas terminar
func (r *Renderer) Loading(w http.ResponseWriter) error {
	return r.render(w, loadingTemplate, nil)
}

func (r *Renderer) render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return errors.Wrapf(err, "erro ao renderizar %s", name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
