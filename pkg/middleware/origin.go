package middleware

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/vfg2006/mcp-dashboard/pkg/log"
)

// SameOrigin recusa requisições que alteram estado vindas de outra origem. Vale a
// própria origem do painel e as liberadas no CORS; sem Origin nem Referer a
// requisição não veio de um navegador e segue normalmente.
func SameOrigin(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			origin := requestOrigin(r)
			if origin == "" || originAllowed(origin, r.Host, allowedOrigins) {
				next.ServeHTTP(w, r)
				return
			}

			log.ForContext(r.Context()).WithFields(log.Fields{
				"origin": origin,
				"method": r.Method,
				"path":   r.URL.Path,
			}).Warn("Requisição de outra origem recusada")

			http.Error(w, "cross-origin request rejected", http.StatusForbidden)
		})
	}
}

func requestOrigin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}

	referer := r.Header.Get("Referer")
	if referer == "" {
		return ""
	}

	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		// Referer ilegível não identifica a origem; trata como origem desconhecida
		return "null"
	}
	return u.Scheme + "://" + u.Host
}

func originAllowed(origin, host string, allowedOrigins []string) bool {
	if slices.Contains(allowedOrigins, origin) {
		return true
	}

	u, err := url.Parse(origin)
	return err == nil && u.Host != "" && u.Host == host
}
