package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcp-dashboard/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// upstreamError traduz falhas da API do MCP para o código de erro da API
func upstreamError(w http.ResponseWriter, err error, message string) {
	code, details := classifyUpstream(err)
	apiErrors.WriteError(w, code, message, details)
}
