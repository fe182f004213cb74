package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/usecases/callquality"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

// GetCallSummary retorna a qualidade média das ligações da equipe e de cada vendedor
func GetCallSummary(service callquality.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseCallFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		summary, err := service.GetTeamSummary(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar o resumo das ligações")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func GetCallLanguage(service callquality.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseCallFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		scope, ok := requestScope(w, r)
		if !ok {
			return
		}

		analysis, err := service.GetLanguageAnalysis(scope, filters)
		if err != nil {
			writeServiceError(w, err, "Erro ao analisar a linguagem das ligações")
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	}
}
