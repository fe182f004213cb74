package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

// GetSalespersonRanking retorna o ranking de vendedores do período (mm-yyyy), padrão mês atual
func GetSalespersonRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetSalespersonRanking(r.URL.Query().Get("period"))
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar ranking de vendedores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de vendedores", nil)
			return
		}

		if result == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum ranking encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
