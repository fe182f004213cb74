package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportResponse envolve os relatórios que podem voltar vazios por falta de dados.
// Quando Condition está presente, Result é sempre nulo.
type ReportResponse struct {
	Condition domain.Condition `json:"condition,omitempty"`
	Message   string           `json:"message,omitempty"`
	Result    any              `json:"result"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeReport(w http.ResponseWriter, condition domain.Condition, filters domain.ReportFilters, result any) {
	writeConditional(w, condition, condition.Message(filters.Month, filters.Year), result)
}

// writeConditional responde com a condição e o resultado nulo quando há condição
func writeConditional(w http.ResponseWriter, condition domain.Condition, message string, result any) {
	if condition != domain.ConditionNone {
		writeJSON(w, http.StatusOK, ReportResponse{
			Condition: condition,
			Message:   message,
		})
		return
	}

	writeJSON(w, http.StatusOK, ReportResponse{Result: result})
}

// writeServiceError traduz os erros dos serviços para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		if reportErr.Code == apiErrors.ErrInternalServer || reportErr.Code == apiErrors.ErrDatabaseOperation {
			logrus.WithError(err).Error(fallback)
			apiErrors.WriteError(w, reportErr.Code, fallback, nil)
			return
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	if errors.Is(err, exporting.ErrUnsupportedFormat) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de exportação não suportado", nil)
		return
	}

	logrus.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func writeFile(w http.ResponseWriter, file *exporting.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		logrus.WithError(err).WithField("file", file.Name).Error("Erro ao enviar arquivo")
	}
}

// requestScope responde 401 quando não é possível derivar o escopo do usuário
func requestScope(w http.ResponseWriter, r *http.Request) (domain.AccessScope, bool) {
	scope, ok := middleware.ScopeFromRequest(r)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário sem escopo de acesso", nil)
	}
	return scope, ok
}
