package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/sales-performance-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
	reportingMocks "github.com/vfg2006/sales-performance-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
)

var (
	salespersonFilter = "VDE_1"

	salespersonClaims = &domain.Claims{
		UserID:            2,
		Username:          "VDE1",
		UserRoleID:        authenticating.RoleSalesperson,
		SalespersonFilter: &salespersonFilter,
	}

	masterClaims = &domain.Claims{
		UserID:     1,
		Username:   "master",
		UserRoleID: authenticating.RoleMaster,
	}
)

// newTestServer monta as rotas com o middleware de autenticação real.
// Qualquer token é aceito e resolve para as claims informadas.
func newTestServer(t *testing.T, claims *domain.Claims, reporter reporting.Reporter, auth *authMocks.MockAuthenticator) http.Handler {
	t.Helper()

	auth.EXPECT().ValidateToken("token").Return(claims, nil).AnyTimes()

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(auth)...),
		router.WithRoutes(Reports(reporter)...),
		router.WithRoutes(CronJobs(CronJobServices{})...),
	)

	return middleware.AuthMiddleware(auth)(rt)
}

func doRequest(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetGoalAttainment(t *testing.T) {
	report := &domain.AttainmentReport{
		Month: "Marzo",
		Year:  2025,
		Rows: []*domain.AttainmentRow{
			{SalespersonID: "VDE_1", RealizedAmount: 1000, TargetAmount: 2000, PercentAmount: domain.NewPercent(1000, 2000)},
			{SalespersonID: domain.TotalRowLabel, RealizedAmount: 1000, TargetAmount: 2000, PercentAmount: domain.NewPercent(1000, 2000)},
		},
	}

	tests := []struct {
		name           string
		target         string
		setup          func(reporter *reportingMocks.MockReporter)
		expectedStatus int
		check          func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve repassar escopo e filtros e retornar o relatório",
			target: "/v1/attainment?year=2025&month=3&salespeople=VDE_1",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().
					GetGoalAttainment(domain.ScopeFor("VDE_1"), domain.ReportFilters{Year: 2025, Month: "Marzo", Salespeople: []string{"VDE_1"}}).
					Return(report, domain.ConditionNone, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body struct {
					Condition string                   `json:"condition"`
					Result    *domain.AttainmentReport `json:"result"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Empty(t, body.Condition)
				require.NotNil(t, body.Result)
				assert.Len(t, body.Result.Rows, 2)
				assert.Equal(t, domain.TotalRowLabel, body.Result.Rows[1].SalespersonID)
			},
		},
		{
			name:   "Deve retornar a condição com resultado nulo quando falta meta",
			target: "/v1/attainment?year=2025&month=Marzo",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().
					GetGoalAttainment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ConditionBudgetMissing, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, string(domain.ConditionBudgetMissing), body["condition"])
				assert.Equal(t, domain.ConditionBudgetMissing.Message("Marzo", 2025), body["message"])
				assert.Nil(t, body["result"])
			},
		},
		{
			name:   "Deve retornar 400 para mês inválido",
			target: "/v1/attainment?year=2025&month=Foo",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().
					GetGoalAttainment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ConditionNone, reporting.NewReportError(reporting.ErrInvalidMonth, apiErrors.ErrInvalidPeriod, "Foo"))
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, apiErrors.ErrInvalidPeriod, body.Code)
			},
		},
		{
			name:           "Deve retornar 400 para ano não numérico sem chamar o serviço",
			target:         "/v1/attainment?year=abc&month=Marzo",
			setup:          func(reporter *reportingMocks.MockReporter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Deve ocultar detalhes de erro de banco de dados",
			target: "/v1/attainment?year=2025&month=Marzo",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().
					GetGoalAttainment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ConditionNone, reporting.NewReportError(reporting.ErrFetchSales, apiErrors.ErrDatabaseOperation, "connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotContains(t, rec.Body.String(), "connection refused")
			},
		},
		{
			name:   "Deve retornar 422 para planilha sem campo obrigatório",
			target: "/v1/attainment?year=2025&month=Marzo",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().
					GetGoalAttainment(gomock.Any(), gomock.Any()).
					Return(nil, domain.ConditionNone, reporting.NewReportError(reporting.ErrMalformedData, apiErrors.ErrMalformedData, "VDE"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := reportingMocks.NewMockReporter(ctrl)
			auth := authMocks.NewMockAuthenticator(ctrl)
			tt.setup(reporter)

			rec := doRequest(newTestServer(t, salespersonClaims, reporter, auth), http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestGetWeeklyProjection(t *testing.T) {
	t.Run("Deve exigir a semana", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingMocks.NewMockReporter(ctrl)
		auth := authMocks.NewMockAuthenticator(ctrl)

		rec := doRequest(newTestServer(t, masterClaims, reporter, auth), http.MethodGet, "/v1/projections/weekly", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Deve repassar a semana com escopo irrestrito para o master", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingMocks.NewMockReporter(ctrl)
		auth := authMocks.NewMockAuthenticator(ctrl)

		result := &domain.ProjectionResult{RealizedAmount: 500, Forecast: 1000}
		reporter.EXPECT().
			GetWeeklyProjection(domain.Unrestricted(), domain.ReportFilters{}, 12).
			Return(result, domain.ConditionNone, nil)

		rec := doRequest(newTestServer(t, masterClaims, reporter, auth), http.MethodGet, "/v1/projections/weekly?week=12", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Condition string                   `json:"condition"`
			Result    *domain.ProjectionResult `json:"result"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Condition)
		require.NotNil(t, body.Result)
		assert.Equal(t, 1000.0, body.Result.Forecast)
	})
}

func TestProjections_SemVendas(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		setup           func(reporter *reportingMocks.MockReporter)
		expectedMessage string
	}{
		{
			name:   "Deve informar a semana sem vendas com resultado nulo",
			target: "/v1/projections/weekly?week=10",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().
					GetWeeklyProjection(gomock.Any(), gomock.Any(), 10).
					Return(nil, domain.ConditionNoData, nil)
			},
			expectedMessage: "No hay datos para la semana 10 con los filtros actuales",
		},
		{
			name:   "Deve informar o mês sem vendas com resultado nulo",
			target: "/v1/projections/monthly?month=Marzo",
			setup: func(reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().
					GetMonthlyProjection(gomock.Any(), domain.ReportFilters{Month: "Marzo"}).
					Return(nil, domain.ConditionNoData, nil)
			},
			expectedMessage: "No hay datos para Marzo con los filtros actuales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := reportingMocks.NewMockReporter(ctrl)
			auth := authMocks.NewMockAuthenticator(ctrl)
			tt.setup(reporter)

			rec := doRequest(newTestServer(t, masterClaims, reporter, auth), http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(domain.ConditionNoData), body["condition"])
			assert.Equal(t, tt.expectedMessage, body["message"])
			assert.Contains(t, body, "result")
			assert.Nil(t, body["result"])
		})
	}
}

func TestQuerySales(t *testing.T) {
	t.Run("Deve converter datas e agrupamento da query string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingMocks.NewMockReporter(ctrl)
		auth := authMocks.NewMockAuthenticator(ctrl)

		reporter.EXPECT().
			QuerySales(domain.ScopeFor("VDE_1"), gomock.Any()).
			DoAndReturn(func(_ domain.AccessScope, query domain.SalesQuery) (*domain.SalesQueryResult, error) {
				assert.Equal(t, "P-01", query.ProductCode)
				assert.Equal(t, domain.GroupClient, query.GroupBy)
				require.NotNil(t, query.StartDate)
				require.NotNil(t, query.EndDate)
				assert.Equal(t, 1, query.StartDate.Day())
				assert.Equal(t, 31, query.EndDate.Day())
				return &domain.SalesQueryResult{}, nil
			})

		rec := doRequest(newTestServer(t, salespersonClaims, reporter, auth), http.MethodGet,
			"/v1/sales/query?product_code=P-01&group_by=client&start_date=2025-03-01&end_date=2025-03-31", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve rejeitar intervalo de datas invertido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := reportingMocks.NewMockReporter(ctrl)
		auth := authMocks.NewMockAuthenticator(ctrl)

		rec := doRequest(newTestServer(t, salespersonClaims, reporter, auth), http.MethodGet,
			"/v1/sales/query?start_date=2025-03-31&end_date=2025-03-01", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCronRoutes(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		method         string
		target         string
		expectedStatus int
	}{
		{
			name:           "Deve negar acesso do vendedor ao status das cron jobs",
			claims:         salespersonClaims,
			method:         http.MethodGet,
			target:         "/v1/cron/status",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Deve retornar status vazio sem serviços configurados",
			claims:         masterClaims,
			method:         http.MethodGet,
			target:         "/v1/cron/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Deve rejeitar tipo de cron job desconhecido",
			claims:         masterClaims,
			method:         http.MethodPost,
			target:         "/v1/cron/run/meta",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := reportingMocks.NewMockReporter(ctrl)
			auth := authMocks.NewMockAuthenticator(ctrl)

			rec := doRequest(newTestServer(t, tt.claims, reporter, auth), tt.method, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(auth *authMocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Deve retornar o token",
			body: `{"username":"VDE1","password":"segredo123"}`,
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().LoginUser("VDE1", "segredo123").Return("jwt", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Deve retornar 401 para senha incorreta",
			body: `{"username":"VDE1","password":"errada"}`,
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().LoginUser("VDE1", "errada").
					Return("", authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 2, "Senha incorreta"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "Deve retornar 500 para erro desconhecido",
			body: `{"username":"VDE1","password":"x"}`,
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name:           "Deve retornar 400 para corpo inválido",
			body:           `{`,
			setup:          func(auth *authMocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authMocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			Login(auth).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				var body apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedCode, body.Code)
			}
		})
	}
}

func TestRouter_RotaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingMocks.NewMockReporter(ctrl)
	auth := authMocks.NewMockAuthenticator(ctrl)

	rec := doRequest(newTestServer(t, masterClaims, reporter, auth), http.MethodGet, "/v1/nao-existe", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrRouteNotFound, body.Code)
}

func TestReports_SemEscopo(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingMocks.NewMockReporter(ctrl)
	auth := authMocks.NewMockAuthenticator(ctrl)

	unscoped := &domain.Claims{UserID: 9, Username: "VDE9", UserRoleID: authenticating.RoleSalesperson}

	rec := doRequest(newTestServer(t, unscoped, reporter, auth), http.MethodGet, "/v1/kpis?year=2025", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apiErrors.ErrInvalidToken, body["code"])
}
