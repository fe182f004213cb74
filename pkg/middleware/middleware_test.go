package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating/mocks"
)

func scopeEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope, _ := ScopeFromRequest(r)
		w.Write([]byte(scope.Salesperson))
	})
}

func TestAuthMiddleware(t *testing.T) {
	filter := "VDE_1"

	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Rota pública não exige token",
			path:           "/healthcheck",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem cabeçalho deve retornar 401",
			path:           "/v1/kpis",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Sem prefixo Bearer deve retornar 401",
			path:           "/v1/kpis",
			header:         "abc",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado deve retornar 401",
			path:   "/v1/kpis",
			header: "Bearer expired",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expired").Return(nil, authenticating.ErrExpiredToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token de vendedor deve restringir o escopo",
			path:   "/v1/kpis",
			header: "Bearer valid",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valid").Return(&domain.Claims{
					UserID: 2, UserRoleID: authenticating.RoleSalesperson, SalespersonFilter: &filter,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "VDE_1",
		},
		{
			name:   "Token master deve ter escopo irrestrito",
			path:   "/v1/kpis",
			header: "Bearer master",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("master").Return(&domain.Claims{UserID: 1, UserRoleID: authenticating.RoleMaster}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(scopeEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestScopeFromRequest(t *testing.T) {
	filter := "VDE_2"
	empty := " "

	tests := []struct {
		name          string
		claims        *domain.Claims
		expectedOK    bool
		expectedScope domain.AccessScope
	}{
		{
			name:       "Sem claims não deve liberar acesso",
			claims:     nil,
			expectedOK: false,
		},
		{
			name:          "Master deve ter escopo irrestrito",
			claims:        &domain.Claims{UserRoleID: authenticating.RoleMaster},
			expectedOK:    true,
			expectedScope: domain.Unrestricted(),
		},
		{
			name:          "Vendedor deve ficar restrito ao próprio filtro",
			claims:        &domain.Claims{UserRoleID: authenticating.RoleSalesperson, SalespersonFilter: &filter},
			expectedOK:    true,
			expectedScope: domain.ScopeFor("VDE_2"),
		},
		{
			name:       "Vendedor sem filtro não deve ver todas as vendas",
			claims:     &domain.Claims{UserRoleID: authenticating.RoleSalesperson},
			expectedOK: false,
		},
		{
			name:       "Vendedor com filtro em branco não deve ver todas as vendas",
			claims:     &domain.Claims{UserRoleID: authenticating.RoleSalesperson, SalespersonFilter: &empty},
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/kpis", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}

			scope, ok := ScopeFromRequest(req)

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedScope, scope)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{name: "Master acessa rota restrita", claims: &domain.Claims{UserRoleID: authenticating.RoleMaster}, middleware: MasterOnly(), expectedStatus: http.StatusOK},
		{name: "Vendedor não acessa rota de master", claims: &domain.Claims{UserRoleID: authenticating.RoleSalesperson}, middleware: MasterOnly(), expectedStatus: http.StatusForbidden},
		{name: "Vendedor acessa rota comum", claims: &domain.Claims{UserRoleID: authenticating.RoleSalesperson}, middleware: AllRoles(), expectedStatus: http.StatusOK},
		{name: "Sem autenticação retorna 401", claims: nil, middleware: AllRoles(), expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000", " "})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	t.Run("Deve liberar origem configurada no preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/kpis", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Não deve liberar origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/kpis", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
