package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/callquality"
	"github.com/vfg2006/sales-performance-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-performance-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: middlewares{middleware.MasterOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/attainment",
			Method:      http.MethodGet,
			Handler:     GetGoalAttainment(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/attainment/effort",
			Method:      http.MethodGet,
			Handler:     GetDailyEffort(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/attainment/categories",
			Method:      http.MethodGet,
			Handler:     GetCategoryAttainment(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/kpis",
			Method:      http.MethodGet,
			Handler:     GetBasicKPIs(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/weekly",
			Method:      http.MethodGet,
			Handler:     GetWeeklyProjection(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyProjection(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/pivot",
			Method:      http.MethodGet,
			Handler:     GetSalesPivot(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/top-products",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/query",
			Method:      http.MethodGet,
			Handler:     QuerySales(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Exports(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/attainment/export",
			Method:      http.MethodGet,
			Handler:     ExportAttainment(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/export",
			Method:      http.MethodGet,
			Handler:     ExportSales(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Calls(service callquality.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/calls/summary",
			Method:      http.MethodGet,
			Handler:     GetCallSummary(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calls/language",
			Method:      http.MethodGet,
			Handler:     GetCallLanguage(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func SalespersonRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking",
			Method:      http.MethodGet,
			Handler:     GetSalespersonRanking(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.MasterOnly()},
		},
	}
}
