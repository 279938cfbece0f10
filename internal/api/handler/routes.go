package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/retail-pulse-api/internal/api/handler/router"
	"github.com/vfg2006/retail-pulse-api/internal/usecases/reporting"
)

// Serialização das respostas com jsoniter, compatível com a stdlib
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Filters(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Insights(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/kpis",
			Method:  http.MethodGet,
			Handler: GetKpis(service),
		},
		{
			Path:    "/v1/insights/charts",
			Method:  http.MethodGet,
			Handler: GetCharts(service),
		},
	}
}

func Transactions(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: GetTransactions(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
