package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/retail-pulse-api/internal/domain"
	"github.com/vfg2006/retail-pulse-api/internal/usecases/charting"
	"github.com/vfg2006/retail-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/retail-pulse-api/pkg/log"
)

// KpiResponse são os agregados escalares do painel mais o ticket médio
type KpiResponse struct {
	TotalSales        float64 `json:"total_sales"`
	TotalCustomers    int     `json:"total_customers"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// ChartsResponse entrega o rollup diário e as quatro visões derivadas em um
// único payload, calculadas de uma única consulta ao banco
type ChartsResponse struct {
	DailyBreakdown []domain.DailySalesRow `json:"daily_breakdown"`
	RevenueTrend   []domain.TrendPoint    `json:"revenue_trend"`
	CategoryShares []domain.CategoryShare `json:"category_shares"`
	WeekdayHeatmap []domain.HeatmapCell   `json:"weekday_heatmap"`
	GenderSplits   []domain.GenderSplit   `json:"gender_splits"`
}

func GetKpis(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := criteriaFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("insights: invalid filter parameters")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": criteria.StartDate.Format(time.DateOnly),
			"end_date":   criteria.EndDate.Format(time.DateOnly),
			"genders":    len(criteria.Genders),
			"categories": len(criteria.Categories),
		}).Info("insights: fetching KPI totals")

		totals, err := service.KpiTotals(r.Context(), criteria)
		if err != nil {
			logger.WithError(err).Error("insights: failed to get KPI totals")
			apiErrors.WriteDomainError(w, err)
			return
		}

		response := KpiResponse{
			TotalSales:        totals.TotalSales,
			TotalCustomers:    totals.TotalCustomers,
			TotalOrders:       totals.TotalOrders,
			AverageOrderValue: totals.AverageOrderValue(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCharts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := criteriaFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("insights: invalid filter parameters")
			apiErrors.WriteDomainError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": criteria.StartDate.Format(time.DateOnly),
			"end_date":   criteria.EndDate.Format(time.DateOnly),
		}).Info("insights: fetching daily breakdown for charts")

		rows, err := service.DailyBreakdown(r.Context(), criteria)
		if err != nil {
			logger.WithError(err).Error("insights: failed to get daily breakdown")
			apiErrors.WriteDomainError(w, err)
			return
		}

		// As quatro visões são reagrupamentos em memória do mesmo rollup
		response := ChartsResponse{
			DailyBreakdown: rows,
			RevenueTrend:   charting.RevenueTrend(rows),
			CategoryShares: charting.CategoryShares(rows),
			WeekdayHeatmap: charting.WeekdayHeatmap(rows),
			GenderSplits:   charting.GenderSplits(rows),
		}

		logger.WithField("rows", len(rows)).Info("insights: successfully built chart payload")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
