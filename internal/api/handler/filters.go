package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/retail-pulse-api/internal/domain"
	"github.com/vfg2006/retail-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/retail-pulse-api/pkg/log"
	"github.com/vfg2006/retail-pulse-api/pkg/utils"
)

// FilterOptionsResponse alimenta a barra lateral de filtros da UI
type FilterOptionsResponse struct {
	MinDate    time.Time `json:"min_date"`
	MaxDate    time.Time `json:"max_date"`
	Genders    []string  `json:"genders"`
	Categories []string  `json:"categories"`
}

func GetFilterOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("filters: fetching filter options")

		bounds, err := service.DateBounds(r.Context())
		if err != nil {
			logger.WithError(err).Error("filters: failed to get date bounds")
			apiErrors.WriteDomainError(w, err)
			return
		}

		genders, err := service.DistinctGenders(r.Context())
		if err != nil {
			logger.WithError(err).Error("filters: failed to get distinct genders")
			apiErrors.WriteDomainError(w, err)
			return
		}

		categories, err := service.DistinctCategories(r.Context())
		if err != nil {
			logger.WithError(err).Error("filters: failed to get distinct categories")
			apiErrors.WriteDomainError(w, err)
			return
		}

		response := FilterOptionsResponse{
			MinDate:    bounds.MinDate,
			MaxDate:    bounds.MaxDate,
			Genders:    genders,
			Categories: categories,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("filters: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// criteriaFromRequest monta o FilterCriteria canônico a partir dos parâmetros
// da query string: start_date e end_date no formato AAAA-MM-DD, genders e
// categories separados por vírgula (parâmetros repetidos também são aceitos)
func criteriaFromRequest(r *http.Request) (*domain.FilterCriteria, error) {
	query := r.URL.Query()

	dateRange := make([]time.Time, 0, 2)
	for _, param := range []string{"start_date", "end_date"} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}

		date, err := utils.ParseDate(raw)
		if err != nil {
			return nil, domain.NewValidationError(
				domain.ValidationIncompleteDateRange,
				"datas devem estar no formato AAAA-MM-DD",
			)
		}
		dateRange = append(dateRange, *date)
	}

	return reporting.NormalizeFilters(
		dateRange,
		splitMultiValue(query["genders"]),
		splitMultiValue(query["categories"]),
	)
}

func splitMultiValue(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
