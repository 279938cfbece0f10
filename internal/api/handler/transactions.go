package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/retail-pulse-api/internal/domain"
	"github.com/vfg2006/retail-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/retail-pulse-api/pkg/log"
)

const defaultTransactionsLimit = 500

// TransactionsResponse é o extrato das transações mais recentes nos filtros
type TransactionsResponse struct {
	Transactions []domain.SalesRecord `json:"transactions"`
	Count        int                  `json:"count"`
}

func GetTransactions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		criteria, err := criteriaFromRequest(r)
		if err != nil {
			logger.WithError(err).Warn("transactions: invalid filter parameters")
			apiErrors.WriteDomainError(w, err)
			return
		}

		limit := defaultTransactionsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.WithField("limit", raw).Warn("transactions: invalid limit parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		logger.WithField("limit", limit).Info("transactions: fetching recent transactions")

		records, err := service.RecentTransactions(r.Context(), criteria, limit)
		if err != nil {
			logger.WithError(err).Error("transactions: failed to get recent transactions")
			apiErrors.WriteDomainError(w, err)
			return
		}

		response := TransactionsResponse{
			Transactions: records,
			Count:        len(records),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("transactions: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
