package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-pulse-api/infrastructure/repository"
	"github.com/vfg2006/retail-pulse-api/internal/config"
	"github.com/vfg2006/retail-pulse-api/internal/domain"
	"github.com/vfg2006/retail-pulse-api/pkg/cache"
)

// Identificadores de template de consulta. Cada consulta é cacheada sob sua
// própria chave: mesmo FilterCriteria, template diferente, chave diferente.
const (
	templateKpiTotals          = "kpi_totals"
	templateDailyBreakdown     = "daily_breakdown"
	templateRecentTransactions = "recent_transactions"

	// Metadados não dependem de FilterCriteria; chaves fixas
	keyDateBounds         = "metadata|date_bounds"
	keyDistinctGenders    = "metadata|distinct_genders"
	keyDistinctCategories = "metadata|distinct_categories"
)

// Service implementa Reporter sobre o repositório de vendas, com cache por
// consulta e retry limitado para falhas transitórias de conexão
type Service struct {
	cfg        *config.Config
	repository repository.RetailSalesRepository
	queryCache *cache.QueryCache
}

func NewService(
	cfg *config.Config,
	repo repository.RetailSalesRepository,
	queryCache *cache.QueryCache,
) Reporter {
	return &Service{
		cfg:        cfg,
		repository: repo,
		queryCache: queryCache,
	}
}

func (s *Service) KpiTotals(ctx context.Context, criteria *domain.FilterCriteria) (*domain.KpiTotals, error) {
	if criteria == nil {
		return nil, ErrIncompleteDateRange
	}

	key := criteria.CacheKey(templateKpiTotals)

	v, err := s.queryCache.GetOrCompute(key, s.cfg.Cache.QueryTTL(), func() (any, error) {
		return s.withRetry(ctx, templateKpiTotals, func() (any, error) {
			return s.repository.GetKpiTotals(ctx, criteria)
		})
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.KpiTotals), nil
}

func (s *Service) DailyBreakdown(ctx context.Context, criteria *domain.FilterCriteria) ([]domain.DailySalesRow, error) {
	if criteria == nil {
		return nil, ErrIncompleteDateRange
	}

	key := criteria.CacheKey(templateDailyBreakdown)

	v, err := s.queryCache.GetOrCompute(key, s.cfg.Cache.QueryTTL(), func() (any, error) {
		return s.withRetry(ctx, templateDailyBreakdown, func() (any, error) {
			return s.repository.GetDailyBreakdown(ctx, criteria)
		})
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.DailySalesRow), nil
}

func (s *Service) DateBounds(ctx context.Context) (*domain.DateBounds, error) {
	v, err := s.queryCache.GetOrCompute(keyDateBounds, s.cfg.Cache.MetadataTTL(), func() (any, error) {
		return s.withRetry(ctx, keyDateBounds, func() (any, error) {
			return s.repository.GetDateBounds(ctx)
		})
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.DateBounds), nil
}

func (s *Service) DistinctGenders(ctx context.Context) ([]string, error) {
	v, err := s.queryCache.GetOrCompute(keyDistinctGenders, s.cfg.Cache.MetadataTTL(), func() (any, error) {
		return s.withRetry(ctx, keyDistinctGenders, func() (any, error) {
			return s.repository.GetDistinctGenders(ctx)
		})
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

func (s *Service) DistinctCategories(ctx context.Context) ([]string, error) {
	v, err := s.queryCache.GetOrCompute(keyDistinctCategories, s.cfg.Cache.MetadataTTL(), func() (any, error) {
		return s.withRetry(ctx, keyDistinctCategories, func() (any, error) {
			return s.repository.GetDistinctCategories(ctx)
		})
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

func (s *Service) RecentTransactions(ctx context.Context, criteria *domain.FilterCriteria, limit int) ([]domain.SalesRecord, error) {
	if criteria == nil {
		return nil, ErrIncompleteDateRange
	}

	// O extrato embute o limite na chave, para que limites diferentes não
	// disputem a mesma entrada
	key := fmt.Sprintf("%s|limit=%d", criteria.CacheKey(templateRecentTransactions), limit)

	v, err := s.queryCache.GetOrCompute(key, s.cfg.Cache.QueryTTL(), func() (any, error) {
		return s.withRetry(ctx, templateRecentTransactions, func() (any, error) {
			return s.repository.GetRecentTransactions(ctx, criteria, limit)
		})
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.SalesRecord), nil
}

// RefreshMetadata invalida e recarrega os caches de metadados. Usado pelo
// agendador para que a carga inicial do painel nunca pague consulta fria.
func (s *Service) RefreshMetadata(ctx context.Context) error {
	s.queryCache.Invalidate(keyDateBounds)
	s.queryCache.Invalidate(keyDistinctGenders)
	s.queryCache.Invalidate(keyDistinctCategories)

	if _, err := s.DateBounds(ctx); err != nil {
		return err
	}

	if _, err := s.DistinctGenders(ctx); err != nil {
		return err
	}

	if _, err := s.DistinctCategories(ctx); err != nil {
		return err
	}

	return nil
}

// withRetry executa a consulta com no máximo cfg.Query.RetryAttempts
// tentativas adicionais. Apenas falhas de conexão são repetidas: rejeição de
// query é determinística e timeout já consumiu o orçamento de latência.
func (s *Service) withRetry(ctx context.Context, queryName string, fn func() (any, error)) (any, error) {
	attempts := s.cfg.Query.RetryAttempts
	if attempts < 0 {
		attempts = 0
	}

	var lastErr error
	for attempt := 0; attempt <= attempts; attempt++ {
		if attempt > 0 {
			logrus.WithFields(logrus.Fields{
				"query":   queryName,
				"attempt": attempt,
			}).Warn("Repetindo consulta após falha de conexão")

			select {
			case <-time.After(s.cfg.Query.RetryDelay()):
			case <-ctx.Done():
				return nil, domain.NewDataSourceError(domain.SourceTimeout, ctx.Err())
			}
		}

		v, err := fn()
		if err == nil {
			return v, nil
		}
		lastErr = err

		dse, ok := domain.AsDataSourceError(err)
		if !ok || dse.Code != domain.SourceConnectionFailed {
			return nil, err
		}
	}

	logrus.WithError(lastErr).WithField("query", queryName).
		Error("Consulta esgotou as tentativas de retry")

	return nil, lastErr
}
