package reporting

import (
	"context"

	"github.com/vfg2006/retail-pulse-api/internal/domain"
)

// Reporter é a interface consumida pela camada de apresentação: todas as
// consultas de agregação do painel, servidas através do cache
type Reporter interface {
	// KpiTotals obtém os agregados escalares (receita, pedidos, clientes)
	// para os filtros informados
	KpiTotals(ctx context.Context, criteria *domain.FilterCriteria) (*domain.KpiTotals, error)

	// DailyBreakdown obtém o rollup diário por (data, categoria, gênero),
	// base compartilhada de todas as visões de gráfico
	DailyBreakdown(ctx context.Context, criteria *domain.FilterCriteria) ([]domain.DailySalesRow, error)

	// DateBounds obtém os limites de datas disponíveis (metadado, sem filtro)
	DateBounds(ctx context.Context) (*domain.DateBounds, error)

	// DistinctGenders e DistinctCategories populam as opções de filtro da UI
	DistinctGenders(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)

	// RecentTransactions obtém o extrato das transações mais recentes
	// dentro dos filtros
	RecentTransactions(ctx context.Context, criteria *domain.FilterCriteria, limit int) ([]domain.SalesRecord, error)

	// RefreshMetadata re-aquece os caches de metadados (limites de datas e
	// valores distintos), usado pelo agendador
	RefreshMetadata(ctx context.Context) error
}
