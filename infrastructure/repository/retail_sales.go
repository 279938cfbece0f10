package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-pulse-api/internal/domain"
)

const (
	retailSalesTable = "retail_sales"

	// Limite duro do extrato de transações, mesmo quando o chamador pede mais
	maxLedgerRows = 500
)

// RetailSalesRepository é o conjunto fixo de consultas de agregação sobre a
// tabela retail_sales. Todos os parâmetros são sempre vinculados via
// placeholders, nunca interpolados. Conjuntos de resultado vazios são
// válidos, não erros.
type RetailSalesRepository interface {
	GetKpiTotals(ctx context.Context, criteria *domain.FilterCriteria) (*domain.KpiTotals, error)
	GetDailyBreakdown(ctx context.Context, criteria *domain.FilterCriteria) ([]domain.DailySalesRow, error)
	GetDateBounds(ctx context.Context) (*domain.DateBounds, error)
	GetDistinctGenders(ctx context.Context) ([]string, error)
	GetDistinctCategories(ctx context.Context) ([]string, error)
	GetRecentTransactions(ctx context.Context, criteria *domain.FilterCriteria, limit int) ([]domain.SalesRecord, error)
}

type retailSalesRepository struct {
	conn         postgres.Conn
	queryTimeout time.Duration
}

func NewRetailSalesRepository(conn postgres.Conn, queryTimeout time.Duration) RetailSalesRepository {
	return &retailSalesRepository{
		conn:         conn,
		queryTimeout: queryTimeout,
	}
}

// filterPredicate aplica o predicado compartilhado por todas as consultas
// filtradas: sale_date entre os limites (inclusivo nas duas pontas) e
// gender/category dentro dos conjuntos selecionados.
func filterPredicate(builder squirrel.SelectBuilder, criteria *domain.FilterCriteria) squirrel.SelectBuilder {
	return builder.
		Where(squirrel.GtOrEq{"sale_date": criteria.StartDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"sale_date": criteria.EndDate.Format(time.DateOnly)}).
		Where(squirrel.Eq{"gender": criteria.Genders}).
		Where(squirrel.Eq{"category": criteria.Categories})
}

func (r *retailSalesRepository) GetKpiTotals(ctx context.Context, criteria *domain.FilterCriteria) (*domain.KpiTotals, error) {
	builder := squirrel.
		Select(
			"SUM(total_sale) AS total_sales",
			"COUNT(DISTINCT customer_id) AS total_customers",
			"COUNT(transaction_id) AS total_orders",
		).
		From(retailSalesTable)

	query, args, err := filterPredicate(builder, criteria).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var totalSales sql.NullFloat64
	totals := &domain.KpiTotals{}

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&totalSales, &totals.TotalCustomers, &totals.TotalOrders); err != nil {
		return nil, classifyStoreError(err)
	}

	// SUM retorna NULL quando nenhuma linha casa com o filtro
	if totalSales.Valid {
		totals.TotalSales = totalSales.Float64
	}

	return totals, nil
}

func (r *retailSalesRepository) GetDailyBreakdown(ctx context.Context, criteria *domain.FilterCriteria) ([]domain.DailySalesRow, error) {
	builder := squirrel.
		Select("sale_date", "category", "gender", "SUM(total_sale) AS daily_sales").
		From(retailSalesTable)

	query, args, err := filterPredicate(builder, criteria).
		GroupBy("sale_date", "category", "gender").
		OrderBy("sale_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer rows.Close()

	breakdown := make([]domain.DailySalesRow, 0)
	for rows.Next() {
		var row domain.DailySalesRow
		if err := rows.Scan(&row.SaleDate, &row.Category, &row.Gender, &row.DailySales); err != nil {
			return nil, classifyStoreError(err)
		}
		breakdown = append(breakdown, row)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStoreError(err)
	}

	return breakdown, nil
}

func (r *retailSalesRepository) GetDateBounds(ctx context.Context) (*domain.DateBounds, error) {
	query, args, err := squirrel.
		Select("MIN(sale_date) AS min_date", "MAX(sale_date) AS max_date").
		From(retailSalesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var minDate, maxDate sql.NullTime

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&minDate, &maxDate); err != nil {
		return nil, classifyStoreError(err)
	}

	bounds := &domain.DateBounds{}
	if minDate.Valid {
		bounds.MinDate = minDate.Time
	}
	if maxDate.Valid {
		bounds.MaxDate = maxDate.Time
	}

	return bounds, nil
}

func (r *retailSalesRepository) GetDistinctGenders(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "gender")
}

func (r *retailSalesRepository) GetDistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, "category")
}

func (r *retailSalesRepository) distinctValues(ctx context.Context, column string) ([]string, error) {
	query, args, err := squirrel.
		Select(fmt.Sprintf("DISTINCT %s", column)).
		From(retailSalesTable).
		OrderBy(column + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, classifyStoreError(err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStoreError(err)
	}

	return values, nil
}

func (r *retailSalesRepository) GetRecentTransactions(ctx context.Context, criteria *domain.FilterCriteria, limit int) ([]domain.SalesRecord, error) {
	if limit <= 0 || limit > maxLedgerRows {
		limit = maxLedgerRows
	}

	builder := squirrel.
		Select("sale_date", "customer_id", "gender", "category", "total_sale").
		From(retailSalesTable)

	query, args, err := filterPredicate(builder, criteria).
		OrderBy("sale_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0, limit)
	for rows.Next() {
		var record domain.SalesRecord
		if err := rows.Scan(
			&record.SaleDate,
			&record.CustomerID,
			&record.Gender,
			&record.Category,
			&record.TotalSale,
		); err != nil {
			return nil, classifyStoreError(err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, classifyStoreError(err)
	}

	return records, nil
}

// classifyStoreError mapeia falhas do driver para a taxonomia de erros de
// fonte de dados, preservando a causa para logs e diagnóstico
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewDataSourceError(domain.SourceTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewDataSourceError(domain.SourceTimeout, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08": // connection_exception
			return domain.NewDataSourceError(domain.SourceConnectionFailed, err)
		case "22", "42": // data_exception, syntax_error_or_access_rule_violation
			return domain.NewDataSourceError(domain.SourceQueryRejected, err)
		case "57": // operator_intervention (inclui query_canceled)
			return domain.NewDataSourceError(domain.SourceTimeout, err)
		}
		return domain.NewDataSourceError(domain.SourceQueryRejected, err)
	}

	return domain.NewDataSourceError(domain.SourceConnectionFailed, err)
}
