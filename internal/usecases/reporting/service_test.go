package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-pulse-api/internal/config"
	"github.com/vfg2006/retail-pulse-api/internal/domain"
	"github.com/vfg2006/retail-pulse-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func testConfig(retryAttempts int) *config.Config {
	return &config.Config{
		Cache: config.Cache{
			QueryTTLSeconds:    600,
			MetadataTTLSeconds: 3600,
		},
		Query: config.Query{
			TimeoutSeconds: 10,
			RetryAttempts:  retryAttempts,
			RetryDelayMS:   1,
		},
	}
}

func testCriteria(t *testing.T) *domain.FilterCriteria {
	t.Helper()

	criteria, err := NormalizeFilters(
		[]time.Time{
			time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
		[]string{"Female", "Male"},
		[]string{"Beauty", "Clothing"},
	)
	require.NoError(t, err)

	return criteria
}

func TestService_KpiTotals_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(0), mockRepo, cache.New())

	criteria := testCriteria(t)
	totals := &domain.KpiTotals{TotalSales: 1000.0, TotalCustomers: 10, TotalOrders: 4}

	// Dentro do TTL o repositório é consultado uma única vez
	mockRepo.EXPECT().
		GetKpiTotals(gomock.Any(), criteria).
		Return(totals, nil).
		Times(1)

	first, err := service.KpiTotals(context.Background(), criteria)
	require.NoError(t, err)

	second, err := service.KpiTotals(context.Background(), criteria)
	require.NoError(t, err)

	assert.Equal(t, totals, first)
	assert.Equal(t, first, second)
}

func TestService_KpiTotals_FalhaNaoCacheada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(0), mockRepo, cache.New())

	criteria := testCriteria(t)
	totals := &domain.KpiTotals{TotalSales: 500.0, TotalCustomers: 5, TotalOrders: 2}

	// Primeira chamada falha; a falha não pode ficar no cache
	connErr := domain.NewDataSourceError(domain.SourceConnectionFailed, errors.New("connection refused"))
	gomock.InOrder(
		mockRepo.EXPECT().
			GetKpiTotals(gomock.Any(), criteria).
			Return(nil, connErr),
		mockRepo.EXPECT().
			GetKpiTotals(gomock.Any(), criteria).
			Return(totals, nil),
	)

	_, err := service.KpiTotals(context.Background(), criteria)
	require.Error(t, err)

	dse, ok := domain.AsDataSourceError(err)
	require.True(t, ok)
	assert.Equal(t, domain.SourceConnectionFailed, dse.Code)

	// A chamada seguinte volta ao repositório em vez de servir o erro
	result, err := service.KpiTotals(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, totals, result)
}

func TestService_KpiTotals_RetryFalhaDeConexao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(1), mockRepo, cache.New())

	criteria := testCriteria(t)
	totals := &domain.KpiTotals{TotalSales: 250.0, TotalCustomers: 3, TotalOrders: 1}

	// Falha de conexão é repetida uma vez dentro da mesma chamada
	connErr := domain.NewDataSourceError(domain.SourceConnectionFailed, errors.New("connection reset"))
	gomock.InOrder(
		mockRepo.EXPECT().
			GetKpiTotals(gomock.Any(), criteria).
			Return(nil, connErr),
		mockRepo.EXPECT().
			GetKpiTotals(gomock.Any(), criteria).
			Return(totals, nil),
	)

	result, err := service.KpiTotals(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, totals, result)
}

func TestService_KpiTotals_QueryRejeitadaNaoRepete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(2), mockRepo, cache.New())

	criteria := testCriteria(t)

	// Rejeição é determinística: repetir não muda o resultado
	rejectedErr := domain.NewDataSourceError(domain.SourceQueryRejected, errors.New("syntax error"))
	mockRepo.EXPECT().
		GetKpiTotals(gomock.Any(), criteria).
		Return(nil, rejectedErr).
		Times(1)

	_, err := service.KpiTotals(context.Background(), criteria)
	require.Error(t, err)

	dse, ok := domain.AsDataSourceError(err)
	require.True(t, ok)
	assert.Equal(t, domain.SourceQueryRejected, dse.Code)
}

func TestService_ConsultasNaoCompartilhamEntradas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(0), mockRepo, cache.New())

	criteria := testCriteria(t)

	// Mesmo critério, templates diferentes: cada consulta tem sua entrada
	mockRepo.EXPECT().
		GetKpiTotals(gomock.Any(), criteria).
		Return(&domain.KpiTotals{}, nil).
		Times(1)
	mockRepo.EXPECT().
		GetDailyBreakdown(gomock.Any(), criteria).
		Return([]domain.DailySalesRow{}, nil).
		Times(1)

	_, err := service.KpiTotals(context.Background(), criteria)
	require.NoError(t, err)

	_, err = service.DailyBreakdown(context.Background(), criteria)
	require.NoError(t, err)
}

func TestService_RecentTransactions_LimiteNaChave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(0), mockRepo, cache.New())

	criteria := testCriteria(t)

	// Limites diferentes não disputam a mesma entrada de cache
	mockRepo.EXPECT().
		GetRecentTransactions(gomock.Any(), criteria, 100).
		Return([]domain.SalesRecord{}, nil).
		Times(1)
	mockRepo.EXPECT().
		GetRecentTransactions(gomock.Any(), criteria, 500).
		Return([]domain.SalesRecord{}, nil).
		Times(1)

	_, err := service.RecentTransactions(context.Background(), criteria, 100)
	require.NoError(t, err)

	_, err = service.RecentTransactions(context.Background(), criteria, 500)
	require.NoError(t, err)

	// Repetir com o mesmo limite serve do cache
	_, err = service.RecentTransactions(context.Background(), criteria, 100)
	require.NoError(t, err)
}

func TestService_RefreshMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(0), mockRepo, cache.New())

	bounds := &domain.DateBounds{
		MinDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		MaxDate: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	// Primeira carga
	mockRepo.EXPECT().GetDateBounds(gomock.Any()).Return(bounds, nil).Times(2)
	mockRepo.EXPECT().GetDistinctGenders(gomock.Any()).Return([]string{"Female", "Male"}, nil).Times(2)
	mockRepo.EXPECT().GetDistinctCategories(gomock.Any()).Return([]string{"Beauty", "Clothing"}, nil).Times(2)

	_, err := service.DateBounds(context.Background())
	require.NoError(t, err)
	_, err = service.DistinctGenders(context.Background())
	require.NoError(t, err)
	_, err = service.DistinctCategories(context.Background())
	require.NoError(t, err)

	// O refresh invalida as entradas e volta ao repositório
	err = service.RefreshMetadata(context.Background())
	require.NoError(t, err)

	// Depois do refresh as entradas voltam a ser servidas do cache
	result, err := service.DateBounds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bounds, result)
}

func TestService_ConsistenciaEntreConsultas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(0), mockRepo, cache.New())

	criteria := testCriteria(t)
	day := criteria.StartDate

	// O rollup diário e os totais de KPI vêm da mesma tabela: a soma do
	// rollup precisa bater com a receita total
	rows := []domain.DailySalesRow{
		{SaleDate: day, Category: "Beauty", Gender: "Female", DailySales: 300.0},
		{SaleDate: day, Category: "Clothing", Gender: "Male", DailySales: 700.0},
	}
	totals := &domain.KpiTotals{TotalSales: 1000.0, TotalCustomers: 12, TotalOrders: 5}

	mockRepo.EXPECT().GetDailyBreakdown(gomock.Any(), criteria).Return(rows, nil)
	mockRepo.EXPECT().GetKpiTotals(gomock.Any(), criteria).Return(totals, nil)

	breakdown, err := service.DailyBreakdown(context.Background(), criteria)
	require.NoError(t, err)

	kpis, err := service.KpiTotals(context.Background(), criteria)
	require.NoError(t, err)

	var sum float64
	for _, row := range breakdown {
		sum += row.DailySales
	}
	assert.Equal(t, kpis.TotalSales, sum)
}

func TestService_CriteriaNulo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRetailSalesRepository(ctrl)
	service := NewService(testConfig(0), mockRepo, cache.New())

	_, err := service.KpiTotals(context.Background(), nil)
	assert.ErrorIs(t, err, ErrIncompleteDateRange)

	_, err = service.DailyBreakdown(context.Background(), nil)
	assert.ErrorIs(t, err, ErrIncompleteDateRange)

	_, err = service.RecentTransactions(context.Background(), nil, 100)
	assert.ErrorIs(t, err, ErrIncompleteDateRange)
}
