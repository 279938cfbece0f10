package charting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-pulse-api/internal/domain"
)

// Período de referência: 2 de janeiro de 2023 foi uma segunda-feira
var (
	monday    = time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	tuesday   = time.Date(2023, time.January, 3, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2023, time.January, 8, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2023, time.January, 7, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2023, time.January, 4, 0, 0, 0, 0, time.UTC)
)

func sampleRows() []domain.DailySalesRow {
	return []domain.DailySalesRow{
		{SaleDate: tuesday, Category: "Clothing", Gender: "Female", DailySales: 300.0},
		{SaleDate: monday, Category: "Beauty", Gender: "Female", DailySales: 100.0},
		{SaleDate: monday, Category: "Clothing", Gender: "Male", DailySales: 200.0},
		{SaleDate: sunday, Category: "Beauty", Gender: "Male", DailySales: 50.0},
		{SaleDate: monday, Category: "Beauty", Gender: "Male", DailySales: 150.0},
	}
}

func TestRevenueTrend(t *testing.T) {
	trend := RevenueTrend(sampleRows())

	require.Len(t, trend, 3)

	// Ordenado por data crescente, somando as linhas do mesmo dia
	assert.Equal(t, monday, trend[0].Date)
	assert.Equal(t, 450.0, trend[0].Revenue)
	assert.Equal(t, tuesday, trend[1].Date)
	assert.Equal(t, 300.0, trend[1].Revenue)
	assert.Equal(t, sunday, trend[2].Date)
	assert.Equal(t, 50.0, trend[2].Revenue)
}

func TestRevenueTrend_SemLinhas(t *testing.T) {
	trend := RevenueTrend(nil)

	assert.Empty(t, trend)
}

func TestCategoryShares(t *testing.T) {
	shares := CategoryShares(sampleRows())

	require.Len(t, shares, 2)

	// Da maior receita para a menor
	assert.Equal(t, "Clothing", shares[0].Category)
	assert.Equal(t, 500.0, shares[0].Revenue)
	assert.Equal(t, "Beauty", shares[1].Category)
	assert.Equal(t, 300.0, shares[1].Revenue)
}

func TestCategoryShares_EmpateOrdenaPorNome(t *testing.T) {
	rows := []domain.DailySalesRow{
		{SaleDate: monday, Category: "Electronics", Gender: "Male", DailySales: 100.0},
		{SaleDate: monday, Category: "Beauty", Gender: "Female", DailySales: 100.0},
	}

	shares := CategoryShares(rows)

	require.Len(t, shares, 2)
	assert.Equal(t, "Beauty", shares[0].Category)
	assert.Equal(t, "Electronics", shares[1].Category)
}

func TestWeekdayHeatmap_SegundaFeiraPrimeiro(t *testing.T) {
	rows := []domain.DailySalesRow{
		{SaleDate: sunday, Category: "Beauty", Gender: "Male", DailySales: 50.0},
		{SaleDate: saturday, Category: "Beauty", Gender: "Female", DailySales: 80.0},
		{SaleDate: monday, Category: "Clothing", Gender: "Male", DailySales: 200.0},
		{SaleDate: monday, Category: "Beauty", Gender: "Female", DailySales: 100.0},
		{SaleDate: wednesday, Category: "Beauty", Gender: "Male", DailySales: 30.0},
	}

	cells := WeekdayHeatmap(rows)

	require.Len(t, cells, 5)

	// Segunda-feira primeiro, domingo por último; categorias em ordem dentro
	// do mesmo dia
	assert.Equal(t, "Monday", cells[0].DayOfWeek)
	assert.Equal(t, "Beauty", cells[0].Category)
	assert.Equal(t, "Monday", cells[1].DayOfWeek)
	assert.Equal(t, "Clothing", cells[1].Category)
	assert.Equal(t, "Wednesday", cells[2].DayOfWeek)
	assert.Equal(t, "Saturday", cells[3].DayOfWeek)
	assert.Equal(t, "Sunday", cells[4].DayOfWeek)
}

func TestWeekdayHeatmap_AcumulaMesmoDiaDaSemana(t *testing.T) {
	nextMonday := monday.AddDate(0, 0, 7)

	rows := []domain.DailySalesRow{
		{SaleDate: monday, Category: "Beauty", Gender: "Female", DailySales: 100.0},
		{SaleDate: nextMonday, Category: "Beauty", Gender: "Male", DailySales: 40.0},
	}

	cells := WeekdayHeatmap(rows)

	require.Len(t, cells, 1)
	assert.Equal(t, "Monday", cells[0].DayOfWeek)
	assert.Equal(t, 140.0, cells[0].Revenue)
}

func TestGenderSplits(t *testing.T) {
	splits := GenderSplits(sampleRows())

	require.Len(t, splits, 4)

	// Ordenado por categoria e gênero
	assert.Equal(t, domain.GenderSplit{Category: "Beauty", Gender: "Female", Revenue: 100.0}, splits[0])
	assert.Equal(t, domain.GenderSplit{Category: "Beauty", Gender: "Male", Revenue: 200.0}, splits[1])
	assert.Equal(t, domain.GenderSplit{Category: "Clothing", Gender: "Female", Revenue: 300.0}, splits[2])
	assert.Equal(t, domain.GenderSplit{Category: "Clothing", Gender: "Male", Revenue: 200.0}, splits[3])
}
