package charting

import (
	"sort"
	"time"

	"github.com/vfg2006/retail-pulse-api/internal/domain"
	"github.com/vfg2006/retail-pulse-api/pkg/utils"
)

// Ordenação fixa de dias da semana, segunda-feira primeiro
var weekdayRank = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// Todos os reagrupamentos deste pacote são dobras puras em memória sobre o
// rollup diário: nenhum acesso ao banco, o mesmo conjunto de linhas alimenta
// as quatro visões de gráfico.

// RevenueTrend agrupa o rollup por data, somando a receita (visão de tendência)
func RevenueTrend(rows []domain.DailySalesRow) []domain.TrendPoint {
	byDate := make(map[time.Time]float64)
	for _, row := range rows {
		byDate[row.SaleDate] += row.DailySales
	}

	trend := make([]domain.TrendPoint, 0, len(byDate))
	for date, revenue := range byDate {
		trend = append(trend, domain.TrendPoint{
			Date:    date,
			Revenue: utils.RoundWithTwoDecimalPlace(revenue),
		})
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})

	return trend
}

// CategoryShares agrupa o rollup por categoria (visão de participação),
// da maior receita para a menor
func CategoryShares(rows []domain.DailySalesRow) []domain.CategoryShare {
	byCategory := make(map[string]float64)
	for _, row := range rows {
		byCategory[row.Category] += row.DailySales
	}

	shares := make([]domain.CategoryShare, 0, len(byCategory))
	for category, revenue := range byCategory {
		shares = append(shares, domain.CategoryShare{
			Category: category,
			Revenue:  utils.RoundWithTwoDecimalPlace(revenue),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Revenue != shares[j].Revenue {
			return shares[i].Revenue > shares[j].Revenue
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// WeekdayHeatmap agrupa o rollup por (dia da semana, categoria) para o mapa
// de intensidade de vendas
func WeekdayHeatmap(rows []domain.DailySalesRow) []domain.HeatmapCell {
	type cellKey struct {
		dayOfWeek string
		category  string
	}

	byCell := make(map[cellKey]float64)
	for _, row := range rows {
		key := cellKey{
			dayOfWeek: row.SaleDate.Weekday().String(),
			category:  row.Category,
		}
		byCell[key] += row.DailySales
	}

	cells := make([]domain.HeatmapCell, 0, len(byCell))
	for key, revenue := range byCell {
		cells = append(cells, domain.HeatmapCell{
			DayOfWeek: key.dayOfWeek,
			Category:  key.category,
			Revenue:   utils.RoundWithTwoDecimalPlace(revenue),
		})
	}

	sort.Slice(cells, func(i, j int) bool {
		if weekdayRank[cells[i].DayOfWeek] != weekdayRank[cells[j].DayOfWeek] {
			return weekdayRank[cells[i].DayOfWeek] < weekdayRank[cells[j].DayOfWeek]
		}
		return cells[i].Category < cells[j].Category
	})

	return cells
}

// GenderSplits agrupa o rollup por (categoria, gênero) para a visão de
// preferências demográficas
func GenderSplits(rows []domain.DailySalesRow) []domain.GenderSplit {
	type splitKey struct {
		category string
		gender   string
	}

	bySplit := make(map[splitKey]float64)
	for _, row := range rows {
		key := splitKey{category: row.Category, gender: row.Gender}
		bySplit[key] += row.DailySales
	}

	splits := make([]domain.GenderSplit, 0, len(bySplit))
	for key, revenue := range bySplit {
		splits = append(splits, domain.GenderSplit{
			Category: key.category,
			Gender:   key.gender,
			Revenue:  utils.RoundWithTwoDecimalPlace(revenue),
		})
	}

	sort.Slice(splits, func(i, j int) bool {
		if splits[i].Category != splits[j].Category {
			return splits[i].Category < splits[j].Category
		}
		return splits[i].Gender < splits[j].Gender
	})

	return splits
}
