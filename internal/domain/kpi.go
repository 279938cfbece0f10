package domain

import "github.com/vfg2006/retail-pulse-api/pkg/utils"

// KpiTotals são os agregados escalares do painel para um conjunto de filtros.
type KpiTotals struct {
	TotalSales     float64 `json:"total_sales"`
	TotalCustomers int     `json:"total_customers"`
	TotalOrders    int     `json:"total_orders"`
}

// AverageOrderValue calcula o ticket médio (AOV) a partir dos agregados.
// Quando totalOrders é zero o denominador é tratado como 1 — é um piso
// deliberado para o painel exibir R$ 0,00 em vez de falhar, não uma
// afirmação de que houve um pedido.
func AverageOrderValue(totalSales float64, totalOrders int) float64 {
	orders := totalOrders
	if orders == 0 {
		orders = 1
	}

	return utils.RoundWithTwoDecimalPlace(totalSales / float64(orders))
}

// AverageOrderValue é o AOV dos totais correntes.
func (k *KpiTotals) AverageOrderValue() float64 {
	return AverageOrderValue(k.TotalSales, k.TotalOrders)
}
