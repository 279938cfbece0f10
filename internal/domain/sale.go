package domain

import "time"

// SalesRecord é uma transação da tabela retail_sales. Somente leitura; a
// tabela pertence ao sistema transacional externo.
type SalesRecord struct {
	SaleDate   time.Time `json:"sale_date"`
	CustomerID string    `json:"customer_id"`
	Gender     string    `json:"gender"`
	Category   string    `json:"category"`
	TotalSale  float64   `json:"total_sale"`
}

// DailySalesRow é uma linha do rollup diário agrupado por
// (sale_date, category, gender). Todas as visões de gráfico derivam
// deste shape por reagrupamento em memória, sem nova consulta.
type DailySalesRow struct {
	SaleDate   time.Time `json:"sale_date"`
	Category   string    `json:"category"`
	Gender     string    `json:"gender"`
	DailySales float64   `json:"daily_sales"`
}

// DateBounds são os limites de datas disponíveis na tabela, usados para
// popular o seletor de período da UI.
type DateBounds struct {
	MinDate time.Time `json:"min_date"`
	MaxDate time.Time `json:"max_date"`
}
