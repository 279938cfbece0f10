package domain

import "time"

// TrendPoint é um ponto da série de receita diária (visão de tendência).
type TrendPoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// CategoryShare é a fatia de receita de uma categoria (visão de participação).
type CategoryShare struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// HeatmapCell é uma célula do cruzamento dia-da-semana x categoria.
// DayOfWeek segue a ordenação com segunda-feira primeiro.
type HeatmapCell struct {
	DayOfWeek string  `json:"day_of_week"`
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
}

// GenderSplit é uma célula do cruzamento categoria x gênero.
type GenderSplit struct {
	Category string  `json:"category"`
	Gender   string  `json:"gender"`
	Revenue  float64 `json:"revenue"`
}
