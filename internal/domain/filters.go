package domain

import (
	"strings"
	"time"
)

// FilterCriteria é o conjunto canônico de filtros de um ciclo de renderização.
// Os slices de gênero e categoria estão sempre ordenados lexicograficamente e
// sem duplicados, de forma que duas seleções logicamente iguais produzam a
// mesma chave de cache independente da ordem de seleção na UI.
// O objeto é construído uma vez por ciclo e não deve ser mutado depois.
type FilterCriteria struct {
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Genders    []string  `json:"genders"`
	Categories []string  `json:"categories"`
}

// CacheKey deriva a chave determinística para uma consulta identificada por
// templateID sob estes filtros. Critérios já canônicos garantem estabilidade.
func (f *FilterCriteria) CacheKey(templateID string) string {
	parts := []string{
		templateID,
		f.StartDate.Format(time.DateOnly),
		f.EndDate.Format(time.DateOnly),
		strings.Join(f.Genders, ","),
		strings.Join(f.Categories, ","),
	}
	return strings.Join(parts, "|")
}
