package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/retail-pulse-api/internal/domain"
)

// NormalizeFilters valida e canoniza o estado bruto dos filtros da UI em um
// FilterCriteria seguro para execução parametrizada. Função pura.
//
// Regras:
//   - dateRange precisa conter exatamente dois limites, em ordem;
//   - genders e categories não podem ser vazios;
//   - os conjuntos são deduplicados e ordenados lexicograficamente, para que
//     seleções em qualquer ordem produzam a mesma chave de cache.
func NormalizeFilters(dateRange []time.Time, genders, categories []string) (*domain.FilterCriteria, error) {
	if len(dateRange) != 2 {
		return nil, ErrIncompleteDateRange
	}

	start := truncateToDay(dateRange[0])
	end := truncateToDay(dateRange[1])

	if start.After(end) {
		return nil, ErrInvalidDateOrder
	}

	genderSet := canonicalSet(genders)
	categorySet := canonicalSet(categories)

	if len(genderSet) == 0 || len(categorySet) == 0 {
		return nil, ErrEmptySelection
	}

	return &domain.FilterCriteria{
		StartDate:  start,
		EndDate:    end,
		Genders:    genderSet,
		Categories: categorySet,
	}, nil
}

// canonicalSet deduplica e ordena o conjunto de seleção
func canonicalSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	set := make([]string, 0, len(values))

	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		set = append(set, v)
	}

	sort.Strings(set)
	return set
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
