package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeFilters(t *testing.T) {
	start := date(2023, time.January, 1)
	end := date(2023, time.March, 31)

	tests := []struct {
		name       string
		dateRange  []time.Time
		genders    []string
		categories []string
		wantErr    error
	}{
		{
			name:       "Período vazio - deve rejeitar",
			dateRange:  []time.Time{},
			genders:    []string{"Female"},
			categories: []string{"Clothing"},
			wantErr:    ErrIncompleteDateRange,
		},
		{
			name:       "Período com um único limite - deve rejeitar",
			dateRange:  []time.Time{start},
			genders:    []string{"Female"},
			categories: []string{"Clothing"},
			wantErr:    ErrIncompleteDateRange,
		},
		{
			name:       "Período com três limites - deve rejeitar",
			dateRange:  []time.Time{start, end, end},
			genders:    []string{"Female"},
			categories: []string{"Clothing"},
			wantErr:    ErrIncompleteDateRange,
		},
		{
			name:       "Data inicial após a final - deve rejeitar",
			dateRange:  []time.Time{end, start},
			genders:    []string{"Female"},
			categories: []string{"Clothing"},
			wantErr:    ErrInvalidDateOrder,
		},
		{
			name:       "Seleção de gêneros vazia - deve rejeitar",
			dateRange:  []time.Time{start, end},
			genders:    []string{},
			categories: []string{"Clothing"},
			wantErr:    ErrEmptySelection,
		},
		{
			name:       "Seleção de categorias vazia - deve rejeitar",
			dateRange:  []time.Time{start, end},
			genders:    []string{"Female"},
			categories: []string{},
			wantErr:    ErrEmptySelection,
		},
		{
			name:       "Seleção contendo apenas strings vazias - deve rejeitar",
			dateRange:  []time.Time{start, end},
			genders:    []string{"", ""},
			categories: []string{"Clothing"},
			wantErr:    ErrEmptySelection,
		},
		{
			name:       "Seleção válida - deve aceitar",
			dateRange:  []time.Time{start, end},
			genders:    []string{"Female", "Male"},
			categories: []string{"Clothing", "Beauty"},
			wantErr:    nil,
		},
		{
			name:       "Período de um único dia - deve aceitar",
			dateRange:  []time.Time{start, start},
			genders:    []string{"Female"},
			categories: []string{"Clothing"},
			wantErr:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := NormalizeFilters(tt.dateRange, tt.genders, tt.categories)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, criteria)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, criteria)
			assert.Equal(t, tt.dateRange[0], criteria.StartDate)
			assert.Equal(t, tt.dateRange[1], criteria.EndDate)
		})
	}
}

func TestNormalizeFilters_Canonizacao(t *testing.T) {
	start := date(2023, time.January, 1)
	end := date(2023, time.March, 31)

	t.Run("Duplicados removidos e conjuntos ordenados", func(t *testing.T) {
		criteria, err := NormalizeFilters(
			[]time.Time{start, end},
			[]string{"Male", "Female", "Male"},
			[]string{"Electronics", "Beauty", "Clothing", "Beauty"},
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"Female", "Male"}, criteria.Genders)
		assert.Equal(t, []string{"Beauty", "Clothing", "Electronics"}, criteria.Categories)
	})

	t.Run("Horário truncado para o início do dia", func(t *testing.T) {
		criteria, err := NormalizeFilters(
			[]time.Time{
				time.Date(2023, time.January, 1, 14, 35, 12, 0, time.UTC),
				time.Date(2023, time.March, 31, 23, 59, 59, 0, time.UTC),
			},
			[]string{"Female"},
			[]string{"Clothing"},
		)

		require.NoError(t, err)
		assert.Equal(t, start, criteria.StartDate)
		assert.Equal(t, end, criteria.EndDate)
	})

	t.Run("Seleções em ordens diferentes produzem a mesma chave de cache", func(t *testing.T) {
		first, err := NormalizeFilters(
			[]time.Time{start, end},
			[]string{"Male", "Female"},
			[]string{"Electronics", "Clothing", "Beauty"},
		)
		require.NoError(t, err)

		second, err := NormalizeFilters(
			[]time.Time{start, end},
			[]string{"Female", "Male"},
			[]string{"Beauty", "Electronics", "Clothing"},
		)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, first.CacheKey("kpi_totals"), second.CacheKey("kpi_totals"))
	})

	t.Run("Templates diferentes produzem chaves diferentes", func(t *testing.T) {
		criteria, err := NormalizeFilters(
			[]time.Time{start, end},
			[]string{"Female"},
			[]string{"Clothing"},
		)
		require.NoError(t, err)

		assert.NotEqual(t, criteria.CacheKey("kpi_totals"), criteria.CacheKey("daily_breakdown"))
	})
}
