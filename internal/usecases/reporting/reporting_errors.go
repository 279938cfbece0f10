package reporting

import (
	"github.com/vfg2006/retail-pulse-api/internal/domain"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação de filtros
	ErrIncompleteDateRange = domain.NewValidationError(
		domain.ValidationIncompleteDateRange,
		"o período deve conter exatamente duas datas",
	)
	ErrEmptySelection = domain.NewValidationError(
		domain.ValidationEmptySelection,
		"é necessário selecionar ao menos um gênero e uma categoria",
	)
	ErrInvalidDateOrder = domain.NewValidationError(
		domain.ValidationInvalidDateOrder,
		"a data de início não pode ser posterior à data de fim",
	)
)
