package domain

import (
	"errors"
	"fmt"
)

// Códigos de erro de validação de filtros (entrada do chamador malformada,
// recuperável re-solicitando os filtros)
type ValidationCode string

const (
	ValidationIncompleteDateRange ValidationCode = "INCOMPLETE_DATE_RANGE"
	ValidationEmptySelection      ValidationCode = "EMPTY_SELECTION"
	ValidationInvalidDateOrder    ValidationCode = "INVALID_DATE_ORDER"
)

// Códigos de erro do armazenamento externo (não recuperável localmente;
// o chamador interrompe o ciclo de renderização)
type SourceErrorCode string

const (
	SourceConnectionFailed SourceErrorCode = "CONNECTION_FAILED"
	SourceQueryRejected    SourceErrorCode = "QUERY_REJECTED"
	SourceTimeout          SourceErrorCode = "TIMEOUT"
)

// ValidationError indica filtros de UI inválidos
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("filtros inválidos (%s): %s", e.Code, e.Message)
}

func NewValidationError(code ValidationCode, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// IsValidationError verifica se o erro (ou sua cadeia) é de validação
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DataSourceError indica falha ao consultar o armazenamento externo,
// sempre carregando a causa subjacente
type DataSourceError struct {
	Code  SourceErrorCode
	Cause error
}

func (e *DataSourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("falha na fonte de dados (%s): %v", e.Code, e.Cause)
	}
	return fmt.Sprintf("falha na fonte de dados (%s)", e.Code)
}

func (e *DataSourceError) Unwrap() error {
	return e.Cause
}

func NewDataSourceError(code SourceErrorCode, cause error) *DataSourceError {
	return &DataSourceError{Code: code, Cause: cause}
}

// AsDataSourceError extrai um DataSourceError da cadeia de erros
func AsDataSourceError(err error) (*DataSourceError, bool) {
	var dse *DataSourceError
	if errors.As(err, &dse) {
		return dse, true
	}
	return nil, false
}
