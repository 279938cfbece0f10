package apiErrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/retail-pulse-api/internal/domain"
)

// Códigos de erro expostos pela API
const (
	// Erros de validação de filtros (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrIncompleteDateRange = "VAL_002" // Período incompleto
	ErrEmptySelection      = "VAL_003" // Seleção de filtros vazia
	ErrInvalidDateOrder    = "VAL_004" // Datas fora de ordem

	// Erros da fonte de dados (5000-5999)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrConnectionFailed = "SRC_001" // Falha de conexão com o banco
	ErrQueryRejected    = "SRC_002" // Consulta rejeitada pelo banco
	ErrQueryTimeout     = "SRC_003" // Consulta excedeu o timeout
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrIncompleteDateRange: http.StatusBadRequest,
	ErrEmptySelection:      http.StatusBadRequest,
	ErrInvalidDateOrder:    http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrConnectionFailed:    http.StatusBadGateway,
	ErrQueryRejected:       http.StatusBadGateway,
	ErrQueryTimeout:        http.StatusGatewayTimeout,
}

var validationCodeMap = map[domain.ValidationCode]string{
	domain.ValidationIncompleteDateRange: ErrIncompleteDateRange,
	domain.ValidationEmptySelection:      ErrEmptySelection,
	domain.ValidationInvalidDateOrder:    ErrInvalidDateOrder,
}

var sourceCodeMap = map[domain.SourceErrorCode]string{
	domain.SourceConnectionFailed: ErrConnectionFailed,
	domain.SourceQueryRejected:    ErrQueryRejected,
	domain.SourceTimeout:          ErrQueryTimeout,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteDomainError traduz os erros da taxonomia de relatórios para a
// resposta HTTP apropriada: validação vira 400, fonte de dados vira 502/504
func WriteDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		code, exists := validationCodeMap[ve.Code]
		if !exists {
			code = ErrInvalidRequest
		}
		WriteError(w, code, ve.Message, nil)
		return
	}

	if dse, ok := domain.AsDataSourceError(err); ok {
		code, exists := sourceCodeMap[dse.Code]
		if !exists {
			code = ErrInternalServer
		}
		WriteError(w, code, err.Error(), nil)
		return
	}

	WriteError(w, ErrInternalServer, err.Error(), nil)
}
