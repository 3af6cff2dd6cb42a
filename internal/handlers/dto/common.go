package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MessageResponse é o corpo padrão de confirmações e falhas:
// {message, error?}. "message" vem traduzido pelo i18n; "error" carrega
// detalhe técnico (campos inválidos, erro cru do banco) quando existir.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Message monta uma resposta de confirmação traduzida
func Message(c *gin.Context, key string, params ...map[string]interface{}) MessageResponse {
	return MessageResponse{Message: T(c, key, params...)}
}

// ErrorMessage monta uma resposta de erro traduzida, sem detalhe técnico
func ErrorMessage(c *gin.Context, key string, params ...map[string]interface{}) MessageResponse {
	return MessageResponse{Message: T(c, key, params...)}
}

// ValidationErrorMessage monta uma resposta 400 traduzida, anexando os
// campos rejeitados pelo binding no detalhe
func ValidationErrorMessage(c *gin.Context, key string, bindErr error) MessageResponse {
	return MessageResponse{
		Message: T(c, key),
		Error:   fieldErrors(bindErr),
	}
}

// StoreErrorMessage monta uma resposta 500 traduzida com o erro cru do
// banco no campo "error"
func StoreErrorMessage(c *gin.Context, key string, err error) MessageResponse {
	response := MessageResponse{Message: T(c, key)}
	if err != nil {
		response.Error = err.Error()
	}
	return response
}

// fieldErrors resume os erros de validação do binding em "Campo: tag"
func fieldErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ""
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
