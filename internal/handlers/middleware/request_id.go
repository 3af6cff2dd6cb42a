package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey é a chave do id da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
	// RequestIDHeader é o header de correlação na resposta
	RequestIDHeader = "X-Request-ID"
)

// RequestID atribui um identificador único a cada requisição.
// Se o cliente já enviou X-Request-ID, o valor é propagado; caso
// contrário, um uuid novo é gerado. O id sai no header da resposta e
// fica disponível para os logs dos handlers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
