package dto

import (
	"time"

	"github.com/estudai/estudai-backend/internal/domain/entities"
)

// PostarMensagemRequest representa a requisição de post no mural.
// Data ausente usa o horário do servidor.
type PostarMensagemRequest struct {
	UsuarioID   uint       `json:"usuario_id" binding:"required"`
	UsuarioNome string     `json:"usuario_nome" binding:"required"`
	Mensagem    string     `json:"mensagem" binding:"required"`
	Data        *time.Time `json:"data"`
}

// MensagemResponse representa uma mensagem do mural na resposta
type MensagemResponse struct {
	ID          uint      `json:"id"`
	UsuarioID   uint      `json:"usuario_id"`
	UsuarioNome string    `json:"usuario_nome"`
	Mensagem    string    `json:"mensagem"`
	Data        time.Time `json:"data"`
}

// ToMensagemResponse converte uma entidade Mensagem para MensagemResponse
func ToMensagemResponse(mensagem *entities.Mensagem) MensagemResponse {
	return MensagemResponse{
		ID:          mensagem.ID,
		UsuarioID:   mensagem.UsuarioID,
		UsuarioNome: mensagem.UsuarioNome,
		Mensagem:    mensagem.Mensagem,
		Data:        mensagem.Data,
	}
}

// ToMensagemResponses converte uma lista de entidades Mensagem
func ToMensagemResponses(mensagens []*entities.Mensagem) []MensagemResponse {
	responses := make([]MensagemResponse, len(mensagens))
	for i, mensagem := range mensagens {
		responses[i] = ToMensagemResponse(mensagem)
	}
	return responses
}
