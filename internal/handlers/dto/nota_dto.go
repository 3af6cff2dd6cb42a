package dto

import (
	"time"

	"github.com/estudai/estudai-backend/internal/domain/entities"
)

// CriarNotaRequest representa a requisição de criação de nota.
// Conteúdo vazio é aceito.
type CriarNotaRequest struct {
	UsuarioID uint   `json:"usuario_id" binding:"required"`
	Conteudo  string `json:"conteudo"`
}

// AtualizarNotaRequest representa a requisição de atualização de nota.
// O campo conteudo precisa estar presente no JSON; string vazia é aceita.
// Por isso o ponteiro: ausente (nil) é rejeitado, "" passa.
type AtualizarNotaRequest struct {
	Conteudo *string `json:"conteudo" binding:"required"`
}

// NotaResponse representa uma nota na resposta
type NotaResponse struct {
	ID              uint      `json:"id"`
	UsuarioID       uint      `json:"usuario_id"`
	Conteudo        string    `json:"conteudo"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataAtualizacao time.Time `json:"data_atualizacao"`
}

// ToNotaResponse converte uma entidade Nota para NotaResponse
func ToNotaResponse(nota *entities.Nota) NotaResponse {
	return NotaResponse{
		ID:              nota.ID,
		UsuarioID:       nota.UsuarioID,
		Conteudo:        nota.Conteudo,
		DataCriacao:     nota.DataCriacao,
		DataAtualizacao: nota.DataAtualizacao,
	}
}

// ToNotaResponses converte uma lista de entidades Nota
func ToNotaResponses(notas []*entities.Nota) []NotaResponse {
	responses := make([]NotaResponse, len(notas))
	for i, nota := range notas {
		responses[i] = ToNotaResponse(nota)
	}
	return responses
}
