package dto

import (
	"github.com/estudai/estudai-backend/internal/domain/entities"
)

// CadastrarRequest representa a requisição de cadastro
type CadastrarRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// LoginRequest representa a requisição de login.
// Campos ausentes não são erro de validação: email vazio simplesmente
// não corresponde a nenhum cadastro (401).
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// AtualizarPerfilRequest representa a requisição de atualização de perfil.
// Senha em branco ou ausente mantém a senha atual.
type AtualizarPerfilRequest struct {
	Nome  string  `json:"nome" binding:"required"`
	Foto  *string `json:"foto"`
	Senha *string `json:"senha"`
}

// PerfilResponse representa os dados públicos de um usuário.
// O digest da senha nunca aparece aqui.
type PerfilResponse struct {
	ID    uint    `json:"id"`
	Nome  string  `json:"nome"`
	Email string  `json:"email"`
	Foto  *string `json:"foto"`
}

// EmailResponse representa um item da listagem de usuários
type EmailResponse struct {
	Email string `json:"email"`
}

// ToPerfilResponse converte uma entidade Usuario para PerfilResponse
func ToPerfilResponse(usuario *entities.Usuario) PerfilResponse {
	return PerfilResponse{
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Email: usuario.Email.String(),
		Foto:  usuario.Foto,
	}
}

// ToEmailResponses converte a lista de emails para o corpo da resposta
func ToEmailResponses(emails []string) []EmailResponse {
	responses := make([]EmailResponse, len(emails))
	for i, email := range emails {
		responses[i] = EmailResponse{Email: email}
	}
	return responses
}
