package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/estudai/estudai-backend/internal/domain/valueobjects"
)

// Usuario representa uma conta cadastrada no sistema
type Usuario struct {
	ID           uint
	Nome         string
	Email        valueobjects.Email
	SenhaDigest  string
	Foto         *string
	AtualizadoEm time.Time
}

// DefinirSenha substitui o digest armazenado.
// O digest nunca é a senha em texto puro.
func (u *Usuario) DefinirSenha(digest string) {
	u.SenhaDigest = digest
}

// AtualizarPerfil aplica nome e foto, marcando o momento da atualização
func (u *Usuario) AtualizarPerfil(nome string, foto *string, agora time.Time) {
	u.Nome = nome
	u.Foto = foto
	u.AtualizadoEm = agora
}

// Validate valida regras de negócio da entidade Usuario
func (u *Usuario) Validate() error {
	if strings.TrimSpace(u.Nome) == "" {
		return errors.New("nome is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.SenhaDigest == "" {
		return errors.New("senha digest is required")
	}

	return nil
}
