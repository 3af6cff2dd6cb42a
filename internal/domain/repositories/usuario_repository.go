package repositories

import (
	"context"

	"github.com/estudai/estudai-backend/internal/domain/entities"
)

// UsuarioRepository define a interface para persistência de usuários
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entities.Usuario) error
	FindByID(ctx context.Context, id uint) (*entities.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entities.Usuario, error)
	Update(ctx context.Context, usuario *entities.Usuario) error
	// ListEmails retorna apenas os emails de todos os usuários cadastrados
	ListEmails(ctx context.Context) ([]string, error)
}
