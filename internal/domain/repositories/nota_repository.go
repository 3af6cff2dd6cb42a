package repositories

import (
	"context"

	"github.com/estudai/estudai-backend/internal/domain/entities"
)

// NotaRepository define a interface para persistência de notas pessoais.
// ListByUsuario retorna as notas mais recentes primeiro (data de criação
// descendente). Delete é incondicional: remover um id inexistente não é
// erro.
type NotaRepository interface {
	Create(ctx context.Context, nota *entities.Nota) error
	Update(ctx context.Context, nota *entities.Nota) error
	Delete(ctx context.Context, id uint) error
	ListByUsuario(ctx context.Context, usuarioID uint) ([]*entities.Nota, error)
}
