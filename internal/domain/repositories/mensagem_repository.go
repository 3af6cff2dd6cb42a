package repositories

import (
	"context"

	"github.com/estudai/estudai-backend/internal/domain/entities"
)

// MensagemRepository define a interface para persistência de mensagens
// da comunidade. Mensagens são imutáveis: só existem criação e leitura.
// Listagens retornam ordem cronológica ascendente, empates resolvidos
// pela ordem de inserção.
type MensagemRepository interface {
	Create(ctx context.Context, mensagem *entities.Mensagem) error
	List(ctx context.Context) ([]*entities.Mensagem, error)
	ListByUsuario(ctx context.Context, usuarioID uint) ([]*entities.Mensagem, error)
}
