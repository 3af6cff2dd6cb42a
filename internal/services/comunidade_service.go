package services

import (
	"context"
	"time"

	"github.com/estudai/estudai-backend/internal/domain/entities"
	"github.com/estudai/estudai-backend/internal/domain/ports"
	"github.com/estudai/estudai-backend/internal/domain/repositories"
)

// ComunidadeService contém a lógica de negócio do mural da comunidade
type ComunidadeService struct {
	mensagemRepo repositories.MensagemRepository
	logger       ports.Logger
}

// NewComunidadeService cria um novo ComunidadeService
func NewComunidadeService(
	mensagemRepo repositories.MensagemRepository,
	logger ports.Logger,
) *ComunidadeService {
	return &ComunidadeService{
		mensagemRepo: mensagemRepo,
		logger:       logger,
	}
}

// PostarMensagemInput representa os dados para postar uma mensagem
type PostarMensagemInput struct {
	UsuarioID   uint
	UsuarioNome string
	Mensagem    string
	// Data ausente usa o horário do servidor
	Data *time.Time
}

// Postar publica uma mensagem imutável no mural
func (s *ComunidadeService) Postar(ctx context.Context, input PostarMensagemInput) (*entities.Mensagem, error) {
	data := time.Now().UTC()
	if input.Data != nil {
		data = *input.Data
	}

	mensagem := &entities.Mensagem{
		UsuarioID:   input.UsuarioID,
		UsuarioNome: input.UsuarioNome,
		Mensagem:    input.Mensagem,
		Data:        data,
	}

	if err := s.mensagemRepo.Create(ctx, mensagem); err != nil {
		return nil, err
	}

	s.logger.Info("mensagem postada", "mensagem_id", mensagem.ID, "usuario_id", mensagem.UsuarioID)
	return mensagem, nil
}

// Listar retorna todas as mensagens em ordem cronológica
func (s *ComunidadeService) Listar(ctx context.Context) ([]*entities.Mensagem, error) {
	return s.mensagemRepo.List(ctx)
}

// ListarPorUsuario retorna as mensagens de um usuário em ordem cronológica
func (s *ComunidadeService) ListarPorUsuario(ctx context.Context, usuarioID uint) ([]*entities.Mensagem, error) {
	return s.mensagemRepo.ListByUsuario(ctx, usuarioID)
}
