package services

import (
	"context"
	"time"

	"github.com/estudai/estudai-backend/internal/domain/entities"
	"github.com/estudai/estudai-backend/internal/domain/ports"
	"github.com/estudai/estudai-backend/internal/domain/repositories"
)

// NotaService contém a lógica de negócio das notas pessoais
type NotaService struct {
	notaRepo repositories.NotaRepository
	logger   ports.Logger
}

// NewNotaService cria um novo NotaService
func NewNotaService(notaRepo repositories.NotaRepository, logger ports.Logger) *NotaService {
	return &NotaService{
		notaRepo: notaRepo,
		logger:   logger,
	}
}

// Criar cria uma nota para o usuário. Conteúdo vazio é permitido.
// As duas datas recebem o mesmo instante de criação.
func (s *NotaService) Criar(ctx context.Context, usuarioID uint, conteudo string) (*entities.Nota, error) {
	agora := time.Now().UTC()

	nota := &entities.Nota{
		UsuarioID:       usuarioID,
		Conteudo:        conteudo,
		DataCriacao:     agora,
		DataAtualizacao: agora,
	}

	if err := s.notaRepo.Create(ctx, nota); err != nil {
		return nil, err
	}

	s.logger.Info("nota criada", "nota_id", nota.ID, "usuario_id", usuarioID)
	return nota, nil
}

// Atualizar substitui o conteúdo e refresca data_atualizacao.
// data_criacao nunca muda. Id inexistente afeta zero linhas, sem erro.
func (s *NotaService) Atualizar(ctx context.Context, id uint, conteudo string) error {
	nota := &entities.Nota{ID: id}
	nota.AtualizarConteudo(conteudo, time.Now().UTC())

	return s.notaRepo.Update(ctx, nota)
}

// Remover deleta a nota incondicionalmente
func (s *NotaService) Remover(ctx context.Context, id uint) error {
	return s.notaRepo.Delete(ctx, id)
}

// Listar retorna as notas do usuário, mais recentes primeiro
func (s *NotaService) Listar(ctx context.Context, usuarioID uint) ([]*entities.Nota, error) {
	return s.notaRepo.ListByUsuario(ctx, usuarioID)
}
