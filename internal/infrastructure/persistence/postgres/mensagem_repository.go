package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/estudai/estudai-backend/internal/domain/entities"
	"github.com/estudai/estudai-backend/internal/domain/repositories"
)

// MensagemRepository implementa repositories.MensagemRepository
type MensagemRepository struct {
	db *gorm.DB
}

// NewMensagemRepository cria um novo MensagemRepository
func NewMensagemRepository(db *gorm.DB) repositories.MensagemRepository {
	return &MensagemRepository{db: db}
}

func (r *MensagemRepository) Create(ctx context.Context, mensagem *entities.Mensagem) error {
	model := r.toModel(mensagem)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	mensagem.ID = model.ID
	return nil
}

func (r *MensagemRepository) List(ctx context.Context) ([]*entities.Mensagem, error) {
	var models []*MensagemModel

	db := r.getDB(ctx)
	// ordem cronológica; empates resolvidos pela ordem de inserção
	if err := db.WithContext(ctx).
		Order("data ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *MensagemRepository) ListByUsuario(ctx context.Context, usuarioID uint) ([]*entities.Mensagem, error) {
	var models []*MensagemModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("data ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *MensagemRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *MensagemRepository) toModel(mensagem *entities.Mensagem) *MensagemModel {
	return &MensagemModel{
		ID:          mensagem.ID,
		UsuarioID:   mensagem.UsuarioID,
		UsuarioNome: mensagem.UsuarioNome,
		Mensagem:    mensagem.Mensagem,
		Data:        mensagem.Data,
	}
}

func (r *MensagemRepository) toEntity(model *MensagemModel) *entities.Mensagem {
	return &entities.Mensagem{
		ID:          model.ID,
		UsuarioID:   model.UsuarioID,
		UsuarioNome: model.UsuarioNome,
		Mensagem:    model.Mensagem,
		Data:        model.Data,
	}
}

func (r *MensagemRepository) toEntities(models []*MensagemModel) []*entities.Mensagem {
	mensagens := make([]*entities.Mensagem, 0, len(models))
	for _, model := range models {
		mensagens = append(mensagens, r.toEntity(model))
	}
	return mensagens
}
