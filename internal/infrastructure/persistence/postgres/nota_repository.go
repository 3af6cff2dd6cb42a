package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/estudai/estudai-backend/internal/domain/entities"
	"github.com/estudai/estudai-backend/internal/domain/repositories"
)

// NotaRepository implementa repositories.NotaRepository
type NotaRepository struct {
	db *gorm.DB
}

// NewNotaRepository cria um novo NotaRepository
func NewNotaRepository(db *gorm.DB) repositories.NotaRepository {
	return &NotaRepository{db: db}
}

func (r *NotaRepository) Create(ctx context.Context, nota *entities.Nota) error {
	model := r.toModel(nota)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	nota.ID = model.ID
	return nil
}

func (r *NotaRepository) Update(ctx context.Context, nota *entities.Nota) error {
	db := r.getDB(ctx)
	// atualização parcial: data_criacao nunca é tocada.
	// Updates com map para não perder conteúdo vazio (zero value).
	return db.WithContext(ctx).
		Model(&NotaModel{}).
		Where("id = ?", nota.ID).
		Updates(map[string]interface{}{
			"conteudo":         nota.Conteudo,
			"data_atualizacao": nota.DataAtualizacao,
		}).Error
}

func (r *NotaRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	// incondicional: zero linhas afetadas não é erro
	return db.WithContext(ctx).Delete(&NotaModel{}, id).Error
}

func (r *NotaRepository) ListByUsuario(ctx context.Context, usuarioID uint) ([]*entities.Nota, error) {
	var models []*NotaModel

	db := r.getDB(ctx)
	// mais recentes primeiro
	if err := db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("data_criacao DESC, id DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	notas := make([]*entities.Nota, 0, len(models))
	for _, model := range models {
		notas = append(notas, r.toEntity(model))
	}
	return notas, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *NotaRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *NotaRepository) toModel(nota *entities.Nota) *NotaModel {
	return &NotaModel{
		ID:              nota.ID,
		UsuarioID:       nota.UsuarioID,
		Conteudo:        nota.Conteudo,
		DataCriacao:     nota.DataCriacao,
		DataAtualizacao: nota.DataAtualizacao,
	}
}

func (r *NotaRepository) toEntity(model *NotaModel) *entities.Nota {
	return &entities.Nota{
		ID:              model.ID,
		UsuarioID:       model.UsuarioID,
		Conteudo:        model.Conteudo,
		DataCriacao:     model.DataCriacao,
		DataAtualizacao: model.DataAtualizacao,
	}
}
