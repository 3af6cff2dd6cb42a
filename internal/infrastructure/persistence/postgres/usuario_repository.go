package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/estudai/estudai-backend/internal/domain/entities"
	domainerrors "github.com/estudai/estudai-backend/internal/domain/errors"
	"github.com/estudai/estudai-backend/internal/domain/repositories"
	"github.com/estudai/estudai-backend/internal/domain/valueobjects"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		// índice único em email: corrida de cadastro duplicado fecha aqui
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailJaCadastrado
		}
		return err
	}

	usuario.ID = model.ID
	return nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id uint) (*entities.Usuario, error) {
	var model UsuarioModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	var model UsuarioModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UsuarioRepository) Update(ctx context.Context, usuario *entities.Usuario) error {
	model := r.toModel(usuario)

	db := r.getDB(ctx)
	return db.WithContext(ctx).Save(model).Error
}

func (r *UsuarioRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).
		Model(&UsuarioModel{}).
		Order("id ASC").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}

	return emails, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UsuarioRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *UsuarioRepository) toModel(usuario *entities.Usuario) *UsuarioModel {
	return &UsuarioModel{
		ID:           usuario.ID,
		Nome:         usuario.Nome,
		Email:        usuario.Email.String(),
		Senha:        usuario.SenhaDigest,
		Foto:         usuario.Foto,
		AtualizadoEm: usuario.AtualizadoEm,
	}
}

func (r *UsuarioRepository) toEntity(model *UsuarioModel) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Usuario{
		ID:           model.ID,
		Nome:         model.Nome,
		Email:        email,
		SenhaDigest:  model.Senha,
		Foto:         model.Foto,
		AtualizadoEm: model.AtualizadoEm,
	}, nil
}
