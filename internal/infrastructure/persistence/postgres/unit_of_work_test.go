package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/estudai/estudai-backend/internal/domain/entities"
)

func TestUnitOfWorkWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commit persiste as escritas da transação", func(t *testing.T) {
		db := newTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewUsuarioRepository(db)

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			return repo.Create(txCtx, newTestUsuario(t, "ana@exemplo.com"))
		})
		if err != nil {
			t.Fatalf("WithTransaction: %v", err)
		}

		usuario, err := repo.FindByEmail(ctx, "ana@exemplo.com")
		if err != nil {
			t.Fatalf("FindByEmail: %v", err)
		}
		if usuario == nil {
			t.Fatal("esperava usuário persistido após commit")
		}
	})

	t.Run("erro na função desfaz as escritas", func(t *testing.T) {
		db := newTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewUsuarioRepository(db)

		sentinela := errors.New("desiste")

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, newTestUsuario(t, "ana@exemplo.com")); err != nil {
				return err
			}
			return sentinela
		})
		if !errors.Is(err, sentinela) {
			t.Fatalf("esperava o erro sentinela, obteve %v", err)
		}

		usuario, err := repo.FindByEmail(ctx, "ana@exemplo.com")
		if err != nil {
			t.Fatalf("FindByEmail: %v", err)
		}
		if usuario != nil {
			t.Fatal("esperava rollback da criação")
		}
	})

	t.Run("begin, rollback e commit manuais", func(t *testing.T) {
		db := newTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewNotaRepository(db)

		txCtx, err := uow.Begin(ctx)
		if err != nil {
			t.Fatalf("Begin: %v", err)
		}

		agora := time.Now().UTC()
		nota := &entities.Nota{UsuarioID: 1, Conteudo: "efêmera", DataCriacao: agora, DataAtualizacao: agora}
		if err := repo.Create(txCtx, nota); err != nil {
			t.Fatalf("Create: %v", err)
		}

		if err := uow.Rollback(txCtx); err != nil {
			t.Fatalf("Rollback: %v", err)
		}

		notas, err := repo.ListByUsuario(ctx, 1)
		if err != nil {
			t.Fatalf("ListByUsuario: %v", err)
		}
		if len(notas) != 0 {
			t.Fatalf("esperava rollback manual, obteve %d notas", len(notas))
		}
	})
}
