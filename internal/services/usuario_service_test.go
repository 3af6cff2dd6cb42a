package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/estudai/estudai-backend/internal/domain/entities"
	domainerrors "github.com/estudai/estudai-backend/internal/domain/errors"
	"github.com/estudai/estudai-backend/internal/domain/ports"
	"github.com/estudai/estudai-backend/internal/infrastructure/security"
)

// fakes em memória para os testes de serviço

type fakeUsuarioRepo struct {
	seq      uint
	usuarios map[uint]*entities.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[uint]*entities.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, usuario *entities.Usuario) error {
	for _, u := range r.usuarios {
		if u.Email.String() == usuario.Email.String() {
			// mesmo comportamento do índice único do banco
			return domainerrors.ErrEmailJaCadastrado
		}
	}
	r.seq++
	usuario.ID = r.seq
	copia := *usuario
	r.usuarios[usuario.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uint) (*entities.Usuario, error) {
	if u, ok := r.usuarios[id]; ok {
		copia := *u
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*entities.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email.String() == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, usuario *entities.Usuario) error {
	copia := *usuario
	r.usuarios[usuario.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) ListEmails(_ context.Context) ([]string, error) {
	emails := make([]string, 0, len(r.usuarios))
	for i := uint(1); i <= r.seq; i++ {
		if u, ok := r.usuarios[i]; ok {
			emails = append(emails, u.Email.String())
		}
	}
	return emails, nil
}

// noopUOW executa a função sem transação real
type noopUOW struct{}

func (noopUOW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (noopUOW) Commit(context.Context) error                       { return nil }
func (noopUOW) Rollback(context.Context) error                     { return nil }
func (noopUOW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// noopLogger descarta tudo
type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }

func newTestUsuarioService(repo *fakeUsuarioRepo) (*UsuarioService, ports.PasswordHasher) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	return NewUsuarioService(repo, noopUOW{}, hasher, noopLogger{}), hasher
}

func TestUsuarioServiceCadastrar(t *testing.T) {
	ctx := context.Background()

	t.Run("armazena digest no lugar da senha", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, hasher := newTestUsuarioService(repo)

		err := service.Cadastrar(ctx, CadastrarInput{
			Nome:  "Ana",
			Email: "a@x.com",
			Senha: "Abc123!",
		})
		if err != nil {
			t.Fatalf("Cadastrar: %v", err)
		}

		usuario, _ := repo.FindByEmail(ctx, "a@x.com")
		if usuario == nil {
			t.Fatal("usuário não foi criado")
		}
		if usuario.SenhaDigest == "Abc123!" {
			t.Fatal("senha armazenada em texto puro")
		}
		if !hasher.Verify("Abc123!", usuario.SenhaDigest) {
			t.Error("digest não verifica a senha original")
		}
	})

	t.Run("senha fraca não cria registro", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, _ := newTestUsuarioService(repo)

		fracas := []string{"abc123!", "ABC123!", "Abcdef!", "Abc1234", "aB1!"}
		for _, senha := range fracas {
			err := service.Cadastrar(ctx, CadastrarInput{Nome: "Ana", Email: "a@x.com", Senha: senha})
			if !errors.Is(err, domainerrors.ErrSenhaFraca) {
				t.Errorf("senha %q: esperava ErrSenhaFraca, obteve %v", senha, err)
			}
		}

		emails, _ := repo.ListEmails(ctx)
		if len(emails) != 0 {
			t.Errorf("esperava 0 registros, obteve %d", len(emails))
		}
	})

	t.Run("email inválido é rejeitado", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, _ := newTestUsuarioService(repo)

		err := service.Cadastrar(ctx, CadastrarInput{Nome: "Ana", Email: "sem-arroba", Senha: "Abc123!"})
		if !errors.Is(err, domainerrors.ErrEmailInvalido) {
			t.Fatalf("esperava ErrEmailInvalido, obteve %v", err)
		}
	})

	t.Run("email duplicado retorna conflito e mantém um só registro", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, _ := newTestUsuarioService(repo)

		input := CadastrarInput{Nome: "Ana", Email: "a@x.com", Senha: "Abc123!"}
		if err := service.Cadastrar(ctx, input); err != nil {
			t.Fatalf("primeiro cadastro: %v", err)
		}

		err := service.Cadastrar(ctx, input)
		if !errors.Is(err, domainerrors.ErrEmailJaCadastrado) {
			t.Fatalf("esperava ErrEmailJaCadastrado, obteve %v", err)
		}

		emails, _ := repo.ListEmails(ctx)
		if len(emails) != 1 {
			t.Errorf("esperava exatamente 1 registro, obteve %d", len(emails))
		}
	})
}

func TestUsuarioServiceLogin(t *testing.T) {
	ctx := context.Background()

	cadastrar := func(t *testing.T) (*UsuarioService, *fakeUsuarioRepo) {
		t.Helper()
		repo := newFakeUsuarioRepo()
		service, _ := newTestUsuarioService(repo)
		if err := service.Cadastrar(ctx, CadastrarInput{Nome: "Ana", Email: "a@x.com", Senha: "Abc123!"}); err != nil {
			t.Fatalf("Cadastrar: %v", err)
		}
		return service, repo
	}

	t.Run("sucesso retorna a entidade", func(t *testing.T) {
		service, _ := cadastrar(t)

		usuario, err := service.Login(ctx, "a@x.com", "Abc123!")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if usuario.Nome != "Ana" || usuario.Email.String() != "a@x.com" {
			t.Errorf("dados inesperados: %+v", usuario)
		}
	})

	t.Run("email desconhecido", func(t *testing.T) {
		service, _ := cadastrar(t)

		_, err := service.Login(ctx, "outro@x.com", "Abc123!")
		if !errors.Is(err, domainerrors.ErrEmailNaoEncontrado) {
			t.Fatalf("esperava ErrEmailNaoEncontrado, obteve %v", err)
		}
	})

	t.Run("email malformado equivale a desconhecido", func(t *testing.T) {
		service, _ := cadastrar(t)

		_, err := service.Login(ctx, "nada", "Abc123!")
		if !errors.Is(err, domainerrors.ErrEmailNaoEncontrado) {
			t.Fatalf("esperava ErrEmailNaoEncontrado, obteve %v", err)
		}
	})

	t.Run("senha errada", func(t *testing.T) {
		service, _ := cadastrar(t)

		_, err := service.Login(ctx, "a@x.com", "Xyz987?")
		if !errors.Is(err, domainerrors.ErrSenhaIncorreta) {
			t.Fatalf("esperava ErrSenhaIncorreta, obteve %v", err)
		}
	})
}

func TestUsuarioServiceAtualizarPerfil(t *testing.T) {
	ctx := context.Background()

	t.Run("sem senha preserva o digest", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, hasher := newTestUsuarioService(repo)

		if err := service.Cadastrar(ctx, CadastrarInput{Nome: "Ana", Email: "a@x.com", Senha: "Abc123!"}); err != nil {
			t.Fatalf("Cadastrar: %v", err)
		}

		foto := "https://cdn.exemplo.com/ana.png"
		err := service.AtualizarPerfil(ctx, AtualizarPerfilInput{ID: 1, Nome: "Ana Maria", Foto: &foto})
		if err != nil {
			t.Fatalf("AtualizarPerfil: %v", err)
		}

		usuario, _ := repo.FindByID(ctx, 1)
		if usuario.Nome != "Ana Maria" {
			t.Errorf("esperava nome atualizado, obteve %q", usuario.Nome)
		}
		// a senha original continua valendo
		if !hasher.Verify("Abc123!", usuario.SenhaDigest) {
			t.Error("digest original foi perdido na atualização sem senha")
		}
	})

	t.Run("senha em branco também preserva o digest", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, hasher := newTestUsuarioService(repo)

		if err := service.Cadastrar(ctx, CadastrarInput{Nome: "Ana", Email: "a@x.com", Senha: "Abc123!"}); err != nil {
			t.Fatalf("Cadastrar: %v", err)
		}

		branca := "   "
		err := service.AtualizarPerfil(ctx, AtualizarPerfilInput{ID: 1, Nome: "Ana", Senha: &branca})
		if err != nil {
			t.Fatalf("AtualizarPerfil: %v", err)
		}

		usuario, _ := repo.FindByID(ctx, 1)
		if !hasher.Verify("Abc123!", usuario.SenhaDigest) {
			t.Error("digest original foi perdido com senha em branco")
		}
	})

	t.Run("com senha nova troca o digest", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, hasher := newTestUsuarioService(repo)

		if err := service.Cadastrar(ctx, CadastrarInput{Nome: "Ana", Email: "a@x.com", Senha: "Abc123!"}); err != nil {
			t.Fatalf("Cadastrar: %v", err)
		}

		nova := "Xyz987?"
		err := service.AtualizarPerfil(ctx, AtualizarPerfilInput{ID: 1, Nome: "Ana", Senha: &nova})
		if err != nil {
			t.Fatalf("AtualizarPerfil: %v", err)
		}

		usuario, _ := repo.FindByID(ctx, 1)
		if !hasher.Verify("Xyz987?", usuario.SenhaDigest) {
			t.Error("digest não verifica a senha nova")
		}
		if hasher.Verify("Abc123!", usuario.SenhaDigest) {
			t.Error("senha antiga continua valendo após a troca")
		}
	})

	t.Run("id inexistente é silencioso", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		service, _ := newTestUsuarioService(repo)

		err := service.AtualizarPerfil(ctx, AtualizarPerfilInput{ID: 99, Nome: "Ninguém"})
		if err != nil {
			t.Fatalf("esperava atualização silenciosa, obteve %v", err)
		}
	})
}

func TestUsuarioServiceBuscarPerfil(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUsuarioRepo()
	service, _ := newTestUsuarioService(repo)

	if err := service.Cadastrar(ctx, CadastrarInput{Nome: "Ana", Email: "a@x.com", Senha: "Abc123!"}); err != nil {
		t.Fatalf("Cadastrar: %v", err)
	}

	t.Run("encontra por id", func(t *testing.T) {
		usuario, err := service.BuscarPerfil(ctx, 1)
		if err != nil {
			t.Fatalf("BuscarPerfil: %v", err)
		}
		if usuario.Email.String() != "a@x.com" {
			t.Errorf("email inesperado: %q", usuario.Email.String())
		}
	})

	t.Run("id inexistente", func(t *testing.T) {
		_, err := service.BuscarPerfil(ctx, 42)
		if !errors.Is(err, domainerrors.ErrUsuarioNaoEncontrado) {
			t.Fatalf("esperava ErrUsuarioNaoEncontrado, obteve %v", err)
		}
	})
}
