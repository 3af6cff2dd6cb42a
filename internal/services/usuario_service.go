package services

import (
	"context"
	"strings"
	"time"

	"github.com/estudai/estudai-backend/internal/domain/entities"
	"github.com/estudai/estudai-backend/internal/domain/errors"
	"github.com/estudai/estudai-backend/internal/domain/ports"
	"github.com/estudai/estudai-backend/internal/domain/repositories"
	"github.com/estudai/estudai-backend/internal/domain/valueobjects"
)

// UsuarioService contém a lógica de negócio para usuários
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
	uow         ports.UnitOfWork
	hasher      ports.PasswordHasher
	logger      ports.Logger
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		uow:         uow,
		hasher:      hasher,
		logger:      logger,
	}
}

// CadastrarInput representa os dados para cadastrar um usuário
type CadastrarInput struct {
	Nome  string
	Email string
	Senha string
}

// Cadastrar registra um novo usuário.
// A senha precisa passar na política de força e é armazenada como digest.
// Email duplicado retorna errors.ErrEmailJaCadastrado: a pré-checagem dá
// a resposta 409 barata e o índice único do banco fecha a corrida.
func (s *UsuarioService) Cadastrar(ctx context.Context, input CadastrarInput) error {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return err
	}

	senha, err := valueobjects.NewSenhaForte(input.Senha)
	if err != nil {
		return err
	}

	digest, err := s.hasher.Hash(senha.String())
	if err != nil {
		return err
	}

	usuario := &entities.Usuario{
		Nome:         input.Nome,
		Email:        email,
		SenhaDigest:  digest,
		AtualizadoEm: time.Now().UTC(),
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existente, err := s.usuarioRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}
		if existente != nil {
			return errors.ErrEmailJaCadastrado
		}

		return s.usuarioRepo.Create(txCtx, usuario)
	})
	if err != nil {
		return err
	}

	s.logger.Info("usuário cadastrado", "usuario_id", usuario.ID, "email", email.String())
	return nil
}

// Login autentica um usuário por email e senha.
// Retorna a entidade em caso de sucesso; o handler decide o que expor
// (o digest nunca sai na resposta).
func (s *UsuarioService) Login(ctx context.Context, emailRaw, senha string) (*entities.Usuario, error) {
	email, err := valueobjects.NewEmail(emailRaw)
	if err != nil {
		// email malformado nunca corresponde a um cadastro
		return nil, errors.ErrEmailNaoEncontrado
	}

	usuario, err := s.usuarioRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrEmailNaoEncontrado
	}

	if !s.hasher.Verify(senha, usuario.SenhaDigest) {
		return nil, errors.ErrSenhaIncorreta
	}

	return usuario, nil
}

// BuscarPerfil busca um usuário por ID
func (s *UsuarioService) BuscarPerfil(ctx context.Context, id uint) (*entities.Usuario, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.ErrUsuarioNaoEncontrado
	}
	return usuario, nil
}

// AtualizarPerfilInput representa os dados para atualizar um perfil
type AtualizarPerfilInput struct {
	ID   uint
	Nome string
	Foto *string
	// Senha em branco ou ausente mantém o digest atual
	Senha *string
}

// AtualizarPerfil atualiza nome, foto e opcionalmente a senha.
// Atualizar um id inexistente é silencioso, como no restante do sistema:
// a escrita afeta zero linhas e a operação conclui sem erro.
func (s *UsuarioService) AtualizarPerfil(ctx context.Context, input AtualizarPerfilInput) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		usuario, err := s.usuarioRepo.FindByID(txCtx, input.ID)
		if err != nil {
			return err
		}
		if usuario == nil {
			return nil
		}

		usuario.AtualizarPerfil(input.Nome, input.Foto, time.Now().UTC())

		if input.Senha != nil && strings.TrimSpace(*input.Senha) != "" {
			digest, err := s.hasher.Hash(*input.Senha)
			if err != nil {
				return err
			}
			usuario.DefinirSenha(digest)
		}

		return s.usuarioRepo.Update(txCtx, usuario)
	})
}

// ListarEmails retorna os emails de todos os usuários cadastrados
func (s *UsuarioService) ListarEmails(ctx context.Context) ([]string, error) {
	return s.usuarioRepo.ListEmails(ctx)
}
