package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estudai/estudai-backend/internal/domain/errors"
	"github.com/estudai/estudai-backend/internal/handlers/dto"
	"github.com/estudai/estudai-backend/internal/services"
)

// UsuarioHandler lida com requisições HTTP de cadastro, login e perfil
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
	}
}

// ListarUsuarios lista o email de todos os usuários cadastrados
func (h *UsuarioHandler) ListarUsuarios(c *gin.Context) {
	emails, err := h.usuarioService.ListarEmails(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.buscar_usuarios", err))
		return
	}

	c.JSON(http.StatusOK, dto.ToEmailResponses(emails))
}

// Cadastrar registra um novo usuário
func (h *UsuarioHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastrarRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorMessage(c, "error.campos_obrigatorios", err))
		return
	}

	err := h.usuarioService.Cadastrar(c.Request.Context(), services.CadastrarInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrSenhaFraca):
			c.JSON(http.StatusBadRequest, dto.ErrorMessage(c, "error.senha_fraca"))
		case errs.Is(err, errors.ErrEmailInvalido):
			c.JSON(http.StatusBadRequest, dto.ErrorMessage(c, "error.email_invalido"))
		case errs.Is(err, errors.ErrEmailJaCadastrado):
			c.JSON(http.StatusConflict, dto.ErrorMessage(c, "error.email_ja_cadastrado"))
		default:
			c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.cadastrar", err))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.Message(c, "usuario.cadastrado"))
}

// Login autentica um usuário e retorna seus dados públicos
func (h *UsuarioHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	// campos ausentes seguem adiante: email vazio não corresponde a
	// nenhum cadastro e resulta em 401, não em erro de validação
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorMessage(c, "error.campos_obrigatorios", err))
		return
	}

	usuario, err := h.usuarioService.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailNaoEncontrado):
			c.JSON(http.StatusUnauthorized, dto.ErrorMessage(c, "error.email_nao_encontrado"))
		case errs.Is(err, errors.ErrSenhaIncorreta):
			c.JSON(http.StatusUnauthorized, dto.ErrorMessage(c, "error.senha_incorreta"))
		default:
			c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.login", err))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPerfilResponse(usuario))
}

// BuscarPerfil busca o perfil de um usuário por ID
func (h *UsuarioHandler) BuscarPerfil(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		// id não numérico nunca corresponde a um cadastro
		c.JSON(http.StatusNotFound, dto.ErrorMessage(c, "error.usuario_nao_encontrado"))
		return
	}

	usuario, err := h.usuarioService.BuscarPerfil(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrUsuarioNaoEncontrado) {
			c.JSON(http.StatusNotFound, dto.ErrorMessage(c, "error.usuario_nao_encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.buscar_perfil", err))
		return
	}

	c.JSON(http.StatusOK, dto.ToPerfilResponse(usuario))
}

// AtualizarPerfil atualiza nome, foto e opcionalmente a senha do usuário
func (h *UsuarioHandler) AtualizarPerfil(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorMessage(c, "error.usuario_nao_encontrado"))
		return
	}

	var req dto.AtualizarPerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorMessage(c, "error.nome_obrigatorio", err))
		return
	}

	err = h.usuarioService.AtualizarPerfil(c.Request.Context(), services.AtualizarPerfilInput{
		ID:    id,
		Nome:  req.Nome,
		Foto:  req.Foto,
		Senha: req.Senha,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.atualizar_perfil", err))
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "perfil.atualizado"))
}

// parseID converte um path param em id numérico
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
