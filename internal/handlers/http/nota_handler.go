package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estudai/estudai-backend/internal/handlers/dto"
	"github.com/estudai/estudai-backend/internal/services"
)

// NotaHandler lida com requisições HTTP de notas pessoais
type NotaHandler struct {
	notaService *services.NotaService
}

// NewNotaHandler cria um novo NotaHandler
func NewNotaHandler(notaService *services.NotaService) *NotaHandler {
	return &NotaHandler{
		notaService: notaService,
	}
}

// Listar retorna as notas do usuário, mais recentes primeiro
func (h *NotaHandler) Listar(c *gin.Context) {
	usuarioID, err := parseID(c.Param("usuario_id"))
	if err != nil {
		// id não numérico não tem notas
		c.JSON(http.StatusOK, []dto.NotaResponse{})
		return
	}

	notas, err := h.notaService.Listar(c.Request.Context(), usuarioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.buscar_notas", err))
		return
	}

	c.JSON(http.StatusOK, dto.ToNotaResponses(notas))
}

// Criar cria uma nota e retorna o registro criado
func (h *NotaHandler) Criar(c *gin.Context) {
	var req dto.CriarNotaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorMessage(c, "error.nota_usuario_obrigatorio", err))
		return
	}

	nota, err := h.notaService.Criar(c.Request.Context(), req.UsuarioID, req.Conteudo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.criar_nota", err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotaResponse(nota))
}

// Atualizar substitui o conteúdo de uma nota
func (h *NotaHandler) Atualizar(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorMessage(c, "error.nota_conteudo_obrigatorio"))
		return
	}

	var req dto.AtualizarNotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorMessage(c, "error.nota_conteudo_obrigatorio", err))
		return
	}

	if err := h.notaService.Atualizar(c.Request.Context(), id, *req.Conteudo); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.atualizar_nota", err))
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "nota.atualizada"))
}

// Remover deleta uma nota incondicionalmente: id inexistente não é erro
func (h *NotaHandler) Remover(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		// nada a remover
		c.JSON(http.StatusOK, dto.Message(c, "nota.removida"))
		return
	}

	if err := h.notaService.Remover(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.deletar_nota", err))
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "nota.removida"))
}
