package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estudai/estudai-backend/internal/handlers/dto"
	"github.com/estudai/estudai-backend/internal/services"
)

// ComunidadeHandler lida com requisições HTTP do mural da comunidade
type ComunidadeHandler struct {
	comunidadeService *services.ComunidadeService
}

// NewComunidadeHandler cria um novo ComunidadeHandler
func NewComunidadeHandler(comunidadeService *services.ComunidadeService) *ComunidadeHandler {
	return &ComunidadeHandler{
		comunidadeService: comunidadeService,
	}
}

// Postar publica uma mensagem no mural
func (h *ComunidadeHandler) Postar(c *gin.Context) {
	var req dto.PostarMensagemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorMessage(c, "error.mensagem_campos_obrigatorios", err))
		return
	}

	_, err := h.comunidadeService.Postar(c.Request.Context(), services.PostarMensagemInput{
		UsuarioID:   req.UsuarioID,
		UsuarioNome: req.UsuarioNome,
		Mensagem:    req.Mensagem,
		Data:        req.Data,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.enviar_mensagem", err))
		return
	}

	c.JSON(http.StatusCreated, dto.Message(c, "comunidade.mensagem_enviada"))
}

// Listar retorna todas as mensagens do mural em ordem cronológica
func (h *ComunidadeHandler) Listar(c *gin.Context) {
	mensagens, err := h.comunidadeService.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.buscar_mensagens", err))
		return
	}

	c.JSON(http.StatusOK, dto.ToMensagemResponses(mensagens))
}

// ListarPorUsuario retorna as mensagens de um usuário em ordem cronológica
func (h *ComunidadeHandler) ListarPorUsuario(c *gin.Context) {
	usuarioID, err := parseID(c.Param("usuario_id"))
	if err != nil {
		// id não numérico não tem mensagens
		c.JSON(http.StatusOK, []dto.MensagemResponse{})
		return
	}

	mensagens, err := h.comunidadeService.ListarPorUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.StoreErrorMessage(c, "error.buscar_mensagens_usuario", err))
		return
	}

	c.JSON(http.StatusOK, dto.ToMensagemResponses(mensagens))
}
