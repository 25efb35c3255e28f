package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httpresp"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
	ucUsuario "github.com/BruksfildServices01/ponto-eletronico/internal/usecase/usuario"
)

// ======================================================
// HANDLER
// ======================================================

type UsuarioHandler struct {
	create *ucUsuario.CreateUsuario
	list   *ucUsuario.ListUsuarios
}

func NewUsuarioHandler(
	create *ucUsuario.CreateUsuario,
	list *ucUsuario.ListUsuarios,
) *UsuarioHandler {
	return &UsuarioHandler{
		create: create,
		list:   list,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *UsuarioHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "list_users_failed", "Erro ao buscar usuários")
		return
	}

	if users == nil {
		users = []models.User{}
	}
	httpresp.OK(c, users)
}

// ======================================================
// CREATE
// ======================================================

func (h *UsuarioHandler) Create(c *gin.Context) {
	var req ucUsuario.CreateUsuarioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.create.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err, "create_user_failed", "Erro ao criar usuário")
		return
	}

	httpresp.Created(c, user)
}
