package handlers

import (
	"github.com/gin-gonic/gin"

	domainPonto "github.com/BruksfildServices01/ponto-eletronico/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/dto"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httperr"
	"github.com/BruksfildServices01/ponto-eletronico/internal/httpresp"
	ucPonto "github.com/BruksfildServices01/ponto-eletronico/internal/usecase/ponto"
)

// ======================================================
// HANDLER
// ======================================================

type PontoHandler struct {
	create *ucPonto.CreatePonto
	list   *ucPonto.ListPontos
	update *ucPonto.UpdatePonto
	remove *ucPonto.DeletePonto
}

func NewPontoHandler(
	create *ucPonto.CreatePonto,
	list *ucPonto.ListPontos,
	update *ucPonto.UpdatePonto,
	remove *ucPonto.DeletePonto,
) *PontoHandler {
	return &PontoHandler{
		create: create,
		list:   list,
		update: update,
		remove: remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePontoRequest struct {
	UserID dto.FlexID `json:"userId"`
	Type   string     `json:"type"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PontoHandler) Create(c *gin.Context) {
	var req CreatePontoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.create.Execute(c.Request.Context(), ucPonto.CreatePontoInput{
		UserID: uint(req.UserID),
		Type:   req.Type,
	})
	if err != nil {
		httperr.FromError(c, err, "create_ponto_failed", "Erro ao registrar ponto")
		return
	}

	httpresp.Created(c, dto.FromPonto(*p))
}

// ======================================================
// LIST
// ======================================================

func (h *PontoHandler) List(c *gin.Context) {
	pagina := domainPonto.NewPagina(c.Query("page"), c.Query("limit"))

	out, err := h.list.Execute(c.Request.Context(), pagina)
	if err != nil {
		httperr.FromError(c, err, "list_pontos_failed",
			"Erro ao buscar pontos. Verifique sua conexão ou tente novamente.")
		return
	}

	httpresp.Page(c, dto.FromPontos(out.Pontos), out.Total, out.Pagina.Page, out.TotalPaginas)
}

// ======================================================
// UPDATE
// ======================================================

func (h *PontoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ucPonto.UpdatePontoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.update.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.FromError(c, err, "update_ponto_failed", "Erro ao atualizar registro")
		return
	}

	httpresp.OK(c, dto.FromPonto(*p))
}

// ======================================================
// DELETE
// ======================================================

func (h *PontoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "delete_ponto_failed", "Erro ao excluir registro")
		return
	}

	httpresp.NoContent(c)
}
