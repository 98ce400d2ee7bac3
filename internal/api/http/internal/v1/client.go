package v1

import (
	"errors"
	"net/http"

	"github.com/lash-app/backend/internal/domain"
	"github.com/lash-app/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) initClientsRoutes(api *gin.RouterGroup) {
	clients := api.Group("/clientes")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.getClientsList)
		clients.GET("/search", h.searchClients)
		clients.GET("/:id", h.getClientByID)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

type clientRequest struct {
	Name              string  `json:"nome" binding:"required,notblank"`
	Email             string  `json:"email" binding:"required,notblank"`
	Phone             string  `json:"telefone" binding:"required,notblank"`
	BirthDate         string  `json:"dataNascimento" binding:"required,notblank"`
	PostalCode        string  `json:"cep" binding:"required,notblank"`
	Street            string  `json:"logradouro" binding:"required,notblank"`
	Neighborhood      string  `json:"bairro" binding:"required,notblank"`
	City              string  `json:"cidade" binding:"required,notblank"`
	State             string  `json:"uf" binding:"required,notblank"`
	Number            string  `json:"numero" binding:"required,notblank"`
	Complement        *string `json:"complemento"`
	FavoriteProcedure string  `json:"procedimentoFavorito" binding:"required,notblank"`
}

func (r clientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		BirthDate:         r.BirthDate,
		PostalCode:        r.PostalCode,
		Street:            r.Street,
		Neighborhood:      r.Neighborhood,
		City:              r.City,
		State:             r.State,
		Number:            r.Number,
		Complement:        r.Complement,
		FavoriteProcedure: r.FavoriteProcedure,
	}
}

// parseClientID answers 404 for ids that cannot match any row.
func parseClientID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, ClientNotFoundCode)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create client
// @Tags Clientes
// @Description Cadastra um cliente
// @ModuleID createClient
// @Accept  json
// @Produce  json
// @Param input body clientRequest true "dados do cliente"
// @Success 201 {object} domain.Client
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /clientes [post]
func (h *Handler) createClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	client, err := h.services.Clients.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			validationErrorResponse(c, err)
			return
		}
		internalErrorResponse(c, ClientCreateFailedCode, err)
		return
	}

	h.logAction(c, "client created", zap.String("client_id", client.ID.String()))

	c.JSON(http.StatusCreated, client)
}

// @Summary Get clients list
// @Tags Clientes
// @Description Lista clientes do mais recente para o mais antigo
// @ModuleID getClientsList
// @Accept  json
// @Produce  json
// @Param page query int false "Número da página (padrão 1)"
// @Param limit query int false "Itens por página (padrão 10, máximo 100)"
// @Success 200 {object} listResponse[domain.Client]
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /clientes [get]
func (h *Handler) getClientsList(c *gin.Context) {
	page, limit := parsePagination(c)

	clients, err := h.services.Clients.List(c.Request.Context(), page, limit)
	if err != nil {
		internalErrorResponse(c, ClientListFailedCode, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(clients))
}

// @Summary Search clients
// @Tags Clientes
// @Description Busca clientes pelo nome, sem diferenciar maiúsculas
// @ModuleID searchClients
// @Accept  json
// @Produce  json
// @Param nome query string false "parte do nome"
// @Success 200 {array} domain.Client
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /clientes/search [get]
func (h *Handler) searchClients(c *gin.Context) {
	clients, err := h.services.Clients.Search(c.Request.Context(), c.Query("nome"))
	if err != nil {
		internalErrorResponse(c, ClientSearchFailedCode, err)
		return
	}

	if clients == nil {
		clients = []domain.Client{}
	}

	c.JSON(http.StatusOK, clients)
}

// @Summary Get client
// @Tags Clientes
// @ModuleID getClientByID
// @Accept  json
// @Produce  json
// @Param id path string true "id do cliente"
// @Success 200 {object} domain.Client
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /clientes/{id} [get]
func (h *Handler) getClientByID(c *gin.Context) {
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	client, err := h.services.Clients.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			errorResponse(c, http.StatusNotFound, ClientNotFoundCode)
			return
		}
		internalErrorResponse(c, UnknownErrorCode, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// @Summary Update client
// @Tags Clientes
// @Description Substitui todos os dados do cliente
// @ModuleID updateClient
// @Accept  json
// @Produce  json
// @Param id path string true "id do cliente"
// @Param input body clientRequest true "dados do cliente"
// @Success 200 {object} domain.Client
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /clientes/{id} [put]
func (h *Handler) updateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	id, ok := parseClientID(c)
	if !ok {
		return
	}

	client, err := h.services.Clients.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			validationErrorResponse(c, err)
		case errors.Is(err, service.ErrClientNotFound):
			errorResponse(c, http.StatusNotFound, ClientNotFoundCode)
		default:
			internalErrorResponse(c, ClientUpdateFailedCode, err)
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// @Summary Delete client
// @Tags Clientes
// @ModuleID deleteClient
// @Accept  json
// @Produce  json
// @Param id path string true "id do cliente"
// @Success 200 {object} messageResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /clientes/{id} [delete]
func (h *Handler) deleteClient(c *gin.Context) {
	id, ok := parseClientID(c)
	if !ok {
		return
	}

	if err := h.services.Clients.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			errorResponse(c, http.StatusNotFound, ClientNotFoundCode)
			return
		}
		internalErrorResponse(c, ClientDeleteFailedCode, err)
		return
	}

	h.logAction(c, "client deleted", zap.String("client_id", id.String()))

	c.JSON(http.StatusOK, messageResponse{Message: "Cliente excluído com sucesso."})
}
