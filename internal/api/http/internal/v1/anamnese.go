package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lash-app/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) initAnamneseRoutes(api *gin.RouterGroup) {
	anamnese := api.Group("/anamnese")
	{
		anamnese.POST("", h.createAnamnese)
		anamnese.GET("", h.getAnamneseList)
		anamnese.GET("/:clientId", h.getAnamneseByClientID)
		anamnese.GET("/:clientId/pdf", h.getAnamnesePDF)
		anamnese.PUT("/:clientId", h.updateAnamnese)
		anamnese.DELETE("/:clientId", h.deleteAnamnese)
	}
}

type anamneseRequest struct {
	ClientID string `json:"clientId" binding:"required,uuid"`
	anamneseAnswers
}

// anamneseAnswers is the questionnaire body shared by create and update. On update
// the client comes from the path.
type anamneseAnswers struct {
	Datetime          time.Time `json:"datetime" binding:"required"`
	Mascara           *string   `json:"rimel"`
	Pregnant          *string   `json:"gestante"`
	EyeProcedure      *string   `json:"procedimento_olhos"`
	Allergy           *string   `json:"alergia"`
	AllergyDetails    *string   `json:"especificar_alergia"`
	Thyroid           *string   `json:"tireoide"`
	EyeProblem        *string   `json:"problema_ocular"`
	EyeProblemDetails *string   `json:"especificar_ocular"`
	Oncological       *string   `json:"oncologico"`
	SleepsOnSide      *string   `json:"dorme_lado"`
	SleepSidePosition *string   `json:"dorme_lado_posicao"`
	ProblemToReport   *string   `json:"problema_informar"`
	Procedure         *string   `json:"procedimento"`
	Mapping           *string   `json:"mapping"`
	Style             *string   `json:"estilo"`
	LashModel         *string   `json:"modelo_fios"`
	Thickness         *string   `json:"espessura"`
	Curl              *string   `json:"curvatura"`
	Adhesive          *string   `json:"adesivo"`
	Notes             *string   `json:"observacao"`
}

func (r anamneseAnswers) toInput(clientID uuid.UUID) service.AnamneseInput {
	return service.AnamneseInput{
		ClientID:          clientID,
		Datetime:          r.Datetime,
		Mascara:           r.Mascara,
		Pregnant:          r.Pregnant,
		EyeProcedure:      r.EyeProcedure,
		Allergy:           r.Allergy,
		AllergyDetails:    r.AllergyDetails,
		Thyroid:           r.Thyroid,
		EyeProblem:        r.EyeProblem,
		EyeProblemDetails: r.EyeProblemDetails,
		Oncological:       r.Oncological,
		SleepsOnSide:      r.SleepsOnSide,
		SleepSidePosition: r.SleepSidePosition,
		ProblemToReport:   r.ProblemToReport,
		Procedure:         r.Procedure,
		Mapping:           r.Mapping,
		Style:             r.Style,
		LashModel:         r.LashModel,
		Thickness:         r.Thickness,
		Curl:              r.Curl,
		Adhesive:          r.Adhesive,
		Notes:             r.Notes,
	}
}

func parseAnamneseClientID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, AnamneseNotFoundCode)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Create anamnese
// @Tags Anamnese
// @Description Cria a ficha de anamnese de um cliente
// @ModuleID createAnamnese
// @Accept  json
// @Produce  json
// @Param input body anamneseRequest true "ficha"
// @Success 201 {object} domain.Anamnese
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /anamnese [post]
func (h *Handler) createAnamnese(c *gin.Context) {
	var req anamneseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	anamnese, err := h.services.Anamneses.Create(c.Request.Context(), req.toInput(uuid.MustParse(req.ClientID)))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			validationErrorResponse(c, err)
			return
		}
		internalErrorResponse(c, AnamneseCreateFailedCode, err)
		return
	}

	h.logAction(c, "anamnese created",
		zap.String("anamnese_id", anamnese.ID.String()),
		zap.String("client_id", anamnese.ClientID.String()),
	)

	c.JSON(http.StatusCreated, anamnese)
}

// @Summary Get anamnese list
// @Tags Anamnese
// @Description Lista fichas da mais recente para a mais antiga
// @ModuleID getAnamneseList
// @Accept  json
// @Produce  json
// @Param page query int false "Número da página (padrão 1)"
// @Param limit query int false "Itens por página (padrão 10, máximo 100)"
// @Success 200 {object} listResponse[domain.Anamnese]
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /anamnese [get]
func (h *Handler) getAnamneseList(c *gin.Context) {
	page, limit := parsePagination(c)

	anamneses, err := h.services.Anamneses.List(c.Request.Context(), page, limit)
	if err != nil {
		internalErrorResponse(c, AnamneseListFailedCode, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(anamneses))
}

// @Summary Get anamnese by client
// @Tags Anamnese
// @ModuleID getAnamneseByClientID
// @Accept  json
// @Produce  json
// @Param clientId path string true "id do cliente"
// @Success 200 {object} domain.Anamnese
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /anamnese/{clientId} [get]
func (h *Handler) getAnamneseByClientID(c *gin.Context) {
	clientID, ok := parseAnamneseClientID(c)
	if !ok {
		return
	}

	anamnese, err := h.services.Anamneses.GetByClientID(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, service.ErrAnamneseNotFound) {
			errorResponse(c, http.StatusNotFound, AnamneseNotFoundCode)
			return
		}
		internalErrorResponse(c, UnknownErrorCode, err)
		return
	}

	c.JSON(http.StatusOK, anamnese)
}

// @Summary Anamnese PDF
// @Tags Anamnese
// @Description Gera a ficha de anamnese do cliente em PDF para impressão
// @ModuleID getAnamnesePDF
// @Produce  application/pdf
// @Param clientId path string true "id do cliente"
// @Success 200 {file} file
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /anamnese/{clientId}/pdf [get]
func (h *Handler) getAnamnesePDF(c *gin.Context) {
	clientID, ok := parseAnamneseClientID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	anamnese, err := h.services.Anamneses.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, service.ErrAnamneseNotFound) {
			errorResponse(c, http.StatusNotFound, AnamneseNotFoundCode)
			return
		}
		internalErrorResponse(c, AnamnesePDFFailedCode, err)
		return
	}

	clientName := ""
	client, err := h.services.Clients.GetByID(ctx, clientID)
	switch {
	case err == nil:
		clientName = client.Name
	case !errors.Is(err, service.ErrClientNotFound):
		internalErrorResponse(c, AnamnesePDFFailedCode, err)
		return
	}

	content, err := h.pdfGenerator.GenerateAnamnesePDF(anamnese, clientName)
	if err != nil {
		internalErrorResponse(c, AnamnesePDFFailedCode, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="anamnese-%s.pdf"`, clientID))
	c.Data(http.StatusOK, "application/pdf", content)
}

// @Summary Update anamnese
// @Tags Anamnese
// @Description Substitui as respostas da ficha do cliente
// @ModuleID updateAnamnese
// @Accept  json
// @Produce  json
// @Param clientId path string true "id do cliente"
// @Param input body anamneseAnswers true "ficha"
// @Success 200 {object} domain.Anamnese
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /anamnese/{clientId} [put]
func (h *Handler) updateAnamnese(c *gin.Context) {
	var req anamneseAnswers
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	clientID, ok := parseAnamneseClientID(c)
	if !ok {
		return
	}

	anamnese, err := h.services.Anamneses.Update(c.Request.Context(), clientID, req.toInput(clientID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			validationErrorResponse(c, err)
		case errors.Is(err, service.ErrAnamneseNotFound):
			errorResponse(c, http.StatusNotFound, AnamneseNotFoundCode)
		default:
			internalErrorResponse(c, AnamneseUpdateFailedCode, err)
		}
		return
	}

	c.JSON(http.StatusOK, anamnese)
}

// @Summary Delete anamnese
// @Tags Anamnese
// @ModuleID deleteAnamnese
// @Accept  json
// @Produce  json
// @Param clientId path string true "id do cliente"
// @Success 200 {object} messageResponse
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /anamnese/{clientId} [delete]
func (h *Handler) deleteAnamnese(c *gin.Context) {
	clientID, ok := parseAnamneseClientID(c)
	if !ok {
		return
	}

	if err := h.services.Anamneses.Delete(c.Request.Context(), clientID); err != nil {
		if errors.Is(err, service.ErrAnamneseNotFound) {
			errorResponse(c, http.StatusNotFound, AnamneseNotFoundCode)
			return
		}
		internalErrorResponse(c, AnamneseDeleteFailedCode, err)
		return
	}

	h.logAction(c, "anamnese deleted", zap.String("client_id", clientID.String()))

	c.JSON(http.StatusOK, messageResponse{Message: "Ficha de anamnese excluída com sucesso."})
}
