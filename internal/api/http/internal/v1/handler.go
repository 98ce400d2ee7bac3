package v1

import (
	"github.com/lash-app/backend/internal/config"
	"github.com/lash-app/backend/internal/service"
	"github.com/lash-app/backend/pkg/auth"
	"github.com/lash-app/backend/pkg/logger"
	"github.com/lash-app/backend/pkg/pdf"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Lash App API
// @version 1.0
// @description Clientes, fichas de anamnese e contas de usuário do estúdio.

// @BasePath /api

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
	pdfGenerator *pdf.Generator
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
	pdfGenerator *pdf.Generator,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
		pdfGenerator: pdfGenerator,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initAuthRoutes(api)

	protected := api.Group("")
	if h.config.HttpServer.ProtectResources {
		protected.Use(h.userIdentityMiddleware)
	}

	h.initClientsRoutes(protected)
	h.initAnamneseRoutes(protected)
}

// actorField names the authenticated user in logs, empty when routes are public.
func (h *Handler) actorField(c *gin.Context) zap.Field {
	id, err := h.getUserUUID(c)
	if err != nil {
		return zap.Skip()
	}
	return zap.String("user_id", id.String())
}

func (h *Handler) logAction(c *gin.Context, msg string, fields ...zap.Field) {
	logger.Info(msg, append(fields, h.actorField(c))...)
}
