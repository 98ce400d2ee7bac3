package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/lash-app/backend/internal/service"
	"github.com/lash-app/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.register)
	api.POST("/verify-code", h.verifyCode)
	api.POST("/login", h.login)
}

type registerRequest struct {
	Name      string `json:"nome" binding:"required,notblank"`
	Email     string `json:"email" binding:"required,notblank"`
	BirthDate string `json:"dataNascimento" binding:"required,isodate"`
	Phone     string `json:"telefone" binding:"required,notblank"`
	Password  string `json:"password" binding:"required"`
}

// @Summary Register
// @Tags Auth
// @Description Guarda o cadastro pendente e envia o código de verificação por email
// @ModuleID register
// @Accept  json
// @Produce  json
// @Param input body registerRequest true "dados do usuário"
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	birthDate, err := time.Parse(validator.DateLayout, req.BirthDate)
	if err != nil {
		validationErrorResponse(c, err)
		return
	}

	err = h.services.Users.Register(c.Request.Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: birthDate,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			validationErrorResponse(c, err)
		case errors.Is(err, service.ErrUserAlreadyExist):
			errorResponse(c, http.StatusBadRequest, UserAlreadyExistsCode)
		default:
			internalErrorResponse(c, VerificationCodeSendFailedCode, err)
		}
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Código de verificação enviado para o email!"})
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type verifyCodeResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// @Summary Verify code
// @Tags Auth
// @Description Confirma o código enviado por email e cria o usuário
// @ModuleID verifyCode
// @Accept  json
// @Produce  json
// @Param input body verifyCodeRequest true "email e código"
// @Success 201 {object} verifyCodeResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /verify-code [post]
func (h *Handler) verifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	userID, err := h.services.Users.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPendingRegistrationNotFound):
			errorResponse(c, http.StatusBadRequest, PendingRegistrationNotFoundCode)
		case errors.Is(err, service.ErrInvalidVerificationCode):
			errorResponse(c, http.StatusBadRequest, VerificationCodeInvalidCode)
		case errors.Is(err, service.ErrUserAlreadyExist):
			errorResponse(c, http.StatusBadRequest, UserAlreadyExistsCode)
		default:
			internalErrorResponse(c, VerificationFailedCode, err)
		}
		return
	}

	c.JSON(http.StatusCreated, verifyCodeResponse{
		Message: "Email verificado com sucesso! Usuário registrado.",
		UserID:  userID,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"nome"`
}

// @Summary Login
// @Tags Auth
// @Description Autentica o usuário verificado e devolve um JWT válido por uma hora
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "credenciais"
// @Success 200 {object} loginResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	res, err := h.services.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			errorResponse(c, http.StatusBadRequest, UserNotFoundCode)
		case errors.Is(err, service.ErrInvalidPassword):
			errorResponse(c, http.StatusBadRequest, UserInvalidPasswordCode)
		case errors.Is(err, service.ErrUserNotVerified):
			errorResponse(c, http.StatusBadRequest, UserNotVerifiedCode)
		default:
			internalErrorResponse(c, LoginFailedCode, err)
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: res.Token, Name: res.Name})
}
