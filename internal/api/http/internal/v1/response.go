package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lash-app/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// internalErrorResponse logs err and answers 500 with the generic message of code.
func internalErrorResponse(c *gin.Context, code ErrorCode, err error) {
	logger.Error(string(getErrorStruct(code).ErrorMessage),
		zap.Error(err),
		zap.String("path", c.FullPath()),
	)
	errorResponse(c, http.StatusInternalServerError, code)
}

// validationErrorResponse answers 400. Field errors from the validator are listed,
// malformed bodies get the plain required-fields message.
func validationErrorResponse(c *gin.Context, err error) {
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       []ValidationError{},
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response.Errors = out
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required", "notblank":
		return "Este campo é obrigatório"
	case "isodate":
		return "Data deve estar no formato AAAA-MM-DD"
	case "uuid":
		return "Identificador inválido"
	case "min":
		return fmt.Sprintf("Quantidade mínima de caracteres no campo - %v", value)
	case "max":
		return fmt.Sprintf("Quantidade máxima de caracteres no campo - %v", value)
	}
	return tag
}
