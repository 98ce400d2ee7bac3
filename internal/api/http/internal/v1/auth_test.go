package v1

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lash-app/backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func registerBody() map[string]string {
	return map[string]string{
		"nome":           "Maria",
		"email":          "m@x.com",
		"dataNascimento": "1990-01-01",
		"telefone":       "+5511999999999",
		"password":       "pw123",
	}
}

func TestRegister(t *testing.T) {
	t.Run("sends code", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("Register", mock.Anything, service.RegisterInput{
			Name:      "Maria",
			Email:     "m@x.com",
			BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Phone:     "+5511999999999",
			Password:  "pw123",
		}).Return(nil).Once()

		w := env.do(t, http.MethodPost, "/api/register", registerBody())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Código de verificação enviado para o email!", decode[messageResponse](t, w).Message)
		env.users.AssertExpectations(t)
	})

	t.Run("missing field", func(t *testing.T) {
		env := newTestEnv(t, false)
		body := registerBody()
		delete(body, "telefone")

		w := env.do(t, http.MethodPost, "/api/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode[errorBody](t, w)
		assert.Equal(t, ValidationErrorMessage, res.Error)
		assert.Equal(t, "telefone", res.ValidationErrors[0].FieldKey)
		env.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("email only checked for presence", func(t *testing.T) {
		env := newTestEnv(t, false)
		body := registerBody()
		body["email"] = "maria"
		env.users.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
			return in.Email == "maria"
		})).Return(nil).Once()

		w := env.do(t, http.MethodPost, "/api/register", body)

		assert.Equal(t, http.StatusOK, w.Code)
		env.users.AssertExpectations(t)
	})

	t.Run("blank email", func(t *testing.T) {
		env := newTestEnv(t, false)
		body := registerBody()
		body["email"] = "   "

		w := env.do(t, http.MethodPost, "/api/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email", decode[errorBody](t, w).ValidationErrors[0].FieldKey)
		env.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(t, http.MethodPost, "/api/register", "{")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("user exists", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("Register", mock.Anything, mock.Anything).Return(service.ErrUserAlreadyExist).Once()

		w := env.do(t, http.MethodPost, "/api/register", registerBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, UserAlreadyExistsMessage, decode[errorBody](t, w).Error)
	})

	t.Run("notification failure", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("Register", mock.Anything, mock.Anything).Return(service.ErrNotificationFailed).Once()

		w := env.do(t, http.MethodPost, "/api/register", registerBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, VerificationCodeSendFailedMessage, decode[errorBody](t, w).Error)
	})
}

func TestVerifyCode(t *testing.T) {
	body := map[string]string{"email": "m@x.com", "code": "123456"}

	t.Run("wrong code", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("VerifyCode", mock.Anything, "m@x.com", "123456").Return(uuid.Nil, service.ErrInvalidVerificationCode).Once()

		w := env.do(t, http.MethodPost, "/api/verify-code", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Código de verificação incorreto", decode[errorBody](t, w).Error)
	})

	t.Run("expired", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("VerifyCode", mock.Anything, "m@x.com", "123456").Return(uuid.Nil, service.ErrPendingRegistrationNotFound).Once()

		w := env.do(t, http.MethodPost, "/api/verify-code", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, PendingRegistrationNotFoundMessage, decode[errorBody](t, w).Error)
	})

	t.Run("verified", func(t *testing.T) {
		env := newTestEnv(t, false)
		id := uuid.New()
		env.users.On("VerifyCode", mock.Anything, "m@x.com", "123456").Return(id, nil).Once()

		w := env.do(t, http.MethodPost, "/api/verify-code", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		res := decode[verifyCodeResponse](t, w)
		assert.Equal(t, id, res.UserID)
		assert.Equal(t, "Email verificado com sucesso! Usuário registrado.", res.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("VerifyCode", mock.Anything, "m@x.com", "123456").Return(uuid.Nil, errors.New("db down")).Once()

		w := env.do(t, http.MethodPost, "/api/verify-code", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLogin(t *testing.T) {
	body := map[string]string{"email": "m@x.com", "password": "pw123"}

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.users.On("Login", mock.Anything, "m@x.com", "pw123").
			Return(&service.LoginResult{Token: "jwt", Name: "Maria"}, nil).Once()

		w := env.do(t, http.MethodPost, "/api/login", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, loginResponse{Token: "jwt", Name: "Maria"}, decode[loginResponse](t, w))
	})

	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "unknown user", err: service.ErrUserNotFound, message: "Usuário não encontrado"},
		{name: "wrong password", err: service.ErrInvalidPassword, message: "Senha incorreta"},
		{name: "unverified", err: service.ErrUserNotVerified, message: "Email não verificado. Verifique seu email."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)
			env.users.On("Login", mock.Anything, "m@x.com", "pw123").Return(nil, tt.err).Once()

			w := env.do(t, http.MethodPost, "/api/login", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, decode[errorBody](t, w).Error)
		})
	}
}
