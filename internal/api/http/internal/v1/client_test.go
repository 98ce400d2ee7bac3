package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lash-app/backend/internal/domain"
	"github.com/lash-app/backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func clientBody() map[string]any {
	return map[string]any{
		"nome":                 "Ana Silva",
		"email":                "ana@x.com",
		"telefone":             "11988887777",
		"dataNascimento":       "1995-03-10",
		"cep":                  "01001-000",
		"logradouro":           "Praça da Sé",
		"bairro":               "Sé",
		"cidade":               "São Paulo",
		"uf":                   "SP",
		"numero":               "100",
		"procedimentoFavorito": "Volume russo",
	}
}

func TestCreateClient(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newTestEnv(t, false)
		id := uuid.New()
		env.clients.On("Create", mock.Anything, mock.MatchedBy(func(in service.ClientInput) bool {
			return in.Name == "Ana Silva" && in.Complement == nil && in.State == "SP"
		})).Return(&domain.Client{ID: id, Name: "Ana Silva"}, nil).Once()

		w := env.do(t, http.MethodPost, "/api/clientes", clientBody())

		assert.Equal(t, http.StatusCreated, w.Code)
		res := decode[domain.Client](t, w)
		assert.Equal(t, id, res.ID)
		assert.Equal(t, "Ana Silva", res.Name)
	})

	t.Run("missing field", func(t *testing.T) {
		env := newTestEnv(t, false)
		body := clientBody()
		body["cidade"] = "   "

		w := env.do(t, http.MethodPost, "/api/clientes", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		res := decode[errorBody](t, w)
		assert.Equal(t, "Todos os campos são obrigatórios.", res.Error)
		assert.Equal(t, "cidade", res.ValidationErrors[0].FieldKey)
		env.clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.clients.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		w := env.do(t, http.MethodPost, "/api/clientes", clientBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, ClientCreateFailedMessage, decode[errorBody](t, w).Error)
	})
}

func TestGetClientsList(t *testing.T) {
	env := newTestEnv(t, false)
	items := make([]domain.Client, 10)
	env.clients.On("List", mock.Anything, 1, 10).Return(&domain.Page[domain.Client]{
		Items:       items,
		Total:       25,
		CurrentPage: 1,
		Limit:       10,
	}, nil).Once()

	w := env.do(t, http.MethodGet, "/api/clientes?page=1&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decode[listResponse[domain.Client]](t, w)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Len(t, res.Data, 10)
}

func TestGetClientsList_InvalidQueryFallsThrough(t *testing.T) {
	env := newTestEnv(t, false)
	env.clients.On("List", mock.Anything, 0, 0).Return(&domain.Page[domain.Client]{CurrentPage: 1, Limit: 10}, nil).Once()

	w := env.do(t, http.MethodGet, "/api/clientes?page=abc&limit=", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalPages":0,"currentPage":1,"data":[]}`, w.Body.String())
}

func TestSearchClients(t *testing.T) {
	env := newTestEnv(t, false)
	env.clients.On("Search", mock.Anything, "ana").Return([]domain.Client{{Name: "Ana Silva"}}, nil).Once()

	w := env.do(t, http.MethodGet, "/api/clientes/search?nome=ana", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decode[[]domain.Client](t, w)
	assert.Len(t, res, 1)
	assert.Equal(t, "Ana Silva", res[0].Name)
}

func TestGetClientByID(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		env := newTestEnv(t, false)

		w := env.do(t, http.MethodGet, "/api/clientes/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ClientNotFoundMessage, decode[errorBody](t, w).Error)
	})

	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t, false)
		id := uuid.New()
		env.clients.On("GetByID", mock.Anything, id).Return(&domain.Client{ID: id}, nil).Once()

		w := env.do(t, http.MethodGet, "/api/clientes/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUpdateClient(t *testing.T) {
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.clients.On("Update", mock.Anything, id, mock.Anything).Return(nil, service.ErrClientNotFound).Once()

		w := env.do(t, http.MethodPut, "/api/clientes/"+id.String(), clientBody())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Cliente não encontrado.", decode[errorBody](t, w).Error)
	})

	t.Run("updated", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.clients.On("Update", mock.Anything, id, mock.Anything).Return(&domain.Client{ID: id, Name: "Ana Silva"}, nil).Once()

		w := env.do(t, http.MethodPut, "/api/clientes/"+id.String(), clientBody())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, decode[domain.Client](t, w).ID)
	})
}

func TestDeleteClient(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.clients.On("Delete", mock.Anything, id).Return(nil).Once()

		w := env.do(t, http.MethodDelete, "/api/clientes/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Cliente excluído com sucesso.", decode[messageResponse](t, w).Message)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.clients.On("Delete", mock.Anything, id).Return(service.ErrClientNotFound).Once()

		w := env.do(t, http.MethodDelete, "/api/clientes/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProtectedResources(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		env := newTestEnv(t, true)

		w := env.do(t, http.MethodGet, "/api/clientes", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, UnauthorizedMessage, decode[errorBody](t, w).Error)
		env.clients.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid token", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.tokens.On("Parse", "bad").Return("", errors.New("signature is invalid")).Once()

		w := env.do(t, http.MethodGet, "/api/anamnese", nil, "Authorization", "Bearer bad")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.tokens.On("Parse", "good").Return(uuid.NewString(), nil).Once()
		env.clients.On("List", mock.Anything, 0, 0).Return(&domain.Page[domain.Client]{CurrentPage: 1, Limit: 10}, nil).Once()

		w := env.do(t, http.MethodGet, "/api/clientes", nil, "Authorization", "Bearer good")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("auth routes stay public", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.users.On("Login", mock.Anything, "m@x.com", "pw").Return(nil, service.ErrUserNotFound).Once()

		w := env.do(t, http.MethodPost, "/api/login", map[string]string{"email": "m@x.com", "password": "pw"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
