package v1

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/lash-app/backend/internal/config"
	"github.com/lash-app/backend/internal/service"
	"github.com/lash-app/backend/pkg/pdf"
	"github.com/lash-app/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router    *gin.Engine
	users     *usersServiceMock
	clients   *clientsServiceMock
	anamneses *anamnesesServiceMock
	tokens    *tokenManagerMock
}

func newTestEnv(t *testing.T, protect bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	env := &testEnv{
		users:     new(usersServiceMock),
		clients:   new(clientsServiceMock),
		anamneses: new(anamnesesServiceMock),
		tokens:    new(tokenManagerMock),
	}

	cfg := &config.Config{}
	cfg.HttpServer.ProtectResources = protect

	services := &service.Services{
		Users:     env.users,
		Clients:   env.clients,
		Anamneses: env.anamneses,
	}

	h := NewHandler(services, env.tokens, cfg, pdf.NewGenerator(filepath.Join(t.TempDir(), "missing.ttf")))

	env.router = gin.New()
	h.Init(env.router.Group("/api"))

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type errorBody struct {
	ErrorCode        int               `json:"error_code"`
	Error            string            `json:"error"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}
