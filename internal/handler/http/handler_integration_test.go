package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/container"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/service"
	"github.com/MKhiriev/go-contract-guard/internal/validation"
	"github.com/MKhiriev/go-contract-guard/internal/validators"
	"github.com/MKhiriev/go-contract-guard/models"
)

// newWiredHandler builds the handler over real services whose calls are
// validated through the container.
func newWiredHandler(t *testing.T) testHandler {
	t.Helper()

	cfg := config.Defaults()
	engine, err := validators.NewPlaygroundEngine()
	require.NoError(t, err)
	registry := validation.NewRegistry()
	require.NoError(t, service.RegisterContracts(registry))
	validationService := validation.NewService(engine, registry, cfg.Validation, logger.Nop())

	c := container.New(logger.Nop())
	require.NoError(t, service.Provide(c, models.NewAppBuildInfo("test", "", ""), cfg, validationService, logger.Nop()))
	require.NoError(t, validationService.Install(c))

	services, err := service.NewServices(context.Background(), c)
	require.NoError(t, err)

	return testHandler{router: NewHandler(services, logger.Nop()).Init()}
}

func TestWired_RegisterValidatesRequest(t *testing.T) {
	th := newWiredHandler(t)

	rec := th.do(http.MethodPost, "/api/accounts", map[string]any{
		"login":    "",
		"email":    "not-an-email",
		"password": "short",
		"profile":  map[string]any{"display_name": "Alice", "age": 30},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got models.ViolationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "parameters", got.Kind)

	paths := make([]string, 0, len(got.Violations))
	for _, v := range got.Violations {
		paths = append(paths, v.Path)
	}
	assert.Equal(t, []string{"Register.request.Login", "Register.request.Email", "Register.request.Password"}, paths)
	assert.Equal(t, "Login is a required field", got.Violations[0].Message)
}

func TestWired_RegisterThenFind(t *testing.T) {
	th := newWiredHandler(t)

	rec := th.do(http.MethodPost, "/api/accounts", signup())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = th.do(http.MethodPost, "/api/accounts", signup())
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = th.do(http.MethodGet, "/api/accounts/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var account models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))
	assert.Equal(t, "default", account.Realm)

	rec = th.do(http.MethodGet, "/api/accounts/not-alphanum", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = th.do(http.MethodPost, "/api/accounts/authenticate", models.Credentials{Login: "alice", Password: "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, account.ID, session.Account.ID)
	require.NotEmpty(t, session.Token.SignedString)

	rec = th.doWithHeader(http.MethodGet, "/api/accounts/me", nil, http.Header{"Authorization": {"Bearer " + session.Token.SignedString}})
	require.Equal(t, http.StatusOK, rec.Code)

	var me models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, account.ID, me.ID)

	rec = th.doWithHeader(http.MethodGet, "/api/accounts/me", nil, http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = th.do(http.MethodPost, "/api/accounts/authenticate", models.Credentials{Login: "alice", Password: "wrong-horse"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWired_AppInfo(t *testing.T) {
	th := newWiredHandler(t)

	rec := th.do(http.MethodGet, "/api/info", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var info models.AppInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "test", info.Version)
	assert.True(t, info.StaticValidation)
	assert.True(t, info.DynamicValidation)
}
