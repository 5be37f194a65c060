package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	memcache "github.com/MezaMaximiliano/OT168-Java-server/internal/cache/memory"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/config"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	jwtx "github.com/MezaMaximiliano/OT168-Java-server/internal/jwt"
	memstore "github.com/MezaMaximiliano/OT168-Java-server/internal/store/memory"
	"github.com/stretchr/testify/require"
)

type env struct {
	handler http.Handler
	store   *memstore.Store
	issuer  *jwtx.Issuer
}

func newEnv(t *testing.T, pageSize int) *env {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "dev"
	cfg.Pagination.PageSize = pageSize
	cfg.JWT.Secret = "test-secret"
	cfg.Metrics.Enabled = true

	store := memstore.New()
	issuer := jwtx.NewIssuer("ong-server", cfg.JWT.Secret, time.Minute)

	handler := New(Deps{
		Config: cfg,
		Store:  store,
		Issuer: issuer,
		Cache:  memcache.New(time.Minute),
	})
	return &env{handler: handler, store: store, issuer: issuer}
}

func (e *env) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func registerBody(email string) map[string]any {
	return map[string]any{
		"firstName":        "James",
		"lastName":         "Potter",
		"email":            email,
		"password":         "12345678",
		"matchingPassword": "12345678",
		"photo":            "",
	}
}

func TestRegister_CreatesUserAndReturnsToken(t *testing.T) {
	e := newEnv(t, 10)

	rec := e.do(t, http.MethodPost, "/auth/register", registerBody("james@gmail.com"), nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Authorization"))

	var user struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
		Email     string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.NotZero(t, user.ID)
	require.Equal(t, "James", user.FirstName)
	require.Equal(t, "james@gmail.com", user.Email)

	// El token del header resuelve al usuario creado.
	me := e.do(t, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": rec.Header().Get("Authorization"),
	})
	require.Equal(t, http.StatusOK, me.Code)
	require.Contains(t, me.Body.String(), "james@gmail.com")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e := newEnv(t, 10)

	first := e.do(t, http.MethodPost, "/auth/register", registerBody("james@gmail.com"), nil)
	require.Equal(t, http.StatusCreated, first.Code)

	dup := e.do(t, http.MethodPost, "/auth/register", registerBody("james@gmail.com"), nil)
	require.Equal(t, http.StatusBadRequest, dup.Code)
	require.Equal(t, "Email already exists.", dup.Body.String())
}

func TestRegister_PasswordMismatch(t *testing.T) {
	e := newEnv(t, 10)

	body := registerBody("james@gmail.com")
	body["matchingPassword"] = "87654321"
	rec := e.do(t, http.MethodPost, "/auth/register", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "The passwords don't match.", rec.Body.String())
}

func TestRegister_FieldViolations(t *testing.T) {
	e := newEnv(t, 10)

	body := registerBody("james@gmail.com")
	body["firstName"] = ""
	rec := e.do(t, http.MethodPost, "/auth/register", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var msgs []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msgs))
	require.Contains(t, msgs, "The 'name' field is required.")
}

func TestLogin(t *testing.T) {
	e := newEnv(t, 10)
	e.do(t, http.MethodPost, "/auth/register", registerBody("james@gmail.com"), nil)

	ok := e.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "james@gmail.com", "password": "12345678",
	}, nil)
	require.Equal(t, http.StatusOK, ok.Code)

	var resp struct {
		JWT string `json:"jwt"`
	}
	require.NoError(t, json.Unmarshal(ok.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.JWT)

	bad := e.do(t, http.MethodPost, "/auth/login", map[string]string{
		"email": "james@gmail.com", "password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, bad.Code)
	require.Equal(t, "Invalid email or password.", bad.Body.String())
}

func TestMe_TokenHandling(t *testing.T) {
	e := newEnv(t, 10)

	// Sin token.
	rec := e.do(t, http.MethodGet, "/auth/me", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Token con prefijo Bearer.
	reg := e.do(t, http.MethodPost, "/auth/register", registerBody("james@gmail.com"), nil)
	token := reg.Header().Get("Authorization")
	withBearer := e.do(t, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, withBearer.Code)

	// Token válido de un usuario que ya no existe.
	var user struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(reg.Body.Bytes(), &user))
	require.NoError(t, e.store.Users().SoftDelete(context.Background(), user.ID))

	gone := e.do(t, http.MethodGet, "/auth/me", nil, map[string]string{"Authorization": token})
	require.Equal(t, http.StatusNotFound, gone.Code)
	require.Equal(t, "The ID doesn't exist.", gone.Body.String())
}

func TestMembers_CRUD(t *testing.T) {
	e := newEnv(t, 10)

	created := e.do(t, http.MethodPost, "/members", map[string]any{"name": "  John  "}, nil)
	require.Equal(t, http.StatusCreated, created.Code)

	var member struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &member))
	require.Equal(t, "John", member.Name)

	// Update con id de body distinto al del path.
	mismatch := e.do(t, http.MethodPut, "/members/1", map[string]any{"id": 99, "name": "x"}, nil)
	require.Equal(t, http.StatusBadRequest, mismatch.Code)
	require.Equal(t, "URL id doesn't match body id.", mismatch.Body.String())

	// Update de un id inexistente.
	missing := e.do(t, http.MethodPut, "/members/404", map[string]any{"name": "x"}, nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, "The ID doesn't exist.", missing.Body.String())

	// Update válido.
	updated := e.do(t, http.MethodPut, "/members/1", map[string]any{"id": 1, "name": "Johnny"}, nil)
	require.Equal(t, http.StatusOK, updated.Code)
	require.Contains(t, updated.Body.String(), "Johnny")

	// Delete, y delete repetido.
	del := e.do(t, http.MethodDelete, "/members/1", nil, nil)
	require.Equal(t, http.StatusNoContent, del.Code)
	again := e.do(t, http.MethodDelete, "/members/1", nil, nil)
	require.Equal(t, http.StatusNotFound, again.Code)

	// Creación inválida.
	invalid := e.do(t, http.MethodPost, "/members", map[string]any{"name": ""}, nil)
	require.Equal(t, http.StatusBadRequest, invalid.Code)
	var msgs []string
	require.NoError(t, json.Unmarshal(invalid.Body.Bytes(), &msgs))
	require.Equal(t, []string{"The 'name' field is required."}, msgs)
}

func TestMembers_Pagination(t *testing.T) {
	e := newEnv(t, 2)
	for i := 0; i < 3; i++ {
		rec := e.do(t, http.MethodPost, "/members", map[string]any{"name": "m"}, nil)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	type page struct {
		Body         []json.RawMessage `json:"body"`
		PreviousPage string            `json:"previousPage"`
		NextPage     string            `json:"nextPage"`
	}

	first := e.do(t, http.MethodGet, "/members?page=1", nil, nil)
	require.Equal(t, http.StatusOK, first.Code)
	var p1 page
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &p1))
	require.Len(t, p1.Body, 2)
	require.Empty(t, p1.PreviousPage)
	require.Equal(t, "/members?page=2", p1.NextPage)

	second := e.do(t, http.MethodGet, "/members?page=2", nil, nil)
	var p2 page
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &p2))
	require.Len(t, p2.Body, 1)
	require.Equal(t, "/members?page=1", p2.PreviousPage)
	require.Empty(t, p2.NextPage)

	// Página más allá del final: vacía, sin next.
	beyond := e.do(t, http.MethodGet, "/members?page=9", nil, nil)
	require.Equal(t, http.StatusOK, beyond.Code)
	var p9 page
	require.NoError(t, json.Unmarshal(beyond.Body.Bytes(), &p9))
	require.Empty(t, p9.Body)
	require.Empty(t, p9.NextPage)

	// page inválida o ausente.
	for _, path := range []string{"/members?page=0", "/members?page=abc", "/members"} {
		rec := e.do(t, http.MethodGet, path, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		require.Equal(t, "Page index must not be less than one.", rec.Body.String(), path)
	}
}

func TestCategories_CachedListing(t *testing.T) {
	e := newEnv(t, 10)
	ctx := context.Background()

	_, err := e.store.Categories().Create(ctx, &repository.Category{Name: "Noticias"})
	require.NoError(t, err)

	first := e.do(t, http.MethodGet, "/categories", nil, nil)
	require.Equal(t, http.StatusOK, first.Code)

	// Alta posterior: el listado sigue sirviendo el payload cacheado.
	_, err = e.store.Categories().Create(ctx, &repository.Category{Name: "Eventos"})
	require.NoError(t, err)

	second := e.do(t, http.MethodGet, "/categories", nil, nil)
	require.Equal(t, http.StatusOK, second.Code)
	require.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestUsers_RoleGating(t *testing.T) {
	e := newEnv(t, 10)
	ctx := context.Background()

	// Usuario común registrado por el endpoint.
	reg := e.do(t, http.MethodPost, "/auth/register", registerBody("james@gmail.com"), nil)
	require.Equal(t, http.StatusCreated, reg.Code)
	userToken := reg.Header().Get("Authorization")

	// Admin creado directo en el store.
	admin, err := e.store.Roles().FindByName(ctx, repository.RoleAdmin)
	require.NoError(t, err)
	_, err = e.store.Users().Create(ctx, &repository.User{
		FirstName: "Admin", LastName: "User", Email: "admin@ong.example",
		PasswordHash: "x", RoleID: admin.ID,
	})
	require.NoError(t, err)
	adminToken, _, err := e.issuer.IssueAccess("admin@ong.example", repository.RoleAdmin)
	require.NoError(t, err)

	noToken := e.do(t, http.MethodGet, "/users", nil, nil)
	require.Equal(t, http.StatusUnauthorized, noToken.Code)

	asUser := e.do(t, http.MethodGet, "/users", nil, map[string]string{"Authorization": userToken})
	require.Equal(t, http.StatusForbidden, asUser.Code)

	asAdmin := e.do(t, http.MethodGet, "/users", nil, map[string]string{"Authorization": adminToken})
	require.Equal(t, http.StatusOK, asAdmin.Code)
	require.Contains(t, asAdmin.Body.String(), "james@gmail.com")
	require.NotContains(t, asAdmin.Body.String(), "passwordHash")
}

func TestMetricsEndpoint(t *testing.T) {
	e := newEnv(t, 10)

	e.do(t, http.MethodGet, "/health", nil, nil)

	rec := e.do(t, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "http_requests_total"))
}

func TestHealth(t *testing.T) {
	e := newEnv(t, 10)

	rec := e.do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
