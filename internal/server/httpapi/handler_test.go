package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/akondrashov/stash/internal/logging"
	"github.com/akondrashov/stash/internal/server/config"
	"github.com/akondrashov/stash/internal/server/services"
	"github.com/akondrashov/stash/internal/server/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	var cfg config.Config
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.BcryptCost = bcrypt.MinCost

	store := storage.NewInMemoryManager()
	users := services.NewUserService(store.Users(), &cfg)
	items := services.NewItemService(store.Items())
	logger := logging.NewJSONLogger(io.Discard, slog.LevelError)

	return NewServer(&cfg, logger, store, users, items)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func registerAndLogin(t *testing.T, h http.Handler, email, password string) (userID, token string) {
	t.Helper()

	w := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var u userResponse
	decode(t, w, &u)

	w = doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok tokenResponse
	decode(t, w, &tok)
	require.NotEmpty(t, tok.AccessToken)

	return u.ID, tok.AccessToken
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Handler()

	w := doJSON(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister(t *testing.T) {
	h := newTestServer(t).Handler()

	w := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "a@example.com", "password": "secret123", "name": "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var u userResponse
	decode(t, w, &u)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "a@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestRegisterValidation(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"password": "secret123"}},
		{"bad email", map[string]string{"email": "nope", "password": "secret123"}},
		{"short password", map[string]string{"email": "a@example.com", "password": "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, h, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h := newTestServer(t).Handler()

	body := map[string]string{"email": "a@example.com", "password": "secret123"}
	w := doJSON(t, h, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, h, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	h := newTestServer(t).Handler()
	registerAndLogin(t, h, "a@example.com", "secret123")

	// Unknown account and wrong password are indistinguishable.
	wUnknown := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	})
	wWrong := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@example.com", "password": "wrong-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	assert.Equal(t, wUnknown.Body.String(), wWrong.Body.String())
}

func TestProfile(t *testing.T) {
	h := newTestServer(t).Handler()
	userID, token := registerAndLogin(t, h, "a@example.com", "secret123")

	w := doJSON(t, h, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var u userResponse
	decode(t, w, &u)
	assert.Equal(t, userID, u.ID)
	assert.Equal(t, "a@example.com", u.Email)
}

func TestProfileRequiresAuth(t *testing.T) {
	h := newTestServer(t).Handler()

	w := doJSON(t, h, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestItemLifecycle(t *testing.T) {
	h := newTestServer(t).Handler()
	userID, token := registerAndLogin(t, h, "a@example.com", "secret123")

	// Create.
	w := doJSON(t, h, http.MethodPost, "/api/items", token, map[string]string{
		"name": "laptop", "description": "work machine",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item itemResponse
	decode(t, w, &item)
	assert.Equal(t, userID, item.OwnerID)
	assert.Equal(t, "laptop", item.Name)

	// Read without a token.
	w = doJSON(t, h, http.MethodGet, "/api/items/"+item.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// List without a token.
	w = doJSON(t, h, http.MethodGet, "/api/items", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []itemResponse
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, item.ID, list[0].ID)

	// Partial update: only the description changes.
	w = doJSON(t, h, http.MethodPut, "/api/items/"+item.ID, token, map[string]string{
		"description": "personal machine",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated itemResponse
	decode(t, w, &updated)
	assert.Equal(t, "laptop", updated.Name)
	assert.Equal(t, "personal machine", updated.Description)

	// Delete.
	w = doJSON(t, h, http.MethodDelete, "/api/items/"+item.ID, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/items/"+item.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemMutationRequiresAuth(t *testing.T) {
	h := newTestServer(t).Handler()
	_, token := registerAndLogin(t, h, "a@example.com", "secret123")

	w := doJSON(t, h, http.MethodPost, "/api/items", token, map[string]string{"name": "laptop"})
	require.Equal(t, http.StatusCreated, w.Code)
	var item itemResponse
	decode(t, w, &item)

	w = doJSON(t, h, http.MethodPost, "/api/items", "", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodPut, "/api/items/"+item.ID, "", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/api/items/"+item.ID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestItemOwnershipEnforced(t *testing.T) {
	h := newTestServer(t).Handler()
	_, ownerToken := registerAndLogin(t, h, "owner@example.com", "secret123")
	_, otherToken := registerAndLogin(t, h, "other@example.com", "secret123")

	w := doJSON(t, h, http.MethodPost, "/api/items", ownerToken, map[string]string{"name": "laptop"})
	require.Equal(t, http.StatusCreated, w.Code)
	var item itemResponse
	decode(t, w, &item)

	// A non-owner can read but not mutate.
	w = doJSON(t, h, http.MethodGet, "/api/items/"+item.ID, otherToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPut, "/api/items/"+item.ID, otherToken, map[string]string{"name": "mine"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/api/items/"+item.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The item survives untouched.
	w = doJSON(t, h, http.MethodGet, "/api/items/"+item.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got itemResponse
	decode(t, w, &got)
	assert.Equal(t, "laptop", got.Name)
}

func TestItemMissingBeforeForbidden(t *testing.T) {
	h := newTestServer(t).Handler()
	_, token := registerAndLogin(t, h, "a@example.com", "secret123")

	const ghost = "11111111-2222-3333-4444-555555555555"
	w := doJSON(t, h, http.MethodPut, "/api/items/"+ghost, token, map[string]string{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// An empty patch on a missing item is still a 404, not a 400.
	w = doJSON(t, h, http.MethodPut, "/api/items/"+ghost, token, map[string]string{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/api/items/"+ghost, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemUpdateEmptyBody(t *testing.T) {
	h := newTestServer(t).Handler()
	_, token := registerAndLogin(t, h, "a@example.com", "secret123")

	w := doJSON(t, h, http.MethodPost, "/api/items", token, map[string]string{"name": "laptop"})
	require.Equal(t, http.StatusCreated, w.Code)
	var item itemResponse
	decode(t, w, &item)

	w = doJSON(t, h, http.MethodPut, "/api/items/"+item.ID, token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItemBadID(t *testing.T) {
	h := newTestServer(t).Handler()
	_, token := registerAndLogin(t, h, "a@example.com", "secret123")

	w := doJSON(t, h, http.MethodGet, "/api/items/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItemCreateMissingName(t *testing.T) {
	h := newTestServer(t).Handler()
	_, token := registerAndLogin(t, h, "a@example.com", "secret123")

	w := doJSON(t, h, http.MethodPost, "/api/items", token, map[string]string{"description": "no name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
