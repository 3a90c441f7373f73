package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nutricheck/backend/config"
	"github.com/nutricheck/backend/internal/mocks"
	"github.com/nutricheck/backend/internal/testhelpers"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:            config.Test,
		ServerHost:     "localhost",
		ServerPort:     "8080",
		AllowedOrigins: []string{"*"},
		JWTSecret:      "test-secret",
		LLMEndpoint:    "http://localhost:11434/v1/chat/completions",
		LLMModel:       "llama3",
		RecipeCount:    5,
	}
}

func call(t *testing.T, h http.Handler, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv, err := New(testConfig(), testhelpers.SetupSQLite(t))
	require.NoError(t, err)

	code, resp := call(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp["dependencies"].(map[string]interface{})["database"])
}

func TestNewRequiresLLMSettings(t *testing.T) {
	cfg := testConfig()
	cfg.LLMEndpoint = ""
	_, err := New(cfg, testhelpers.SetupSQLite(t))
	assert.Error(t, err)
}

func TestPantryAndRecipeFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gen := new(mocks.MockRecipeGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return("Recipe Name: Milk Rice\nIngredients: milk, rice\nInstructions: Simmer.", nil)

	today := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	srv, err := New(testConfig(), testhelpers.SetupSQLite(t),
		WithGenerator(gen),
		WithClock(func() time.Time { return today }),
	)
	require.NoError(t, err)
	h := srv.Handler()

	creds := map[string]string{"email": "cook@example.com", "password": "password123"}

	code, _ := call(t, h, http.MethodPost, "/signup", "", creds)
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, h, http.MethodPost, "/api/v1/signup", "", creds)
	assert.Equal(t, http.StatusBadRequest, code, "versioned route shares the same store")

	code, resp := call(t, h, http.MethodPost, "/login", "", creds)
	require.Equal(t, http.StatusOK, code)
	token := resp["token"].(string)

	code, _ = call(t, h, http.MethodGet, "/getFoodItems", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	for _, item := range []map[string]interface{}{
		{"name": "Milk", "expiry": "10/03/2025", "quantity": 1, "location": "Fridge"},
		{"name": "Rice", "expiry": "2026-01-01", "quantity": "2 kg", "location": "Pantry"},
	} {
		code, _ = call(t, h, http.MethodPost, "/addfood", token, item)
		require.Equal(t, http.StatusCreated, code)
	}

	code, resp = call(t, h, http.MethodGet, "/api/v1/getFoodItems?sort=urgency", token, nil)
	require.Equal(t, http.StatusOK, code)
	items := resp["foodItems"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Milk", first["name"])
	assert.Equal(t, "Expiring Today", first["status"])
	assert.Equal(t, "cook@example.com", first["email"])
	assert.NotContains(t, first, "name_embedding")

	code, resp = call(t, h, http.MethodPost, "/generateRecipes", token, map[string]interface{}{
		"ingredients": []string{"milk", "rice"},
	})
	require.Equal(t, http.StatusOK, code)
	recipes := resp["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Milk Rice", recipes[0].(map[string]interface{})["Name"])

	code, resp = call(t, h, http.MethodPost, "/generateRecipes", token, map[string]interface{}{
		"ingredients": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No ingredients provided", resp["error"])

	code, _ = call(t, h, http.MethodPost, "/food/image-upload-url", token, map[string]string{
		"file_name": "milk.jpg", "content_type": "image/jpeg",
	})
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
