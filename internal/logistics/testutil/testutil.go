// Package testutil wires an in-memory grid behind the full handler stack so
// tests can drive the real HTTP surface without credentials.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/handler"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/repository"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/logistics/service"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/middleware"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/shared/maps"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheets"
	"github.com/caovinhphuc/mia-logistics-manager-sub007/internal/sheetstore"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const JWTSecret = "mia-logistics-test-secret"

// Env holds the wired test stack. Grid is the in-memory backend shared by
// every layer, so tests can seed rows and inject failures directly.
type Env struct {
	Grid     *sheets.MemoryGrid
	Store    *sheetstore.Store
	Repos    *repository.Repositories
	Services *service.Services
	Router   *gin.Engine
}

// Setup builds the full stack over an in-memory grid. The distance client is
// left unconfigured: lookups fail and consolidation falls back to zero
// distances, which is the offline behavior tests want by default.
func Setup(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	grid := sheets.NewMemoryGrid()
	store := sheetstore.New(grid)
	repos := repository.NewRepositories(store)
	distance := maps.NewDistanceClient("", time.Second, nil, 0, zap.NewNop())
	services := service.NewServices(repos, distance, zap.NewNop())
	handlers := handler.NewHandlers(services, store)

	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api", middleware.JWTAuth(JWTSecret))
	handler.RegisterRoutes(api, handlers)

	return &Env{
		Grid:     grid,
		Store:    store,
		Repos:    repos,
		Services: services,
		Router:   router,
	}
}

// SetupWithDistance is Setup with a live distance endpoint, for tests
// running an httptest stub of the Apps Script service.
func SetupWithDistance(t *testing.T, endpointURL string) *Env {
	t.Helper()
	env := Setup(t)
	distance := maps.NewDistanceClient(endpointURL, time.Second, nil, 0, zap.NewNop())
	env.Services = service.NewServices(env.Repos, distance, zap.NewNop())
	handlers := handler.NewHandlers(env.Services, env.Store)

	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api", middleware.JWTAuth(JWTSecret))
	handler.RegisterRoutes(api, handlers)
	env.Router = router
	return env
}

// GenerateTestToken creates a valid JWT for the test middleware.
func GenerateTestToken(userID, name, email string) string {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"uid":   userID,
		"name":  name,
		"email": email,
		"iss":   "mia-logistics",
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
		"jti":   fmt.Sprintf("test-jti-%d", now.UnixNano()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// DefaultTestToken returns a token for a default test operator.
func DefaultTestToken() string {
	return GenerateTestToken("test-user-001", "Test Operator", "ops@test.local")
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON envelope into a map.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
