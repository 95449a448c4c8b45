package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ubudab109/number-discussion/internal/domain"
	"github.com/ubudab109/number-discussion/internal/middleware"
	"github.com/ubudab109/number-discussion/internal/service"
	"github.com/ubudab109/number-discussion/internal/token"
)

// In-memory repositories so handler tests run against real services
// without a database.

type memUserRepo struct {
	users  map[string]*domain.User
	nextID uint
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

type memCalcRepo struct {
	rows   []domain.Calculation
	nextID uint
}

func (m *memCalcRepo) Create(ctx context.Context, calc *domain.Calculation) error {
	m.nextID++
	calc.ID = m.nextID
	calc.CreatedAt = int64(m.nextID)
	m.rows = append(m.rows, *calc)
	return nil
}

func (m *memCalcRepo) FindByID(ctx context.Context, id uint) (*domain.Calculation, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			found := m.rows[i]
			return &found, nil
		}
	}
	return nil, domain.ErrParentNotFound
}

func (m *memCalcRepo) ListAll(ctx context.Context) ([]domain.CalculationWithUser, error) {
	out := make([]domain.CalculationWithUser, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, domain.CalculationWithUser{Calculation: row, Username: "tester"})
	}
	return out, nil
}

// newTestRouter wires the full route table over in-memory repositories.
func newTestRouter(t *testing.T) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager("test-secret", time.Hour)
	authService := service.NewAuthService(&memUserRepo{users: make(map[string]*domain.User)}, tokens, bcrypt.MinCost)
	calcService := service.NewCalculationService(&memCalcRepo{}, nil)

	r := gin.New()
	r.Use(middleware.CORS())
	r.GET("/health", HealthHandler())
	r.POST("/api/auth/register", RegisterHandler(authService))
	r.POST("/api/auth/login", LoginHandler(authService))
	r.GET("/api/calculations", ListCalculationsHandler(calcService))
	r.POST("/api/calculations", middleware.Auth(tokens), CreateCalculationHandler(calcService))
	return r, tokens
}

// doJSON issues a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser registers a user through the API and returns the token.
func registerUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
