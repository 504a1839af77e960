package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/herbpot/shoppingmol/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockRepository) GetProductByID(ctx context.Context, id uint) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id uint) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockRepository) GetUserByNick(ctx context.Context, nick string) (models.User, error) {
	args := m.Called(ctx, nick)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockRepository) NickTaken(ctx context.Context, nick string) (bool, error) {
	args := m.Called(ctx, nick)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateUser(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) UpdateUser(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// newTestServer поднимает httptest-сервер с роутером поверх мок-репозитория.
func newTestServer(t *testing.T, repo Repository) *httptest.Server {
	t.Helper()
	zlog := zerolog.Nop()
	store := memstore.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	srv := New(repo, &zlog)
	ts := httptest.NewServer(srv.Router(store, "../../web/templates/*.tmpl", "../../static"))
	t.Cleanup(ts.Close)
	return ts
}
