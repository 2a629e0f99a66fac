package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"tareas/internal/auth"
	"tareas/internal/database"
	"tareas/internal/i18n"
	"tareas/internal/middleware"
	"tareas/internal/model"
	"tareas/internal/repository"
	"tareas/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// MockUserRepository is a testify mock of repository.UserRepositoryInterface.
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepositoryInterface = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

// newEngine builds a router with the page templates and the session and
// locale middleware. Routes registered on protected require a session.
func newEngine(t *testing.T, tokens *auth.TokenManager) (*gin.Engine, *gin.RouterGroup) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.Session(tokens, false), i18n.Middleware())

	protected := r.Group("/")
	protected.Use(middleware.LoginRequired())
	return r, protected
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager(testSecret, time.Hour)
}

func sessionCookie(t *testing.T, tokens *auth.TokenManager, user *model.User) *http.Cookie {
	t.Helper()
	token, err := tokens.GenerateToken(auth.Principal{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// get performs a GET in English as the given session, which may be nil.
func get(r http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	return serve(r, req, cookie)
}

func postForm(r http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(r, req, cookie)
}

func serve(r http.Handler, req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	req.Header.Set("Accept-Language", "en")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

// issuedSession returns the session cookie value set by the response, if any.
func issuedSession(resp *httptest.ResponseRecorder) string {
	for _, c := range resp.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c.Value
		}
	}
	return ""
}

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(database.SQLite(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Task{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, HashedPassword: "unused"}
	require.NoError(t, repository.NewUserRepository(db).Create(context.Background(), user))
	return user
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	require.NoError(t, err)
	return h
}
