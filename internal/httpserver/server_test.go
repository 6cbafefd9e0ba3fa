package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adamaho/matchpoint/internal/middleware"
	"github.com/adamaho/matchpoint/internal/models"
	"github.com/adamaho/matchpoint/internal/repo"
	"github.com/adamaho/matchpoint/internal/service"
	"github.com/adamaho/matchpoint/internal/tokens"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Issuer *tokens.Issuer
}

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{}, &models.RefreshToken{},
		&models.Match{}, &models.Team{}, &models.Player{}, &models.MatchAdmin{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := initTestDB(t)

	issuer := &tokens.Issuer{
		AccessSecret:  []byte("some_shared_secret"),
		RefreshSecret: []byte("some_refresh_shared_secret"),
		Audience:      "urn:audience:test",
		Issuer:        "urn:issuer:test",
	}

	store := repo.New(db)

	e := echo.New()
	Register(e, &Deps{
		AuthHandler: &AuthHTTP{
			Svc: &service.AuthService{Repo: store, Tokens: issuer},
		},
		MatchHandler: &MatchHTTP{
			Svc:    &service.MatchService{Repo: store},
			Search: &service.SearchService{},
		},
		UserHandler: &UserHTTP{
			Svc: &service.UserService{Repo: store},
		},
		Auth: middleware.NewBearerAuth(issuer),
	})

	return &testEnv{T: t, E: e, DB: db, Issuer: issuer}
}

func (env *testEnv) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder) map[string]any {
	var data map[string]any
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &data))
	return data
}

func (env *testEnv) signup(username, email, password string) map[string]any {
	rec := env.request(http.MethodPost, "/auth/signup.json", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(env.T, http.StatusCreated, rec.Code)
	return env.decode(rec)
}
