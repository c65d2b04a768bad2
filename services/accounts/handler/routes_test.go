package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	jwtpkg "github.com/paysetu/bbps-account/internal/pkg/jwt"
	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts"
	"github.com/paysetu/bbps-account/services/accounts/mocks"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Auth.AdminSecret = "test-secret"
	cfg.Auth.AdminIssuer = "bbps-account"
	return cfg
}

func okNext(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestBearerTokenMiddleware_QueryParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewHandler(mockUC, testConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard?bearer_token=tok", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().Authenticate(gomock.Any(), "tok").Return("alice", nil)

	var resolved string
	err := h.BearerTokenMiddleware(func(c echo.Context) error {
		resolved, _ = c.Get("client_id").(string)
		return c.NoContent(http.StatusOK)
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", resolved)
}

func TestBearerTokenMiddleware_AuthorizationHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewHandler(mockUC, testConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().Authenticate(gomock.Any(), "tok").Return("alice", nil)

	err := h.BearerTokenMiddleware(okNext)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerTokenMiddleware_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewHandler(mockUC, testConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().Authenticate(gomock.Any(), "").Return("", accounts.ErrSessionRequired)

	err := h.BearerTokenMiddleware(okNext)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerTokenMiddleware_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewHandler(mockUC, testConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard?bearer_token=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().Authenticate(gomock.Any(), "bogus").Return("", accounts.ErrInvalidToken)

	err := h.BearerTokenMiddleware(okNext)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminJWTMiddleware_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	h := NewHandler(mocks.NewMockAccountUC(ctrl), cfg)

	tokenString, _, err := jwtpkg.GenerateAdminToken("ops", time.Minute, cfg)
	assert.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = h.AdminJWTMiddleware(okNext)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops", c.Get("admin_subject"))
}

func TestAdminJWTMiddleware_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mocks.NewMockAccountUC(ctrl), testConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AdminJWTMiddleware(okNext)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminJWTMiddleware_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	otherCfg := testConfig()
	otherCfg.Auth.AdminSecret = "other-secret"
	tokenString, _, err := jwtpkg.GenerateAdminToken("ops", time.Minute, otherCfg)
	assert.NoError(t, err)

	h := NewHandler(mocks.NewMockAccountUC(ctrl), testConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokenString)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err = h.AdminJWTMiddleware(okNext)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRoutes_WiresAllEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewHandler(mocks.NewMockAccountUC(ctrl), testConfig())

	e := echo.New()
	h.RegisterRoutes(e)

	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		paths[r.Method+" "+r.Path] = true
	}

	assert.True(t, paths["POST /login"])
	assert.True(t, paths["GET /login"])
	assert.True(t, paths["POST /topups"])
	assert.True(t, paths["POST /client-bank"])
	assert.True(t, paths["GET /dashboard"])
	assert.True(t, paths["GET /transactions"])
	assert.True(t, paths["GET /get"])
	assert.True(t, paths["POST /transactions"])
}
