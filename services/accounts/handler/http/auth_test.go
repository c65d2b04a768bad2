package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/paysetu/bbps-account/internal/pkg/models"
	"github.com/paysetu/bbps-account/services/accounts"
	"github.com/paysetu/bbps-account/services/accounts/mocks"
)

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	e := echo.New()
	requestBody := `{"username": "alice", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Register(gomock.Any(), "alice", "s3cret").
		Return(&models.RegisterResult{BearToken: "deadbeef"}, nil)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "User logged in", response["message"])
	assert.Equal(t, "deadbeef", response["bear_token"])

	// History arrays are always present, even when empty
	assert.Equal(t, []interface{}{}, response["topups"])
	assert.Equal(t, []interface{}{}, response["client_banks"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	e := echo.New()
	requestBody := `{"username": "alice", "password": "s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Register(gomock.Any(), "alice", "s3cret").
		Return(nil, accounts.ErrDuplicateIdentity)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
}

func TestRegister_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	e := echo.New()
	requestBody := `{"username": "alice"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{invalid_json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/login?username=alice&password=s3cret", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Login(gomock.Any(), "alice", "s3cret").
		Return(&models.Credential{Username: "alice", BearToken: "deadbeef"}, nil)

	err := h.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "alice", response["username"])
	assert.Equal(t, "deadbeef", response["bear_token"])
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/login?username=alice&password=wrong", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		Login(gomock.Any(), "alice", "wrong").
		Return(nil, accounts.ErrBadCredentials)

	err := h.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	h := NewAccountHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/login?username=alice", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
