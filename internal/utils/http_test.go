package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "created", map[string]string{"id": "1"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "created", body.Message)
}

func TestErrorResponses(t *testing.T) {
	cases := []struct {
		name     string
		fn       func(echo.Context, string) error
		wantCode int
	}{
		{"bad request", BadRequestResponse, http.StatusBadRequest},
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError},
		{"bad gateway", BadGatewayResponse, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tc.fn(c, "boom")
			assert.NoError(t, err)
			assert.Equal(t, tc.wantCode, rec.Code)

			var body ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "boom", body.Error)
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}

func TestErrorResponses_DefaultMessages(t *testing.T) {
	c, rec := newTestContext()

	err := UnauthorizedResponse(c, "")
	assert.NoError(t, err)

	var body ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body.Error)
}
