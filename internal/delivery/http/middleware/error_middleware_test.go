package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "linkmark/internal/delivery/context"
	"linkmark/internal/delivery/http/response"
	domainerrors "linkmark/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_RendersAppError(t *testing.T) {
	m := NewErrorMiddleware(discardLogger())

	c, rec := newErrorTestContext()
	m.HandleHTTPError(errors.Wrap(domainerrors.ErrForbidden, "bookmark access denied"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Access to resource denied", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FORBIDDEN", body.Error.Code)
}

// Unexpected errors answer with a generic 500; the cause and request ID go to
// the log, never to the client.
func TestErrorMiddleware_UnexpectedErrorStaysGeneric(t *testing.T) {
	var logBuf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logBuf, nil)))

	c, rec := newErrorTestContext()
	deliverycontext.SetRequestID(c, "req-456")
	m.HandleHTTPError(errors.New("pq: connection refused on 10.0.0.7"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)

	logged := logBuf.String()
	assert.Contains(t, logged, "connection refused")
	assert.Contains(t, logged, "req-456")
}
