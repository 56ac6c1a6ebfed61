package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderErrorUsesAppErrorMapping(t *testing.T) {
	rec := httptest.NewRecorder()
	app := NewAppError("PRODUCT_NOT_FOUND", "product not found in catalog", http.StatusNotFound, errors.New("lookup failed")).
		WithDetails(map[string]string{"product": "Potato"})
	RenderError(rec, app)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
	require.Contains(t, rec.Body.String(), "Potato")
	require.NotContains(t, rec.Body.String(), "lookup failed")
}

func TestRenderErrorUnwrapsToAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	app := NewAppError("EMPTY_CATALOG", "product catalog is empty", http.StatusServiceUnavailable, nil)
	RenderError(rec, fmt.Errorf("quote: %w", app))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "EMPTY_CATALOG")
}

func TestRenderErrorMasksUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	RenderError(rec, errors.New("open products.csv: permission denied"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "INTERNAL")
	require.NotContains(t, rec.Body.String(), "permission denied")
}

func TestAppErrorMessageFallsBackWithoutCause(t *testing.T) {
	app := NewAppError("EMPTY_PURCHASE", "purchase must contain at least one item", http.StatusUnprocessableEntity, nil)
	require.Equal(t, "purchase must contain at least one item", app.Error())

	cause := errors.New("csv: bad row")
	wrapped := NewAppError("INVALID_PURCHASE", "invalid purchase data", http.StatusUnprocessableEntity, cause)
	require.Equal(t, "csv: bad row", wrapped.Error())
	require.ErrorIs(t, wrapped, cause)
}
