package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forum/handler"
	"github.com/dmitrymomot/forum/pkg/validator"
)

func render(t *testing.T, resp handler.Response) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	err := resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()

	var got handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("simple data", func(t *testing.T) {
		t.Parallel()

		w := render(t, handler.JSON(map[string]string{"sub": "123"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, handler.JSONResponse{
			Data: map[string]any{"sub": "123"},
		}, decode(t, w))
	})

	t.Run("with status and meta", func(t *testing.T) {
		t.Parallel()

		w := render(t, handler.JSON(
			map[string]string{"id": "123"},
			handler.WithJSONStatus(http.StatusAccepted),
			handler.WithJSONMeta(map[string]any{"version": "1.0"}),
		))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, handler.JSONResponse{
			Data: map[string]any{"id": "123"},
			Meta: map[string]any{"version": "1.0"},
		}, decode(t, w))
	})

	t.Run("error value renders as error", func(t *testing.T) {
		t.Parallel()

		w := render(t, handler.JSON(handler.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, &handler.ErrorDetail{Code: "not_found", Message: "Not Found"}, decode(t, w).Error)
	})
}

func TestRawJSON(t *testing.T) {
	t.Parallel()

	w := render(t, handler.RawJSON(http.StatusCreated, map[string]string{"access_token": "abc"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"access_token":"abc"}`, w.Body.String())
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        any
		wantStatus int
		want       *handler.ErrorDetail
	}{
		{
			name:       "http error with message",
			err:        handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials", "User credentials do not match."),
			wantStatus: http.StatusUnauthorized,
			want:       &handler.ErrorDetail{Code: "invalid_credentials", Message: "User credentials do not match."},
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("context: %w", handler.ErrConflict),
			wantStatus: http.StatusConflict,
			want:       &handler.ErrorDetail{Code: "conflict", Message: "Conflict"},
		},
		{
			name: "validation errors",
			err: validator.ValidationErrors{
				{Field: "email", Message: "field is required"},
				{Field: "password", Message: "field is required"},
			},
			wantStatus: http.StatusUnprocessableEntity,
			want: &handler.ErrorDetail{
				Code:    "validation_error",
				Message: "Request validation failed.",
				Details: map[string][]string{
					"email":    {"field is required"},
					"password": {"field is required"},
				},
			},
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			want:       &handler.ErrorDetail{Code: "internal_server_error", Message: "Internal Server Error"},
		},
		{
			name:       "error detail",
			err:        &handler.ErrorDetail{Code: "custom", Message: "custom"},
			wantStatus: http.StatusInternalServerError,
			want:       &handler.ErrorDetail{Code: "custom", Message: "custom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := render(t, handler.JSONError(tt.err))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.want, decode(t, w).Error)
		})
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	w := render(t, handler.Empty())
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = render(t, handler.EmptyWithStatus(http.StatusCreated))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())
}
