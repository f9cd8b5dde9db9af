package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/api"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/logger"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{serr.ErrInvalidInput, http.StatusBadRequest},
		{serr.ErrBadJSON, http.StatusBadRequest},
		{serr.ErrInvalidCredentials, http.StatusUnauthorized},
		{serr.ErrUnauthorized, http.StatusUnauthorized},
		{serr.ErrTokenExpired, http.StatusUnauthorized},
		{serr.ErrForbidden, http.StatusForbidden},
		{serr.ErrContactNotFound, http.StatusNotFound},
		{serr.ErrNotFound, http.StatusNotFound},
		{serr.ErrAlreadyExists, http.StatusConflict},
		{errors.Wrap(serr.ErrMethodNotAllowed, "route"), http.StatusMethodNotAllowed},
		{errors.WithStack(serr.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("wrapped: %w", serr.ErrAlreadyExists), http.StatusConflict},
		{&http.MaxBytesError{Limit: 1}, http.StatusRequestEntityTooLarge},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, api.StatusFromError(tt.err), tt.err.Error())
	}
}

func TestTitleForStatus(t *testing.T) {
	require.Equal(t, "Validation Failed", api.TitleForStatus(http.StatusBadRequest))
	require.Equal(t, "Unauthorized", api.TitleForStatus(http.StatusUnauthorized))
	require.Equal(t, "Forbidden", api.TitleForStatus(http.StatusForbidden))
	require.Equal(t, "Not Found", api.TitleForStatus(http.StatusNotFound))
	require.Equal(t, "Conflict", api.TitleForStatus(http.StatusConflict))
	require.Equal(t, "Server Error", api.TitleForStatus(http.StatusInternalServerError))
	// статусы вне таблицы не остаются без заголовка
	require.Equal(t, "Request Entity Too Large", api.TitleForStatus(http.StatusRequestEntityTooLarge))
	require.Equal(t, "Error", api.TitleForStatus(599))
}

// stackTrace есть при expose_stack
func TestWriteError_ExposeStack(t *testing.T) {
	h := api.NewHandler(nil, logger.Nop(), nil, true)

	rr := httptest.NewRecorder()
	h.WriteError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.WithStack(serr.ErrForbidden))

	require.Equal(t, http.StatusForbidden, rr.Code)
	body := decodeError(t, rr)
	require.Equal(t, "Forbidden", body.Title)
	require.Equal(t, serr.ErrForbidden.Error(), body.Message)
	require.Contains(t, body.StackTrace, "TestWriteError_ExposeStack")
}

// без expose_stack 500 не раскрывает подробности
func TestWriteError_HidesInternals(t *testing.T) {
	h := api.NewHandler(nil, logger.Nop(), nil, false)

	rr := httptest.NewRecorder()
	h.WriteError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr)
	require.Equal(t, "Server Error", body.Title)
	require.Equal(t, serr.ErrInternal.Error(), body.Message)
	require.Empty(t, body.StackTrace)
}
