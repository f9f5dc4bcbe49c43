package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		kind   apperrors.Kind
		status int
	}{
		{apperrors.KindValidation, http.StatusBadRequest},
		{apperrors.KindIntegrity, http.StatusBadRequest},
		{apperrors.KindAuth, http.StatusUnauthorized},
		{apperrors.KindNotFound, http.StatusNotFound},
		{apperrors.KindConflict, http.StatusConflict},
		{apperrors.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, apperrors.StatusCode(apperrors.New(tc.kind, "boom")), string(tc.kind))
	}

	// Errors outside the taxonomy default to 500
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(errors.New("plain")))
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := apperrors.New(apperrors.KindNotFound, "book not found")
	wrapped := fmt.Errorf("while updating: %w", inner)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(wrapped))
}

func TestClientMessageHidesInternalDetailsInProduction(t *testing.T) {
	err := apperrors.Internal("failed to get books", errors.New("dial tcp: connection refused"))

	assert.Equal(t, "failed to get books", apperrors.ClientMessage(err, false))
	assert.Equal(t, "internal server error", apperrors.ClientMessage(err, true))

	// Non-internal kinds keep their message either way
	conflict := apperrors.New(apperrors.KindConflict, "genre with this name already exists")
	assert.Equal(t, conflict.Message, apperrors.ClientMessage(conflict, true))
}
