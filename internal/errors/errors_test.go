package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewError("purchase not found").Mark(ErrNotFound), http.StatusNotFound},
		{"validation", NewError("amount must be positive").Mark(ErrValidation), http.StatusBadRequest},
		{"invalid operation", NewError("bill already paid").Mark(ErrInvalidOperation), http.StatusBadRequest},
		{"conflict", NewError("already refunded").Mark(ErrConflict), http.StatusConflict},
		{"unauthenticated", NewError("missing token").Mark(ErrUnauthenticated), http.StatusUnauthorized},
		{"database", WithError(errors.New("connection reset")).Mark(ErrDatabase), http.StatusInternalServerError},
		{"unmarked", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestBuilderKeepsHintsAndMarks(t *testing.T) {
	err := NewError("refund exceeds ceiling").
		WithHint("Refund amount exceeds the refundable amount").
		WithReportableDetails(map[string]any{"refundable": "10.00"}).
		Mark(ErrValidation)

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, errors.GetAllHints(err), "Refund amount exceeds the refundable amount")
}
