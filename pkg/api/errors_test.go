package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibemonitor/rca/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", services.NewValidationError("title", "required"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("get turn"), services.ErrNotFound), http.StatusNotFound},
		{"session busy", services.ErrSessionBusy, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"quota exceeded", services.ErrQuotaExceeded, http.StatusTooManyRequests},
		{"message blocked", services.ErrMessageBlocked, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.code, he.Code)
		})
	}
}
