package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/memograph/memograph/pkg/auth"
	"github.com/memograph/memograph/pkg/services"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", services.NewValidationError("name", "required"), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: bad payload", services.ErrInvalidInput), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading row: %w", services.ErrNotFound), http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"conflict", fmt.Errorf("%w: already decided", services.ErrConflict), http.StatusConflict},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account locked", auth.ErrAccountLocked, http.StatusForbidden},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			respondError(c, tt.err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestRespondErrorHidesInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondError(c, errors.New("pq: connection refused at 10.0.0.5"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
