package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CasinoBot_Go/internal/cooldown"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid argument", fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgSelfTarget), http.StatusBadRequest, "invalid argument: cannot target yourself"},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusPaymentRequired, domain.ErrMsgInsufficientFunds},
		{"not found", fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgDuelNotFound), http.StatusNotFound, "not found: duel not found or expired"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, domain.ErrMsgForbidden},
		{"already resolved", domain.ErrAlreadyResolved, http.StatusConflict, domain.ErrMsgAlreadyResolved},
		{"cooldown", cooldown.ErrOnCooldown{Action: cooldown.ActionDaily, Remaining: time.Hour}, http.StatusTooManyRequests, ""},
		{"unavailable hides details", fmt.Errorf("%w: dial tcp 10.0.0.1:5432", domain.ErrUnavailable), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}
}

func TestRespondServiceError_RetryAfter(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/daily", nil)
	rec := httptest.NewRecorder()

	respondServiceError(rec, req, "Daily", cooldown.ErrOnCooldown{Action: cooldown.ActionDaily, Remaining: 90*time.Second + time.Millisecond})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "91", rec.Header().Get(HeaderRetryAfter))
	assert.Contains(t, rec.Body.String(), `"error"`)
}
