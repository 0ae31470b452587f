package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"service unavailable", ServiceUnavailable("db down", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"validation", Validation("email", "geçersiz"), http.StatusBadRequest},
		{"not found", NotFound("yok"), http.StatusNotFound},
		{"internal", Internal("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestIs_ThroughWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("listing: %w", ServiceUnavailable("store unreachable", cause))

	assert.True(t, Is(err, CodeServiceUnavailable))
	assert.False(t, Is(err, CodeNotFound))
	assert.ErrorIs(t, err, cause)
	assert.False(t, Is(errors.New("plain"), CodeInternal))
}

func TestFieldOf(t *testing.T) {
	assert.Equal(t, "phone", FieldOf(Validation("phone", "telefon zorunlu")))
	assert.Equal(t, "", FieldOf(NotFound("profil yok")))
	assert.Equal(t, "", FieldOf(nil))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR[name]: isim zorunlu", Validation("name", "isim zorunlu").Error())
	assert.Equal(t, "NOT_FOUND: profil yok", NotFound("profil yok").Error())
}
