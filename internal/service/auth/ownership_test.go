package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOwnership(t *testing.T) {
	t.Parallel()

	claims := &Claims{Email: "owner@example.com"}

	tests := []struct {
		name    string
		claims  *Claims
		email   string
		wantErr error
	}{
		{"matching email", claims, "owner@example.com", nil},
		{"different email", claims, "other@example.com", ErrAccessDenied},
		{"case differs", claims, "Owner@example.com", ErrAccessDenied},
		{"no claims", nil, "owner@example.com", ErrAccessDenied},
		{"empty claim email", &Claims{}, "", ErrAccessDenied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckOwnership(tc.claims, tc.email)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
