package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "habitly/internal/errors"
	"habitly/internal/model"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := &model.User{ID: 1, EmailAddress: "user@x.com"}

	token, err := svc.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@x.com", subject)
}

func TestJWTService_Parse_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	user := &model.User{ID: 1, EmailAddress: "user@x.com"}

	token, err := svc.Issue(user)
	assert.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestJWTService_Parse_Invalid(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := &model.User{ID: 1, EmailAddress: "user@x.com"}

	token, err := svc.Issue(user)
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"tampered signature", token + "x"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		})
	}
}

func TestJWTService_Parse_WrongKey(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Issue(&model.User{EmailAddress: "user@x.com"})
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
