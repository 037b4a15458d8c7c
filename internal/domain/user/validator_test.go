package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValidator_ValidateLogin(t *testing.T) {
	v := NewPasswordValidator()

	tests := []struct {
		name    string
		login   string
		wantErr bool
	}{
		{name: "valid login", login: "alice"},
		{name: "valid with separators", login: "alice.b_c-d"},
		{name: "too short", login: "ab", wantErr: true},
		{name: "too long", login: "abcdefghijklmnopqrstuvwxyz0123456789", wantErr: true},
		{name: "forbidden characters", login: "alice!", wantErr: true},
		{name: "spaces", login: "al ice", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogin(tt.login)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordValidator_ValidatePassword(t *testing.T) {
	v := NewPasswordValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Sup3rsecret"},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "missing uppercase", password: "sup3rsecret", wantErr: true},
		{name: "missing lowercase", password: "SUP3RSECRET", wantErr: true},
		{name: "missing digit", password: "Supersecret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "empty email allowed", email: ""},
		{name: "valid email", email: "alice@example.com"},
		{name: "missing at", email: "alice.example.com", wantErr: true},
		{name: "leading at", email: "@example.com", wantErr: true},
		{name: "trailing at", email: "alice@", wantErr: true},
		{name: "whitespace", email: "alice @example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
