package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func TestAdminLogin(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := perform(router, http.MethodPost, "/api/admin/login",
		`{"username": "admin", "password": "hmi2024"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body loginResponse
	decode(t, w, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Login successful", body.Message)
	assert.NotEmpty(t, body.Token)
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	cases := []string{
		`{"username": "admin", "password": "wrong"}`,
		`{"username": "root", "password": "hmi2024"}`,
		`{"username": "", "password": ""}`,
		`{}`,
	}
	for _, body := range cases {
		w := perform(router, http.MethodPost, "/api/admin/login", body)
		require.Equal(t, http.StatusUnauthorized, w.Code, "body: %s", body)

		var resp loginResponse
		decode(t, w, &resp)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid credentials", resp.Message)
		assert.Empty(t, resp.Token)
	}
}

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier()

	token, ok := v.Verify("admin", "hmi2024")
	assert.True(t, ok)
	assert.Equal(t, "admin_token_123", token)

	_, ok = v.Verify("admin", "HMI2024")
	assert.False(t, ok)
}
