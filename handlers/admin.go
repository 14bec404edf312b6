package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CredentialVerifier checks an admin credential pair and, on success,
// issues a bearer token. Deployments swap in a real implementation
// without touching the handler.
type CredentialVerifier interface {
	Verify(username, password string) (token string, ok bool)
}

// StaticVerifier is the development stub: one fixed pair, one fixed
// placeholder token. Not an authentication mechanism.
type StaticVerifier struct {
	Username string
	Password string
	Token    string
}

func NewStaticVerifier() *StaticVerifier {
	return &StaticVerifier{
		Username: "admin",
		Password: "hmi2024",
		Token:    "admin_token_123",
	}
}

func (v *StaticVerifier) Verify(username, password string) (string, bool) {
	if username == v.Username && password == v.Password {
		return v.Token, true
	}
	return "", false
}

type AdminHandler struct {
	verifier CredentialVerifier
}

func NewAdminHandler(verifier CredentialVerifier) *AdminHandler {
	return &AdminHandler{verifier: verifier}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, badRequestBody())
		return
	}

	token, ok := h.verifier.Verify(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}
