package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"hmi-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestEnvelope struct {
	Success  bool                           `json:"success"`
	Message  string                         `json:"message"`
	Request  *models.ClientRequestResponse  `json:"request"`
	Requests []models.ClientRequestResponse `json:"requests"`
}

func TestSubmitClientRequest(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := perform(router, http.MethodPost, "/api/client-requests", `{
		"name": "Bilal Ahmed",
		"email": "bilal@example.com",
		"phone": "+92 321-1111111",
		"location": "Islamabad",
		"serviceNeeds": "Post-surgery care"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body requestEnvelope
	decode(t, w, &body)

	assert.True(t, body.Success)
	assert.Equal(t, "Request submitted successfully!", body.Message)
	require.NotNil(t, body.Request)
	assert.Equal(t, "pending", body.Request.Status)
	assert.False(t, body.Request.MakeLocationPublic, "defaults to false when omitted")
}

func TestSubmitClientRequestPublicLocation(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := perform(router, http.MethodPost, "/api/client-requests", `{
		"name": "Bilal Ahmed",
		"email": "bilal@example.com",
		"phone": "+92 321-1111111",
		"location": "Islamabad",
		"makeLocationPublic": true,
		"serviceNeeds": "Post-surgery care"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body requestEnvelope
	decode(t, w, &body)
	assert.True(t, body.Request.MakeLocationPublic)
}

func TestDeleteClientRequest(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := perform(router, http.MethodPost, "/api/client-requests", `{
		"name": "Bilal Ahmed",
		"email": "bilal@example.com",
		"phone": "+92 321-1111111",
		"location": "Islamabad",
		"serviceNeeds": "Post-surgery care"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created requestEnvelope
	decode(t, w, &created)

	w = perform(router, http.MethodDelete, fmt.Sprintf("/api/client-requests/%d", created.Request.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var deleted requestEnvelope
	decode(t, w, &deleted)
	assert.Equal(t, "Request deleted successfully", deleted.Message)

	w = perform(router, http.MethodDelete, "/api/client-requests/999999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
