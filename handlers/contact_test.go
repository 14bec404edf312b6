package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hmi-backend/models"
	"hmi-backend/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactEnvelope struct {
	Success     bool                        `json:"success"`
	Message     string                      `json:"message"`
	ContactInfo *models.ContactInfoResponse `json:"contactInfo"`
}

func TestGetContactInfoLazyCreate(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := perform(router, http.MethodGet, "/api/contact-info", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body contactEnvelope
	decode(t, w, &body)

	require.NotNil(t, body.ContactInfo)
	assert.Equal(t, models.DefaultContactEmail, *body.ContactInfo.Email)
	assert.Equal(t, models.DefaultContactPhone, *body.ContactInfo.Phone)
	assert.Equal(t, models.DefaultContactAddress, *body.ContactInfo.Address)

	// A second read returns the same row, not a new one.
	w = perform(router, http.MethodGet, "/api/contact-info", "")
	var second contactEnvelope
	decode(t, w, &second)
	assert.Equal(t, body.ContactInfo.ID, second.ContactInfo.ID)
}

func TestUpdateContactInfoPartial(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := perform(router, http.MethodGet, "/api/contact-info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var before contactEnvelope
	decode(t, w, &before)

	time.Sleep(10 * time.Millisecond)

	w = perform(router, http.MethodPut, "/api/contact-info", `{"phone": "+92 300-9999999"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var after contactEnvelope
	decode(t, w, &after)

	assert.Equal(t, "Contact information updated successfully", after.Message)
	assert.Equal(t, "+92 300-9999999", *after.ContactInfo.Phone)
	assert.Equal(t, models.DefaultContactEmail, *after.ContactInfo.Email)
	assert.Equal(t, models.DefaultContactAddress, *after.ContactInfo.Address)

	prev, err := time.Parse(time.RFC3339Nano, before.ContactInfo.UpdatedAt)
	require.NoError(t, err)
	next, err := time.Parse(time.RFC3339Nano, after.ContactInfo.UpdatedAt)
	require.NoError(t, err)
	assert.True(t, next.After(prev), "updatedAt must move forward on update")
}

func TestContactInfoCaching(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := utils.NewRedisClient(mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	router, _ := newTestRouter(t, cache)

	// First read fills the cache.
	w := perform(router, http.MethodGet, "/api/contact-info", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, mr.Exists("contact_info"))

	// An update refreshes the cached serialization.
	w = perform(router, http.MethodPut, "/api/contact-info", `{"phone": "+92 300-9999999"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cached, err := mr.Get("contact_info")
	require.NoError(t, err)
	var resp models.ContactInfoResponse
	require.NoError(t, json.Unmarshal([]byte(cached), &resp))
	assert.Equal(t, "+92 300-9999999", *resp.Phone)
}

func TestContactInfoServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache, err := utils.NewRedisClient(mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })

	router, _ := newTestRouter(t, cache)

	seeded := models.ContactInfoResponse{
		ID:        42,
		Email:     strPtr("cached@example.com"),
		Phone:     strPtr("000"),
		Address:   strPtr("cached address"),
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
	payload, err := json.Marshal(seeded)
	require.NoError(t, err)
	require.NoError(t, mr.Set("contact_info", string(payload)))

	w := perform(router, http.MethodGet, "/api/contact-info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body contactEnvelope
	decode(t, w, &body)
	assert.Equal(t, uint(42), body.ContactInfo.ID)
	assert.Equal(t, "cached@example.com", *body.ContactInfo.Email)
}
