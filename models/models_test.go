package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplicationToResponse(t *testing.T) {
	submitted := time.Date(2024, 6, 15, 10, 30, 0, 123456000, time.UTC)
	app := ProfessionalApplication{
		ID:          7,
		FullName:    ptr("Ayesha Khan"),
		Email:       ptr("ayesha@example.com"),
		Phone:       ptr("+92 300-0000000"),
		Location:    ptr("Rawalpindi"),
		Specialty:   ptr("Elderly Care"),
		CVDetails:   ptr("10 years of home nursing"),
		SubmittedAt: submitted,
		Status:      StatusPending,
	}

	resp := app.ToResponse()

	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, "Ayesha Khan", *resp.FullName)
	assert.Equal(t, "2024-06-15T10:30:00.123456Z", resp.SubmittedAt)
	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.ProfilePicture)
	assert.Nil(t, resp.Gender)
}

func TestClientRequestToResponse(t *testing.T) {
	req := ClientRequest{
		ID:           3,
		Name:         ptr("Bilal Ahmed"),
		Email:        ptr("bilal@example.com"),
		Phone:        ptr("+92 321-1111111"),
		Location:     ptr("Islamabad"),
		ServiceNeeds: ptr("Post-surgery care"),
		SubmittedAt:  time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC),
		Status:       StatusPending,
	}

	resp := req.ToResponse()

	assert.Equal(t, "2024-06-15T08:00:00Z", resp.SubmittedAt)
	assert.False(t, resp.MakeLocationPublic)
	assert.Equal(t, "pending", resp.Status)
}

// Reviews serialize their timestamp date-only under the key "date".
func TestReviewToResponseDateOnly(t *testing.T) {
	rating := 5
	review := Review{
		ID:               1,
		ProfessionalName: ptr("Ayesha Khan"),
		ReviewerName:     ptr("Sana"),
		Rating:           &rating,
		Comment:          ptr("Very professional"),
		SubmittedAt:      time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC),
	}

	resp := review.ToResponse()

	assert.Equal(t, "2024-06-15", resp.Date)
	assert.Equal(t, 5, *resp.Rating)
}

func TestContactInfoToResponse(t *testing.T) {
	contact := ContactInfo{
		ID:        1,
		Email:     ptr(DefaultContactEmail),
		Phone:     ptr(DefaultContactPhone),
		Address:   ptr(DefaultContactAddress),
		UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	resp := contact.ToResponse()

	assert.Equal(t, DefaultContactEmail, *resp.Email)
	assert.Equal(t, "2024-01-02T03:04:05Z", resp.UpdatedAt)
}
