package models

import "time"

// Application and request statuses. The admin console filters on these
// strings, so they are part of the API contract.
const (
	StatusPending    = "pending"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Client-supplied fields are pointers on purpose: the API accepts a
// submission with missing fields and lets the store's NOT NULL constraints
// reject it, so a nil must survive binding all the way to the insert.

type ProfessionalApplication struct {
	ID             uint      `gorm:"primaryKey"`
	FullName       *string   `gorm:"size:100;not null"`
	Email          *string   `gorm:"size:120;not null"`
	Phone          *string   `gorm:"size:20;not null"`
	Location       *string   `gorm:"size:100;not null"`
	Specialty      *string   `gorm:"size:100;not null"`
	ProfilePicture *string   `gorm:"size:255"`
	Gender         *string   `gorm:"size:10"`
	CVDetails      *string   `gorm:"column:cv_details;type:text;not null"`
	SubmittedAt    time.Time `gorm:"not null"`
	Status         string    `gorm:"size:20;not null;default:pending"`
}

type ClientRequest struct {
	ID                 uint      `gorm:"primaryKey"`
	Name               *string   `gorm:"size:100;not null"`
	Email              *string   `gorm:"size:120;not null"`
	Phone              *string   `gorm:"size:20;not null"`
	Location           *string   `gorm:"size:100;not null"`
	MakeLocationPublic bool      `gorm:"not null;default:false"`
	ServiceNeeds       *string   `gorm:"type:text;not null"`
	SubmittedAt        time.Time `gorm:"not null"`
	Status             string    `gorm:"size:20;not null;default:pending"`
}

// ContactInfo is a singleton row: the repository only ever reads and writes
// the first record.
type ContactInfo struct {
	ID        uint    `gorm:"primaryKey"`
	Email     *string `gorm:"size:120;not null"`
	Phone     *string `gorm:"size:20;not null"`
	Address   *string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// Review references a professional by display name only; there is no
// foreign key into professional applications.
type Review struct {
	ID               uint    `gorm:"primaryKey"`
	ProfessionalName *string `gorm:"size:100;not null"`
	ReviewerName     *string `gorm:"size:100;not null"`
	Rating           *int    `gorm:"not null"`
	Comment          *string `gorm:"type:text;not null"`
	SubmittedAt      time.Time
}

// Response shapes: the external representation uses camelCase keys and
// string timestamps, decoupled from the column names above.

type ProfessionalApplicationResponse struct {
	ID             uint    `json:"id"`
	FullName       *string `json:"fullName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Location       *string `json:"location"`
	Specialty      *string `json:"specialty"`
	ProfilePicture *string `json:"profilePicture"`
	Gender         *string `json:"gender"`
	CVDetails      *string `json:"cvDetails"`
	SubmittedAt    string  `json:"submittedAt"`
	Status         string  `json:"status"`
}

type ClientRequestResponse struct {
	ID                 uint    `json:"id"`
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	Location           *string `json:"location"`
	MakeLocationPublic bool    `json:"makeLocationPublic"`
	ServiceNeeds       *string `json:"serviceNeeds"`
	SubmittedAt        string  `json:"submittedAt"`
	Status             string  `json:"status"`
}

type ContactInfoResponse struct {
	ID        uint    `json:"id"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	UpdatedAt string  `json:"updatedAt"`
}

// ReviewResponse serializes the submission timestamp date-only under the
// key "date"; the public site renders it verbatim.
type ReviewResponse struct {
	ID               uint    `json:"id"`
	ProfessionalName *string `json:"professionalName"`
	ReviewerName     *string `json:"reviewerName"`
	Rating           *int    `json:"rating"`
	Comment          *string `json:"comment"`
	Date             string  `json:"date"`
}

func (a *ProfessionalApplication) ToResponse() ProfessionalApplicationResponse {
	return ProfessionalApplicationResponse{
		ID:             a.ID,
		FullName:       a.FullName,
		Email:          a.Email,
		Phone:          a.Phone,
		Location:       a.Location,
		Specialty:      a.Specialty,
		ProfilePicture: a.ProfilePicture,
		Gender:         a.Gender,
		CVDetails:      a.CVDetails,
		SubmittedAt:    a.SubmittedAt.UTC().Format(time.RFC3339Nano),
		Status:         a.Status,
	}
}

func (r *ClientRequest) ToResponse() ClientRequestResponse {
	return ClientRequestResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		Location:           r.Location,
		MakeLocationPublic: r.MakeLocationPublic,
		ServiceNeeds:       r.ServiceNeeds,
		SubmittedAt:        r.SubmittedAt.UTC().Format(time.RFC3339Nano),
		Status:             r.Status,
	}
}

func (c *ContactInfo) ToResponse() ContactInfoResponse {
	return ContactInfoResponse{
		ID:        c.ID,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:               r.ID,
		ProfessionalName: r.ProfessionalName,
		ReviewerName:     r.ReviewerName,
		Rating:           r.Rating,
		Comment:          r.Comment,
		Date:             r.SubmittedAt.UTC().Format("2006-01-02"),
	}
}
