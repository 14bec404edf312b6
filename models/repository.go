package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Defaults written to the contact-info row when none exists yet.
const (
	DefaultContactEmail   = "info@homemedcareintl.com"
	DefaultContactPhone   = "+92 333-1234567"
	DefaultContactAddress = "Office 1, ABC Plaza, Murree Road, Rawalpindi, Pakistan"
)

type Repository interface {
	CreateApplication(app *ProfessionalApplication) error
	ListApplications() ([]ProfessionalApplication, error)
	DeleteApplication(id uint) error

	CreateClientRequest(req *ClientRequest) error
	ListClientRequests() ([]ClientRequest, error)
	DeleteClientRequest(id uint) error

	GetOrCreateContactInfo() (*ContactInfo, error)
	UpdateContactInfo(email, phone, address *string) (*ContactInfo, error)

	CreateReview(review *Review) error
	ListReviews() ([]Review, error)
	ListReviewsByProfessional(name string) ([]Review, error)

	Close() error
}

type GormRepository struct {
	db *gorm.DB
}

// NewRepository wraps an open gorm connection and migrates the schema.
// Tests pass an in-memory SQLite handle here; production goes through
// NewPostgresRepository.
func NewRepository(db *gorm.DB) (*GormRepository, error) {
	if err := db.AutoMigrate(
		&ProfessionalApplication{},
		&ClientRequest{},
		&ContactInfo{},
		&Review{},
	); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return &GormRepository{db: db}, nil
}

func NewPostgresRepository(dsn string) (*GormRepository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewRepository(db)
}

func (r *GormRepository) CreateApplication(app *ProfessionalApplication) error {
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = time.Now().UTC()
	}
	if app.Status == "" {
		app.Status = StatusPending
	}
	return r.db.Create(app).Error
}

func (r *GormRepository) ListApplications() ([]ProfessionalApplication, error) {
	var apps []ProfessionalApplication
	if err := r.db.Order("submitted_at DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *GormRepository) DeleteApplication(id uint) error {
	return r.deleteByID(&ProfessionalApplication{}, id)
}

func (r *GormRepository) CreateClientRequest(req *ClientRequest) error {
	if req.SubmittedAt.IsZero() {
		req.SubmittedAt = time.Now().UTC()
	}
	if req.Status == "" {
		req.Status = StatusPending
	}
	return r.db.Create(req).Error
}

func (r *GormRepository) ListClientRequests() ([]ClientRequest, error) {
	var reqs []ClientRequest
	if err := r.db.Order("submitted_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *GormRepository) DeleteClientRequest(id uint) error {
	return r.deleteByID(&ClientRequest{}, id)
}

// GetOrCreateContactInfo returns the singleton contact row, creating it
// with the fixed defaults on first read. The read and the conditional
// insert run in one transaction so concurrent first reads cannot create
// two rows that both get used.
func (r *GormRepository) GetOrCreateContactInfo() (*ContactInfo, error) {
	var contact ContactInfo
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&contact).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		contact = ContactInfo{
			Email:     ptr(DefaultContactEmail),
			Phone:     ptr(DefaultContactPhone),
			Address:   ptr(DefaultContactAddress),
			UpdatedAt: time.Now().UTC(),
		}
		return tx.Create(&contact).Error
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContactInfo applies a partial update: nil arguments leave the
// stored value untouched. A missing row is created from the provided
// fields alone, so an incomplete first PUT fails on the NOT NULL
// constraints just like any other incomplete write.
func (r *GormRepository) UpdateContactInfo(email, phone, address *string) (*ContactInfo, error) {
	var contact ContactInfo
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&contact).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if email != nil {
			contact.Email = email
		}
		if phone != nil {
			contact.Phone = phone
		}
		if address != nil {
			contact.Address = address
		}
		contact.UpdatedAt = time.Now().UTC()
		return tx.Save(&contact).Error
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *GormRepository) CreateReview(review *Review) error {
	if review.SubmittedAt.IsZero() {
		review.SubmittedAt = time.Now().UTC()
	}
	return r.db.Create(review).Error
}

func (r *GormRepository) ListReviews() ([]Review, error) {
	var reviews []Review
	if err := r.db.Order("submitted_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListReviewsByProfessional matches the stored name exactly, including
// case; there is no normalization.
func (r *GormRepository) ListReviewsByProfessional(name string) ([]Review, error) {
	var reviews []Review
	err := r.db.
		Where("professional_name = ?", name).
		Order("submitted_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *GormRepository) deleteByID(model interface{}, id uint) error {
	res := r.db.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func ptr(s string) *string { return &s }
