package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hmi-backend/models"
	"hmi-backend/monitoring"
	"hmi-backend/utils"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	repo  models.Repository
	kafka utils.KafkaProducer
}

func NewApplicationHandler(repo models.Repository, kafka utils.KafkaProducer) *ApplicationHandler {
	return &ApplicationHandler{repo: repo, kafka: kafka}
}

// All fields are optional at the handler; an absent required field is
// stored as NULL and rejected by the store, surfacing as a failure
// envelope rather than a validation error.
type applicationRequest struct {
	FullName  *string `json:"fullName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	Specialty *string `json:"specialty"`
	Gender    *string `json:"gender"`
	CVDetails *string `json:"cvDetails"`
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, badRequestBody())
		return
	}

	app := &models.ProfessionalApplication{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Location:  req.Location,
		Specialty: req.Specialty,
		Gender:    req.Gender,
		CVDetails: req.CVDetails,
	}

	if err := h.repo.CreateApplication(app); err != nil {
		log.Printf("Failed to create application: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error submitting application",
		})
		return
	}

	monitoring.SubmissionsTotal.WithLabelValues("application").Inc()
	resp := app.ToResponse()

	if h.kafka != nil {
		go publishEvent(h.kafka, "application_submitted", app.ID, resp)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted successfully!",
		"application": resp,
	})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.repo.ListApplications()
	if err != nil {
		log.Printf("Failed to list applications: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching applications",
		})
		return
	}

	responses := make([]models.ProfessionalApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = apps[i].ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": responses,
	})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, notFoundBody())
		return
	}

	if err := h.repo.DeleteApplication(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, notFoundBody())
			return
		}
		log.Printf("Failed to delete application %d: %v", id, err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting application",
		})
		return
	}

	if h.kafka != nil {
		go publishEvent(h.kafka, "application_deleted", id, nil)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application deleted successfully",
	})
}

// parseID mirrors a typed route segment: anything that is not a positive
// integer behaves like an unmatched route.
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
