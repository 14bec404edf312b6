package handlers

import (
	"log"
	"net/http"

	"hmi-backend/models"
	"hmi-backend/monitoring"
	"hmi-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	repo  models.Repository
	kafka utils.KafkaProducer
}

func NewReviewHandler(repo models.Repository, kafka utils.KafkaProducer) *ReviewHandler {
	return &ReviewHandler{repo: repo, kafka: kafka}
}

// Rating is stored as submitted; the API has never rejected out-of-range
// values and the admin console tolerates them.
type reviewRequest struct {
	ProfessionalName *string `json:"professionalName"`
	ReviewerName     *string `json:"reviewerName"`
	Rating           *int    `json:"rating"`
	Comment          *string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, badRequestBody())
		return
	}

	review := &models.Review{
		ProfessionalName: req.ProfessionalName,
		ReviewerName:     req.ReviewerName,
		Rating:           req.Rating,
		Comment:          req.Comment,
	}

	if err := h.repo.CreateReview(review); err != nil {
		log.Printf("Failed to create review: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error submitting review",
		})
		return
	}

	monitoring.SubmissionsTotal.WithLabelValues("review").Inc()
	resp := review.ToResponse()

	if h.kafka != nil {
		go publishEvent(h.kafka, "review_submitted", review.ID, resp)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review submitted successfully",
		"review":  resp,
	})
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.repo.ListReviews()
	if err != nil {
		log.Printf("Failed to list reviews: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": toReviewResponses(reviews),
	})
}

func (h *ReviewHandler) ListByProfessional(c *gin.Context) {
	name := c.Param("professionalName")

	reviews, err := h.repo.ListReviewsByProfessional(name)
	if err != nil {
		log.Printf("Failed to list reviews for %q: %v", name, err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": toReviewResponses(reviews),
	})
}

func toReviewResponses(reviews []models.Review) []models.ReviewResponse {
	responses := make([]models.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = reviews[i].ToResponse()
	}
	return responses
}
