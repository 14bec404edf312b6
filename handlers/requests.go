package handlers

import (
	"errors"
	"log"
	"net/http"

	"hmi-backend/models"
	"hmi-backend/monitoring"
	"hmi-backend/utils"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	repo  models.Repository
	kafka utils.KafkaProducer
}

func NewRequestHandler(repo models.Repository, kafka utils.KafkaProducer) *RequestHandler {
	return &RequestHandler{repo: repo, kafka: kafka}
}

type clientRequestBody struct {
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	Location           *string `json:"location"`
	MakeLocationPublic *bool   `json:"makeLocationPublic"`
	ServiceNeeds       *string `json:"serviceNeeds"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req clientRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, badRequestBody())
		return
	}

	request := &models.ClientRequest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		ServiceNeeds: req.ServiceNeeds,
	}
	if req.MakeLocationPublic != nil {
		request.MakeLocationPublic = *req.MakeLocationPublic
	}

	if err := h.repo.CreateClientRequest(request); err != nil {
		log.Printf("Failed to create client request: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error submitting request",
		})
		return
	}

	monitoring.SubmissionsTotal.WithLabelValues("request").Inc()
	resp := request.ToResponse()

	if h.kafka != nil {
		go publishEvent(h.kafka, "request_submitted", request.ID, resp)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Request submitted successfully!",
		"request": resp,
	})
}

func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.repo.ListClientRequests()
	if err != nil {
		log.Printf("Failed to list client requests: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching requests",
		})
		return
	}

	responses := make([]models.ClientRequestResponse, len(requests))
	for i := range requests {
		responses[i] = requests[i].ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"requests": responses,
	})
}

func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, notFoundBody())
		return
	}

	if err := h.repo.DeleteClientRequest(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, notFoundBody())
			return
		}
		log.Printf("Failed to delete client request %d: %v", id, err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting request",
		})
		return
	}

	if h.kafka != nil {
		go publishEvent(h.kafka, "request_deleted", id, nil)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Request deleted successfully",
	})
}
