package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hmi-backend/models"
	"hmi-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	contactCacheKey = "contact_info"
	contactCacheTTL = 24 * time.Hour
)

type ContactHandler struct {
	repo  models.Repository
	cache utils.RedisClient
	kafka utils.KafkaProducer
}

func NewContactHandler(repo models.Repository, cache utils.RedisClient, kafka utils.KafkaProducer) *ContactHandler {
	return &ContactHandler{repo: repo, cache: cache, kafka: kafka}
}

type contactUpdateRequest struct {
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *ContactHandler) Get(c *gin.Context) {
	if h.cache != nil {
		if cached, err := h.cache.GetFromCache(c.Request.Context(), contactCacheKey); err == nil {
			var resp models.ContactInfoResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				c.JSON(http.StatusOK, gin.H{
					"success":     true,
					"contactInfo": resp,
				})
				return
			}
		}
	}

	contact, err := h.repo.GetOrCreateContactInfo()
	if err != nil {
		log.Printf("Failed to fetch contact info: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching contact info",
		})
		return
	}

	resp := contact.ToResponse()
	h.cacheResponse(c, resp)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"contactInfo": resp,
	})
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req contactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, badRequestBody())
		return
	}

	contact, err := h.repo.UpdateContactInfo(req.Email, req.Phone, req.Address)
	if err != nil {
		log.Printf("Failed to update contact info: %v", err)
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating contact info",
		})
		return
	}

	resp := contact.ToResponse()
	h.cacheResponse(c, resp)

	if h.kafka != nil {
		go publishEvent(h.kafka, "contact_info_updated", contact.ID, resp)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Contact information updated successfully",
		"contactInfo": resp,
	})
}

// cacheResponse refreshes the cached serialization; a cache failure is
// logged and otherwise ignored, reads fall through to the store.
func (h *ContactHandler) cacheResponse(c *gin.Context, resp models.ContactInfoResponse) {
	if h.cache == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Failed to marshal contact info for cache: %v", err)
		return
	}
	if err := h.cache.SetToCache(c.Request.Context(), contactCacheKey, string(payload), contactCacheTTL); err != nil {
		log.Printf("Failed to cache contact info: %v", err)
	}
}
