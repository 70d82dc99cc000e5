package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/staymarket-dev/staymarket/internal/models"
	"github.com/staymarket-dev/staymarket/internal/store"
	"github.com/staymarket-dev/staymarket/internal/utils"
)

type PropertyRequest struct {
	Title         string  `json:"title" binding:"required"`
	City          string  `json:"city" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"gte=0"`
	NumBedrooms   int     `json:"num_bedrooms" binding:"gte=0"`
	ImageURL      string  `json:"image_url" binding:"required"`
	Description   string  `json:"description" binding:"required"`
}

type PropertyResponse struct {
	ID            uint    `json:"id"`
	OwnerID       uint    `json:"owner_id"`
	Title         string  `json:"title"`
	City          string  `json:"city"`
	PricePerNight float64 `json:"price_per_night"`
	NumBedrooms   int     `json:"num_bedrooms"`
	ImageURL      string  `json:"image_url"`
	Description   string  `json:"description"`
}

func toPropertyResponse(p models.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID,
		OwnerID:       p.OwnerID,
		Title:         p.Title,
		City:          p.City,
		PricePerNight: p.PricePerNight,
		NumBedrooms:   p.NumBedrooms,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
	}
}

func (h *Handler) ListProperties(ctx *gin.Context) {
	city := ctx.Query("city")

	properties, hit := h.cache.GetList(city)

	if !hit {
		var err error
		properties, err = h.store.ListProperties(city)

		if err != nil {
			respondError(ctx, err)
			return
		}

		h.cache.SetList(city, properties)
	}

	response := make([]PropertyResponse, 0, len(properties))

	for _, property := range properties {
		response = append(response, toPropertyResponse(property))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) GetProperty(ctx *gin.Context) {
	id, err := parseID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	property, hit := h.cache.GetDetail(id)

	if !hit {
		property, err = h.store.GetProperty(id)

		if err != nil {
			respondError(ctx, err)
			return
		}

		h.cache.SetDetail(property)
	}

	ctx.JSON(http.StatusOK, toPropertyResponse(*property))
}

func (h *Handler) CreateProperty(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req PropertyRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	property, err := h.store.CreateProperty(currentUser.ID, store.PropertyInput{
		Title:         req.Title,
		City:          req.City,
		PricePerNight: req.PricePerNight,
		NumBedrooms:   req.NumBedrooms,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.cache.Flush()

	ctx.JSON(http.StatusCreated, toPropertyResponse(*property))
}

// EditProperty serves the listing for the edit form, owner-gated like the
// update it precedes.
func (h *Handler) EditProperty(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := parseID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	property, err := h.store.OwnedProperty(id, currentUser.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPropertyResponse(*property))
}

func (h *Handler) UpdateProperty(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := parseID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	var req PropertyRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	property, err := h.store.UpdateProperty(id, currentUser.ID, store.PropertyInput{
		Title:         req.Title,
		City:          req.City,
		PricePerNight: req.PricePerNight,
		NumBedrooms:   req.NumBedrooms,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	h.cache.Flush()

	ctx.JSON(http.StatusOK, toPropertyResponse(*property))
}

func (h *Handler) DeleteProperty(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := parseID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	if err := h.store.DeleteProperty(id, currentUser.ID); err != nil {
		respondError(ctx, err)
		return
	}

	h.cache.Flush()

	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
