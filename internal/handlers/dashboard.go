package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staymarket-dev/staymarket/internal/store"
	"github.com/staymarket-dev/staymarket/internal/utils"
)

type DashboardResponse struct {
	Role         string                 `json:"role"`
	Bookings     []store.BookingSummary `json:"bookings"`
	Listings     []PropertyResponse     `json:"listings"`
	TotalRevenue float64                `json:"total_revenue"`
}

func (h *Handler) Dashboard(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	dashboard, err := h.store.BuildDashboard(currentUser.ID, currentUser.Role)

	if err != nil {
		respondError(ctx, err)
		return
	}

	listings := make([]PropertyResponse, 0, len(dashboard.Listings))

	for _, listing := range dashboard.Listings {
		listings = append(listings, toPropertyResponse(listing))
	}

	ctx.JSON(http.StatusOK, DashboardResponse{
		Role:         currentUser.Role,
		Bookings:     dashboard.Bookings,
		Listings:     listings,
		TotalRevenue: dashboard.TotalRevenue,
	})
}
