package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staymarket-dev/staymarket/internal/catalog"
	"github.com/staymarket-dev/staymarket/internal/store"
)

type Handler struct {
	store  *store.Store
	cache  *catalog.Cache
	domain string
}

func New(s *store.Store, c *catalog.Cache, domain string) *Handler {
	return &Handler{store: s, cache: c, domain: domain}
}

// respondError maps store errors to statuses. Requests fail independently;
// nothing here is fatal to the process.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidDateRange):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dates! Check-out must be after check-in"})
	case errors.Is(err, store.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, store.ErrPermissionDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to manage this listing"})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrDuplicateCredential):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
	default:
		log.Printf("Storage error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (h *Handler) setSessionCookie(ctx *gin.Context, token string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   h.domain,
		MaxAge:   60 * 60 * 24 * 7,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) clearSessionCookie(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Domain:   h.domain,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
