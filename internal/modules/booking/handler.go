package booking

import (
	"errors"
	"net/http"
	"strconv"

	"expofloor/internal/domain"
	"expofloor/internal/pkg/holds"
	"expofloor/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/quote", h.Quote)
	rg.GET("/bookings/:id", h.GetBooking)
}

// RegisterAuthRoutes holds routes that need a user identity for the
// advisory hold keys.
func (h *Handler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/holds", h.HoldStalls)
	rg.DELETE("/holds", h.ReleaseHolds)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/exhibitions/:id/bookings", h.ListByExhibition)
	rg.POST("/bookings/:id/transition", h.Transition)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), callerID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrStallNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "One or more stalls do not exist")
		case errors.Is(err, ErrExhibitionMismatch):
			response.Error(c, http.StatusBadRequest, "EXHIBITION_MISMATCH", "Stalls must belong to the requested exhibition")
		case errors.Is(err, ErrStallUnavailable):
			response.Error(c, http.StatusConflict, "STALL_UNAVAILABLE", "One or more stalls are no longer available")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exhibition not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	priced, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrStallNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "One or more stalls do not exist")
		case errors.Is(err, ErrExhibitionMismatch):
			response.Error(c, http.StatusBadRequest, "EXHIBITION_MISMATCH", "Stalls must belong to the requested exhibition")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exhibition not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build quote")
		}
		return
	}

	response.Success(c, http.StatusOK, priced)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListByExhibition(c *gin.Context) {
	exhibitionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid exhibition ID")
		return
	}

	bookings, err := h.service.ListByExhibition(c.Request.Context(), exhibitionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) Transition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Transition(c.Request.Context(), id, domain.BookingStatus(req.Status), req.RejectionReason)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "This status change is not allowed")
		case errors.Is(err, ErrMissingRejectionReason):
			response.Error(c, http.StatusBadRequest, "MISSING_REASON", "Rejecting a booking requires a reason")
		case errors.Is(err, ErrTransitionConflict):
			response.Error(c, http.StatusConflict, "TRANSITION_CONFLICT", "Booking status changed concurrently, reload and retry")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking status")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) HoldStalls(c *gin.Context) {
	var req HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.HoldStalls(c.Request.Context(), callerID(c), req.StallIDs); err != nil {
		if errors.Is(err, holds.ErrHeld) {
			response.Error(c, http.StatusConflict, "STALL_HELD", "Another user is holding one of these stalls")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to hold stalls")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"held": req.StallIDs})
}

func (h *Handler) ReleaseHolds(c *gin.Context) {
	var req HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	h.service.ReleaseHolds(c.Request.Context(), callerID(c), req.StallIDs)
	response.Success(c, http.StatusOK, gin.H{"released": req.StallIDs})
}

func callerID(c *gin.Context) int64 {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
