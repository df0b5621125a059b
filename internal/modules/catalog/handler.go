package catalog

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/exhibitions", h.ListExhibitions)
	rg.GET("/exhibitions/:id", h.GetExhibition)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/exhibitions", h.CreateExhibition)
	rg.PATCH("/exhibitions/:id", h.UpdateExhibition)
	rg.PUT("/exhibitions/:id/rate-card/stall-rates", h.UpdateStallRates)
	rg.PUT("/exhibitions/:id/rate-card/taxes", h.UpdateTaxes)
	rg.PUT("/exhibitions/:id/rate-card/discounts", h.UpdateDiscounts)
	rg.PUT("/exhibitions/:id/rate-card/amenities", h.UpdateAmenities)
}

func (h *Handler) CreateExhibition(c *gin.Context) {
	var req CreateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ex, err := h.service.CreateExhibition(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBounds):
			response.Error(c, http.StatusBadRequest, "INVALID_BOUNDS", "Exhibition width and height must be positive")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create exhibition")
		}
		return
	}

	response.Success(c, http.StatusCreated, ex)
}

func (h *Handler) ListExhibitions(c *gin.Context) {
	exhibitions, err := h.service.ListExhibitions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list exhibitions")
		return
	}
	response.Success(c, http.StatusOK, exhibitions)
}

func (h *Handler) GetExhibition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid exhibition ID")
		return
	}

	ex, err := h.service.GetExhibition(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exhibition not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load exhibition")
		return
	}

	response.Success(c, http.StatusOK, ex)
}

func (h *Handler) UpdateExhibition(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid exhibition ID")
		return
	}

	var req UpdateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ex, err := h.service.UpdateExhibition(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exhibition not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update exhibition")
		return
	}

	response.Success(c, http.StatusOK, ex)
}

func (h *Handler) UpdateStallRates(c *gin.Context) {
	id, ok := h.exhibitionID(c)
	if !ok {
		return
	}
	var req UpdateStallRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	card, err := h.service.UpdateStallRates(c.Request.Context(), id, req)
	h.respondRateCard(c, card, err)
}

func (h *Handler) UpdateTaxes(c *gin.Context) {
	id, ok := h.exhibitionID(c)
	if !ok {
		return
	}
	var req UpdateTaxesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	card, err := h.service.UpdateTaxes(c.Request.Context(), id, req)
	h.respondRateCard(c, card, err)
}

func (h *Handler) UpdateDiscounts(c *gin.Context) {
	id, ok := h.exhibitionID(c)
	if !ok {
		return
	}
	var req UpdateDiscountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	card, err := h.service.UpdateDiscounts(c.Request.Context(), id, req)
	h.respondRateCard(c, card, err)
}

func (h *Handler) UpdateAmenities(c *gin.Context) {
	id, ok := h.exhibitionID(c)
	if !ok {
		return
	}
	var req UpdateAmenitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	card, err := h.service.UpdateAmenities(c.Request.Context(), id, req)
	h.respondRateCard(c, card, err)
}

func (h *Handler) exhibitionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid exhibition ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondRateCard(c *gin.Context, card any, err error) {
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exhibition not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update rate card")
		}
		return
	}
	response.Success(c, http.StatusOK, card)
}
