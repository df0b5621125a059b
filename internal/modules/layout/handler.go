package layout

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

// RegisterRoutes wires the public floor views; admin holds the mutating
// endpoints behind the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/exhibitions/:id/halls", h.ListHalls)
	rg.GET("/halls/:id/floor", h.GetFloor)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/halls", h.CreateHall)
	rg.POST("/halls/:id/stalls", h.CreateStall)
	rg.POST("/halls/:id/fixtures", h.CreateFixture)
	rg.PATCH("/stalls/:id", h.UpdateStall)
	rg.DELETE("/stalls/:id", h.DeleteStall)
}

func (h *Handler) CreateHall(c *gin.Context) {
	var req CreateHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	hall, err := h.service.CreateHall(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidGeometry):
			response.Error(c, http.StatusBadRequest, "INVALID_GEOMETRY", "Hall does not fit inside the exhibition bounds")
		case errors.Is(err, ErrDuplicateHallName):
			response.Error(c, http.StatusConflict, "DUPLICATE_NAME", "A hall with this name already exists in the exhibition")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Exhibition not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create hall")
		}
		return
	}

	response.Success(c, http.StatusCreated, hall)
}

func (h *Handler) ListHalls(c *gin.Context) {
	exhibitionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid exhibition ID")
		return
	}

	halls, err := h.service.ListHalls(c.Request.Context(), exhibitionID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list halls")
		return
	}

	response.Success(c, http.StatusOK, halls)
}

func (h *Handler) GetFloor(c *gin.Context) {
	hallID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hall ID")
		return
	}

	floor, err := h.service.GetFloor(c.Request.Context(), hallID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load floor")
		return
	}

	response.Success(c, http.StatusOK, floor)
}

func (h *Handler) CreateStall(c *gin.Context) {
	hallID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hall ID")
		return
	}

	var req CreateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	stall, err := h.service.CreateStall(c.Request.Context(), hallID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidGeometry):
			response.Error(c, http.StatusBadRequest, "INVALID_GEOMETRY", "Stall does not fit inside the hall bounds")
		case errors.Is(err, ErrUnknownStallType):
			response.Error(c, http.StatusBadRequest, "UNKNOWN_STALL_TYPE", "No rate configured for this stall type")
		case errors.Is(err, ErrNoSpace):
			response.Error(c, http.StatusConflict, "NO_SPACE", "No free position in the hall for a stall of this size")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create stall")
		}
		return
	}

	response.Success(c, http.StatusCreated, stall)
}

func (h *Handler) UpdateStall(c *gin.Context) {
	stallID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid stall ID")
		return
	}

	var req UpdateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	stall, err := h.service.UpdateStall(c.Request.Context(), stallID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidGeometry):
			response.Error(c, http.StatusBadRequest, "INVALID_GEOMETRY", "Stall does not fit inside the hall bounds")
		case errors.Is(err, ErrUnknownStallType):
			response.Error(c, http.StatusBadRequest, "UNKNOWN_STALL_TYPE", "No rate configured for this stall type")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stall not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update stall")
		}
		return
	}

	response.Success(c, http.StatusOK, stall)
}

func (h *Handler) DeleteStall(c *gin.Context) {
	stallID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid stall ID")
		return
	}

	if err := h.service.DeleteStall(c.Request.Context(), stallID); err != nil {
		switch {
		case errors.Is(err, ErrStallInUse):
			response.Error(c, http.StatusConflict, "STALL_IN_USE", "Stall is reserved or booked and cannot be deleted")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stall not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete stall")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateFixture(c *gin.Context) {
	hallID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hall ID")
		return
	}

	var req CreateFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	fixture, err := h.service.CreateFixture(c.Request.Context(), hallID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidGeometry):
			response.Error(c, http.StatusBadRequest, "INVALID_GEOMETRY", "Fixture does not fit inside the hall bounds")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hall not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create fixture")
		}
		return
	}

	response.Success(c, http.StatusCreated, fixture)
}
