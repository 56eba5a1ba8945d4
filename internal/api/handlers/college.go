package handlers

import (
	"net/http"
	"strconv"

	"event-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CollegeHandler handles HTTP requests for colleges
type CollegeHandler struct {
	service service.CollegeServiceInterface
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(service service.CollegeServiceInterface) *CollegeHandler {
	return &CollegeHandler{service: service}
}

// List handles GET /api/v1/colleges
// @Summary List colleges
// @Description Get known colleges for the registration form's college picker
// @Tags colleges
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.CollegeListResponse "Successfully retrieved colleges"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /colleges [get]
func (h *CollegeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	colleges, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, colleges)
}
