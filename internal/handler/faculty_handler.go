package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-records-api/internal/middleware"
	"github.com/noah-isme/campus-records-api/internal/models"
	"github.com/noah-isme/campus-records-api/internal/service"
	"github.com/noah-isme/campus-records-api/pkg/response"
)

type facultyService interface {
	List(ctx context.Context) ([]models.Faculty, error)
	Get(ctx context.Context, facultyNumber string) (*models.Faculty, error)
	Create(ctx context.Context, req service.CreateFacultyRequest, uploaded *string) error
	Update(ctx context.Context, facultyNumber string, req service.UpdateFacultyRequest, uploaded *string) error
	Delete(ctx context.Context, facultyNumber string) error
}

// FacultyHandler exposes faculty endpoints.
type FacultyHandler struct {
	faculties facultyService
}

// NewFacultyHandler constructs FacultyHandler.
func NewFacultyHandler(faculties facultyService) *FacultyHandler {
	return &FacultyHandler{faculties: faculties}
}

// List godoc
// @Summary List faculty
// @Tags Faculty
// @Produce json
// @Success 200 {array} models.Faculty
// @Failure 500 {object} response.Body
// @Router /api/faculties [get]
func (h *FacultyHandler) List(c *gin.Context) {
	faculties, err := h.faculties.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculties)
}

// Get godoc
// @Summary Get faculty detail
// @Tags Faculty
// @Produce json
// @Param facultyNumber path string true "Faculty number"
// @Success 200 {object} models.Faculty
// @Failure 404 {object} response.Body
// @Router /api/faculties/{facultyNumber} [get]
func (h *FacultyHandler) Get(c *gin.Context) {
	faculty, err := h.faculties.Get(c.Request.Context(), c.Param("facultyNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculty)
}

// Create godoc
// @Summary Create faculty
// @Tags Faculty
// @Accept multipart/form-data,json
// @Produce json
// @Param payload body service.CreateFacultyRequest true "Faculty payload"
// @Param faculty_profile formData file false "Profile file"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 500 {object} response.Body
// @Router /api/faculties [post]
func (h *FacultyHandler) Create(c *gin.Context) {
	var req service.CreateFacultyRequest
	if !bindPayload(c, &req) {
		return
	}
	if err := h.faculties.Create(c.Request.Context(), req, middleware.UploadedFile(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Faculty added successfully")
}

// Update godoc
// @Summary Update faculty
// @Description Overwrites every attribute. Without a new file the faculty_profile sent in the body is stored as-is.
// @Tags Faculty
// @Accept multipart/form-data,json
// @Produce json
// @Param facultyNumber path string true "Faculty number"
// @Param payload body service.UpdateFacultyRequest true "Faculty payload"
// @Param faculty_profile formData file false "Profile file"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Failure 500 {object} response.Body
// @Router /api/faculties/{facultyNumber} [put]
func (h *FacultyHandler) Update(c *gin.Context) {
	var req service.UpdateFacultyRequest
	if !bindPayload(c, &req) {
		return
	}
	if err := h.faculties.Update(c.Request.Context(), c.Param("facultyNumber"), req, middleware.UploadedFile(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Faculty updated successfully")
}

// Delete godoc
// @Summary Delete faculty
// @Tags Faculty
// @Produce json
// @Param facultyNumber path string true "Faculty number"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /api/faculties/{facultyNumber} [delete]
func (h *FacultyHandler) Delete(c *gin.Context) {
	if err := h.faculties.Delete(c.Request.Context(), c.Param("facultyNumber")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Faculty deleted successfully")
}
