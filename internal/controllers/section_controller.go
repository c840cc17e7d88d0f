package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	"github.com/gin-gonic/gin"
)

// SectionController handles HTTP requests related to sections
type SectionController interface {
	// ListSections retrieves all sections
	ListSections(c *gin.Context)
	// GetSection retrieves a section by its ID
	GetSection(c *gin.Context)
	// CreateSection creates a new section
	CreateSection(c *gin.Context)
	// UpdateSection updates an existing section
	UpdateSection(c *gin.Context)
	// DeleteSection deletes a section by its ID
	DeleteSection(c *gin.Context)
}

type sectionController struct {
	service services.SectionService
}

// NewSectionController creates a new instance of SectionController
func NewSectionController(service services.SectionService) SectionController {
	return &sectionController{service: service}
}

// ListSections godoc
// @Summary List sections
// @Description Get every campus section
// @Tags sections
// @Produce json
// @Param school path string true "School identifier"
// @Success 200 {array} models.Section
// @Failure 502 {object} models.APIError
// @Router /api/{school}/sections [get]
func (c *sectionController) ListSections(ctx *gin.Context) {
	sections, err := c.service.ListSections(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sections)
}

// GetSection godoc
// @Summary Get section by ID
// @Tags sections
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Section ID"
// @Success 200 {object} models.Section
// @Failure 404 {object} models.APIError
// @Router /api/{school}/sections/{id} [get]
func (c *sectionController) GetSection(ctx *gin.Context) {
	section, err := c.service.GetSection(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, section)
}

// CreateSection godoc
// @Summary Create a section
// @Description The server assigns the ID
// @Tags sections
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param key query string true "Admin key"
// @Param section body models.Section true "Section object"
// @Success 201 {object} models.Section
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /api/{school}/admin/sections [post]
func (c *sectionController) CreateSection(ctx *gin.Context) {
	var section models.Section
	if !bindJSON(ctx, &section) {
		return
	}
	section.ID = ""
	created, err := c.service.CreateSection(ctx.Request.Context(), section)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateSection godoc
// @Summary Update a section
// @Description Fields left out of the payload keep their value
// @Tags sections
// @Accept json
// @Produce json
// @Param school path string true "School identifier"
// @Param id path string true "Section ID"
// @Param key query string true "Admin key"
// @Param patch body models.SectionPatch true "Fields to change"
// @Success 200 {object} models.Section
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/{school}/admin/sections/{id} [put]
func (c *sectionController) UpdateSection(ctx *gin.Context) {
	var patch models.SectionPatch
	if !bindJSON(ctx, &patch) {
		return
	}
	updated, err := c.service.UpdateSection(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteSection godoc
// @Summary Delete a section
// @Description Refused with 409 while restaurants reference the section
// @Tags sections
// @Param school path string true "School identifier"
// @Param id path string true "Section ID"
// @Param key query string true "Admin key"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/{school}/admin/sections/{id} [delete]
func (c *sectionController) DeleteSection(ctx *gin.Context) {
	if err := c.service.DeleteSection(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
