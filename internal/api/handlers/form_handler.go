package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/pkg/response"
	"github.com/linskybing/form-console/pkg/utils"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// adminID reads the caller from the token claims, answering 401 when absent.
func adminID(c *gin.Context) (string, bool) {
	id, err := utils.GetAccountIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return id, true
}

// idParam parses a uuid path parameter, answering 400 when malformed.
func idParam(c *gin.Context, name string) (string, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return "", false
	}
	return id, true
}

// ListForms godoc
// @Summary List forms
// @Description Forms owned by the caller, newest first.
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Form
// @Failure 403 {object} response.ErrorResponse "Not an administrator"
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}

	forms, err := h.service.ListForms(owner)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// CreateForm godoc
// @Summary Create a form
// @Description Creates the form, then any initial questions.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.CreateFormDTO true "Form"
// @Success 201 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Title missing or invalid question"
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}

	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	f, err := h.service.CreateForm(c, owner, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// GetForm godoc
// @Summary Get a form with its questions
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} form.Form
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	f, err := h.service.GetForm(owner, id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// UpdateForm godoc
// @Summary Patch a form
// @Description Updates only the fields present in the body.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body form.UpdateFormDTO true "Fields to change"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Blank title"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	f, err := h.service.UpdateForm(c, owner, id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// DeleteForm godoc
// @Summary Delete a form and its questions
// @Tags forms
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteForm(c, owner, id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
