package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/internal/domain/form"
)

type QuestionHandler struct {
	service *application.QuestionService
}

func NewQuestionHandler(service *application.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestions godoc
// @Summary List the questions of a form
// @Tags questions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {array} form.Question
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}
	formID, ok := idParam(c, "id")
	if !ok {
		return
	}

	questions, err := h.service.ListQuestions(owner, formID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// AddQuestion godoc
// @Summary Add a question to a form
// @Description Type defaults to short_answer; empty options are stored as null.
// @Tags questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body form.CreateQuestionDTO true "Question"
// @Success 201 {object} form.Question
// @Failure 400 {object} response.ErrorResponse "Title missing or invalid type"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/questions [post]
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}
	formID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input form.CreateQuestionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	q, err := h.service.AddQuestion(c, owner, formID, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// UpdateQuestion godoc
// @Summary Replace a question
// @Tags questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param input body form.UpdateQuestionDTO true "Question"
// @Success 200 {object} form.Question
// @Failure 400 {object} response.ErrorResponse "Title missing or invalid type"
// @Failure 404 {object} response.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input form.UpdateQuestionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	q, err := h.service.UpdateQuestion(c, owner, id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	owner, ok := adminID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteQuestion(c, owner, id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
