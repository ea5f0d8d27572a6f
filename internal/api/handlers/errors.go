package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/form-console/internal/application"
	"github.com/linskybing/form-console/pkg/response"
)

var fieldLabels = map[string]string{
	"Email":    "email",
	"Password": "password",
	"Title":    "title",
	"Type":     "type",
	"Options":  "options",
}

// bindError answers 400 with a readable message for a failed ShouldBind.
func bindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid input"})
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}

	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrFormNotFound),
		errors.Is(err, application.ErrQuestionNotFound),
		errors.Is(err, application.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrFormTitleRequired),
		errors.Is(err, application.ErrQuestionTitleRequired),
		errors.Is(err, application.ErrInvalidQuestionType),
		errors.Is(err, application.ErrMissingCredentials),
		errors.Is(err, application.ErrInvalidConfirmationToken):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrEmailNotConfirmed),
		errors.Is(err, application.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, application.ErrEmailTaken):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func serviceError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
