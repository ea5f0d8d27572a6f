package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid id")

// ParseIDParam reads a uuid path parameter and returns it in canonical form.
func ParseIDParam(c *gin.Context, name string) (string, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
