package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-console/pkg/types"
)

var ErrNoClaims = errors.New("account claims not found in context")

func GetClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid account claims type")
	}
	return claims, nil
}

var GetAccountIDFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.AccountID, nil
}
