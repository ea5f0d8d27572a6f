package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/linskybing/form-console/internal/config"
	"github.com/linskybing/form-console/internal/repository"
	"github.com/linskybing/form-console/internal/session"
	"github.com/linskybing/form-console/pkg/response"
	"github.com/linskybing/form-console/pkg/types"
)

var (
	jwtKey  []byte
	revoker session.Revoker
)

var ErrMissingToken = errors.New("authorization required (header or cookie)")

// Init sets the JWT signing key and the store consulted for signed-out tokens.
func Init(rev session.Revoker) {
	jwtKey = []byte(config.JwtSecret)
	revoker = rev
}

// GenerateToken issues a signed token and reports admin status.
var GenerateToken = func(accountID, email string, expireDuration time.Duration, repo repository.AccountRepo) (string, bool, error) {
	isAdmin, err := repo.IsAdmin(accountID)
	if err != nil {
		return "", false, err
	}
	now := time.Now()
	claims := &types.Claims{
		AccountID: accountID,
		Email:     email,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(jwtKey)
	if err != nil {
		return "", false, err
	}

	return signedToken, isAdmin, nil
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// TokenFromRequest reads the session token from the Authorization header,
// the token cookie, or the token query parameter (browsers cannot set headers
// on WebSocket upgrades), in that order.
func TokenFromRequest(c *gin.Context) (string, error) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errors.New("authorization header format must be Bearer {token}")
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, nil
	}
	if q := c.Query("token"); q != "" {
		return q, nil
	}
	return "", ErrMissingToken
}

// JWTAuthMiddleware validates the session token and stores its claims under "claims".
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := TokenFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token: " + err.Error()})
			return
		}

		// Explicitly enforce expiration to avoid lax parser behavior
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
			return
		}

		if revoker != nil && claims.ID != "" {
			revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to check session"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "session has been signed out"})
				return
			}
		}

		c.Set("claims", claims)
		c.Next()
	}
}
