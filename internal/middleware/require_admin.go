// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/tariquek-git/CommonJobs/internal/auth"
	"github.com/tariquek-git/CommonJobs/internal/config"
	"github.com/tariquek-git/CommonJobs/internal/utilities"
)

// RequireAdmin validates the Bearer token in the Authorization header and
// rejects requests without a valid, unexpired admin token.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if err := auth.VerifyAdminToken(tokenString, cfg.AdminTokenSecret); err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Access token expired",
				})
				return
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid access token",
			})
			return
		}

		ctx.Next()
	}
}
