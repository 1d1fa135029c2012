// Package utilities contain utility code that use across the package
package utilities

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// ExtractBearerToken pulls the token out of the Authorization header.
func ExtractBearerToken(c *gin.Context) (string, error) {
	const bearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")

	if len(authHeader) <= len(bearerSchema) {
		return "", fmt.Errorf("invalid authorization header")
	}

	return authHeader[len(bearerSchema):], nil
}
