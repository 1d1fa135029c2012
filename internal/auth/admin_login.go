package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tariquek-git/CommonJobs/internal/config"
	"github.com/tariquek-git/CommonJobs/internal/utilities"
)

// AdminLoginHandler handles credential verification and token issuance for
// the single configured admin account.
type AdminLoginHandler struct {
	cfg *config.Config
}

// NewAdminLoginHandler creates a new instance of AdminLoginHandler.
func NewAdminLoginHandler(cfg *config.Config) *AdminLoginHandler {
	return &AdminLoginHandler{cfg: cfg}
}

// Login verifies the configured username and bcrypt password hash and
// issues a signed, time-limited bearer token.
// @Summary Admin login
// @Description Verify admin credentials and issue a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param Credentials body object true "username and password"
// @Success 200 {object} map[string]string "token"
// @Failure 400 {object} utilities.ErrorResponse "Missing username or password"
// @Failure 401 {object} utilities.ErrorResponse "Invalid credentials"
// @Failure 503 {object} utilities.ErrorResponse "Admin auth not configured"
// @Router /auth/admin-login [post]
func (h *AdminLoginHandler) Login(c *gin.Context) {
	if !h.cfg.AdminAuthConfigured() {
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{
			Error: "Admin auth is not configured",
		})
		return
	}

	var info struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username and password required",
		})
		return
	}

	if info.Username != h.cfg.AdminUsername {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Invalid credentials"})
		return
	}
	if !VerifyPassword(info.Password, h.cfg.AdminPasswordHash) {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := IssueAdminToken(h.cfg.AdminTokenSecret, h.cfg.AdminTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to generate access token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RequestIsAdmin reports whether the request carries a valid admin bearer
// token. Used by endpoints that are public for active postings but reveal
// more to moderators.
func RequestIsAdmin(c *gin.Context, cfg *config.Config) bool {
	if cfg.AdminTokenSecret == "" {
		return false
	}
	token, err := utilities.ExtractBearerToken(c)
	if err != nil {
		return false
	}
	return VerifyAdminToken(token, cfg.AdminTokenSecret) == nil
}
