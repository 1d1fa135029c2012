// Package aiassist provides HTTP handlers for text extraction helpers used
// by the submission form and the search box.
package aiassist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tariquek-git/CommonJobs/internal/ai"
	"github.com/tariquek-git/CommonJobs/internal/utilities"
)

// Controller handles the extraction endpoints. Both degrade to a
// deterministic heuristic when the model tier is unconfigured or failing,
// so they never 503.
type Controller struct {
	svc *ai.Service
}

// NewController creates a new instance of Controller.
func NewController(svc *ai.Service) *Controller {
	return &Controller{svc: svc}
}

// AnalyzeJob extracts structured posting fields from a pasted description.
// @Summary Analyze a job description
// @Description Extract posting fields and a short summary from free text
// @Tags AI
// @Accept json
// @Produce json
// @Param Description body object true "description: raw posting text"
// @Success 200 {object} map[string]interface{} "result and the source tier that produced it"
// @Failure 400 {object} utilities.ErrorResponse "Description required"
// @Router /ai/analyze-job [post]
func (jc *Controller) AnalyzeJob(c *gin.Context) {
	var body struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Description == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Description required"})
		return
	}

	result, source := jc.svc.AnalyzeJobDescription(c.Request.Context(), body.Description)
	c.JSON(http.StatusOK, gin.H{"result": result, "source": source})
}

// ParseSearch translates a natural-language query into filter criteria.
// @Summary Parse a search query
// @Description Translate free text into feed filter criteria
// @Tags AI
// @Accept json
// @Produce json
// @Param Query body object true "query: natural-language search"
// @Success 200 {object} map[string]interface{} "result and the source tier that produced it"
// @Failure 400 {object} utilities.ErrorResponse "Query required"
// @Router /ai/parse-search [post]
func (jc *Controller) ParseSearch(c *gin.Context) {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Query == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Query required"})
		return
	}

	result, source := jc.svc.ParseSearchQuery(c.Request.Context(), body.Query)
	c.JSON(http.StatusOK, gin.H{"result": result, "source": source})
}
