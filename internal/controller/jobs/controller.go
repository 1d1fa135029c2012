// Package jobs provides HTTP handlers for the public job board endpoints.
package jobs

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tariquek-git/CommonJobs/internal/auth"
	"github.com/tariquek-git/CommonJobs/internal/config"
	"github.com/tariquek-git/CommonJobs/internal/dedup"
	"github.com/tariquek-git/CommonJobs/internal/filter"
	"github.com/tariquek-git/CommonJobs/internal/model"
	"github.com/tariquek-git/CommonJobs/internal/storage"
	"github.com/tariquek-git/CommonJobs/internal/utilities"
	"github.com/tariquek-git/CommonJobs/internal/validation"
)

// Controller handles the public posting endpoints: search, detail, click
// tracking and community submissions.
type Controller struct {
	cfg    *config.Config
	jobs   storage.JobStore
	clicks storage.ClickStore
	dedup  *dedup.Deduper
	now    func() time.Time
}

// NewController creates a new instance of Controller.
func NewController(cfg *config.Config, jobs storage.JobStore, clicks storage.ClickStore, d *dedup.Deduper) *Controller {
	return &Controller{
		cfg:    cfg,
		jobs:   jobs,
		clicks: clicks,
		dedup:  d,
		now:    time.Now,
	}
}

// SetClock overrides the controller's time source. Test hook.
func (jc *Controller) SetClock(now func() time.Time) {
	jc.now = now
}

// hydrateClicks overlays live click counters onto postings. A posting
// without a counter row keeps whatever its stored clicks field says.
func (jc *Controller) hydrateClicks(c *gin.Context, postings []model.JobPosting) ([]model.JobPosting, bool) {
	if len(postings) == 0 {
		return postings, true
	}
	ids := make([]string, len(postings))
	for i, job := range postings {
		ids[i] = job.ID
	}
	counts, err := jc.clicks.GetMany(c.Request.Context(), ids)
	if err != nil {
		log.Println("jobs: failed to load click counters:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch jobs"})
		return nil, false
	}
	for i := range postings {
		if n, ok := counts[postings[i].ID]; ok {
			postings[i].Clicks = n
		}
	}
	return postings, true
}

// Search returns the filtered public feed.
// @Summary Search the public job feed
// @Description Apply feed selection and filter criteria to active postings
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Search body model.SearchRequest true "Feed type and filter state"
// @Success 200 {object} map[string][]model.JobPosting "Matching active postings"
// @Failure 400 {object} utilities.ErrorResponse "Invalid search request"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /jobs/search [post]
func (jc *Controller) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid search request"})
		return
	}
	if !model.ValidFeedType(req.FeedType) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid search request"})
		return
	}
	if req.Filters.DateRange == "" {
		req.Filters.DateRange = model.RangeAll
	}
	if !model.ValidDateRange(req.Filters.DateRange) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid search request"})
		return
	}

	all, err := jc.jobs.List(c.Request.Context())
	if err != nil {
		log.Println("jobs: failed to list postings:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch jobs"})
		return
	}

	visible := filter.VisibleJobs(all, req.FeedType, req.Filters, jc.now())
	if req.FeedType == model.FeedDirect {
		visible = filter.RankDirectFeed(visible)
	}

	visible, ok := jc.hydrateClicks(c, visible)
	if !ok {
		return
	}

	out := make([]model.JobPosting, len(visible))
	for i, job := range visible {
		out[i] = job.PublicView()
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out})
}

// GetJob returns one posting by id. Non-active postings are only visible
// with an admin token; everyone else gets a 404 rather than a hint that
// the posting exists.
// @Summary Get posting by ID
// @Description Active postings are public; pending, rejected and archived ones require an admin token
// @Tags Jobs
// @Produce json
// @Param id path string true "Posting ID"
// @Success 200 {object} map[string]model.JobPosting "The posting"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /jobs/{id} [get]
func (jc *Controller) GetJob(c *gin.Context) {
	id := c.Param("id")

	all, err := jc.jobs.List(c.Request.Context())
	if err != nil {
		log.Println("jobs: failed to list postings:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch job"})
		return
	}

	var found *model.JobPosting
	for i := range all {
		if all[i].ID == id {
			found = &all[i]
			break
		}
	}
	if found == nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	isAdmin := auth.RequestIsAdmin(c, jc.cfg)
	if !isAdmin && found.Status != model.StatusActive {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	clicks, err := jc.clicks.Get(c.Request.Context(), found.ID)
	if err != nil {
		log.Println("jobs: failed to load click counter:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch job"})
		return
	}

	job := found.Clone()
	job.Clicks = clicks
	if !isAdmin {
		job = job.PublicView()
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// Click records an outbound click on an active posting. Repeat clicks from
// the same client inside the dedup window acknowledge without counting.
// @Summary Record a click on a posting
// @Description Increments the posting's click counter, deduplicating per client address
// @Tags Jobs
// @Produce json
// @Param id path string true "Posting ID"
// @Success 200 {object} map[string]interface{} "ok, clicks, and deduped when suppressed"
// @Failure 404 {object} utilities.ErrorResponse "Job not found or not active"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /jobs/{id}/click [post]
func (jc *Controller) Click(c *gin.Context) {
	id := c.Param("id")

	all, err := jc.jobs.List(c.Request.Context())
	if err != nil {
		log.Println("jobs: failed to list postings:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to record click"})
		return
	}

	active := false
	for i := range all {
		if all[i].ID == id && all[i].Status == model.StatusActive {
			active = true
			break
		}
	}
	if !active {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}

	if jc.dedup.IsDuplicate(id, c.ClientIP()) {
		clicks, err := jc.clicks.Get(c.Request.Context(), id)
		if err != nil {
			log.Println("jobs: failed to load click counter:", err)
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to record click"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "deduped": true, "clicks": clicks})
		return
	}

	clicks, err := jc.clicks.Increment(c.Request.Context(), id)
	if err != nil {
		log.Println("jobs: failed to increment click counter:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to record click"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "clicks": clicks})
}

// Submit accepts a community job submission. The posting enters the
// moderation queue as pending and never appears in public feeds until an
// admin activates it.
// @Summary Submit a job posting
// @Description Validate, normalize and enqueue a community submission for moderation
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Submission body object true "Raw submission fields"
// @Success 201 {object} map[string]interface{} "ok and the new posting's id"
// @Failure 400 {object} utilities.ErrorResponse "Rejected submission"
// @Failure 429 {object} utilities.ErrorResponse "Too many requests"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /jobs/submissions [post]
func (jc *Controller) Submit(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid submission payload"})
		return
	}

	normalized := validation.Normalize(body)
	if err := validation.CheckPublicSubmission(normalized); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	created := validation.PublicJob(normalized, jc.now())
	created.ID = uuid.NewString()

	err := jc.jobs.Mutate(c.Request.Context(), func(jobs *[]model.JobPosting) error {
		*jobs = append([]model.JobPosting{created}, *jobs...)
		return nil
	})
	if err != nil {
		if !errors.Is(err, storage.ErrStorage) {
			log.Println("jobs: unexpected mutate failure:", err)
		} else {
			log.Println("jobs: failed to persist submission:", err)
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to save submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "jobId": created.ID})
}
