// Package admin provides HTTP handlers for the moderation endpoints. Every
// route here sits behind the admin token middleware.
package admin

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tariquek-git/CommonJobs/internal/config"
	"github.com/tariquek-git/CommonJobs/internal/model"
	"github.com/tariquek-git/CommonJobs/internal/storage"
	"github.com/tariquek-git/CommonJobs/internal/utilities"
	"github.com/tariquek-git/CommonJobs/internal/validation"
)

// errJobNotFound aborts a mutate without persisting anything.
var errJobNotFound = errors.New("job not found")

// Controller handles moderation of the posting collection.
type Controller struct {
	cfg    *config.Config
	jobs   storage.JobStore
	clicks storage.ClickStore
	now    func() time.Time
}

// NewController creates a new instance of Controller.
func NewController(cfg *config.Config, jobs storage.JobStore, clicks storage.ClickStore) *Controller {
	return &Controller{
		cfg:    cfg,
		jobs:   jobs,
		clicks: clicks,
		now:    time.Now,
	}
}

// SetClock overrides the controller's time source. Test hook.
func (jc *Controller) SetClock(now func() time.Time) {
	jc.now = now
}

// ListJobs returns every posting in every status, newest first, with live
// click counters and submitter contact intact.
// @Summary List all postings for moderation
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string][]model.JobPosting "All postings"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /admin/jobs [get]
func (jc *Controller) ListJobs(c *gin.Context) {
	all, err := jc.jobs.List(c.Request.Context())
	if err != nil {
		log.Println("admin: failed to list postings:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch jobs"})
		return
	}

	if len(all) > 0 {
		ids := make([]string, len(all))
		for i, job := range all {
			ids[i] = job.ID
		}
		counts, err := jc.clicks.GetMany(c.Request.Context(), ids)
		if err != nil {
			log.Println("admin: failed to load click counters:", err)
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch jobs"})
			return
		}
		for i := range all {
			if n, ok := counts[all[i].ID]; ok {
				all[i].Clicks = n
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PostedDate.After(all[j].PostedDate)
	})
	c.JSON(http.StatusOK, gin.H{"jobs": all})
}

// CreateJob inserts a fully-specified posting, lifecycle fields included.
// @Summary Create a posting directly
// @Tags Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body object true "Posting fields including status, sourceType and isVerified"
// @Success 201 {object} map[string]model.JobPosting "The created posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job payload"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /admin/jobs [post]
func (jc *Controller) CreateJob(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job payload"})
		return
	}

	normalized := validation.Normalize(body)
	if err := validation.CheckAdminCreate(normalized); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job payload"})
		return
	}

	created := validation.AdminJob(normalized, jc.now())
	created.ID = uuid.NewString()

	err := jc.jobs.Mutate(c.Request.Context(), func(jobs *[]model.JobPosting) error {
		*jobs = append([]model.JobPosting{created}, *jobs...)
		return nil
	})
	if err != nil {
		log.Println("admin: failed to persist posting:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to save job"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": created})
}

// UpdateStatus moves a posting to any lifecycle status.
// @Summary Set a posting's moderation status
// @Tags Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Posting ID"
// @Param Status body object true "status: pending | active | rejected | archived"
// @Success 200 {object} map[string]model.JobPosting "The updated posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid status payload"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /admin/jobs/{id}/status [patch]
func (jc *Controller) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status model.JobStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !model.ValidStatus(body.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid status payload"})
		return
	}

	var updated model.JobPosting
	err := jc.jobs.Mutate(c.Request.Context(), func(jobs *[]model.JobPosting) error {
		for i := range *jobs {
			if (*jobs)[i].ID == id {
				(*jobs)[i].Status = body.Status
				updated = (*jobs)[i].Clone()
				return nil
			}
		}
		return errJobNotFound
	})
	if err != nil {
		jc.respondMutateError(c, err, "Failed to update job")
		return
	}

	jc.respondWithClicks(c, updated)
}

// UpdateJob merges a partial edit onto a posting. Absent fields keep their
// current values; id and clicks are never editable.
// @Summary Edit a posting
// @Tags Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Posting ID"
// @Param Job body object true "Fields to update"
// @Success 200 {object} map[string]model.JobPosting "The updated posting"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job payload"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /admin/jobs/{id} [patch]
func (jc *Controller) UpdateJob(c *gin.Context) {
	id := c.Param("id")

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job payload"})
		return
	}
	normalized := validation.Normalize(body)

	var updated model.JobPosting
	err := jc.jobs.Mutate(c.Request.Context(), func(jobs *[]model.JobPosting) error {
		for i := range *jobs {
			if (*jobs)[i].ID == id {
				(*jobs)[i] = validation.ApplyAdminUpdate((*jobs)[i], normalized)
				updated = (*jobs)[i].Clone()
				return nil
			}
		}
		return errJobNotFound
	})
	if err != nil {
		jc.respondMutateError(c, err, "Failed to update job")
		return
	}

	jc.respondWithClicks(c, updated)
}

// Runtime reports operational state for the moderation dashboard. It never
// exposes secrets, only whether features are configured.
// @Summary Runtime and feature status
// @Tags Admin
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} map[string]interface{} "Provider, counts and feature flags"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Storage failure"
// @Router /admin/runtime [get]
func (jc *Controller) Runtime(c *gin.Context) {
	all, err := jc.jobs.List(c.Request.Context())
	if err != nil {
		log.Println("admin: failed to list postings:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch runtime status"})
		return
	}

	counts := map[model.JobStatus]int{}
	ids := make([]string, len(all))
	for i, job := range all {
		counts[job.Status]++
		ids[i] = job.ID
	}

	var totalClicks int64
	if len(ids) > 0 {
		clickCounts, err := jc.clicks.GetMany(c.Request.Context(), ids)
		if err != nil {
			log.Println("admin: failed to load click counters:", err)
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch runtime status"})
			return
		}
		for _, n := range clickCounts {
			totalClicks += n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"env":      jc.cfg.Env,
		"provider": jc.cfg.StorageProvider,
		"jobs": gin.H{
			"total":    len(all),
			"pending":  counts[model.StatusPending],
			"active":   counts[model.StatusActive],
			"rejected": counts[model.StatusRejected],
			"archived": counts[model.StatusArchived],
		},
		"clicks": gin.H{"total": totalClicks},
		"features": gin.H{
			"adminAuth": jc.cfg.AdminAuthConfigured(),
			"ai":        jc.cfg.AIConfigured(),
		},
	})
}

func (jc *Controller) respondMutateError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, errJobNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		return
	}
	log.Println("admin: mutate failed:", err)
	c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: fallback})
}

func (jc *Controller) respondWithClicks(c *gin.Context, job model.JobPosting) {
	clicks, err := jc.clicks.Get(c.Request.Context(), job.ID)
	if err != nil {
		log.Println("admin: failed to load click counter:", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to fetch job"})
		return
	}
	job.Clicks = clicks
	c.JSON(http.StatusOK, gin.H{"job": job})
}
