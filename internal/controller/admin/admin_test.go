package admin

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tariquek-git/CommonJobs/internal/middleware"
	"github.com/tariquek-git/CommonJobs/internal/storage"
	"github.com/tariquek-git/CommonJobs/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *storage.Bundle) {
	t.Helper()
	cfg := testutil.TestConfig(t)

	stores, err := storage.New(cfg)
	assert.NoError(t, err)

	jc := NewController(cfg, stores.Jobs, stores.Clicks)
	r := gin.Default()
	adminRoute := r.Group("/admin")
	adminRoute.Use(middleware.RequireAdmin(cfg))
	adminRoute.GET("jobs", jc.ListJobs)
	adminRoute.POST("jobs", jc.CreateJob)
	adminRoute.PATCH("jobs/:id", jc.UpdateJob)
	adminRoute.PATCH("jobs/:id/status", jc.UpdateStatus)
	adminRoute.GET("runtime", jc.Runtime)
	return r, stores
}

func adminCreateBody() gin.H {
	return gin.H{
		"companyName":  "Acme",
		"roleTitle":    "Risk Analyst",
		"externalLink": "https://acme.example/jobs/9",
		"status":       "active",
		"sourceType":   "Aggregated",
		"isVerified":   false,
	}
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/admin/jobs", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, "bogus-token", r, "/admin/jobs", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid access token", resp["error"])
}

func TestListJobs_IncludesEveryStatus(t *testing.T) {
	r, _ := newTestRouter(t)
	token := testutil.AdminToken(t)

	body := adminCreateBody()
	body["status"] = "pending"
	rec, _ := testutil.MakeJSONRequest(body, token, r, "/admin/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/admin/jobs", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	statuses := map[string]bool{}
	for _, entry := range resp["jobs"].([]interface{}) {
		statuses[entry.(map[string]interface{})["status"].(string)] = true
	}
	assert.True(t, statuses["pending"])
	assert.True(t, statuses["active"])
}

func TestCreateJob_HonorsLifecycleFields(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, resp := testutil.MakeJSONRequest(adminCreateBody(), testutil.AdminToken(t), r, "/admin/jobs", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)

	job := resp["job"].(map[string]interface{})
	assert.Equal(t, "active", job["status"])
	assert.Equal(t, "Aggregated", job["sourceType"])
	assert.Equal(t, false, job["isVerified"])
	assert.NotEmpty(t, job["id"])
}

func TestCreateJob_InvalidPayload(t *testing.T) {
	r, _ := newTestRouter(t)
	token := testutil.AdminToken(t)

	body := adminCreateBody()
	body["status"] = "published"
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/admin/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid job payload", resp["error"])

	body = adminCreateBody()
	delete(body, "isVerified")
	rec, _ = testutil.MakeJSONRequest(body, token, r, "/admin/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatus_ModeratesSubmission(t *testing.T) {
	r, _ := newTestRouter(t)
	token := testutil.AdminToken(t)

	body := adminCreateBody()
	body["status"] = "pending"
	_, resp := testutil.MakeJSONRequest(body, token, r, "/admin/jobs", http.MethodPost)
	jobID := resp["job"].(map[string]interface{})["id"].(string)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "active"}, token, r, "/admin/jobs/"+jobID+"/status", http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "active", resp["job"].(map[string]interface{})["status"])

	// Any transition is allowed, including straight back to pending.
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "pending"}, token, r, "/admin/jobs/"+jobID+"/status", http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pending", resp["job"].(map[string]interface{})["status"])
}

func TestUpdateStatus_Invalid(t *testing.T) {
	r, _ := newTestRouter(t)
	token := testutil.AdminToken(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "published"}, token, r, "/admin/jobs/seed-1/status", http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status payload", resp["error"])
}

func TestUpdateStatus_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "active"}, testutil.AdminToken(t), r, "/admin/jobs/nope/status", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestUpdateJob_PartialMerge(t *testing.T) {
	r, _ := newTestRouter(t)
	token := testutil.AdminToken(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{"roleTitle": "Principal Payments Engineer"}, token, r, "/admin/jobs/seed-1", http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)

	job := resp["job"].(map[string]interface{})
	assert.Equal(t, "Principal Payments Engineer", job["roleTitle"])
	// Untouched fields survive the merge.
	assert.Equal(t, "Stripe", job["companyName"])
	assert.Equal(t, "active", job["status"])
}

func TestUpdateJob_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := testutil.MakeJSONRequest(gin.H{"roleTitle": "X"}, testutil.AdminToken(t), r, "/admin/jobs/nope", http.MethodPatch)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRuntime_ReportsCountsAndFeatures(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, resp := testutil.MakeJSONRequest(nil, testutil.AdminToken(t), r, "/admin/runtime", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "file", resp["provider"])

	counts := resp["jobs"].(map[string]interface{})
	assert.Equal(t, float64(2), counts["total"])
	assert.Equal(t, float64(2), counts["active"])

	clicks := resp["clicks"].(map[string]interface{})
	assert.Equal(t, float64(0), clicks["total"])

	features := resp["features"].(map[string]interface{})
	assert.Equal(t, true, features["adminAuth"])
	assert.Equal(t, false, features["ai"])
}
