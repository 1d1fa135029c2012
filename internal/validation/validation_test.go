package validation

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

func TestCleanString_TrimAndCap(t *testing.T) {
	assert.Equal(t, "Acme", CleanString("  Acme  ", 120))
	assert.Equal(t, "", CleanString("   ", 120))
	assert.Equal(t, "", CleanString(42, 120))
	assert.Equal(t, "abcde", CleanString("abcdefgh", 5))
}

func TestCleanString_CapsByCharacters(t *testing.T) {
	// 61 characters but 121 bytes stays under the 120-character cap.
	accented := "a" + strings.Repeat("é", 60)
	assert.Equal(t, accented, CleanString(accented, MaxCompanyName))

	// Over the cap, truncation lands on a rune boundary.
	long := strings.Repeat("é", MaxCompanyName+10)
	capped := CleanString(long, MaxCompanyName)
	assert.True(t, utf8.ValidString(capped))
	assert.Equal(t, MaxCompanyName, utf8.RuneCountInString(capped))
}

func TestCleanURL(t *testing.T) {
	assert.Equal(t, "https://example.com/jobs", CleanURL("example.com/jobs"))
	assert.Equal(t, "http://example.com", CleanURL("http://example.com"))
	assert.Equal(t, "", CleanURL("javascript:alert(1)"))
	assert.Equal(t, "", CleanURL("https://"))
	assert.Equal(t, "", CleanURL(nil))
}

func TestCleanTags_DedupAndCap(t *testing.T) {
	raw := []interface{}{"Go", " Go ", "SQL", "", 7, "a", "b", "c", "d", "e", "f", "g"}
	tags := CleanTags(raw)
	assert.Equal(t, []string{"Go", "SQL", "a", "b", "c", "d", "e", "f"}, tags)

	assert.Nil(t, CleanTags("not an array"))
	assert.Nil(t, CleanTags([]interface{}{"", "   "}))
}

func TestNormalizeRemotePolicy_Synonyms(t *testing.T) {
	assert.Equal(t, model.RemoteRemote, NormalizeRemotePolicy("Remote"))
	assert.Equal(t, model.RemoteRemote, NormalizeRemotePolicy("fully remote"))
	assert.Equal(t, model.RemoteHybrid, NormalizeRemotePolicy("hybrid (3 days)"))
	assert.Equal(t, model.RemoteOnsite, NormalizeRemotePolicy("On-site"))
	assert.Equal(t, model.RemotePolicy(""), NormalizeRemotePolicy("whatever"))
}

func TestNormalizeEmploymentType_Synonyms(t *testing.T) {
	assert.Equal(t, model.EmploymentFullTime, NormalizeEmploymentType("full time"))
	assert.Equal(t, model.EmploymentContract, NormalizeEmploymentType("6 month contract"))
	assert.Equal(t, model.EmploymentInternship, NormalizeEmploymentType("summer intern"))
	assert.Equal(t, model.EmploymentType(""), NormalizeEmploymentType("gig"))
}

func TestNormalizeSeniority_Synonyms(t *testing.T) {
	assert.Equal(t, model.SenioritySenior, NormalizeSeniority("sr"))
	assert.Equal(t, model.SeniorityLead, NormalizeSeniority("Staff Engineer"))
	assert.Equal(t, model.SeniorityExecutive, NormalizeSeniority("VP of Engineering"))
	assert.Equal(t, model.SeniorityJunior, NormalizeSeniority("jr"))
	assert.Equal(t, model.SeniorityMidLevel, NormalizeSeniority("mid level"))
	assert.Equal(t, model.SeniorityLevel(""), NormalizeSeniority("ninja"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("person@example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("Person <person@example.com>"))
	assert.False(t, ValidEmail(""))
}

func submission() map[string]interface{} {
	return map[string]interface{}{
		"companyName":    "Acme",
		"roleTitle":      "Payments Analyst",
		"externalLink":   "acme.example/jobs/1",
		"submitterEmail": "person@example.com",
		"locationCity":   "Toronto",
		"locationCountry": "Canada",
	}
}

func TestCheckPublicSubmission_Valid(t *testing.T) {
	n := Normalize(submission())
	assert.NoError(t, CheckPublicSubmission(n))
}

func TestCheckPublicSubmission_Honeypot(t *testing.T) {
	body := submission()
	body["website"] = "http://spam.example"
	assert.ErrorIs(t, CheckPublicSubmission(Normalize(body)), ErrSpam)
}

func TestCheckPublicSubmission_ErrorPrecedence(t *testing.T) {
	body := submission()
	delete(body, "externalLink")
	delete(body, "companyName")
	assert.ErrorIs(t, CheckPublicSubmission(Normalize(body)), ErrApplyLink)

	body = submission()
	body["companyName"] = "   "
	assert.ErrorIs(t, CheckPublicSubmission(Normalize(body)), ErrCompanyRole)

	body = submission()
	body["submitterEmail"] = "broken"
	assert.ErrorIs(t, CheckPublicSubmission(Normalize(body)), ErrSubmitterEmail)

	body = submission()
	delete(body, "locationCountry")
	assert.ErrorIs(t, CheckPublicSubmission(Normalize(body)), ErrLocation)
}

func TestPublicJob_ForcesLifecycle(t *testing.T) {
	body := submission()
	body["status"] = "active"
	body["sourceType"] = "Aggregated"
	body["isVerified"] = false

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	job := PublicJob(Normalize(body), now)

	assert.Equal(t, model.StatusPending, job.Status)
	assert.Equal(t, model.SourceDirect, job.SourceType)
	assert.True(t, job.IsVerified)
	assert.Equal(t, "Direct", job.ExternalSource)
	assert.Equal(t, now, job.PostedDate)
	assert.Equal(t, "https://acme.example/jobs/1", job.ExternalLink)
}

func TestPublicJob_KeepsSuppliedPostedDate(t *testing.T) {
	body := submission()
	body["postedDate"] = "2026-07-01T08:00:00Z"

	job := PublicJob(Normalize(body), time.Now())
	assert.Equal(t, time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC), job.PostedDate)
}

func TestCheckAdminCreate(t *testing.T) {
	body := submission()
	body["status"] = "active"
	body["sourceType"] = "Aggregated"
	body["isVerified"] = false
	assert.NoError(t, CheckAdminCreate(Normalize(body)))

	bad := submission()
	bad["status"] = "published"
	bad["sourceType"] = "Aggregated"
	bad["isVerified"] = true
	assert.ErrorIs(t, CheckAdminCreate(Normalize(bad)), ErrInvalidPayload)

	missing := submission()
	missing["status"] = "active"
	missing["sourceType"] = "Aggregated"
	assert.ErrorIs(t, CheckAdminCreate(Normalize(missing)), ErrInvalidPayload)
}

func TestAdminJob_HonorsLifecycle(t *testing.T) {
	body := submission()
	body["status"] = "rejected"
	body["sourceType"] = "Aggregated"
	body["isVerified"] = false

	job := AdminJob(Normalize(body), time.Now())
	assert.Equal(t, model.StatusRejected, job.Status)
	assert.Equal(t, model.SourceAggregated, job.SourceType)
	assert.False(t, job.IsVerified)
	assert.Equal(t, "", job.ExternalSource)
}

func TestApplyAdminUpdate_PartialMerge(t *testing.T) {
	current := model.JobPosting{
		ID:          "j1",
		CompanyName: "Acme",
		RoleTitle:   "Analyst",
		SalaryRange: "90,000",
		Tags:        []string{"Payments"},
		Status:      model.StatusPending,
		Clicks:      7,
	}

	n := Normalize(map[string]interface{}{
		"roleTitle": "Senior Analyst",
		"status":    "active",
	})
	next := ApplyAdminUpdate(current, n)

	assert.Equal(t, "j1", next.ID)
	assert.Equal(t, "Acme", next.CompanyName)
	assert.Equal(t, "Senior Analyst", next.RoleTitle)
	assert.Equal(t, "90,000", next.SalaryRange)
	assert.Equal(t, []string{"Payments"}, next.Tags)
	assert.Equal(t, model.StatusActive, next.Status)
	assert.Equal(t, int64(7), next.Clicks)
}

func TestApplyAdminUpdate_InvalidStatusIgnored(t *testing.T) {
	current := model.JobPosting{ID: "j1", Status: model.StatusActive}
	next := ApplyAdminUpdate(current, Normalize(map[string]interface{}{"status": "published"}))
	assert.Equal(t, model.StatusActive, next.Status)
}
