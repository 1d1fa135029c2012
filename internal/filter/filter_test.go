package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

var now = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func job(id string, age time.Duration, mutate func(*model.JobPosting)) model.JobPosting {
	j := model.JobPosting{
		ID:          id,
		CompanyName: "Acme",
		RoleTitle:   "Engineer",
		PostedDate:  now.Add(-age),
		Status:      model.StatusActive,
		SourceType:  model.SourceDirect,
	}
	if mutate != nil {
		mutate(&j)
	}
	return j
}

func ids(jobs []model.JobPosting) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestVisibleJobs_OnlyActive(t *testing.T) {
	jobs := []model.JobPosting{
		job("active", time.Hour, nil),
		job("pending", time.Hour, func(j *model.JobPosting) { j.Status = model.StatusPending }),
		job("rejected", time.Hour, func(j *model.JobPosting) { j.Status = model.StatusRejected }),
		job("archived", time.Hour, func(j *model.JobPosting) { j.Status = model.StatusArchived }),
	}

	got := VisibleJobs(jobs, model.FeedDirect, model.FilterState{}, now)
	assert.Equal(t, []string{"active"}, ids(got))
}

func TestVisibleJobs_FeedSeparation(t *testing.T) {
	jobs := []model.JobPosting{
		job("direct", time.Hour, nil),
		job("agg", time.Hour, func(j *model.JobPosting) { j.SourceType = model.SourceAggregated }),
	}

	assert.Equal(t, []string{"direct"}, ids(VisibleJobs(jobs, model.FeedDirect, model.FilterState{}, now)))
	assert.Equal(t, []string{"agg"}, ids(VisibleJobs(jobs, model.FeedAggregated, model.FilterState{}, now)))
}

func TestVisibleJobs_DateRangeInclusive(t *testing.T) {
	jobs := []model.JobPosting{
		job("edge", 24*time.Hour, nil),
		job("past", 24*time.Hour+time.Second, nil),
	}

	got := VisibleJobs(jobs, model.FeedDirect, model.FilterState{DateRange: model.Range24h}, now)
	assert.Equal(t, []string{"edge"}, ids(got))
}

func TestVisibleJobs_KeywordAcrossFields(t *testing.T) {
	jobs := []model.JobPosting{
		job("title", time.Hour, func(j *model.JobPosting) { j.RoleTitle = "Payments Lead" }),
		job("company", 2*time.Hour, func(j *model.JobPosting) { j.CompanyName = "Payments Inc" }),
		job("tag", 3*time.Hour, func(j *model.JobPosting) { j.Tags = []string{"payments"} }),
		job("none", 4*time.Hour, nil),
	}

	got := VisibleJobs(jobs, model.FeedDirect, model.FilterState{Keyword: "PAYMENTS"}, now)
	assert.Equal(t, []string{"title", "company", "tag"}, ids(got))
}

func TestVisibleJobs_MissingClassificationExcluded(t *testing.T) {
	jobs := []model.JobPosting{
		job("remote", time.Hour, func(j *model.JobPosting) { j.RemotePolicy = model.RemoteRemote }),
		job("unset", 2*time.Hour, nil),
	}

	got := VisibleJobs(jobs, model.FeedDirect, model.FilterState{
		RemotePolicies: []model.RemotePolicy{model.RemoteRemote},
	}, now)
	assert.Equal(t, []string{"remote"}, ids(got))
}

func TestVisibleJobs_LocationSubstring(t *testing.T) {
	jobs := []model.JobPosting{
		job("toronto", time.Hour, func(j *model.JobPosting) {
			j.LocationCity = "Toronto"
			j.LocationCountry = "Canada"
		}),
		job("berlin", 2*time.Hour, func(j *model.JobPosting) {
			j.LocationCity = "Berlin"
			j.LocationCountry = "Germany"
		}),
	}

	got := VisibleJobs(jobs, model.FeedDirect, model.FilterState{Locations: []string{"toron"}}, now)
	assert.Equal(t, []string{"toronto"}, ids(got))
}

func TestVisibleJobs_SortedNewestFirst(t *testing.T) {
	jobs := []model.JobPosting{
		job("old", 48*time.Hour, nil),
		job("new", time.Hour, nil),
		job("mid", 24*time.Hour, nil),
	}

	got := VisibleJobs(jobs, model.FeedDirect, model.FilterState{}, now)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(got))
}

func TestRankDirectFeed_DirectFirstThenRecency(t *testing.T) {
	jobs := []model.JobPosting{
		job("agg-new", time.Hour, func(j *model.JobPosting) { j.SourceType = model.SourceAggregated }),
		job("direct-old", 48*time.Hour, nil),
		job("direct-new", 2*time.Hour, nil),
	}

	got := RankDirectFeed(jobs)
	assert.Equal(t, []string{"direct-new", "direct-old", "agg-new"}, ids(got))
}
