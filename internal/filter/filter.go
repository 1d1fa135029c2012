// Package filter answers which postings are visible for a search and in
// what order.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// VisibleJobs returns the postings that match the feed selector and filter
// criteria, sorted by posted date descending. Only active postings are ever
// included; a posting missing a classification field is excluded whenever
// that filter dimension is active.
func VisibleJobs(jobs []model.JobPosting, feed model.FeedType, f model.FilterState, now time.Time) []model.JobPosting {
	out := make([]model.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, feed, f, now) {
			out = append(out, job)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostedDate.After(out[j].PostedDate)
	})
	return out
}

// RankDirectFeed reorders an already-filtered direct feed so Direct-sourced
// postings appear ahead of any others, falling back to recency within each
// tier. This is a display concern layered above the base filter.
func RankDirectFeed(jobs []model.JobPosting) []model.JobPosting {
	out := make([]model.JobPosting, len(jobs))
	copy(out, jobs)

	sort.SliceStable(out, func(i, j int) bool {
		iDirect := out[i].SourceType == model.SourceDirect
		jDirect := out[j].SourceType == model.SourceDirect
		if iDirect != jDirect {
			return iDirect
		}
		return out[i].PostedDate.After(out[j].PostedDate)
	})
	return out
}

func matches(job model.JobPosting, feed model.FeedType, f model.FilterState, now time.Time) bool {
	if job.Status != model.StatusActive {
		return false
	}

	switch feed {
	case model.FeedDirect:
		if job.SourceType != model.SourceDirect {
			return false
		}
	case model.FeedAggregated:
		if job.SourceType != model.SourceAggregated {
			return false
		}
	}

	if !withinDateRange(job.PostedDate, f.DateRange, now) {
		return false
	}

	if f.Keyword != "" && !keywordMatches(job, f.Keyword) {
		return false
	}

	if len(f.RemotePolicies) > 0 {
		if job.RemotePolicy == "" || !containsPolicy(f.RemotePolicies, job.RemotePolicy) {
			return false
		}
	}
	if len(f.SeniorityLevels) > 0 {
		if job.Seniority == "" || !containsSeniority(f.SeniorityLevels, job.Seniority) {
			return false
		}
	}
	if len(f.EmploymentTypes) > 0 {
		if job.EmploymentType == "" || !containsEmployment(f.EmploymentTypes, job.EmploymentType) {
			return false
		}
	}

	if len(f.Locations) > 0 && !locationMatches(job, f.Locations) {
		return false
	}

	return true
}

func withinDateRange(posted time.Time, r model.DateRange, now time.Time) bool {
	var window time.Duration
	switch r {
	case model.Range24h:
		window = 24 * time.Hour
	case model.Range7d:
		window = 7 * 24 * time.Hour
	case model.Range30d:
		window = 30 * 24 * time.Hour
	default:
		return true
	}
	return now.Sub(posted) <= window
}

func keywordMatches(job model.JobPosting, keyword string) bool {
	q := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(job.RoleTitle), q) {
		return true
	}
	if strings.Contains(strings.ToLower(job.CompanyName), q) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func locationMatches(job model.JobPosting, locations []string) bool {
	haystack := strings.ToLower(job.LocationCity + " " + job.LocationState + " " + job.LocationCountry)
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(loc)) {
			return true
		}
	}
	return false
}

func containsPolicy(set []model.RemotePolicy, v model.RemotePolicy) bool {
	for _, entry := range set {
		if entry == v {
			return true
		}
	}
	return false
}

func containsSeniority(set []model.SeniorityLevel, v model.SeniorityLevel) bool {
	for _, entry := range set {
		if entry == v {
			return true
		}
	}
	return false
}

func containsEmployment(set []model.EmploymentType, v model.EmploymentType) bool {
	for _, entry := range set {
		if entry == v {
			return true
		}
	}
	return false
}
