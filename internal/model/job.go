// Package model contain entities share across storage, filtering and handlers.
package model

import "time"

// RemotePolicy is the closed set of working arrangements a posting can declare.
type RemotePolicy string

// Canonical remote policy values.
const (
	RemoteOnsite RemotePolicy = "Onsite"
	RemoteHybrid RemotePolicy = "Hybrid"
	RemoteRemote RemotePolicy = "Remote"
)

// EmploymentType is the closed set of engagement kinds.
type EmploymentType string

// Canonical employment type values.
const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

// SeniorityLevel is the closed set of seniority bands.
type SeniorityLevel string

// Canonical seniority values.
const (
	SeniorityJunior    SeniorityLevel = "Junior"
	SeniorityMidLevel  SeniorityLevel = "Mid-Level"
	SenioritySenior    SeniorityLevel = "Senior"
	SeniorityLead      SeniorityLevel = "Lead"
	SeniorityExecutive SeniorityLevel = "Executive"
)

// JobSourceType separates community submissions from imported postings.
type JobSourceType string

// Source type values.
const (
	SourceDirect     JobSourceType = "Direct"
	SourceAggregated JobSourceType = "Aggregated"
)

// JobStatus is the moderation lifecycle of a posting. Transitions are
// unconstrained: any authenticated admin may set any status at any time.
type JobStatus string

// Status values.
const (
	StatusPending  JobStatus = "pending"
	StatusActive   JobStatus = "active"
	StatusRejected JobStatus = "rejected"
	StatusArchived JobStatus = "archived"
)

// JobPosting is the central entity of the board. Optional string fields use
// the empty string as "absent" and are omitted from JSON, so a round trip
// through storage never coerces them into a visible default.
type JobPosting struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"companyName"`
	CompanyWebsite string    `json:"companyWebsite"`
	RoleTitle      string    `json:"roleTitle"`
	ExternalLink   string    `json:"externalLink"`
	PostedDate     time.Time `json:"postedDate"`

	Status     JobStatus     `json:"status"`
	SourceType JobSourceType `json:"sourceType"`
	IsVerified bool          `json:"isVerified"`

	ExternalSource      string `json:"externalSource,omitempty"`
	IntelligenceSummary string `json:"intelligenceSummary,omitempty"`

	LocationCity    string `json:"locationCity,omitempty"`
	LocationState   string `json:"locationState,omitempty"`
	LocationCountry string `json:"locationCountry,omitempty"`
	Region          string `json:"region,omitempty"`

	RemotePolicy   RemotePolicy   `json:"remotePolicy,omitempty"`
	EmploymentType EmploymentType `json:"employmentType,omitempty"`
	Seniority      SeniorityLevel `json:"seniority,omitempty"`

	SalaryRange string   `json:"salaryRange,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	// Submitter contact is moderator-only and must be stripped from any
	// public response.
	SubmitterName  string `json:"submitterName,omitempty"`
	SubmitterEmail string `json:"submitterEmail,omitempty"`

	Clicks int64 `json:"clicks"`
}

// Clone returns a deep copy so callers can hand postings to a mutator
// without aliasing the store's snapshot.
func (j JobPosting) Clone() JobPosting {
	out := j
	if j.Tags != nil {
		out.Tags = append([]string(nil), j.Tags...)
	}
	return out
}

// PublicView strips the moderator-only submitter contact fields.
func (j JobPosting) PublicView() JobPosting {
	out := j.Clone()
	out.SubmitterName = ""
	out.SubmitterEmail = ""
	return out
}

// CloneJobs deep-copies a whole collection.
func CloneJobs(jobs []JobPosting) []JobPosting {
	out := make([]JobPosting, len(jobs))
	for i, j := range jobs {
		out[i] = j.Clone()
	}
	return out
}

// ValidStatus reports whether s is one of the four lifecycle statuses.
func ValidStatus(s JobStatus) bool {
	switch s {
	case StatusPending, StatusActive, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// ValidSourceType reports whether s is Direct or Aggregated.
func ValidSourceType(s JobSourceType) bool {
	return s == SourceDirect || s == SourceAggregated
}
