package validation

import (
	"errors"
	"time"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// Field-grouped rejection messages. The Check functions return the most
// specific applicable one instead of dumping every failing field.
var (
	ErrSpam           = errors.New("Invalid submission payload")
	ErrApplyLink      = errors.New("A valid apply link is required")
	ErrCompanyRole    = errors.New("Company name and role title are required")
	ErrSubmitterEmail = errors.New("A valid contact email is required")
	ErrLocation       = errors.New("City and country are required")
	ErrInvalidPayload = errors.New("Invalid job payload")
	ErrInvalidStatus  = errors.New("Invalid status payload")
)

// CheckPublicSubmission enforces the public submission schema against an
// already-normalized object.
func CheckPublicSubmission(n Normalized) error {
	if n.Honeypot != "" {
		return ErrSpam
	}
	if n.ExternalLink == "" {
		return ErrApplyLink
	}
	if n.CompanyName == "" || n.RoleTitle == "" {
		return ErrCompanyRole
	}
	if n.SubmitterEmail == "" || !ValidEmail(n.SubmitterEmail) {
		return ErrSubmitterEmail
	}
	if n.LocationCity == "" || n.LocationCountry == "" {
		return ErrLocation
	}
	return nil
}

// PublicJob builds the posting an accepted public submission becomes. The
// lifecycle fields are force-set regardless of what the submitter supplied:
// pending, Direct, verified, with provenance defaulting to "Direct".
func PublicJob(n Normalized, now time.Time) model.JobPosting {
	externalSource := n.ExternalSource
	if externalSource == "" {
		externalSource = "Direct"
	}

	return model.JobPosting{
		CompanyName:         n.CompanyName,
		CompanyWebsite:      n.CompanyWebsite,
		RoleTitle:           n.RoleTitle,
		ExternalLink:        n.ExternalLink,
		PostedDate:          n.PostedDateOr(now),
		Status:              model.StatusPending,
		SourceType:          model.SourceDirect,
		IsVerified:          true,
		ExternalSource:      externalSource,
		IntelligenceSummary: n.IntelligenceSummary,
		LocationCity:        n.LocationCity,
		LocationState:       n.LocationState,
		LocationCountry:     n.LocationCountry,
		Region:              n.Region,
		RemotePolicy:        n.RemotePolicy,
		EmploymentType:      n.EmploymentType,
		Seniority:           n.Seniority,
		SalaryRange:         n.SalaryRange,
		Currency:            n.Currency,
		Tags:                n.Tags,
		SubmitterName:       n.SubmitterName,
		SubmitterEmail:      n.SubmitterEmail,
	}
}

// CheckAdminCreate enforces the admin creation schema: same field rules as
// public submissions minus the submitter requirements, plus explicit
// lifecycle fields.
func CheckAdminCreate(n Normalized) error {
	if n.ExternalLink == "" {
		return ErrApplyLink
	}
	if n.CompanyName == "" || n.RoleTitle == "" {
		return ErrCompanyRole
	}
	if !model.ValidStatus(n.Status) || !model.ValidSourceType(n.SourceType) || n.IsVerified == nil {
		return ErrInvalidPayload
	}
	return nil
}

// AdminJob builds the posting an admin creation becomes.
func AdminJob(n Normalized, now time.Time) model.JobPosting {
	job := PublicJob(n, now)
	job.Status = n.Status
	job.SourceType = n.SourceType
	job.IsVerified = *n.IsVerified
	if n.ExternalSource == "" {
		job.ExternalSource = ""
	}
	return job
}

// ApplyAdminUpdate merges normalized non-absent fields onto an existing
// posting. Absent fields never clear existing values; id, clicks and the
// posted date (unless explicitly re-supplied) are untouched.
func ApplyAdminUpdate(current model.JobPosting, n Normalized) model.JobPosting {
	next := current.Clone()

	if n.CompanyName != "" {
		next.CompanyName = n.CompanyName
	}
	if n.CompanyWebsite != "" {
		next.CompanyWebsite = n.CompanyWebsite
	}
	if n.RoleTitle != "" {
		next.RoleTitle = n.RoleTitle
	}
	if n.ExternalLink != "" {
		next.ExternalLink = n.ExternalLink
	}
	if t, err := time.Parse(time.RFC3339, n.PostedDate); n.PostedDate != "" && err == nil {
		next.PostedDate = t
	}
	if model.ValidStatus(n.Status) {
		next.Status = n.Status
	}
	if model.ValidSourceType(n.SourceType) {
		next.SourceType = n.SourceType
	}
	if n.IsVerified != nil {
		next.IsVerified = *n.IsVerified
	}
	if n.ExternalSource != "" {
		next.ExternalSource = n.ExternalSource
	}
	if n.IntelligenceSummary != "" {
		next.IntelligenceSummary = n.IntelligenceSummary
	}
	if n.LocationCity != "" {
		next.LocationCity = n.LocationCity
	}
	if n.LocationState != "" {
		next.LocationState = n.LocationState
	}
	if n.LocationCountry != "" {
		next.LocationCountry = n.LocationCountry
	}
	if n.Region != "" {
		next.Region = n.Region
	}
	if n.RemotePolicy != "" {
		next.RemotePolicy = n.RemotePolicy
	}
	if n.EmploymentType != "" {
		next.EmploymentType = n.EmploymentType
	}
	if n.Seniority != "" {
		next.Seniority = n.Seniority
	}
	if n.SalaryRange != "" {
		next.SalaryRange = n.SalaryRange
	}
	if n.Currency != "" {
		next.Currency = n.Currency
	}
	if n.Tags != nil {
		next.Tags = n.Tags
	}
	if n.SubmitterName != "" {
		next.SubmitterName = n.SubmitterName
	}
	if n.SubmitterEmail != "" {
		next.SubmitterEmail = n.SubmitterEmail
	}

	return next
}
