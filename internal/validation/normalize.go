package validation

import (
	"net/mail"
	"strings"
	"time"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// Normalized is the outcome of coercing one raw submission object. Empty
// strings mean the field was absent, blank, or failed coercion.
type Normalized struct {
	CompanyName    string
	CompanyWebsite string
	RoleTitle      string
	ExternalLink   string
	PostedDate     string

	Status     model.JobStatus
	SourceType model.JobSourceType
	IsVerified *bool

	ExternalSource      string
	IntelligenceSummary string

	LocationCity    string
	LocationState   string
	LocationCountry string
	Region          string

	RemotePolicy   model.RemotePolicy
	EmploymentType model.EmploymentType
	Seniority      model.SeniorityLevel

	SalaryRange string
	Currency    string
	Tags        []string

	SubmitterName  string
	SubmitterEmail string

	// Honeypot carries the hidden "website" form field. Real users never
	// fill it in; any value marks the submission as spam.
	Honeypot string
}

// Normalize coerces an arbitrary untrusted object into canonical posting
// fields. It is a pure function: invalid values are dropped per-field, never
// rejected here. Schema enforcement happens in the Check* functions.
func Normalize(input map[string]interface{}) Normalized {
	n := Normalized{
		CompanyName:         CleanString(input["companyName"], MaxCompanyName),
		CompanyWebsite:      CleanURL(input["companyWebsite"]),
		RoleTitle:           CleanString(input["roleTitle"], MaxRoleTitle),
		ExternalLink:        CleanURL(input["externalLink"]),
		PostedDate:          CleanString(input["postedDate"], MaxPostedDate),
		ExternalSource:      CleanString(input["externalSource"], MaxShortField),
		IntelligenceSummary: CleanString(input["intelligenceSummary"], MaxSummary),
		LocationCity:        CleanString(input["locationCity"], MaxShortField),
		LocationState:       CleanString(input["locationState"], MaxShortField),
		LocationCountry:     CleanString(input["locationCountry"], MaxShortField),
		Region:              CleanString(input["region"], MaxShortField),
		RemotePolicy:        NormalizeRemotePolicy(input["remotePolicy"]),
		EmploymentType:      NormalizeEmploymentType(input["employmentType"]),
		Seniority:           NormalizeSeniority(input["seniority"]),
		SalaryRange:         CleanString(input["salaryRange"], MaxShortField),
		Currency:            CleanString(input["currency"], MaxCurrency),
		Tags:                CleanTags(input["tags"]),
		SubmitterName:       CleanString(input["submitterName"], MaxShortField),
		SubmitterEmail:      CleanString(input["submitterEmail"], MaxEmail),
		Honeypot:            CleanString(input["website"], MaxShortField),
	}

	if s := CleanString(input["status"], MaxShortField); s != "" {
		n.Status = model.JobStatus(s)
	}
	if s := CleanString(input["sourceType"], MaxShortField); s != "" {
		n.SourceType = model.JobSourceType(s)
	}
	if b, ok := input["isVerified"].(bool); ok {
		n.IsVerified = &b
	}

	return n
}

// PostedDateOr parses the normalized posted date, falling back when absent
// or unparseable.
func (n Normalized) PostedDateOr(fallback time.Time) time.Time {
	if n.PostedDate == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, n.PostedDate); err == nil {
		return t
	}
	return fallback
}

// ValidEmail reports whether s parses as a bare RFC 5322 address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms like `Name <a@b.example>`.
	return strings.EqualFold(addr.Address, s)
}
