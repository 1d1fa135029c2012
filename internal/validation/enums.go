package validation

import (
	"strings"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// NormalizeRemotePolicy maps a raw value onto the canonical remote policy
// set. Exact matches win; otherwise common synonyms are recognized and
// anything else is dropped rather than failing the submission.
func NormalizeRemotePolicy(value interface{}) model.RemotePolicy {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	switch model.RemotePolicy(trimmed) {
	case model.RemoteOnsite, model.RemoteHybrid, model.RemoteRemote:
		return model.RemotePolicy(trimmed)
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, "remote"):
		return model.RemoteRemote
	case strings.Contains(lower, "hybrid"):
		return model.RemoteHybrid
	case strings.Contains(lower, "on-site"), strings.Contains(lower, "onsite"),
		lower == "on site", lower == "on":
		return model.RemoteOnsite
	}
	return ""
}

// NormalizeEmploymentType maps a raw value onto the canonical employment
// type set, tolerating synonyms like "full time".
func NormalizeEmploymentType(value interface{}) model.EmploymentType {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	switch model.EmploymentType(trimmed) {
	case model.EmploymentFullTime, model.EmploymentContract, model.EmploymentInternship:
		return model.EmploymentType(trimmed)
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, "full"):
		return model.EmploymentFullTime
	case strings.Contains(lower, "contract"):
		return model.EmploymentContract
	case strings.Contains(lower, "intern"):
		return model.EmploymentInternship
	}
	return ""
}

// NormalizeSeniority maps a raw value onto the canonical seniority set,
// tolerating synonyms like "sr", "staff" or "vp".
func NormalizeSeniority(value interface{}) model.SeniorityLevel {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	switch model.SeniorityLevel(trimmed) {
	case model.SeniorityJunior, model.SeniorityMidLevel, model.SenioritySenior,
		model.SeniorityLead, model.SeniorityExecutive:
		return model.SeniorityLevel(trimmed)
	}

	lower := strings.ToLower(trimmed)
	switch {
	case lower == "jr", strings.Contains(lower, "junior"):
		return model.SeniorityJunior
	case strings.Contains(lower, "mid"):
		return model.SeniorityMidLevel
	case lower == "sr", strings.Contains(lower, "senior"):
		return model.SenioritySenior
	case strings.Contains(lower, "lead"), strings.Contains(lower, "staff"),
		strings.Contains(lower, "principal"):
		return model.SeniorityLead
	case strings.Contains(lower, "exec"), strings.Contains(lower, "director"),
		strings.Contains(lower, "vp"), strings.Contains(lower, "head"):
		return model.SeniorityExecutive
	}
	return ""
}
