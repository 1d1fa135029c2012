package ai

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	locationRe   = regexp.MustCompile(`(?i)\bin\s+([A-Za-z .'-]+),\s*([A-Za-z .'-]+?)(?:[.!?,;\n]|$)`)
	hiringRe     = regexp.MustCompile(`(?i)^([A-Za-z0-9& .'-]{2,80})\s+is hiring\s+(?:an?\s+)?([^.,\n]+)`)

	range24hRe = regexp.MustCompile(`\b(today|24h|last 24 hours)\b`)
	range7dRe  = regexp.MustCompile(`\b(7d|7 days|week)\b`)
	range30dRe = regexp.MustCompile(`\b(30d|30 days|month)\b`)
)

type tagMatcher struct {
	label   string
	pattern *regexp.Regexp
}

var tagMatchers = []tagMatcher{
	{"Payments", regexp.MustCompile(`(?i)\bpayments?\b`)},
	{"Risk", regexp.MustCompile(`(?i)\brisk\b`)},
	{"Compliance", regexp.MustCompile(`(?i)\bcompliance\b`)},
	{"Product", regexp.MustCompile(`(?i)\bproduct\b`)},
	{"Engineering", regexp.MustCompile(`(?i)\bengineer|engineering\b`)},
	{"Analytics", regexp.MustCompile(`(?i)\banalytics?|analysis\b`)},
	{"Fintech", regexp.MustCompile(`(?i)\bfintech\b`)},
	{"SQL", regexp.MustCompile(`(?i)\bsql\b`)},
	{"API", regexp.MustCompile(`(?i)\bapi(s)?\b`)},
}

func compact(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

func inferRemotePolicy(lower string) string {
	switch {
	case strings.Contains(lower, "hybrid"):
		return "Hybrid"
	case strings.Contains(lower, "remote"):
		return "Remote"
	case strings.Contains(lower, "onsite"), strings.Contains(lower, "on-site"), strings.Contains(lower, "on site"):
		return "Onsite"
	}
	return ""
}

func inferEmploymentType(lower string) string {
	switch {
	case strings.Contains(lower, "full-time"), strings.Contains(lower, "full time"):
		return "Full-time"
	case strings.Contains(lower, "contract"):
		return "Contract"
	case strings.Contains(lower, "intern"):
		return "Internship"
	}
	return ""
}

func inferSeniority(lower string) string {
	switch {
	case strings.Contains(lower, "executive"), strings.Contains(lower, "director"), strings.Contains(lower, "vp"):
		return "Executive"
	case strings.Contains(lower, "lead"), strings.Contains(lower, "principal"), strings.Contains(lower, "staff"):
		return "Lead"
	case strings.Contains(lower, "senior"), strings.Contains(lower, "sr."):
		return "Senior"
	case strings.Contains(lower, "mid-level"), strings.Contains(lower, "mid level"), strings.Contains(lower, "intermediate"):
		return "Mid-Level"
	case strings.Contains(lower, "junior"), strings.Contains(lower, "jr."):
		return "Junior"
	}
	return ""
}

func inferTags(text string) []string {
	tags := []string{}
	for _, m := range tagMatchers {
		if m.pattern.MatchString(text) {
			tags = append(tags, m.label)
		}
	}
	if len(tags) > 8 {
		tags = tags[:8]
	}
	return tags
}

// splitSentences breaks compacted text at terminal punctuation followed by
// a space.
func splitSentences(cleaned string) []string {
	sentences := []string{}
	start := 0
	for i := 0; i < len(cleaned)-1; i++ {
		if (cleaned[i] == '.' || cleaned[i] == '!' || cleaned[i] == '?') && cleaned[i+1] == ' ' {
			sentences = append(sentences, cleaned[start:i+1])
			start = i + 2
		}
	}
	if start < len(cleaned) {
		sentences = append(sentences, cleaned[start:])
	}
	return sentences
}

// buildSummary keeps the first two sentences, capped at 360 characters.
func buildSummary(description string) string {
	cleaned := compact(description)
	if cleaned == "" {
		return ""
	}
	sentences := splitSentences(cleaned)
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	summary := truncate(strings.Join(sentences, " "), 360)
	return compact(summary)
}

// HeuristicAnalyzeJobDescription extracts posting metadata without a model.
// It recognizes the common "Acme is hiring a Senior Analyst in Toronto,
// Canada" phrasing and keyword-infers the classification fields.
func HeuristicAnalyzeJobDescription(description string) JobAnalysis {
	cleaned := compact(description)
	lower := strings.ToLower(cleaned)

	analysis := JobAnalysis{
		Summary:        buildSummary(cleaned),
		RemotePolicy:   inferRemotePolicy(lower),
		EmploymentType: inferEmploymentType(lower),
		Seniority:      inferSeniority(lower),
		Tags:           inferTags(cleaned),
	}

	if m := hiringRe.FindStringSubmatch(cleaned); m != nil {
		analysis.CompanyName = strings.TrimSpace(m[1])
		analysis.RoleTitle = strings.TrimSpace(m[2])
	}
	if m := locationRe.FindStringSubmatch(cleaned); m != nil {
		analysis.LocationCity = strings.TrimSpace(m[1])
		analysis.LocationCountry = strings.TrimSpace(m[2])
	}
	return analysis
}

// HeuristicParseSearchQuery keyword-scans a query into filter criteria.
// Unlike the posting analyzer, every matching classification is collected
// rather than just the strongest one.
func HeuristicParseSearchQuery(query string) SearchIntent {
	cleaned := compact(query)
	lower := strings.ToLower(cleaned)

	intent := SearchIntent{
		Keyword:         cleaned,
		RemotePolicies:  []string{},
		EmploymentTypes: []string{},
		SeniorityLevels: []string{},
		DateRange:       "all",
	}

	if strings.Contains(lower, "remote") {
		intent.RemotePolicies = append(intent.RemotePolicies, "Remote")
	}
	if strings.Contains(lower, "hybrid") {
		intent.RemotePolicies = append(intent.RemotePolicies, "Hybrid")
	}
	if strings.Contains(lower, "onsite") || strings.Contains(lower, "on-site") || strings.Contains(lower, "on site") {
		intent.RemotePolicies = append(intent.RemotePolicies, "Onsite")
	}

	if strings.Contains(lower, "full-time") || strings.Contains(lower, "full time") {
		intent.EmploymentTypes = append(intent.EmploymentTypes, "Full-time")
	}
	if strings.Contains(lower, "contract") {
		intent.EmploymentTypes = append(intent.EmploymentTypes, "Contract")
	}
	if strings.Contains(lower, "intern") {
		intent.EmploymentTypes = append(intent.EmploymentTypes, "Internship")
	}

	if strings.Contains(lower, "junior") || strings.Contains(lower, "jr") {
		intent.SeniorityLevels = append(intent.SeniorityLevels, "Junior")
	}
	if strings.Contains(lower, "mid") {
		intent.SeniorityLevels = append(intent.SeniorityLevels, "Mid-Level")
	}
	if strings.Contains(lower, "senior") || strings.Contains(lower, "sr") {
		intent.SeniorityLevels = append(intent.SeniorityLevels, "Senior")
	}
	if strings.Contains(lower, "lead") || strings.Contains(lower, "principal") || strings.Contains(lower, "staff") {
		intent.SeniorityLevels = append(intent.SeniorityLevels, "Lead")
	}
	if strings.Contains(lower, "executive") || strings.Contains(lower, "director") || strings.Contains(lower, "vp") {
		intent.SeniorityLevels = append(intent.SeniorityLevels, "Executive")
	}

	switch {
	case range24hRe.MatchString(lower):
		intent.DateRange = "24h"
	case range7dRe.MatchString(lower):
		intent.DateRange = "7d"
	case range30dRe.MatchString(lower):
		intent.DateRange = "30d"
	}
	return intent
}
