// Package validation coerces untrusted submission input into canonical
// job posting fields and enforces the submission schema.
package validation

import (
	"net/url"
	"strings"
)

// Length caps for incoming text fields.
const (
	MaxCompanyName = 120
	MaxRoleTitle   = 180
	MaxSummary     = 1200
	MaxShortField  = 120
	MaxCurrency    = 12
	MaxEmail       = 200
	MaxPostedDate  = 40
	MaxTagLength   = 32
	MaxTags        = 8
)

// CleanString trims a raw value and caps it at maxLength. Non-string input
// and blank strings normalize to the empty string, meaning "absent".
func CleanString(value interface{}, maxLength int) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) > maxLength {
		// The cap counts characters, not bytes, so multi-byte text keeps
		// its full allowance and never ends mid-rune.
		if runes := []rune(trimmed); len(runes) > maxLength {
			return string(runes[:maxLength])
		}
	}
	return trimmed
}

// CleanURL coerces a raw value into an absolute http(s) URL. A missing
// scheme gets https:// prepended; anything that still fails to parse as an
// absolute http(s) URL is dropped.
func CleanURL(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	candidate := trimmed
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return ""
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ""
	}
	return parsed.String()
}

// CleanTags filters a raw value down to a deduplicated, length-capped tag
// list. Non-array input is dropped entirely; an empty result is absent.
func CleanTags(value interface{}) []string {
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		tag := CleanString(entry, MaxTagLength)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
		if len(out) == MaxTags {
			break
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
