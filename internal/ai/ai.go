// Package ai extracts structured job metadata from free text. It is a
// two-tier strategy: a best-effort call to an external text model, and a
// deterministic keyword heuristic that implements the same output shape
// when the model is unconfigured or fails.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// maxPromptChars caps how much of a posting is forwarded to the model.
const maxPromptChars = 8000

// Source reports which tier produced a result.
type Source string

// Extraction sources.
const (
	SourceModel     Source = "model"
	SourceHeuristic Source = "heuristic"
)

// JobAnalysis is the structured extraction from a raw job description.
// Enum-like fields are raw strings here; callers run them through the
// validation normalizers before trusting them.
type JobAnalysis struct {
	RoleTitle       string   `json:"roleTitle"`
	CompanyName     string   `json:"companyName"`
	Summary         string   `json:"summary"`
	LocationCity    string   `json:"locationCity"`
	LocationState   string   `json:"locationState"`
	LocationCountry string   `json:"locationCountry"`
	RemotePolicy    string   `json:"remotePolicy"`
	EmploymentType  string   `json:"employmentType"`
	Seniority       string   `json:"seniority"`
	SalaryRange     string   `json:"salaryRange"`
	Currency        string   `json:"currency"`
	Tags            []string `json:"tags"`
}

// SearchIntent is the structured interpretation of a natural-language
// search query.
type SearchIntent struct {
	Keyword         string   `json:"keyword"`
	RemotePolicies  []string `json:"remotePolicies"`
	EmploymentTypes []string `json:"employmentTypes"`
	SeniorityLevels []string `json:"seniorityLevels"`
	DateRange       string   `json:"dateRange"`
}

// Service calls the external model when configured. A zero key disables
// the remote tier entirely.
type Service struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewService builds an extraction service. model names the chat model to
// request; endpoint overrides are for tests.
func NewService(apiKey, model string) *Service {
	return &Service{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

// SetEndpoint points the service at a different completions URL. Test hook.
func (s *Service) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

// Configured reports whether the remote tier can be attempted.
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

// AnalyzeJobDescription extracts posting metadata, degrading to the
// heuristic extractor on any model failure. The returned source tells the
// caller which tier ran.
func (s *Service) AnalyzeJobDescription(ctx context.Context, description string) (JobAnalysis, Source) {
	if s.Configured() && strings.TrimSpace(description) != "" {
		var out JobAnalysis
		prompt := fmt.Sprintf(
			"Extract structured job metadata and a concise summary from this posting. "+
				"Respond ONLY with a JSON object with keys roleTitle, companyName, summary, "+
				"locationCity, locationState, locationCountry, remotePolicy, employmentType, "+
				"seniority, salaryRange, currency, tags (string array).\n\n%s",
			truncate(description, maxPromptChars),
		)
		if err := s.complete(ctx, prompt, &out); err == nil {
			return out, SourceModel
		} else {
			log.Printf("ai: model extraction failed, using heuristic: %v", err)
		}
	}
	return HeuristicAnalyzeJobDescription(description), SourceHeuristic
}

// ParseSearchQuery translates a search query into filter criteria with the
// same degradation policy as AnalyzeJobDescription.
func (s *Service) ParseSearchQuery(ctx context.Context, query string) (SearchIntent, Source) {
	if s.Configured() && strings.TrimSpace(query) != "" {
		var out SearchIntent
		prompt := strings.Join([]string{
			"Translate this job search query into filter JSON.",
			"Return JSON only (no markdown).",
			"Use these enums:",
			`- dateRange: "all" | "24h" | "7d" | "30d"`,
			`- remotePolicies: ["Onsite" | "Hybrid" | "Remote"]`,
			`- employmentTypes: ["Full-time" | "Contract" | "Internship"]`,
			`- seniorityLevels: ["Junior" | "Mid-Level" | "Senior" | "Lead" | "Executive"]`,
			"",
			"Query: " + query,
		}, "\n")
		if err := s.complete(ctx, prompt, &out); err == nil {
			return out, SourceModel
		} else {
			log.Printf("ai: model search parse failed, using heuristic: %v", err)
		}
	}
	return HeuristicParseSearchQuery(query), SourceHeuristic
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete runs one chat completion and decodes the model's JSON answer
// into out.
func (s *Service) complete(ctx context.Context, prompt string, out interface{}) error {
	requestBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a job posting analyst. You must respond only with valid JSON."},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call model API: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Printf("ai: failed to close response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("model API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return fmt.Errorf("no response from model")
	}

	content := chatResp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		// Models occasionally wrap JSON in prose despite the instruction.
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start >= 0 && end > start {
			if err := json.Unmarshal([]byte(content[start:end+1]), out); err == nil {
				return nil
			}
		}
		return fmt.Errorf("failed to parse model response: %w (response: %s)", err, content)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Count characters so multi-byte text is never cut mid-rune.
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
