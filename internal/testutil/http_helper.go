// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tariquek-git/CommonJobs/internal/auth"
	"github.com/tariquek-git/CommonJobs/internal/config"
)

// Credentials every test server accepts.
const (
	AdminUsername = "moderator"
	AdminPassword = "correct horse battery staple"
	TokenSecret   = "test-secret-test-secret-test-secret!"
)

// MakeJSONRequest is a helper function for making JSON requests in tests.
// An empty authToken sends no Authorization header.
func MakeJSONRequest(body gin.H, authToken string, r http.Handler, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// TestConfig builds a file-backed config pointing at a fresh temp dir, with
// working admin credentials and generous rate limits so tests that are not
// about limiting never trip them.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := auth.HashPassword(AdminPassword)
	if err != nil {
		t.Fatalf("failed to hash test password: %s", err)
	}

	dir := t.TempDir()
	return &config.Config{
		Env:               "test",
		Port:              0,
		StorageProvider:   config.ProviderFile,
		DataFile:          filepath.Join(dir, "jobs.json"),
		ClickDataFile:     filepath.Join(dir, "clicks.json"),
		AllowOrigins:      []string{"http://localhost:3000"},
		AdminUsername:     AdminUsername,
		AdminPasswordHash: hash,
		AdminTokenSecret:  TokenSecret,
		AdminTokenTTL:     time.Hour,
		RateLimitWindow:   time.Minute,
		RateLimitSubmit:   1000,
		RateLimitLogin:    1000,
		RateLimitClick:    1000,
		ClickDedupWindow:  time.Minute,
	}
}

// AdminToken issues a token the test config's middleware accepts.
func AdminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueAdminToken(TokenSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue test token: %s", err)
	}
	return token
}
