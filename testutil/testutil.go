// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/project-votes/cliparse"
	"github.com/danielhkuo/project-votes/kv"
	"github.com/danielhkuo/project-votes/models"
	"github.com/danielhkuo/project-votes/store"
)

// NewTestStore returns a store over a fresh in-memory substrate. The
// substrate is closed when the test ends.
func NewTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()

	mem := kv.NewMemory()
	t.Cleanup(func() { mem.Close() })

	return store.New(mem, opts...)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		Backend:      kv.BackendMemory,
		ListLimit:    cliparse.DefaultListLimit,
		MaxBodyBytes: cliparse.DefaultMaxBodyBytes,
	}
}

// CreateTestProject creates a project with the given name and returns it
func CreateTestProject(t *testing.T, st *store.Store, name string) models.Project {
	t.Helper()

	p, err := st.CreateProject(context.Background(), store.NewProject{
		Name:        name,
		Description: "A test project",
	})
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return p
}

// AddTestVote records a vote giving every criterion the same score
func AddTestVote(t *testing.T, st *store.Store, projectID string, score int) models.Vote {
	t.Helper()

	v, ok, err := st.AddVote(context.Background(), projectID, UniformScores(score))
	if err != nil {
		t.Fatalf("Failed to add test vote: %v", err)
	}
	if !ok {
		t.Fatalf("Failed to add test vote: project %s not found", projectID)
	}
	return v
}

// UniformScores gives every criterion the same value
func UniformScores(score int) models.Scores {
	return models.Scores{
		GeneralUsefulness: score,
		UsefulnessToYearn: score,
		Creativity:        score,
		ExecutionClarity:  score,
	}
}

// VoteBody builds a vote request body with every criterion set to score
func VoteBody(score int) map[string]any {
	return map[string]any{
		models.CriterionGeneralUsefulness: score,
		models.CriterionUsefulnessToYearn: score,
		models.CriterionCreativity:        score,
		models.CriterionExecutionClarity:  score,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
