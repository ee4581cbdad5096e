// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/project-votes/models"
	"github.com/danielhkuo/project-votes/store"
	"github.com/danielhkuo/project-votes/testutil"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	st := testutil.NewTestStore(t, store.WithClock(steppingClock()))
	cfg := testutil.GetTestConfig()

	projectHandler := NewProjectHandler(st, cfg)
	votingHandler := NewVotingHandler(st, cfg)
	leaderboardHandler := NewLeaderboardHandler(st, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("POST /api/projects/{id}/vote", votingHandler.SubmitVote)
	mux.HandleFunc("GET /api/leaderboard", leaderboardHandler.GetLeaderboard)
	return mux
}

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Create projects
// 2. Submit votes
// 3. Read one project back with its averages
// 4. List projects
// 5. Check the leaderboard
func TestFullVotingWorkflow(t *testing.T) {
	mux := newTestMux(t)

	// Step 1: Create projects
	names := []string{"Alpha", "Beta", "Gamma"}
	ids := make(map[string]string)
	for _, name := range names {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/projects", models.CreateProjectRequest{Name: name}, nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 1 - Create %s failed: %d - %s", name, w.Code, w.Body.String())
		}
		var p models.Project
		testutil.AssertJSON(t, w, &p)
		ids[name] = p.ID
	}
	t.Logf("Step 1 - Created projects: %v", ids)

	// Step 2: Submit votes (Alpha 10 and 2, Gamma 8, Beta none)
	votes := []struct {
		project string
		score   int
	}{
		{"Alpha", 10},
		{"Alpha", 2},
		{"Gamma", 8},
	}
	for _, v := range votes {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/projects/"+ids[v.project]+"/vote", testutil.VoteBody(v.score), nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Vote on %s failed: %d - %s", v.project, w.Code, w.Body.String())
		}
	}

	// Step 3: Read Alpha back
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/projects/"+ids["Alpha"], nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var detail models.ProjectDetail
	testutil.AssertJSON(t, w, &detail)
	if len(detail.Votes) != 2 {
		t.Fatalf("Step 3 - Expected 2 votes, got %d", len(detail.Votes))
	}
	if detail.Votes[0].GeneralUsefulness != 10 || detail.Votes[1].GeneralUsefulness != 2 {
		t.Errorf("Step 3 - Votes out of submission order: %+v", detail.Votes)
	}
	if detail.Averages.Overall != 6.0 {
		t.Errorf("Step 3 - Expected overall 6.0, got %v", detail.Averages.Overall)
	}

	// Step 4: List projects, newest first
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/projects", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var summaries []models.ProjectSummary
	testutil.AssertJSON(t, w, &summaries)
	if len(summaries) != 3 {
		t.Fatalf("Step 4 - Expected 3 projects, got %d", len(summaries))
	}
	if summaries[0].ID != ids["Gamma"] || summaries[2].ID != ids["Alpha"] {
		t.Errorf("Step 4 - Expected newest first, got %s..%s", summaries[0].Name, summaries[2].Name)
	}

	// Step 5: Leaderboard
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/leaderboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var board []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &board)

	expected := []string{"Gamma", "Alpha", "Beta"}
	for i, name := range expected {
		if board[i].Name != name {
			t.Errorf("Step 5 - Rank %d: expected %s, got %s", i+1, name, board[i].Name)
		}
	}
	if board[2].Averages.HasVotes() {
		t.Error("Step 5 - Unvoted project should report no votes")
	}
}

func TestVoteOnUnknownProjectLeavesLeaderboardUnchanged(t *testing.T) {
	mux := newTestMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/projects/missing/vote", testutil.VoteBody(5), nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/leaderboard", nil))

	var board []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &board)
	if len(board) != 0 {
		t.Errorf("Expected empty leaderboard, got %d entries", len(board))
	}
}
