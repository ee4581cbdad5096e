// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/project-votes/idgen"
	"github.com/danielhkuo/project-votes/kv"
	"github.com/danielhkuo/project-votes/models"
)

// ErrEmptyName is returned by CreateProject when the name is blank.
var ErrEmptyName = errors.New("project name is empty")

// Key layout
const indexKey = "projects"

func projectKey(id string) string { return "project:" + id }
func votesKey(id string) string   { return "votes:" + id }

// voteFetchLimit bounds concurrent vote-list reads while listing.
const voteFetchLimit = 8

// Store owns every read and write of projects and votes. It holds no
// state of its own beyond the substrate handle, so one instance is
// shared by all requests.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(st kv.Store, opts ...Option) *Store {
	s := &Store{kv: st, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewProject is the input to CreateProject.
type NewProject struct {
	Name        string
	Description string
	ImageURL    string
}

// CreateProject stores a project record and indexes it by creation time.
// The record is written before the index entry, so a failure in between
// leaves an unlisted record rather than a dangling index entry.
func (s *Store) CreateProject(ctx context.Context, in NewProject) (models.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Project{}, ErrEmptyName
	}

	id, err := idgen.NewProjectID()
	if err != nil {
		return models.Project{}, err
	}

	meta := models.ProjectMeta{
		ID:          id,
		Name:        name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   s.now().UnixMilli(),
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to encode project: %w", err)
	}

	if err := s.kv.Set(ctx, projectKey(id), data); err != nil {
		return models.Project{}, fmt.Errorf("failed to store project: %w", err)
	}
	if err := s.kv.ZAdd(ctx, indexKey, float64(meta.CreatedAt), id); err != nil {
		return models.Project{}, fmt.Errorf("failed to index project: %w", err)
	}

	return models.Project{ProjectMeta: meta, Votes: []models.Vote{}}, nil
}

// GetProject returns the project with all its votes. ok is false when no
// project has that id.
func (s *Store) GetProject(ctx context.Context, id string) (project models.Project, ok bool, err error) {
	meta, ok, err := s.getMeta(ctx, id)
	if err != nil || !ok {
		return models.Project{}, ok, err
	}

	votes, err := s.getVotes(ctx, id)
	if err != nil {
		return models.Project{}, false, err
	}

	return models.Project{ProjectMeta: meta, Votes: votes}, true, nil
}

// GetProjects returns up to limit projects, newest first; limit 0 returns
// every project. Indexed ids whose record is missing are skipped.
func (s *Store) GetProjects(ctx context.Context, limit int) ([]models.Project, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	ids, err := s.kv.ZRevRange(ctx, indexKey, 0, stop)
	if err != nil {
		return nil, fmt.Errorf("failed to read project index: %w", err)
	}
	if len(ids) == 0 {
		return []models.Project{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}

	records, err := s.kv.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	// One slot per index entry keeps the index order regardless of which
	// vote fetch finishes first.
	slots := make([]*models.Project, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(voteFetchLimit)
	for i, record := range records {
		if record == nil {
			slog.Warn("indexed project has no record, skipping", "project_id", ids[i])
			continue
		}

		var meta models.ProjectMeta
		if err := json.Unmarshal(record, &meta); err != nil {
			slog.Warn("project record is unreadable, skipping", "project_id", ids[i], "error", err)
			continue
		}

		g.Go(func() error {
			votes, err := s.getVotes(gctx, meta.ID)
			if err != nil {
				return err
			}
			slots[i] = &models.Project{ProjectMeta: meta, Votes: votes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(slots))
	for _, p := range slots {
		if p != nil {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

// AddVote appends a vote to the project's vote list. ok is false, and
// nothing is written, when the project does not exist.
//
// The existence check and the append are separate calls. Concurrent votes
// are all kept because each append is atomic on its own.
func (s *Store) AddVote(ctx context.Context, projectID string, scores models.Scores) (vote models.Vote, ok bool, err error) {
	_, ok, err = s.getMeta(ctx, projectID)
	if err != nil || !ok {
		return models.Vote{}, ok, err
	}

	id, err := idgen.NewVoteID()
	if err != nil {
		return models.Vote{}, false, err
	}

	vote = models.Vote{
		ID:        id,
		Scores:    scores,
		CreatedAt: s.now().UnixMilli(),
	}

	data, err := json.Marshal(vote)
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("failed to encode vote: %w", err)
	}

	if err := s.kv.RPush(ctx, votesKey(projectID), data); err != nil {
		return models.Vote{}, false, fmt.Errorf("failed to append vote: %w", err)
	}

	return vote, true, nil
}

// Leaderboard returns every project ranked by overall average.
func (s *Store) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	projects, err := s.GetProjects(ctx, 0)
	if err != nil {
		return nil, err
	}
	return RankProjects(projects), nil
}

// Ping reports whether the substrate is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return kv.Ping(ctx, s.kv)
}

func (s *Store) getMeta(ctx context.Context, id string) (models.ProjectMeta, bool, error) {
	data, err := s.kv.Get(ctx, projectKey(id))
	if errors.Is(err, kv.ErrNil) {
		return models.ProjectMeta{}, false, nil
	}
	if err != nil {
		return models.ProjectMeta{}, false, fmt.Errorf("failed to read project %s: %w", id, err)
	}

	var meta models.ProjectMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return models.ProjectMeta{}, false, fmt.Errorf("failed to decode project %s: %w", id, err)
	}
	return meta, true, nil
}

func (s *Store) getVotes(ctx context.Context, projectID string) ([]models.Vote, error) {
	elems, err := s.kv.LRange(ctx, votesKey(projectID))
	if err != nil {
		return nil, fmt.Errorf("failed to read votes for %s: %w", projectID, err)
	}

	votes := make([]models.Vote, len(elems))
	for i, e := range elems {
		if err := json.Unmarshal(e, &votes[i]); err != nil {
			return nil, fmt.Errorf("failed to decode vote %d of %s: %w", i, projectID, err)
		}
	}
	return votes, nil
}
