// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence and aggregation layer for projects and votes.

# Key Layout

All data lives in a kv.Store:

	project:{id}   JSON ProjectMeta
	projects       sorted set, member = id, score = createdAt (ms)
	votes:{id}     list of JSON votes, submission order

# Operations

	st := store.New(kvStore)

	p, err := st.CreateProject(ctx, store.NewProject{Name: "Foo"})
	p, ok, err := st.GetProject(ctx, id)
	ps, err := st.GetProjects(ctx, 10)       // 0 = all, newest first
	v, ok, err := st.AddVote(ctx, id, scores)
	board, err := st.Leaderboard(ctx)

ok == false means the project does not exist; it is not an error.

GetProjects skips indexed ids whose record is missing instead of failing,
and reads each project's votes concurrently (bounded) while keeping the
index order.

# Averages

ComputeAverages is a pure function of a vote slice. Nothing derived is ever
stored, so averages always reflect the latest vote. An empty slice gives
Count 0 and zero means; check Averages.HasVotes before showing them.

# Ranking

Rank puts voted projects first, ordered by overall average descending,
followed by unvoted projects in their original order.

# Concurrency

There are no locks and no transactions. AddVote checks existence and then
appends; concurrent votes for one project are all kept because each append
is atomic in the substrate.
*/
package store
