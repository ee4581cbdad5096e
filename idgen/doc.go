// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package idgen generates identifiers for projects and votes.

# Project IDs

NewProjectID returns a 10-character base62 string (0-9, a-z, A-Z) read
from crypto/rand. It appears in URLs such as /api/projects/{id}:

	id, err := idgen.NewProjectID()

# Vote IDs

NewVoteID returns a random UUID string:

	id, err := idgen.NewVoteID()

Both functions only fail if the system random source fails.
*/
package idgen
