// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics defines the Prometheus collectors exported at /metrics.

HTTP traffic is recorded by middleware.WithLogging using the route pattern
(for example "POST /api/projects/{id}/vote") as the label, so project ids
never become label values. Domain counters are incremented by the handlers
after a successful write.
*/
package metrics
