// Package health runs named, tagged health checks and aggregates their
// results into a single report for orchestrator polling. Each run is
// independent; no state is carried between polls.
package health

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Status is the outcome of a check, ordered Healthy < Degraded < Unhealthy.
type Status int

const (
	Healthy Status = iota
	Degraded
	Unhealthy
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "Healthy"
	case Degraded:
		return "Degraded"
	default:
		return "Unhealthy"
	}
}

// NoException is reported in place of a failure description when a check
// succeeds. Monitoring tools parse this literal.
const NoException = "none"

// DefaultTimeout bounds a check that doesn't set its own.
const DefaultTimeout = 3 * time.Second

// TagReady selects the checks evaluated by the readiness endpoint.
const TagReady = "ready"

// DegradedError marks a check failure that should degrade the instance
// rather than fail readiness outright.
type DegradedError struct {
	Reason string
}

func (e *DegradedError) Error() string {
	return e.Reason
}

// CheckFunc probes one dependency. A nil return means healthy. The context
// carries the check's deadline and must be honored.
type CheckFunc func(ctx context.Context) error

// Check is a named probe selected by tag at poll time.
type Check struct {
	Name    string
	Tags    []string
	Timeout time.Duration
	Run     CheckFunc
}

func (c Check) hasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Entry is the per-check section of a report.
type Entry struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Exception string `json:"exception"`
	Duration  string `json:"duration"`
}

// Report is the aggregated poll result. Status is the worst individual
// status observed.
type Report struct {
	Status string  `json:"status"`
	Checks []Entry `json:"checks"`
}

// Registry holds the registered checks. Registration happens at startup;
// Run may be called concurrently by in-flight polls.
type Registry struct {
	mu     sync.RWMutex
	checks []Check
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a check. A zero Timeout gets DefaultTimeout.
func (r *Registry) Register(check Check) {
	if check.Timeout == 0 {
		check.Timeout = DefaultTimeout
	}
	r.mu.Lock()
	r.checks = append(r.checks, check)
	r.mu.Unlock()
}

// Run executes every check carrying the given tag and aggregates the
// results. With no matching checks the report is Healthy and empty.
func (r *Registry) Run(ctx context.Context, tag string) Report {
	r.mu.RLock()
	checks := make([]Check, 0, len(r.checks))
	for _, c := range r.checks {
		if c.hasTag(tag) {
			checks = append(checks, c)
		}
	}
	r.mu.RUnlock()

	report := Report{
		Status: Healthy.String(),
		Checks: make([]Entry, 0, len(checks)),
	}

	worst := Healthy
	for _, check := range checks {
		entry, status := runCheck(ctx, check)
		report.Checks = append(report.Checks, entry)
		if status > worst {
			worst = status
		}
	}

	report.Status = worst.String()
	return report
}

func runCheck(ctx context.Context, check Check) (Entry, Status) {
	checkCtx, cancel := context.WithTimeout(ctx, check.Timeout)
	defer cancel()

	started := time.Now()
	err := check.Run(checkCtx)
	elapsed := time.Since(started)

	status := Healthy
	exception := NoException
	if err != nil {
		exception = err.Error()
		status = Unhealthy
		var degraded *DegradedError
		if errors.As(err, &degraded) {
			status = Degraded
		}
	}

	return Entry{
		Name:      check.Name,
		Status:    status.String(),
		Exception: exception,
		Duration:  elapsed.String(),
	}, status
}
