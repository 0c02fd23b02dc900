package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"skincare-backend/internal/shared/telemetry"
)

const (
	defaultTimeout = 2 * time.Second

	statusOK   = "ok"
	statusFail = "fail"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

// Report is the health payload. OK is false when any check fails. Checks maps
// each check to "ok" or "fail"; failure detail goes to the log only.
type Report struct {
	OK     bool              `json:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Service runs registered dependency checks.
type Service struct {
	mu      sync.RWMutex
	checks  map[string]Checker
	timeout time.Duration
}

// NewService constructs a health service. A zero timeout uses two seconds.
func NewService(timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{checks: make(map[string]Checker), timeout: timeout}
}

// Register adds or replaces the named check.
func (s *Service) Register(name string, check Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks[name] = check
}

// Status runs every check concurrently, each bounded by the service timeout.
func (s *Service) Status(ctx context.Context) Report {
	s.mu.RLock()
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	checks := make(map[string]Checker, len(s.checks))
	for k, v := range s.checks {
		checks[k] = v
	}
	s.mu.RUnlock()
	sort.Strings(names)

	results := make([]string, len(names))
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()
			if err := checks[name](cctx); err != nil {
				telemetry.Warn("health.check_failed", map[string]any{"check": name, "error": err.Error()})
				results[i] = statusFail
				return nil
			}
			results[i] = statusOK
			return nil
		})
	}
	_ = g.Wait()

	report := Report{OK: true}
	if len(names) > 0 {
		report.Checks = make(map[string]string, len(names))
	}
	for i, name := range names {
		report.Checks[name] = results[i]
		if results[i] != statusOK {
			report.OK = false
		}
	}
	return report
}
