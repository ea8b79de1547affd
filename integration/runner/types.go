package runner

import (
	"time"

	"github.com/google/uuid"
)

// TestSuite defines a group of route queries and their expected answers.
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name  string     `json:"name"`
	Steps []TestStep `json:"steps,omitempty"` // Used for regular tests
	Cases []string   `json:"cases,omitempty"` // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep is one GET /v1/route request.
type TestStep struct {
	Name         string       `json:"name,omitempty"`
	Start        string       `json:"start"`
	End          string       `json:"end"`
	Capabilities []string     `json:"capabilities,omitempty"`
	Expectations Expectations `json:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	Status        *int     `json:"status,omitempty"`  // HTTP status, 200 when unset
	Outcome       *string  `json:"outcome,omitempty"` // arrived, found or not_found
	Hops          *int     `json:"hops,omitempty"`
	Portals       []string `json:"portals,omitempty"` // Exact portal sequence, in order
	Through       []string `json:"through,omitempty"` // Locations the path must visit
	ErrorContains string   `json:"error_contains,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	TestName string
	StepName string
	Success  bool
	Error    error
	Duration time.Duration
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job      TestJob
	Results  []TestResult
	Error    error
	Duration time.Duration
	RunID    uuid.UUID // Prefix of the X-Request-ID sent with every step
}
