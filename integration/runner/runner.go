package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/portal-router/pkg/route"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes integration tests against a running portal-router API
type Runner struct {
	BaseURL           string
	Client            *http.Client
	Timeout           time.Duration
	Logger            func(format string, args ...interface{})
	ErrorHandlingMode ErrorHandlingMode
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		Client:            &http.Client{Timeout: 60 * time.Second},
		Timeout:           30 * time.Second,
		Logger:            func(string, ...interface{}) {},
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
// Returns a list of actual test suites (expanded from the sequence if needed)
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// RunSuite executes a complete test suite
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
		RunID:   uuid.New(),
	}

	for i, step := range suite.Steps {
		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)
		requestID := fmt.Sprintf("%s-%d", result.RunID, i)
		stepResult := r.runStep(ctx, suite.Name, requestID, step)
		result.Results = append(result.Results, stepResult)

		if stepResult.Error != nil {
			r.Logger("    [%d/%d] ✗ %s: %v", i+1, len(suite.Steps), step.Name, stepResult.Error)
			if result.Error == nil {
				result.Error = fmt.Errorf("step %d (%s) failed: %w", i, step.Name, stepResult.Error)
			}
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
			continue
		}

		r.Logger("    [%d/%d] ✓ %s (%v)", i+1, len(suite.Steps), step.Name, stepResult.Duration)
	}

	result.Duration = time.Since(start)
	return result, result.Error
}

func (r *Runner) runStep(ctx context.Context, suiteName, requestID string, step TestStep) TestResult {
	start := time.Now()
	result := TestResult{
		TestName: suiteName,
		StepName: step.Name,
	}

	stepCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	status, body, err := r.queryRoute(stepCtx, requestID, step)
	if err == nil {
		err = checkExpectations(step.Expectations, status, body)
	}

	result.Duration = time.Since(start)
	result.Error = err
	result.Success = err == nil
	return result
}

func (r *Runner) queryRoute(ctx context.Context, requestID string, step TestStep) (int, []byte, error) {
	q := url.Values{}
	q.Set("start", step.Start)
	q.Set("end", step.End)
	if len(step.Capabilities) > 0 {
		q.Set("capabilities", strings.Join(step.Capabilities, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/v1/route?"+q.Encode(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func checkExpectations(exp Expectations, status int, body []byte) error {
	wantStatus := http.StatusOK
	if exp.Status != nil {
		wantStatus = *exp.Status
	}
	if status != wantStatus {
		return fmt.Errorf("expected status %d, got %d: %s", wantStatus, status, strings.TrimSpace(string(body)))
	}

	if status != http.StatusOK {
		var errorResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errorResp); err != nil {
			return fmt.Errorf("failed to parse error response: %w", err)
		}
		if exp.ErrorContains != "" && !strings.Contains(errorResp.Error, exp.ErrorContains) {
			return fmt.Errorf("expected error containing %q, got %q", exp.ErrorContains, errorResp.Error)
		}
		return nil
	}

	var res route.Result
	if err := json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("failed to parse route response: %w", err)
	}

	var errs []string

	if exp.Outcome != nil && res.Outcome.String() != *exp.Outcome {
		errs = append(errs, fmt.Sprintf("outcome: expected %s, got %s", *exp.Outcome, res.Outcome))
	}

	if exp.Hops != nil && res.Hops() != *exp.Hops {
		errs = append(errs, fmt.Sprintf("hops: expected %d, got %d", *exp.Hops, res.Hops()))
	}

	if exp.Portals != nil {
		got := make([]string, len(res.Path))
		for i, step := range res.Path {
			got[i] = step.Portal
		}
		if !slices.Equal(got, exp.Portals) {
			errs = append(errs, fmt.Sprintf("portals: expected %v, got %v", exp.Portals, got))
		}
	}

	for _, loc := range exp.Through {
		if !visits(res.Path, route.Location(loc)) {
			errs = append(errs, fmt.Sprintf("path does not pass through %q", loc))
		}
	}

	if res.Outcome == route.OutcomeFound && !res.Path.Valid() {
		errs = append(errs, "path is not a connected walk")
	}

	if len(errs) > 0 {
		return fmt.Errorf("expectations failed:\n      %s", strings.Join(errs, "\n      "))
	}
	return nil
}

func visits(p route.Path, loc route.Location) bool {
	for _, step := range p {
		if step.From == loc || step.To == loc {
			return true
		}
	}
	return false
}
