package vrp

import (
	"fmt"
	"strings"
	"time"
)

// Limits bound problem complexity to protect solve time and resources.
type Limits struct {
	MaxJobs              int
	MaxResources         int
	MaxWindowsPerJob     int
	MaxBreaksPerResource int
}

// DemoLimits are the defaults applied to anonymous/public callers.
var DemoLimits = Limits{
	MaxJobs:              250,
	MaxResources:         30,
	MaxWindowsPerJob:     5,
	MaxBreaksPerResource: 3,
}

// Complexity is the measured size of a problem.
type Complexity struct {
	Jobs         int `json:"jobCount"`
	Resources    int `json:"resourceCount"`
	MaxWindows   int `json:"maxTimeWindows"`
	TotalWindows int `json:"totalTimeWindows"`
}

// Report is the outcome of complexity validation. Valid means no errors;
// warnings flag limits being approached (above 80%) without blocking.
type Report struct {
	Valid      bool
	Errors     []string
	Warnings   []string
	Complexity Complexity
}

// ValidateComplexity checks a problem against limits. It never rejects on
// warnings alone.
func ValidateComplexity(p Problem, limits Limits) Report {
	var errs, warns []string

	jobs := len(p.Jobs)
	resources := len(p.Resources)

	if jobs > limits.MaxJobs {
		errs = append(errs, fmt.Sprintf("too many jobs: %d (maximum %d)", jobs, limits.MaxJobs))
	}
	if jobs == 0 {
		errs = append(errs, "at least 1 job is required")
	}
	if resources > limits.MaxResources {
		errs = append(errs, fmt.Sprintf("too many vehicles: %d (maximum %d)", resources, limits.MaxResources))
	}
	if resources == 0 {
		errs = append(errs, "at least 1 vehicle/resource is required")
	}

	var maxWindows, totalWindows int
	for i, job := range p.Jobs {
		n := len(job.Windows)
		totalWindows += n
		if n > maxWindows {
			maxWindows = n
		}
		if n > limits.MaxWindowsPerJob {
			errs = append(errs, fmt.Sprintf("job %q has %d time windows (maximum %d)",
				nameOrIndex(job.Name, i), n, limits.MaxWindowsPerJob))
		}
	}

	for i, res := range p.Resources {
		for si, shift := range res.Shifts {
			if n := len(shift.Breaks); n > limits.MaxBreaksPerResource {
				errs = append(errs, fmt.Sprintf("resource %q shift %d has %d breaks (maximum %d)",
					nameOrIndex(res.Name, i), si, n, limits.MaxBreaksPerResource))
			}
		}
	}

	if float64(jobs) > float64(limits.MaxJobs)*0.8 {
		warns = append(warns, fmt.Sprintf("approaching job limit (%d/%d)", jobs, limits.MaxJobs))
	}
	if float64(resources) > float64(limits.MaxResources)*0.8 {
		warns = append(warns, fmt.Sprintf("approaching resource limit (%d/%d)", resources, limits.MaxResources))
	}

	return Report{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
		Complexity: Complexity{
			Jobs:         jobs,
			Resources:    resources,
			MaxWindows:   maxWindows,
			TotalWindows: totalWindows,
		},
	}
}

// Message returns a user-facing summary of the violations, or "" when valid.
func (r Report) Message() string {
	if r.Valid {
		return ""
	}
	var b strings.Builder
	b.WriteString("problem too complex:\n")
	for i, e := range r.Errors {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e)
	}
	return b.String()
}

// EstimateSolveTime is a rough heuristic: base time plus per-job and
// per-resource overhead. Useful for progress UIs, not for scheduling.
func EstimateSolveTime(p Problem) time.Duration {
	base := 2 * time.Second
	perJob := 100 * time.Millisecond
	perResource := 500 * time.Millisecond
	return base +
		time.Duration(len(p.Jobs))*perJob +
		time.Duration(len(p.Resources))*perResource
}

func nameOrIndex(name string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i)
}
