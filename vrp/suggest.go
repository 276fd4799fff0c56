package vrp

import "fmt"

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Suggestion is one actionable improvement derived from solution metrics.
type Suggestion struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Issue    string   `json:"issue"`
	Advice   string   `json:"suggestion"`
}

// fleetUtilizationFloor is the share of available vehicles below which the
// fleet counts as underused.
const fleetUtilizationFloor = 0.6

// SuggestImprovements inspects a solution for common problems: unserved jobs,
// violated constraints, an underused fleet, and unbalanced trip durations.
// An empty slice means nothing stood out.
func SuggestImprovements(sol Solution, prob Problem) []Suggestion {
	var out []Suggestion

	if n := len(sol.Unassigned); n > 0 {
		out = append(out, Suggestion{
			Category: "coverage",
			Severity: SeverityHigh,
			Issue:    fmt.Sprintf("%d unassigned jobs", n),
			Advice:   "add more vehicles or relax time window constraints",
		})
	}

	if cr := AnalyzeConstraints(sol); len(cr.Violations) > 0 {
		out = append(out, Suggestion{
			Category: "constraints",
			Severity: SeverityHigh,
			Issue:    fmt.Sprintf("%d constraint violations found", len(cr.Violations)),
			Advice:   "review time windows, capacities, and skills constraints",
		})
	}

	if avail := len(prob.Resources); avail > 0 {
		if used := len(sol.Trips); float64(used)/float64(avail) < fleetUtilizationFloor {
			out = append(out, Suggestion{
				Category: "efficiency",
				Severity: SeverityMedium,
				Issue:    fmt.Sprintf("only %d of %d vehicles used", used, avail),
				Advice:   "reduce the fleet or consolidate routes",
			})
		}
	}

	if minD, maxD, ok := durationSpread(sol.Trips); ok && maxD > 2*minD {
		out = append(out, Suggestion{
			Category: "balance",
			Severity: SeverityLow,
			Issue:    "unbalanced route durations",
			Advice:   "enable route balancing in solver options",
		})
	}

	return out
}

func durationSpread(trips []Trip) (minD, maxD int, ok bool) {
	for _, t := range trips {
		if !ok {
			minD, maxD, ok = t.Duration, t.Duration, true
			continue
		}
		if t.Duration < minD {
			minD = t.Duration
		}
		if t.Duration > maxD {
			maxD = t.Duration
		}
	}
	return minD, maxD, ok
}
