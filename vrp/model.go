// Package vrp models vehicle-routing solutions and provides pure analysis
// over them: complexity validation before solving, and route / utilization /
// constraint / efficiency reporting after. No I/O - callers bring the solver
// payloads (JSON field names match the solver wire shapes) and consume the
// reports.
package vrp

// Problem is the solver request: what to visit and with what.
type Problem struct {
	Jobs      []Job      `json:"jobs"`
	Resources []Resource `json:"resources"`
}

// Job is a single stop to be served, optionally constrained to time windows.
type Job struct {
	Name    string   `json:"name"`
	Windows []Window `json:"windows,omitempty"`
}

// Window is a half-open time interval in the solver's own notation.
type Window struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Resource is a vehicle (or driver) with its working shifts.
type Resource struct {
	Name     string  `json:"name"`
	Capacity int     `json:"capacity,omitempty"`
	Shifts   []Shift `json:"shifts,omitempty"`
}

type Shift struct {
	From   string  `json:"from,omitempty"`
	To     string  `json:"to,omitempty"`
	Breaks []Break `json:"breaks,omitempty"`
}

type Break struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Solution is the solver response.
type Solution struct {
	Trips      []Trip   `json:"trips"`
	Unassigned []string `json:"unassigned,omitempty"`
	Score      *Score   `json:"score,omitempty"`
}

type Score struct {
	Hard   int `json:"hardScore"`
	Medium int `json:"mediumScore"`
	Soft   int `json:"softScore"`
}

// Trip is one vehicle's route. Polyline, when present, is the encoded
// geometry of the driven path; Distance may be zero when the solver omitted
// it, in which case analysis falls back to the geometry.
type Trip struct {
	Resource string  `json:"resource"`
	Visits   []Visit `json:"visits"`
	Distance float64 `json:"distance,omitempty"` // meters
	Duration int     `json:"duration,omitempty"` // seconds
	Polyline string  `json:"polyline,omitempty"`
}

// Visit is one served stop within a trip.
type Visit struct {
	Job         string      `json:"job"`
	Arrival     string      `json:"arrival,omitempty"`
	ServiceTime int         `json:"serviceTime,omitempty"`
	Violations  []Violation `json:"violatedConstraints,omitempty"`
}

// Violation is a constraint the solver could not honor for a visit.
type Violation struct {
	Constraint string `json:"constraint"`
	Detail     string `json:"detail,omitempty"`
}
