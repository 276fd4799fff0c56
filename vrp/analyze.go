package vrp

import (
	"github.com/unkn0wn-root/polyline"
	"github.com/unkn0wn-root/polyline/geo"
)

// RouteStats summarizes one trip.
type RouteStats struct {
	Resource string   `json:"resource"`
	Stops    int      `json:"stops"`
	Distance float64  `json:"distance"` // meters
	Duration int      `json:"duration"` // seconds
	Jobs     []string `json:"jobs"`
}

// AnalyzeRoutes summarizes every trip in the solution. When the solver
// omitted a trip's distance but shipped its geometry, the distance is
// recovered from the decoded polyline. Geometries that fail to decode leave
// the distance at zero rather than failing the analysis.
func AnalyzeRoutes(sol Solution) []RouteStats {
	out := make([]RouteStats, 0, len(sol.Trips))
	for _, trip := range sol.Trips {
		jobs := make([]string, 0, len(trip.Visits))
		for _, v := range trip.Visits {
			jobs = append(jobs, v.Job)
		}

		dist := trip.Distance
		if dist == 0 && trip.Polyline != "" {
			if pts, err := polyline.Decode(trip.Polyline); err == nil {
				dist = geo.PathLength(pts)
			}
		}

		out = append(out, RouteStats{
			Resource: trip.Resource,
			Stops:    len(trip.Visits),
			Distance: dist,
			Duration: trip.Duration,
			Jobs:     jobs,
		})
	}
	return out
}

// ResourceUtilization is one vehicle's share of the work.
type ResourceUtilization struct {
	Resource string `json:"resource"`
	Capacity int    `json:"capacity"`
	Stops    int    `json:"stops"`
}

// Utilization reports how much of the fleet the solution actually uses.
type Utilization struct {
	PerResource       []ResourceUtilization `json:"utilizationByVehicle"`
	VehiclesUsed      int                   `json:"vehiclesUsed"`
	VehiclesAvailable int                   `json:"totalVehiclesAvailable"`
}

// AnalyzeUtilization joins trips with the problem's resources.
func AnalyzeUtilization(sol Solution, prob Problem) Utilization {
	capByName := make(map[string]int, len(prob.Resources))
	for _, r := range prob.Resources {
		capByName[r.Name] = r.Capacity
	}

	per := make([]ResourceUtilization, 0, len(sol.Trips))
	for _, trip := range sol.Trips {
		per = append(per, ResourceUtilization{
			Resource: trip.Resource,
			Capacity: capByName[trip.Resource],
			Stops:    len(trip.Visits),
		})
	}
	return Utilization{
		PerResource:       per,
		VehiclesUsed:      len(sol.Trips),
		VehiclesAvailable: len(prob.Resources),
	}
}

// TripViolation ties a violated constraint to the job and vehicle involved.
type TripViolation struct {
	Job        string      `json:"job"`
	Resource   string      `json:"resource"`
	Violations []Violation `json:"violations"`
}

// ConstraintReport lists everything the solver could not honor.
type ConstraintReport struct {
	Violations []TripViolation `json:"violations"`
	Unassigned []string        `json:"unassignedDetails"`
	Feasible   bool            `json:"feasible"`
}

// AnalyzeConstraints extracts violations and unassigned jobs.
func AnalyzeConstraints(sol Solution) ConstraintReport {
	var violations []TripViolation
	for _, trip := range sol.Trips {
		for _, v := range trip.Visits {
			if len(v.Violations) > 0 {
				violations = append(violations, TripViolation{
					Job:        v.Job,
					Resource:   trip.Resource,
					Violations: v.Violations,
				})
			}
		}
	}
	return ConstraintReport{
		Violations: violations,
		Unassigned: sol.Unassigned,
		Feasible:   len(violations) == 0,
	}
}

// Efficiency aggregates solution-wide metrics.
type Efficiency struct {
	TotalDistance      float64 `json:"totalDistance"` // meters
	TotalDuration      int     `json:"totalDuration"` // seconds
	TotalStops         int     `json:"totalStops"`
	AvgDistancePerStop float64 `json:"avgDistancePerStop"`
	VehiclesUsed       int     `json:"vehiclesUsed"`
}

// AnalyzeEfficiency totals distance, duration, and stops across trips,
// recovering distances from geometry the same way AnalyzeRoutes does.
func AnalyzeEfficiency(sol Solution) Efficiency {
	var e Efficiency
	for _, rs := range AnalyzeRoutes(sol) {
		e.TotalDistance += rs.Distance
		e.TotalDuration += rs.Duration
		e.TotalStops += rs.Stops
	}
	e.VehiclesUsed = len(sol.Trips)
	if e.TotalStops > 0 {
		e.AvgDistancePerStop = e.TotalDistance / float64(e.TotalStops)
	}
	return e
}

// OverviewReport bundles all four analyses.
type OverviewReport struct {
	Routes      []RouteStats     `json:"routes"`
	Utilization Utilization      `json:"utilization"`
	Constraints ConstraintReport `json:"constraints"`
	Efficiency  Efficiency       `json:"efficiency"`
}

// Overview runs every analysis over one solution/problem pair.
func Overview(sol Solution, prob Problem) OverviewReport {
	return OverviewReport{
		Routes:      AnalyzeRoutes(sol),
		Utilization: AnalyzeUtilization(sol, prob),
		Constraints: AnalyzeConstraints(sol),
		Efficiency:  AnalyzeEfficiency(sol),
	}
}
