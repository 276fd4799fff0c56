package vrp

import (
	"testing"

	"github.com/unkn0wn-root/polyline"
	"github.com/unkn0wn-root/polyline/geo"
)

func sampleSolution() Solution {
	return Solution{
		Trips: []Trip{
			{
				Resource: "truck-1",
				Visits:   []Visit{{Job: "a"}, {Job: "b"}},
				Distance: 12000,
				Duration: 1800,
			},
			{
				Resource: "truck-2",
				Visits: []Visit{
					{Job: "c"},
					{Job: "d", Violations: []Violation{{Constraint: "timeWindow", Detail: "arrived 10m late"}}},
				},
				Distance: 8000,
				Duration: 900,
			},
		},
		Unassigned: []string{"e"},
	}
}

func sampleProblem() Problem {
	return Problem{
		Jobs: jobs(5),
		Resources: []Resource{
			{Name: "truck-1", Capacity: 10},
			{Name: "truck-2", Capacity: 8},
			{Name: "truck-3", Capacity: 8},
		},
	}
}

func TestAnalyzeRoutes(t *testing.T) {
	stats := AnalyzeRoutes(sampleSolution())
	if len(stats) != 2 {
		t.Fatalf("got %d routes, want 2", len(stats))
	}
	if stats[0].Resource != "truck-1" || stats[0].Stops != 2 || stats[0].Distance != 12000 {
		t.Fatalf("route 0 = %+v", stats[0])
	}
	if got := stats[1].Jobs; len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Fatalf("route 1 jobs = %v", got)
	}
}

func TestAnalyzeRoutesRecoversDistanceFromGeometry(t *testing.T) {
	shape := "u{~vFvyys@fS]"
	sol := Solution{Trips: []Trip{{
		Resource: "van-1",
		Visits:   []Visit{{Job: "a"}},
		Polyline: shape,
	}}}

	stats := AnalyzeRoutes(sol)
	pts, err := polyline.Decode(shape)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := geo.PathLength(pts)
	if stats[0].Distance != want {
		t.Fatalf("recovered distance = %v, want %v", stats[0].Distance, want)
	}
}

func TestAnalyzeRoutesToleratesBadGeometry(t *testing.T) {
	sol := Solution{Trips: []Trip{{Resource: "van-1", Polyline: "_p~iF"}}}
	stats := AnalyzeRoutes(sol)
	if stats[0].Distance != 0 {
		t.Fatalf("distance from truncated geometry = %v, want 0", stats[0].Distance)
	}
}

func TestAnalyzeUtilization(t *testing.T) {
	u := AnalyzeUtilization(sampleSolution(), sampleProblem())
	if u.VehiclesUsed != 2 || u.VehiclesAvailable != 3 {
		t.Fatalf("used/available = %d/%d", u.VehiclesUsed, u.VehiclesAvailable)
	}
	if len(u.PerResource) != 2 {
		t.Fatalf("per-resource = %+v", u.PerResource)
	}
	if u.PerResource[0].Capacity != 10 {
		t.Fatalf("capacity join failed: %+v", u.PerResource[0])
	}
}

func TestAnalyzeConstraints(t *testing.T) {
	cr := AnalyzeConstraints(sampleSolution())
	if cr.Feasible {
		t.Fatal("solution with violations reported feasible")
	}
	if len(cr.Violations) != 1 {
		t.Fatalf("violations = %+v", cr.Violations)
	}
	v := cr.Violations[0]
	if v.Job != "d" || v.Resource != "truck-2" {
		t.Fatalf("violation attribution wrong: %+v", v)
	}
	if len(cr.Unassigned) != 1 || cr.Unassigned[0] != "e" {
		t.Fatalf("unassigned = %v", cr.Unassigned)
	}

	clean := AnalyzeConstraints(Solution{Trips: []Trip{{Resource: "x", Visits: []Visit{{Job: "a"}}}}})
	if !clean.Feasible {
		t.Fatal("clean solution reported infeasible")
	}
}

func TestAnalyzeEfficiency(t *testing.T) {
	e := AnalyzeEfficiency(sampleSolution())
	if e.TotalDistance != 20000 || e.TotalDuration != 2700 || e.TotalStops != 4 {
		t.Fatalf("efficiency = %+v", e)
	}
	if e.AvgDistancePerStop != 5000 {
		t.Fatalf("avg per stop = %v", e.AvgDistancePerStop)
	}

	empty := AnalyzeEfficiency(Solution{})
	if empty.AvgDistancePerStop != 0 {
		t.Fatalf("empty solution avg = %v, want 0 (no division)", empty.AvgDistancePerStop)
	}
}

func TestOverview(t *testing.T) {
	o := Overview(sampleSolution(), sampleProblem())
	if len(o.Routes) != 2 {
		t.Fatalf("routes = %d", len(o.Routes))
	}
	if o.Utilization.VehiclesAvailable != 3 {
		t.Fatalf("utilization = %+v", o.Utilization)
	}
	if o.Constraints.Feasible {
		t.Fatal("constraints lost in overview")
	}
	if o.Efficiency.TotalStops != 4 {
		t.Fatalf("efficiency = %+v", o.Efficiency)
	}
}
