package codec

import (
	"bytes"
	"reflect"
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/polyline/vrp"
)

func sampleSolution() vrp.Solution {
	return vrp.Solution{
		Trips: []vrp.Trip{
			{
				Resource: "vehicle-1",
				Visits: []vrp.Visit{
					{Job: "job-1", Arrival: "2026-01-05T08:30:00Z", ServiceTime: 600},
					{
						Job:     "job-2",
						Arrival: "2026-01-05T09:10:00Z",
						Violations: []vrp.Violation{
							{Constraint: "timeWindow", Detail: "arrived 5m late"},
						},
					},
				},
				Distance: 12345.6,
				Duration: 3600,
				Polyline: "eyu}Hwfs[gr@_fFf}Ayx@",
			},
		},
		Unassigned: []string{"job-9"},
		Score:      &vrp.Score{Hard: 0, Medium: -1, Soft: -250},
	}
}

// TestJSONSolutionWireNames pins the solver wire shape: the JSON codec must
// emit the solver's field names, not Go's.
func TestJSONSolutionWireNames(t *testing.T) {
	c := JSON[vrp.Solution]{}
	b, err := c.Encode(sampleSolution())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, name := range []string{`"violatedConstraints"`, `"hardScore"`, `"polyline"`, `"unassigned"`} {
		if !bytes.Contains(b, []byte(name)) {
			t.Fatalf("encoded solution missing %s:\n%s", name, b)
		}
	}

	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, sampleSolution()) {
		t.Fatalf("round trip changed the solution:\ngot  %+v\nwant %+v", got, sampleSolution())
	}
}

// TestCBORSolutionDeterministic checks the deterministic mode produces
// byte-for-byte stable output, which is what makes cached solution payloads
// digestible for content-addressed keys.
func TestCBORSolutionDeterministic(t *testing.T) {
	c := MustCBOR[vrp.Solution](true)

	a, err := c.Encode(sampleSolution())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := c.Encode(sampleSolution())
	if err != nil {
		t.Fatalf("Encode (again): %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("deterministic mode produced two different encodings")
	}

	got, err := c.Decode(a)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, sampleSolution()) {
		t.Fatalf("round trip changed the solution:\ngot  %+v\nwant %+v", got, sampleSolution())
	}
}

// TestMsgpackSolutionRoundTrip covers the compact binary path used for
// provider payloads larger than a single geometry.
func TestMsgpackSolutionRoundTrip(t *testing.T) {
	c := Msgpack[vrp.Solution]{}
	b, err := c.Encode(sampleSolution())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, sampleSolution()) {
		t.Fatalf("round trip changed the solution:\ngot  %+v\nwant %+v", got, sampleSolution())
	}
}

// TestProtobufStruct exercises the proto codec with a schemaless summary, the
// shape used when no generated message type exists for a payload.
func TestProtobufStruct(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{
		"resource":  "vehicle-1",
		"visits":    2,
		"distance":  12345.6,
		"truncated": false,
	})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}

	c := NewProtobuf(func() *structpb.Struct { return &structpb.Struct{} })
	b, err := c.Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Fields["resource"].GetStringValue() != "vehicle-1" {
		t.Fatalf("resource = %q, want vehicle-1", got.Fields["resource"].GetStringValue())
	}
	if got.Fields["distance"].GetNumberValue() != 12345.6 {
		t.Fatalf("distance = %v, want 12345.6", got.Fields["distance"].GetNumberValue())
	}
}

// TestRawCodecs pins the identity semantics Bytes and String promise.
func TestRawCodecs(t *testing.T) {
	in := []byte("eyu}Hwfs[")
	if out, err := (Bytes{}).Encode(in); err != nil || !bytes.Equal(out, in) {
		t.Fatalf("Bytes.Encode = %q, %v; want identity", out, err)
	}
	if out, err := (Bytes{}).Decode(in); err != nil || !bytes.Equal(out, in) {
		t.Fatalf("Bytes.Decode = %q, %v; want identity", out, err)
	}

	b, err := (String{}).Encode("gr@_fF")
	if err != nil {
		t.Fatalf("String.Encode: %v", err)
	}
	s, err := (String{}).Decode(b)
	if err != nil || s != "gr@_fF" {
		t.Fatalf("String.Decode = %q, %v; want gr@_fF", s, err)
	}
}
