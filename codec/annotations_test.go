package codec

import (
	"testing"

	"github.com/cruciblebio/crucible-go/types"
)

func TestAnnotations_RoundTrip(t *testing.T) {
	in := []types.FunctionAnnotation{
		{Label: "kinase", Start: 10, End: 42},
		{Label: "binding site", Start: 50, End: 51},
	}

	got := AnnotationsFromWire(viaJSON(t, AnnotationsToWire(in)))
	if len(got) != len(in) {
		t.Fatalf("expected %d annotations, got %d", len(in), len(got))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("annotation %d: expected %+v, got %+v", i, in[i], got[i])
		}
	}
}

func TestAnnotations_OrderPreserved(t *testing.T) {
	in := []types.FunctionAnnotation{
		{Label: "b", Start: 2, End: 3},
		{Label: "a", Start: 1, End: 2},
	}
	got := AnnotationsFromWire(AnnotationsToWire(in))
	if got[0].Label != "b" || got[1].Label != "a" {
		t.Errorf("order should be preserved, got %+v", got)
	}
}

func TestAnnotations_EmptyEncodesToNil(t *testing.T) {
	// Empty-vs-absent is meaningful: an empty list must be omitted,
	// not sent as [].
	if AnnotationsToWire(nil) != nil {
		t.Error("nil annotations should encode to nil")
	}
	if AnnotationsToWire([]types.FunctionAnnotation{}) != nil {
		t.Error("empty annotations should encode to nil")
	}
}

func TestAnnotations_AbsentDecodesToNil(t *testing.T) {
	if AnnotationsFromWire(nil) != nil {
		t.Error("absent field should decode to nil")
	}
	if AnnotationsFromWire([]any{}) != nil {
		t.Error("empty list should decode to nil, not empty slice")
	}
}

func TestAnnotations_MalformedTupleSkipped(t *testing.T) {
	got := AnnotationsFromWire([]any{
		[]any{"kinase", 1.0, 2.0},
		[]any{"short"},
	})
	if len(got) != 1 || got[0].Label != "kinase" {
		t.Errorf("expected only the well-formed tuple, got %+v", got)
	}
}
