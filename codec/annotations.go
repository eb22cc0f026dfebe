package codec

import "github.com/cruciblebio/crucible-go/types"

// AnnotationsToWire encodes function annotations as an ordered list
// of (label, start, end) tuples. A nil or empty list encodes to nil
// so the caller omits the field; empty-vs-absent is a meaningful
// distinction on this track.
func AnnotationsToWire(annotations []types.FunctionAnnotation) any {
	if len(annotations) == 0 {
		return nil
	}
	out := make([]any, len(annotations))
	for i, a := range annotations {
		out[i] = []any{a.Label, a.Start, a.End}
	}
	return out
}

// AnnotationsFromWire decodes an ordered list of (label, start, end)
// tuples. An absent, null, or empty list decodes to nil.
func AnnotationsFromWire(v any) []types.FunctionAnnotation {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}
	out := make([]types.FunctionAnnotation, 0, len(arr))
	for _, e := range arr {
		tuple, ok := e.([]any)
		if !ok || len(tuple) < 3 {
			continue
		}
		label, _ := tuple[0].(string)
		out = append(out, types.FunctionAnnotation{
			Label: label,
			Start: asInt(tuple[1]),
			End:   asInt(tuple[2]),
		})
	}
	return out
}

// asInt accepts either a JSON-decoded float64 or a Go int, so the
// codec round-trips without an intervening marshal step.
func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}
