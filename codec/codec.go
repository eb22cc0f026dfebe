// Package codec converts between in-memory per-track protein values
// and the JSON-safe wire values exchanged with the Crucible service.
//
// Wire values are the `any` trees produced by encoding/json: arrays
// are []any and every number is a float64. Each decoder tolerates a
// nil input (absent or null field) and returns a nil slice, so
// response parsers can index response maps directly without guarding
// every key. Decoders never fail; malformed entries degrade to NaN
// (float tracks) or 0 (token tracks).
//
// The only per-entry missing marker exists inside the coordinates
// track: NaN in memory, JSON null on the wire. All other absent
// tracks are omitted from the wire entirely.
package codec

import "math"

// String decodes a wire string. Absent or non-string yields "".
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Float decodes a scalar wire number. Absent yields nil.
func Float(v any) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

// Floats1D decodes a wire array of numbers. Null entries decode to
// NaN; an absent or null array decodes to nil.
func Floats1D(v any) []float64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]float64, len(arr))
	for i, e := range arr {
		f, ok := e.(float64)
		if !ok {
			out[i] = math.NaN()
			continue
		}
		out[i] = f
	}
	return out
}

// Ints1D decodes a wire array of token ids.
func Ints1D(v any) []int64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int64, len(arr))
	for i, e := range arr {
		f, _ := e.(float64)
		out[i] = int64(f)
	}
	return out
}

// Floats2D decodes a nested wire array of numbers.
func Floats2D(v any) [][]float64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([][]float64, len(arr))
	for i, e := range arr {
		out[i] = Floats1D(e)
	}
	return out
}

// Ints2D decodes a nested wire array of token ids.
func Ints2D(v any) [][]int64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([][]int64, len(arr))
	for i, e := range arr {
		out[i] = Ints1D(e)
	}
	return out
}

// CoordinatesFromWire decodes a 3D coordinate tensor. Null scalars
// decode to NaN; an absent or null tensor decodes to nil.
func CoordinatesFromWire(v any) [][][]float64 {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([][][]float64, len(arr))
	for i, e := range arr {
		out[i] = Floats2D(e)
	}
	return out
}

// CoordinatesToWire encodes a 3D coordinate tensor for the wire,
// substituting null for each NaN scalar. A nil tensor encodes to nil
// so the caller can omit the field.
//
// encoding/json rejects NaN, so coordinates must pass through here
// before marshaling.
func CoordinatesToWire(v [][][]float64) any {
	if v == nil {
		return nil
	}
	out := make([]any, len(v))
	for i, plane := range v {
		row := make([]any, len(plane))
		for j, vec := range plane {
			entry := make([]any, len(vec))
			for k, f := range vec {
				if math.IsNaN(f) {
					entry[k] = nil
				} else {
					entry[k] = f
				}
			}
			row[j] = entry
		}
		out[i] = row
	}
	return out
}
