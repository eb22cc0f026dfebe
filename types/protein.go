// Package types defines core domain types for the Crucible client.
//
//nolint:revive // types is a common Go package naming convention
package types

// Track name constants for the categorical/positional tracks.
// Coordinates is a separate spatial track carried alongside these.
const (
	TrackSequence           = "sequence"
	TrackStructure          = "structure"
	TrackSecondaryStructure = "secondary_structure"
	TrackSASA               = "sasa"
	TrackFunction           = "function"
	TrackResidueAnnotations = "residue_annotations"
	TrackCoordinates        = "coordinates"
)

// ProteinValue is the closed set of values the single-item operations
// accept and return: a human-readable protein, a tokenized protein, or
// a typed error value. No other implementations exist.
type ProteinValue interface {
	isProteinValue()
}

// FunctionAnnotation labels a residue range with a function keyword.
// On the wire it is carried as a (label, start, end) tuple.
type FunctionAnnotation struct {
	Label string
	Start int
	End   int
}

// Protein is the human-readable protein representation.
//
// Every track is optional: the zero value ("" or nil) means no
// information was supplied for that track. Track lengths agree by
// convention only; the codec does not validate them. Missing 3D
// coordinates are represented by NaN entries.
type Protein struct {
	Sequence            string
	SecondaryStructure  string
	SASA                []float64
	FunctionAnnotations []FunctionAnnotation
	Coordinates         [][][]float64

	// PLDDT and PTM are confidence outputs populated by the service.
	// They are never sent in requests.
	PLDDT []float64
	PTM   *float64
}

func (*Protein) isProteinValue() {}

// ProteinTensor is the tokenized protein representation: every track
// already encoded as token ids (raw floats for sasa and coordinates).
//
// A nil slice means the track is absent. The residue-annotation track
// is plural in memory but singular ("residue_annotation") on the wire.
type ProteinTensor struct {
	Sequence           []int64
	Structure          []int64
	SecondaryStructure []int64
	SASA               []float64
	Function           [][]int64
	ResidueAnnotations [][]int64
	Coordinates        [][][]float64
}

func (*ProteinTensor) isProteinValue() {}

// ProteinError is a typed failure result returned in place of a
// protein whenever request construction or transport fails. It is a
// first-class member of the result space so batch callers and the
// generate operations can report per-item failures without raising.
type ProteinError struct {
	Msg string
}

func (*ProteinError) isProteinValue() {}

// Error implements the error interface.
func (e *ProteinError) Error() string { return e.Msg }
