package crucible

import (
	"github.com/cruciblebio/crucible-go/codec"
	"github.com/cruciblebio/crucible-go/types"
)

// The wire key for the residue-annotation track is singular, unlike
// the in-memory field.
const wireResidueAnnotation = "residue_annotation"

// proteinInputs builds the per-track inputs object for a
// human-readable protein. Absent tracks are omitted entirely, never
// sent as explicit nulls.
func proteinInputs(p *types.Protein) map[string]any {
	inputs := map[string]any{}
	if p.Sequence != "" {
		inputs["sequence"] = p.Sequence
	}
	if p.SecondaryStructure != "" {
		inputs["secondary_structure"] = p.SecondaryStructure
	}
	if p.SASA != nil {
		inputs["sasa"] = p.SASA
	}
	if fn := codec.AnnotationsToWire(p.FunctionAnnotations); fn != nil {
		inputs["function"] = fn
	}
	if coords := codec.CoordinatesToWire(p.Coordinates); coords != nil {
		inputs["coordinates"] = coords
	}
	return inputs
}

// tensorInputs builds the per-track inputs object for a tokenized
// protein.
func tensorInputs(t *types.ProteinTensor) map[string]any {
	inputs := map[string]any{}
	if t.Sequence != nil {
		inputs["sequence"] = t.Sequence
	}
	if t.Structure != nil {
		inputs["structure"] = t.Structure
	}
	if t.SecondaryStructure != nil {
		inputs["secondary_structure"] = t.SecondaryStructure
	}
	if t.SASA != nil {
		inputs["sasa"] = t.SASA
	}
	if t.Function != nil {
		inputs["function"] = t.Function
	}
	if t.ResidueAnnotations != nil {
		inputs[wireResidueAnnotation] = t.ResidueAnnotations
	}
	if coords := codec.CoordinatesToWire(t.Coordinates); coords != nil {
		inputs["coordinates"] = coords
	}
	return inputs
}

// outputs extracts the per-track outputs object from a normalized
// response body. Returns nil when the body has no outputs, which the
// track decoders tolerate.
func outputs(data map[string]any) map[string]any {
	m, _ := data["outputs"].(map[string]any)
	return m
}

// parseProtein reconstructs a human-readable protein from the
// per-track outputs object, including the read-only confidence
// fields.
func parseProtein(out map[string]any) *types.Protein {
	return &types.Protein{
		Sequence:            codec.String(out["sequence"]),
		SecondaryStructure:  codec.String(out["secondary_structure"]),
		SASA:                codec.Floats1D(out["sasa"]),
		FunctionAnnotations: codec.AnnotationsFromWire(out["function"]),
		Coordinates:         codec.CoordinatesFromWire(out["coordinates"]),
		PLDDT:               codec.Floats1D(out["plddt"]),
		PTM:                 codec.Float(out["ptm"]),
	}
}

// parseTensor reconstructs a tokenized protein field-by-field. Tracks
// the response does not contain stay nil rather than failing, which
// guards against partial responses.
func parseTensor(out map[string]any) *types.ProteinTensor {
	return &types.ProteinTensor{
		Sequence:           codec.Ints1D(out["sequence"]),
		Structure:          codec.Ints1D(out["structure"]),
		SecondaryStructure: codec.Ints1D(out["secondary_structure"]),
		SASA:               codec.Floats1D(out["sasa"]),
		Function:           codec.Ints2D(out["function"]),
		ResidueAnnotations: codec.Ints2D(out[wireResidueAnnotation]),
		Coordinates:        codec.CoordinatesFromWire(out["coordinates"]),
	}
}
