package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cruciblebio/crucible-go/codec"
	"github.com/cruciblebio/crucible-go/types"
)

// Protein files use the same wire shape as the protocol: one key per
// track, coordinates with null for missing entries. All translation
// goes through the track codec so files and wire payloads stay
// interchangeable.

// readProtein loads a human-readable protein from a JSON file.
func readProtein(path string) (*types.Protein, error) {
	m, err := readTracks(path)
	if err != nil {
		return nil, err
	}
	return &types.Protein{
		Sequence:            codec.String(m["sequence"]),
		SecondaryStructure:  codec.String(m["secondary_structure"]),
		SASA:                codec.Floats1D(m["sasa"]),
		FunctionAnnotations: codec.AnnotationsFromWire(m["function"]),
		Coordinates:         codec.CoordinatesFromWire(m["coordinates"]),
	}, nil
}

// readTensor loads a tokenized protein from a JSON file.
func readTensor(path string) (*types.ProteinTensor, error) {
	m, err := readTracks(path)
	if err != nil {
		return nil, err
	}
	return &types.ProteinTensor{
		Sequence:           codec.Ints1D(m["sequence"]),
		Structure:          codec.Ints1D(m["structure"]),
		SecondaryStructure: codec.Ints1D(m["secondary_structure"]),
		SASA:               codec.Floats1D(m["sasa"]),
		Function:           codec.Ints2D(m["function"]),
		ResidueAnnotations: codec.Ints2D(m["residue_annotation"]),
		Coordinates:        codec.CoordinatesFromWire(m["coordinates"]),
	}, nil
}

func readTracks(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read protein file %q: %w", path, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return m, nil
}

// proteinToWire renders a protein in the file/wire shape, including
// the read-only confidence fields when present.
func proteinToWire(p *types.Protein) map[string]any {
	out := map[string]any{}
	if p.Sequence != "" {
		out["sequence"] = p.Sequence
	}
	if p.SecondaryStructure != "" {
		out["secondary_structure"] = p.SecondaryStructure
	}
	if p.SASA != nil {
		out["sasa"] = p.SASA
	}
	if fn := codec.AnnotationsToWire(p.FunctionAnnotations); fn != nil {
		out["function"] = fn
	}
	if coords := codec.CoordinatesToWire(p.Coordinates); coords != nil {
		out["coordinates"] = coords
	}
	if p.PLDDT != nil {
		out["plddt"] = p.PLDDT
	}
	if p.PTM != nil {
		out["ptm"] = *p.PTM
	}
	return out
}

// tensorToWire renders a tokenized protein in the file/wire shape.
func tensorToWire(t *types.ProteinTensor) map[string]any {
	out := map[string]any{}
	if t.Sequence != nil {
		out["sequence"] = t.Sequence
	}
	if t.Structure != nil {
		out["structure"] = t.Structure
	}
	if t.SecondaryStructure != nil {
		out["secondary_structure"] = t.SecondaryStructure
	}
	if t.SASA != nil {
		out["sasa"] = t.SASA
	}
	if t.Function != nil {
		out["function"] = t.Function
	}
	if t.ResidueAnnotations != nil {
		out["residue_annotation"] = t.ResidueAnnotations
	}
	if coords := codec.CoordinatesToWire(t.Coordinates); coords != nil {
		out["coordinates"] = coords
	}
	return out
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
