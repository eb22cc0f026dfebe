package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestReadProtein(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protein.json")
	content := `{
		"sequence": "MKVA",
		"sasa": [1.0, 2.5],
		"function": [["kinase", 1, 3]],
		"coordinates": [[[1.0, null, 2.0]]]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := readProtein(path)
	if err != nil {
		t.Fatalf("read protein: %v", err)
	}
	if p.Sequence != "MKVA" {
		t.Errorf("expected MKVA, got %s", p.Sequence)
	}
	if len(p.FunctionAnnotations) != 1 || p.FunctionAnnotations[0].Label != "kinase" {
		t.Errorf("unexpected annotations: %+v", p.FunctionAnnotations)
	}
	if !math.IsNaN(p.Coordinates[0][0][1]) {
		t.Errorf("null coordinate should read as NaN, got %v", p.Coordinates[0][0][1])
	}
}

func TestProteinToWire_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protein.json")
	content := `{"sequence": "MKVA", "secondary_structure": "CCHH"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p, err := readProtein(path)
	if err != nil {
		t.Fatalf("read protein: %v", err)
	}

	wire := proteinToWire(p)
	if wire["sequence"] != "MKVA" || wire["secondary_structure"] != "CCHH" {
		t.Errorf("unexpected wire form: %v", wire)
	}
	// Absent tracks stay absent in the file form too.
	if _, present := wire["sasa"]; present {
		t.Error("absent sasa should be omitted")
	}
	if _, present := wire["coordinates"]; present {
		t.Error("absent coordinates should be omitted")
	}
}

func TestReadTensor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tensor.json")
	content := `{
		"sequence": [0, 4, 5, 2],
		"residue_annotation": [[7, 8]]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tensor, err := readTensor(path)
	if err != nil {
		t.Fatalf("read tensor: %v", err)
	}
	if len(tensor.Sequence) != 4 || tensor.Sequence[1] != 4 {
		t.Errorf("unexpected sequence tokens: %v", tensor.Sequence)
	}
	if len(tensor.ResidueAnnotations) != 1 || tensor.ResidueAnnotations[0][0] != 7 {
		t.Errorf("unexpected residue annotations: %v", tensor.ResidueAnnotations)
	}

	wire := tensorToWire(tensor)
	if _, present := wire["residue_annotation"]; !present {
		t.Error("expected singular residue_annotation key in file form")
	}
	if _, present := wire["structure"]; present {
		t.Error("absent structure should be omitted")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "a", "b"); got != "a" {
		t.Errorf("expected a, got %s", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("expected empty, got %s", got)
	}
}
