package config

import "testing"

func TestExpandEnv(t *testing.T) {
	t.Setenv("CRUCIBLE_TEST_VAR", "value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"set variable", "token: ${CRUCIBLE_TEST_VAR}", "token: value"},
		{"unset variable", "token: ${CRUCIBLE_UNSET_VAR}", "token: "},
		{"unset with default", "model: ${CRUCIBLE_UNSET_VAR:-fallback}", "model: fallback"},
		{"set overrides default", "token: ${CRUCIBLE_TEST_VAR:-fallback}", "token: value"},
		{"no pattern", "model: plain", "model: plain"},
		{"multiple", "${CRUCIBLE_TEST_VAR}/${CRUCIBLE_UNSET_VAR:-x}", "value/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
