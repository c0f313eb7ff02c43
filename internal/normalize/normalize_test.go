package normalize

import "testing"

func TestSurname(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"rossi", "ROSSI"},
		{"  Rossi\t", "ROSSI"},
		{"De Rossi", "DE ROSSI"},
		{"de  rossi", "DE  ROSSI"},
		{"nicolò", "NICOLÒ"},
		{"nicolo\u0300", "NICOLÒ"},
		{"d'angelo", "D'ANGELO"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Surname(tt.input); got != tt.expected {
				t.Errorf("Surname(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSurnamesDropsEmptyKeepsDuplicates(t *testing.T) {
	got := Surnames([]string{"rossi", "", "  ", "Bianchi", "ROSSI"})
	want := []string{"ROSSI", "BIANCHI", "ROSSI"}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("ROSSI\r\nBIANCHI\rVERDI\n")
	want := []string{"ROSSI", "BIANCHI", "VERDI", ""}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{" surname ", "SURNAME"},
		{"Registration Id", "REGISTRATION_ID"},
		{"given\tname", "GIVEN_NAME"},
		{"ANNO", "ANNO"},
		{"data di\n nascita", "DATA_DI_NASCITA"},
	}
	for _, tt := range tests {
		if got := ColumnName(tt.input); got != tt.expected {
			t.Errorf("ColumnName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
