package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSurnames_Stdin(t *testing.T) {
	got, err := readSurnames("-", strings.NewReader("rossi\r\nbianchi\n\nverdi"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 4 || got[0] != "rossi" || got[3] != "verdi" {
		t.Fatalf("unexpected lines: %q", got)
	}
}

func TestReadSurnames_MissingFile(t *testing.T) {
	if _, err := readSurnames(filepath.Join(t.TempDir(), "none.txt"), nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	if got := outputPath(dir, "DISTINTA_FRAORE.xlsx"); got != filepath.Join(dir, "DISTINTA_FRAORE.xlsx") {
		t.Fatalf("directory: got %q", got)
	}
	file := filepath.Join(dir, "out.xlsx")
	if got := outputPath(file, "DISTINTA_FRAORE.xlsx"); got != file {
		t.Fatalf("new file: got %q", got)
	}
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := outputPath(file, "DISTINTA_FRAORE.xlsx"); got != file {
		t.Fatalf("existing file: got %q", got)
	}
}
