// internal/util/util_test.go
package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	data := []byte("test payload")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected file contents: got %q want %q", got, data)
	}
}

func TestWriteFileOverwritesAndKeepsMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.html")
	if err := os.WriteFile(path, []byte("a much longer original body"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("short")); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != "short" {
		t.Fatalf("expected full overwrite, got %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "hello", max: 10, want: "hello"},
		{name: "ascii truncation", in: "helloworld", max: 5, want: "hello…"},
		{name: "accented truncation", in: "María José Núñez", max: 10, want: "María José…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
