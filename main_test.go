package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestPad(t *testing.T) {
	for _, test := range []struct {
		s     string
		width int
		want  string
	}{
		{"ABC", 5, "ABC  "},
		{"ABCDEF", 5, "ABCDEF"},
		{"ポケモン", 10, "ポケモン  "},
		{"", 2, "  "},
	} {
		if got := pad(test.s, test.width); got != test.want {
			t.Errorf("pad(%q, %d) = %q, want %q", test.s, test.width, got, test.want)
		}
	}
}

func TestListDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	rom := make([]byte, 1<<20)
	copy(rom, "POKEMON D\x00\x00\x00ADAE01")
	if err := afero.WriteFile(fs, "/roms/pokemon.nds", rom, 0644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/roms/broken.zip", []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	if err := listDir(&out, fs, "/roms"); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("listDir() printed %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "????") || !strings.HasSuffix(lines[0], "/roms/broken.zip") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ADAE") || !strings.Contains(lines[1], "POKEMON D") ||
		!strings.Contains(lines[1], "Flash 512KB") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
