package fsutil

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"vide", "", "untitled"},
		{"deux-points remplacés", "Go: the movie", "Go- the movie"},
		{"slashes et chevrons", `a/b\c<d>e`, "a b c d e"},
		{"espaces multiples réduits", "trop   d'espaces", "trop d'espaces"},
		{"points terminaux retirés", "fin...", "fin"},
		{"que des caractères interdits", `///\\\`, "untitled"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeFilename(tc.in); got != tc.want {
				t.Errorf("SanitizeFilename(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("a", 3*maxFilenameLen)
	got := SanitizeFilename(long)
	if len(got) != maxFilenameLen {
		t.Errorf("len = %d; want %d", len(got), maxFilenameLen)
	}
}
