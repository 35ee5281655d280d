package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "sub", "out.txt")

	if err := WriteFileAtomic(dest, []byte("contenu"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("lecture : %v", err)
	}
	if string(data) != "contenu" {
		t.Errorf("contenu = %q", string(data))
	}

	// réécriture : écrase proprement
	if err := WriteFileAtomic(dest, []byte("v2"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic (2): %v", err)
	}
	data, _ = os.ReadFile(dest)
	if string(data) != "v2" {
		t.Errorf("contenu après réécriture = %q", string(data))
	}

	// aucun fichier temporaire ne doit traîner
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(dest), ".tmp-*"))
	if len(matches) != 0 {
		t.Errorf("fichiers temporaires restants : %v", matches)
	}
}
