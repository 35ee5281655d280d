package subtitles

import (
	"strings"

	"github.com/patrickprogramme/ytcc/internal/fsutil"
)

// BuildTranscript déduplique les entrées et construit le Transcript final.
//
// Les captions auto-générées répètent la même phrase sur plusieurs blocs
// consécutifs (fenêtre glissante) et parfois à distance. La déduplication
// porte donc sur TOUT l'historique : un texte déjà émis ne l'est plus jamais,
// seule la première occurrence survit, dans l'ordre d'origine.
//
// Le registre des textes vus est local à l'appel : aucun état partagé entre
// deux invocations.
func BuildTranscript(title string, entries []Entry) (Transcript, error) {
	if len(entries) == 0 {
		return Transcript{}, ErrEmptyTranscript
	}

	seen := make(map[string]struct{}, len(entries))
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Text]; dup {
			continue
		}
		seen[e.Text] = struct{}{}
		lines = append(lines, e.Text)
	}

	if len(lines) == 0 {
		return Transcript{}, ErrEmptyTranscript
	}
	return Transcript{Title: title, Lines: lines}, nil
}

// Collapsed retourne le transcript en un seul paragraphe : tous les textes
// joints par un espace unique. C'est la forme copiée dans le presse-papier.
func (t Transcript) Collapsed() string {
	return strings.Join(t.Lines, " ")
}

// Plain retourne le transcript sous forme lisible : un texte par ligne.
// Utile pour sauvegarde .txt simple.
func (t Transcript) Plain() string {
	if len(t.Lines) == 0 {
		return ""
	}
	return strings.Join(t.Lines, "\n") + "\n"
}

// Filename compose un nom de fichier .txt sûr à partir du titre.
func (t Transcript) Filename() string {
	base := fsutil.SanitizeFilename(strings.TrimSpace(t.Title))
	if base == "" {
		base = "transcript"
	}
	return base + ".txt"
}
