package subtitles

import (
	"errors"
	"time"
)

// ErrEmptyTranscript : le fichier de sous-titres a été produit mais ne
// contient aucune entrée exploitable.
var ErrEmptyTranscript = errors.New("aucune entrée exploitable dans le fichier de sous-titres")

// Entry représente un bloc de sous-titre SRT.
// L'index et la plage temporelle sont informatifs : seuls les textes
// alimentent le transcript final.
type Entry struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string // texte normalisé, lignes multiples jointes par un espace
}

// Transcript représente la suite ordonnée des textes dédupliqués.
type Transcript struct {
	Title string
	Lines []string
}
