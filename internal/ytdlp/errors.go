package ytdlp

import "errors"

// Erreurs exportées du package. Le main les classifie avec errors.Is pour
// afficher un message de remédiation adapté.
var (
	// ErrNotInstalled : le binaire yt-dlp est introuvable (ni chemin configuré, ni PATH).
	ErrNotInstalled = errors.New("yt-dlp introuvable")

	// ErrToolFailed : yt-dlp a échoué pour une raison autre qu'une limitation de débit.
	ErrToolFailed = errors.New("yt-dlp a échoué")

	// ErrRateLimited : toutes les tentatives (y compris le mode dégradé) ont été
	// rejetées par YouTube avec un signal 429.
	ErrRateLimited = errors.New("limitation de débit persistante (HTTP 429)")

	// ErrNoSubtitles : yt-dlp a terminé sans erreur mais aucun fichier de
	// sous-titres n'a été produit — la vidéo n'a probablement pas de
	// sous-titres automatiques anglais.
	ErrNoSubtitles = errors.New("aucun sous-titre automatique anglais disponible")
)
