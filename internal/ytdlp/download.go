package ytdlp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// taille maximale de sortie yt-dlp reprise dans un message d'erreur
const maxOutputTail = 600

// Download lance une invocation standard de yt-dlp et retourne le chemin du
// fichier .srt produit dans workDir.
//
// Classification du résultat (voir aussi retry.go) :
//   - fichier présent                      -> succès
//   - signature 429 dans la sortie         -> ErrRateLimited
//   - échec du process sans signature 429  -> ErrToolFailed
//   - succès du process mais aucun fichier -> ErrNoSubtitles
func (y *YtDlp) Download(ctx context.Context, url, workDir string) (string, error) {
	args := y.Config.BuildArgs(url, workDir)
	return y.runAndLocate(ctx, args, workDir)
}

// DownloadFallback lance l'invocation en mode dégradé (jeu d'options minimal).
func (y *YtDlp) DownloadFallback(ctx context.Context, url, workDir string) (string, error) {
	args := y.Config.FallbackArgs(url, workDir)
	return y.runAndLocate(ctx, args, workDir)
}

func (y *YtDlp) runAndLocate(ctx context.Context, args []string, workDir string) (string, error) {
	out, err := y.runner.Run(ctx, y.exe(), args...)
	output := string(out)

	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if isRateLimited(output) {
			return "", fmt.Errorf("%w : %s", ErrRateLimited, outputTail(output))
		}
		return "", fmt.Errorf("%w : %v : %s", ErrToolFailed, err, outputTail(output))
	}

	// yt-dlp peut se terminer avec un code 0 tout en n'ayant rien produit :
	// soit la vidéo n'a pas de sous-titres, soit YouTube a rejeté la requête
	// des sous-titres avec un 429 signalé seulement en warning.
	path, ok := findSubtitleFile(workDir)
	if ok {
		return path, nil
	}
	if isRateLimited(output) {
		return "", fmt.Errorf("%w : %s", ErrRateLimited, outputTail(output))
	}
	return "", ErrNoSubtitles
}

// isRateLimited détecte la signature d'une limitation de débit dans la sortie
// de yt-dlp. Le format des messages n'est pas un contrat stable : on se
// contente d'une heuristique sur les marqueurs connus.
func isRateLimited(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "429") || strings.Contains(lower, "too many requests")
}

// findSubtitleFile cherche le fichier de sous-titres produit par yt-dlp dans
// workDir. Le nom est dérivé du titre de la vidéo, on globbe donc sur la
// langue et l'extension (ex: "Mon titre.en-orig.srt").
func findSubtitleFile(workDir string) (string, bool) {
	for _, pattern := range []string{"*.en*.srt", "*.srt"} {
		matches, err := filepath.Glob(filepath.Join(workDir, pattern))
		if err == nil && len(matches) > 0 {
			return matches[0], true
		}
	}
	return "", false
}

// outputTail retourne la fin de la sortie de yt-dlp, tronquée : c'est la fin
// qui contient le message d'erreur utile.
func outputTail(output string) string {
	output = strings.TrimSpace(output)
	if len(output) > maxOutputTail {
		// recaler la coupe sur un début de rune pour ne pas tronquer un
		// caractère multi-octets
		cut := len(output) - maxOutputTail
		for cut < len(output) && !utf8.RuneStart(output[cut]) {
			cut++
		}
		output = "..." + output[cut:]
	}
	if output == "" {
		return "<aucune sortie>"
	}
	return output
}
