package ytdlp

import (
	"context"
	"fmt"
	"strings"
)

// GetVersion exécute yt-dlp avec l'option --version et retourne sa sortie.
// Utilise la sortie combinée pour faciliter le diagnostic en cas d'échec.
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	out, err := y.runner.Run(ctx, y.exe(), "--version")
	if err != nil {
		return "", fmt.Errorf("échec exécution yt-dlp --version : %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}
