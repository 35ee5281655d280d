package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/patrickprogramme/ytcc/internal/fsutil"
	"github.com/patrickprogramme/ytcc/internal/subtitles"
	"github.com/patrickprogramme/ytcc/internal/updater"
)

// BuildTranscriptFromFile parse le fichier SRT et construit le transcript
// dédupliqué. Le titre est dérivé du nom du fichier produit par yt-dlp
// (gabarit "%(title)s.%(ext)s").
func BuildTranscriptFromFile(srtPath string) (subtitles.Transcript, error) {
	var empty subtitles.Transcript

	entries, err := subtitles.ParseSRTFile(srtPath)
	if err != nil {
		return empty, fmt.Errorf("parse srt: %w", err)
	}

	title := TitleFromSubtitlePath(srtPath)
	tr, err := subtitles.BuildTranscript(title, entries)
	if err != nil {
		return empty, err
	}
	return tr, nil
}

// TitleFromSubtitlePath retire l'extension .srt et le suffixe de langue du
// nom de fichier yt-dlp. Ex: "Mon titre.en-orig.srt" -> "Mon titre".
func TitleFromSubtitlePath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".srt")
	if ext := filepath.Ext(base); strings.HasPrefix(ext, ".en") {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// SaveTranscript sauvegarde le transcript (une phrase par ligne) avec
// fsutil.WriteFileAtomic. Retourne le chemin du fichier écrit.
func SaveTranscript(tr subtitles.Transcript, outDir string) (string, error) {
	if len(tr.Lines) == 0 {
		return "", fmt.Errorf("SaveTranscript: transcript vide")
	}
	path := filepath.Join(outDir, tr.Filename())
	if werr := fsutil.WriteFileAtomic(path, []byte(tr.Plain()), 0o644); werr != nil {
		return "", fmt.Errorf("write transcript %s: %w", path, werr)
	}
	return path, nil
}

// YtDlpUpdateCheck compare la version locale de yt-dlp avec la dernière
// release GitHub. Les échecs réseau ne sont pas fatals : c'est un confort.
func (a *App) YtDlpUpdateCheck(ctx context.Context, timeout time.Duration, version string) {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckYtDlpUpdate(uc, version)
	if err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: vérification de mise à jour a échoué : %v", err))
		return
	}

	if check.IsUpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return
	}

	a.ui.PrintInfo(ctx, "⚠️ Nouvelle version de yt-dlp disponible :")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	a.ui.PrintInfo(ctx, "Téléchargez-la ici:")
	a.ui.PrintInfo(ctx, check.GetUpdateLink(runtime.GOOS))
}
