package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/ytcc/internal/clipboard"
	"github.com/patrickprogramme/ytcc/internal/config"
	"github.com/patrickprogramme/ytcc/internal/ui"
	"github.com/patrickprogramme/ytcc/internal/ytdlp"
)

const defaultUpdateTimeout = 15 * time.Second

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath  string
	URL         string // argument positionnel
	YtDlpPath   string
	NoClipboard bool
	Save        bool
	TimeoutSec  int
}

// App orchestre les différentes dépendances (UI, YtDlp, clipboard, FS).
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	ytClient ytdlp.Interface // initialisé dans Run
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	return &App{
		cfg:   cfg,
		ui:    uiClient,
		flags: flags,
	}
}

// Run exécute le flux principal : résolution de l'URL, initialisation de
// yt-dlp, téléchargement avec retentatives, parsing/déduplication, affichage,
// presse-papier et sauvegarde optionnelle.
func (a *App) Run(ctx context.Context) error {
	// Récupération de l'URL : priorité argument > clipboard > prompt
	url := a.flags.URL
	if url == "" {
		u, err := a.ui.GetYtURL(ctx)
		if err != nil {
			return fmt.Errorf("get url: %w", err)
		}
		url = u
	} else if !ytdlp.IsYouTubeURL(url) {
		return fmt.Errorf("URL non reconnue comme une vidéo YouTube : %s", url)
	}

	// si l'utilisateur a passé -yt-dlp-path, l'appliquer et re-résoudre
	if a.flags.YtDlpPath != "" {
		a.cfg.YtDlp.Path = a.flags.YtDlpPath
		a.cfg.ResolveYtDlpPath()
	}
	if warnings, err := a.cfg.ValidateYtDlpPresence(); err != nil {
		return fmt.Errorf("configuration yt-dlp invalide : %w", err)
	} else {
		for _, w := range warnings {
			a.ui.PrintError(ctx, "warning: "+w)
		}
	}

	// Init yt-dlp (CheckBinary + version)
	dl, version, err := ytdlp.InitYtDlp(ctx, a.cfg)
	if err != nil {
		return err
	}
	a.ytClient = dl
	a.ui.PrintInfo(ctx, "yt-dlp "+version)

	// Update check (optionnel)
	if a.cfg.YtDlp.AutoUpdateCheck {
		a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version)
	}

	// répertoire de travail temporaire : le fichier .srt y atterrit et tout
	// est supprimé quel que soit le chemin de sortie, succès ou erreur
	workDir, err := os.MkdirTemp("", "ytcc-*")
	if err != nil {
		return fmt.Errorf("création du répertoire temporaire : %w", err)
	}
	defer os.RemoveAll(workDir)

	a.ui.PrintInfo(ctx, "--- Téléchargement des sous-titres automatiques anglais... ---")
	dlCtx, cancel := context.WithTimeout(ctx, a.cfg.DownloadTimeout())
	defer cancel()

	srtPath, err := a.ytClient.DownloadWithRetry(dlCtx, url, workDir, a.retryPolicy())
	if err != nil {
		return describeDownloadFailure(err, a.cfg.DownloadTimeout())
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("-> Fichier de sous-titres trouvé : %s", filepath.Base(srtPath)))

	// Parsing + déduplication
	transcript, err := BuildTranscriptFromFile(srtPath)
	if err != nil {
		return err
	}

	text := transcript.Collapsed()
	a.ui.PrintInfo(ctx, "\n✅ --- TRANSCRIPT FINAL --- ✅\n")
	a.ui.PrintInfo(ctx, text)
	a.ui.PrintInfo(ctx, "\n--------------------------\n")

	// la copie presse-papier n'est jamais fatale : le transcript est déjà affiché
	if a.cfg.CopyToClipboard && !a.flags.NoClipboard {
		if cerr := clipboard.WriteAll(text); cerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible : %v", cerr))
		} else {
			a.ui.PrintInfo(ctx, "Transcript copié dans le presse-papier.")
		}
	}

	if a.cfg.SaveTranscript || a.flags.Save {
		path, serr := SaveTranscript(transcript, a.cfg.OutputDir)
		if serr != nil {
			return fmt.Errorf("échec de la sauvegarde du transcript: %w", serr)
		}
		a.ui.PrintInfo(ctx, "Transcript écrit dans : "+path)
	}

	return nil
}

// describeDownloadFailure traduit les fins de contexte en message lisible :
// un dépassement du délai global n'est pas une simple "deadline exceeded"
// pour l'utilisateur.
func describeDownloadFailure(err error, timeout time.Duration) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("délai de téléchargement dépassé (%s) : augmentez download_timeout_seconds ou le flag -timeout", timeout)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("opération annulée")
	default:
		return err
	}
}

// retryPolicy traduit la config YAML en politique de retentatives.
// Le flag -timeout ne joue pas ici : il borne le contexte global.
func (a *App) retryPolicy() ytdlp.RetryPolicy {
	return ytdlp.RetryPolicy{
		MaxAttempts: a.cfg.Retry.MaxAttempts,
		BaseDelay:   time.Duration(a.cfg.Retry.BaseDelaySec) * time.Second,
		JitterMin:   time.Duration(a.cfg.Retry.JitterMinSeconds) * time.Second,
		JitterMax:   time.Duration(a.cfg.Retry.JitterMaxSeconds) * time.Second,
	}
}
