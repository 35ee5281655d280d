package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/ytcc/internal/app"
	"github.com/patrickprogramme/ytcc/internal/assets"
	"github.com/patrickprogramme/ytcc/internal/bootstrap"
	"github.com/patrickprogramme/ytcc/internal/config"
	"github.com/patrickprogramme/ytcc/internal/subtitles"
	"github.com/patrickprogramme/ytcc/internal/ui"
	"github.com/patrickprogramme/ytcc/internal/ytdlp"
)

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	if exePath, err := os.Executable(); err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut : à côté du binaire
	if flags.ConfigPath == "ytcc.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "ytcc.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// appliquer les flags par-dessus la config
	if flags.TimeoutSec > 0 {
		cfg.DownloadTimeoutSec = flags.TimeoutSec
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags)
	if err := a.Run(ctx); err != nil {
		printDiagnostic(err)
		os.Exit(1)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "ytcc.yaml", "chemin vers le fichier de configuration")
	flag.StringVar(&f.YtDlpPath, "yt-dlp-path", "", "chemin absolu vers l'exécutable yt-dlp")
	flag.BoolVar(&f.NoClipboard, "no-clipboard", false, "ne pas copier le transcript dans le presse-papier")
	flag.BoolVar(&f.Save, "save", false, "sauvegarder le transcript dans un fichier .txt")
	flag.IntVar(&f.TimeoutSec, "timeout", 0, "délai maximal du téléchargement en secondes (0 = valeur de la config)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: ytcc [options] <url>\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Extrait les sous-titres automatiques anglais d'une vidéo YouTube,\nles déduplique et copie le transcript dans le presse-papier.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	f.URL = flag.Arg(0)
	return f
}

// printDiagnostic traduit les erreurs classifiées en message actionnable.
func printDiagnostic(err error) {
	switch {
	case errors.Is(err, ytdlp.ErrNotInstalled):
		fmt.Fprintf(os.Stderr, "ERREUR FATALE : %v\n", err)
		fmt.Fprintln(os.Stderr, "Installez yt-dlp et vérifiez votre PATH. Voir: https://github.com/yt-dlp/yt-dlp")
	case errors.Is(err, ytdlp.ErrRateLimited):
		fmt.Fprintf(os.Stderr, "ERREUR : %v\n", err)
		fmt.Fprintln(os.Stderr, "YouTube limite les requêtes. Attendez quelques minutes, changez de réseau, ou réessayez plus tard.")
	case errors.Is(err, ytdlp.ErrNoSubtitles):
		fmt.Fprintf(os.Stderr, "ERREUR : %v\n", err)
		fmt.Fprintln(os.Stderr, "Vérifiez que la vidéo propose bien des sous-titres auto-générés en anglais.")
	case errors.Is(err, subtitles.ErrEmptyTranscript):
		fmt.Fprintf(os.Stderr, "ERREUR : %v\n", err)
		fmt.Fprintln(os.Stderr, "Le fichier de sous-titres a été téléchargé mais n'a pas pu être exploité (format inattendu ?).")
	case errors.Is(err, ytdlp.ErrToolFailed):
		fmt.Fprintf(os.Stderr, "--- ERREUR : 'yt-dlp' a échoué ---\n%v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "ERREUR : %v\n", err)
	}
}
