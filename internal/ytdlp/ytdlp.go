package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + options.
type YtDlp struct {
	Name   string
	Path   string // chemin résolu vers l'exe, vide => recherche dans PATH
	Config Config

	runner Runner // exécuteur du sous-processus, remplaçable dans les tests
	sleep  sleepFunc
}

// Runner exécute un binaire externe et retourne sa sortie combinée (stdout+stderr).
// L'abstraction permet de simuler yt-dlp dans les tests sans sous-processus réel.
type Runner interface {
	Run(ctx context.Context, exe string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, exe string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, exe, args...).CombinedOutput()
}

// NewYtDlp construit une instance. resolvedPath peut être vide : dans ce cas
// le binaire sera cherché dans le PATH via son nom.
func NewYtDlp(name string, resolvedPath string, cfg Config) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
		runner: execRunner{},
		sleep:  sleepWithContext,
	}
}

// exe retourne la commande effective à exécuter.
func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}

// CheckBinary vérifie que yt-dlp existe et est exécutable.
// Si aucun chemin n'est configuré, on cherche dans le PATH (équivalent de which).
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	if y.Path == "" {
		p, err := exec.LookPath(y.Name)
		if err != nil {
			return fmt.Errorf("%w : %q absent du PATH", ErrNotInstalled, y.Name)
		}
		// mémoriser le chemin trouvé pour les invocations suivantes
		y.Path = p
		return nil
	}

	info, err := os.Stat(y.Path)
	if err != nil {
		return fmt.Errorf("%w à l'emplacement configuré %s : %v", ErrNotInstalled, y.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w : le chemin configuré est un répertoire, pas un exécutable : %s", ErrNotInstalled, y.Path)
	}
	return nil
}
