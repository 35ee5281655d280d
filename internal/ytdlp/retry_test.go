package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeResult décrit le comportement d'une invocation simulée de yt-dlp.
type fakeResult struct {
	output     string
	err        error
	createFile string // si non vide, crée ce fichier dans workDir avant de retourner
}

// fakeRunner rejoue une séquence de résultats et mémorise les invocations.
type fakeRunner struct {
	workDir string
	results []fakeResult
	calls   [][]string
}

func (f *fakeRunner) Run(ctx context.Context, exe string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if len(f.results) == 0 {
		return nil, fmt.Errorf("fakeRunner: séquence épuisée")
	}
	res := f.results[0]
	f.results = f.results[1:]
	if res.createFile != "" {
		if err := os.WriteFile(filepath.Join(f.workDir, res.createFile), []byte("1\n00:00:00,000 --> 00:00:01,000\nhello\n"), 0o644); err != nil {
			return nil, err
		}
	}
	return []byte(res.output), res.err
}

// newTestYtDlp construit un client avec runner factice et sleep instrumenté.
func newTestYtDlp(t *testing.T, fr *fakeRunner, delays *[]time.Duration) *YtDlp {
	t.Helper()
	y := NewYtDlp("yt-dlp", "/usr/local/bin/yt-dlp", *NewConfig(false, "en.*"))
	y.runner = fr
	y.sleep = func(ctx context.Context, d time.Duration) error {
		if delays != nil {
			*delays = append(*delays, d)
		}
		return nil
	}
	return y
}

// politique sans jitter pour des délais déterministes dans les tests
func testPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second, JitterMin: 0, JitterMax: 0}
}

var errExit = errors.New("exit status 1")

func TestDownloadWithRetry_SucceedsOnThirdAttempt(t *testing.T) {
	workDir := t.TempDir()
	fr := &fakeRunner{
		workDir: workDir,
		results: []fakeResult{
			{output: "ERROR: HTTP Error 429: Too Many Requests", err: errExit},
			{output: "ERROR: HTTP Error 429: Too Many Requests", err: errExit},
			{output: "[info] Writing video subtitles", createFile: "Some Video.en.srt"},
		},
	}
	var delays []time.Duration
	y := newTestYtDlp(t, fr, &delays)

	path, err := y.DownloadWithRetry(context.Background(), "https://youtu.be/abc", workDir, testPolicy())
	if err != nil {
		t.Fatalf("DownloadWithRetry: %v", err)
	}
	if filepath.Base(path) != "Some Video.en.srt" {
		t.Errorf("path = %q", path)
	}
	if len(fr.calls) != 3 {
		t.Fatalf("got %d invocations, want 3", len(fr.calls))
	}
	// un backoff entre chaque tentative, croissant
	if len(delays) != 2 {
		t.Fatalf("got %d sleeps, want 2: %v", len(delays), delays)
	}
	if !(delays[1] > delays[0]) {
		t.Errorf("délais non croissants : %v", delays)
	}
}

func TestDownloadWithRetry_FallbackAfterExhaustion(t *testing.T) {
	workDir := t.TempDir()
	rateLimited := fakeResult{output: "HTTP Error 429: Too Many Requests", err: errExit}
	fr := &fakeRunner{
		workDir: workDir,
		results: []fakeResult{rateLimited, rateLimited, rateLimited, rateLimited},
	}
	y := newTestYtDlp(t, fr, nil)

	_, err := y.DownloadWithRetry(context.Background(), "https://youtu.be/abc", workDir, testPolicy())
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v; want ErrRateLimited", err)
	}
	// 3 tentatives standard + exactement 1 tentative en mode dégradé
	if len(fr.calls) != 4 {
		t.Fatalf("got %d invocations, want 4", len(fr.calls))
	}
	// la dernière invocation doit utiliser le jeu d'options minimal
	last := fr.calls[len(fr.calls)-1]
	if hasArg(last, "--no-config") {
		t.Errorf("le mode dégradé ne doit pas passer --no-config : %v", last)
	}
	if !hasArgPair(last, "--sub-langs", "en") {
		t.Errorf("le mode dégradé doit demander la langue 'en' seule : %v", last)
	}
}

func TestDownloadWithRetry_FallbackSucceeds(t *testing.T) {
	workDir := t.TempDir()
	rateLimited := fakeResult{output: "429", err: errExit}
	fr := &fakeRunner{
		workDir: workDir,
		results: []fakeResult{
			rateLimited, rateLimited, rateLimited,
			{output: "ok", createFile: "Title.en.srt"},
		},
	}
	y := newTestYtDlp(t, fr, nil)

	path, err := y.DownloadWithRetry(context.Background(), "https://youtu.be/abc", workDir, testPolicy())
	if err != nil {
		t.Fatalf("DownloadWithRetry: %v", err)
	}
	if filepath.Base(path) != "Title.en.srt" {
		t.Errorf("path = %q", path)
	}
	if len(fr.calls) != 4 {
		t.Fatalf("got %d invocations, want 4", len(fr.calls))
	}
}

func TestDownloadWithRetry_NoSubtitlesIsFinal(t *testing.T) {
	workDir := t.TempDir()
	// succès du process mais aucun fichier produit : pas de retentative
	fr := &fakeRunner{
		workDir: workDir,
		results: []fakeResult{{output: "[info] There are no subtitles for the requested languages"}},
	}
	y := newTestYtDlp(t, fr, nil)

	_, err := y.DownloadWithRetry(context.Background(), "https://youtu.be/abc", workDir, testPolicy())
	if !errors.Is(err, ErrNoSubtitles) {
		t.Fatalf("err = %v; want ErrNoSubtitles", err)
	}
	if len(fr.calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(fr.calls))
	}
}

func TestDownloadWithRetry_OtherFailureIsFinal(t *testing.T) {
	workDir := t.TempDir()
	fr := &fakeRunner{
		workDir: workDir,
		results: []fakeResult{{output: "ERROR: Unsupported URL", err: errExit}},
	}
	y := newTestYtDlp(t, fr, nil)

	_, err := y.DownloadWithRetry(context.Background(), "https://example.com/x", workDir, testPolicy())
	if !errors.Is(err, ErrToolFailed) {
		t.Fatalf("err = %v; want ErrToolFailed", err)
	}
	if len(fr.calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(fr.calls))
	}
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func hasArgPair(args []string, flag, value string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}
