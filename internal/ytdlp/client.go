package ytdlp

import "context"

// Interface est l'abstraction utilisée par l'application. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	DownloadWithRetry(ctx context.Context, url, workDir string, policy RetryPolicy) (string, error)
}
