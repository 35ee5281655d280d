package github

import (
	"context"
	"fmt"

	"github.com/patrickprogramme/ytcc/internal/fetch"
)

// FetchLatestReleaseInto interroge l'API GitHub pour la dernière release d'un
// dépôt et décode le JSON dans dst (pointeur vers la structure attendue).
func FetchLatestReleaseInto(ctx context.Context, owner, repo string, dst interface{}) error {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	if err := fetch.FetchJSONInto(ctx, url, fetch.DefaultTimeout, fetch.DefaultMaxBytes, dst); err != nil {
		return fmt.Errorf("release GitHub %s/%s: %w", owner, repo, err)
	}
	return nil
}
