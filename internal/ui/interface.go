package ui

import "context"

type Interface interface {
	// GetYtURL doit renvoyer une URL YouTube valide.
	// Implémentation terminale : priorité clipboard -> prompt
	GetYtURL(ctx context.Context) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
