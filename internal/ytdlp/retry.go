package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// RetryPolicy pilote la boucle de tentatives du téléchargement.
// Entre deux tentatives standard on attend BaseDelay doublé à chaque essai,
// plus un jitter aléatoire dans [JitterMin, JitterMax] pour éviter des
// retentatives synchronisées.
type RetryPolicy struct {
	MaxAttempts int           // tentatives en mode standard (>= 1)
	BaseDelay   time.Duration // délai initial, doublé à chaque tentative
	JitterMin   time.Duration
	JitterMax   time.Duration
}

// DefaultRetryPolicy : 3 tentatives, backoff 2s/4s, jitter 1–3s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		JitterMin:   1 * time.Second,
		JitterMax:   3 * time.Second,
	}
}

// normalize remet des valeurs saines si la policy vient d'une config incomplète.
func (p RetryPolicy) normalize() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts < 1 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = def.BaseDelay
	}
	if p.JitterMin < 0 {
		p.JitterMin = def.JitterMin
	}
	if p.JitterMax < p.JitterMin {
		p.JitterMax = p.JitterMin
	}
	return p
}

// delayFor calcule le délai avant la tentative suivante : BaseDelay * 2^(attempt-1)
// + jitter. attempt est la tentative qui vient d'échouer (1..MaxAttempts-1).
func (p RetryPolicy) delayFor(attempt int) time.Duration {
	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	jitter := p.JitterMin
	if span := p.JitterMax - p.JitterMin; span > 0 {
		jitter += time.Duration(rand.Int63n(int64(span)))
	}
	return delay + jitter
}

type sleepFunc func(ctx context.Context, d time.Duration) error

// sleepWithContext bloque pendant d, en sortant plus tôt si le contexte est annulé.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DownloadWithRetry orchestre le téléchargement complet :
//
//	standard(1..MaxAttempts) -> backoff entre les tentatives -> mode dégradé (une fois) -> échec
//
// Seul ErrRateLimited déclenche une nouvelle tentative : tout autre échec est
// définitif et remonté immédiatement. Si le mode dégradé échoue aussi à cause
// du débit, l'erreur finale est ErrRateLimited.
func (y *YtDlp) DownloadWithRetry(ctx context.Context, url, workDir string, policy RetryPolicy) (string, error) {
	policy = policy.normalize()

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		path, err := y.Download(ctx, url, workDir)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			// ErrNoSubtitles, ErrToolFailed, annulation : inutile de réessayer
			return "", err
		}
		lastErr = err

		if attempt < policy.MaxAttempts {
			delay := policy.delayFor(attempt)
			fmt.Printf("-> Limitation de débit détectée (tentative %d/%d), nouvelle tentative dans %s...\n",
				attempt, policy.MaxAttempts, delay.Round(time.Second))
			if serr := y.sleep(ctx, delay); serr != nil {
				return "", serr
			}
		}
	}

	// tentatives standard épuisées : un dernier essai avec le jeu minimal
	fmt.Println("-> Tentatives standard épuisées, passage en mode dégradé...")
	path, err := y.DownloadFallback(ctx, url, workDir)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, ErrNoSubtitles) {
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return "", fmt.Errorf("%w (dernier échec : %v)", ErrRateLimited, firstNonNil(err, lastErr))
}

func firstNonNil(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}
