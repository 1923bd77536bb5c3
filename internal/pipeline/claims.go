package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/scourhq/scour/internal/extract"
	"github.com/scourhq/scour/internal/model"
)

// extractAll pools claims across all sources in source order. Sources with
// empty content are skipped. Any per-source failure — completion transport
// error or unrecoverable response — is logged and that source contributes
// zero claims; the batch never aborts.
func (p *Pipeline) extractAll(ctx context.Context, sources []model.Source) []model.Claim {
	var pool []model.Claim

	for _, source := range sources {
		if source.Content == "" {
			continue
		}

		claims, err := p.extractClaims(ctx, source)
		if err != nil {
			p.log.Warn("claim extraction failed", zap.String("url", source.URL), zap.Error(err))
			continue
		}
		pool = append(pool, claims...)
	}

	return pool
}

// extractClaims issues one extraction completion for a source and normalizes
// whatever comes back. The content excerpt is bounded to the configured rune
// budget to respect completion context limits.
func (p *Pipeline) extractClaims(ctx context.Context, source model.Source) ([]model.Claim, error) {
	user := fmt.Sprintf("Source: %s\nURL: %s\n\nContent:\n%s",
		source.Title, source.URL, truncateRunes(source.Content, p.cfg.Research.ExcerptLimit))

	text, err := p.completer.Complete(ctx, completionRequest(extractionSystem, user, extractionTemperature, extractionMaxTokens))
	if err != nil {
		return nil, err
	}

	parsed, err := extract.JSON(text)
	if err != nil {
		var malformed *extract.MalformedDataError
		if errors.As(err, &malformed) {
			// Not fatal: the normalizer falls back to bullet segmentation
			// of the raw response.
			p.log.Debug("extraction response had no JSON payload",
				zap.String("url", source.URL), zap.String("excerpt", malformed.Excerpt))
		}
		parsed = nil
	}

	claims := extract.NormalizeClaims(parsed, text)
	for i := range claims {
		claims[i].SourceURL = source.URL
	}

	return claims, nil
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
