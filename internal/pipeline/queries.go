package pipeline

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/scourhq/scour/internal/extract"
)

// diversify turns one research prompt into up to MaxQueries distinct search
// queries via a single completion call. A failed completion call is the one
// hard failure of the pipeline; a completion that comes back without usable
// JSON fails soft to whatever strings were recovered, possibly none — an
// empty query list simply flows forward as zero sources.
func (p *Pipeline) diversify(ctx context.Context, prompt string) ([]string, error) {
	text, err := p.completer.Complete(ctx, completionRequest(queryGenSystem, prompt, queryGenTemperature, queryGenMaxTokens))
	if err != nil {
		return nil, err
	}

	parsed, err := extract.JSON(text)
	if err != nil {
		p.log.Warn("query generation returned no usable JSON", zap.Error(err))
		return nil, nil
	}

	arr, ok := parsed.([]any)
	if !ok {
		p.log.Warn("query generation returned non-array JSON")
		return nil, nil
	}

	max := p.cfg.Research.MaxQueries
	seen := make(map[string]bool, max)
	var queries []string
	for _, el := range arr {
		s, ok := el.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		queries = append(queries, s)
		if len(queries) >= max {
			break
		}
	}

	return queries, nil
}
