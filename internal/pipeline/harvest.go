package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/scourhq/scour/internal/extract"
	"github.com/scourhq/scour/internal/model"
)

// harvest turns queries into a bounded list of sources with fetched content.
// One search call per query, one top result accepted per call; per-query
// failures are logged and skipped. After the search phase the list is capped
// at MaxSources and every survivor gets one fetch attempt. A failed fetch
// leaves the source content-less but keeps it in the list — it still counts
// toward the reported source total.
func (p *Pipeline) harvest(ctx context.Context, queries []string) []model.Source {
	max := p.cfg.Research.MaxQueries
	if len(queries) > max {
		queries = queries[:max]
	}

	var sources []model.Source
	seen := make(map[string]bool, len(queries))

	for _, query := range queries {
		result, err := p.searcher.Search(ctx, query)
		if err != nil {
			p.log.Warn("search failed", zap.String("query", query), zap.Error(err))
			continue
		}
		if result == nil || result.URL == "" {
			p.log.Warn("search returned no results", zap.String("query", query))
			continue
		}
		if seen[result.URL] {
			continue
		}
		seen[result.URL] = true

		sources = append(sources, model.Source{
			URL:     result.URL,
			Title:   result.Title,
			Snippet: result.Snippet,
		})
	}

	if len(sources) > p.cfg.Research.MaxSources {
		sources = sources[:p.cfg.Research.MaxSources]
	}

	for i := range sources {
		raw, err := p.fetcher.Fetch(ctx, sources[i].URL)
		if err != nil {
			p.log.Warn("fetch failed", zap.String("url", sources[i].URL), zap.Error(err))
			continue
		}
		sources[i].Content = extract.Paragraphs(raw, p.cfg.Research.MinParagraphLen)
	}

	return sources
}
