// Package pipeline orchestrates one research run: prompt to search queries
// to harvested sources to extracted claims to a reconciled claim set to two
// markdown artifacts.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/scourhq/scour/internal/llm"
	"github.com/scourhq/scour/internal/model"
	"github.com/scourhq/scour/internal/search"
	"github.com/scourhq/scour/internal/webfetch"
)

// Pipeline runs research over three external collaborators. It holds no
// per-run state; the claim pool and reconciled map live on the stack of each
// Run call, so a Pipeline is safe for concurrent runs.
type Pipeline struct {
	completer llm.Provider
	searcher  search.Searcher
	fetcher   webfetch.Fetcher
	cfg       *model.Config
	log       *zap.Logger
}

// New creates a pipeline over the given collaborators.
func New(completer llm.Provider, searcher search.Searcher, fetcher webfetch.Fetcher, cfg *model.Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		completer: completer,
		searcher:  searcher,
		fetcher:   fetcher,
		cfg:       cfg,
		log:       log,
	}
}

func completionRequest(system, user string, temperature float32, maxTokens int) llm.CompletionRequest {
	return llm.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// Run executes the full research pipeline for one prompt. Per-query and
// per-source failures are contained and logged; the caller always gets a
// best-effort result. Only a hard failure of the initial query-generation
// call (or a defect) returns an error, always of type *Error.
func (p *Pipeline) Run(ctx context.Context, prompt string) (*model.Result, error) {
	started := time.Now().UTC()

	queries, err := p.diversify(ctx, prompt)
	if err != nil {
		return nil, &Error{Stage: "query generation", Err: err}
	}
	p.log.Info("generated search queries", zap.Int("count", len(queries)))

	sources := p.harvest(ctx, queries)
	p.log.Info("harvested sources", zap.Int("count", len(sources)))

	pool := p.extractAll(ctx, sources)
	p.log.Info("pooled claims", zap.Int("count", len(pool)))

	reconciled := reconcile(pool)
	p.log.Info("reconciled claims", zap.Int("count", len(reconciled)))

	evidence := renderEvidence(sources, reconciled)
	summary := p.synthesize(ctx, prompt, reconciled)

	return &model.Result{
		Prompt:      prompt,
		Queries:     queries,
		EvidenceMD:  evidence,
		SummaryMD:   summary,
		SourceCount: len(sources),
		ClaimCount:  len(reconciled),
		StartedAt:   started,
	}, nil
}
