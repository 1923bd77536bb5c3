package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/scourhq/scour/internal/model"
)

// Runner runs one complete research pipeline for a prompt. Each invocation
// owns its own claim pool and reconciled map, so runs are safe to execute
// concurrently.
type Runner interface {
	Run(ctx context.Context, prompt string) (*model.Result, error)
}

// PromptResult pairs a prompt with its research outcome.
type PromptResult struct {
	Prompt string
	Result *model.Result
	Err    error
}

// GetError implements the Result interface
func (r *PromptResult) GetError() error { return r.Err }

// promptJob wraps one prompt for pool execution
type promptJob struct {
	runner Runner
	prompt string
}

// Execute implements the Job interface
func (j *promptJob) Execute(ctx context.Context) Result {
	res, err := j.runner.Run(ctx, j.prompt)
	return &PromptResult{
		Prompt: j.prompt,
		Result: res,
		Err:    err,
	}
}

// BatchProcessor fans whole research runs out across a worker pool.
type BatchProcessor struct {
	runner  Runner
	workers int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(runner Runner, workers int) *BatchProcessor {
	return &BatchProcessor{
		runner:  runner,
		workers: workers,
	}
}

// ProcessFile reads prompts from a file (one per line, blank lines and
// #-comments skipped) and researches them concurrently.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*PromptResult, error) {
	prompts, err := readPrompts(path)
	if err != nil {
		return nil, err
	}
	return b.Process(ctx, prompts), nil
}

// Process researches the given prompts concurrently and returns one result
// per prompt.
func (b *BatchProcessor) Process(ctx context.Context, prompts []string) []*PromptResult {
	pool := NewPool(b.workers)
	pool.Start()

	for _, prompt := range prompts {
		pool.Submit(&promptJob{runner: b.runner, prompt: prompt})
	}

	raw := pool.Wait()

	results := make([]*PromptResult, 0, len(raw))
	for _, r := range raw {
		if pr, ok := r.(*PromptResult); ok {
			results = append(results, pr)
		}
	}
	return results
}

// readPrompts reads non-blank, non-comment lines from a file
func readPrompts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prompts file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var prompts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prompts = append(prompts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	return prompts, nil
}
