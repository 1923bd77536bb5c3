package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/scourhq/scour/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Research multiple prompts from a file in parallel",
	Long: `Batch researches multiple prompts concurrently:
- Read prompts from input file (one per line, # comments skipped)
- Run whole research pipelines in parallel with configurable worker count
- Each run stays internally sequential for deterministic reconciliation
- Write an evidence log and a summary per prompt

Example:
  scour batch prompts.txt
  scour batch prompts.txt --concurrency 8 --output-dir ./reports
  scour batch prompts.txt --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent research runs")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./scour-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	// Shared flags (mirror research)
	batchCmd.Flags().StringVar(&userAgent, "ua", "Scour/0.2 (+https://github.com/scourhq/scour)", "HTTP User-Agent for direct fetches")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the page cache (force fresh fetches)")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	batchCmd.Flags().StringVar(&fetchProvider, "fetch-provider", "", "fetch provider (scrapingant, direct)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Scour Batch Research\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := buildResearchConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Dir = outputDir
	if err := resolveCredentials(cfg); err != nil {
		return err
	}

	log, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Processing prompts with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Prompt, result.Err)
			continue
		}

		successCount++

		slug := sanitizeFilename(result.Prompt)
		evidencePath := filepath.Join(outputDir, slug+".evidence.md")
		summaryPath := filepath.Join(outputDir, slug+".summary.md")

		if err := os.WriteFile(evidencePath, []byte(result.Result.EvidenceMD), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write evidence: %v\n", result.Prompt, err)
			continue
		}
		if err := os.WriteFile(summaryPath, []byte(result.Result.SummaryMD), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write summary: %v\n", result.Prompt, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d sources, %d key points)\n",
			result.Prompt, result.Result.SourceCount, result.Result.ClaimCount)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d prompts\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
