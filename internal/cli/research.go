package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scourhq/scour/internal/model"
)

var (
	outEvidence   string
	outSummary    string
	timeout       time.Duration
	userAgent     string
	maxBytes      int64
	noCache       bool
	insecureTLS   bool
	llmProvider   string
	llmModel      string
	fetchProvider string
	maxSources    int
)

// researchCmd represents the research command
var researchCmd = &cobra.Command{
	Use:   "research <prompt>",
	Short: "Run a deep research pipeline for a prompt",
	Long: `Research runs the full pipeline for a single prompt:
- Generate diverse search queries from the prompt
- Search for one top candidate source per query
- Scrape each source and reduce it to readable paragraphs
- Extract dated key points from each source via the LLM
- Deduplicate key points, keeping the most recent dated version
- Synthesize a narrative research summary

Example:
  scour research "renewable energy trends"
  scour research "quantum computing startups" --evidence evidence.md --summary summary.md
  scour research "fusion power progress" --llm-provider anthropic --llm-model claude-3-5-sonnet-20241022`,
	Args: cobra.ExactArgs(1),
	RunE: runResearch,
}

func init() {
	rootCmd.AddCommand(researchCmd)

	// Output flags
	researchCmd.Flags().StringVar(&outEvidence, "evidence", "", "output path for the evidence markdown (optional)")
	researchCmd.Flags().StringVar(&outSummary, "summary", "", "output path for the summary markdown (optional)")

	// HTTP flags
	researchCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall research timeout")
	researchCmd.Flags().StringVar(&userAgent, "ua", "Scour/0.2 (+https://github.com/scourhq/scour)", "HTTP User-Agent for direct fetches")
	researchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read per page")
	researchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the page cache (force fresh fetches)")
	researchCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")

	// Provider flags
	researchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	researchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	researchCmd.Flags().StringVar(&fetchProvider, "fetch-provider", "", "fetch provider (scrapingant, direct; default: scrapingant when SCRAPINGANT_API_KEY is set)")

	// Research flags
	researchCmd.Flags().IntVar(&maxSources, "max-sources", 5, "maximum sources per run")
}

func runResearch(cmd *cobra.Command, args []string) error {
	prompt := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildResearchConfig()
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

	if verbose {
		fmt.Fprintf(os.Stderr, "Researching: %s\n", prompt)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	result, err := p.Run(ctx, prompt)
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Generated %d search queries\n", len(result.Queries))
		fmt.Fprintf(os.Stderr, "✓ Analyzed %d sources\n", result.SourceCount)
		fmt.Fprintf(os.Stderr, "✓ Reconciled %d key points\n", result.ClaimCount)
		fmt.Fprintln(os.Stderr)
	}

	if outEvidence != "" {
		if err := os.WriteFile(outEvidence, []byte(result.EvidenceMD), 0644); err != nil {
			return fmt.Errorf("write evidence: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote evidence: %s\n", outEvidence)
		}
	} else {
		fmt.Println(result.EvidenceMD)
	}

	if outSummary != "" {
		if err := os.WriteFile(outSummary, []byte(result.SummaryMD), 0644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote summary: %s\n", outSummary)
		}
	} else {
		fmt.Println(result.SummaryMD)
	}

	return nil
}

// buildResearchConfig merges defaults with the research command's flags.
func buildResearchConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 30 * time.Second
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Cache.Enabled = !noCache
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.Fetch.Provider = fetchProvider
	cfg.Output.Verbose = verbose
	if maxSources > 0 {
		cfg.Research.MaxSources = maxSources
	}
	return cfg
}
