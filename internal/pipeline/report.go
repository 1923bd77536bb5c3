package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scourhq/scour/internal/model"
)

// summaryFallback is returned when the synthesis call fails; the evidence
// document is still delivered.
const summaryFallback = "Unable to generate summary."

// noClaimsMarker keeps the evidence document explicit when a run recovers
// nothing.
const noClaimsMarker = "- No key points could be extracted from the available sources."

// renderEvidence produces the evidence log: numbered source citations, one
// bullet per reconciled claim with a date annotation unless undated, and a
// trailing count line.
func renderEvidence(sources []model.Source, claims []model.Claim) string {
	var b strings.Builder

	b.WriteString("# Research Observations\n\n")
	b.WriteString("## Sources Analyzed\n")
	for i, s := range sources {
		fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, s.Title, s.URL)
	}

	b.WriteString("\n## Key Points Extracted\n\n")
	if len(claims) == 0 {
		b.WriteString(noClaimsMarker)
		b.WriteString("\n")
	} else {
		for _, c := range claims {
			if c.Date != model.DateUndated && c.Date != "" {
				fmt.Fprintf(&b, "- **%s** _(%s)_\n", c.Text, c.Date)
			} else {
				fmt.Fprintf(&b, "- **%s**\n", c.Text)
			}
		}
	}

	fmt.Fprintf(&b, "\n---\n*Total sources: %d | Key points: %d*\n", len(sources), len(claims))

	return b.String()
}

// synthesize asks the completion service for a narrative report over the
// reconciled claims. The response is prose and is returned as-is; a failed
// call surfaces the fallback string instead of aborting the run.
func (p *Pipeline) synthesize(ctx context.Context, prompt string, claims []model.Claim) string {
	serialized, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		p.log.Warn("serialize claims for synthesis", zap.Error(err))
		serialized = []byte("[]")
	}

	user := fmt.Sprintf("Research Prompt: %s\n\nKey Points:\n%s\n\nCreate a comprehensive research summary addressing the prompt.",
		prompt, serialized)

	summary, err := p.completer.Complete(ctx, completionRequest(synthesisSystem, user, synthesisTemperature, p.cfg.LLM.MaxTokens))
	if err != nil {
		p.log.Warn("synthesis failed", zap.Error(err))
		return summaryFallback
	}
	if summary == "" {
		return summaryFallback
	}

	return summary
}
