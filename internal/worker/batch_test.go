package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/scourhq/scour/internal/model"
)

// fakeRunner researches prompts instantly, failing those that contain "fail".
type fakeRunner struct {
	calls int32
}

func (r *fakeRunner) Run(ctx context.Context, prompt string) (*model.Result, error) {
	atomic.AddInt32(&r.calls, 1)
	if strings.Contains(prompt, "fail") {
		return nil, errors.New("run failed")
	}
	return &model.Result{
		Prompt:      prompt,
		SummaryMD:   "summary for " + prompt,
		SourceCount: 1,
	}, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	runner := &fakeRunner{}
	b := NewBatchProcessor(runner, 3)

	prompts := []string{"topic one", "topic two", "topic that will fail", "topic three"}
	results := b.Process(context.Background(), prompts)

	if len(results) != len(prompts) {
		t.Fatalf("expected %d results, got %d", len(prompts), len(results))
	}
	if atomic.LoadInt32(&runner.calls) != int32(len(prompts)) {
		t.Errorf("expected %d runs, got %d", len(prompts), runner.calls)
	}

	failures := 0
	seen := make(map[string]bool)
	for _, r := range results {
		seen[r.Prompt] = true
		if r.Err != nil {
			failures++
			if r.Result != nil {
				t.Errorf("expected nil result on failure, got %+v", r.Result)
			}
			continue
		}
		if r.Result == nil || r.Result.Prompt != r.Prompt {
			t.Errorf("result prompt mismatch: %+v", r)
		}
	}

	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
	for _, p := range prompts {
		if !seen[p] {
			t.Errorf("missing result for prompt %q", p)
		}
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.txt")
	content := `# research topics
topic one

topic two
  # indented comment
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write prompts file: %v", err)
	}

	b := NewBatchProcessor(&fakeRunner{}, 2)
	results, err := b.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results (blank and comment lines skipped), got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_Missing(t *testing.T) {
	b := NewBatchProcessor(&fakeRunner{}, 2)
	_, err := b.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadPrompts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.txt")
	var lines []string
	for i := 0; i < 5; i++ {
		lines = append(lines, fmt.Sprintf("prompt %d", i))
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatalf("write prompts file: %v", err)
	}

	prompts, err := readPrompts(path)
	if err != nil {
		t.Fatalf("readPrompts failed: %v", err)
	}
	if len(prompts) != 5 {
		t.Errorf("expected 5 prompts, got %d", len(prompts))
	}
}
