package chat

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"librify/internal/providers"
)

const replyEmpty = "Maaf, saya tidak dapat menemukan jawaban saat ini."

var (
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`_([^_]+)_`)
	bulletRe  = regexp.MustCompile(`(?m)^\s*[*-]\s+`)
	newlineRe = regexp.MustCompile(`\n{3,}`)
)

// CleanResponseText flattens LLM markdown for the mobile chat view: bold and
// italic markers stripped, list markers turned into bullets, runs of blank
// lines collapsed.
func CleanResponseText(text string) string {
	if strings.TrimSpace(text) == "" {
		return replyEmpty
	}
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = bulletRe.ReplaceAllString(text, "• ")
	text = newlineRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// AskFallback forwards the raw message to the LLM. Provider failures become
// reply text so the chat never breaks.
func (r *Resolver) AskFallback(ctx context.Context, message string) string {
	resp, info, err := r.llm.Generate(ctx, providers.GenerateRequest{Prompt: message})
	if err != nil {
		log.Printf("llm fallback failed provider=%s class=%s err=%v", info.Name, providers.ClassifyError(err), err)
		return fmt.Sprintf(replyError, err)
	}
	return CleanResponseText(resp.Text)
}
