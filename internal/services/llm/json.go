package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const codeFence = "```"

// FirstCodeBlock returns the body of the first markdown fenced block in
// content, without the fence or its language tag. When content holds no
// complete fenced block the trimmed content is returned unchanged.
func FirstCodeBlock(content string) string {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, codeFence)
	if start < 0 {
		return trimmed
	}
	body := trimmed[start+len(codeFence):]
	end := strings.Index(body, codeFence)
	if end < 0 {
		return trimmed
	}
	body = body[:end]
	// The info string runs to the end of the opening line.
	if newline := strings.IndexByte(body, '\n'); newline >= 0 {
		if info := strings.TrimSpace(body[:newline]); info == "" || !strings.ContainsAny(info, "{[") {
			body = body[newline+1:]
		}
	}
	return strings.TrimSpace(body)
}

// DecodeLLMJSON decodes JSON from an LLM response, handling common formatting quirks.
func DecodeLLMJSON(content string, target any) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return errors.New("empty payload")
	}

	directErr := json.Unmarshal([]byte(trimmed), target)
	if directErr == nil {
		return nil
	}

	sanitized := sanitizeJSONPayload(trimmed)
	if sanitized == "" || sanitized == trimmed {
		return fmt.Errorf("%w (payload snippet: %s)", directErr, summarizePayloadSnippet(trimmed))
	}

	sanitizedErr := json.Unmarshal([]byte(sanitized), target)
	if sanitizedErr == nil {
		return nil
	}
	return fmt.Errorf("%w (sanitized payload snippet: %s)", sanitizedErr, summarizePayloadSnippet(sanitized))
}

func sanitizeJSONPayload(content string) string {
	trimmed := FirstCodeBlock(content)
	if trimmed == "" {
		return ""
	}
	if trimmed[0] == '{' {
		return trimmed
	}
	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			return strings.TrimSpace(trimmed[start : end+1])
		}
	}
	return trimmed
}

// SummarizePayload collapses whitespace and truncates content for log output.
func SummarizePayload(content string) string {
	return summarizePayloadSnippet(content)
}

func summarizePayloadSnippet(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "<empty>"
	}
	clean := strings.Join(strings.Fields(trimmed), " ")
	const limit = 160
	runes := []rune(clean)
	if len(runes) > limit {
		clean = string(runes[:limit]) + "..."
	}
	return clean
}
