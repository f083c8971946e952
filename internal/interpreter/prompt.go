package interpreter

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are a helpful movie assistant. A user typed this prompt:

%q

Extract the following structured JSON:
- genres: list of strings
- year_start: int or null
- year_end: int or null
- min_score: float or null
- min_runtime: int or null
- max_runtime: int or null
- certification: string or null

Return ONLY valid JSON:`

// BuildPrompt embeds query in the fixed extraction instructions.
func BuildPrompt(query string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(query))
}
