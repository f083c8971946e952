// Package llm provides the completion backends used to interpret free-text
// movie requests.
//
// Two backends implement Completer:
//   - Client: an OpenRouter (OpenAI-compatible) chat completions client
//   - GeminiClient: Google's Gemini API through the genai SDK
//
// Both send a single prompt and return the model's raw text, capped at the
// configured maximum token count. Requests are not retried; callers treat any
// error as a recoverable degradation and continue without the model.
//
// FirstCodeBlock and DecodeLLMJSON help callers pull structured JSON out of
// replies that wrap it in markdown fences or surrounding prose.
package llm
