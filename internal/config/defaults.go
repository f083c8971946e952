package config

const (
	defaultConfigPath           = "~/.config/moviescout/config.toml"
	projectConfigFile           = "moviescout.toml"
	dotEnvFile                  = ".env"
	defaultTMDBLanguage         = "en-US"
	defaultTMDBBaseURL          = "https://api.themoviedb.org/3"
	defaultCertificationCountry = "US"
	defaultTMDBTimeoutSeconds   = 10
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"

	// ProviderOpenRouter talks to an OpenAI-compatible chat completions endpoint.
	ProviderOpenRouter = "openrouter"
	// ProviderGemini talks to Google's Gemini API through the genai SDK.
	ProviderGemini = "gemini"

	defaultLLMProvider       = ProviderOpenRouter
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel   = "anthropic/claude-3.5-sonnet"
	defaultGeminiModel       = "gemini-2.0-flash"
	defaultLLMTitle          = "moviescout"
	defaultLLMTimeoutSeconds = 15
	defaultLLMMaxTokens      = 300
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:              defaultTMDBBaseURL,
			Language:             defaultTMDBLanguage,
			CertificationCountry: defaultCertificationCountry,
			TimeoutSeconds:       defaultTMDBTimeoutSeconds,
		},
		LLM: LLM{
			Provider:       defaultLLMProvider,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
			MaxTokens:      defaultLLMMaxTokens,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
