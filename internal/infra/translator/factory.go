package translator

import (
	"fmt"
	"net/http"

	"newatalk/internal/config"
)

// New builds the backend selected by cfg.Provider.
func New(cfg config.TranslatorConfig, httpClient *http.Client, userAgent string) (*Client, error) {
	switch cfg.Provider {
	case config.ProviderMyMemory, "":
		return NewMyMemory(httpClient, cfg.MyMemoryURL, userAgent), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai translator: missing API key")
		}
		return NewOpenAI(cfg.OpenAIAPIKey, "", cfg.OpenAIModel), nil
	case config.ProviderClaude:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("claude translator: missing API key")
		}
		return NewClaude(cfg.AnthropicAPIKey, "", cfg.ClaudeModel), nil
	default:
		return nil, fmt.Errorf("unknown translator provider %q", cfg.Provider)
	}
}
