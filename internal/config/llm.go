package config

import (
	"os"
	"sync"
)

type LLMConfig struct {
	Provider string // "gemini" (default) or "openrouter"
	Model    string
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		provider := os.Getenv("LLM_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		model := os.Getenv("LLM_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		llmConfig = &LLMConfig{
			Provider: provider,
			Model:    model,
		}
	})
	return llmConfig
}
