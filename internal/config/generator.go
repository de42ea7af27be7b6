package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// GeneratorConfig selects and configures the content-generation backend.
// Backend is one of "gemini", "openrouter" or "stub". The stub backend is
// used whenever no API key is configured, matching local development.
type GeneratorConfig struct {
	Backend          string
	GeminiAPIKey     string
	OpenRouterAPIKey string
	StubDelay        time.Duration
}

var (
	generatorConfig *GeneratorConfig
	generatorOnce   sync.Once
)

func LoadGeneratorConfig() *GeneratorConfig {
	generatorOnce.Do(func() {
		backend := os.Getenv("GENERATOR_BACKEND")
		if backend == "" {
			backend = "stub"
		}
		delay := 2 * time.Second
		if raw := os.Getenv("GENERATOR_STUB_DELAY_MS"); raw != "" {
			if ms, err := strconv.Atoi(raw); err == nil {
				delay = time.Duration(ms) * time.Millisecond
			}
		}
		generatorConfig = &GeneratorConfig{
			Backend:          backend,
			GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
			OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
			StubDelay:        delay,
		}
	})
	return generatorConfig
}
