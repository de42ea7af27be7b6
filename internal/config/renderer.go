package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type RendererConfig struct {
	Timeout time.Duration
}

var (
	rendererConfig *RendererConfig
	rendererOnce   sync.Once
)

func LoadRendererConfig() *RendererConfig {
	rendererOnce.Do(func() {
		timeout := 30 * time.Second
		if raw := os.Getenv("RENDER_TIMEOUT_SECONDS"); raw != "" {
			if s, err := strconv.Atoi(raw); err == nil && s > 0 {
				timeout = time.Duration(s) * time.Second
			}
		}
		rendererConfig = &RendererConfig{Timeout: timeout}
	})
	return rendererConfig
}
