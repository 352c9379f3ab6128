package llm

import (
	"testing"
)

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("LINGUA_LLM_PROVIDER", "anthropic")
	t.Setenv("LINGUA_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("LINGUA_ANTHROPIC_MODEL", "claude-custom")

	cfg := ConfigFromEnv()

	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want sk-test", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-custom" {
		t.Errorf("Model = %q, want claude-custom", cfg.Anthropic.Model)
	}
	// Unrelated defaults stay intact.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI.Model = %q, want default gpt-4o-mini", cfg.OpenAI.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("LINGUA_LLM_PROVIDER", "")
	t.Setenv("LINGUA_OPENAI_API_KEY", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want default openai", cfg.Provider)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantProvider string
		wantFound    bool
	}{
		{
			name:         "openai wins over anthropic",
			env:          map[string]string{"OPENAI_API_KEY": "a", "ANTHROPIC_API_KEY": "b"},
			wantProvider: "openai",
			wantFound:    true,
		},
		{
			name:         "anthropic when no openai",
			env:          map[string]string{"ANTHROPIC_API_KEY": "b", "GEMINI_API_KEY": "c"},
			wantProvider: "anthropic",
			wantFound:    true,
		},
		{
			name:         "gemini last",
			env:          map[string]string{"GEMINI_API_KEY": "c"},
			wantProvider: "gemini",
			wantFound:    true,
		},
		{
			name:      "nothing set",
			env:       map[string]string{},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY"} {
				t.Setenv(key, tt.env[key])
			}

			cfg, found := DiscoverConfig()
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if found && cfg.Provider != tt.wantProvider {
				t.Errorf("Provider = %q, want %q", cfg.Provider, tt.wantProvider)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "openai with key",
			mutate: func(c *Config) { c.OpenAI.APIKey = "sk" },
		},
		{
			name:    "openai without key",
			mutate:  func(c *Config) {},
			wantErr: true,
		},
		{
			name:    "anthropic without key",
			mutate:  func(c *Config) { c.Provider = "anthropic" },
			wantErr: true,
		},
		{
			name:   "mock needs nothing",
			mutate: func(c *Config) { c.Provider = "mock" },
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "cohere" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
