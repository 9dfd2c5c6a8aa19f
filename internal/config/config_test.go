package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if !cfg.IsDev() {
		t.Error("default config should be development")
	}
	if cfg.RateLimitRPS != 50 || cfg.RateLimitBurst != 100 {
		t.Errorf("rate limit defaults = %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.ClassifierSeed != 1 {
		t.Errorf("ClassifierSeed = %d, want 1", cfg.ClassifierSeed)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("CLASSIFIER_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("ENV=production should not be development")
	}
	if cfg.ClassifierSeed != 42 {
		t.Errorf("ClassifierSeed = %d, want 42", cfg.ClassifierSeed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"dev without secret", Config{Env: "development", RateLimitRPS: 50, RateLimitBurst: 100}, false},
		{"production without secret", Config{Env: "production", RateLimitRPS: 50, RateLimitBurst: 100}, true},
		{"production with secret", Config{Env: "production", AuthSecret: "x", RateLimitRPS: 50, RateLimitBurst: 100}, false},
		{"zero rps", Config{Env: "development", RateLimitRPS: 0, RateLimitBurst: 100}, true},
		{"zero burst", Config{Env: "development", RateLimitRPS: 50, RateLimitBurst: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
