package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func noEnv(string) string { return "" }

func TestLoader_Layers(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	work := filepath.Join(project, "a", "b")
	if err := os.MkdirAll(work, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), `
build:
  language: energy
  layout: diagram
nats:
  url: nats://user:4222
`)
	writeFile(t, filepath.Join(project, ProjectConfigFile), `
build:
  language: values
vocabulary:
  dir: vocab
`)

	cfg, err := NewLoader(nil, WithHomeDir(home), WithWorkDir(work), WithGetenv(noEnv)).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Build.Language != "values" {
		t.Errorf("project config should win, got language %s", cfg.Build.Language)
	}
	if cfg.Build.Layout != LayoutDiagram {
		t.Errorf("user config should apply, got layout %s", cfg.Build.Layout)
	}
	if cfg.NATS.URL != "nats://user:4222" {
		t.Errorf("expected user NATS URL, got %s", cfg.NATS.URL)
	}
	if want := filepath.Join(project, "vocab"); cfg.Vocabulary.Dir != want {
		t.Errorf("expected vocabulary dir %s, got %s", want, cfg.Vocabulary.Dir)
	}
}

func TestLoader_Env(t *testing.T) {
	env := map[string]string{
		EnvNATSURL:         "nats://primary:4222",
		EnvNATSURLFallback: "nats://fallback:4222",
	}
	getenv := func(k string) string { return env[k] }

	loader := NewLoader(nil, WithHomeDir(t.TempDir()), WithWorkDir(t.TempDir()), WithGetenv(getenv))
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NATS.URL != "nats://primary:4222" {
		t.Errorf("expected %s to win, got %s", EnvNATSURL, cfg.NATS.URL)
	}

	delete(env, EnvNATSURL)
	cfg, err = loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NATS.URL != "nats://fallback:4222" {
		t.Errorf("expected fallback URL, got %s", cfg.NATS.URL)
	}
}

func TestLoader_InvalidProjectConfig(t *testing.T) {
	work := t.TempDir()
	writeFile(t, filepath.Join(work, ProjectConfigFile), "build:\n  layout: spiral\n")

	_, err := NewLoader(nil, WithHomeDir(t.TempDir()), WithWorkDir(work), WithGetenv(noEnv)).Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoader_EnsureUserConfig(t *testing.T) {
	home := t.TempDir()
	loader := NewLoader(nil, WithHomeDir(home), WithWorkDir(t.TempDir()), WithGetenv(noEnv))

	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	if _, err := os.Stat(loader.UserConfigPath()); err != nil {
		t.Fatalf("user config not created: %v", err)
	}

	// A second call leaves the file alone
	writeFile(t, loader.UserConfigPath(), "build:\n  language: society\n")
	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig() error = %v", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Build.Language != "society" {
		t.Errorf("expected language society, got %s", cfg.Build.Language)
	}
}
