package config

import "testing"

func TestCheckCredentialsReportsEach(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ELEVENLABS_API_KEY", "")

	statuses := CheckCredentials()
	if len(statuses) != 2 {
		t.Fatalf("statuses = %d, want 2", len(statuses))
	}

	byName := map[string]bool{}
	for _, s := range statuses {
		byName[s.Name] = s.Present
	}
	if !byName["OPENAI_API_KEY"] {
		t.Error("OPENAI_API_KEY reported missing")
	}
	if byName["ELEVENLABS_API_KEY"] {
		t.Error("ELEVENLABS_API_KEY reported present")
	}
}

func TestMissingCredentials(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ELEVENLABS_API_KEY", "key")

	missing := MissingCredentials()
	if len(missing) != 1 || missing[0] != "OPENAI_API_KEY" {
		t.Errorf("missing = %v", missing)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.OutputDir != "temp_audio" {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q", cfg.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/var/dubs")
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_CHAT_ID", "42")

	cfg := Load()
	if cfg.OutputDir != "/var/dubs" {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.Port != "9090" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.AdminChatID != 42 {
		t.Errorf("admin chat = %d", cfg.AdminChatID)
	}
}
