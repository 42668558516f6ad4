package config

import (
	"testing"
)

func TestLoadEnvParsesCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.example.com, https://admin.example.com ,,")

	env := LoadEnv()

	want := []string{"https://app.example.com", "https://admin.example.com"}
	if len(env.CORSOrigins) != len(want) {
		t.Fatalf("got %d origins %v, want %d", len(env.CORSOrigins), env.CORSOrigins, len(want))
	}
	for i, o := range want {
		if env.CORSOrigins[i] != o {
			t.Errorf("origin[%d] = %q, want %q", i, env.CORSOrigins[i], o)
		}
	}
}

func TestLoadEnvCORSOriginsEmptyByDefault(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	if env := LoadEnv(); len(env.CORSOrigins) != 0 {
		t.Fatalf("expected no origins, got %v", env.CORSOrigins)
	}
}
