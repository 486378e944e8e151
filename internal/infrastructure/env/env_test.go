package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewEnvServiceWithFile(t *testing.T) {
	// Register the key with the test framework so the overload gets
	// rolled back after the test.
	t.Setenv("JOKEBOT_TEST_FROM_FILE", "")

	path := filepath.Join(t.TempDir(), "override.env")
	if err := os.WriteFile(path, []byte("JOKEBOT_TEST_FROM_FILE=loaded\n"), 0644); err != nil {
		t.Fatal(err)
	}

	svc, err := NewEnvServiceWithFile(path)
	if err != nil {
		t.Fatalf("NewEnvServiceWithFile() error: %v", err)
	}
	if got := svc.Get("JOKEBOT_TEST_FROM_FILE"); got != "loaded" {
		t.Errorf("Get() = %q, want %q", got, "loaded")
	}
}

func TestNewEnvServiceWithFile_Missing(t *testing.T) {
	_, err := NewEnvServiceWithFile(filepath.Join(t.TempDir(), "nope.env"))
	if err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestGetWithDefault(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("JOKEBOT_TEST_SET", "value")
	if got := svc.GetWithDefault("JOKEBOT_TEST_SET", "fallback"); got != "value" {
		t.Errorf("GetWithDefault() = %q, want %q", got, "value")
	}
	if got := svc.GetWithDefault("JOKEBOT_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetWithDefault() = %q, want %q", got, "fallback")
	}
}

func TestGetBool(t *testing.T) {
	svc := &EnvService{}

	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{name: "true", value: "true", def: false, want: true},
		{name: "one", value: "1", def: false, want: true},
		{name: "false", value: "false", def: true, want: false},
		{name: "garbage keeps default", value: "yep", def: true, want: true},
		{name: "empty keeps default", value: "", def: true, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("JOKEBOT_TEST_BOOL", tc.value)
			if got := svc.GetBool("JOKEBOT_TEST_BOOL", tc.def); got != tc.want {
				t.Errorf("GetBool(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("JOKEBOT_TEST_INT", "42")
	if got := svc.GetInt("JOKEBOT_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt() = %d, want 42", got)
	}
	t.Setenv("JOKEBOT_TEST_INT", "not a number")
	if got := svc.GetInt("JOKEBOT_TEST_INT", 7); got != 7 {
		t.Errorf("GetInt() = %d, want default 7", got)
	}
}

func TestGetDuration(t *testing.T) {
	svc := &EnvService{}

	t.Setenv("JOKEBOT_TEST_DUR", "1m30s")
	if got := svc.GetDuration("JOKEBOT_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("GetDuration() = %v, want 1m30s", got)
	}
	t.Setenv("JOKEBOT_TEST_DUR", "soon")
	if got := svc.GetDuration("JOKEBOT_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("GetDuration() = %v, want default 1s", got)
	}
}
