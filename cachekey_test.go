package runreg

import (
	"encoding/base64"
	"testing"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a, err := CacheKey("/w", []string{"--logdir", "x"}, map[string]any{"port": 6060})
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	b, err := CacheKey("/w", []string{"--logdir", "x"}, map[string]any{"port": 6060})
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	if a != b {
		t.Fatalf("identical launches produced different keys: %q vs %q", a, b)
	}
}

func mustKey(t *testing.T, wd string, args []string, kwargs map[string]any) string {
	t.Helper()
	k, err := CacheKey(wd, args, kwargs)
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	return k
}

func TestCacheKeySensitivity(t *testing.T) {
	base := mustKey(t, "/w", []string{"--logdir", "x"}, map[string]any{"port": 6060})
	variants := map[string]string{
		"working directory": mustKey(t, "/other", []string{"--logdir", "x"}, map[string]any{"port": 6060}),
		"argument value":    mustKey(t, "/w", []string{"--logdir", "y"}, map[string]any{"port": 6060}),
		"argument order":    mustKey(t, "/w", []string{"x", "--logdir"}, map[string]any{"port": 6060}),
		"configure kwargs":  mustKey(t, "/w", []string{"--logdir", "x"}, map[string]any{"port": 6061}),
	}
	for what, v := range variants {
		if v == base {
			t.Errorf("changing %s did not change the key", what)
		}
	}
}

func TestCacheKeyCanonicalForm(t *testing.T) {
	got, err := CacheKey("/w", []string{"--logdir", "x"}, map[string]any{"b": "2", "a": "1"})
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	// Canonical JSON: sorted keys at every level, compact separators.
	want := base64.StdEncoding.EncodeToString([]byte(
		`{"arguments":["--logdir","x"],"configure_kwargs":{"a":"1","b":"2"},"working_directory":"/w"}`))
	if got != want {
		t.Fatalf("non-canonical key:\n got %s\nwant %s", got, want)
	}
}

func TestCacheKeyNilNormalization(t *testing.T) {
	a, err := CacheKey("/w", nil, nil)
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	b, err := CacheKey("/w", []string{}, map[string]any{})
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	if a != b {
		t.Fatalf("nil and empty launches differ: %q vs %q", a, b)
	}
}
