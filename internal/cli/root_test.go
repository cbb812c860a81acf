package cli

import (
	"path/filepath"
	"testing"
)

func TestProfilesDirXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := profilesDir()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/xdg", "labelsmith", "profiles")
	if dir != want {
		t.Errorf("profilesDir() = %q, want %q", dir, want)
	}
}

func TestProfilesDirHomeFallback(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := profilesDir()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/home/tester", ".config", "labelsmith", "profiles")
	if dir != want {
		t.Errorf("profilesDir() = %q, want %q", dir, want)
	}
}
