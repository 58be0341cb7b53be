// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenvRestores(t *testing.T) {
	const key = "PALINIMI_TESTUTIL_PROBE"

	cleanup := MustSetenv(t, key, "one")
	if got := os.Getenv(key); got != "one" {
		t.Fatalf("Getenv(%q) = %q, want %q", key, got, "one")
	}
	cleanup()
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s still set after cleanup", key)
	}

	t.Cleanup(MustSetenv(t, key, "outer"))
	inner := MustUnsetenv(t, key)
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s still set after MustUnsetenv", key)
	}
	inner()
	if got := os.Getenv(key); got != "outer" {
		t.Errorf("Getenv(%q) = %q after restore, want %q", key, got, "outer")
	}
}

func TestMustWriteFileAndChdir(t *testing.T) {
	dir := t.TempDir()
	MustWriteFile(t, filepath.Join(dir, "nested", "config.cue"), "ui: verbose: true\n")

	restore := MustChdir(t, filepath.Join(dir, "nested"))
	defer restore()

	data, err := os.ReadFile("config.cue")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "ui: verbose: true\n" {
		t.Errorf("ReadFile() = %q", data)
	}
}
