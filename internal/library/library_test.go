package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp moves the test into a temp directory so project-local template
// paths resolve somewhere disposable.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestLoad_Builtin(t *testing.T) {
	chdirTemp(t)
	t.Setenv("VERBS_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	tmpl, err := Load("temperature")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if tmpl.Source != "built-in" {
		t.Errorf("Source = %q, want built-in", tmpl.Source)
	}
	if tmpl.Format != "%.1f°C" {
		t.Errorf("Format = %q", tmpl.Format)
	}
}

func TestLoad_NotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("VERBS_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	_, err := Load("no-such-template")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load error = %v, want ErrNotFound", err)
	}
}

func TestSaveLoadRemove(t *testing.T) {
	chdirTemp(t)
	t.Setenv("VERBS_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	tmpl := &Template{
		Name:        "greeting",
		Description: "A plain greeting",
		Format:      "hello %s",
	}
	path, err := Save(tmpl, false)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	loaded, err := Load("greeting")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Source != "project" {
		t.Errorf("Source = %q, want project", loaded.Source)
	}
	if loaded.Format != "hello %s" {
		t.Errorf("Format = %q", loaded.Format)
	}

	if err := Remove("greeting", false); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := Load("greeting"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Remove = %v, want ErrNotFound", err)
	}
}

func TestSave_RejectsBadTemplates(t *testing.T) {
	chdirTemp(t)

	tests := []struct {
		name string
		tmpl *Template
	}{
		{"empty name", &Template{Format: "%s"}},
		{"path in name", &Template{Name: "../escape", Format: "%s"}},
		{"empty format", &Template{Name: "x"}},
		{"malformed format", &Template{Name: "x", Format: "%y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Save(tt.tmpl, false); err == nil {
				t.Error("Save succeeded, want error")
			}
		})
	}
}

func TestLoad_RejectsTraversalNames(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("VERBS_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	// A template file sitting outside any template directory must stay
	// unreachable no matter how the name is crafted.
	outside := []byte("name: secret\nformat: \"%s\"\n")
	if err := os.WriteFile(filepath.Join(dir, "secret.yaml"), outside, 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(projectDir, 0750); err != nil {
		t.Fatal(err)
	}

	names := []string{
		"../../secret",
		"..\\..\\secret",
		"..",
		".",
		"",
		"  ",
	}
	for _, name := range names {
		if _, err := Load(name); err == nil {
			t.Errorf("Load(%q) succeeded, want error", name)
		}
		if err := Remove(name, false); err == nil {
			t.Errorf("Remove(%q) succeeded, want error", name)
		}
	}
}

func TestList_ProjectShadowsBuiltin(t *testing.T) {
	chdirTemp(t)
	t.Setenv("VERBS_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	override := &Template{
		Name:        "temperature",
		Description: "Fahrenheit instead",
		Format:      "%.1f°F",
	}
	if _, err := Save(override, false); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	var found *Info
	for _, info := range List() {
		if info.Name == "temperature" {
			entry := info
			found = &entry
			break
		}
	}
	if found == nil {
		t.Fatal("temperature not listed")
	}
	if found.Source != "project" {
		t.Errorf("Source = %q, want project", found.Source)
	}
	if found.Overrides != "built-in" {
		t.Errorf("Overrides = %q, want built-in", found.Overrides)
	}
}

func TestRemove_BuiltinNotRemovable(t *testing.T) {
	chdirTemp(t)
	t.Setenv("VERBS_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))

	if err := Remove("temperature", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove builtin = %v, want ErrNotFound", err)
	}
}
