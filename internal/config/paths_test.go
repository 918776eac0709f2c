package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLegacyConfigDir(t *testing.T) {
	testCases := []struct {
		name       string
		goos       string
		home       string
		appData    string
		configHome string
		identity   string
		expected   string
	}{
		{
			name:     "windows roaming appdata",
			goos:     "windows",
			appData:  `C:\Users\u\AppData\Roaming`,
			identity: "Electron",
			expected: filepath.Join(`C:\Users\u\AppData\Roaming`, "Electron"),
		},
		{
			name:     "windows without appdata",
			goos:     "windows",
			home:     `C:\Users\u`,
			identity: "Electron",
			expected: "",
		},
		{
			name:     "darwin application support",
			goos:     "darwin",
			home:     "/Users/u",
			identity: "SideCoach",
			expected: filepath.Join("/Users/u", "Library", "Application Support", "SideCoach"),
		},
		{
			name:     "darwin without home",
			goos:     "darwin",
			identity: "SideCoach",
			expected: "",
		},
		{
			name:       "linux xdg config home",
			goos:       "linux",
			home:       "/home/u",
			configHome: "/home/u/.config",
			identity:   "Electron",
			expected:   filepath.Join("/home/u/.config", "Electron"),
		},
		{
			name:     "linux home fallback",
			goos:     "linux",
			home:     "/home/u",
			identity: "Electron",
			expected: filepath.Join("/home/u", ".config", "Electron"),
		},
		{
			name:     "linux with nothing resolvable",
			goos:     "linux",
			identity: "Electron",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := legacyConfigDir(tc.goos, tc.home, tc.appData, tc.configHome, tc.identity)
			if got != tc.expected {
				t.Errorf("legacyConfigDir(%s, %q, %q, %q, %q) = %q, want %q",
					tc.goos, tc.home, tc.appData, tc.configHome, tc.identity, got, tc.expected)
			}
		})
	}
}

func TestCandidatePathsDeterministic(t *testing.T) {
	r := NewResolver(nil)

	first := r.CandidatePaths()
	second := r.CandidatePaths()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("candidate paths not deterministic:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestCandidatePathsShape(t *testing.T) {
	r := NewResolver(nil)

	paths := r.CandidatePaths()
	if len(paths) == 0 {
		t.Fatal("no candidate paths resolved")
	}

	seen := map[string]bool{}
	for _, path := range paths {
		if !strings.HasSuffix(path, configFileName) {
			t.Errorf("candidate path %q does not end in %s", path, configFileName)
		}
		if seen[path] {
			t.Errorf("duplicate candidate path %q", path)
		}
		seen[path] = true
	}

	// the working directory fallback is always last
	last := paths[len(paths)-1]
	if filepath.Dir(last) != workingDir() {
		t.Errorf("last candidate %q is not in the working directory %q", last, workingDir())
	}
}

func TestCanonicalPath(t *testing.T) {
	r := NewResolver(nil)

	path := r.CanonicalPath()
	if path == "" {
		t.Fatal("canonical path is empty")
	}
	if !strings.HasSuffix(path, configFileName) {
		t.Errorf("canonical path %q does not end in %s", path, configFileName)
	}
}
