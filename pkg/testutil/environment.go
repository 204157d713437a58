package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/filesystem"
)

// DefaultRoot is the project root of a memory environment.
const DefaultRoot = "/virtual/project"

// FileTree maps root-relative paths to file contents. A trailing slash
// creates a directory.
type FileTree map[string]string

// TestEnvironment is a project checkout on an in-memory filesystem.
type TestEnvironment struct {
	Root string
	FS   filesystem.FS

	t *testing.T
}

// NewTestEnvironment returns an environment whose root carries a .git marker.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	env := &TestEnvironment{
		Root: DefaultRoot,
		FS:   filesystem.NewMemory(),
		t:    t,
	}
	env.mkdir(filepath.Join(env.Root, ".git"))
	return env
}

// Path joins rel onto the project root.
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, rel)
}

// WithFileTree writes every entry of tree under the root.
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	for rel, content := range tree {
		if strings.HasSuffix(rel, "/") {
			env.mkdir(env.Path(rel))
			continue
		}
		env.WriteFile(env.Path(rel), content)
	}
	return env
}

// WriteFile writes an absolute path, creating parents.
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	env.mkdir(filepath.Dir(path))
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// Mkdir creates an absolute directory path.
func (env *TestEnvironment) Mkdir(path string) {
	env.t.Helper()
	env.mkdir(path)
}

// WriteProjectConfig writes wincross.toml at the root.
func (env *TestEnvironment) WriteProjectConfig(toml string) {
	env.t.Helper()
	env.WriteFile(env.Path("wincross.toml"), toml)
}

// BuildConfigPath is the default build config location.
func (env *TestEnvironment) BuildConfigPath() string {
	return env.Path(".wincross/build_config.json")
}

// WriteBuildConfig writes cfg at the default build config location. Empty
// ProjectRoot and StateDir are filled from the environment root.
func (env *TestEnvironment) WriteBuildConfig(cfg *config.BuildConfig) {
	env.t.Helper()
	if cfg.ProjectRoot == "" {
		cfg.ProjectRoot = env.Root
	}
	if cfg.StateDir == "" {
		cfg.StateDir = env.Path(".wincross")
	}
	if err := config.WriteBuildConfig(env.FS, env.BuildConfigPath(), cfg, true); err != nil {
		env.t.Fatalf("Failed to write build config: %v", err)
	}
}

// ReadFile returns the content of an absolute path.
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	if err != nil {
		env.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

func (env *TestEnvironment) mkdir(dir string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}
}
