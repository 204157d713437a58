package paths

import (
	"path/filepath"

	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
)

// Environment variable names
const (
	// EnvRoot overrides project root discovery
	EnvRoot = "WINCROSS_ROOT"

	// EnvProjectConfig overrides the project config location
	EnvProjectConfig = "WINCROSS_PROJECT_CONFIG"
)

// Default directories and files
const (
	// StateDirName is the project-local state directory
	StateDirName = ".wincross"

	// ProjectConfigFile is the default project config file name
	ProjectConfigFile = "wincross.toml"

	// BuildConfigFile is the generated build config file name
	BuildConfigFile = "build_config.json"

	// DefaultContainerRoot is where the project root is mounted in the container
	DefaultContainerRoot = "/work/project"

	// DefaultBuildDirName is the build directory under the state dir
	DefaultBuildDirName = "build-windows"

	// MtWrapperName is the mt.exe shim written into the state dir
	MtWrapperName = "mt-wrapper.sh"

	// CrossEmulatorName is the fixed name of the cross emulator script
	CrossEmulatorName = "wincross-emulator"
)

// RootMarkers are the files or directories that identify a project root.
var RootMarkers = []string{".git", "CMakeLists.txt", "pyproject.toml"}

// RootOptions collects the inputs of project root discovery.
type RootOptions struct {
	// Explicit is the --root flag or WINCROSS_ROOT value
	Explicit string
	// ProjectConfig is the --project-config flag or WINCROSS_PROJECT_CONFIG value
	ProjectConfig string
	// Cwd is the working directory relative paths resolve against
	Cwd string
}

// FindRoot determines the project root using the following priority:
// 1. explicit --root or WINCROSS_ROOT
// 2. nearest marker above the project config file
// 3. nearest marker above the working directory
func FindRoot(fsys filesystem.FS, opts RootOptions) (string, error) {
	if opts.Explicit != "" {
		return Absolute(opts.Explicit, opts.Cwd), nil
	}
	if opts.ProjectConfig != "" {
		start := Absolute(opts.ProjectConfig, opts.Cwd)
		if info, err := fsys.Stat(start); err == nil && !info.IsDir() {
			start = filepath.Dir(start)
		}
		if found, ok := findMarker(fsys, start); ok {
			return found, nil
		}
	}
	if opts.Cwd != "" {
		if found, ok := findMarker(fsys, filepath.Clean(opts.Cwd)); ok {
			return found, nil
		}
	}
	return "", errors.New(errors.ErrRootNotFound,
		"unable to locate project root (use --root or set "+EnvRoot+")")
}

func findMarker(fsys filesystem.FS, start string) (string, bool) {
	dir := start
	for {
		for _, marker := range RootMarkers {
			if filesystem.Exists(fsys, filepath.Join(dir, marker)) {
				return dir, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Absolute resolves path against base when it is relative, and cleans it.
func Absolute(path, base string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// StateDir returns the state directory of a project root.
func StateDir(root string) string {
	return filepath.Join(root, StateDirName)
}

// ProjectConfigPath returns the project config location: explicit flag or
// WINCROSS_PROJECT_CONFIG, then <root>/wincross.toml.
func ProjectConfigPath(root, explicit, cwd string) string {
	if explicit != "" {
		return Absolute(explicit, cwd)
	}
	return filepath.Join(root, ProjectConfigFile)
}

// BuildConfigPath returns the build config location: explicit flag, then
// <root>/.wincross/build_config.json.
func BuildConfigPath(root, explicit, cwd string) string {
	if explicit != "" {
		return Absolute(explicit, cwd)
	}
	return filepath.Join(StateDir(root), BuildConfigFile)
}

// Layout names the well-known entries of a state directory.
type Layout struct {
	StateDir string
}

// NewLayout returns the layout rooted at stateDir.
func NewLayout(stateDir string) Layout {
	return Layout{StateDir: stateDir}
}

func (l Layout) join(name string) string { return filepath.Join(l.StateDir, name) }

// BuildDir is the default build directory.
func (l Layout) BuildDir() string { return l.join(DefaultBuildDirName) }

// VcpkgRoot is the default vcpkg checkout.
func (l Layout) VcpkgRoot() string { return l.join("vcpkg") }

// SccacheDir holds the compiler cache.
func (l Layout) SccacheDir() string { return l.join("sccache") }

// WineDir is the Wine prefix.
func (l Layout) WineDir() string { return l.join("wine") }

// HomeDir is the container user's home.
func (l Layout) HomeDir() string { return l.join("home") }

// LogsDir holds build logs.
func (l Layout) LogsDir() string { return l.join("logs") }

// BinDir holds generated wrapper scripts.
func (l Layout) BinDir() string { return l.join("bin") }

// XDGRuntimeDir is the container XDG_RUNTIME_DIR; it must be owner-only.
func (l Layout) XDGRuntimeDir() string { return l.join("xdg-runtime") }

// MtWrapperPath is the mt.exe shim.
func (l Layout) MtWrapperPath() string { return l.join(MtWrapperName) }

// Dirs lists the directories `init` creates, in creation order.
func (l Layout) Dirs() []string {
	return []string{
		l.StateDir,
		l.SccacheDir(),
		l.WineDir(),
		l.HomeDir(),
		l.LogsDir(),
		l.BinDir(),
		l.XDGRuntimeDir(),
	}
}

// VcpkgBinaryCache is the default binary cache under a vcpkg root.
func VcpkgBinaryCache(vcpkgRoot string) string {
	return filepath.Join(vcpkgRoot, "bincache")
}
