// Package internal holds the steps shared by the wincross commands: locating
// the project, loading both config layers and preparing the container side.
package internal

import (
	"context"
	"os"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/container"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/logging"
	"github.com/wincross/wincross/pkg/paths"
	"github.com/wincross/wincross/pkg/provision"
	"github.com/wincross/wincross/pkg/wrappers"
)

// Locations are the user-supplied overrides for finding the project.
type Locations struct {
	// Root is --root or WINCROSS_ROOT
	Root string
	// ProjectConfig is --project-config or WINCROSS_PROJECT_CONFIG
	ProjectConfig string
	// BuildConfig is --build-config or WINCROSS_BUILD_CONFIG
	BuildConfig string
	// Cwd is the directory relative paths resolve against; empty means the
	// process working directory
	Cwd string
}

// Session is a located project with both config layers loaded.
type Session struct {
	FS                filesystem.FS
	Root              string
	ProjectConfigPath string
	BuildConfigPath   string
	Project           *config.ProjectConfig
	Defaults          config.Defaults
}

// Open locates the project root and loads the project config.
func Open(fsys filesystem.FS, loc Locations) (*Session, error) {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cwd := loc.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get working directory")
		}
		cwd = wd
	}

	root, err := paths.FindRoot(fsys, paths.RootOptions{
		Explicit:      loc.Root,
		ProjectConfig: loc.ProjectConfig,
		Cwd:           cwd,
	})
	if err != nil {
		return nil, err
	}

	s := &Session{
		FS:                fsys,
		Root:              root,
		ProjectConfigPath: paths.ProjectConfigPath(root, loc.ProjectConfig, cwd),
		BuildConfigPath:   paths.BuildConfigPath(root, loc.BuildConfig, cwd),
		Defaults:          config.StandardDefaults(),
	}
	if s.Project, err = config.LoadProjectConfig(fsys, s.ProjectConfigPath); err != nil {
		return nil, err
	}

	clog := logging.GetLogger("commands")
	clog.Debug().
		Str("root", s.Root).
		Str("project_config", s.ProjectConfigPath).
		Str("build_config", s.BuildConfigPath).
		Msg("Opened project")
	return s, nil
}

// LoadBuild reads the build config written by init.
func (s *Session) LoadBuild() (*config.BuildConfig, error) {
	return config.LoadBuildConfig(s.FS, s.BuildConfigPath)
}

// Resolve loads the build config and resolves the effective configuration.
func (s *Session) Resolve() (*config.Effective, error) {
	build, err := s.LoadBuild()
	if err != nil {
		return nil, err
	}
	return config.Resolve(s.Project, build, s.Root, s.ProjectConfigPath, s.Defaults)
}

// Executor runs argv inside the configured container.
type Executor struct {
	FS      filesystem.FS
	Runner  container.Runner
	Options container.RunOptions
}

// Run starts command in the container. The XDG runtime directory is created
// on the host first because the runtime bind-mounts it through the state dir.
func (e *Executor) Run(ctx context.Context, eff *config.Effective, command []string, interactive bool) error {
	xdg := paths.NewLayout(eff.StateDir).XDGRuntimeDir()
	if err := e.FS.MkdirAll(xdg, 0700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", xdg).WithDetail("path", xdg)
	}

	opts := e.Options
	opts.Interactive = interactive
	argv, err := container.RunArgs(eff, opts, command)
	if err != nil {
		return err
	}
	return e.Runner.Run(ctx, argv)
}

// Steps selects the preparation done before a containerized command.
type Steps struct {
	MtWrapper   bool
	Generated   bool
	WinexeOnly  bool
	WineRuntime bool
	Vcpkg       bool
}

// Prepare generates the host-side scripts and runs the in-container
// provisioning selected by steps.
func (e *Executor) Prepare(ctx context.Context, eff *config.Effective, steps Steps) error {
	defer logging.LogOperationStart(logging.GetLogger("commands"), "prepare")()

	gen := wrappers.NewGenerator(e.FS)
	if steps.MtWrapper {
		if _, err := gen.EnsureMtWrapper(paths.NewLayout(eff.StateDir).MtWrapperPath(), eff.Defaults); err != nil {
			return err
		}
	}
	switch {
	case steps.Generated:
		if _, err := gen.EnsureAll(eff); err != nil {
			return err
		}
	case steps.WinexeOnly:
		if _, err := gen.EnsureWinexeWrappers(eff); err != nil {
			return err
		}
	}
	if steps.WineRuntime {
		if err := e.Run(ctx, eff, provision.Command(provision.WineRuntimeScript(eff.Defaults)), false); err != nil {
			return err
		}
	}
	if steps.Vcpkg && eff.Vcpkg.Enabled {
		if err := e.Run(ctx, eff, provision.Command(provision.VcpkgBootstrapScript(eff.Vcpkg)), false); err != nil {
			return err
		}
		if eff.Vcpkg.FixupZ3DLL {
			if _, err := provision.FixupZ3DLL(e.FS, eff.Vcpkg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Invocation carries what every containerized command needs.
type Invocation struct {
	Locations
	FileSystem filesystem.FS
	Runner     container.Runner
	Runtime    string
	UID        int
	GID        int
}

// Start opens the project, resolves the effective configuration and returns
// an executor bound to it.
func (inv Invocation) Start() (*config.Effective, *Executor, error) {
	s, err := Open(inv.FileSystem, inv.Locations)
	if err != nil {
		return nil, nil, err
	}
	eff, err := s.Resolve()
	if err != nil {
		return nil, nil, err
	}
	runner := inv.Runner
	if runner == nil {
		runner = container.NewExecRunner()
	}
	return eff, &Executor{
		FS:     s.FS,
		Runner: runner,
		Options: container.RunOptions{
			Runtime: inv.Runtime,
			UID:     inv.UID,
			GID:     inv.GID,
		},
	}, nil
}
