// Package initialize implements `wincross init`.
package initialize

import (
	"sort"

	"github.com/wincross/wincross/pkg/commands/internal"
	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/filesystem"
	"github.com/wincross/wincross/pkg/invoke"
	"github.com/wincross/wincross/pkg/logging"
	"github.com/wincross/wincross/pkg/paths"
	"github.com/wincross/wincross/pkg/specs"
	"github.com/wincross/wincross/pkg/wrappers"
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	internal.Locations
	FileSystem filesystem.FS

	// Force overwrites an existing build config
	Force bool

	Image     string
	BuildDir  string
	Generator string
	BuildType string
	Profile   string

	// Toolchains are name=host[:container[:ro|rw]] specs
	Toolchains []string
	// Mounts are host:container[:ro|rw] specs
	Mounts []string
	// Env are KEY=VALUE pairs
	Env         []string
	PathPrepend []string
	// CMake are single default CMake args; CMakeArgs are shell-split
	CMake     []string
	CMakeArgs []string

	Vcpkg         bool
	VcpkgRoot     string
	VcpkgCache    string
	VcpkgTriplet  string
	VcpkgPackages []string
}

// InitResult reports what Init wrote.
type InitResult struct {
	BuildConfigPath string
	Config          *config.BuildConfig
	Directories     []string
}

// Init records host-specific settings in the build config and creates the
// state layout.
func Init(opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("commands.init")

	s, err := internal.Open(opts.FileSystem, opts.Locations)
	if err != nil {
		return nil, err
	}
	fsys, root := s.FS, s.Root
	d := s.Defaults
	state := paths.StateDir(root)
	layout := paths.NewLayout(state)

	if !opts.Force && filesystem.Exists(fsys, s.BuildConfigPath) {
		return nil, errors.Newf(errors.ErrConfigExists, "config already exists: %s (use --force to overwrite)", s.BuildConfigPath).
			WithDetail("path", s.BuildConfigPath)
	}

	project := config.SelectProfile(s.Project, opts.Profile)
	if err := config.ValidateProjectConfig(project); err != nil {
		return nil, err
	}

	buildDir := firstNonEmpty(opts.BuildDir, project.BuildDir, layout.BuildDir())
	buildDir = paths.Absolute(buildDir, root)
	if !paths.IsUnderRoot(buildDir, root) {
		return nil, errors.Newf(errors.ErrPathOutsideRoot, "build_dir must be under project root: %s", buildDir).
			WithDetail("path", buildDir)
	}

	toolchains, err := buildToolchains(fsys, root, opts.Toolchains, project.Toolchains)
	if err != nil {
		return nil, err
	}

	mounts := []config.Mount{}
	for _, spec := range opts.Mounts {
		m, err := specs.ParseMountSpec(fsys, spec, root)
		if err != nil {
			return nil, err
		}
		mounts = append(mounts, m)
	}

	env, err := specs.ParseEnv(opts.Env)
	if err != nil {
		return nil, err
	}

	vcpkg, err := buildVcpkg(opts, project.Vcpkg, root, layout, d)
	if err != nil {
		return nil, err
	}

	extra, err := invoke.SplitArgs(opts.CMakeArgs)
	if err != nil {
		return nil, err
	}

	cfg := &config.BuildConfig{
		Version:       d.ConfigVersion,
		Image:         firstNonEmpty(opts.Image, project.Image, d.Image),
		ProjectRoot:   root,
		StateDir:      state,
		BuildDir:      buildDir,
		Generator:     opts.Generator,
		BuildType:     opts.BuildType,
		Profile:       opts.Profile,
		Toolchains:    toolchains,
		Mounts:        mounts,
		Env:           env,
		PathPrepend:   append([]string{}, opts.PathPrepend...),
		Vcpkg:         vcpkg,
		CMakeDefaults: append(append([]string{}, opts.CMake...), extra...),
	}

	dirs := append([]string{layout.StateDir, buildDir}, layout.Dirs()[1:]...)
	if vcpkg.Enabled != nil && *vcpkg.Enabled {
		dirs = append(dirs, vcpkg.HostRoot, vcpkg.HostBinaryCache)
	}
	for _, dir := range dirs {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).WithDetail("path", dir)
		}
	}
	if err := fsys.Chmod(layout.XDGRuntimeDir(), 0700); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to chmod %s", layout.XDGRuntimeDir())
	}

	if _, err := wrappers.NewGenerator(fsys).EnsureMtWrapper(layout.MtWrapperPath(), d); err != nil {
		return nil, err
	}

	if err := config.WriteBuildConfig(fsys, s.BuildConfigPath, cfg, opts.Force); err != nil {
		return nil, err
	}

	log.Info().
		Str("path", s.BuildConfigPath).
		Int("toolchains", len(toolchains)).
		Bool("vcpkg", vcpkg.Enabled != nil && *vcpkg.Enabled).
		Msg("Wrote build config")

	return &InitResult{
		BuildConfigPath: s.BuildConfigPath,
		Config:          cfg,
		Directories:     dirs,
	}, nil
}

// buildToolchains parses the --toolchain specs, filling container path and
// mode from the project config. Every project toolchain needs a spec.
func buildToolchains(fsys filesystem.FS, root string, raw []string, project map[string]config.Toolchain) (map[string]config.Toolchain, error) {
	out := map[string]config.Toolchain{}
	for _, text := range raw {
		spec, err := specs.ParseToolchainSpec(fsys, text, root)
		if err != nil {
			return nil, err
		}
		projectTC := project[spec.Name]
		containerPath := firstNonEmpty(spec.ContainerPath, projectTC.ContainerPath)
		if containerPath == "" {
			return nil, errors.Newf(errors.ErrToolchainPathMissing,
				"toolchain '%s' missing container_path (set in project config or init spec)", spec.Name).
				WithDetail("toolchain", spec.Name)
		}
		readOnly := spec.ReadOnly
		if readOnly == nil {
			readOnly = config.Bool(projectTC.IsReadOnly())
		}
		out[spec.Name] = config.Toolchain{
			HostPath:      spec.HostPath,
			ContainerPath: containerPath,
			ReadOnly:      readOnly,
		}
	}

	for _, name := range sortedKeys(project) {
		if _, ok := out[name]; !ok {
			return nil, errors.Newf(errors.ErrToolchainPathMissing,
				"toolchain '%s' requires a host path (use --toolchain %s=HOST[:CONTAINER[:ro|rw]])", name, name).
				WithDetail("toolchain", name)
		}
	}
	return out, nil
}

func buildVcpkg(opts InitOptions, project config.VcpkgConfig, root string, layout paths.Layout, d config.Defaults) (config.VcpkgConfig, error) {
	enabled := opts.Vcpkg || (project.Enabled != nil && *project.Enabled)
	if !enabled {
		return config.VcpkgConfig{Enabled: config.Bool(false)}, nil
	}

	vcpkgRoot := paths.Absolute(firstNonEmpty(opts.VcpkgRoot, layout.VcpkgRoot()), root)
	if !paths.IsUnderRoot(vcpkgRoot, root) {
		return config.VcpkgConfig{}, errors.Newf(errors.ErrPathOutsideRoot,
			"vcpkg root must be under project root: %s", vcpkgRoot).WithDetail("path", vcpkgRoot)
	}
	cache := paths.VcpkgBinaryCache(vcpkgRoot)
	if opts.VcpkgCache != "" {
		cache = paths.Absolute(opts.VcpkgCache, root)
	}
	if !paths.IsUnderRoot(cache, root) {
		return config.VcpkgConfig{}, errors.Newf(errors.ErrPathOutsideRoot,
			"vcpkg binary cache must be under project root: %s", cache).WithDetail("path", cache)
	}

	packages := opts.VcpkgPackages
	if len(packages) == 0 {
		packages = project.Packages
	}
	return config.VcpkgConfig{
		Enabled:         config.Bool(true),
		HostRoot:        vcpkgRoot,
		HostBinaryCache: cache,
		Triplet:         firstNonEmpty(opts.VcpkgTriplet, project.Triplet, d.Triplet),
		Packages:        append([]string{}, packages...),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func sortedKeys(m map[string]config.Toolchain) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
