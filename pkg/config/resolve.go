package config

import (
	"path/filepath"

	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/logging"
	"github.com/wincross/wincross/pkg/merge"
	"github.com/wincross/wincross/pkg/paths"
)

// Resolve merges project config, the active profile and build config into
// the effective configuration. Every validation happens here so no command
// starts a side effect with a broken configuration.
func Resolve(project *ProjectConfig, build *BuildConfig, root, projectCfgPath string, d Defaults) (*Effective, error) {
	if project == nil {
		project = &ProjectConfig{}
	}
	if build == nil {
		build = &BuildConfig{}
	}
	root = filepath.Clean(root)

	if build.ProjectRoot != "" && filepath.Clean(build.ProjectRoot) != root {
		return nil, errors.Newf(errors.ErrProjectRootMismatch,
			"config project_root does not match current root: %s != %s", build.ProjectRoot, root).
			WithDetail("recorded", build.ProjectRoot).
			WithDetail("root", root)
	}

	profile := build.Profile
	if profile == "" {
		profile = project.DefaultProfile
	}
	selected := SelectProfile(project, profile)
	if err := ValidateProjectConfig(selected); err != nil {
		return nil, err
	}

	projectWrappers, err := NormalizeWinexeWrappers(selected.WinexeWrappers, SourceProject)
	if err != nil {
		return nil, err
	}
	buildWrappers, err := NormalizeWinexeWrappers(build.WinexeWrappers, SourceBuild)
	if err != nil {
		return nil, err
	}

	eff := &Effective{
		Version:         build.Version,
		Profile:         profile,
		ProjectRoot:     root,
		ContainerRoot:   d.ContainerRoot,
		Toolchains:      MergeToolchains(selected.Toolchains, build.Toolchains),
		Mounts:          merge.Lists(nil, build.Mounts),
		CMakeDefaults:   merge.Lists(selected.CMakeDefaults, build.CMakeDefaults),
		PathPrepend:     merge.Lists(selected.PathPrepend, build.PathPrepend),
		WinepathPrepend: merge.Lists(selected.WinepathPrepend, build.WinepathPrepend),
		BinAliases:      merge.Lists(selected.BinAliases, build.BinAliases),
		Env:             merge.Env(selected.Env, build.Env),
		EmulatorEnv:     merge.Env(selected.EmulatorEnv, build.EmulatorEnv),
		WinexeWrappers:  MergeWinexeWrappers(projectWrappers, buildWrappers),
		Image:           firstNonEmpty(build.Image, selected.Image, d.Image),
		Generator:       firstNonEmpty(build.Generator, selected.Generator, d.Generator),
		BuildType:       firstNonEmpty(build.BuildType, selected.BuildType, d.BuildType),
		Defaults:        d,
	}
	if eff.Version == 0 {
		eff.Version = 1
	}

	for _, alias := range eff.BinAliases {
		if !IsBasename(alias) {
			return nil, errors.Newf(errors.ErrWrapperNameInvalid, "bin_aliases entries must be basenames: %q", alias).
				WithDetail("name", alias)
		}
	}

	eff.StateDir = paths.Absolute(firstNonEmpty(build.StateDir, filepath.Join(root, d.StateDirName)), root)
	containerState, err := paths.ToContainerPath(eff.StateDir, root, d.ContainerRoot)
	if err != nil {
		return nil, err
	}

	if len(eff.WinexeWrappers) > 0 {
		eff.PathPrepend = merge.MoveToFront(eff.PathPrepend, containerState+"/bin")
	}

	vcpkg, err := resolveVcpkg(selected.Vcpkg, build.Vcpkg, root, d)
	if err != nil {
		return nil, err
	}
	eff.Vcpkg = vcpkg

	buildDir := firstNonEmpty(build.BuildDir, selected.BuildDir, filepath.Join(eff.StateDir, paths.DefaultBuildDirName))
	eff.BuildDir = paths.Absolute(buildDir, root)
	containerBuild, err := paths.ToContainerPath(eff.BuildDir, root, d.ContainerRoot)
	if err != nil {
		return nil, err
	}

	configDir, err := paths.ToContainerPath(filepath.Dir(paths.Absolute(projectCfgPath, root)), root, d.ContainerRoot)
	if err != nil {
		return nil, err
	}
	eff.ConfigDir = configDir

	eff.Placeholders = Placeholders{
		ProjectRoot: d.ContainerRoot,
		StateDir:    containerState,
		BuildDir:    containerBuild,
		ConfigDir:   configDir,
	}
	if err := expandEffective(eff); err != nil {
		return nil, err
	}

	log := logging.GetLogger("config")
	log.Debug().
		Str("profile", profile).
		Str("build_dir", eff.BuildDir).
		Int("toolchains", len(eff.Toolchains)).
		Int("wrappers", len(eff.WinexeWrappers)).
		Bool("vcpkg", eff.Vcpkg.Enabled).
		Msg("Resolved effective configuration")
	return eff, nil
}

func resolveVcpkg(project, build VcpkgConfig, root string, d Defaults) (EffectiveVcpkg, error) {
	out := EffectiveVcpkg{
		Enabled:         firstBool(build.Enabled, project.Enabled),
		FixupZ3DLL:      firstBool(build.FixupZ3DLL, project.FixupZ3DLL),
		Triplet:         firstNonEmpty(build.Triplet, project.Triplet, d.Triplet),
		Packages:        firstNonEmptyList(build.Packages, project.Packages),
		OverlayTriplets: firstNonEmptyList(build.OverlayTriplets, project.OverlayTriplets),
	}
	if !out.Enabled {
		return out, nil
	}
	if build.HostRoot == "" || build.HostBinaryCache == "" {
		return out, errors.New(errors.ErrVcpkgHostPathsMissing,
			"vcpkg enabled but host_root or host_binary_cache is missing in build config")
	}
	out.HostRoot = build.HostRoot
	out.HostBinaryCache = build.HostBinaryCache

	var err error
	if out.ContainerRoot, err = paths.ToContainerPath(out.HostRoot, root, d.ContainerRoot); err != nil {
		return out, err
	}
	if out.ContainerBinaryCache, err = paths.ToContainerPath(out.HostBinaryCache, root, d.ContainerRoot); err != nil {
		return out, err
	}
	return out, nil
}

func expandEffective(eff *Effective) error {
	vars := eff.Placeholders.Map()
	var err error
	if eff.PathPrepend, err = expandList(eff.PathPrepend, vars, "path_prepend"); err != nil {
		return err
	}
	if eff.CMakeDefaults, err = expandList(eff.CMakeDefaults, vars, "cmake_defaults"); err != nil {
		return err
	}
	if eff.WinepathPrepend, err = expandList(eff.WinepathPrepend, vars, "winepath_prepend"); err != nil {
		return err
	}
	if eff.Env, err = expandValues(eff.Env, vars, "env"); err != nil {
		return err
	}
	if eff.EmulatorEnv, err = expandValues(eff.EmulatorEnv, vars, "emulator_env"); err != nil {
		return err
	}
	if eff.Vcpkg.OverlayTriplets, err = expandList(eff.Vcpkg.OverlayTriplets, vars, "vcpkg.overlay_triplets"); err != nil {
		return err
	}
	// wrapper exe templates are expanded at generation time; check them now
	for _, w := range eff.WinexeWrappers {
		if _, err := ExpandTemplate(w.Exe, vars, "winexe wrapper exe"); err != nil {
			return err
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return append([]string{}, v...)
		}
	}
	return []string{}
}

func firstBool(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}
