package config

import (
	"github.com/wincross/wincross/pkg/logging"
	"github.com/wincross/wincross/pkg/merge"
)

// SelectProfile applies the named profile overlay onto cfg. An empty name,
// or a name with no [profiles] table, returns cfg unchanged. The result keeps the Profiles table so selecting
// again from it behaves the same as selecting from cfg.
//
// Merge rules: cmake_defaults, path_prepend and winexe_wrappers concatenate;
// env overlays by key; toolchains overlay per entry; vcpkg overlays per
// field; every other key set in the overlay replaces the base value.
func SelectProfile(cfg *ProjectConfig, name string) *ProjectConfig {
	log := logging.GetLogger("config")
	if cfg == nil {
		cfg = &ProjectConfig{}
	}
	base := *cfg
	if name == "" {
		return &base
	}
	overlay, ok := cfg.Profiles[name]
	if !ok {
		log.Debug().Str("profile", name).Msg("Profile not defined, using base config")
		return &base
	}
	log.Debug().Str("profile", name).Msg("Applying profile overlay")

	merged := base
	if overlay.CMakeDefaults != nil {
		merged.CMakeDefaults = merge.Lists(base.CMakeDefaults, overlay.CMakeDefaults)
	}
	if overlay.PathPrepend != nil {
		merged.PathPrepend = merge.Lists(base.PathPrepend, overlay.PathPrepend)
	}
	if overlay.WinexeWrappers != nil {
		merged.WinexeWrappers = merge.Lists(base.WinexeWrappers, overlay.WinexeWrappers)
	}
	if overlay.Env != nil {
		merged.Env = merge.Env(base.Env, overlay.Env)
	}
	if overlay.Toolchains != nil {
		merged.Toolchains = MergeToolchains(base.Toolchains, overlay.Toolchains)
	}
	merged.Vcpkg = overlayVcpkg(base.Vcpkg, overlay.Vcpkg)

	replaceString(&merged.Image, overlay.Image)
	replaceString(&merged.Generator, overlay.Generator)
	replaceString(&merged.BuildType, overlay.BuildType)
	replaceString(&merged.BuildDir, overlay.BuildDir)
	replaceString(&merged.DefaultProfile, overlay.DefaultProfile)
	if overlay.WinepathPrepend != nil {
		merged.WinepathPrepend = append([]string{}, overlay.WinepathPrepend...)
	}
	if overlay.BinAliases != nil {
		merged.BinAliases = append([]string{}, overlay.BinAliases...)
	}
	if overlay.EmulatorEnv != nil {
		merged.EmulatorEnv = merge.Env(nil, overlay.EmulatorEnv)
	}
	return &merged
}

func replaceString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// overlayVcpkg is a shallow field overlay: fields set in overlay win.
func overlayVcpkg(base, overlay VcpkgConfig) VcpkgConfig {
	out := base
	if overlay.Enabled != nil {
		out.Enabled = boolPtr(*overlay.Enabled)
	}
	if overlay.FixupZ3DLL != nil {
		out.FixupZ3DLL = boolPtr(*overlay.FixupZ3DLL)
	}
	if overlay.Packages != nil {
		out.Packages = append([]string{}, overlay.Packages...)
	}
	if overlay.OverlayTriplets != nil {
		out.OverlayTriplets = append([]string{}, overlay.OverlayTriplets...)
	}
	replaceString(&out.Triplet, overlay.Triplet)
	replaceString(&out.HostRoot, overlay.HostRoot)
	replaceString(&out.HostBinaryCache, overlay.HostBinaryCache)
	replaceString(&out.ContainerRoot, overlay.ContainerRoot)
	replaceString(&out.ContainerBinaryCache, overlay.ContainerBinaryCache)
	return out
}
