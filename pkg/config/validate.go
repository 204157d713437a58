package config

import (
	"sort"

	"github.com/wincross/wincross/pkg/errors"
)

func invalid(field, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrProjectConfigInvalid, format, args...).WithDetail("field", field)
}

// ValidateProjectConfig enforces the structural rules of a (profile-selected)
// project config. Machine-specific locations are rejected: toolchain host
// paths and vcpkg host/container directories belong in the build config.
func ValidateProjectConfig(cfg *ProjectConfig) error {
	names := make([]string, 0, len(cfg.Toolchains))
	for name := range cfg.Toolchains {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if cfg.Toolchains[name].HostPath != "" {
			return hostPathError(name)
		}
	}

	if _, err := NormalizeWinexeWrappers(cfg.WinexeWrappers, SourceProject); err != nil {
		return err
	}

	for _, entry := range cfg.WinepathPrepend {
		if entry == "" {
			return invalid("winepath_prepend", "project config winepath_prepend entries must be non-empty strings")
		}
	}
	for _, entry := range cfg.BinAliases {
		if entry == "" {
			return invalid("bin_aliases", "project config bin_aliases entries must be non-empty strings")
		}
	}
	for key, value := range cfg.EmulatorEnv {
		if key == "" {
			return invalid("emulator_env", "project config emulator_env keys must be non-empty strings")
		}
		if value == "" {
			return invalid("emulator_env."+key, "project config emulator_env '%s' must be a non-empty string", key)
		}
	}

	machineOnly := map[string]string{
		"host_root":              cfg.Vcpkg.HostRoot,
		"host_binary_cache":      cfg.Vcpkg.HostBinaryCache,
		"container_root":         cfg.Vcpkg.ContainerRoot,
		"container_binary_cache": cfg.Vcpkg.ContainerBinaryCache,
	}
	for _, key := range vcpkgMachineKeys {
		if machineOnly[key] != "" {
			return vcpkgKeyError(key)
		}
	}
	return nil
}

// vcpkgMachineKeys are the vcpkg keys only the build config may set.
var vcpkgMachineKeys = []string{"host_root", "host_binary_cache", "container_root", "container_binary_cache"}

func vcpkgKeyError(key string) error {
	return invalid("vcpkg."+key, "project config must not set vcpkg %s", key)
}

func hostPathError(name string) error {
	return invalid("toolchains."+name+".host_path",
		"project config toolchain '%s' must not set host_path", name)
}

// checkMachineKeys rejects machine-only keys in a raw project table.
// Presence is enough: an empty host_path is still rejected.
func checkMachineKeys(table map[string]interface{}) error {
	if toolchains, ok := table["toolchains"].(map[string]interface{}); ok {
		for _, name := range sortedKeys(toolchains) {
			tc, ok := toolchains[name].(map[string]interface{})
			if !ok {
				continue
			}
			if _, set := tc["host_path"]; set {
				return hostPathError(name)
			}
		}
	}
	if vcpkg, ok := table["vcpkg"].(map[string]interface{}); ok {
		for _, key := range vcpkgMachineKeys {
			if _, set := vcpkg[key]; set {
				return vcpkgKeyError(key)
			}
		}
	}
	return nil
}

// checkRawProjectConfig runs the raw-map checks on the base table and on
// every profile overlay.
func checkRawProjectConfig(raw map[string]interface{}) error {
	if err := checkMachineKeys(raw); err != nil {
		return err
	}
	profiles, ok := raw["profiles"].(map[string]interface{})
	if !ok {
		return nil
	}
	for _, name := range sortedKeys(profiles) {
		overlay, ok := profiles[name].(map[string]interface{})
		if !ok {
			return invalid("profiles."+name, "invalid profile '%s' in project config", name)
		}
		if err := checkMachineKeys(overlay); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
