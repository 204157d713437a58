// Package container builds the container runtime invocation for an effective
// configuration and runs it.
package container

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wincross/wincross/pkg/config"
	"github.com/wincross/wincross/pkg/errors"
	"github.com/wincross/wincross/pkg/merge"
	"github.com/wincross/wincross/pkg/paths"
)

// DefaultRuntime is the container runtime binary used when none is configured.
const DefaultRuntime = "docker"

// ShellCommand is the interactive shell started by `wincross shell`.
var ShellCommand = []string{"bash", "--noprofile", "--norc"}

// RunOptions controls how the container is started.
type RunOptions struct {
	Runtime     string
	Interactive bool
	UID         int
	GID         int
}

// EnvVar is one ordered environment entry.
type EnvVar struct {
	Key   string
	Value string
}

// String renders the entry as KEY=VALUE.
func (e EnvVar) String() string {
	return e.Key + "=" + e.Value
}

// RunArgs returns the full runtime argv for running command inside the
// configured image.
func RunArgs(eff *config.Effective, opts RunOptions, command []string) ([]string, error) {
	runtime := opts.Runtime
	if runtime == "" {
		runtime = DefaultRuntime
	}

	args := []string{runtime, "run", "--rm"}
	if opts.Interactive {
		args = append(args, "-it")
	}
	args = append(args, "-u", fmt.Sprintf("%d:%d", opts.UID, opts.GID))
	args = append(args, "-v", eff.ProjectRoot+":"+eff.ContainerRoot)

	volumes, err := toolchainVolumes(eff.Toolchains)
	if err != nil {
		return nil, err
	}
	for _, v := range volumes {
		args = append(args, "-v", v)
	}
	for _, m := range eff.Mounts {
		args = append(args, "-v", m.HostPath+":"+m.ContainerPath+":"+m.Mode())
	}

	for _, e := range Env(eff) {
		args = append(args, "-e", e.String())
	}

	args = append(args, "-w", eff.ContainerRoot, eff.Image)
	return append(args, command...), nil
}

func toolchainVolumes(toolchains map[string]config.Toolchain) ([]string, error) {
	names := make([]string, 0, len(toolchains))
	for name := range toolchains {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		tc := toolchains[name]
		if tc.HostPath == "" || tc.ContainerPath == "" {
			return nil, errors.Newf(errors.ErrToolchainPathMissing,
				"toolchain '%s' is missing host_path or container_path", name).
				WithDetail("toolchain", name)
		}
		mode := "rw"
		if tc.IsReadOnly() {
			mode = "ro"
		}
		out = append(out, tc.HostPath+":"+tc.ContainerPath+":"+mode)
	}
	return out, nil
}

// Env returns the container environment in a stable order: the built-in
// variables first, then user env sorted by key. A user key that shadows a
// built-in replaces it in place.
func Env(eff *config.Effective) []EnvVar {
	d := eff.Defaults
	state := eff.ContainerStateDir()
	layout := paths.NewLayout(state)

	env := []EnvVar{
		{"HOME", layout.HomeDir()},
		{"XDG_RUNTIME_DIR", layout.XDGRuntimeDir()},
		{"WINEPREFIX", layout.WineDir()},
		{"WINEDEBUG", "-all"},
		{"SCCACHE_DIR", layout.SccacheDir()},
		{"CMAKE_MT", layout.MtWrapperPath()},
		{"WINCROSS_STATE_DIR", state},
		{"WINCROSS_EMULATOR", layout.BinDir() + "/" + paths.CrossEmulatorName},
		{"PATH", searchPath(eff)},
	}

	if v := eff.Vcpkg; v.Enabled {
		env = append(env,
			EnvVar{"VCPKG_ROOT", v.ContainerRoot},
			EnvVar{"VCPKG_TARGET_TRIPLET", firstNonEmpty(v.Triplet, d.Triplet)},
			EnvVar{"VCPKG_DEFAULT_BINARY_CACHE", v.ContainerBinaryCache},
			EnvVar{"VCPKG_BINARY_SOURCES", "clear;files," + v.ContainerBinaryCache + ",readwrite"},
		)
		if len(v.OverlayTriplets) > 0 {
			env = append(env, EnvVar{"VCPKG_OVERLAY_TRIPLETS", strings.Join(v.OverlayTriplets, ";")})
		}
	}

	keys := make([]string, 0, len(eff.Env))
	for k := range eff.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	index := make(map[string]int, len(env))
	for i, e := range env {
		index[e.Key] = i
	}
	for _, k := range keys {
		if i, ok := index[k]; ok {
			env[i].Value = eff.Env[k]
			continue
		}
		env = append(env, EnvVar{k, eff.Env[k]})
	}
	return env
}

// searchPath joins the prepended entries, the MSVC directories and every
// toolchain's entries ahead of the base PATH, dropping duplicates.
func searchPath(eff *config.Effective) string {
	d := eff.Defaults
	entries := append([]string{}, eff.PathPrepend...)
	entries = append(entries, d.MsvcBinDir(), d.MsvcRoot+"/bin")

	names := make([]string, 0, len(eff.Toolchains))
	for name := range eff.Toolchains {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entries = append(entries, eff.Toolchains[name].PathPrepend...)
	}

	entries = merge.DedupePreserveOrder(entries)
	return strings.Join(append(entries, d.BasePath), ":")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
